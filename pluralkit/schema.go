package pluralkit

import (
	"encoding/json"
	"strconv"

	"github.com/araddon/dateparse"
)

// Kind is the semantic type of a schema field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTimestamp
	KindDate
	KindEnum
	KindObject
	KindList
)

// Field describes one field of a record schema.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Variants is the set of allowed wire strings for KindEnum fields.
	Variants []string
	// Elem is the nested schema for KindObject fields and for KindList
	// fields whose elements are objects.
	Elem *Schema
	// ElemKind is the element type for KindList fields with scalar
	// elements. Ignored when Elem is set.
	ElemKind Kind
}

// Schema is an immutable description of a record kind, driving both
// validation and decoding. Schemas are defined once at package init and
// never mutated.
type Schema struct {
	Name   string
	Fields []Field
	// Defaults are injected for fields absent from the payload.
	Defaults map[string]any
}

// normalize validates raw against the schema and returns a tree containing
// only declared fields, with timestamps, dates and nested records already
// converted. Overrides backfill fields the response body omits; they never
// replace a value present in the payload.
func (s *Schema) normalize(raw, overrides map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			if ov, has := overrides[f.Name]; has && ov != nil {
				v, ok = ov, true
			} else if def, has := s.Defaults[f.Name]; has {
				v, ok = def, true
			}
		}
		if !ok || v == nil {
			if f.Required {
				return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "required field missing"}
			}
			// explicit null and absent both leave the field unset
			continue
		}
		cv, err := s.checkField(f, v)
		if err != nil {
			return nil, err
		}
		out[f.Name] = cv
	}
	return out, nil
}

func (s *Schema) checkField(f Field, v any) (any, error) {
	switch f.Kind {
	case KindString:
		if _, ok := v.(string); !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a string"}
		}
	case KindInt:
		if !isInteger(v) {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected an integer"}
		}
	case KindFloat:
		if !isNumber(v) {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a number"}
		}
	case KindBool:
		if _, ok := v.(bool); !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a boolean"}
		}
	case KindTimestamp:
		str, ok := v.(string)
		if !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a timestamp string"}
		}
		ts, err := dateparse.ParseAny(str)
		if err != nil {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "malformed timestamp", Err: err}
		}
		return ts, nil
	case KindDate:
		str, ok := v.(string)
		if !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a date string"}
		}
		d, err := ParseDate(str)
		if err != nil {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "malformed date", Err: err}
		}
		return d, nil
	case KindEnum:
		str, ok := v.(string)
		if !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected an enum string"}
		}
		for _, variant := range f.Variants {
			if str == variant {
				return str, nil
			}
		}
		return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "unknown enum value " + strconv.Quote(str)}
	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected an object"}
		}
		return f.Elem.normalize(m, nil)
	case KindList:
		items, ok := v.([]any)
		if !ok {
			return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a list"}
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			if f.Elem != nil {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, &DecodeError{Schema: s.Name, Field: f.Name, Reason: "expected a list of objects"}
				}
				cv, err := f.Elem.normalize(m, nil)
				if err != nil {
					return nil, err
				}
				out = append(out, cv)
				continue
			}
			cv, err := s.checkField(Field{Name: f.Name, Kind: f.ElemKind, Variants: f.Variants}, item)
			if err != nil {
				return nil, err
			}
			out = append(out, cv)
		}
		return out, nil
	}
	return v, nil
}

// isInteger accepts JSON numbers and numeric strings; the API transmits
// Discord snowflakes as strings to avoid precision loss.
func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case string:
		_, err := strconv.ParseInt(n, 10, 64)
		return err == nil
	case int, int32, int64:
		return true
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Float64()
		return err == nil
	case string:
		_, err := strconv.ParseFloat(n, 64)
		return err == nil
	case int, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}
