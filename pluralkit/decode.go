package pluralkit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode parses a JSON object and maps it onto the record type T under the
// given schema. Overrides backfill fields the body omits but the caller
// already knows, such as a guild ID taken from the request path; an
// override never replaces a value present in the payload.
//
// Required fields that remain absent, enum values outside the declared
// variant set and malformed timestamps all fail with a *DecodeError; a
// record is never partially populated.
func Decode[T any](data []byte, schema *Schema, overrides map[string]any) (*T, error) {
	raw, err := parseObject(data)
	if err != nil {
		return nil, &DecodeError{Schema: schema.Name, Reason: "invalid JSON", Err: err}
	}
	return decodeRecord[T](raw, schema, overrides)
}

// DecodeList is the sequence variant of Decode.
func DecodeList[T any](data []byte, schema *Schema) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raws []map[string]any
	if err := dec.Decode(&raws); err != nil {
		return nil, &DecodeError{Schema: schema.Name, Reason: "invalid JSON list", Err: err}
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		record, err := decodeRecord[T](raw, schema, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *record)
	}
	return out, nil
}

func decodeRecord[T any](raw map[string]any, schema *Schema, overrides map[string]any) (*T, error) {
	normalized, err := schema.normalize(raw, overrides)
	if err != nil {
		return nil, err
	}

	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building decoder: %w", err)
	}
	if err := dec.Decode(normalized); err != nil {
		return nil, &DecodeError{Schema: schema.Name, Reason: "mapping payload", Err: err}
	}
	return &out, nil
}

// parseObject parses bytes into an untyped tree. Numbers are kept as
// json.Number so snowflake IDs survive without precision loss.
func parseObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
