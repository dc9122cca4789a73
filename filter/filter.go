// Package filter compiles expr expressions for filtering PluralKit
// records in list output.
//
// Expressions see the fields of one member at a time, plus a few date
// helpers:
//
//	Name contains "al"
//	Birthday != "" and daysSince(Created) > 365
//	KeepProxy and len(ProxyTags) > 0
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/pluralkit-go/pluralkit"
)

// Filter is a compiled member filter.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // member fields
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter against one member.
func (f *Filter) Match(member pluralkit.Member) (bool, error) {
	env := memberEnv(member)
	addHelperFunctions(env)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Member:     member.Name,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Member:     member.Name,
			Reason:     "expression did not evaluate to a boolean",
		}
	}
	return matched, nil
}

// Members returns the members matching the filter, preserving order.
func (f *Filter) Members(members []pluralkit.Member) ([]pluralkit.Member, error) {
	var matched []pluralkit.Member
	for _, member := range members {
		ok, err := f.Match(member)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, member)
		}
	}
	return matched, nil
}

// memberEnv builds the expression environment for one member. Optional
// fields surface as empty strings so expressions stay null-free.
func memberEnv(m pluralkit.Member) map[string]any {
	env := make(map[string]any, 16)
	env["ID"] = m.ID
	env["UUID"] = m.UUID
	env["Name"] = m.Name
	env["Created"] = m.Created
	env["KeepProxy"] = m.KeepProxy
	env["ProxyTags"] = m.ProxyTags
	env["DisplayName"] = deref(m.DisplayName)
	env["Color"] = deref(m.Color)
	env["Pronouns"] = deref(m.Pronouns)
	env["Description"] = deref(m.Description)
	env["AvatarURL"] = deref(m.AvatarURL)
	env["Birthday"] = ""
	if m.Birthday != nil {
		env["Birthday"] = m.Birthday.String()
	}
	env["Visibility"] = string(pluralkit.PrivacyPublic)
	if m.Privacy != nil {
		env["Visibility"] = string(m.Privacy.Visibility)
	}
	return env
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// helperFunctions creates the static helper functions used during
// compilation
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["date"] = func(s string) time.Time {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}
		}
		return t
	}
}
