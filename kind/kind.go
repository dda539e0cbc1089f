// Package kind carries the closed taxonomy of validation-failure causes a
// ValidationError can report. Each cause is a small typed struct with a
// String method, so callers that want to key off cause rather than message
// text have something to switch on.
package kind

import (
	"fmt"
	"strings"
)

// ErrorKind is implemented by every cause type in this package.
type ErrorKind interface {
	String() string
}

// --

type TypeMismatch struct {
	Got  string
	Want []string
}

func (k *TypeMismatch) String() string {
	want := strings.Join(k.Want, " or ")
	return fmt.Sprintf("got %s, want %s", k.Got, want)
}

// --

// RangeViolation covers minimum, maximum, exclusiveMinimum, exclusiveMaximum,
// minLength, maxLength, minItems, maxItems and minProperties:
// all of them compare a measured quantity against a bound with a fixed
// comparison operator.
type RangeViolation struct {
	Keyword    string
	Comparison string // ">=", "<=", ">", "<"
	Got        float64
	Want       float64
}

func (k *RangeViolation) String() string {
	return fmt.Sprintf("%s: got %v, want %s %v", k.Keyword, k.Got, k.Comparison, k.Want)
}

// --

type MultipleOfViolation struct {
	Got  float64
	Want float64
}

func (k *MultipleOfViolation) String() string {
	return fmt.Sprintf("multipleOf: got %v, want multiple of %v", k.Got, k.Want)
}

// --

type MissingRequired struct {
	Missing []string
}

func (k *MissingRequired) String() string {
	if len(k.Missing) == 1 {
		return fmt.Sprintf("missing property %s", quote(k.Missing[0]))
	}
	return fmt.Sprintf("missing properties %s", joinQuoted(k.Missing, ", "))
}

// --

// DependencyUnmet reports an array-form "dependencies" failure: Missing
// lists the sibling properties Trigger's presence required. The validator
// does not emit it for the schema form, whose dependent schema reports its
// own failures directly; String still renders a value with empty Missing.
type DependencyUnmet struct {
	Trigger string
	Missing []string
}

func (k *DependencyUnmet) String() string {
	if len(k.Missing) == 0 {
		return fmt.Sprintf("dependent schema failed, since %s exists", quote(k.Trigger))
	}
	return fmt.Sprintf("properties %s required, since %s exists", joinQuoted(k.Missing, ", "), quote(k.Trigger))
}

// --

type ContainsUnsatisfied struct{}

func (*ContainsUnsatisfied) String() string {
	return "no items match contains schema"
}

// --

type ConstMismatch struct {
	Got  any
	Want any
}

func (k *ConstMismatch) String() string {
	switch want := k.Want.(type) {
	case []any, map[string]any:
		return "const failed"
	default:
		return fmt.Sprintf("value must be %s", display(want))
	}
}

// --

type EnumMismatch struct {
	Got  any
	Want []any
}

func (k *EnumMismatch) String() string {
	allPrimitive := true
loop:
	for _, item := range k.Want {
		switch item.(type) {
		case []any, map[string]any:
			allPrimitive = false
			break loop
		}
	}
	if !allPrimitive {
		return "enum failed"
	}
	if len(k.Want) == 1 {
		return fmt.Sprintf("value must be %s", display(k.Want[0]))
	}
	var want []string
	for _, v := range k.Want {
		want = append(want, display(v))
	}
	return fmt.Sprintf("value must be one of %s", strings.Join(want, ", "))
}

// --

// CombinatorFailure reports a literal false schema, or an anyOf/oneOf whose
// match-count requirement was not met. Keyword is "false", "anyOf", or
// "oneOf"; Matched is only meaningful for "oneOf".
type CombinatorFailure struct {
	Keyword string
	Matched []int // indexes of subschemas that matched, for "oneOf"
}

func (k *CombinatorFailure) String() string {
	switch k.Keyword {
	case "false":
		return "false schema"
	case "anyOf":
		return "anyOf failed, none matched"
	case "oneOf":
		if len(k.Matched) == 0 {
			return "oneOf failed, none matched"
		}
		return fmt.Sprintf("oneOf failed, subschemas at %v matched", k.Matched)
	default:
		return k.Keyword + " failed"
	}
}

// --

func quote(s string) string {
	s = fmt.Sprintf("%q", s)
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s[1:len(s)-1] + "'"
}

func joinQuoted(arr []string, sep string) string {
	var sb strings.Builder
	for _, s := range arr {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(quote(s))
	}
	return sb.String()
}

// display formats a primitive value for use inside an error message.
func display(v any) string {
	switch v := v.(type) {
	case string:
		return quote(v)
	case []any, map[string]any:
		return "value"
	default:
		return fmt.Sprintf("%v", v)
	}
}
