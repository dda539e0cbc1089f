// Package pattern wraps an ECMA-262 regular expression engine behind the
// opaque Matcher interface the validator needs for "patternProperties"
// keys. JSON Schema patterns use ECMA-262 syntax,
// which Go's RE2-based regexp package does not fully support (lookaround,
// \c control escapes, ...), so the default engine is dlclark/regexp2
// running in ECMAScript mode.
//
// The split between Matcher/Compiler and the default implementation mirrors
// the teacher's Regexp/RegexpProvider split in regexp.go, generalized from
// "swap the engine for a test" to "this is the engine".
package pattern

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Matcher is an opaque, already-compiled pattern. Matching is unanchored,
// matching JSON Schema "pattern" semantics.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// Compiler compiles a pattern string into a Matcher.
type Compiler func(expr string) (Matcher, error)

// Default is the ECMA-262 engine used unless a SchemaStore is configured
// with a different Compiler via WithPatternCompiler.
var Default Compiler = Compile

// BadPatternError is returned when a pattern string is not valid ECMA-262
// regular expression syntax.
type BadPatternError struct {
	Pattern string
	Err     error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("jsonschema: bad pattern %q: %v", e.Pattern, e.Err)
}

func (e *BadPatternError) Unwrap() error { return e.Err }

// Compile compiles expr using dlclark/regexp2 in ECMAScript mode.
func Compile(expr string) (Matcher, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, &BadPatternError{Pattern: expr, Err: err}
	}
	return &regexp2Matcher{re}, nil
}

type regexp2Matcher struct {
	re *regexp2.Regexp
}

func (m *regexp2Matcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

func (m *regexp2Matcher) String() string {
	return m.re.String()
}
