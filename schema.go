// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"math"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/jimblackler-friend/jsonschema/kind"
	"github.com/jimblackler-friend/jsonschema/pattern"
)

// Schema is one validation node: a tagged union of a Boolean schema (bare
// true/false) and an Object schema (a bundle of active keyword
// constraints). Nodes are immutable once a SchemaStore finishes
// constructing them; validate never mutates a Schema.
type Schema struct {
	// Location is the pointer URI this node was compiled from.
	Location string

	// boolean is non-nil for the Boolean variant; nil for the Object
	// variant.
	boolean *bool

	types []TypeTag

	minimum, maximum, exclusiveMinimum, exclusiveMaximum, multipleOf *float64

	minLength, maxLength *int

	items           *Schema
	itemsTuple      []*Schema
	additionalItems *Schema
	minItems        *int
	maxItems        *int
	contains        *Schema

	properties           map[string]*Schema
	patternProperties    []patternSchema
	additionalProperties *Schema
	required             []string
	minProperties        *int
	dependencies         map[string]*dependency

	allOf, anyOf, oneOf []*Schema
	ifSchema             *Schema
	thenSchema           *Schema
	elseSchema           *Schema

	constant    any
	hasConstant bool
	enum        []any
}

// patternSchema pairs a compiled patternProperties key with the subschema
// that applies to matching property names.
type patternSchema struct {
	matcher pattern.Matcher
	schema  *Schema
}

// dependency is one value of the "dependencies" keyword: either the array
// form (required names only) or the schema form (schema only).
type dependency struct {
	required []string
	schema   *Schema
}

// validate applies s to instance, located at ptr in the instance document,
// pushing every failure it finds into sink. It only returns an error for an
// instance value outside the seven shapes Classify accepts.
func (s *Schema) validate(instance any, ptr string, sink Sink) error {
	if s.boolean != nil {
		if !*s.boolean {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.CombinatorFailure{Keyword: "false"}})
		}
		return nil
	}

	tag, err := Classify(instance)
	if err != nil {
		return err
	}

	switch tag {
	case Integer, Number:
		s.validateNumeric(tag, instance, ptr, sink)
	case Boolean:
		s.typeCheck(tag, []TypeTag{Boolean}, ptr, sink)
	case String:
		s.validateString(instance.(string), ptr, sink)
	case Array:
		s.validateArray(instance.([]any), ptr, sink)
	case Object:
		s.validateObject(instance.(map[string]any), ptr, sink)
	case Null:
		s.typeCheck(tag, []TypeTag{Null}, ptr, sink)
	}

	if s.hasConstant && !deepEqual(instance, s.constant) {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.ConstMismatch{Got: instance, Want: s.constant}})
	}
	if s.enum != nil {
		matched := false
		for _, want := range s.enum {
			if deepEqual(instance, want) {
				matched = true
				break
			}
		}
		if !matched {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.EnumMismatch{Got: instance, Want: s.enum}})
		}
	}

	if s.ifSchema != nil {
		var scratch ErrorList
		s.ifSchema.validate(instance, ptr, &scratch)
		if len(scratch) == 0 {
			if s.thenSchema != nil {
				s.thenSchema.validate(instance, ptr, sink)
			}
		} else if s.elseSchema != nil {
			s.elseSchema.validate(instance, ptr, sink)
		}
	}

	for _, sub := range s.allOf {
		sub.validate(instance, ptr, sink)
	}

	if len(s.anyOf) > 0 {
		matched := false
		for _, sub := range s.anyOf {
			var scratch ErrorList
			sub.validate(instance, ptr, &scratch)
			if len(scratch) == 0 {
				matched = true
				break
			}
		}
		if !matched {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.CombinatorFailure{Keyword: "anyOf"}})
		}
	}

	if len(s.oneOf) > 0 {
		var matched []int
		for i, sub := range s.oneOf {
			var scratch ErrorList
			sub.validate(instance, ptr, &scratch)
			if len(scratch) == 0 {
				matched = append(matched, i)
			}
		}
		if len(matched) != 1 {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.CombinatorFailure{Keyword: "oneOf", Matched: matched}})
		}
	}

	return nil
}

// typeCheck is a no-op when s declares no "type". Otherwise it emits a
// TypeMismatch unless candidates intersects the declared type set.
func (s *Schema) typeCheck(instanceTag TypeTag, candidates []TypeTag, ptr string, sink Sink) {
	if s.types == nil {
		return
	}
	for _, c := range candidates {
		for _, t := range s.types {
			if c == t {
				return
			}
		}
	}
	want := make([]string, len(s.types))
	for i, t := range s.types {
		want[i] = t.String()
	}
	sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.TypeMismatch{Got: instanceTag.String(), Want: want}})
}

// validateNumeric applies the type check and numeric bounds. A NaN instance
// fails the type check outright (if one is declared) and skips every range
// check, since comparisons against NaN are never meaningful.
func (s *Schema) validateNumeric(tag TypeTag, instance any, ptr string, sink Sink) {
	value := toFloat(instance)
	if math.IsNaN(value) {
		if s.types != nil {
			want := make([]string, len(s.types))
			for i, t := range s.types {
				want[i] = t.String()
			}
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.TypeMismatch{Got: tag.String(), Want: want}})
		}
		return
	}

	candidates := []TypeTag{Number}
	if tag == Integer {
		candidates = []TypeTag{Integer, Number}
	}
	s.typeCheck(tag, candidates, ptr, sink)

	if s.minimum != nil && value < *s.minimum {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "minimum", Comparison: ">=", Got: value, Want: *s.minimum}})
	}
	if s.exclusiveMinimum != nil && value <= *s.exclusiveMinimum {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "exclusiveMinimum", Comparison: ">", Got: value, Want: *s.exclusiveMinimum}})
	}
	if s.maximum != nil && value > *s.maximum {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "maximum", Comparison: "<=", Got: value, Want: *s.maximum}})
	}
	if s.exclusiveMaximum != nil && value >= *s.exclusiveMaximum {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "exclusiveMaximum", Comparison: "<", Got: value, Want: *s.exclusiveMaximum}})
	}
	if s.multipleOf != nil && !isMultipleOf(value, *s.multipleOf) {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.MultipleOfViolation{Got: value, Want: *s.multipleOf}})
	}
}

// isMultipleOf reports whether value is a multiple of multipleOf. Integer
// modulus is used when both operands are whole numbers; otherwise the
// quotient is rounded and compared back within a tolerance scaled to the
// magnitude of value, since IEEE-754 division of non-integer multiples is
// not reliably exact.
func isMultipleOf(value, multipleOf float64) bool {
	if isWholeNumber(value) && isWholeNumber(multipleOf) {
		return math.Mod(value, multipleOf) == 0
	}
	quotient := math.Round(value/multipleOf) * multipleOf
	tolerance := 1e-10 * math.Max(math.Abs(value), 1)
	return math.Abs(quotient-value) <= tolerance
}

func isWholeNumber(f float64) bool {
	return f == math.Trunc(f)
}

func (s *Schema) validateString(str string, ptr string, sink Sink) {
	s.typeCheck(String, []TypeTag{String}, ptr, sink)
	length := utf8.RuneCountInString(str)
	if s.minLength != nil && length < *s.minLength {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "minLength", Comparison: ">=", Got: float64(length), Want: float64(*s.minLength)}})
	}
	if s.maxLength != nil && length > *s.maxLength {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "maxLength", Comparison: "<=", Got: float64(length), Want: float64(*s.maxLength)}})
	}
}

func (s *Schema) validateArray(arr []any, ptr string, sink Sink) {
	s.typeCheck(Array, []TypeTag{Array}, ptr, sink)

	n := len(arr)
	if s.minItems != nil && n < *s.minItems {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "minItems", Comparison: ">=", Got: float64(n), Want: float64(*s.minItems)}})
	}
	if s.maxItems != nil && n > *s.maxItems {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "maxItems", Comparison: "<=", Got: float64(n), Want: float64(*s.maxItems)}})
	}

	switch {
	case s.items != nil:
		for i, elem := range arr {
			s.items.validate(elem, Append(ptr, strconv.Itoa(i)), sink)
		}
	case s.itemsTuple != nil:
		for i, elem := range arr {
			childPtr := Append(ptr, strconv.Itoa(i))
			if i < len(s.itemsTuple) {
				s.itemsTuple[i].validate(elem, childPtr, sink)
			} else if s.additionalItems != nil {
				s.additionalItems.validate(elem, childPtr, sink)
			}
		}
	}

	if s.contains != nil {
		matched := false
		for _, elem := range arr {
			var scratch ErrorList
			s.contains.validate(elem, ptr, &scratch)
			if len(scratch) == 0 {
				matched = true
				break
			}
		}
		if !matched {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.ContainsUnsatisfied{}})
		}
	}
}

func (s *Schema) validateObject(obj map[string]any, ptr string, sink Sink) {
	s.typeCheck(Object, []TypeTag{Object}, ptr, sink)

	if s.minProperties != nil && len(obj) < *s.minProperties {
		sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.RangeViolation{Keyword: "minProperties", Comparison: ">=", Got: float64(len(obj)), Want: float64(*s.minProperties)}})
	}

	for _, name := range sortedKeys(obj) {
		value := obj[name]
		childPtr := Append(ptr, name)
		matched := false
		if sub, ok := s.properties[name]; ok {
			sub.validate(value, childPtr, sink)
			matched = true
		}
		for _, pp := range s.patternProperties {
			if pp.matcher.MatchString(name) {
				pp.schema.validate(value, childPtr, sink)
				matched = true
			}
		}
		if !matched && s.additionalProperties != nil {
			s.additionalProperties.validate(value, childPtr, sink)
		}
	}

	if len(s.required) > 0 {
		var missing []string
		for _, name := range s.required {
			if _, ok := obj[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.MissingRequired{Missing: missing}})
		}
	}

	for _, trigger := range sortedKeys(s.dependencies) {
		if _, present := obj[trigger]; !present {
			continue
		}
		dep := s.dependencies[trigger]
		if dep.schema != nil {
			dep.schema.validate(obj, ptr, sink)
			continue
		}
		var missing []string
		for _, name := range dep.required {
			if _, ok := obj[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sink.Add(&ValidationError{Pointer: ptr, Kind: &kind.DependencyUnmet{Trigger: trigger, Missing: missing}})
		}
	}
}

// sortedKeys returns m's keys in ascending order, so that iteration over a
// map-shaped keyword produces a deterministic error sequence.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
