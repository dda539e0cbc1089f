// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// Validator is a stateless façade over Schema.validate, kept as its own
// type so callers aren't required to know that validation is a method on
// Schema, and so the sink can be swapped (a plain ErrorList, a counter, an
// early-exit wrapper) without touching the Schema graph.
type Validator struct{}

// Validate runs schema against instance, pushing every failure into sink.
// It returns an error only when instance itself is a value outside the
// seven shapes Classify accepts; a nested value of another shape is not
// reported this way, since the error from a subschema applied to it is
// dropped. Validation failures are reported through sink, never as a
// returned error.
func (Validator) Validate(schema *Schema, instance any, sink Sink) error {
	return schema.validate(instance, "#", sink)
}
