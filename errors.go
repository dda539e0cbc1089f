// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"

	"github.com/jimblackler-friend/jsonschema/kind"
)

// ValidationError is the error type emitted into a Sink by Schema.validate.
// Pointer is the JSON-Pointer (RFC 6901, "#"-prefixed) of the instance value
// that failed; Kind identifies the cause.
type ValidationError struct {
	Pointer string
	Kind    kind.ErrorKind
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("I[%s] %s", ve.Pointer, ve.Kind.String())
}

// Sink receives ValidationError records as validation proceeds. A validation
// call may push zero or more errors; an empty sink after validate returns
// means the instance is valid under the schema.
//
// Combinator keywords (if/then/else, anyOf, oneOf) and contains validate
// into a scratch sink to observe pass/fail without surfacing sub-errors;
// everywhere else
// errors flow directly into the caller's sink. ErrorList satisfies Sink and
// is a convenient scratch sink: its zero value is empty and ready to use.
type Sink interface {
	Add(err *ValidationError)
}

// ErrorList is a Sink that collects every pushed error, in order.
type ErrorList []*ValidationError

// Add implements Sink.
func (l *ErrorList) Add(err *ValidationError) {
	*l = append(*l, err)
}

// SchemaLoadError is returned by SchemaStore.Load and SchemaStore.Get when a
// schema document cannot be turned into a Schema graph: a dangling pointer,
// a value at a pointer that is neither a bool nor an object, an unrecognized
// "type" name, or an invalid "patternProperties" key.
type SchemaLoadError struct {
	Pointer string
	Err     error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("jsonschema: load %s: %v", e.Pointer, e.Err)
}

func (e *SchemaLoadError) Unwrap() error { return e.Err }
