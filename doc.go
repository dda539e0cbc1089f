// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package jsonschema validates an already-parsed JSON value against a
Draft-07-style JSON Schema document. Both the schema and the instance are
given as plain Go values built only from nil, bool, int64, float64, string,
[]any and map[string]any; parsing JSON text into that shape is the caller's
job.

A schema document is loaded once into a SchemaStore, which compiles it into
a graph of Schema nodes addressed by JSON-Pointer:

	store := jsonschema.NewSchemaStore()
	schema, err := store.Load(schemaDoc)
	if err != nil {
		return err
	}

The resulting Schema is immutable and safe to reuse across any number of
validation calls, including concurrently, as long as each call supplies its
own Sink:

	var errs jsonschema.ErrorList
	if err := (jsonschema.Validator{}).Validate(schema, instance, &errs); err != nil {
		return err
	}
	for _, e := range errs {
		fmt.Println(e)
	}

Validation never returns the validation failures it finds as a Go error;
those are pushed into the Sink passed to Validate, in encounter order, one
per failed check (so one location may carry several). A non-nil error from Validate means the instance
value itself was not one of the seven shapes this package understands.

$ref resolution (within or across documents), format assertions, and
unknown-keyword assertions are out of scope: unsupported keywords are ignored, matching the
behavior of the schema this package was adapted from.
*/
package jsonschema
