// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"

	"github.com/jimblackler-friend/jsonschema/pattern"
)

// SchemaStore owns a root schema document and lazily compiles pointer-
// addressed locations within it into Schema nodes. A pointer maps to at
// most one Schema: the cache is consulted before any construction, and a
// partially-built node is inserted into the cache before its children are
// recursed into, so a schema that references its own pointer (through
// definitions or otherwise) terminates instead of looping.
type SchemaStore struct {
	root            any
	cache           map[string]*Schema
	patternCompiler pattern.Compiler
}

// Option configures a SchemaStore constructed by NewSchemaStore.
type Option func(*SchemaStore)

// WithPatternCompiler overrides the engine used to compile
// "patternProperties" keys. The default is the ECMA-262 engine in package
// pattern.
func WithPatternCompiler(c pattern.Compiler) Option {
	return func(s *SchemaStore) {
		s.patternCompiler = c
	}
}

// NewSchemaStore returns an empty store. Call Load to give it a document.
func NewSchemaStore(opts ...Option) *SchemaStore {
	s := &SchemaStore{
		cache:           map[string]*Schema{},
		patternCompiler: pattern.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load sets root as the document this store resolves pointers against,
// discards any previously cached nodes, and returns the Schema rooted at
// "#".
func (s *SchemaStore) Load(root any) (*Schema, error) {
	s.root = root
	s.cache = map[string]*Schema{}
	return s.Get("#")
}

// Get returns the Schema at ptr, constructing and caching it on first
// access. ptr must be a pointer into the document most recently passed to
// Load.
func (s *SchemaStore) Get(ptr string) (*Schema, error) {
	if node, ok := s.cache[ptr]; ok {
		return node, nil
	}
	v, err := Resolve(s.root, ptr)
	if err != nil {
		return nil, &SchemaLoadError{Pointer: ptr, Err: err}
	}
	switch vv := v.(type) {
	case bool:
		b := vv
		node := &Schema{Location: ptr, boolean: &b}
		s.cache[ptr] = node
		return node, nil
	case map[string]any:
		node := &Schema{Location: ptr}
		s.cache[ptr] = node
		if err := s.populate(node, ptr, vv); err != nil {
			delete(s.cache, ptr)
			return nil, err
		}
		return node, nil
	default:
		return nil, &SchemaLoadError{Pointer: ptr, Err: fmt.Errorf("value at pointer is neither a boolean nor an object")}
	}
}

// populate parses doc's keywords into node, recursing through the store for
// every child schema so invariant (a) (every reachable child is already in
// the store by the time its parent finishes construction) holds once
// populate returns. "$schema", "$id" and "definitions" are tolerated and
// otherwise ignored: definitions is purely structural, visited only if a
// caller resolves into it directly via Get.
func (s *SchemaStore) populate(node *Schema, ptr string, doc map[string]any) error {
	if raw, ok := doc["type"]; ok {
		types, err := parseTypes(raw)
		if err != nil {
			return &SchemaLoadError{Pointer: ptr, Err: err}
		}
		node.types = types
	}

	node.minimum = numPtr(doc["minimum"])
	node.maximum = numPtr(doc["maximum"])
	node.exclusiveMinimum = numPtr(doc["exclusiveMinimum"])
	node.exclusiveMaximum = numPtr(doc["exclusiveMaximum"])
	node.multipleOf = numPtr(doc["multipleOf"])

	node.minLength = intPtr(doc["minLength"])
	node.maxLength = intPtr(doc["maxLength"])
	node.minItems = intPtr(doc["minItems"])
	node.maxItems = intPtr(doc["maxItems"])
	node.minProperties = intPtr(doc["minProperties"])

	if raw, ok := doc["items"]; ok {
		itemsPtr := Append(ptr, "items")
		if arr, isTuple := raw.([]any); isTuple {
			tuple := make([]*Schema, len(arr))
			for i := range arr {
				sub, err := s.Get(Append(itemsPtr, strconv.Itoa(i)))
				if err != nil {
					return err
				}
				tuple[i] = sub
			}
			node.itemsTuple = tuple
		} else {
			sub, err := s.Get(itemsPtr)
			if err != nil {
				return err
			}
			node.items = sub
		}
	}
	if _, ok := doc["additionalItems"]; ok {
		sub, err := s.Get(Append(ptr, "additionalItems"))
		if err != nil {
			return err
		}
		node.additionalItems = sub
	}
	if _, ok := doc["contains"]; ok {
		sub, err := s.Get(Append(ptr, "contains"))
		if err != nil {
			return err
		}
		node.contains = sub
	}

	if propsDoc, ok := doc["properties"].(map[string]any); ok {
		propsPtr := Append(ptr, "properties")
		node.properties = make(map[string]*Schema, len(propsDoc))
		for _, name := range sortedKeys(propsDoc) {
			sub, err := s.Get(Append(propsPtr, name))
			if err != nil {
				return err
			}
			node.properties[name] = sub
		}
	}
	if ppDoc, ok := doc["patternProperties"].(map[string]any); ok {
		ppPtr := Append(ptr, "patternProperties")
		names := sortedKeys(ppDoc)
		node.patternProperties = make([]patternSchema, 0, len(names))
		for _, pat := range names {
			matcher, err := s.patternCompiler(pat)
			if err != nil {
				return &SchemaLoadError{Pointer: ptr, Err: err}
			}
			sub, err := s.Get(Append(ppPtr, pat))
			if err != nil {
				return err
			}
			node.patternProperties = append(node.patternProperties, patternSchema{matcher: matcher, schema: sub})
		}
	}
	if _, ok := doc["additionalProperties"]; ok {
		sub, err := s.Get(Append(ptr, "additionalProperties"))
		if err != nil {
			return err
		}
		node.additionalProperties = sub
	}
	if raw, ok := doc["required"].([]any); ok {
		node.required = toStringList(raw)
	}
	if depsDoc, ok := doc["dependencies"].(map[string]any); ok {
		depsPtr := Append(ptr, "dependencies")
		node.dependencies = make(map[string]*dependency, len(depsDoc))
		for _, name := range sortedKeys(depsDoc) {
			switch v := depsDoc[name].(type) {
			case []any:
				node.dependencies[name] = &dependency{required: toStringList(v)}
			default:
				sub, err := s.Get(Append(depsPtr, name))
				if err != nil {
					return err
				}
				node.dependencies[name] = &dependency{schema: sub}
			}
		}
	}

	for _, combinator := range []struct {
		name string
		dest *[]*Schema
	}{
		{"allOf", &node.allOf},
		{"anyOf", &node.anyOf},
		{"oneOf", &node.oneOf},
	} {
		raw, ok := doc[combinator.name].([]any)
		if !ok {
			continue
		}
		kwPtr := Append(ptr, combinator.name)
		list := make([]*Schema, len(raw))
		for i := range raw {
			sub, err := s.Get(Append(kwPtr, strconv.Itoa(i)))
			if err != nil {
				return err
			}
			list[i] = sub
		}
		*combinator.dest = list
	}

	if _, ok := doc["if"]; ok {
		sub, err := s.Get(Append(ptr, "if"))
		if err != nil {
			return err
		}
		node.ifSchema = sub
	}
	if _, ok := doc["then"]; ok {
		sub, err := s.Get(Append(ptr, "then"))
		if err != nil {
			return err
		}
		node.thenSchema = sub
	}
	if _, ok := doc["else"]; ok {
		sub, err := s.Get(Append(ptr, "else"))
		if err != nil {
			return err
		}
		node.elseSchema = sub
	}

	if v, ok := doc["const"]; ok {
		node.constant = v
		node.hasConstant = true
	}
	if raw, ok := doc["enum"].([]any); ok {
		node.enum = raw
	}

	return nil
}

func parseTypes(raw any) ([]TypeTag, error) {
	switch v := raw.(type) {
	case string:
		t, ok := typeTagByName[v]
		if !ok {
			return nil, fmt.Errorf("unknown type %q", v)
		}
		return []TypeTag{t}, nil
	case []any:
		types := make([]TypeTag, len(v))
		for i, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("type entries must be strings, got %T", item)
			}
			t, ok := typeTagByName[name]
			if !ok {
				return nil, fmt.Errorf("unknown type %q", name)
			}
			types[i] = t
		}
		return types, nil
	default:
		return nil, fmt.Errorf("type must be a string or an array of strings, got %T", raw)
	}
}

func numPtr(raw any) *float64 {
	switch v := raw.(type) {
	case int64:
		f := float64(v)
		return &f
	case float64:
		return &v
	default:
		return nil
	}
}

func intPtr(raw any) *int {
	switch v := raw.(type) {
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	default:
		return nil
	}
}

func toStringList(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
