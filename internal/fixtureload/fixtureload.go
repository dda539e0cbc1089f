// Package fixtureload parses test-fixture schema and instance documents
// from JSON or YAML source into the value shape the jsonschema package
// consumes: nil, bool, int64, float64, string, []any, map[string]any.
//
// This exists only so tests can write fixtures by hand without hand-rolling
// a JSON decoder that distinguishes integers from floats; it is not part of
// the validator itself, which never touches a filesystem or a parser.
package fixtureload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses data as YAML if name ends in ".yaml" or ".yml", otherwise as
// JSON, and normalizes the result into this module's value representation.
func Load(name string, data []byte) (any, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return LoadYAML(data)
	}
	return LoadJSON(data)
}

// LoadJSON parses data as a single JSON value, preserving the
// integer/floating-point distinction via json.Number.
func LoadJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalize(v)
}

// LoadYAML parses data as a single YAML document.
func LoadYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v)
}

func normalize(v any) (any, error) {
	switch vv := v.(type) {
	case nil, bool, string, int64, float64:
		return vv, nil
	case int:
		return int64(vv), nil
	case json.Number:
		return normalizeNumber(vv.String())
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, item := range vv {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("fixtureload: unsupported value of type %T", v)
	}
}

func normalizeNumber(s string) (any, error) {
	if !strings.ContainsAny(s, ".eE") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("fixtureload: bad number %q: %w", s, err)
	}
	return f, nil
}
