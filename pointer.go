// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// PathUtils-equivalent free functions: JSON-Pointer URI manipulation over the
// already-parsed value tree (RFC 6901, fragment-prefixed: "#/seg1/seg2").

// Append returns the child pointer of base naming segment seg, escaping '~'
// as '~0' and '/' as '~1' per RFC 6901.
func Append(base, seg string) string {
	seg = strings.Replace(seg, "~", "~0", -1)
	seg = strings.Replace(seg, "/", "~1", -1)
	return base + "/" + seg
}

// PointerNotFoundError is returned by Resolve when ptr does not name a value
// reachable from root.
type PointerNotFoundError struct {
	Pointer string
}

func (e *PointerNotFoundError) Error() string {
	return fmt.Sprintf("jsonschema: pointer not found: %s", e.Pointer)
}

// Resolve walks ptr ("#" or "#/seg1/seg2/...") from root and returns the
// value it names. Numeric segments index into arrays; all other segments
// index into objects. A segment equal to the empty string names the key "".
func Resolve(root any, ptr string) (any, error) {
	if !strings.HasPrefix(ptr, "#") {
		return nil, &PointerNotFoundError{Pointer: ptr}
	}
	rest := strings.TrimPrefix(ptr, "#")
	if rest == "" {
		return root, nil
	}
	rest = strings.TrimPrefix(rest, "/")
	v := root
	for _, tok := range strings.Split(rest, "/") {
		tok = unescapeToken(tok)
		switch container := v.(type) {
		case map[string]any:
			next, ok := container[tok]
			if !ok {
				return nil, &PointerNotFoundError{Pointer: ptr}
			}
			v = next
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(container) {
				return nil, &PointerNotFoundError{Pointer: ptr}
			}
			v = container[idx]
		default:
			return nil, &PointerNotFoundError{Pointer: ptr}
		}
	}
	return v, nil
}

// unescapeToken reverses the RFC 6901 escaping of a single pointer segment.
// '~1' must be translated before '~0', or "~01" would wrongly become "/".
func unescapeToken(tok string) string {
	tok = strings.Replace(tok, "~1", "/", -1)
	tok = strings.Replace(tok, "~0", "~", -1)
	return tok
}
