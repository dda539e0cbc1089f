// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// deepEqual implements the equality rule "const" and "enum" compare
// against: numeric comparison uses double-precision equality unless both
// sides are integer-tagged, in which case exact int64 equality applies;
// arrays and objects compare by structural deep equality rather than the
// reference's serialized-form comparison, which agrees with it on every
// non-pathological input.
func deepEqual(a, b any) bool {
	ta, erra := Classify(a)
	tb, errb := Classify(b)
	if erra != nil || errb != nil {
		return false
	}
	if isNumeric(ta) && isNumeric(tb) {
		if ta == Integer && tb == Integer {
			return a.(int64) == b.(int64)
		}
		return toFloat(a) == toFloat(b)
	}
	if ta != tb {
		return false
	}
	switch ta {
	case Null:
		return true
	case Boolean:
		return a.(bool) == b.(bool)
	case String:
		return a.(string) == b.(string)
	case Array:
		aa, bb := a.([]any), b.([]any)
		if len(aa) != len(bb) {
			return false
		}
		for i := range aa {
			if !deepEqual(aa[i], bb[i]) {
				return false
			}
		}
		return true
	case Object:
		ao, bo := a.(map[string]any), b.(map[string]any)
		if len(ao) != len(bo) {
			return false
		}
		for k, v := range ao {
			bv, ok := bo[k]
			if !ok || !deepEqual(v, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
