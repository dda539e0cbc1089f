package jsonschema

import "fmt"

// TypeTag classifies a JSON value into one of the seven JSON Schema types.
type TypeTag int

const (
	Null TypeTag = iota
	Boolean
	Integer
	Number
	String
	Array
	Object
)

var typeTagNames = [...]string{
	Null:    "null",
	Boolean: "boolean",
	Integer: "integer",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (t TypeTag) String() string {
	if int(t) < 0 || int(t) >= len(typeTagNames) {
		return fmt.Sprintf("TypeTag(%d)", int(t))
	}
	return typeTagNames[t]
}

// typeTagByName maps the keyword strings allowed in "type" to a TypeTag.
var typeTagByName = map[string]TypeTag{
	"null":    Null,
	"boolean": Boolean,
	"integer": Integer,
	"number":  Number,
	"string":  String,
	"array":   Array,
	"object":  Object,
}

// InvalidValueError is returned by Classify when v is not one of the seven
// value shapes the package accepts: nil, bool, int64, float64, string,
// []any, map[string]any.
type InvalidValueError struct {
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("jsonschema: invalid json value of type %T", e.Value)
}

// Classify returns the TypeTag of v, the already-parsed value tree described
// in the package doc comment.
func Classify(v any) (TypeTag, error) {
	switch v.(type) {
	case nil:
		return Null, nil
	case bool:
		return Boolean, nil
	case int64:
		return Integer, nil
	case float64:
		return Number, nil
	case string:
		return String, nil
	case []any:
		return Array, nil
	case map[string]any:
		return Object, nil
	default:
		return 0, &InvalidValueError{Value: v}
	}
}

// isNumeric reports whether t is Integer or Number.
func isNumeric(t TypeTag) bool {
	return t == Integer || t == Number
}

// toFloat converts an Integer- or Number-tagged value to float64.
func toFloat(v any) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		panic(fmt.Sprintf("jsonschema: toFloat called with non-numeric value %T", v))
	}
}
