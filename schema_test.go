package jsonschema

import (
	"math"
	"testing"

	"github.com/jimblackler-friend/jsonschema/internal/fixtureload"
	"github.com/jimblackler-friend/jsonschema/kind"
)

func mustLoad(t *testing.T, schemaJSON string) *Schema {
	t.Helper()
	doc, err := fixtureload.LoadJSON([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("parsing schema fixture: %v", err)
	}
	schema, err := NewSchemaStore().Load(doc)
	if err != nil {
		t.Fatalf("loading schema: %v", err)
	}
	return schema
}

func mustInstance(t *testing.T, instanceJSON string) any {
	t.Helper()
	v, err := fixtureload.LoadJSON([]byte(instanceJSON))
	if err != nil {
		t.Fatalf("parsing instance fixture: %v", err)
	}
	return v
}

func validate(t *testing.T, schema *Schema, instance any) ErrorList {
	t.Helper()
	var errs ErrorList
	if err := (Validator{}).Validate(schema, instance, &errs); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return errs
}

func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name       string
		schema     string
		instance   string
		wantErrAt  string // "" means no errors expected
		wantErrors int
	}{
		{
			name:       "property type mismatch",
			schema:     `{"properties":{"myValue":{"type":"integer"}}}`,
			instance:   `{"myValue":"x"}`,
			wantErrAt:  "#/myValue",
			wantErrors: 1,
		},
		{
			name:       "property type match",
			schema:     `{"properties":{"myValue":{"type":"integer"}}}`,
			instance:   `{"myValue":1}`,
			wantErrors: 0,
		},
		{
			name:       "multipleOf violated",
			schema:     `{"type":"integer","multipleOf":2}`,
			instance:   `3`,
			wantErrAt:  "#",
			wantErrors: 1,
		},
		{
			name:       "multipleOf satisfied",
			schema:     `{"type":"integer","multipleOf":2}`,
			instance:   `4`,
			wantErrors: 0,
		},
		{
			name:       "oneOf matches both branches",
			schema:     `{"oneOf":[{"type":"integer"},{"type":"number"}]}`,
			instance:   `1`,
			wantErrAt:  "#",
			wantErrors: 1,
		},
		{
			name:       "oneOf matches exactly one branch",
			schema:     `{"oneOf":[{"type":"integer"},{"type":"number"}]}`,
			instance:   `1.5`,
			wantErrors: 0,
		},
		{
			name:       "contains satisfied",
			schema:     `{"type":"array","contains":{"const":7}}`,
			instance:   `[1,2,7]`,
			wantErrors: 0,
		},
		{
			name:       "contains unsatisfied",
			schema:     `{"type":"array","contains":{"const":7}}`,
			instance:   `[1,2,3]`,
			wantErrAt:  "#",
			wantErrors: 1,
		},
		{
			name:       "dependency unmet",
			schema:     `{"dependencies":{"a":["b"]}}`,
			instance:   `{"a":1}`,
			wantErrAt:  "#",
			wantErrors: 1,
		},
		{
			name:       "dependency met",
			schema:     `{"dependencies":{"a":["b"]}}`,
			instance:   `{"a":1,"b":2}`,
			wantErrors: 0,
		},
		{
			name:       "if/then missing x",
			schema:     `{"if":{"properties":{"k":{"const":1}},"required":["k"]},"then":{"required":["x"]},"else":{"required":["y"]}}`,
			instance:   `{"k":1}`,
			wantErrAt:  "#",
			wantErrors: 1,
		},
		{
			name:       "if/then missing y",
			schema:     `{"if":{"properties":{"k":{"const":1}},"required":["k"]},"then":{"required":["x"]},"else":{"required":["y"]}}`,
			instance:   `{"k":2}`,
			wantErrAt:  "#",
			wantErrors: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			schema := mustLoad(t, test.schema)
			instance := mustInstance(t, test.instance)
			errs := validate(t, schema, instance)
			if len(errs) != test.wantErrors {
				t.Fatalf("got %d errors, want %d: %v", len(errs), test.wantErrors, errs)
			}
			if test.wantErrAt != "" && len(errs) > 0 && errs[0].Pointer != test.wantErrAt {
				t.Errorf("got error at %q, want %q", errs[0].Pointer, test.wantErrAt)
			}
		})
	}
}

func TestBooleanSchemaTrueAlwaysPasses(t *testing.T) {
	schema := mustLoad(t, `true`)
	for _, instance := range []string{`1`, `"x"`, `null`, `[1,2]`, `{"a":1}`} {
		errs := validate(t, schema, mustInstance(t, instance))
		if len(errs) != 0 {
			t.Errorf("instance %s: got %d errors, want 0", instance, len(errs))
		}
	}
}

func TestBooleanSchemaFalseAlwaysFails(t *testing.T) {
	schema := mustLoad(t, `false`)
	for _, instance := range []string{`1`, `"x"`, `null`, `[1,2]`, `{"a":1}`} {
		errs := validate(t, schema, mustInstance(t, instance))
		if len(errs) != 1 {
			t.Errorf("instance %s: got %d errors, want exactly 1", instance, len(errs))
		}
	}
}

func TestEmptyObjectSchemaAcceptsEverything(t *testing.T) {
	schema := mustLoad(t, `{}`)
	for _, instance := range []string{`1`, `1.5`, `"x"`, `null`, `true`, `[1,2]`, `{"a":1}`} {
		errs := validate(t, schema, mustInstance(t, instance))
		if len(errs) != 0 {
			t.Errorf("instance %s: got %d errors, want 0", instance, len(errs))
		}
	}
}

func TestAbsentTypeNeverEmitsTypeMismatch(t *testing.T) {
	schema := mustLoad(t, `{"minimum":0}`)
	for _, instance := range []string{`"x"`, `null`, `true`, `[1,2]`, `{"a":1}`} {
		errs := validate(t, schema, mustInstance(t, instance))
		if len(errs) != 0 {
			t.Errorf("instance %s: got %d errors, want 0 (no declared type)", instance, len(errs))
		}
	}
}

func TestIntegerSatisfiesBothIntegerAndNumberType(t *testing.T) {
	for _, typeName := range []string{"integer", "number"} {
		schema := mustLoad(t, `{"type":"`+typeName+`"}`)
		errs := validate(t, schema, mustInstance(t, `3`))
		if len(errs) != 0 {
			t.Errorf("type %q: integer instance got %d errors, want 0", typeName, len(errs))
		}
	}
	schema := mustLoad(t, `{"type":"number"}`)
	errs := validate(t, schema, mustInstance(t, `3.5`))
	if len(errs) != 0 {
		t.Errorf("non-integer number rejected by \"number\" type: %v", errs)
	}
}

func TestNonIntegerNumberRejectsIntegerType(t *testing.T) {
	schema := mustLoad(t, `{"type":"integer"}`)
	errs := validate(t, schema, mustInstance(t, `3.5`))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
}

func TestAllOfConcatenatesErrors(t *testing.T) {
	schema := mustLoad(t, `{"allOf":[{"minimum":10},{"maximum":0}]}`)
	errs := validate(t, schema, mustInstance(t, `5`))
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2 (one per failing allOf branch)", len(errs))
	}
}

func TestAdditionalPropertiesExemptsMatchedNames(t *testing.T) {
	schema := mustLoad(t, `{"properties":{"a":{}},"patternProperties":{"^b":{}},"additionalProperties":false}`)
	errs := validate(t, schema, mustInstance(t, `{"a":1,"bb":2,"c":3}`))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (only \"c\" is unmatched)", len(errs))
	}
	if errs[0].Pointer != "#/c" {
		t.Errorf("got error at %q, want #/c", errs[0].Pointer)
	}
}

func TestTupleItemsWithAdditionalItems(t *testing.T) {
	schema := mustLoad(t, `{"items":[{"type":"string"}],"additionalItems":{"type":"number"}}`)
	errs := validate(t, schema, mustInstance(t, `["x", 1, "y"]`))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (index 2 violates additionalItems)", len(errs))
	}
	if errs[0].Pointer != "#/2" {
		t.Errorf("got error at %q, want #/2", errs[0].Pointer)
	}
}

func TestConstAndEnum(t *testing.T) {
	schema := mustLoad(t, `{"const":[1,2]}`)
	if errs := validate(t, schema, mustInstance(t, `[1,2]`)); len(errs) != 0 {
		t.Errorf("equal arrays should satisfy const: %v", errs)
	}
	if errs := validate(t, schema, mustInstance(t, `[1,3]`)); len(errs) != 1 {
		t.Errorf("unequal arrays should violate const, got %d errors", len(errs))
	}

	enumSchema := mustLoad(t, `{"enum":[1,2,3]}`)
	if errs := validate(t, enumSchema, mustInstance(t, `2`)); len(errs) != 0 {
		t.Errorf("member of enum should pass: %v", errs)
	}
	if errs := validate(t, enumSchema, mustInstance(t, `4`)); len(errs) != 1 {
		t.Errorf("non-member of enum should fail, got %d errors", len(errs))
	}
}

func TestIntegerEqualsNumberInConst(t *testing.T) {
	schema := mustLoad(t, `{"const":2}`)
	if errs := validate(t, schema, mustInstance(t, `2.0`)); len(errs) != 0 {
		t.Errorf("2.0 should equal const 2 under double-precision equality: %v", errs)
	}
}

func TestNaNSkipsRangeChecksAndFailsDeclaredType(t *testing.T) {
	schema := mustLoad(t, `{"type":"number","minimum":0}`)
	errs := validate(t, schema, math.NaN())
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (type mismatch only, range checks skipped)", len(errs))
	}
	if _, ok := errs[0].Kind.(*kind.TypeMismatch); !ok {
		t.Errorf("got Kind %T, want *kind.TypeMismatch", errs[0].Kind)
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	schema := mustLoad(t, `{"properties":{"a":{"type":"string"},"b":{"type":"string"},"c":{"type":"string"}},"required":["a","b","c"]}`)
	instance := mustInstance(t, `{"a":1,"b":2,"c":3}`)
	first := validate(t, schema, instance)
	for i := 0; i < 5; i++ {
		again := validate(t, schema, instance)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d errors, want %d (validation must be deterministic)", i, len(again), len(first))
		}
		for j := range first {
			if again[j].Pointer != first[j].Pointer {
				t.Errorf("run %d: error %d at %q, want %q", i, j, again[j].Pointer, first[j].Pointer)
			}
		}
	}
}
