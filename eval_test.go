package apischema_test

import (
	"context"
	"strings"
	"testing"

	apischema "github.com/apischema/apischema"
	"github.com/apischema/apischema/format"
	"github.com/apischema/apischema/schema"
)

func codesOf(res *apischema.Result) []string {
	out := make([]string, 0, len(res.Violations))
	for _, v := range res.Violations {
		out = append(out, v.Code)
	}
	return out
}

func TestEmptySchemaAcceptsEverything(t *testing.T) {
	v := mustCompile(t, `{}`, apischema.Options{})
	for _, inst := range []string{`null`, `true`, `1`, `"s"`, `[]`, `{"a":1}`} {
		if res := mustValidate(t, v, inst); !res.Valid {
			t.Errorf("instance %s: %v", inst, res.Violations)
		}
	}
}

func TestBooleanLiteralSchemas(t *testing.T) {
	if res := mustValidate(t, mustCompile(t, `true`, apischema.Options{}), `{"anything": 1}`); !res.Valid {
		t.Fatalf("true schema must accept everything: %v", res.Violations)
	}
	res := mustValidate(t, mustCompile(t, `false`, apischema.Options{}), `null`)
	if res.Valid || res.Violations[0].Code != apischema.CodeNotAllowed {
		t.Fatalf("false schema must reject everything: %v", res.Violations)
	}
}

func TestNumericBounds(t *testing.T) {
	v := mustCompile(t, `{"minimum": 2, "maximum": 10, "multipleOf": 2}`, apischema.Options{})
	cases := []struct {
		inst  string
		codes []string
	}{
		{`4`, nil},
		{`1`, []string{apischema.CodeTooSmall, apischema.CodeNotMultipleOf}},
		{`11`, []string{apischema.CodeTooBig, apischema.CodeNotMultipleOf}},
		{`"not-a-number"`, nil}, // bounds only apply to numbers
	}
	for _, tc := range cases {
		res := mustValidate(t, v, tc.inst)
		got := codesOf(res)
		if len(got) != len(tc.codes) {
			t.Errorf("instance %s: codes = %v, want %v", tc.inst, got, tc.codes)
			continue
		}
		for i := range got {
			if got[i] != tc.codes[i] {
				t.Errorf("instance %s: codes = %v, want %v", tc.inst, got, tc.codes)
			}
		}
	}
}

func TestExclusiveBounds(t *testing.T) {
	v := mustCompile(t, `{"exclusiveMinimum": 3, "exclusiveMaximum": 5}`, apischema.Options{})
	if res := mustValidate(t, v, `4`); !res.Valid {
		t.Fatalf("4 within (3,5): %v", res.Violations)
	}
	if res := mustValidate(t, v, `3`); res.Valid {
		t.Fatalf("3 must violate exclusiveMinimum")
	}
	if res := mustValidate(t, v, `5`); res.Valid {
		t.Fatalf("5 must violate exclusiveMaximum")
	}
}

func TestStringLengthCountsCharacters(t *testing.T) {
	v := mustCompile(t, `{"minLength": 3, "maxLength": 4}`, apischema.Options{})
	// Three runes, nine bytes.
	if res := mustValidate(t, v, `"日本語"`); !res.Valid {
		t.Fatalf("length must count characters, not bytes: %v", res.Violations)
	}
	if res := mustValidate(t, v, `"ab"`); res.Valid || res.Violations[0].Code != apischema.CodeTooShort {
		t.Fatalf("want too_short, got %v", res.Violations)
	}
	if res := mustValidate(t, v, `"abcde"`); res.Valid || res.Violations[0].Code != apischema.CodeTooLong {
		t.Fatalf("want too_long, got %v", res.Violations)
	}
}

func TestPatternAndFormat(t *testing.T) {
	v := mustCompile(t, `{"pattern": "^[a-z]+$", "format": "email"}`, apischema.Options{})
	res := mustValidate(t, v, `"NOPE"`)
	got := codesOf(res)
	if len(got) != 2 || got[0] != apischema.CodePattern || got[1] != apischema.CodeInvalidFormat {
		t.Fatalf("codes = %v", got)
	}
}

func TestUnknownFormatPasses(t *testing.T) {
	v := mustCompile(t, `{"format": "credit-card"}`, apischema.Options{})
	if res := mustValidate(t, v, `"anything"`); !res.Valid {
		t.Fatalf("unregistered format must pass: %v", res.Violations)
	}
}

func TestCustomFormatRegistry(t *testing.T) {
	reg := format.NewRegistry()
	reg.Register("shouty", func(s string) bool { return s == strings.ToUpper(s) })
	v := mustCompile(t, `{"format": "shouty"}`, apischema.Options{Formats: reg})
	if res := mustValidate(t, v, `"LOUD"`); !res.Valid {
		t.Fatalf("custom format should pass: %v", res.Violations)
	}
	if res := mustValidate(t, v, `"quiet"`); res.Valid {
		t.Fatalf("custom format should fail")
	}
}

func TestEnumStructuralEquality(t *testing.T) {
	v := mustCompile(t, `{"enum": [{"a": 1, "b": [true, null]}, "x"]}`, apischema.Options{})
	if res := mustValidate(t, v, `{"b": [true, null], "a": 1}`); !res.Valid {
		t.Fatalf("structural equality must ignore key order: %v", res.Violations)
	}
	if res := mustValidate(t, v, `{"a": 1, "b": [null, true]}`); res.Valid {
		t.Fatalf("element order must matter inside sequences")
	}
}

func TestAdditionalPropertiesPolicies(t *testing.T) {
	deny := mustCompile(t, `{"properties": {"a": {}}, "additionalProperties": false}`, apischema.Options{})
	res := mustValidate(t, deny, `{"a": 1, "x": 1, "b": 2}`)
	got := codesOf(res)
	if len(got) != 2 || got[0] != apischema.CodeUnknownKey || got[1] != apischema.CodeUnknownKey {
		t.Fatalf("codes = %v", got)
	}
	// Undeclared keys are reported in sorted order.
	if res.Violations[0].InstancePath != "/b" || res.Violations[1].InstancePath != "/x" {
		t.Fatalf("paths = %s, %s", res.Violations[0].InstancePath, res.Violations[1].InstancePath)
	}

	constrained := mustCompile(t, `{"properties": {"a": {}}, "additionalProperties": {"type": "string"}}`, apischema.Options{})
	res = mustValidate(t, constrained, `{"a": 1, "x": 1}`)
	if len(res.Violations) != 1 || res.Violations[0].InstancePath != "/x" {
		t.Fatalf("violations = %v", res.Violations)
	}
}

func TestPropertyCountBounds(t *testing.T) {
	v := mustCompile(t, `{"minProperties": 1, "maxProperties": 2}`, apischema.Options{})
	if res := mustValidate(t, v, `{}`); res.Valid || res.Violations[0].Code != apischema.CodeTooFewProperties {
		t.Fatalf("want too_few_properties, got %v", res.Violations)
	}
	if res := mustValidate(t, v, `{"a":1,"b":2,"c":3}`); res.Valid || res.Violations[0].Code != apischema.CodeTooManyProperties {
		t.Fatalf("want too_many_properties, got %v", res.Violations)
	}
}

func TestTupleItemsWithOverflow(t *testing.T) {
	denied := mustCompile(t, `{"items": [{"type": "string"}, {"type": "number"}], "additionalItems": false}`, apischema.Options{})
	if res := mustValidate(t, denied, `["a", 1]`); !res.Valid {
		t.Fatalf("exact tuple should pass: %v", res.Violations)
	}
	res := mustValidate(t, denied, `["a", 1, true]`)
	if res.Valid || res.Violations[0].Code != apischema.CodeTooManyItems || res.Violations[0].InstancePath != "/2" {
		t.Fatalf("violations = %v", res.Violations)
	}

	constrained := mustCompile(t, `{"items": [{"type": "string"}], "additionalItems": {"type": "number"}}`, apischema.Options{})
	res = mustValidate(t, constrained, `["a", 1, "oops"]`)
	if len(res.Violations) != 1 || res.Violations[0].InstancePath != "/2" {
		t.Fatalf("violations = %v", res.Violations)
	}
}

func TestUniqueItems(t *testing.T) {
	v := mustCompile(t, `{"uniqueItems": true}`, apischema.Options{})
	if res := mustValidate(t, v, `[1, 2, 3]`); !res.Valid {
		t.Fatalf("distinct items should pass: %v", res.Violations)
	}
	res := mustValidate(t, v, `[{"a":1}, 2, {"a":1.0}]`)
	if res.Valid || len(res.Violations) != 1 {
		t.Fatalf("violations = %v", res.Violations)
	}
	vio := res.Violations[0]
	if vio.Code != apischema.CodeDuplicateItems || vio.InstancePath != "/2" || vio.Params["duplicateOf"] != 0 {
		t.Fatalf("violation = %+v", vio)
	}
}

func TestNotCombinator(t *testing.T) {
	v := mustCompile(t, `{"not": {"type": "string"}}`, apischema.Options{})
	if res := mustValidate(t, v, `1`); !res.Valid {
		t.Fatalf("non-string should pass: %v", res.Violations)
	}
	res := mustValidate(t, v, `"s"`)
	if res.Valid || res.Violations[0].Code != apischema.CodeNotMatched {
		t.Fatalf("violations = %v", res.Violations)
	}
}

func TestReferenceExtendsSchemaPath(t *testing.T) {
	v := mustCompile(t, `{
		"properties": {"id": {"$ref": "#/definitions/id"}},
		"definitions": {"id": {"type": "integer"}}
	}`, apischema.Options{})
	res := mustValidate(t, v, `{"id": "nope"}`)
	if res.Valid || len(res.Violations) != 1 {
		t.Fatalf("violations = %v", res.Violations)
	}
	sp := res.Violations[0].SchemaPath
	if sp != "/properties/id/$ref/definitions/id/type" {
		t.Fatalf("schema path = %q, want the traversed reference chain", sp)
	}
}

func TestMutualReferenceCycleTerminates(t *testing.T) {
	v := mustCompile(t, `{
		"$ref": "#/definitions/a",
		"definitions": {
			"a": {"$ref": "#/definitions/b"},
			"b": {"$ref": "#/definitions/a"}
		}
	}`, apischema.Options{MaxDepth: 16})
	res, err := v.Validate(context.Background(), mustDecode(t, `1`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if res.Valid || res.Violations[0].Code != apischema.CodeDepthExceeded {
		t.Fatalf("violations = %v", res.Violations)
	}
}

func TestOpenAPINullable(t *testing.T) {
	raw := `{"type": "string", "nullable": true}`
	oa := mustCompile(t, raw, apischema.Options{Profile: schema.ProfileOpenAPI})
	if res := mustValidate(t, oa, `null`); !res.Valid {
		t.Fatalf("nullable string must admit null under the OpenAPI profile: %v", res.Violations)
	}
	plain := mustCompile(t, raw, apischema.Options{})
	if res := mustValidate(t, plain, `null`); res.Valid {
		t.Fatalf("nullable must be inert outside the OpenAPI profile")
	}
}

func TestTypeUnionMatchesAny(t *testing.T) {
	v := mustCompile(t, `{"type": ["string", "null"]}`, apischema.Options{})
	for _, inst := range []string{`"s"`, `null`} {
		if res := mustValidate(t, v, inst); !res.Valid {
			t.Errorf("instance %s: %v", inst, res.Violations)
		}
	}
	res := mustValidate(t, v, `1`)
	if res.Valid {
		t.Fatalf("number must not match string|null")
	}
	if expected := res.Violations[0].Params["expected"]; len(expected.([]string)) != 2 {
		t.Fatalf("params = %v", res.Violations[0].Params)
	}
}
