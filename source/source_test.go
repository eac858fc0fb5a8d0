package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
)

func TestDecodeJSONKeepsNumbersExact(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"id": 1.5, "n": 9223372036854775807}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	if _, ok := m["id"].(json.Number); !ok {
		t.Fatalf("id = %T, want json.Number", m["id"])
	}
	if m["n"].(json.Number).String() != "9223372036854775807" {
		t.Fatalf("large integer lost precision: %v", m["n"])
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{} {}`)); err == nil {
		t.Fatalf("want error for trailing data")
	}
	if _, err := DecodeJSON([]byte(`{`)); err == nil {
		t.Fatalf("want error for truncated input")
	}
}

func TestDecodeYAMLNormalizesMappings(t *testing.T) {
	v, err := DecodeYAML([]byte("type: object\nrequired:\n  - id\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("decoded = %T, want map[string]any", v)
	}
	req, ok := m["required"].([]any)
	if !ok || len(req) != 1 || req[0] != "id" {
		t.Fatalf("required = %v", m["required"])
	}
}

func TestDetectType(t *testing.T) {
	cases := []struct {
		path string
		want Type
		ok   bool
	}{
		{"req.json", TypeJSON, true},
		{"schema.yaml", TypeYAML, true},
		{"schema.YML", TypeYAML, true},
		{"noext", "", false},
		{"data.txt", "", false},
	}
	for _, tc := range cases {
		got, err := DetectType(tc.path)
		if tc.ok != (err == nil) || got != tc.want {
			t.Errorf("DetectType(%q) = %v, %v", tc.path, got, err)
		}
	}
}

func TestParseTypeAliases(t *testing.T) {
	if tp, err := ParseType("YML"); err != nil || tp != TypeYAML {
		t.Fatalf("ParseType(YML) = %v, %v", tp, err)
	}
	if _, err := ParseType("toml"); err == nil {
		t.Fatalf("want error for unsupported type")
	}
}

func TestLoadFileExplicitOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	// JSON content behind a .yaml name; the explicit type must win.
	path := filepath.Join(dir, "data.yaml")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := LoadFile(path, "json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := v.(map[string]any)["a"].(json.Number); !ok {
		t.Fatalf("explicit json type was not applied: %#v", v)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"), ""); err == nil {
		t.Fatalf("want error for missing file")
	}
}
