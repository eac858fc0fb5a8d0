package i18n

import (
	"strings"
	"testing"
)

func TestMessageSubstitution(t *testing.T) {
	msg := T("invalid_type", map[string]string{"expected": "integer", "actual": "number"})
	if msg != "expected integer, got number" {
		t.Fatalf("msg = %q", msg)
	}
	msg = T("required", map[string]string{"key": `"id"`})
	if !strings.Contains(msg, `"id"`) {
		t.Fatalf("msg = %q", msg)
	}
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("msg = %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	SetLanguage("ja")
	defer SetLanguage("en")
	msg := T("required", map[string]string{"key": "id"})
	if !strings.Contains(msg, "id") || msg == "missing required property id" {
		t.Fatalf("japanese message expected, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string {
	return strings.ToUpper(code)
}

func TestSetTranslator(t *testing.T) {
	SetTranslator(upperTranslator{})
	defer SetTranslator(nil)
	if got := T("pattern", nil); got != "PATTERN" {
		t.Fatalf("msg = %q", got)
	}
}
