// Package report renders validation results for surrounding tooling. The
// engine itself never formats for a terminal; it hands over a structured
// Result and this package turns it into text or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	apischema "github.com/apischema/apischema"
)

// Renderer writes human-readable reports. Color is opt-in so callers can
// key it off terminal detection.
type Renderer struct {
	Color bool
}

// Text writes one line per violation, nesting combinator causes indented
// underneath their parent record.
func (r Renderer) Text(w io.Writer, res *apischema.Result) error {
	if res.Valid {
		if _, err := fmt.Fprintln(w, r.paint(color.FgGreen, "valid")); err != nil {
			return err
		}
		return nil
	}
	head := fmt.Sprintf("invalid: %d violation(s)", len(res.Violations))
	if _, err := fmt.Fprintln(w, r.paint(color.FgRed, head)); err != nil {
		return err
	}
	return r.writeViolations(w, res.Violations, 1)
}

func (r Renderer) writeViolations(w io.Writer, vs apischema.Violations, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, v := range vs {
		line := fmt.Sprintf("%s%s: %s %s (schema %s)",
			indent, v.InstancePath, v.Message, r.paint(color.FgYellow, "["+v.Code+"]"), v.SchemaPath)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if len(v.Causes) > 0 {
			if err := r.writeViolations(w, v.Causes, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r Renderer) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if !r.Color {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// JSON writes the result as indented JSON, stable across runs because the
// engine emits violations in deterministic order.
func JSON(w io.Writer, res *apischema.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
