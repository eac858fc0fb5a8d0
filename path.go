package apischema

import (
	"strconv"
	"strings"
)

// Path builds JSON Pointer paths in a chain-safe way. The zero value is the
// document root. Derived paths never alias the receiver, so a Path may be
// handed to multiple sub-evaluations.
type Path struct {
	parts []string
}

// Field returns the path extended by an object key, escaped per RFC 6901.
func (p Path) Field(name string) Path {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index returns the path extended by an array index.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Append returns the path extended by the given raw segments.
func (p Path) Append(segments ...string) Path {
	np := p
	for _, s := range segments {
		np = np.Field(s)
	}
	return np
}

// Pointer renders the path as a JSON Pointer. The root renders as "/".
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Violation creates a Violation anchored at this instance path.
func (p Path) Violation(schemaPath Path, code, msg string, params map[string]any) Violation {
	return Violation{
		InstancePath: p.Pointer(),
		SchemaPath:   schemaPath.Pointer(),
		Code:         code,
		Message:      msg,
		Params:       params,
	}
}
