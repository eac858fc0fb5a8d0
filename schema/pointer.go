package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePointer splits a reference pointer into unescaped segments. Accepted
// forms: "#", "#/a/b", "/a/b" and "" (document root). Escapes follow
// RFC 6901 (~0 -> ~, ~1 -> /).
func ParsePointer(pointer string) ([]string, error) {
	p := strings.TrimPrefix(pointer, "#")
	if p == "" || p == "/" {
		return nil, nil
	}
	if !strings.HasPrefix(p, "/") {
		return nil, fmt.Errorf("pointer %q must start with '#/' or '/'", pointer)
	}
	raw := strings.Split(p[1:], "/")
	segs := make([]string, len(raw))
	for i, s := range raw {
		segs[i] = strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
	}
	return segs, nil
}

func arrayIndex(seg string, length int) (int, error) {
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, fmt.Errorf("segment %q is not an array index", seg)
	}
	if i < 0 || i >= length {
		return 0, fmt.Errorf("index %d out of range (len %d)", i, length)
	}
	return i, nil
}
