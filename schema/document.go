package schema

import "fmt"

// Document pairs a decoded schema document with its parsed root. It is
// read-only after construction, so one Document may be shared by any number
// of concurrent validations without locking. Per-run state (resolution cache
// and in-progress chain) lives with the caller, not here.
type Document struct {
	raw     any
	profile Profile
	root    *Node
}

// NewDocument parses the root of a decoded schema document.
func NewDocument(raw any, profile Profile) (*Document, error) {
	root, err := Parse(raw, profile)
	if err != nil {
		return nil, err
	}
	return &Document{raw: raw, profile: profile, root: root}, nil
}

// Root returns the parsed root node.
func (d *Document) Root() *Node { return d.root }

// Profile returns the keyword-interpretation profile the document was
// parsed with.
func (d *Document) Profile() Profile { return d.profile }

// Fragment walks the raw document by pointer segments and returns the
// addressed fragment, still undecoded into a Node. A missing segment yields
// an *UnresolvedError.
func (d *Document) Fragment(pointer string) (any, error) {
	segs, err := ParsePointer(pointer)
	if err != nil {
		return nil, &UnresolvedError{Pointer: pointer, Reason: err.Error()}
	}
	cur := d.raw
	for _, seg := range segs {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, &UnresolvedError{Pointer: pointer, Reason: fmt.Sprintf("no key %q", seg)}
			}
			cur = next
		case []any:
			i, err := arrayIndex(seg, len(node))
			if err != nil {
				return nil, &UnresolvedError{Pointer: pointer, Reason: err.Error()}
			}
			cur = node[i]
		default:
			return nil, &UnresolvedError{Pointer: pointer, Reason: fmt.Sprintf("segment %q addresses a scalar", seg)}
		}
	}
	return cur, nil
}

// UnresolvedError reports a pointer that does not address a fragment of the
// document.
type UnresolvedError struct {
	Pointer string
	Reason  string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("schema: unresolved reference %q: %s", e.Pointer, e.Reason)
}
