// Package schema holds the in-memory document model for parsed schema
// documents: a tree of Nodes classified by constraint category, plus
// pointer-based fragment lookup for $ref resolution.
package schema

import "regexp"

// Profile selects the keyword-interpretation profile for evaluators.
type Profile int

const (
	// ProfileJSONSchema interprets keywords with plain JSON Schema
	// semantics. This is the default.
	ProfileJSONSchema Profile = iota
	// ProfileOpenAPI additionally honors OpenAPI's nullable keyword:
	// nullable:true admits null regardless of the declared type.
	ProfileOpenAPI
)

// Kind tags a Node with one constraint category. A single Node may carry
// several categories at once (e.g. type plus object shape plus allOf); Kinds
// lists the present ones in canonical evaluation order.
type Kind int

const (
	// KindBoolean marks the boolean literal schemas true/false.
	KindBoolean Kind = iota
	// KindType checks the instance's runtime category against type.
	KindType
	// KindEnum checks enum / const membership.
	KindEnum
	// KindBounds checks numeric ranges, string/array lengths and property
	// counts.
	KindBounds
	// KindStringRules checks pattern and format.
	KindStringRules
	// KindObject checks required/properties/additionalProperties.
	KindObject
	// KindArray checks items/additionalItems/uniqueItems.
	KindArray
	// KindCombinator checks allOf/anyOf/oneOf/not.
	KindCombinator
	// KindReference delegates to the reference resolver. A $ref node
	// carries no other kinds; sibling keywords are ignored.
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean-literal"
	case KindType:
		return "type"
	case KindEnum:
		return "enum"
	case KindBounds:
		return "bounds"
	case KindStringRules:
		return "string-rules"
	case KindObject:
		return "object-shape"
	case KindArray:
		return "array-shape"
	case KindCombinator:
		return "combinator"
	case KindReference:
		return "reference"
	}
	return "unknown"
}

// Node is one node of a parsed schema document. Children are owned by their
// parent; reference targets are identified by pointer string, never by an
// embedded owning pointer, so cyclic documents stay acyclic in memory.
type Node struct {
	// Kinds lists the constraint categories present on this node, in
	// evaluation order.
	Kinds []Kind

	// Keywords preserves every raw keyword value, including unrecognized
	// ones, which evaluators ignore (forward compatibility, not an error).
	Keywords map[string]any

	// Bool is the value of a boolean literal schema.
	Bool bool

	// Ref is the pointer string of a reference node.
	Ref string

	Types    []string
	Nullable bool

	Enum     []any
	Const    any
	HasConst bool

	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64

	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Format    string

	MinItems        *int
	MaxItems        *int
	UniqueItems     bool
	Items           *Node
	TupleItems      []*Node
	AdditionalItems *Node
	DenyExtraItems  bool

	MinProperties *int
	MaxProperties *int
	Required      []string
	// Properties maps declared keys to their sub-schemas; PropertyNames
	// holds the keys sorted for deterministic traversal.
	Properties    map[string]*Node
	PropertyNames []string
	// AdditionalProperties constrains undeclared keys when non-nil.
	// DenyExtraKeys rejects them outright. Both unset means allow.
	AdditionalProperties *Node
	DenyExtraKeys        bool

	AllOf []*Node
	AnyOf []*Node
	OneOf []*Node
	Not   *Node
}

func (n *Node) hasKind(k Kind) bool {
	for _, x := range n.Kinds {
		if x == k {
			return true
		}
	}
	return false
}

// IsReference reports whether the node delegates to the resolver.
func (n *Node) IsReference() bool { return n.hasKind(KindReference) }
