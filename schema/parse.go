package schema

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/goccy/go-json"
)

// Parse builds a Node tree from a decoded schema fragment. Parsing is
// structural only: it classifies each node's constraint categories from
// recognized keywords and type-checks keyword values just enough to do so.
// Unknown keywords are preserved in Keywords and ignored by evaluators.
func Parse(raw any, profile Profile) (*Node, error) {
	return parseNode(raw, profile, "")
}

func parseNode(raw any, profile Profile, at string) (*Node, error) {
	switch v := raw.(type) {
	case bool:
		return &Node{Kinds: []Kind{KindBoolean}, Bool: v}, nil
	case map[string]any:
		return parseObjectNode(v, profile, at)
	default:
		return nil, fmt.Errorf("schema%s: must be an object or boolean, got %T", loc(at), raw)
	}
}

func loc(at string) string {
	if at == "" {
		return ""
	}
	return " at " + at
}

func parseObjectNode(m map[string]any, profile Profile, at string) (*Node, error) {
	n := &Node{Keywords: m}

	// $ref is exclusive: sibling keywords are ignored.
	if rv, ok := m["$ref"]; ok {
		s, ok := rv.(string)
		if !ok {
			return nil, fmt.Errorf("schema%s: $ref must be a string, got %T", loc(at), rv)
		}
		n.Ref = s
		n.Kinds = []Kind{KindReference}
		return n, nil
	}

	if err := parseType(n, m, profile, at); err != nil {
		return nil, err
	}
	if err := parseEnum(n, m, at); err != nil {
		return nil, err
	}
	if err := parseBounds(n, m, at); err != nil {
		return nil, err
	}
	if err := parseStringRules(n, m, at); err != nil {
		return nil, err
	}
	if err := parseObjectShape(n, m, profile, at); err != nil {
		return nil, err
	}
	if err := parseArrayShape(n, m, profile, at); err != nil {
		return nil, err
	}
	if err := parseCombinators(n, m, profile, at); err != nil {
		return nil, err
	}
	return n, nil
}

func parseType(n *Node, m map[string]any, profile Profile, at string) error {
	if profile == ProfileOpenAPI {
		if b, ok := m["nullable"].(bool); ok {
			n.Nullable = b
		}
	}
	tv, ok := m["type"]
	if !ok {
		return nil
	}
	switch t := tv.(type) {
	case string:
		n.Types = []string{t}
	case []any:
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("schema%s: type union entries must be strings, got %T", loc(at), e)
			}
			n.Types = append(n.Types, s)
		}
		if len(n.Types) == 0 {
			return fmt.Errorf("schema%s: type union must not be empty", loc(at))
		}
	default:
		return fmt.Errorf("schema%s: type must be a string or array of strings, got %T", loc(at), tv)
	}
	n.Kinds = append(n.Kinds, KindType)
	return nil
}

func parseEnum(n *Node, m map[string]any, at string) error {
	has := false
	if ev, ok := m["enum"]; ok {
		vals, ok := ev.([]any)
		if !ok {
			return fmt.Errorf("schema%s: enum must be an array, got %T", loc(at), ev)
		}
		n.Enum = vals
		has = true
	}
	if cv, ok := m["const"]; ok {
		n.Const = cv
		n.HasConst = true
		has = true
	}
	if has {
		n.Kinds = append(n.Kinds, KindEnum)
	}
	return nil
}

func parseBounds(n *Node, m map[string]any, at string) error {
	var err error
	if n.Minimum, err = numberKeyword(m, "minimum", at); err != nil {
		return err
	}
	if n.Maximum, err = numberKeyword(m, "maximum", at); err != nil {
		return err
	}
	if n.MultipleOf, err = numberKeyword(m, "multipleOf", at); err != nil {
		return err
	}
	// exclusiveMinimum/Maximum: numeric form, or the boolean form that
	// flips the plain minimum/maximum to exclusive.
	if v, ok := m["exclusiveMinimum"]; ok {
		if b, isBool := v.(bool); isBool {
			if b && n.Minimum != nil {
				n.ExclusiveMinimum, n.Minimum = n.Minimum, nil
			}
		} else if n.ExclusiveMinimum, err = numberKeyword(m, "exclusiveMinimum", at); err != nil {
			return err
		}
	}
	if v, ok := m["exclusiveMaximum"]; ok {
		if b, isBool := v.(bool); isBool {
			if b && n.Maximum != nil {
				n.ExclusiveMaximum, n.Maximum = n.Maximum, nil
			}
		} else if n.ExclusiveMaximum, err = numberKeyword(m, "exclusiveMaximum", at); err != nil {
			return err
		}
	}
	if n.MinLength, err = countKeyword(m, "minLength", at); err != nil {
		return err
	}
	if n.MaxLength, err = countKeyword(m, "maxLength", at); err != nil {
		return err
	}
	if n.MinItems, err = countKeyword(m, "minItems", at); err != nil {
		return err
	}
	if n.MaxItems, err = countKeyword(m, "maxItems", at); err != nil {
		return err
	}
	if n.MinProperties, err = countKeyword(m, "minProperties", at); err != nil {
		return err
	}
	if n.MaxProperties, err = countKeyword(m, "maxProperties", at); err != nil {
		return err
	}
	if n.Minimum != nil || n.Maximum != nil || n.ExclusiveMinimum != nil || n.ExclusiveMaximum != nil ||
		n.MultipleOf != nil || n.MinLength != nil || n.MaxLength != nil ||
		n.MinItems != nil || n.MaxItems != nil || n.MinProperties != nil || n.MaxProperties != nil {
		n.Kinds = append(n.Kinds, KindBounds)
	}
	return nil
}

func parseStringRules(n *Node, m map[string]any, at string) error {
	has := false
	if pv, ok := m["pattern"]; ok {
		s, ok := pv.(string)
		if !ok {
			return fmt.Errorf("schema%s: pattern must be a string, got %T", loc(at), pv)
		}
		re, err := regexp.Compile(s)
		if err != nil {
			return fmt.Errorf("schema%s: invalid pattern %q: %w", loc(at), s, err)
		}
		n.Pattern = re
		has = true
	}
	if fv, ok := m["format"]; ok {
		s, ok := fv.(string)
		if !ok {
			return fmt.Errorf("schema%s: format must be a string, got %T", loc(at), fv)
		}
		n.Format = s
		has = true
	}
	if has {
		n.Kinds = append(n.Kinds, KindStringRules)
	}
	return nil
}

func parseObjectShape(n *Node, m map[string]any, profile Profile, at string) error {
	has := false
	if rv, ok := m["required"]; ok {
		list, ok := rv.([]any)
		if !ok {
			return fmt.Errorf("schema%s: required must be an array, got %T", loc(at), rv)
		}
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("schema%s: required entries must be strings, got %T", loc(at), e)
			}
			n.Required = append(n.Required, s)
		}
		has = true
	}
	if pv, ok := m["properties"]; ok {
		props, ok := pv.(map[string]any)
		if !ok {
			return fmt.Errorf("schema%s: properties must be an object, got %T", loc(at), pv)
		}
		n.Properties = make(map[string]*Node, len(props))
		for k, sub := range props {
			child, err := parseNode(sub, profile, at+"/properties/"+k)
			if err != nil {
				return err
			}
			n.Properties[k] = child
			n.PropertyNames = append(n.PropertyNames, k)
		}
		sort.Strings(n.PropertyNames)
		has = true
	}
	if av, ok := m["additionalProperties"]; ok {
		switch ap := av.(type) {
		case bool:
			n.DenyExtraKeys = !ap
		default:
			child, err := parseNode(ap, profile, at+"/additionalProperties")
			if err != nil {
				return err
			}
			n.AdditionalProperties = child
		}
		has = true
	}
	if has {
		n.Kinds = append(n.Kinds, KindObject)
	}
	return nil
}

func parseArrayShape(n *Node, m map[string]any, profile Profile, at string) error {
	has := false
	if iv, ok := m["items"]; ok {
		switch items := iv.(type) {
		case []any:
			for i, sub := range items {
				child, err := parseNode(sub, profile, fmt.Sprintf("%s/items/%d", at, i))
				if err != nil {
					return err
				}
				n.TupleItems = append(n.TupleItems, child)
			}
		default:
			child, err := parseNode(items, profile, at+"/items")
			if err != nil {
				return err
			}
			n.Items = child
		}
		has = true
	}
	if av, ok := m["additionalItems"]; ok {
		switch ai := av.(type) {
		case bool:
			n.DenyExtraItems = !ai
		default:
			child, err := parseNode(ai, profile, at+"/additionalItems")
			if err != nil {
				return err
			}
			n.AdditionalItems = child
		}
		has = true
	}
	if uv, ok := m["uniqueItems"]; ok {
		b, ok := uv.(bool)
		if !ok {
			return fmt.Errorf("schema%s: uniqueItems must be a boolean, got %T", loc(at), uv)
		}
		n.UniqueItems = b
		has = true
	}
	if has {
		n.Kinds = append(n.Kinds, KindArray)
	}
	return nil
}

func parseCombinators(n *Node, m map[string]any, profile Profile, at string) error {
	var err error
	if n.AllOf, err = subschemaList(m, "allOf", profile, at); err != nil {
		return err
	}
	if n.AnyOf, err = subschemaList(m, "anyOf", profile, at); err != nil {
		return err
	}
	if n.OneOf, err = subschemaList(m, "oneOf", profile, at); err != nil {
		return err
	}
	if nv, ok := m["not"]; ok {
		child, err := parseNode(nv, profile, at+"/not")
		if err != nil {
			return err
		}
		n.Not = child
	}
	if n.AllOf != nil || n.AnyOf != nil || n.OneOf != nil || n.Not != nil {
		n.Kinds = append(n.Kinds, KindCombinator)
	}
	return nil
}

func subschemaList(m map[string]any, key string, profile Profile, at string) ([]*Node, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("schema%s: %s must be an array, got %T", loc(at), key, v)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("schema%s: %s must not be empty", loc(at), key)
	}
	out := make([]*Node, 0, len(list))
	for i, sub := range list {
		child, err := parseNode(sub, profile, fmt.Sprintf("%s/%s/%d", at, key, i))
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func numberKeyword(m map[string]any, key, at string) (*float64, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil, fmt.Errorf("schema%s: %s must be a number, got %T", loc(at), key, v)
	}
	return &f, nil
}

func countKeyword(m map[string]any, key, at string) (*int, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, ok := asFloat(v)
	if !ok || f != float64(int(f)) || f < 0 {
		return nil, fmt.Errorf("schema%s: %s must be a non-negative integer", loc(at), key)
	}
	i := int(f)
	return &i, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
