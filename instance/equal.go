package instance

// Equal compares two decoded values structurally: mappings must have the
// same key set with equal values, sequences the same elements in order, and
// numbers are compared numerically regardless of representation (1 == 1.0).
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindString:
		return a.(string) == b.(string)
	case KindNumber:
		fa, oka := Float(a)
		fb, okb := Float(b)
		return oka && okb && fa == fb
	case KindArray:
		sa, sb := a.([]any), b.([]any)
		if len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ma, mb := a.(map[string]any), b.(map[string]any)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	}
	return false
}
