package storage

import (
	"strings"
	"time"
)

// Compare orders two column values. ok is false when the values cannot be
// compared with each other (different kinds, nil, unsupported types).
//
// Integers of any width compare numerically, and so do floats and mixed
// int/float pairs. Strings compare lexicographically, which orders ISO-8601
// timestamps correctly. false sorts before true.
func Compare(a, b any) (cmp int, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}

	if ai, aok := asInt(a); aok {
		if bi, bok := asInt(b); bok {
			return compareOrdered(ai, bi), true
		}
		if bf, bok := asFloat(b); bok {
			return compareOrdered(float64(ai), bf), true
		}
		return 0, false
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return compareOrdered(af, bf), true
		}
		if bi, bok := asInt(b); bok {
			return compareOrdered(af, float64(bi)), true
		}
		return 0, false
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv), true
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0, true
			case !av:
				return -1, true
			default:
				return 1, true
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), true
		}
	}
	return 0, false
}

// Equal reports whether two column values are equal under Compare.
func Equal(a, b any) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
