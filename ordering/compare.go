package ordering

import "cmp"

// Compare orders a against b under mode and reports the mode that actually
// produced the result. The result is -1, 0 or +1.
//
// Null sorts first. In Default mode, two values of the same orderable type
// use their native order; anything else is coerced to decimals, then to
// floats, and finally compared as text, which resolves to String. Numeric
// mode never escalates: a side that cannot be coerced counts as zero.
// String mode compares canonical text ordinally.
//
// Coercion failures are never reported; the result is always a valid order.
func Compare(a, b any, mode Mode) (int, Mode) {
	mode = mode.normalize()
	switch aNull, bNull := IsNull(a), IsNull(b); {
	case aNull && bNull:
		return 0, mode
	case aNull:
		return -1, mode
	case bNull:
		return 1, mode
	}

	va, vb := Of(a), Of(b)
	switch mode {
	case String:
		return compareText(va, vb), String
	case Numeric:
		r, _ := compareNumeric(va, vb, true)
		return r, Numeric
	}

	if sameType(va.Raw(), vb.Raw()) {
		if r, ok := va.CompareTo(vb); ok {
			return sign(r), Default
		}
	}
	if r, ok := compareNumeric(va, vb, false); ok {
		return r, Numeric
	}
	return compareText(va, vb), String
}

// CompareValues is Compare in Default mode without the resolved mode.
func CompareValues(a, b any) int {
	r, _ := Compare(a, b, Default)
	return r
}

// CompareFunc adapts Compare for slices.SortStableFunc and friends.
// Note that a sort with Default mode may mix strategies across pairs; use
// Max/Min when one consistent order across a whole sequence matters.
func CompareFunc[T any](mode Mode) func(a, b T) int {
	return func(a, b T) int {
		r, _ := Compare(a, b, mode)
		return r
	}
}

func compareText(a, b Value) int {
	return cmp.Compare(a.String(), b.String())
}

// compareNumeric tries exact decimals first and floats second.
// With force set, a side that fails both is substituted by zero.
func compareNumeric(a, b Value, force bool) (int, bool) {
	if da, ok := a.Decimal(); ok {
		if db, ok := b.Decimal(); ok {
			return da.Cmp(db), true
		}
	}

	fa, aok := a.Float()
	fb, bok := b.Float()
	if !aok || !bok {
		if !force {
			return 0, false
		}
		if !aok {
			fa = 0
		}
		if !bok {
			fb = 0
		}
	}
	return cmp.Compare(fa, fb), true
}

// coercible reports whether v survives Numeric mode without substitution.
func coercible(v any) bool {
	if IsNull(v) {
		return true
	}
	val := Of(v)
	if _, ok := val.Decimal(); ok {
		return true
	}
	_, ok := val.Float()
	return ok
}

func sign(r int) int {
	switch {
	case r < 0:
		return -1
	case r > 0:
		return 1
	default:
		return 0
	}
}
