package ordering

import (
	"errors"
	"iter"
	"slices"
)

// ErrEmptySequence is returned when an extreme of no elements is requested.
var ErrEmptySequence = errors.New("sequence is empty")

// pass is the outcome of one scan over a sequence.
type pass[T any] struct {
	extreme    T
	empty      bool
	sawDefault bool // some pair was ordered natively
	sawNumeric bool // some pair was ordered by coercion
	escalated  bool // some pair fell back to text; the scan was abandoned
}

func scan[T any](seq iter.Seq[T], mode Mode, wantMax bool) pass[T] {
	p := pass[T]{empty: true}
	for v := range seq {
		if p.empty {
			p.extreme = v
			p.empty = false
			continue
		}

		a, b := any(v), any(p.extreme)
		r, resolved := Compare(a, b, mode)
		if mode == Default && !IsNull(a) && !IsNull(b) {
			switch resolved {
			case Default:
				p.sawDefault = true
			case Numeric:
				p.sawNumeric = true
			case String:
				p.escalated = true
				return p
			}
		}

		if (wantMax && r > 0) || (!wantMax && r < 0) {
			p.extreme = v
		}
	}
	return p
}

func allCoercible[T any](seq iter.Seq[T]) bool {
	for v := range seq {
		if !coercible(v) {
			return false
		}
	}
	return true
}

// Extreme returns the maximum (wantMax) or minimum element of seq, starting
// in mode, and the mode the result was finally decided in.
//
// A Default scan that has to compare two elements as text is restarted from
// the beginning in String mode. A Default scan that ordered some pairs
// natively and others numerically is rerun in Numeric mode, after checking
// every element coerces to a number (String mode otherwise). Ties keep the
// earlier element.
//
// seq is enumerated up to three times and must yield the same elements each
// time. A single-use iterator breaks this precondition.
func Extreme[T any](seq iter.Seq[T], mode Mode, wantMax bool) (T, Mode, error) {
	mode = mode.normalize()
	for {
		p := scan(seq, mode, wantMax)
		if p.empty {
			var zero T
			return zero, mode, ErrEmptySequence
		}

		switch {
		case p.escalated:
			mode = String
		case p.sawDefault && p.sawNumeric:
			if allCoercible(seq) {
				mode = Numeric
			} else {
				mode = String
			}
		case p.sawNumeric:
			return p.extreme, Numeric, nil
		default:
			return p.extreme, mode, nil
		}
	}
}

// Max returns the greatest element of seq in Default mode.
func Max[T any](seq []T) (T, error) {
	v, _, err := Extreme(slices.Values(seq), Default, true)
	return v, err
}

// Min returns the least element of seq in Default mode.
func Min[T any](seq []T) (T, error) {
	v, _, err := Extreme(slices.Values(seq), Default, false)
	return v, err
}

// MaxMode is Max starting in mode. It also returns the resolved mode,
// which can be passed back in to order related data the same way.
func MaxMode[T any](seq []T, mode Mode) (T, Mode, error) {
	return Extreme(slices.Values(seq), mode, true)
}

// MinMode is Min starting in mode.
func MinMode[T any](seq []T, mode Mode) (T, Mode, error) {
	return Extreme(slices.Values(seq), mode, false)
}

// MaxSeq is Max over a re-enumerable iterator.
func MaxSeq[T any](seq iter.Seq[T]) (T, error) {
	v, _, err := Extreme(seq, Default, true)
	return v, err
}

// MinSeq is Min over a re-enumerable iterator.
func MinSeq[T any](seq iter.Seq[T]) (T, error) {
	v, _, err := Extreme(seq, Default, false)
	return v, err
}
