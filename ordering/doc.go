// Package ordering orders arbitrary runtime values and picks extremes from
// heterogeneous sequences.
//
// Compare works on values of any type. Two values of the same orderable type
// (numbers, strings, times, decimals, or anything implementing Orderable) use
// their native order. Mixed types are coerced to numbers, and when that is not
// possible they are compared by their canonical text. The strategy that
// decided a comparison is reported as a Mode:
//
//	r, mode := ordering.Compare(3, "10", ordering.Default) // -1, Numeric
//	r, mode = ordering.Compare("2", "10", ordering.String)  // +1, String
//
// Max and Min keep one strategy across a whole sequence, rescanning it in
// Numeric or String mode when the first pass had to mix strategies:
//
//	v, err := ordering.Max([]any{3, "10", 2}) // "10"
//
// Nothing in this package fails on type mismatches. The only error is
// ErrEmptySequence.
package ordering
