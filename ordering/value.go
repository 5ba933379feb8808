package ordering

import (
	"cmp"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2/timespan"
)

// Orderable is implemented by values that define a native total order
// against other values of their own concrete type.
// CompareTo reports ok=false when other cannot be ordered against the receiver.
type Orderable interface {
	CompareTo(other any) (result int, ok bool)
}

// Value is a runtime value classified for comparison.
// The variants are Number, Text, Temporal and Opaque.
type Value interface {
	Orderable

	// Raw returns the wrapped value.
	Raw() any

	// Decimal coerces the value to an exact decimal. It fails rather than
	// round, leaving tiny or very precise values to Float.
	Decimal() (decimal.Decimal, bool)

	// Float coerces the value to a float64. It succeeds for values outside
	// the decimal range and for special values such as NaN or infinities.
	Float() (float64, bool)

	// String returns the canonical text, see BasicString.
	String() string

	value()
}

var (
	_ Value = Number{}
	_ Value = Text{}
	_ Value = Temporal{}
	_ Value = Opaque{}
)

// Of classifies v. It must not be called with a null value.
func Of(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case time.Time, time.Duration, timespan.TimeSpan:
		return Temporal{raw: v}
	case decimal.Decimal, bool:
		return Number{raw: v}
	case string:
		return Text{raw: v}
	case Orderable:
		return Opaque{raw: v}
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return Number{raw: v}
	case reflect.String:
		return Text{raw: v}
	default:
		return Opaque{raw: v}
	}
}

// IsNull reports whether v is nil, including typed nil pointers, maps,
// slices, channels, funcs and interfaces.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func sameType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// Number wraps integers, unsigned integers, floats, bools and decimals.
type Number struct{ raw any }

func (n Number) Raw() any       { return n.raw }
func (n Number) String() string { return BasicString(n.raw) }
func (Number) value()           {}

func (n Number) CompareTo(other any) (int, bool) {
	if o, ok := other.(Value); ok {
		other = o.Raw()
	}
	if !sameType(n.raw, other) {
		return 0, false
	}
	switch a := n.raw.(type) {
	case decimal.Decimal:
		return a.Cmp(other.(decimal.Decimal)), true
	}
	av, bv := reflect.ValueOf(n.raw), reflect.ValueOf(other)
	switch av.Kind() {
	case reflect.Bool:
		return cmp.Compare(boolToInt(av.Bool()), boolToInt(bv.Bool())), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(av.Int(), bv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(av.Uint(), bv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(av.Float(), bv.Float()), true
	default:
		return 0, false
	}
}

func (n Number) Decimal() (decimal.Decimal, bool) {
	if d, ok := n.raw.(decimal.Decimal); ok {
		return d, true
	}
	rv := reflect.ValueOf(n.raw)
	switch rv.Kind() {
	case reflect.Bool:
		return decimal.MustNew(boolToInt(rv.Bool()), 0), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return okDecimal(decimal.New(rv.Int(), 0))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return okDecimal(decimal.New(int64(u), 0))
		}
		return okDecimal(decimal.Parse(strconv.FormatUint(u, 10)))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		d, err := decimal.NewFromFloat64(f)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return exactDecimal(d, f)
	default:
		return decimal.Decimal{}, false
	}
}

func (n Number) Float() (float64, bool) {
	if d, ok := n.raw.(decimal.Decimal); ok {
		return d.Float64()
	}
	rv := reflect.ValueOf(n.raw)
	switch rv.Kind() {
	case reflect.Bool:
		return float64(boolToInt(rv.Bool())), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Text wraps strings and types whose kind is string.
type Text struct{ raw any }

func (t Text) Raw() any { return t.raw }
func (Text) value()     {}

func (t Text) String() string {
	if s, ok := t.raw.(string); ok {
		return s
	}
	return reflect.ValueOf(t.raw).String()
}

func (t Text) CompareTo(other any) (int, bool) {
	if o, ok := other.(Value); ok {
		other = o.Raw()
	}
	if !sameType(t.raw, other) {
		return 0, false
	}
	return strings.Compare(t.String(), Text{raw: other}.String()), true
}

func (t Text) Decimal() (decimal.Decimal, bool) {
	d, err := decimal.Parse(strings.TrimSpace(t.String()))
	if err != nil {
		return decimal.Decimal{}, false
	}
	f, ok := t.Float()
	if !ok {
		return decimal.Decimal{}, false
	}
	return exactDecimal(d, f)
}

func (t Text) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.String()), 64)
	if err != nil {
		// Out of range input still orders as ±Inf or 0.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// ticksPerSecond and unixEpochTicks define ticks: 100ns units since 0001-01-01 UTC.
const (
	ticksPerSecond = int64(time.Second / 100)
	unixEpochTicks = 62135596800 * ticksPerSecond
)

// Temporal wraps time.Time, time.Duration and timespan.TimeSpan.
// Numerically it is its tick count, so dates order consistently with numbers.
type Temporal struct{ raw any }

func (t Temporal) Raw() any       { return t.raw }
func (t Temporal) String() string { return BasicString(t.raw) }
func (Temporal) value()           {}

// Ticks returns the linear tick representation of the value.
// A TimeSpan counts from its start.
func (t Temporal) Ticks() int64 {
	switch v := t.raw.(type) {
	case time.Time:
		return timeTicks(v)
	case time.Duration:
		return int64(v / 100)
	case timespan.TimeSpan:
		return timeTicks(v.Start())
	default:
		return 0
	}
}

func timeTicks(t time.Time) int64 {
	return t.Unix()*ticksPerSecond + unixEpochTicks + int64(t.Nanosecond())/100
}

func (t Temporal) CompareTo(other any) (int, bool) {
	if o, ok := other.(Value); ok {
		other = o.Raw()
	}
	switch a := t.raw.(type) {
	case time.Time:
		if b, ok := other.(time.Time); ok {
			return a.Compare(b), true
		}
	case time.Duration:
		if b, ok := other.(time.Duration); ok {
			return cmp.Compare(a, b), true
		}
	case timespan.TimeSpan:
		if b, ok := other.(timespan.TimeSpan); ok {
			if c := a.Start().Compare(b.Start()); c != 0 {
				return c, true
			}
			return a.End().Compare(b.End()), true
		}
	}
	return 0, false
}

func (t Temporal) Decimal() (decimal.Decimal, bool) {
	return okDecimal(decimal.New(t.Ticks(), 0))
}

func (t Temporal) Float() (float64, bool) {
	return float64(t.Ticks()), true
}

// Opaque wraps everything else. It is orderable only when the wrapped value
// implements Orderable itself, and it never coerces to a number.
type Opaque struct{ raw any }

func (o Opaque) Raw() any       { return o.raw }
func (o Opaque) String() string { return BasicString(o.raw) }
func (Opaque) value()           {}

func (o Opaque) CompareTo(other any) (int, bool) {
	if v, ok := other.(Value); ok {
		other = v.Raw()
	}
	if ord, ok := o.raw.(Orderable); ok && sameType(o.raw, other) {
		return ord.CompareTo(other)
	}
	return 0, false
}

func (Opaque) Decimal() (decimal.Decimal, bool) { return decimal.Decimal{}, false }
func (Opaque) Float() (float64, bool)           { return 0, false }

func okDecimal(d decimal.Decimal, err error) (decimal.Decimal, bool) {
	return d, err == nil
}

// exactDecimal rejects d when parsing rounded it away from f.
// Decimals keep at most 19 fractional digits, so 1e-21 would become 0.
func exactDecimal(d decimal.Decimal, f float64) (decimal.Decimal, bool) {
	if g, ok := d.Float64(); !ok || g != f {
		return decimal.Decimal{}, false
	}
	return d, true
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
