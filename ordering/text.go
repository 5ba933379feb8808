package ordering

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/govalues/decimal"
)

// BasicString returns the canonical textual form of v used by String mode.
//
// Null is the empty string. Floats never use exponent notation, decimals are
// trimmed of trailing zeros and times are RFC 3339 with nanoseconds.
func BasicString(v any) string {
	if IsNull(v) {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case decimal.Decimal:
		return v.Trim(0).String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits())
	}
	return fmt.Sprint(v)
}
