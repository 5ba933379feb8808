package ordering

// Mode is the comparison strategy in effect.
// Modes only ever escalate: Default < Numeric < String.
type Mode int

const (
	// Default uses a value's native order when both sides share a concrete
	// orderable type, and escalates otherwise.
	Default Mode = iota

	// Numeric coerces both sides to numbers. It never escalates.
	Numeric

	// String compares canonical text ordinally. It is terminal.
	String
)

func (m Mode) String() string {
	switch m {
	case Default:
		return "default"
	case Numeric:
		return "numeric"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// normalize folds out-of-range modes into the nearest valid one.
func (m Mode) normalize() Mode {
	switch {
	case m <= Default:
		return Default
	case m >= String:
		return String
	default:
		return m
	}
}
