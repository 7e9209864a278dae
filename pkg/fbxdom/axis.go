package fbxdom

import "fmt"

// Axis is one of the three coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "X", "Y", or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// SignedAxis is an axis paired with a direction: one of the six values
// +X, -X, +Y, -Y, +Z, -Z.
type SignedAxis uint8

const (
	PosX SignedAxis = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// Axis returns the unsigned axis.
func (s SignedAxis) Axis() Axis {
	return Axis(s / 2)
}

// Sign returns +1 or -1.
func (s SignedAxis) Sign() int {
	if s%2 == 0 {
		return 1
	}
	return -1
}

// String returns the axis in "+X" / "-X" form.
func (s SignedAxis) String() string {
	if s > NegZ {
		return fmt.Sprintf("SignedAxis(%d)", uint8(s))
	}
	sign := "+"
	if s.Sign() < 0 {
		sign = "-"
	}
	return sign + s.Axis().String()
}

// DecodeAxis decodes the raw (axis code, axis sign) pair of one global
// settings axis. name is the property stem ("Up", "Front", "Coord",
// "OriginalUp") and is used only in error messages.
//
// Valid codes are 0 (X), 1 (Y), 2 (Z); valid signs are 1 and -1. When
// the pair is not in the table, exactly one of the two components is
// invalid: the code violation is reported first, otherwise the sign is
// necessarily the culprit. A pair with both components valid cannot
// miss the table; reaching that state is a bug in this decoder, not a
// malformed document, and panics.
func DecodeAxis(name string, code, sign int32) (SignedAxis, error) {
	switch {
	case code == 0 && sign == 1:
		return PosX, nil
	case code == 0 && sign == -1:
		return NegX, nil
	case code == 1 && sign == 1:
		return PosY, nil
	case code == 1 && sign == -1:
		return NegY, nil
	case code == 2 && sign == 1:
		return PosZ, nil
	case code == 2 && sign == -1:
		return NegZ, nil
	}

	if code < 0 || code > 2 {
		return 0, fmt.Errorf("invalid `%sAxis` value: expected 0, 1, or 2 but got %d: %w",
			name, code, ErrInvalidEnumValue)
	}
	if sign != 1 && sign != -1 {
		return 0, fmt.Errorf("invalid `%sAxisSign` value: expected 1 or -1 but got %d: %w",
			name, sign, ErrInvalidEnumValue)
	}
	panic(fmt.Sprintf("fbxdom: axis decoder missed a valid pair: name=%q code=%d sign=%d", name, code, sign))
}

// AxisSystem is the document's coordinate basis: up, front, and right
// signed axes whose unsigned axes are mutually distinct.
type AxisSystem struct {
	up    SignedAxis
	front SignedAxis
	right SignedAxis
}

// NewAxisSystem validates that the three signed axes span all three
// coordinate axes. The triple's handedness is not constrained; both
// right- and left-handed systems are valid documents.
func NewAxisSystem(up, front, right SignedAxis) (AxisSystem, error) {
	if up.Axis() == front.Axis() || up.Axis() == right.Axis() || front.Axis() == right.Axis() {
		return AxisSystem{}, fmt.Errorf(
			"invalid axis system: (up, front, right) = (%s, %s, %s) does not span all three axes: %w",
			up, front, right, ErrInvalidEnumValue)
	}
	return AxisSystem{up: up, front: front, right: right}, nil
}

// Up returns the upward axis.
func (a AxisSystem) Up() SignedAxis {
	return a.up
}

// Front returns the frontward axis.
func (a AxisSystem) Front() SignedAxis {
	return a.front
}

// Right returns the rightward axis (the wire format's "coord axis").
func (a AxisSystem) Right() SignedAxis {
	return a.right
}

// String formats the system as "(up=+Y, front=+Z, right=+X)".
func (a AxisSystem) String() string {
	return fmt.Sprintf("(up=%s, front=%s, right=%s)", a.up, a.front, a.right)
}
