package fbxdom

import (
	"fmt"
	"math"
)

// GlobalSettings is a typed facade over the document's /GlobalSettings
// node: coordinate axes and the unit scale factor, with raw property
// access left open as an escape hatch.
type GlobalSettings struct {
	props ObjectProperties
}

// The subclass name under which GlobalSettings templates are filed in
// the Definitions section.
const globalSettingsSubclass = "FbxGlobalSettings"

func newGlobalSettings(doc *Document) (*GlobalSettings, error) {
	node := doc.tree.Root().FirstChildByName("GlobalSettings")
	if node == nil {
		return nil, fmt.Errorf("expected /GlobalSettings node: %w", ErrNodeNotFound)
	}
	direct := node.FirstChildByName("Properties70")
	props := NewObjectProperties(direct, doc.templateNode("GlobalSettings", globalSettingsSubclass))
	return &GlobalSettings{props: props}, nil
}

// AxisSystem reads and validates the document's coordinate basis from
// the up, front, and coord axis properties.
func (s *GlobalSettings) AxisSystem() (AxisSystem, error) {
	up, err := s.UpAxis()
	if err != nil {
		return AxisSystem{}, err
	}
	front, err := s.FrontAxis()
	if err != nil {
		return AxisSystem{}, err
	}
	right, err := s.RightAxis()
	if err != nil {
		return AxisSystem{}, err
	}
	return NewAxisSystem(up, front, right)
}

// UpAxis returns the upward axis.
func (s *GlobalSettings) UpAxis() (SignedAxis, error) {
	return s.loadAxis("Up", "UpAxis", "UpAxisSign")
}

// FrontAxis returns the frontward axis.
func (s *GlobalSettings) FrontAxis() (SignedAxis, error) {
	return s.loadAxis("Front", "FrontAxis", "FrontAxisSign")
}

// RightAxis returns the rightward axis, stored under the `Coord` keys.
func (s *GlobalSettings) RightAxis() (SignedAxis, error) {
	return s.loadAxis("Coord", "CoordAxis", "CoordAxisSign")
}

// OriginalUpAxis returns the up axis the document was authored with,
// before any axis conversion on export.
func (s *GlobalSettings) OriginalUpAxis() (SignedAxis, error) {
	return s.loadAxis("OriginalUp", "OriginalUpAxis", "OriginalUpAxisSign")
}

func (s *GlobalSettings) loadAxis(stem, codeKey, signKey string) (SignedAxis, error) {
	code, err := s.props.Int32(codeKey)
	if err != nil {
		return 0, err
	}
	sign, err := s.props.Int32(signKey)
	if err != nil {
		return 0, err
	}
	return DecodeAxis(stem, code, sign)
}

// UnitScaleFactor returns the validated document-unit-to-centimeter
// scale.
func (s *GlobalSettings) UnitScaleFactor() (UnitScaleFactor, error) {
	raw, err := s.UnitScaleFactorRaw()
	if err != nil {
		return UnitScaleFactor{}, err
	}
	return NewUnitScaleFactor(raw)
}

// UnitScaleFactorRaw returns the stored scale value without validation.
func (s *GlobalSettings) UnitScaleFactorRaw() (float64, error) {
	return s.props.Float64("UnitScaleFactor")
}

// RawProperties exposes the underlying resolved properties, for keys
// this facade does not model.
func (s *GlobalSettings) RawProperties() ObjectProperties {
	return s.props
}

// UnitScaleFactor is the document-unit-to-centimeter ratio. Values are
// always finite, nonzero, and in IEEE normal range; construction goes
// through NewUnitScaleFactor only.
type UnitScaleFactor struct {
	unitInCentimeters float64
}

// minNormalFloat64 is the smallest positive IEEE 754 double with full
// precision (2^-1022).
const minNormalFloat64 = 0x1p-1022

// NewUnitScaleFactor validates the raw scale value. Zero, infinities,
// NaN, and subnormal values are rejected.
func NewUnitScaleFactor(unitInCentimeters float64) (UnitScaleFactor, error) {
	abs := math.Abs(unitInCentimeters)
	if math.IsNaN(unitInCentimeters) || math.IsInf(unitInCentimeters, 0) || abs < minNormalFloat64 {
		return UnitScaleFactor{}, fmt.Errorf(
			"unit scale factor must be a normal floating-point number, got %v: %w",
			unitInCentimeters, ErrInvalidNumericValue)
	}
	return UnitScaleFactor{unitInCentimeters: unitInCentimeters}, nil
}

// UnitInCentimeters returns the unit size used by the document, in
// centimeters. A document modelled in meters reports 100.
//
// Third-party exporters do not agree on honoring this value; apply it
// deliberately.
func (f UnitScaleFactor) UnitInCentimeters() float64 {
	return f.unitInCentimeters
}
