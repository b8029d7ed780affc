// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units provides dimensioned numeric values for drawing
coordinates and attributes. A value carries its unit through all
arithmetic and is only converted to raw device units at the
serialization boundary, using the scale factors in a [Context].

The unit set is closed: physical lengths (mm, cm, m, in, pt), display
pixels (px), percentages, angles (deg, rad), and device units (dot).
Arithmetic between different dimensions fails; formatting is defined
only for the dimensions that are legal in output attributes (length,
pixel, percentage).
*/
package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

var (
	// ErrUnitMismatch is returned for arithmetic or conversion between
	// values of different dimensions.
	ErrUnitMismatch = errors.New("units: unit mismatch")

	// ErrUnsupportedUnit is returned when a value's dimension is not
	// legal for the requested operation (formatting or device
	// conversion).
	ErrUnsupportedUnit = errors.New("units: unsupported unit")
)

// standard conversion factors
const (
	MmPerCm   = 10.0
	MmPerM    = 1000.0
	MmPerInch = 25.4
	PtPerInch = 72.0
)

// Units is the closed set of units a [Value] can carry.
type Units int32

const (
	// UnitNone is a dimensionless scalar; the zero value.
	UnitNone Units = iota

	// UnitMm = millimeters, the canonical output length unit.
	UnitMm

	// UnitCm = centimeters.
	UnitCm

	// UnitM = meters.
	UnitM

	// UnitIn = inches.
	UnitIn

	// UnitPt = typographic points, 1pt = 1/72 in. Points are a length
	// but keep their own suffix in output.
	UnitPt

	// UnitPx = display pixels.
	UnitPx

	// UnitPercent = percentage of a reference extent.
	UnitPercent

	// UnitDeg = angle in degrees.
	UnitDeg

	// UnitRad = angle in radians.
	UnitRad

	// UnitDot = raw device units, the final output coordinate space.
	// Only produced by conversion, never formatted into attributes.
	UnitDot
)

var unitNames = [...]string{
	UnitNone:    "",
	UnitMm:      "mm",
	UnitCm:      "cm",
	UnitM:       "m",
	UnitIn:      "in",
	UnitPt:      "pt",
	UnitPx:      "px",
	UnitPercent: "%",
	UnitDeg:     "deg",
	UnitRad:     "rad",
	UnitDot:     "dot",
}

// String returns the suffix for the unit.
func (un Units) String() string {
	if int(un) < len(unitNames) {
		return unitNames[un]
	}
	return "?"
}

// Dimensions is the dimension of a unit: values of different dimensions
// never mix in arithmetic.
type Dimensions int32

const (
	// DimNone is the dimension of raw scalars.
	DimNone Dimensions = iota

	// DimLength covers the physical length units (mm, cm, m, in, pt).
	DimLength

	// DimPixel covers display pixels.
	DimPixel

	// DimPercent covers percentages.
	DimPercent

	// DimAngle covers degrees and radians.
	DimAngle

	// DimDevice covers raw device units.
	DimDevice
)

var dimNames = [...]string{
	DimNone:    "none",
	DimLength:  "length",
	DimPixel:   "pixel",
	DimPercent: "percent",
	DimAngle:   "angle",
	DimDevice:  "device",
}

func (dm Dimensions) String() string {
	if int(dm) < len(dimNames) {
		return dimNames[dm]
	}
	return "?"
}

var unitDims = [...]Dimensions{
	UnitNone:    DimNone,
	UnitMm:      DimLength,
	UnitCm:      DimLength,
	UnitM:       DimLength,
	UnitIn:      DimLength,
	UnitPt:      DimLength,
	UnitPx:      DimPixel,
	UnitPercent: DimPercent,
	UnitDeg:     DimAngle,
	UnitRad:     DimAngle,
	UnitDot:     DimDevice,
}

// Dim returns the dimension of the unit.
func (un Units) Dim() Dimensions {
	return unitDims[un]
}

// toMm is the length conversion table; zero for non-length units.
var toMm = [...]float32{
	UnitMm: 1,
	UnitCm: MmPerCm,
	UnitM:  MmPerM,
	UnitIn: MmPerInch,
	UnitPt: MmPerInch / PtPerInch,
}

// Value is a number tagged with a unit. Values are immutable: all
// operations return a new Value.
type Value struct {
	Value float32
	Unit  Units
}

// New returns a value with the given magnitude and unit.
func New(val float32, un Units) Value {
	return Value{Value: val, Unit: un}
}

// Scalar returns a dimensionless value.
func Scalar(val float32) Value { return Value{Value: val, Unit: UnitNone} }

// Mm returns a millimeter value.
func Mm(val float32) Value { return Value{Value: val, Unit: UnitMm} }

// Cm returns a centimeter value.
func Cm(val float32) Value { return Value{Value: val, Unit: UnitCm} }

// M returns a meter value.
func M(val float32) Value { return Value{Value: val, Unit: UnitM} }

// In returns an inch value.
func In(val float32) Value { return Value{Value: val, Unit: UnitIn} }

// Pt returns a point value (1pt = 1/72 in).
func Pt(val float32) Value { return Value{Value: val, Unit: UnitPt} }

// Px returns a pixel value.
func Px(val float32) Value { return Value{Value: val, Unit: UnitPx} }

// Percent returns a percentage value.
func Percent(val float32) Value { return Value{Value: val, Unit: UnitPercent} }

// Deg returns an angle in degrees.
func Deg(val float32) Value { return Value{Value: val, Unit: UnitDeg} }

// Rad returns an angle in radians.
func Rad(val float32) Value { return Value{Value: val, Unit: UnitRad} }

// Dot returns a raw device-unit value.
func Dot(val float32) Value { return Value{Value: val, Unit: UnitDot} }

// Dim returns the dimension of the value.
func (v Value) Dim() Dimensions { return v.Unit.Dim() }

// IsSet reports whether the value carries a unit; the zero Value is
// the "unset" sentinel for optional fields.
func (v Value) IsSet() bool { return v.Unit != UnitNone }

// Convert returns the value expressed in the given unit, which must be
// of the same dimension.
func (v Value) Convert(to Units) (Value, error) {
	if v.Unit == to {
		return v, nil
	}
	if v.Dim() != to.Dim() {
		return Value{}, fmt.Errorf("%w: cannot convert %v to %v", ErrUnitMismatch, v.Dim(), to.Dim())
	}
	switch v.Dim() {
	case DimLength:
		return Value{Value: v.Value * toMm[v.Unit] / toMm[to], Unit: to}, nil
	case DimAngle:
		if v.Unit == UnitDeg {
			return Value{Value: math32.DegToRad(v.Value), Unit: UnitRad}, nil
		}
		return Value{Value: math32.RadToDeg(v.Value), Unit: UnitDeg}, nil
	}
	return v, nil
}

// Add returns v + o. The dimensions must match; o is converted to v's
// unit first.
func (v Value) Add(o Value) (Value, error) {
	oc, err := o.Convert(v.Unit)
	if err != nil {
		return Value{}, err
	}
	return Value{Value: v.Value + oc.Value, Unit: v.Unit}, nil
}

// Sub returns v - o. The dimensions must match; o is converted to v's
// unit first.
func (v Value) Sub(o Value) (Value, error) {
	oc, err := o.Convert(v.Unit)
	if err != nil {
		return Value{}, err
	}
	return Value{Value: v.Value - oc.Value, Unit: v.Unit}, nil
}

// MulScalar returns the value scaled by a dimensionless factor.
func (v Value) MulScalar(s float32) Value {
	return Value{Value: v.Value * s, Unit: v.Unit}
}

// DivScalar returns the value divided by a dimensionless factor.
func (v Value) DivScalar(s float32) Value {
	return Value{Value: v.Value / s, Unit: v.Unit}
}

// Neg returns the value negated.
func (v Value) Neg() Value {
	return Value{Value: -v.Value, Unit: v.Unit}
}

// Format renders the value as its canonical output token: a 6-decimal
// numeral with the unit suffix and no whitespace. Only length, pixel,
// and percentage values have an output form; metric lengths are
// canonicalized to mm, while pt, px, and % keep their own suffix.
func (v Value) Format() (string, error) {
	switch v.Dim() {
	case DimLength:
		if v.Unit == UnitPt {
			return fmt.Sprintf("%fpt", v.Value), nil
		}
		mm, _ := v.Convert(UnitMm)
		return fmt.Sprintf("%fmm", mm.Value), nil
	case DimPixel:
		return fmt.Sprintf("%fpx", v.Value), nil
	case DimPercent:
		return fmt.Sprintf("%f%%", v.Value), nil
	}
	return "", fmt.Errorf("%w: cannot format %v value", ErrUnsupportedUnit, v.Dim())
}

// Parse is the inverse of [Value.Format]: it reads a numeral with a
// unit suffix (any suffix from the closed set, not just the canonical
// output ones). A bare numeral parses as a scalar.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	un := UnitNone
	num := s
	// longest suffixes first so "mm" wins over "m"
	for _, u := range []Units{UnitDeg, UnitRad, UnitDot, UnitMm, UnitCm, UnitIn, UnitPt, UnitPx, UnitPercent, UnitM} {
		if sfx := u.String(); strings.HasSuffix(s, sfx) {
			un = u
			num = strings.TrimSuffix(s, sfx)
			break
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return Value{}, fmt.Errorf("units: parsing %q: %w", s, err)
	}
	return Value{Value: float32(f), Unit: un}, nil
}

// Context holds the scale factors that convert tagged values into raw
// device units at the serialization boundary.
type Context struct {
	// DevicePerLength is the number of device units per inch of
	// physical length.
	DevicePerLength float32

	// DevicePerPixel is the number of device units per display pixel.
	DevicePerPixel float32
}

// Defaults sets the standard scale: 72 device units per inch, 1 device
// unit per pixel.
func (ctx *Context) Defaults() {
	ctx.DevicePerLength = 72
	ctx.DevicePerPixel = 1
}

// NewContext returns a context with the given scales.
func NewContext(devicePerLength, devicePerPixel float32) *Context {
	return &Context{DevicePerLength: devicePerLength, DevicePerPixel: devicePerPixel}
}

// ToDevice converts a length or pixel value to device units using the
// context scales. Device values pass through unchanged; any other
// dimension has no device representation.
func (v Value) ToDevice(ctx *Context) (Value, error) {
	switch v.Dim() {
	case DimLength:
		in, _ := v.Convert(UnitIn)
		return Value{Value: in.Value * ctx.DevicePerLength, Unit: UnitDot}, nil
	case DimPixel:
		return Value{Value: v.Value * ctx.DevicePerPixel, Unit: UnitDot}, nil
	case DimDevice:
		return v, nil
	}
	return Value{}, fmt.Errorf("%w: cannot convert %v value to device units", ErrUnsupportedUnit, v.Dim())
}
