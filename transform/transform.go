// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package transform provides a composable 2D affine transform built from
an ordered chain of primitive operations (translate, scale, rotate,
skew, reflect, shear, raw matrix). The chain renders as an SVG
transform attribute string and composes into a single [Matrix2] for
applying to points.

Fluent chaining reads in application order: with
Identity().Translate(...).Rotate(...), the translate is applied to a
point first, then the rotate. Internally each fluent call inserts its
operation at the front of the chain; the matrix is the left-to-right
product of the stored chain, and the rendered string lists the chain in
the same stored order, which is how SVG applies the right-most
operation first.

The first length-bearing operation (a translate or a rotation origin)
fixes the transform's unit. Later length-bearing operations and applied
points must carry the same unit; a mismatch makes the transform fail
and the error sticks.
*/
package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/vecmark/vecmark/units"
)

var (
	// ErrLengthMismatch is returned by batch application when the x and
	// y coordinate slices have different lengths.
	ErrLengthMismatch = errors.New("transform: coordinate slices differ in length")

	// ErrIncompleteOrigin is returned by a rotation given only one of
	// its two origin coordinates.
	ErrIncompleteOrigin = errors.New("transform: rotation origin needs both x and y")

	// ErrMixedQuantityKind is returned when raw scalars and unit-tagged
	// quantities are mixed in one application.
	ErrMixedQuantityKind = errors.New("transform: mixed raw and unit-tagged coordinates")
)

// Matrix2 is a 2D affine matrix in SVG (a b c d e f) layout:
//
//	| XX XY X0 |
//	| YX YY Y0 |
//	|  0  0  1 |
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity matrix.
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Mul returns m*o, the matrix applying o first and then m.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// MulPoint applies the matrix to a point.
func (m Matrix2) MulPoint(x, y float32) (float32, float32) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// num renders a float the way SVG transform arguments are written.
func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Op is one primitive operation in a transform chain. Token renders
// the operation's SVG transform function; Matrix is its matrix form.
type Op interface {
	Token() string
	Matrix() Matrix2
}

// Translate shifts by (X, Y), magnitudes in the owning transform's
// unit.
type Translate struct {
	X, Y float32
}

func (op Translate) Token() string {
	return fmt.Sprintf("translate(%s %s)", num(op.X), num(op.Y))
}

func (op Translate) Matrix() Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: op.X, Y0: op.Y}
}

// Scale scales by dimensionless factors.
type Scale struct {
	SX, SY float32
}

func (op Scale) Token() string {
	return fmt.Sprintf("scale(%s %s)", num(op.SX), num(op.SY))
}

func (op Scale) Matrix() Matrix2 {
	return Matrix2{XX: op.SX, YY: op.SY}
}

// Rotate rotates by Angle degrees, about the origin point (OX, OY)
// when HasOrigin is set, else about (0, 0).
type Rotate struct {
	Angle     float32
	OX, OY    float32
	HasOrigin bool
}

func (op Rotate) Token() string {
	if op.HasOrigin {
		return fmt.Sprintf("rotate(%s %s %s)", num(op.Angle), num(op.OX), num(op.OY))
	}
	return fmt.Sprintf("rotate(%s)", num(op.Angle))
}

func (op Rotate) Matrix() Matrix2 {
	sin, cos := math32.Sincos(math32.DegToRad(op.Angle))
	rot := Matrix2{XX: cos, YX: sin, XY: -sin, YY: cos}
	if !op.HasOrigin {
		return rot
	}
	to := Matrix2{XX: 1, YY: 1, X0: op.OX, Y0: op.OY}
	back := Matrix2{XX: 1, YY: 1, X0: -op.OX, Y0: -op.OY}
	return to.Mul(rot).Mul(back)
}

// SkewX skews along the x axis by Angle degrees.
type SkewX struct {
	Angle float32
}

func (op SkewX) Token() string {
	return fmt.Sprintf("skewX(%s)", num(op.Angle))
}

func (op SkewX) Matrix() Matrix2 {
	return Matrix2{XX: 1, XY: math32.Tan(math32.DegToRad(op.Angle)), YY: 1}
}

// SkewY skews along the y axis by Angle degrees.
type SkewY struct {
	Angle float32
}

func (op SkewY) Token() string {
	return fmt.Sprintf("skewY(%s)", num(op.Angle))
}

func (op SkewY) Matrix() Matrix2 {
	return Matrix2{XX: 1, YX: math32.Tan(math32.DegToRad(op.Angle)), YY: 1}
}

// Shear shears by dimensionless factors, rendered as a raw matrix
// token since SVG has no shear function.
type Shear struct {
	SX, SY float32
}

func (op Shear) Token() string {
	return op.Matrix().token()
}

func (op Shear) Matrix() Matrix2 {
	return Matrix2{XX: 1, YX: op.SY, XY: op.SX, YY: 1}
}

// Reflect mirrors about both axes.
type Reflect struct{}

func (op Reflect) Token() string { return Scale{SX: -1, SY: -1}.Token() }
func (op Reflect) Matrix() Matrix2 { return Scale{SX: -1, SY: -1}.Matrix() }

// ReflectX mirrors about the y axis (x goes to -x).
type ReflectX struct{}

func (op ReflectX) Token() string { return Scale{SX: -1, SY: 1}.Token() }
func (op ReflectX) Matrix() Matrix2 { return Scale{SX: -1, SY: 1}.Matrix() }

// ReflectY mirrors about the x axis (y goes to -y).
type ReflectY struct{}

func (op ReflectY) Token() string { return Scale{SX: 1, SY: -1}.Token() }
func (op ReflectY) Matrix() Matrix2 { return Scale{SX: 1, SY: -1}.Matrix() }

// SixMatrix is a raw six-parameter matrix in SVG (a b c d e f) order.
type SixMatrix struct {
	A, B, C, D, E, F float32
}

func (op SixMatrix) Token() string {
	return op.Matrix().token()
}

func (op SixMatrix) Matrix() Matrix2 {
	return Matrix2{XX: op.A, YX: op.B, XY: op.C, YY: op.D, X0: op.E, Y0: op.F}
}

// token renders the matrix as an SVG matrix() function in column-major
// (a b c d e f) argument order.
func (m Matrix2) token() string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m.XX), num(m.YX), num(m.XY), num(m.YY), num(m.X0), num(m.Y0))
}

// Affine is an ordered chain of operations composing into one matrix.
// Build it fluently from [Identity]; check [Affine.Err] or the error
// from [Affine.Apply] before trusting results.
type Affine struct {
	ops []Op

	// unit fixed by the first length-bearing operation
	unit    units.Units
	unitSet bool

	mat    Matrix2
	matSet bool
	err    error
}

// Identity returns a transform with no operations.
func Identity() *Affine {
	return &Affine{}
}

// Err returns the first error recorded while building the chain.
func (a *Affine) Err() error {
	return a.err
}

// Unit returns the unit fixed by the chain's length-bearing
// operations, with false if none has been supplied yet.
func (a *Affine) Unit() (units.Units, bool) {
	return a.unit, a.unitSet
}

// push inserts the operation at the front of the chain and
// invalidates the cached matrix.
func (a *Affine) push(op Op) *Affine {
	a.ops = append([]Op{op}, a.ops...)
	a.matSet = false
	return a
}

// fail records a sticky error; the first one wins.
func (a *Affine) fail(err error) *Affine {
	if a.err == nil {
		a.err = err
	}
	return a
}

// bindLength checks a length-bearing coordinate against the chain's
// unit, fixing it on first use, and returns the magnitude.
func (a *Affine) bindLength(v units.Value) (float32, error) {
	switch v.Dim() {
	case units.DimLength, units.DimPixel, units.DimNone:
	default:
		return 0, fmt.Errorf("transform: %v is not a length: %w", v.Unit, units.ErrUnsupportedUnit)
	}
	if !a.unitSet {
		a.unit = v.Unit
		a.unitSet = true
		return v.Value, nil
	}
	if v.Unit != a.unit {
		return 0, fmt.Errorf("transform: %v does not match chain unit %v: %w", v.Unit, a.unit, units.ErrUnitMismatch)
	}
	return v.Value, nil
}

// bindAngle returns the angle in degrees. Angle-dimensioned values are
// converted; a raw scalar is taken as degrees.
func bindAngle(v units.Value) (float32, error) {
	switch v.Dim() {
	case units.DimAngle:
		deg, _ := v.Convert(units.UnitDeg)
		return deg.Value, nil
	case units.DimNone:
		return v.Value, nil
	}
	return 0, fmt.Errorf("transform: %v is not an angle: %w", v.Unit, units.ErrUnsupportedUnit)
}

// Translate adds a translation by (x, y). Both coordinates must carry
// the same unit, which must match the chain's unit once fixed.
func (a *Affine) Translate(x, y units.Value) *Affine {
	if a.err != nil {
		return a
	}
	if x.Unit != y.Unit {
		return a.fail(fmt.Errorf("transform: translate x in %v, y in %v: %w", x.Unit, y.Unit, units.ErrUnitMismatch))
	}
	tx, err := a.bindLength(x)
	if err != nil {
		return a.fail(err)
	}
	ty, err := a.bindLength(y)
	if err != nil {
		return a.fail(err)
	}
	return a.push(Translate{X: tx, Y: ty})
}

// Scale adds a scale by dimensionless factors.
func (a *Affine) Scale(sx, sy float32) *Affine {
	if a.err != nil {
		return a
	}
	return a.push(Scale{SX: sx, SY: sy})
}

// Rotate adds a rotation by the given angle, optionally about an
// origin point given as exactly two coordinates. A single origin
// coordinate is an error.
func (a *Affine) Rotate(angle units.Value, origin ...units.Value) *Affine {
	if a.err != nil {
		return a
	}
	deg, err := bindAngle(angle)
	if err != nil {
		return a.fail(err)
	}
	switch len(origin) {
	case 0:
		return a.push(Rotate{Angle: deg})
	case 2:
		if origin[0].Unit != origin[1].Unit {
			return a.fail(fmt.Errorf("transform: rotation origin x in %v, y in %v: %w", origin[0].Unit, origin[1].Unit, units.ErrUnitMismatch))
		}
		ox, err := a.bindLength(origin[0])
		if err != nil {
			return a.fail(err)
		}
		oy, err := a.bindLength(origin[1])
		if err != nil {
			return a.fail(err)
		}
		return a.push(Rotate{Angle: deg, OX: ox, OY: oy, HasOrigin: true})
	}
	return a.fail(fmt.Errorf("%w: got %d origin coordinates", ErrIncompleteOrigin, len(origin)))
}

// SkewX adds an x-axis skew by the given angle in degrees.
func (a *Affine) SkewX(angle float32) *Affine {
	if a.err != nil {
		return a
	}
	return a.push(SkewX{Angle: angle})
}

// SkewY adds a y-axis skew by the given angle in degrees.
func (a *Affine) SkewY(angle float32) *Affine {
	if a.err != nil {
		return a
	}
	return a.push(SkewY{Angle: angle})
}

// Shear adds a shear by dimensionless factors.
func (a *Affine) Shear(sx, sy float32) *Affine {
	if a.err != nil {
		return a
	}
	return a.push(Shear{SX: sx, SY: sy})
}

// Reflect adds a mirror about both axes.
func (a *Affine) Reflect() *Affine {
	if a.err != nil {
		return a
	}
	return a.push(Reflect{})
}

// ReflectX adds a mirror sending x to -x.
func (a *Affine) ReflectX() *Affine {
	if a.err != nil {
		return a
	}
	return a.push(ReflectX{})
}

// ReflectY adds a mirror sending y to -y.
func (a *Affine) ReflectY() *Affine {
	if a.err != nil {
		return a
	}
	return a.push(ReflectY{})
}

// SixMatrix adds a raw matrix in SVG (a b c d e f) parameter order.
func (a *Affine) SixMatrix(ma, mb, mc, md, me, mf float32) *Affine {
	if a.err != nil {
		return a
	}
	return a.push(SixMatrix{A: ma, B: mb, C: mc, D: md, E: me, F: mf})
}

// Matrix returns the composed matrix: the left-to-right product over
// the stored chain, so the operation added earliest in fluent order is
// applied to a point first.
func (a *Affine) Matrix() (Matrix2, error) {
	if a.err != nil {
		return Matrix2{}, a.err
	}
	if !a.matSet {
		m := Identity2()
		for _, op := range a.ops {
			m = m.Mul(op.Matrix())
		}
		a.mat = m
		a.matSet = true
	}
	return a.mat, nil
}

// String renders the chain as an SVG transform attribute value.
func (a *Affine) String() string {
	toks := make([]string, len(a.ops))
	for i, op := range a.ops {
		toks[i] = op.Token()
	}
	return strings.Join(toks, " ")
}

// checkPointUnit validates one coordinate pair against the chain unit.
func (a *Affine) checkPointUnit(x, y units.Value) error {
	if x.IsSet() != y.IsSet() {
		return fmt.Errorf("%w: x in %v, y in %v", ErrMixedQuantityKind, x.Unit, y.Unit)
	}
	if x.IsSet() && x.Unit != y.Unit {
		return fmt.Errorf("transform: point x in %v, y in %v: %w", x.Unit, y.Unit, units.ErrUnitMismatch)
	}
	if a.unitSet && a.unit != units.UnitNone {
		if !x.IsSet() {
			return fmt.Errorf("%w: chain in %v, point untagged", ErrMixedQuantityKind, a.unit)
		}
		if x.Unit != a.unit {
			return fmt.Errorf("transform: point in %v, chain in %v: %w", x.Unit, a.unit, units.ErrUnitMismatch)
		}
	}
	return nil
}

// Apply transforms a single point, preserving its unit.
func (a *Affine) Apply(x, y units.Value) (units.Value, units.Value, error) {
	m, err := a.Matrix()
	if err != nil {
		return units.Value{}, units.Value{}, err
	}
	if err := a.checkPointUnit(x, y); err != nil {
		return units.Value{}, units.Value{}, err
	}
	px, py := m.MulPoint(x.Value, y.Value)
	return units.New(px, x.Unit), units.New(py, y.Unit), nil
}

// ApplyBatch transforms same-length coordinate slices, preserving
// their units. Each slice must be homogeneous in unit, and raw scalars
// cannot mix with tagged quantities across the two slices.
func (a *Affine) ApplyBatch(xs, ys []units.Value) ([]units.Value, []units.Value, error) {
	m, err := a.Matrix()
	if err != nil {
		return nil, nil, err
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: %d x vs %d y", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, nil, nil
	}
	for i := 1; i < len(xs); i++ {
		if xs[i].Unit != xs[0].Unit {
			return nil, nil, fmt.Errorf("%w: x[%d] in %v among %v", ErrMixedQuantityKind, i, xs[i].Unit, xs[0].Unit)
		}
		if ys[i].Unit != ys[0].Unit {
			return nil, nil, fmt.Errorf("%w: y[%d] in %v among %v", ErrMixedQuantityKind, i, ys[i].Unit, ys[0].Unit)
		}
	}
	if err := a.checkPointUnit(xs[0], ys[0]); err != nil {
		return nil, nil, err
	}
	px := make([]units.Value, len(xs))
	py := make([]units.Value, len(ys))
	for i := range xs {
		x, y := m.MulPoint(xs[i].Value, ys[i].Value)
		px[i] = units.New(x, xs[i].Unit)
		py[i] = units.New(y, ys[i].Unit)
	}
	return px, py, nil
}
