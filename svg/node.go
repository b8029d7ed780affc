// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg provides the drawable entities and containers of a vector
drawing: leaf shapes, paths, text, embedded images, groups, clip
paths, definitions and the drawing root. Entities compose the trait
bundles from [github.com/vecmark/vecmark/styles] and emit
[github.com/vecmark/vecmark/base/xmlx] element trees; the drawing root
serializes the whole tree to SVG markup.

Every entity carries an opaque random id unless one is set explicitly.
Emission order is fixed: the id, then the entity's geometry
attributes, then the bundles in the order Styling, Stroke, Fill, Font,
TextLayout, Clip, Transform, so output is stable and diffable.

Shape geometry attributes (cx, x1, width, ...) are written as
formatted quantities with unit suffixes. Path data, polyline and
polygon points are unit-free by grammar, so those coordinates are
scaled to device units through the drawing's [units.Context].
*/
package svg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

var (
	// ErrLengthMismatch is returned when paired coordinate slices have
	// different lengths.
	ErrLengthMismatch = errors.New("svg: coordinate slices differ in length")

	// ErrMissingSource is returned when an image has neither a
	// reference nor embedded data.
	ErrMissingSource = errors.New("svg: image has no source")
)

// Node is anything that can live in a drawing tree.
type Node interface {
	// ID returns the node's unique identifier.
	ID() string

	// Emit builds the node's output element, converting quantities at
	// the serialization boundary using the given device scales.
	Emit(ctx *units.Context) (*xmlx.Element, error)
}

// NewID returns an opaque random identifier: "s" followed by 22
// url-safe base64 characters.
func NewID() string {
	var b [16]byte
	rand.Read(b[:])
	return "s" + base64.RawURLEncoding.EncodeToString(b[:])
}

// NodeBase is the common part of every entity: its identifier.
type NodeBase struct {
	Id string
}

// ID returns the node's identifier.
func (nb *NodeBase) ID() string {
	return nb.Id
}

// SetID replaces the auto-generated identifier.
func (nb *NodeBase) SetID(id string) {
	nb.Id = id
}

// newBase returns a NodeBase with a fresh random id.
func newBase() NodeBase {
	return NodeBase{Id: NewID()}
}

// checkCoord validates a geometric quantity: lengths, pixels and
// percentages are the dimensions legal in geometry attributes.
func checkCoord(name string, v units.Value) error {
	switch v.Dim() {
	case units.DimLength, units.DimPixel, units.DimPercent:
		return nil
	}
	return fmt.Errorf("%w: %s is %v, want length, pixel or percent", styles.ErrInvalidUnit, name, v.Dim())
}

// checkSize validates a non-negative geometric quantity.
func checkSize(name string, v units.Value) error {
	if err := checkCoord(name, v); err != nil {
		return err
	}
	if v.Value < 0 {
		return fmt.Errorf("%w: %s is negative", styles.ErrInvalidValue, name)
	}
	return nil
}

// setQuantity writes a set quantity as a formatted attribute.
func setQuantity(e *xmlx.Element, name string, v units.Value) error {
	if !v.IsSet() {
		return nil
	}
	tok, err := v.Format()
	if err != nil {
		return fmt.Errorf("svg: %s: %w", name, err)
	}
	e.SetAttr(name, tok)
	return nil
}

// deviceNum converts a quantity to its raw device magnitude for the
// unit-free attribute grammars (path data, point lists). Untagged
// scalars pass through as device magnitudes.
func deviceNum(v units.Value, ctx *units.Context) (float32, error) {
	if !v.IsSet() {
		return v.Value, nil
	}
	d, err := v.ToDevice(ctx)
	if err != nil {
		return 0, err
	}
	return d.Value, nil
}

// fnum renders a raw attribute numeral.
func fnum(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
