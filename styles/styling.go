// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package styles provides the visual trait bundles that drawable
entities compose: stroke, fill, font, clipping, transform, CSS hooks
and text layout. Each bundle owns a disjoint set of presentation
attributes and contributes only its own, explicitly set keys to an
output element, in a fixed order, so any combination of bundles on an
entity serializes deterministically.

Setters that cannot fail are chainable; setters that validate their
input return an error instead. Opacities are deliberately lenient and
clamp to [0, 1] rather than rejecting out-of-range values.
*/
package styles

import (
	"errors"
	"fmt"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/transform"
	"github.com/vecmark/vecmark/units"
)

var (
	// ErrInvalidValue is returned for out-of-domain attribute values.
	ErrInvalidValue = errors.New("styles: invalid value")

	// ErrInvalidUnit is returned when an attribute quantity carries a
	// unit dimension the attribute does not accept.
	ErrInvalidUnit = errors.New("styles: invalid unit")
)

// Styling carries the raw CSS hooks: an inline style string and a
// class name.
type Styling struct {
	// Style is the inline CSS for the entity.
	Style string

	// Class is the CSS class name for the entity.
	Class string
}

// SetStyle sets the inline CSS.
func (s *Styling) SetStyle(v string) *Styling {
	s.Style = v
	return s
}

// SetClass sets the CSS class name.
func (s *Styling) SetClass(v string) *Styling {
	s.Class = v
	return s
}

// Contribute writes the style and class attributes.
func (s *Styling) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if s.Style != "" {
		e.SetAttr("style", s.Style)
	}
	if s.Class != "" {
		e.SetAttr("class", s.Class)
	}
	return nil
}

// Clip references another entity, by id, as the clipping path.
type Clip struct {
	// PathID is the id of the clip-path entity.
	PathID string
}

// SetPathID sets the clip-path reference.
func (c *Clip) SetPathID(id string) *Clip {
	c.PathID = id
	return c
}

// Contribute writes the clip-path attribute as a url(#id) reference.
func (c *Clip) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if c.PathID != "" {
		e.SetAttr("clip-path", "url(#"+c.PathID+")")
	}
	return nil
}

// Transform attaches an affine transform chain to the entity.
type Transform struct {
	Transform *transform.Affine
}

// SetTransform sets the transform chain.
func (t *Transform) SetTransform(a *transform.Affine) *Transform {
	t.Transform = a
	return t
}

// Contribute writes the transform attribute. A chain carrying a build
// error surfaces it here.
func (t *Transform) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if t.Transform == nil {
		return nil
	}
	if err := t.Transform.Err(); err != nil {
		return fmt.Errorf("styles: transform: %w", err)
	}
	if s := t.Transform.String(); s != "" {
		e.SetAttr("transform", s)
	}
	return nil
}

// clampOpacity clamps to [0, 1]; out-of-range opacities are clamped,
// not rejected.
func clampOpacity(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
