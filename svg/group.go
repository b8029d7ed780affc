// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"iter"

	"github.com/vecmark/vecmark/base/keylist"
	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

// Container holds an ordered set of child nodes keyed by id. The key
// order is the drawing order: later children render on top. All
// reorder operations are O(1).
type Container struct {
	kids keylist.List[Node]
}

// Add appends the node at the front of the drawing order (drawn
// last). Re-adding a node with the same id replaces it in place
// without moving it.
func (c *Container) Add(n Node) {
	c.kids.Set(n.ID(), n)
}

// Prepend inserts the node at the back of the drawing order (drawn
// first). Re-adding keeps the existing position.
func (c *Container) Prepend(n Node) {
	c.kids.Prepend(n.ID(), n)
}

// Delete removes the child with the given id.
func (c *Container) Delete(id string) error {
	return c.kids.Delete(id)
}

// Child returns the child with the given id.
func (c *Container) Child(id string) (Node, bool) {
	return c.kids.At(id)
}

// Len returns the number of children.
func (c *Container) Len() int {
	return c.kids.Len()
}

// Keys returns the child ids in drawing order.
func (c *Container) Keys() []string {
	return c.kids.Keys()
}

// KeysReverse returns the child ids in reverse drawing order.
func (c *Container) KeysReverse() []string {
	return c.kids.KeysReverse()
}

// All iterates children in drawing order over a snapshot of the key
// order.
func (c *Container) All() iter.Seq2[string, Node] {
	return c.kids.All()
}

// AllReverse iterates children in reverse drawing order.
func (c *Container) AllReverse() iter.Seq2[string, Node] {
	return c.kids.AllReverse()
}

// MoveToFront moves the child to the top of the drawing order.
func (c *Container) MoveToFront(id string) error {
	return c.kids.MoveToFront(id)
}

// MoveToBack moves the child to the bottom of the drawing order.
func (c *Container) MoveToBack(id string) error {
	return c.kids.MoveToBack(id)
}

// StepForward moves the child one position up the drawing order.
func (c *Container) StepForward(id string) error {
	return c.kids.StepForward(id)
}

// StepBackward moves the child one position down the drawing order.
func (c *Container) StepBackward(id string) error {
	return c.kids.StepBackward(id)
}

// InsertBefore inserts a new child immediately below the anchor in
// the drawing order.
func (c *Container) InsertBefore(n Node, anchor string) error {
	return c.kids.InsertBefore(n.ID(), anchor, n)
}

// InsertAfter inserts a new child immediately above the anchor in the
// drawing order.
func (c *Container) InsertAfter(n Node, anchor string) error {
	return c.kids.InsertAfter(n.ID(), anchor, n)
}

// emitChildren emits every child, in drawing order, under e.
func (c *Container) emitChildren(e *xmlx.Element, ctx *units.Context) error {
	for _, child := range c.All() {
		ce, err := child.Emit(ctx)
		if err != nil {
			return err
		}
		e.AddChild(ce)
	}
	return nil
}

// Group is a container rendered as a g element; its trait bundles
// apply to all children.
type Group struct {
	NodeBase
	Container
	styles.Styling
	styles.Clip
	styles.Transform
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{NodeBase: newBase()}
}

// Emit builds the group element and its children.
func (g *Group) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("g")
	e.SetAttr("id", g.Id)
	if err := contribute(e, ctx, &g.Styling, &g.Clip, &g.Transform); err != nil {
		return nil, err
	}
	if err := g.emitChildren(e, ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// ClipPathUnits is the coordinate system of clip path contents.
type ClipPathUnits int32

const (
	// ClipPathUnitsNone leaves the attribute unset.
	ClipPathUnitsNone ClipPathUnits = iota

	// ClipPathUserSpace interprets contents in the user coordinate
	// system in place at reference time.
	ClipPathUserSpace

	// ClipPathObjectBoundingBox interprets contents as fractions of
	// the referencing entity's bounding box.
	ClipPathObjectBoundingBox
)

var clipPathUnitNames = [...]string{
	ClipPathUnitsNone:         "",
	ClipPathUserSpace:         "userSpaceOnUse",
	ClipPathObjectBoundingBox: "objectBoundingBox",
}

func (cu ClipPathUnits) String() string {
	if int(cu) < len(clipPathUnitNames) {
		return clipPathUnitNames[cu]
	}
	return ""
}

// ClipPath is a container whose children define a clipping region
// that other entities reference by id.
type ClipPath struct {
	NodeBase
	Container

	// Units is the coordinate system of the contents.
	Units ClipPathUnits
}

// NewClipPath returns an empty clip path.
func NewClipPath() *ClipPath {
	return &ClipPath{NodeBase: newBase()}
}

// SetUnits sets the content coordinate system.
func (cp *ClipPath) SetUnits(u ClipPathUnits) *ClipPath {
	cp.Units = u
	return cp
}

// Emit builds the clipPath element and its children.
func (cp *ClipPath) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("clipPath")
	e.SetAttr("id", cp.Id)
	if cp.Units != ClipPathUnitsNone {
		e.SetAttr("clipPathUnits", cp.Units.String())
	}
	if err := cp.emitChildren(e, ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Defs is the set of reusable definitions of a drawing; its children
// are referenced by id and not rendered directly.
type Defs struct {
	NodeBase
	Container
}

// NewDefs returns an empty definitions set.
func NewDefs() *Defs {
	return &Defs{NodeBase: newBase()}
}

// Emit builds the defs element and its children.
func (d *Defs) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("defs")
	if err := d.emitChildren(e, ctx); err != nil {
		return nil, err
	}
	return e, nil
}
