// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"compress/gzip"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecmark/vecmark/units"
)

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := NewID()
		assert.Len(t, id, 23)
		assert.True(t, strings.HasPrefix(id, "s"))
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestTextEmit(t *testing.T) {
	ctx := newCtx()
	n, err := NewText("hello", units.Mm(5), units.Mm(10))
	require.NoError(t, err)
	n.SetID("label")
	require.NoError(t, n.SetShift(units.Mm(1), units.Mm(2)))
	n.SetRotate([]float32{0, 15})
	n.Font.SetFamily("serif")

	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text", e.Tag)
	assert.Equal(t, "hello", e.Text)

	names := make([]string, len(e.Attr))
	for i, at := range e.Attr {
		names[i] = at.Name.Local
	}
	assert.Equal(t, []string{"id", "x", "y", "dx", "dy", "rotate", "font-family"}, names)
	x, _ := e.AttrByName("x")
	assert.Equal(t, "5.000000mm", x)
	rot, _ := e.AttrByName("rotate")
	assert.Equal(t, "0 15", rot)
}

func TestTextPathEmit(t *testing.T) {
	ctx := newCtx()
	n := NewTextPath("along the curve", "curve")
	n.SetID("flow")
	n.SetSide(TextPathSideLeft)
	require.NoError(t, n.SetStartOffset(units.Px(5)))

	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text", e.Tag)
	id, _ := e.AttrByName("id")
	assert.Equal(t, "flow", id)
	require.Len(t, e.Children, 1)

	tp := e.Children[0]
	assert.Equal(t, "textPath", tp.Tag)
	assert.Equal(t, "along the curve", tp.Text)
	href, _ := tp.AttrByName("href")
	assert.Equal(t, "#curve", href)
	side, _ := tp.AttrByName("side")
	assert.Equal(t, "left", side)
	off, _ := tp.AttrByName("startOffset")
	assert.Equal(t, "5.000000px", off)
}

func TestImageSources(t *testing.T) {
	ctx := newCtx()

	n, err := NewImage(units.Px(0), units.Px(0), units.Px(10), units.Px(10))
	require.NoError(t, err)
	_, err = n.Emit(ctx)
	require.ErrorIs(t, err, ErrMissingSource)

	n.SetHRef("sprites.png")
	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "image", e.Tag)
	href, _ := e.AttrByName("href")
	assert.Equal(t, "sprites.png", href)

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	require.NoError(t, png.Encode(&buf, img))

	n2, err := NewImage(units.Px(0), units.Px(0), units.Px(1), units.Px(1))
	require.NoError(t, err)
	require.NoError(t, n2.SetData(buf.Bytes()))
	e2, err := n2.Emit(ctx)
	require.NoError(t, err)
	href2, _ := e2.AttrByName("href")
	assert.True(t, strings.HasPrefix(href2, "data:image/png;base64,"))

	n3, err := NewImage(units.Px(0), units.Px(0), units.Px(1), units.Px(1))
	require.NoError(t, err)
	n3.SetImage(img).SetPreserveAspectRatio("xMidYMid meet")
	e3, err := n3.Emit(ctx)
	require.NoError(t, err)
	par, _ := e3.AttrByName("preserveAspectRatio")
	assert.Equal(t, "xMidYMid meet", par)
	href3, _ := e3.AttrByName("href")
	assert.True(t, strings.HasPrefix(href3, "data:image/png;base64,"))
}

func TestImageRejectsGarbage(t *testing.T) {
	n, err := NewImage(units.Px(0), units.Px(0), units.Px(1), units.Px(1))
	require.NoError(t, err)
	require.Error(t, n.SetData([]byte("not an image")))
}

func TestGroupEmitOrder(t *testing.T) {
	ctx := newCtx()
	g := NewGroup()

	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		r, err := NewRect(units.Px(0), units.Px(0), units.Px(1), units.Px(1))
		require.NoError(t, err)
		r.SetID(id)
		g.Add(r)
	}
	assert.Equal(t, ids, g.Keys())

	require.NoError(t, g.MoveToBack("c"))
	assert.Equal(t, []string{"c", "a", "b"}, g.Keys())

	e, err := g.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "g", e.Tag)
	require.Len(t, e.Children, 3)
	for i, want := range []string{"c", "a", "b"} {
		id, _ := e.Children[i].AttrByName("id")
		assert.Equal(t, want, id)
	}
}

func TestContainerReplaceInPlace(t *testing.T) {
	g := NewGroup()
	a, _ := NewRect(units.Px(0), units.Px(0), units.Px(1), units.Px(1))
	a.SetID("a")
	b, _ := NewRect(units.Px(0), units.Px(0), units.Px(1), units.Px(1))
	b.SetID("b")
	g.Add(a)
	g.Add(b)

	a2, _ := NewCircle(units.Px(5), units.Px(5), units.Px(2))
	a2.SetID("a")
	g.Add(a2)

	assert.Equal(t, []string{"a", "b"}, g.Keys())
	got, ok := g.Child("a")
	require.True(t, ok)
	assert.Same(t, a2, got)
}

func TestClipPathEmit(t *testing.T) {
	ctx := newCtx()
	cp := NewClipPath().SetUnits(ClipPathUserSpace)
	cp.SetID("frame")
	c, err := NewCircle(units.Px(0), units.Px(0), units.Px(5))
	require.NoError(t, err)
	cp.Add(c)

	e, err := cp.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "clipPath", e.Tag)
	u, _ := e.AttrByName("clipPathUnits")
	assert.Equal(t, "userSpaceOnUse", u)
	require.Len(t, e.Children, 1)

	r, err := NewRect(units.Px(0), units.Px(0), units.Px(10), units.Px(10))
	require.NoError(t, err)
	r.Clip.SetPathID("frame")
	re, err := r.Emit(ctx)
	require.NoError(t, err)
	ref, _ := re.AttrByName("clip-path")
	assert.Equal(t, "url(#frame)", ref)
}

func TestDrawingRoot(t *testing.T) {
	d := NewDrawing()
	d.SetPaperSize(PaperA4)
	c, err := NewCircle(units.Mm(105), units.Mm(148.5), units.Mm(50))
	require.NoError(t, err)
	d.Add(c)

	root, err := d.Root()
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Tag)
	ns, _ := root.AttrByName("xmlns")
	assert.Equal(t, "http://www.w3.org/2000/svg", ns)
	xl, _ := root.AttrByName("xmlns:xlink")
	assert.Equal(t, "http://www.w3.org/1999/xlink", xl)
	ver, _ := root.AttrByName("version")
	assert.Equal(t, "1.1", ver)
	w, _ := root.AttrByName("width")
	assert.Equal(t, "210.000000mm", w)
	h, _ := root.AttrByName("height")
	assert.Equal(t, "297.000000mm", h)

	// no defs and no style when nothing is attached
	require.Len(t, root.Children, 1)
	assert.Equal(t, "circle", root.Children[0].Tag)
}

func TestDrawingDefsAndStylesheet(t *testing.T) {
	d := NewDrawing()
	d.SetViewBox(0, 0, 100, 100)
	d.SetVersion(SVG20)

	cp := NewClipPath()
	cp.SetID("frame")
	d.AddDef(cp)

	sheet, err := parser.Parse("rect { fill: red; }")
	require.NoError(t, err)
	d.AddStylesheet(sheet)

	r, err := NewRect(units.Px(0), units.Px(0), units.Px(10), units.Px(10))
	require.NoError(t, err)
	d.Add(r)

	root, err := d.Root()
	require.NoError(t, err)
	ver, _ := root.AttrByName("version")
	assert.Equal(t, "2.0", ver)
	vb, _ := root.AttrByName("viewBox")
	assert.Equal(t, "0 0 100 100", vb)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "defs", root.Children[0].Tag)
	assert.Equal(t, "style", root.Children[1].Tag)
	assert.Contains(t, root.Children[1].Text, "rect")
	assert.Contains(t, root.Children[1].Text, "fill: red")
	assert.Equal(t, "rect", root.Children[2].Tag)
}

func TestDrawingSave(t *testing.T) {
	d := NewDrawing()
	require.NoError(t, d.SetSize(units.Mm(100), units.Mm(100)))
	c, err := NewCircle(units.Mm(50), units.Mm(50), units.Mm(10))
	require.NoError(t, err)
	d.Add(c)

	dir := t.TempDir()
	base := filepath.Join(dir, "out")
	require.NoError(t, d.Save(base))

	data, err := os.ReadFile(base + ".svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "circle")

	require.NoError(t, d.SaveCompressed(base))
	f, err := os.Open(base + ".svgz")
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(plain))
}
