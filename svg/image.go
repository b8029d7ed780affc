// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/h2non/filetype"

	// raster formats accepted for embedded image data
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

// Image places a raster image in the drawing. The source is either an
// external reference, raw encoded bytes embedded as a data URI, or a
// decoded [image.Image] encoded to a PNG data URI at emission.
type Image struct {
	NodeBase
	styles.Styling
	styles.Clip
	styles.Transform

	X, Y, W, H units.Value

	// HRef is an external reference to the image.
	HRef string

	// PreserveAspectRatio is the raw attribute value, e.g.
	// "xMidYMid meet".
	PreserveAspectRatio string

	data []byte
	mime string
	img  image.Image
}

// NewImage returns an image placed at (x, y) with the given size. A
// source must be attached before emission.
func NewImage(x, y, w, h units.Value) (*Image, error) {
	if err := checkCoord("x", x); err != nil {
		return nil, err
	}
	if err := checkCoord("y", y); err != nil {
		return nil, err
	}
	if err := checkSize("width", w); err != nil {
		return nil, err
	}
	if err := checkSize("height", h); err != nil {
		return nil, err
	}
	return &Image{NodeBase: newBase(), X: x, Y: y, W: w, H: h}, nil
}

// SetHRef sets an external reference as the source.
func (n *Image) SetHRef(href string) *Image {
	n.HRef = href
	return n
}

// SetData embeds raw encoded image bytes as the source. The media
// type is sniffed from the bytes and the data must decode as a
// supported raster format (png, jpeg, gif, bmp, tiff, webp).
func (n *Image) SetData(data []byte) error {
	kind, err := filetype.Image(data)
	if err != nil {
		return fmt.Errorf("%w: unrecognized image data: %v", styles.ErrInvalidValue, err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: undecodable image data: %v", styles.ErrInvalidValue, err)
	}
	n.data = data
	n.mime = kind.MIME.Value
	return nil
}

// SetImage embeds a decoded image as the source; it is encoded to PNG
// at emission.
func (n *Image) SetImage(img image.Image) *Image {
	n.img = img
	return n
}

// SetPreserveAspectRatio sets the raw preserveAspectRatio attribute.
func (n *Image) SetPreserveAspectRatio(v string) *Image {
	n.PreserveAspectRatio = v
	return n
}

// href resolves the source to the final attribute value.
func (n *Image) href() (string, error) {
	switch {
	case n.HRef != "":
		return n.HRef, nil
	case n.data != nil:
		return dataURI(n.mime, n.data), nil
	case n.img != nil:
		var buf bytes.Buffer
		if err := png.Encode(&buf, n.img); err != nil {
			return "", fmt.Errorf("svg: encoding image: %w", err)
		}
		return dataURI("image/png", buf.Bytes()), nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingSource, n.Id)
}

// dataURI renders bytes as a base64 data URI.
func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Emit builds the image element.
func (n *Image) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("image")
	e.SetAttr("id", n.Id)
	for _, q := range []struct {
		name string
		v    units.Value
	}{{"x", n.X}, {"y", n.Y}, {"width", n.W}, {"height", n.H}} {
		if err := setQuantity(e, q.name, q.v); err != nil {
			return nil, err
		}
	}
	if n.PreserveAspectRatio != "" {
		e.SetAttr("preserveAspectRatio", n.PreserveAspectRatio)
	}
	href, err := n.href()
	if err != nil {
		return nil, err
	}
	e.SetAttr("href", href)
	if err := contribute(e, ctx, &n.Styling, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}
