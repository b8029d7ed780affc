// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xmlx provides a minimal ordered-attribute XML element tree.
It is the handoff surface between the drawing model and actual output:
entities emit [Element] values, and the writer turns them into markup
using the standard encoding/xml token stream.

Attribute order is the order in which SetAttr is called, which keeps
serialized output stable and diffable.
*/
package xmlx

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Element is one node of the output tree: a tag, an ordered attribute
// list, child elements, and optional character data.
type Element struct {
	Tag      string
	Attr     []xml.Attr
	Children []*Element
	Text     string
}

// New returns a new element with the given tag.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// SetAttr appends an attribute, or replaces the value in place if the
// name is already present, preserving its position.
func (e *Element) SetAttr(name, val string) *Element {
	for i := range e.Attr {
		if e.Attr[i].Name.Local == name {
			e.Attr[i].Value = val
			return e
		}
	}
	at := xml.Attr{}
	at.Name.Local = name
	at.Value = val
	e.Attr = append(e.Attr, at)
	return e
}

// AttrByName returns the value of the named attribute, and false if it
// is not present.
func (e *Element) AttrByName(name string) (string, bool) {
	for i := range e.Attr {
		if e.Attr[i].Name.Local == name {
			return e.Attr[i].Value, true
		}
	}
	return "", false
}

// AddChild appends a child element and returns it.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// WriteXML writes the element tree to the given writer, optionally
// indented with two spaces per level.
func (e *Element) WriteXML(wr io.Writer, indent bool) error {
	bw := bufio.NewWriter(wr)
	enc := xml.NewEncoder(bw)
	if indent {
		enc.Indent("", "  ")
	}
	if err := e.encode(enc); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the indented markup for the element tree.
func (e *Element) String() string {
	var sb strings.Builder
	e.WriteXML(&sb, true)
	return sb.String()
}

func (e *Element) encode(enc *xml.Encoder) error {
	se := xml.StartElement{Attr: e.Attr}
	se.Name.Local = e.Tag
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := child.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}
