// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrOrder(t *testing.T) {
	e := New("rect")
	e.SetAttr("id", "r1").SetAttr("x", "0").SetAttr("y", "0")
	e.SetAttr("x", "5") // replace keeps position

	names := make([]string, len(e.Attr))
	for i, at := range e.Attr {
		names[i] = at.Name.Local
	}
	assert.Equal(t, []string{"id", "x", "y"}, names)

	x, ok := e.AttrByName("x")
	require.True(t, ok)
	assert.Equal(t, "5", x)

	_, ok = e.AttrByName("missing")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	root := New("svg")
	root.SetAttr("version", "1.1")
	g := root.AddChild(New("g"))
	txt := g.AddChild(New("text"))
	txt.Text = "hi"

	out := root.String()
	assert.Equal(t, "<svg version=\"1.1\">\n  <g>\n    <text>hi</text>\n  </g>\n</svg>", out)
}
