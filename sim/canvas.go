//----------------------------------------------------------------------
// This file is part of agra-routing.
// Copyright (C) 2022 Bernd Fix >Y<
//
// agra-routing is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// agra-routing is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package sim

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/bfix/gospel/logger"
)

// Color definitions for drawing
var (
	ClrWhite  = &color.RGBA{255, 255, 255, 0}
	ClrRed    = &color.RGBA{255, 0, 0, 0}
	ClrBlack  = &color.RGBA{0, 0, 0, 0}
	ClrBlue   = &color.RGBA{0, 0, 255, 0}
	ClrGray   = &color.RGBA{160, 160, 160, 0}
	ClrLight  = &color.RGBA{224, 224, 224, 0}
	ClrOrange = &color.RGBA{255, 140, 0, 0}
	ClrGreen  = &color.RGBA{0, 160, 0, 0}
)

// Canvas for drawing the topology and routes
type Canvas interface {
	// Open a canvas (prepare resources)
	Open()

	// Start a new graph
	Start()

	// Circle primitive
	Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA)

	// Text primitive
	Text(x, y, fs float64, s, anchor string)

	// Line primitive
	Line(x1, y1, x2, y2, w float64, clr *color.RGBA)

	// Finalise graph
	End() error

	// Close a canvas. No further operations are allowed
	Close()
}

// GetCanvas returns a canvas for drawing a field of given size (factory).
// Returns nil if no rendering is configured.
func GetCanvas(cfg *RenderCfg, size float64) (c Canvas) {
	switch cfg.Mode {
	case "svg":
		c = NewSVGCanvas(cfg.File, size, size, 1)
	}
	return
}

//----------------------------------------------------------------------
// SVG canvas
//----------------------------------------------------------------------

// SVGCanvas for writing SVG streams
type SVGCanvas struct {
	off, prec float64
	svg       *svg.SVG
	w, h      int
	buf       *bytes.Buffer
	fn        string
}

// NewSVGCanvas creates a new SVG canvas to be stored in a file
func NewSVGCanvas(fn string, w, h, off float64) *SVGCanvas {
	c := new(SVGCanvas)
	c.buf = new(bytes.Buffer)
	c.fn = fn
	c.off = off
	c.prec = 0.01
	c.w = c.xlate(w + off)
	c.h = c.xlate(h + off)
	return c
}

// Open a canvas (prepare resources)
func (c *SVGCanvas) Open() {
	c.svg = svg.New(c.buf)
}

// Start the canvas (new rendering begins)
func (c *SVGCanvas) Start() {
	c.svg.Start(c.w, c.h)
	c.svg.Rect(0, 0, c.w, c.h, "fill:white")
}

// Circle primitive
func (c *SVGCanvas) Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA) {
	fill := "none"
	if clrFill != nil {
		fill = hex(clrFill)
	}
	border := ""
	if w > 0 && clrBorder != nil {
		border = fmt.Sprintf("stroke:%s;stroke-width:%d;", hex(clrBorder), int(w/c.prec))
	}
	style := fmt.Sprintf("%sfill:%s", border, fill)
	c.svg.Circle(c.xlate(x), c.xlate(y), int(r/c.prec), style)
}

// Text primitive
func (c *SVGCanvas) Text(x, y, fs float64, s, anchor string) {
	style := fmt.Sprintf("text-anchor:%s;font-size:%dpx", anchor, int(fs/c.prec))
	c.svg.Text(c.xlate(x), c.xlate(y), s, style)
}

// Line primitive
func (c *SVGCanvas) Line(x1, y1, x2, y2, w float64, clr *color.RGBA) {
	style := "stroke:black;stroke-width:1"
	if w > 0 && clr != nil {
		style = fmt.Sprintf("stroke:%s;stroke-width:%d;", hex(clr), int(w/c.prec))
	}
	c.svg.Line(c.xlate(x1), c.xlate(y1), c.xlate(x2), c.xlate(y2), style)
}

// coordinate translation
func (c *SVGCanvas) xlate(x float64) int {
	return int((x + c.off) / c.prec)
}

// End finalizes the graph and writes it to file (if defined)
func (c *SVGCanvas) End() error {
	c.svg.End()
	if len(c.fn) == 0 {
		return nil
	}
	if err := os.WriteFile(c.fn, c.buf.Bytes(), 0o644); err != nil { //nolint:gosec // output file
		return fmt.Errorf("file %s: %w", c.fn, err)
	}
	logger.Printf(logger.DBG, "[canvas] %d bytes written to %s", c.buf.Len(), c.fn)
	return nil
}

// Bytes returns the rendered SVG document
func (c *SVGCanvas) Bytes() []byte {
	return c.buf.Bytes()
}

// Close a canvas. No further operations are allowed
func (c *SVGCanvas) Close() {
	c.buf = nil
}

// color as hex string
func hex(clr *color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", clr.R, clr.G, clr.B)
}
