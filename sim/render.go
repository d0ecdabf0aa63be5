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
	"agra/core"
	"fmt"
)

//----------------------------------------------------------------------
// Render topology and routes
//----------------------------------------------------------------------

// Render draws the topology (obstacles, circumscribed obstacles, nodes and
// optionally planar links) and a list of paths on a canvas.
func Render(c Canvas, t *core.Topology, paths [][]int, planar bool) error {
	c.Open()
	c.Start()
	for _, o := range t.Obstacles() {
		c.Circle(o.Center.X, o.Center.Y, o.R, 0, nil, ClrLight)
	}
	for _, o := range t.CircumscribedObstacles() {
		c.Circle(o.Center.X, o.Center.Y, o.R, 0.05, ClrRed, nil)
		c.Text(o.Center.X, o.Center.Y, 0.8, fmt.Sprintf("H%d", o.ID), "middle")
	}
	if planar {
		for _, n := range t.Nodes() {
			for _, id := range n.PlanarNeighbors() {
				m := t.Node(id)
				c.Line(float64(n.X()), float64(n.Y()), float64(m.X()), float64(m.Y()), 0.02, ClrGray)
			}
		}
	}
	for _, n := range t.Nodes() {
		drawNode(c, n)
	}
	for _, path := range paths {
		drawPath(c, t, path)
	}
	return c.End()
}

// draw a node on the canvas
func drawNode(c Canvas, n *core.Node) {
	clr := ClrBlack
	switch {
	case !n.Enabled():
		clr = ClrGray
	case n.Border():
		clr = ClrOrange
	}
	c.Circle(float64(n.X()), float64(n.Y()), 0.15, 0, nil, clr)
}

// draw a path on the canvas (source green, last node blue)
func drawPath(c Canvas, t *core.Topology, path []int) {
	if len(path) == 0 {
		return
	}
	for i := 1; i < len(path); i++ {
		from, to := t.Node(path[i-1]), t.Node(path[i])
		c.Line(float64(from.X()), float64(from.Y()), float64(to.X()), float64(to.Y()), 0.1, ClrBlue)
	}
	src, last := t.Node(path[0]), t.Node(path[len(path)-1])
	c.Circle(float64(src.X()), float64(src.Y()), 0.3, 0, nil, ClrGreen)
	c.Circle(float64(last.X()), float64(last.Y()), 0.3, 0.05, ClrBlue, nil)
}
