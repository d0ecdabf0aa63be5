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

package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// tolerance for geometric predicates
const eps = 1e-9

// Position in the field
type Position r2.Vec

// Pos returns a position from coordinates
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Distance to another position (Euclidean)
func (p Position) Distance(q Position) float64 {
	return r2.Norm(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// Distance2 returns the squared distance to another position
func (p Position) Distance2(q Position) float64 {
	return r2.Norm2(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// Sub returns the vector from q to p
func (p Position) Sub(q Position) r2.Vec {
	return r2.Sub(r2.Vec(p), r2.Vec(q))
}

// String returns a human-readable position
func (p Position) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

//----------------------------------------------------------------------
// Line segments
//----------------------------------------------------------------------

// Line in 2D space
type Line struct {
	From Position
	To   Position
}

// Side returns -1 for left, 1 for right side and 0 for "on line"
func (l Line) Side(p Position) int {
	z := r2.Cross(l.To.Sub(l.From), p.Sub(l.From))
	if math.Abs(z) < 1e-8 {
		return 0
	}
	if z > 0 {
		return -1
	}
	return 1
}

// Intersect returns true if two segments cross each other. Touching
// endpoints and collinear overlaps do not count as crossing.
func (l Line) Intersect(t Line) bool {
	return l.Side(t.From)*l.Side(t.To) == -1 && t.Side(l.From)*t.Side(l.To) == -1
}

// Crossing returns the intersection point of two segments (endpoints
// included). Parallel segments have no crossing.
func (l Line) Crossing(t Line) (Position, bool) {
	r := l.To.Sub(l.From)
	s := t.To.Sub(t.From)
	d := r2.Cross(r, s)
	if math.Abs(d) < eps {
		return Position{}, false
	}
	qp := t.From.Sub(l.From)
	u := r2.Cross(qp, s) / d
	v := r2.Cross(qp, r) / d
	if u < -eps || u > 1+eps || v < -eps || v > 1+eps {
		return Position{}, false
	}
	return Position(r2.Add(r2.Vec(l.From), r2.Scale(u, r))), true
}

//----------------------------------------------------------------------
// Angles
//----------------------------------------------------------------------

// IsLeft returns true if 'p' is on the left side (counter-clockwise) of the
// ray from 's' towards 'ref' or on the ray itself.
func IsLeft(s, ref, p Position) bool {
	return r2.Cross(ref.Sub(s), p.Sub(s)) >= 0
}

// Angle between the rays s->a and s->b in [0,π]
func Angle(s, a, b Position) float64 {
	va, vb := a.Sub(s), b.Sub(s)
	na, nb := r2.Norm(va), r2.Norm(vb)
	if na < eps || nb < eps {
		return 0
	}
	c := r2.Dot(va, vb) / (na * nb)
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Sweep returns the counter-clockwise angle in [0,2π) swept from the ray
// s->ref to the ray s->p.
func Sweep(s, ref, p Position) float64 {
	a := Angle(s, ref, p)
	if !IsLeft(s, ref, p) {
		a = 2*math.Pi - a
	}
	return a
}
