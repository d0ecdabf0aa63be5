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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	wall := Line{
		From: Pos(30, 50),
		To:   Pos(70, 50),
	}
	num := 0
	blocked := 0
	for i := 0.; i <= 100.; i += 5. {
		num++
		line := Line{
			From: Pos(50, 0),
			To:   Pos(50-2*(i-50), 100),
		}
		if line.Intersect(wall) {
			blocked++
		}
	}
	// lines end at x in [-50,150]; they cross y=50 at x in [0,100]
	// and are blocked for crossings in (30,70).
	assert.Equal(t, 21, num)
	assert.Equal(t, 7, blocked)
}

func TestIntersectTouching(t *testing.T) {
	l1 := Line{From: Pos(0, 0), To: Pos(2, 2)}
	assert.False(t, l1.Intersect(Line{From: Pos(2, 2), To: Pos(4, 0)}), "shared endpoint")
	assert.False(t, l1.Intersect(Line{From: Pos(1, 1), To: Pos(3, 3)}), "collinear overlap")
	assert.True(t, l1.Intersect(Line{From: Pos(0, 2), To: Pos(2, 0)}))
}

func TestSide(t *testing.T) {
	l := Line{From: Pos(0, 0), To: Pos(1, 0)}
	assert.Equal(t, -1, l.Side(Pos(0.5, 1)))
	assert.Equal(t, 1, l.Side(Pos(0.5, -1)))
	assert.Equal(t, 0, l.Side(Pos(7, 0)))
}

func TestCrossing(t *testing.T) {
	// vertical and horizontal segments
	l := Line{From: Pos(5, 2), To: Pos(5, 9)}
	c, ok := l.Crossing(Line{From: Pos(4, 4), To: Pos(6, 4)})
	require.True(t, ok)
	assert.InDelta(t, 5, c.X, 1e-12)
	assert.InDelta(t, 4, c.Y, 1e-12)

	// crossing in an endpoint counts
	c, ok = l.Crossing(Line{From: Pos(5, 2), To: Pos(4, 2)})
	require.True(t, ok)
	assert.InDelta(t, 2, c.Y, 1e-12)

	// parallel and disjoint segments
	_, ok = l.Crossing(Line{From: Pos(6, 2), To: Pos(6, 9)})
	assert.False(t, ok)
	_, ok = l.Crossing(Line{From: Pos(4, 10), To: Pos(6, 10)})
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	s, ref := Pos(0, 0), Pos(1, 0)
	assert.InDelta(t, 0, Sweep(s, ref, Pos(2, 0)), 1e-12)
	assert.InDelta(t, math.Pi/2, Sweep(s, ref, Pos(0, 1)), 1e-12)
	assert.InDelta(t, math.Pi, Sweep(s, ref, Pos(-1, 0)), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, Sweep(s, ref, Pos(0, -1)), 1e-12)
	assert.InDelta(t, math.Pi/4, Angle(s, ref, Pos(1, -1)), 1e-12)
	assert.True(t, IsLeft(s, ref, Pos(1, 1)))
	assert.False(t, IsLeft(s, ref, Pos(1, -1)))
}

func TestDistance(t *testing.T) {
	p, q := Pos(1, 1), Pos(4, 5)
	assert.InDelta(t, 5, p.Distance(q), 1e-12)
	assert.InDelta(t, 25, p.Distance2(q), 1e-12)
	assert.Equal(t, "(1.00,1.00)", p.String())
}
