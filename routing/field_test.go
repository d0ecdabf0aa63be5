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

package routing

import (
	"math"
	"testing"

	"agra/core"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestChargeBorderCondition(t *testing.T) {
	h := &core.CircumscribedObstacle{
		Obstacle: core.Obstacle{Center: core.Pos(5, 5), R: 3},
	}
	dst := core.Pos(5, 12)
	obs := []*core.CircumscribedObstacle{h}
	// border point opposite the destination
	p := core.Pos(5, 2)
	for _, deg := range []float64{1, 2, 3} {
		q := Charge(h, dst, deg, 1)
		assert.InDelta(t, math.Pow(3, deg+1)/(deg*100), q, 1e-12)

		e := Tension(p, dst, obs, deg, 1)
		assert.InDelta(t, 0, r2.Norm(e), 1e-12, "degree %v", deg)

		// field points towards the destination outside the obstacle zone
		e = Tension(core.Pos(5, 1), dst, obs, deg, 1)
		assert.Greater(t, e.Y, 0.)
		// and away from the obstacle inside
		e = Tension(core.Pos(5, 2.5), dst, obs, deg, 1)
		assert.Less(t, e.Y, 0.)
	}
	// charge scales with base charge
	assert.InDelta(t, 2*Charge(h, dst, 2, 1), Charge(h, dst, 2, 2), 1e-12)
}

func TestPotential(t *testing.T) {
	dst := core.Pos(10, 10)
	assert.InDelta(t, -0.2, Potential(core.Pos(10, 5), dst, nil, 2, 1), 1e-12)
	assert.True(t, math.IsInf(Potential(dst, dst, nil, 2, 1), -1))

	h := &core.CircumscribedObstacle{
		Obstacle: core.Obstacle{Center: core.Pos(10, 7), R: 1},
	}
	obs := []*core.CircumscribedObstacle{h}
	q := Charge(h, dst, 2, 1)
	p := core.Pos(10, 5)
	assert.InDelta(t, -0.2+q/4, Potential(p, dst, obs, 2, 1), 1e-12)
	assert.Greater(t, Potential(p, dst, obs, 2, 1), Potential(p, dst, nil, 2, 1))
}
