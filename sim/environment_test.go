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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridTopology(t *testing.T) {
	env := &EnvironCfg{
		Class:     "grid",
		Size:      10,
		RangeMin:  1.5,
		RangeMax:  1.5,
		Obstacles: []*ObstacleDef{{X: 5, Y: 5, R: 2.5}},
		Seed:      1,
	}
	topo, err := BuildTopology(env)
	require.NoError(t, err)
	assert.Equal(t, 100, topo.NumNodes())
	assert.Len(t, topo.Obstacles(), 1)
	assert.NoError(t, topo.Validate(true))

	circ := topo.CircumscribedObstacles()
	require.Len(t, circ, 1)
	assert.InDelta(t, 5, circ[0].Center.X, 1e-9)
	assert.InDelta(t, 5, circ[0].Center.Y, 1e-9)

	// same seed, same topology
	again, err := BuildTopology(env)
	require.NoError(t, err)
	for i, n := range topo.Nodes() {
		assert.Equal(t, n.Neighbors(), again.Node(i).Neighbors())
	}
}

func TestBuildRandomTopology(t *testing.T) {
	env := &EnvironCfg{
		Class:        "rand",
		Size:         30,
		NumNodes:     200,
		RangeMin:     3,
		RangeMax:     4,
		NumObstacles: 2,
		MinR:         2,
		MaxR:         4,
		Seed:         5,
	}
	topo, err := BuildTopology(env)
	require.NoError(t, err)
	assert.Equal(t, 200, topo.NumNodes())
	assert.Len(t, topo.Obstacles(), 2)
	assert.NoError(t, topo.Validate(true))
	for _, n := range topo.Nodes() {
		assert.GreaterOrEqual(t, n.RadioRange(), 3.)
		assert.Less(t, n.RadioRange(), 4.)
	}
}

func TestBuildEnvironment(t *testing.T) {
	e, err := BuildEnvironment(&EnvironCfg{Size: 10})
	require.NoError(t, err)
	assert.IsType(t, &GridModel{}, e)

	_, err = BuildEnvironment(&EnvironCfg{Class: "hexagon"})
	assert.Error(t, err)

	_, err = BuildTopology(&EnvironCfg{Size: 0})
	assert.Error(t, err)

	_, err = BuildTopology(&EnvironCfg{Size: 10, NumObstacles: 1, MinR: 0, MaxR: 1})
	assert.Error(t, err)
}
