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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumscribeClosedBorder(t *testing.T) {
	topo := newGrid(t, 10, 1.5)
	require.NoError(t, topo.GenerateObstacle(5, 5, 2))
	topo.RecomputeNeighbors()
	circ, err := topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)
	require.Len(t, circ, 1)

	h := circ[0]
	assert.Equal(t, 0, h.ID)
	assert.InDelta(t, 5, h.Center.X, 1e-9)
	assert.InDelta(t, 5, h.Center.Y, 1e-9)
	assert.InDelta(t, 3, h.R, 1e-9)
	require.Len(t, h.Border, 12)
	for _, id := range h.Border {
		n := topo.Node(id)
		assert.True(t, n.Enabled())
		assert.True(t, n.Border())
	}
	assert.True(t, topo.NodeAt(5, 2).Border())
	assert.False(t, topo.NodeAt(3, 3).Border())
}

func TestCircumscribeOpenBorder(t *testing.T) {
	topo := newGrid(t, 10, 1.5)
	// cluster touches the field boundary
	require.NoError(t, topo.GenerateObstacle(1, 5, 2))
	topo.RecomputeNeighbors()
	circ, err := topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)
	assert.Empty(t, circ)

	border := 0
	for _, n := range topo.Nodes() {
		if n.Border() {
			border++
		}
	}
	assert.Equal(t, 7, border)
}

func TestCircumscribeClusters(t *testing.T) {
	topo := newGrid(t, 20, 1.5)
	// two overlapping discs form one cluster, a third one touches the boundary
	require.NoError(t, topo.GenerateObstacle(8, 8, 2))
	require.NoError(t, topo.GenerateObstacle(10, 9, 2))
	require.NoError(t, topo.GenerateObstacle(20, 15, 3))
	topo.RecomputeNeighbors()
	circ, err := topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)
	require.Len(t, circ, 1)
	h := circ[0]
	for _, o := range topo.Obstacles()[:2] {
		assert.True(t, h.Center.Distance(o.Center)+o.R <= h.R+1e-9, "%s not covered by %s", o, h)
	}
}

func TestCircumscribeIdempotent(t *testing.T) {
	topo, err := NewTopology(50, WithSeed(42), WithRadioRange(1.5))
	require.NoError(t, err)
	_, err = topo.GenerateObstacles(6, 2, 6)
	require.NoError(t, err)
	topo.RecomputeNeighbors()

	first, err := topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)
	second, err := topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, second, topo.CircumscribedObstacles())
}

func TestDetectionZone(t *testing.T) {
	topo := newGrid(t, 10, 1.5)
	require.NoError(t, topo.GenerateObstacle(5, 5, 2))
	topo.RecomputeNeighbors()
	_, err := topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)

	// zone radius for degree 2: 1.5*3 + 1.5 = 6
	assert.Len(t, topo.KnownObstacles(topo.NodeAt(5, 10).ID(), 2), 1)
	assert.Len(t, topo.KnownObstacles(topo.NodeAt(10, 10).ID(), 2), 0)
	// larger zone for degree 1: 2*3 + 1.5 = 7.5
	assert.Len(t, topo.KnownObstacles(topo.NodeAt(10, 10).ID(), 1), 1)
	assert.Nil(t, topo.KnownObstacles(-1, 2))
}
