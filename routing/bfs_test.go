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
	"testing"

	"agra/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath(t *testing.T) {
	topo, err := core.NewTopology(10, core.WithRadioRange(1), core.WithConnectivity(1))
	require.NoError(t, err)
	topo.RecomputeNeighbors()

	src, dst := at(topo, 1, 1), at(topo, 4, 3)
	path, err := ShortestPath(topo, src, dst)
	require.NoError(t, err)
	require.Len(t, path, 6)
	assert.Equal(t, src, path[0])
	assert.Equal(t, dst, path[5])
	for i := 1; i < len(path); i++ {
		assert.True(t, topo.Node(path[i-1]).HasNeighbor(path[i]))
	}

	path, err = ShortestPath(topo, src, src)
	require.NoError(t, err)
	assert.Equal(t, []int{src}, path)

	_, err = ShortestPath(topo, src, -1)
	assert.ErrorIs(t, err, core.ErrNodeRange)
}

func TestShortestPathAroundObstacle(t *testing.T) {
	topo, err := core.NewTopology(10, core.WithRadioRange(1), core.WithConnectivity(1))
	require.NoError(t, err)
	require.NoError(t, topo.GenerateObstacle(5, 5, 2))
	topo.RecomputeNeighbors()

	// 4-connected grid: straight line blocked by the obstacle
	path, err := ShortestPath(topo, at(topo, 5, 1), at(topo, 5, 9))
	require.NoError(t, err)
	assert.Greater(t, len(path), 9)
	for _, id := range path {
		assert.True(t, topo.Node(id).Enabled())
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	topo, err := core.NewTopology(10, core.WithRadioRange(0.5))
	require.NoError(t, err)
	topo.RecomputeNeighbors()
	path, err := ShortestPath(topo, 0, 99)
	require.NoError(t, err)
	assert.Empty(t, path)
}
