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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	topo, err := core.NewTopology(10, core.WithSeed(1), core.WithRadioRange(1.5), core.WithConnectivity(1))
	require.NoError(t, err)
	require.NoError(t, topo.GenerateObstacle(5, 5, 2.5))
	topo.RecomputeNeighbors()
	_, err = topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "topo.svg")
	c := GetCanvas(&RenderCfg{Mode: "svg", File: fn}, 10)
	require.NotNil(t, c)
	path := []int{topo.NodeAt(5, 1).ID(), topo.NodeAt(4, 2).ID(), topo.NodeAt(3, 3).ID()}
	require.NoError(t, Render(c, topo, [][]int{path, nil}, true))

	out := string(c.(*SVGCanvas).Bytes())
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "H0")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#00a000")

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
	c.Close()

	assert.Nil(t, GetCanvas(&RenderCfg{Mode: "none"}, 10))
}
