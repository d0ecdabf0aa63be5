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
	"context"
	"testing"

	"agra/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchTopology(t *testing.T) *core.Topology {
	topo, err := core.NewTopology(10, core.WithSeed(1), core.WithRadioRange(1.5), core.WithConnectivity(1))
	require.NoError(t, err)
	require.NoError(t, topo.GenerateObstacle(5, 5, 2.5))
	topo.RecomputeNeighbors()
	_, err = topo.RecomputeCircumscribedObstacles()
	require.NoError(t, err)
	return topo
}

func TestRouteAll(t *testing.T) {
	topo := batchTopology(t)
	src, dst := at(topo, 5, 1), at(topo, 5, 9)

	var reqs []Request
	for _, algo := range Algorithms() {
		reqs = append(reqs, Request{Algo: algo, Src: src, Dst: dst, TTL: 1000})
	}
	col, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	res, err := RouteAll(context.Background(), topo, reqs, 3, col)
	require.NoError(t, err)
	require.Len(t, res, len(reqs))
	for i, r := range res {
		assert.Equal(t, reqs[i].Algo, r.Algo)
		assert.Len(t, r.Shortest, 9)
		out, err := Forward(r.Algo, topo, src, dst, 1000, Params{})
		require.NoError(t, err)
		assert.Equal(t, out, r.Outcome, r.Algo)
	}
	assert.Equal(t, 1., testutil.ToFloat64(col.Routes.WithLabelValues(GF, "Stuck", "LocalMinimumNoRecovery")))
	assert.Equal(t, 1., testutil.ToFloat64(col.Routes.WithLabelValues(GPSR, "Delivered", "-")))
	assert.Equal(t, 1., testutil.ToFloat64(col.Recoveries.WithLabelValues(GPGF)))
}

func TestRouteAllErrors(t *testing.T) {
	topo := batchTopology(t)

	// nil collector, unlimited workers
	_, err := RouteAll(context.Background(), topo, []Request{{Algo: "XYZ", Src: 0, Dst: 1, TTL: 10}}, 0, nil)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RouteAll(ctx, topo, []Request{{Algo: GF, Src: 0, Dst: 1, TTL: 10}}, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)

	res, err := RouteAll(context.Background(), topo, nil, 2, nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}
