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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := NewCollector(reg)
	require.NoError(t, err)

	col.Observe(GF, &Outcome{Status: Delivered, Path: []int{1, 2, 3}})
	col.Observe(GF, &Outcome{Status: Delivered, Path: []int{1, 2}})
	col.Observe(GPGF, &Outcome{
		Status: Stuck,
		Reason: IsolatedNode,
		Path:   []int{1},
		Diag:   Diagnostics{RecoveryEntries: 2, HeaderSize: 1},
	})
	col.Observe(GF, nil)

	assert.Equal(t, 2., testutil.ToFloat64(col.Routes.WithLabelValues(GF, "Delivered", "-")))
	assert.Equal(t, 1., testutil.ToFloat64(col.Routes.WithLabelValues(GPGF, "Stuck", "IsolatedNode")))
	assert.Equal(t, 2., testutil.ToFloat64(col.Recoveries.WithLabelValues(GPGF)))
	assert.Equal(t, 2, testutil.CollectAndCount(col.Hops))
	assert.Equal(t, 1, testutil.CollectAndCount(col.HeaderSize))

	// registering twice returns the existing metrics
	again, err := NewCollector(reg)
	require.NoError(t, err)
	assert.Same(t, col.Routes, again.Routes)
	assert.Same(t, col.Hops, again.Hops)

	rr := httptest.NewRecorder()
	col.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `agra_routes_total{algorithm="GF",reason="-",status="Delivered"} 2`)
	assert.Contains(t, rr.Body.String(), "agra_route_header_size")

	var none *Collector
	assert.NotPanics(t, func() { none.Observe(GF, &Outcome{}) })
}

func TestCollectorTypeClash(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "agra_routes_total",
		Help: "Total number of computed routes, labeled by algorithm, status and stuck reason.",
	}, []string{"algorithm", "status", "reason"}))

	col, err := NewCollector(reg)
	require.Error(t, err)
	assert.Nil(t, col)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
	assert.Contains(t, err.Error(), "route metric agra_routes_total")
}
