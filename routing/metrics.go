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
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for route outcomes.
type Collector struct {
	gatherer prometheus.Gatherer

	Routes     *prometheus.CounterVec   // routes by algorithm, status and reason
	Hops       *prometheus.HistogramVec // path length by algorithm
	Recoveries *prometheus.CounterVec   // recovery mode entries by algorithm
	HeaderSize *prometheus.HistogramVec // visit-count map size by algorithm
}

// NewCollector registers the route metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// A registerer that is also a gatherer backs the metrics handler.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	routes, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agra_routes_total",
		Help: "Total number of computed routes, labeled by algorithm, status and stuck reason.",
	}, []string{"algorithm", "status", "reason"}), "agra_routes_total")
	if err != nil {
		return nil, err
	}
	hops, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agra_route_hops",
		Help:    "Number of hops of computed routes.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"algorithm"}), "agra_route_hops")
	if err != nil {
		return nil, err
	}
	recoveries, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agra_recovery_entries_total",
		Help: "Total number of recovery mode entries, labeled by algorithm.",
	}, []string{"algorithm"}), "agra_recovery_entries_total")
	if err != nil {
		return nil, err
	}
	header, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agra_route_header_size",
		Help:    "Number of distinct nodes in the visit-count map of a route.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"algorithm"}), "agra_route_header_size")
	if err != nil {
		return nil, err
	}
	return &Collector{
		gatherer:   gatherer,
		Routes:     routes,
		Hops:       hops,
		Recoveries: recoveries,
		HeaderSize: header,
	}, nil
}

// Handler exposes the gathered metrics for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Observe records a route outcome. A nil collector records nothing.
func (c *Collector) Observe(algo string, out *Outcome) {
	if c == nil || out == nil {
		return
	}
	c.Routes.WithLabelValues(algo, out.Status.String(), out.Reason.String()).Inc()
	c.Hops.WithLabelValues(algo).Observe(float64(out.Hops()))
	if out.Diag.RecoveryEntries > 0 {
		c.Recoveries.WithLabelValues(algo).Add(float64(out.Diag.RecoveryEntries))
	}
	if out.Diag.HeaderSize > 0 {
		c.HeaderSize.WithLabelValues(algo).Observe(float64(out.Diag.HeaderSize))
	}
}

// register adds a route metric to the registry, reusing a compatible
// collector registered earlier under the same name.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
		err = fmt.Errorf("route metric %s registered with different type: %w", name, err)
	}
	var zero T
	return zero, err
}
