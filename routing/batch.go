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
	"fmt"

	"agra/core"

	"github.com/bfix/gospel/logger"
	"golang.org/x/sync/errgroup"
)

// Request for a route
type Request struct {
	Algo   string // forwarding algorithm
	Src    int    // source node
	Dst    int    // destination node
	TTL    int    // hop limit
	Params Params // algorithm parameters
}

// Result of a routing request
type Result struct {
	Request
	Outcome  Outcome // forwarding outcome
	Shortest []int   // BFS path (empty if unreachable)
}

// RouteAll computes the routes for all requests concurrently with at most
// 'workers' goroutines (unlimited if not positive). The topology must not
// be mutated until RouteAll returns. Outcomes are reported to the collector
// (if not nil). Results are in request order.
func RouteAll(ctx context.Context, t *core.Topology, reqs []Request, workers int, col *Collector) ([]Result, error) {
	if err := t.Validate(false); err != nil {
		return nil, err
	}
	results := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range reqs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := reqs[i]
			out, err := Forward(req.Algo, t, req.Src, req.Dst, req.TTL, req.Params)
			if err != nil {
				return fmt.Errorf("request %d (%s %d->%d): %w", i, req.Algo, req.Src, req.Dst, err)
			}
			bfs, err := ShortestPath(t, req.Src, req.Dst)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			col.Observe(req.Algo, &out)
			results[i] = Result{
				Request:  req,
				Outcome:  out,
				Shortest: bfs,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Printf(logger.DBG, "[routing] %d requests done", len(reqs))
	return results, nil
}
