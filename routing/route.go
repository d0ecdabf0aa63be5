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
	"agra/core"

	"github.com/bfix/gospel/logger"
)

// route is the per-request forwarding state shared by all forwarders.
// It only reads the topology; everything it writes is local.
type route struct {
	algo   string         // algorithm name
	t      *core.Topology // topology snapshot
	dst    int            // destination node
	dstPos core.Position  // destination position
	ttl    int            // hop limit
	path   []int          // nodes traversed so far
	diag   Diagnostics    // diagnostics
	lst    Listener       // event listener (optional)
}

// newRoute starts a route at 'src'
func newRoute(algo string, t *core.Topology, src, dst, ttl int, lst Listener) *route {
	path := make([]int, 1, ttl+1)
	path[0] = src
	return &route{
		algo:   algo,
		t:      t,
		dst:    dst,
		dstPos: t.Node(dst).Pos(),
		ttl:    ttl,
		path:   path,
		lst:    lst,
	}
}

// current node
func (r *route) cur() *core.Node {
	return r.t.Node(r.path[len(r.path)-1])
}

// previous node on the path (-1 at the source)
func (r *route) prev() int {
	if len(r.path) < 2 {
		return -1
	}
	return r.path[len(r.path)-2]
}

// running returns true while the destination is not reached and hops are
// left.
func (r *route) running() bool {
	return r.path[len(r.path)-1] != r.dst && len(r.path)-1 < r.ttl
}

// hop to next node
func (r *route) hop(next int) {
	r.path = append(r.path, next)
}

// distance of a node to the destination
func (r *route) dist(id int) float64 {
	return r.t.Node(id).Pos().Distance(r.dstPos)
}

// emit an event to the listener
func (r *route) emit(ev int, node, ref, val int) {
	if r.lst != nil {
		r.lst(&Event{
			Type: ev,
			Algo: r.algo,
			Node: node,
			Ref:  ref,
			Val:  val,
		})
	}
}

// stuck finishes the route without delivery
func (r *route) stuck(reason Reason) Outcome {
	n := r.path[len(r.path)-1]
	logger.Printf(logger.DBG, "[%s] stuck at %d (%s) after %d hops", r.algo, n, reason, len(r.path)-1)
	r.emit(EvStuck, n, r.dst, int(reason))
	return Outcome{
		Status: Stuck,
		Reason: reason,
		Path:   r.path,
		Diag:   r.diag,
	}
}

// done finishes a route that stopped running
func (r *route) done() Outcome {
	out := Outcome{
		Status: Delivered,
		Path:   r.path,
		Diag:   r.diag,
	}
	if r.path[len(r.path)-1] != r.dst {
		out.Status = TTLExceeded
	}
	return out
}

//----------------------------------------------------------------------
// Greedy forwarding
//----------------------------------------------------------------------

// greedyNext returns the neighbor strictly closest to the destination if
// it is closer than the node itself (or -1 in a local minimum).
func (r *route) greedyNext(n *core.Node) int {
	next, min := -1, n.Pos().Distance(r.dstPos)
	for _, id := range n.Neighbors() {
		if d := r.dist(id); d < min {
			next, min = id, d
		}
	}
	return next
}
