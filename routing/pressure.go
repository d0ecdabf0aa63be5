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

	"agra/core"
)

//----------------------------------------------------------------------
// Pressure mode (visit-count based recovery)
//----------------------------------------------------------------------

// pressure keeps the visit counts of a route (carried in the packet)
type pressure struct {
	visits map[int]int // node id -> number of visits
}

// newPressure creates an empty visit-count map
func newPressure() *pressure {
	return &pressure{
		visits: make(map[int]int),
	}
}

// visit a node
func (p *pressure) visit(id int) {
	p.visits[id]++
}

// size of the visit-count map (header size)
func (p *pressure) size() int {
	return len(p.visits)
}

// next selects among the least visited neighbors of 'n' the one with
// the smallest score. The selected node is counted as visited; -1 is
// returned if 'n' has no neighbors.
func (p *pressure) next(n *core.Node, score func(int) float64) int {
	nbs := n.Neighbors()
	minVisits := math.MaxInt
	for _, id := range nbs {
		if v := p.visits[id]; v < minVisits {
			minVisits = v
		}
	}
	next, min := -1, math.Inf(1)
	for _, id := range nbs {
		if p.visits[id] != minVisits {
			continue
		}
		if s := score(id); next < 0 || s < min {
			next, min = id, s
		}
	}
	if next >= 0 {
		p.visit(next)
	}
	return next
}

// Greedy forwarding with pressure mode recovery (GPGF).
func forwardPressure(algo string, t *core.Topology, src, dst, ttl int, lst Listener) Outcome {
	r := newRoute(algo, t, src, dst, ttl, lst)
	p := newPressure()
	inPressure, entryDist := false, 0.
	for r.running() {
		n := r.cur()
		if !inPressure {
			if next := r.greedyNext(n); next >= 0 {
				r.hop(next)
				continue
			}
			inPressure, entryDist = true, r.dist(n.ID())
			p.visit(n.ID())
			r.diag.RecoveryEntries++
			r.emit(EvRecoveryEnter, n.ID(), dst, 0)
		}
		next := p.next(n, r.dist)
		if next < 0 {
			r.diag.HeaderSize = p.size()
			return r.stuck(IsolatedNode)
		}
		r.hop(next)
		r.diag.RecoveryHops++
		if r.dist(next) < entryDist {
			inPressure = false
			r.emit(EvRecoveryLeave, next, dst, 0)
		}
	}
	r.diag.HeaderSize = p.size()
	return r.done()
}
