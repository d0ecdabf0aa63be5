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
	"github.com/bfix/gospel/logger"
)

//----------------------------------------------------------------------
// Neighbor graph and planarization
//----------------------------------------------------------------------

// RecomputeNeighbors rebuilds the neighbor lists of all enabled nodes:
// static neighbors are all enabled nodes within radio range; the dynamic
// neighbors are sampled per directed link with the link probability.
// The planar subgraph is rebuilt afterwards.
func (t *Topology) RecomputeNeighbors() {
	for _, n := range t.nodes {
		n.clearNeighbors()
		if !n.enabled {
			continue
		}
		for _, m := range t.nodes {
			if m.id == n.id || !m.enabled || !n.CanReach(m.Pos()) {
				continue
			}
			n.static = append(n.static, m.id)
			if t.pr >= 1 || t.rnd.Float64() <= t.pr {
				n.nbs = append(n.nbs, m.id)
			}
		}
		n.banned = make([]bool, len(n.nbs))
	}
	t.nbsStale = false
	t.Planarize()
	logger.Printf(logger.DBG, "[topo] neighbors recomputed: avg. degree %.2f", t.AvgDegree())
}

// Planarize marks links not in the Relative Neighborhood Graph as
// prohibited: the link (u,v) is removed if a third node w in range of u
// is closer to both u and v than they are to each other. Witnesses are
// taken from the static neighbors, so the planar subgraph stays free of
// crossings when links are dropped by the link probability.
func (t *Topology) Planarize() {
	count := 0
	for _, u := range t.nodes {
		for i := range u.banned {
			u.banned[i] = false
		}
		pu := u.Pos()
		for i, v := range u.nbs {
			pv := t.nodes[v].Pos()
			duv := pu.Distance2(pv)
			for _, w := range u.static {
				if w == v {
					continue
				}
				pw := t.nodes[w].Pos()
				if duv > max(pu.Distance2(pw), pv.Distance2(pw)) {
					u.banned[i] = true
					count++
					break
				}
			}
		}
	}
	logger.Printf(logger.DBG, "[topo] planarized: %d links prohibited", count)
}
