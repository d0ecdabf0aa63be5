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

import "agra/core"

// Greedy forwarding (GF) with optional perimeter recovery (GPSR).
func forwardGreedy(algo string, t *core.Topology, src, dst, ttl int, withPerimeter bool, lst Listener) Outcome {
	r := newRoute(algo, t, src, dst, ttl, lst)
	var peri *perimeter
	for r.running() {
		n := r.cur()
		if peri == nil {
			// greedy mode
			if next := r.greedyNext(n); next >= 0 {
				r.hop(next)
				continue
			}
			if !withPerimeter {
				return r.stuck(LocalMinimumNoRecovery)
			}
			peri = newPerimeter(r, n)
			r.diag.RecoveryEntries++
			r.emit(EvRecoveryEnter, n.ID(), dst, 0)
		}
		// perimeter mode
		next, reason := peri.next(r, n)
		if reason != NoReason {
			return r.stuck(reason)
		}
		r.hop(next)
		r.diag.RecoveryHops++
		if r.dist(next) < peri.lpDist {
			r.emit(EvRecoveryLeave, next, dst, 0)
			peri = nil
		}
	}
	return r.done()
}
