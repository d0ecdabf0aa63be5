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
// Perimeter mode (planar face traversal with the right-hand rule)
//----------------------------------------------------------------------

// perimeter holds the recovery context of a face traversal.
type perimeter struct {
	lp      int           // node where perimeter mode was entered
	lpDist  float64       // distance of 'lp' to destination
	lf      core.Position // closest crossing with the line lp->dst so far
	e0      [2]int        // first edge traversed on the current face
	started bool          // first edge taken
}

// newPerimeter enters perimeter mode at node 'n'
func newPerimeter(r *route, n *core.Node) *perimeter {
	return &perimeter{
		lp:     n.ID(),
		lpDist: r.dist(n.ID()),
		lf:     n.Pos(),
		e0:     [2]int{-1, -1},
	}
}

// next returns the next hop from node 'n' in perimeter mode.
func (p *perimeter) next(r *route, n *core.Node) (int, Reason) {
	if !p.started {
		p.started = true
		next := periInit(r.t, n, r.dstPos)
		if next < 0 {
			return -1, IsolatedNode
		}
		p.e0 = [2]int{n.ID(), next}
		return next, NoReason
	}
	next := rightHand(r.t, n, r.prev())
	if next < 0 {
		return -1, IsolatedNode
	}
	if n.ID() == p.e0[0] && next == p.e0[1] {
		return -1, RecoveryLoopDetected
	}
	return p.faceChange(r, n, next), NoReason
}

// faceChange switches to the next face as long as the edge (n,next)
// crosses the line lp->dst closer to the destination than any crossing
// before.
func (p *perimeter) faceChange(r *route, n *core.Node, next int) int {
	ref := core.Line{From: r.t.Node(p.lp).Pos(), To: r.dstPos}
	changed := false
	for {
		edge := core.Line{From: n.Pos(), To: r.t.Node(next).Pos()}
		c, ok := ref.Crossing(edge)
		if !ok || c.Distance(r.dstPos) >= p.lf.Distance(r.dstPos)-1e-9 {
			break
		}
		p.lf = c
		changed = true
		r.diag.FaceChanges++
		r.emit(EvFaceChange, n.ID(), next, r.diag.FaceChanges)
		nn := rightHand(r.t, n, next)
		if nn < 0 || nn == next {
			break
		}
		next = nn
	}
	if changed {
		p.e0 = [2]int{n.ID(), next}
	}
	return next
}

// periInit selects the first edge of a traversal: the planar neighbor with
// the smallest counter-clockwise angle from the bearing to 'ref'.
func periInit(t *core.Topology, n *core.Node, ref core.Position) int {
	pos := n.Pos()
	next, min := -1, math.Inf(1)
	for _, id := range n.PlanarNeighbors() {
		if a := core.Sweep(pos, ref, t.Node(id).Pos()); a < min {
			next, min = id, a
		}
	}
	return next
}

// rightHand selects the next edge counter-clockwise from the incoming edge
// (in,n). Without another planar neighbor the packet returns to 'in' if
// that is a neighbor of 'n'.
func rightHand(t *core.Topology, n *core.Node, in int) int {
	if in < 0 {
		return -1
	}
	pos, ref := n.Pos(), t.Node(in).Pos()
	next, min := -1, math.Inf(1)
	for _, id := range n.PlanarNeighbors() {
		if id == in {
			continue
		}
		if a := core.Sweep(pos, ref, t.Node(id).Pos()); a < min {
			next, min = id, a
		}
	}
	if next < 0 && n.HasNeighbor(in) {
		return in
	}
	return next
}
