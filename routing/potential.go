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
// Potential-field forwarding (ARGF, ARPGF, ARPSR)
//----------------------------------------------------------------------

// recovery strategy of a potential-field forwarder
type recovery int

const (
	noRecovery recovery = iota
	pressureRecovery
	perimeterRecovery
)

// forwarding mode
type mode int

const (
	modeAttraction mode = iota
	modeRepulsion
	modeRecovery
)

// fieldForwarder routes along the potential field of the destination and
// the induced charges of known obstacles.
type fieldForwarder struct {
	algo  string   // algorithm name
	local bool     // only obstacles in the detection zone are known
	rec   recovery // recovery strategy
}

// fieldState is the per-route state carried in the packet
type fieldState struct {
	mode  mode
	wmRep float64    // lowest potential seen in repulsion mode
	wmAtt float64    // lowest attraction potential seen
	peri  *perimeter // perimeter context
	press *pressure  // visit counts
}

func newFieldState(rec recovery) *fieldState {
	s := &fieldState{
		mode:  modeAttraction,
		wmRep: math.Inf(1),
		wmAtt: math.Inf(1),
	}
	if rec == pressureRecovery {
		s.press = newPressure()
	}
	return s
}

// leaveRecovery switches back to attraction: both watermarks start over
// and the perimeter context is dropped. Visit counts are kept.
func (s *fieldState) leaveRecovery() {
	s.mode = modeAttraction
	s.wmRep, s.wmAtt = math.Inf(1), math.Inf(1)
	s.peri = nil
}

// known returns the obstacles node 'n' knows about
func (ff *fieldForwarder) known(t *core.Topology, n *core.Node, deg float64) []*core.CircumscribedObstacle {
	if ff.local {
		return t.KnownObstacles(n.ID(), deg)
	}
	return t.CircumscribedObstacles()
}

// forward a packet from 'src' to 'dst'
func (ff *fieldForwarder) forward(t *core.Topology, src, dst, ttl int, p Params) Outcome {
	r := newRoute(ff.algo, t, src, dst, ttl, p.Listener)
	s := newFieldState(ff.rec)
	for r.running() {
		n := r.cur()
		pos := n.Pos()
		f := newField(r.dstPos, ff.known(t, n, p.Degree), p.Degree, p.Q0)
		pn, an := f.potential(pos), f.attraction(pos)

		repulsion := func() bool {
			if len(f.charges) == 0 || pn >= s.wmRep {
				return false
			}
			return s.mode != modeRecovery || ff.rec == pressureRecovery
		}
		attraction := func() bool {
			return ff.rec == noRecovery || an < s.wmAtt
		}
		if s.mode == modeRecovery && (repulsion() || attraction()) {
			s.leaveRecovery()
			r.emit(EvRecoveryLeave, n.ID(), dst, 0)
		}
		next := -1
		if repulsion() {
			s.wmRep = pn
			if next = ff.best(t, n, f.potential, pn); next >= 0 {
				s.mode = modeRepulsion
				r.diag.RepulsionHops++
			}
		}
		if next < 0 && attraction() {
			s.wmAtt = an
			if next = ff.best(t, n, f.attraction, an); next >= 0 {
				s.mode = modeAttraction
			}
		}
		if next < 0 {
			var reason Reason
			if next, reason = ff.recover(r, s, n, f, an); reason != NoReason {
				if s.press != nil {
					r.diag.HeaderSize = s.press.size()
				}
				return r.stuck(reason)
			}
			r.diag.RecoveryHops++
		}
		r.hop(next)
	}
	if s.press != nil {
		r.diag.HeaderSize = s.press.size()
	}
	return r.done()
}

// best returns the neighbor with the smallest value below 'bound'
func (ff *fieldForwarder) best(t *core.Topology, n *core.Node, value func(core.Position) float64, bound float64) int {
	next, min := -1, bound
	for _, id := range n.Neighbors() {
		if v := value(t.Node(id).Pos()); v < min {
			next, min = id, v
		}
	}
	return next
}

// recover from a local minimum at node 'n'
func (ff *fieldForwarder) recover(r *route, s *fieldState, n *core.Node, f *field, an float64) (int, Reason) {
	if ff.rec == noRecovery {
		return -1, LocalMinimumNoRecovery
	}
	if s.mode != modeRecovery {
		s.mode = modeRecovery
		s.wmAtt = an
		r.diag.RecoveryEntries++
		r.emit(EvRecoveryEnter, n.ID(), r.dst, 0)
		if ff.rec == pressureRecovery {
			s.press.visit(n.ID())
		} else {
			s.peri = newPerimeter(r, n)
		}
	}
	if ff.rec == perimeterRecovery {
		return s.peri.next(r, n)
	}
	next := s.press.next(n, func(id int) float64 {
		return f.potential(r.t.Node(id).Pos())
	})
	if next < 0 {
		return -1, IsolatedNode
	}
	return next, NoReason
}
