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

	"gonum.org/v1/gonum/spatial/r2"
)

//----------------------------------------------------------------------
// Potential field of a destination and induced obstacle charges
//----------------------------------------------------------------------

// Charge induced on an obstacle for a destination. The charge makes the
// field strength vanish on the obstacle border opposite the destination.
func Charge(o *core.CircumscribedObstacle, dst core.Position, deg, q0 float64) float64 {
	b := o.Center.Distance(dst)
	return q0 * math.Pow(o.R, deg+1) / (deg * (b + o.R) * (b + o.R))
}

// charge located at an obstacle center
type charge struct {
	pos core.Position
	q   float64
}

// field is the potential field for one forwarding decision. It is never
// shared between routes.
type field struct {
	dst     core.Position
	deg, q0 float64
	charges []charge
}

// newField induces charges on the known obstacles
func newField(dst core.Position, obs []*core.CircumscribedObstacle, deg, q0 float64) *field {
	f := &field{
		dst:     dst,
		deg:     deg,
		q0:      q0,
		charges: make([]charge, len(obs)),
	}
	for i, o := range obs {
		f.charges[i] = charge{pos: o.Center, q: Charge(o, dst, deg, q0)}
	}
	return f
}

// attraction potential of the destination
func (f *field) attraction(p core.Position) float64 {
	return -f.q0 / p.Distance(f.dst)
}

// potential including the repulsion of all charges
func (f *field) potential(p core.Position) float64 {
	v := f.attraction(p)
	for _, c := range f.charges {
		v += c.q / math.Pow(p.Distance(c.pos), f.deg)
	}
	return v
}

// tension is the field strength (negative gradient of the potential)
func (f *field) tension(p core.Position) r2.Vec {
	d := p.Sub(f.dst)
	grad := r2.Scale(f.q0/math.Pow(r2.Norm(d), 3), d)
	for _, c := range f.charges {
		dc := p.Sub(c.pos)
		k := f.deg * c.q / math.Pow(r2.Norm(dc), f.deg+2)
		grad = r2.Sub(grad, r2.Scale(k, dc))
	}
	return r2.Scale(-1, grad)
}

// Potential at a position for a destination and a set of known obstacles
func Potential(p, dst core.Position, obs []*core.CircumscribedObstacle, deg, q0 float64) float64 {
	return newField(dst, obs, deg, q0).potential(p)
}

// Tension returns the field strength at a position for a destination and
// a set of known obstacles.
func Tension(p, dst core.Position, obs []*core.CircumscribedObstacle, deg, q0 float64) r2.Vec {
	return newField(dst, obs, deg, q0).tension(p)
}
