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

import "fmt"

// Obstacle is a disc in the field. Nodes within the disc are switched off.
// Overlapping discs form obstacles of complex (concave) shape.
type Obstacle struct {
	ID     int      // identifier (index in topology)
	Center Position // center of the disc
	R      float64  // radius of the disc
}

// Contains returns true if a position is covered by the obstacle
func (o *Obstacle) Contains(p Position) bool {
	return o.Center.Distance(p) <= o.R
}

// String returns a human-readable representation.
func (o *Obstacle) String() string {
	return fmt.Sprintf("Obstacle{%d @ %s, r=%.2f}", o.ID, o.Center, o.R)
}

//----------------------------------------------------------------------

// CircumscribedObstacle is the circular over-approximation of a connected
// cluster of switched-off nodes. Routing only ever knows about these.
type CircumscribedObstacle struct {
	Obstacle
	Border []int // ids of the enabled nodes enclosing the cluster
}

// Detects returns true if the obstacle is within the detection zone of a
// node for a repulsive field with attenuation degree 'deg'.
func (o *CircumscribedObstacle) Detects(n *Node, deg float64) bool {
	return o.Center.Distance(n.Pos()) <= (1+1/deg)*o.R+n.r
}

// String returns a human-readable representation.
func (o *CircumscribedObstacle) String() string {
	return fmt.Sprintf("Circumscribed{%d @ %s, r=%.2f, border=%d}", o.ID, o.Center, o.R, len(o.Border))
}
