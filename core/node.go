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
	"fmt"
	"sort"
)

//----------------------------------------------------------------------

// Node represents a sensor in the field. All cross references are node
// identifiers (indices into the node list of the owning topology).
type Node struct {
	id      int     // identifier (index in topology)
	x, y    int     // grid position
	r       float64 // radio range
	enabled bool    // switched off if inside an obstacle
	border  bool    // enabled node adjacent to an obstacle cluster
	nbs     []int   // sampled (asymmetric) neighbors, ascending
	static  []int   // all enabled nodes within range, ascending
	banned  []bool  // prohibited flags (parallel to nbs)
}

// newNode creates an enabled node without neighbors
func newNode(id, x, y int, r float64) *Node {
	return &Node{
		id:      id,
		x:       x,
		y:       y,
		r:       r,
		enabled: true,
	}
}

// ID of the node
func (n *Node) ID() int {
	return n.id
}

// X coordinate (grid)
func (n *Node) X() int {
	return n.x
}

// Y coordinate (grid)
func (n *Node) Y() int {
	return n.y
}

// Pos returns the position of the node in the field
func (n *Node) Pos() Position {
	return Position{X: float64(n.x), Y: float64(n.y)}
}

// RadioRange of the node
func (n *Node) RadioRange() float64 {
	return n.r
}

// Enabled returns false if the node is inside an obstacle
func (n *Node) Enabled() bool {
	return n.enabled
}

// Border returns true if the node borders an obstacle cluster
func (n *Node) Border() bool {
	return n.border
}

// Neighbors returns the ids of the dynamic neighbors in ascending order.
// The returned slice is shared and must not be modified.
func (n *Node) Neighbors() []int {
	return n.nbs
}

// StaticNeighbors returns the ids of all enabled nodes within range in
// ascending order. The returned slice is shared and must not be modified.
func (n *Node) StaticNeighbors() []int {
	return n.static
}

// HasNeighbor returns true if 'id' is a dynamic neighbor
func (n *Node) HasNeighbor(id int) bool {
	_, ok := index(n.nbs, id)
	return ok
}

// HasStaticNeighbor returns true if 'id' is within range of the node
func (n *Node) HasStaticNeighbor(id int) bool {
	_, ok := index(n.static, id)
	return ok
}

// IsProhibited returns true if the link to neighbor 'id' is excluded from
// the planar subgraph.
func (n *Node) IsProhibited(id int) bool {
	i, ok := index(n.nbs, id)
	return ok && n.banned[i]
}

// PlanarNeighbors returns the dynamic neighbors not prohibited by
// planarization.
func (n *Node) PlanarNeighbors() []int {
	list := make([]int, 0, len(n.nbs))
	for i, id := range n.nbs {
		if !n.banned[i] {
			list = append(list, id)
		}
	}
	return list
}

// ProhibitedNeighbors returns the prohibited neighbor ids.
func (n *Node) ProhibitedNeighbors() []int {
	list := make([]int, 0)
	for i, id := range n.nbs {
		if n.banned[i] {
			list = append(list, id)
		}
	}
	return list
}

// CanReach returns true if the node can reach a position by broadcast
func (n *Node) CanReach(p Position) bool {
	return n.Pos().Distance(p) <= n.r
}

// String returns a human-readable representation.
func (n *Node) String() string {
	if n == nil {
		return "Node{nil}"
	}
	return fmt.Sprintf("Node{%d @ (%d,%d), on=%v}", n.id, n.x, n.y, n.enabled)
}

// reset neighbor lists
func (n *Node) clearNeighbors() {
	n.nbs = nil
	n.static = nil
	n.banned = nil
}

// index of 'id' in an ascending list
func index(list []int, id int) (int, bool) {
	i := sort.SearchInts(list, id)
	return i, i < len(list) && list[i] == id
}
