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
	"fmt"

	"agra/core"
)

// ShortestPath returns a path with the minimum number of hops from 'src'
// to 'dst' over the neighbor graph. The path is empty if 'dst' is not
// reachable.
func ShortestPath(t *core.Topology, src, dst int) ([]int, error) {
	if err := t.Validate(false); err != nil {
		return nil, err
	}
	if err := t.CheckNode(src); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if err := t.CheckNode(dst); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	if src == dst {
		return []int{src}, nil
	}
	// search state is local to this call
	pred := make([]int, t.NumNodes())
	for i := range pred {
		pred[i] = -1
	}
	pred[src] = src
	queue := []int{src}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, nb := range t.Node(n).Neighbors() {
			if pred[nb] >= 0 {
				continue
			}
			pred[nb] = n
			if nb == dst {
				return tracePath(pred, src, dst), nil
			}
			queue = append(queue, nb)
		}
	}
	return nil, nil
}

// tracePath follows the predecessors back to the source
func tracePath(pred []int, src, dst int) []int {
	var rev []int
	for n := dst; n != src; n = pred[n] {
		rev = append(rev, n)
	}
	rev = append(rev, src)
	path := make([]int, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
