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
	"sort"

	"github.com/bfix/gospel/logger"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//----------------------------------------------------------------------
// Obstacle circumscription
//----------------------------------------------------------------------

// BFS colors
const (
	white = iota
	gray
	black
)

// RecomputeCircumscribedObstacles derives the obstacles known to routing
// from the clusters of switched-off nodes. Each cluster whose border nodes
// form a closed loop yields a circle around the border; clusters touching
// the field boundary are skipped. Requires up-to-date neighbor lists.
func (t *Topology) RecomputeCircumscribedObstacles() ([]*CircumscribedObstacle, error) {
	if err := t.Validate(false); err != nil {
		return nil, err
	}
	for _, n := range t.nodes {
		n.border = false
	}
	t.circ = make([]*CircumscribedObstacle, 0)
	for _, comp := range t.offComponents() {
		border := t.borderNodes(comp)
		if len(border) == 0 {
			continue
		}
		if !t.hasLoop(border) {
			continue
		}
		t.circ = append(t.circ, t.circumscribe(len(t.circ), border))
	}
	t.circStale = false
	logger.Printf(logger.DBG, "[topo] %d circumscribed obstacles", len(t.circ))
	return t.circ, nil
}

// offComponents returns the connected clusters of switched-off nodes (two
// nodes are connected if they are at most one unit apart). Clusters are
// sorted by their smallest node id; each cluster is in ascending order.
func (t *Topology) offComponents() [][]int {
	g := simple.NewUndirectedGraph()
	for _, id := range t.disabled {
		g.AddNode(simple.Node(id))
	}
	for i, a := range t.disabled {
		pa := t.nodes[a].Pos()
		for _, b := range t.disabled[i+1:] {
			if pa.Distance(t.nodes[b].Pos()) <= 1 {
				g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
			}
		}
	}
	list := make([][]int, 0)
	for _, cc := range topo.ConnectedComponents(g) {
		comp := make([]int, len(cc))
		for i, n := range cc {
			comp[i] = int(n.ID())
		}
		sort.Ints(comp)
		list = append(list, comp)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i][0] < list[j][0]
	})
	return list
}

// borderNodes returns the enabled nodes close to a cluster (ascending).
// The nodes are flagged as border nodes.
func (t *Topology) borderNodes(comp []int) []int {
	list := make([]int, 0)
	for _, n := range t.nodes {
		if !n.enabled {
			continue
		}
		pos := n.Pos()
		for _, id := range comp {
			if pos.Distance(t.nodes[id].Pos()) <= cfg.BorderR {
				n.border = true
				list = append(list, n.id)
				break
			}
		}
	}
	return list
}

// hasLoop runs a breadth-first search over the border nodes (linked by
// static neighborship) and reports if the border is closed. A closed
// border shows up as a cross edge between two search branches whose
// predecessors are not adjacent.
func (t *Topology) hasLoop(border []int) bool {
	// search state is local to this call
	num := len(t.nodes)
	color := make([]int, num)
	pred := make([]int, num)
	member := make([]bool, num)
	for _, id := range border {
		member[id] = true
		pred[id] = -1
	}
	var loops []int
	addLoop := func(nb, n int) {
		for _, l := range loops {
			ln := t.nodes[l]
			if l == nb || ln.HasStaticNeighbor(nb) || ln.HasStaticNeighbor(n) {
				return
			}
		}
		loops = append(loops, nb)
	}
	src := border[0]
	color[src] = gray
	queue := []int{src}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		color[n] = black
		for _, nb := range t.nodes[n].static {
			if !member[nb] {
				continue
			}
			switch color[nb] {
			case white:
				color[nb] = gray
				pred[nb] = n
				queue = append(queue, nb)
			case gray:
				pn, pnb := pred[n], pred[nb]
				if pn < 0 || pnb < 0 || pn == pnb || pnb == n {
					continue
				}
				p := t.nodes[pnb]
				if !p.HasStaticNeighbor(pn) && !p.HasStaticNeighbor(n) {
					addLoop(nb, n)
				}
			}
		}
	}
	return len(loops) > 0
}

// circumscribe a list of border nodes by a circle around their centroid.
func (t *Topology) circumscribe(id int, border []int) *CircumscribedObstacle {
	var x, y float64
	for _, n := range border {
		x += float64(t.nodes[n].x)
		y += float64(t.nodes[n].y)
	}
	center := Pos(x/float64(len(border)), y/float64(len(border)))
	r := 0.
	for _, n := range border {
		r = max(r, center.Distance(t.nodes[n].Pos()))
	}
	return &CircumscribedObstacle{
		Obstacle: Obstacle{
			ID:     id,
			Center: center,
			R:      r,
		},
		Border: border,
	}
}
