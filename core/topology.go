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
	"math/rand"

	"github.com/bfix/gospel/logger"
)

//----------------------------------------------------------------------
// Topology of a trial: nodes and obstacles in a square field
//----------------------------------------------------------------------

// Topology owns all nodes and obstacles of a trial. Nodes and obstacles
// are addressed by their index. The topology is mutated while a trial is
// set up (placement, obstacles, neighbors, planarization, circumscription)
// and is read-only while routes are computed.
type Topology struct {
	size      int                      // side length of the field
	nodes     []*Node                  // all nodes (index == id)
	obstacles []*Obstacle              // raw obstacle discs
	disabled  []int                    // ids of switched-off nodes (ascending)
	circ      []*CircumscribedObstacle // approximated obstacle clusters
	r0        float64                  // initial radio range (0 = default)
	pr        float64                  // link probability
	rnd       *rand.Rand               // random generator for this trial
	nbsStale  bool                     // neighbor graph outdated
	circStale bool                     // circumscribed obstacles outdated
}

// Option for topology construction
type Option func(*Topology)

// WithSeed makes the topology use a deterministic random generator
func WithSeed(seed int64) Option {
	return func(t *Topology) {
		t.rnd = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic testing
	}
}

// WithRand sets the random generator to be used
func WithRand(rnd *rand.Rand) Option {
	return func(t *Topology) {
		t.rnd = rnd
	}
}

// WithRadioRange sets the initial radio range of all nodes
func WithRadioRange(r float64) Option {
	return func(t *Topology) {
		t.r0 = r
	}
}

// WithConnectivity sets the link probability for nodes in range
func WithConnectivity(pr float64) Option {
	return func(t *Topology) {
		t.pr = pr
	}
}

// newTopology creates an empty topology with options applied
func newTopology(size int, opts []Option) (*Topology, error) {
	if size <= 0 {
		return nil, ErrInvalidGrid
	}
	t := &Topology{
		size:      size,
		pr:        cfg.Pr,
		nbsStale:  true,
		circStale: false,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rnd == nil {
		t.rnd = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // simulation only
	}
	if t.r0 == 0 {
		t.r0 = cfg.RangeFactor * float64(size)
	}
	if t.r0 < 0 {
		return nil, ErrInvalidRange
	}
	if t.pr <= 0 || t.pr > 1 {
		return nil, fmt.Errorf("link probability %f: %w", t.pr, ErrInvalidRange)
	}
	return t, nil
}

// NewTopology creates a dense grid of size x size nodes at the integer
// positions (1,1) to (size,size).
func NewTopology(size int, opts ...Option) (*Topology, error) {
	t, err := newTopology(size, opts)
	if err != nil {
		return nil, err
	}
	t.nodes = make([]*Node, 0, size*size)
	for i := 1; i <= size; i++ {
		for j := 1; j <= size; j++ {
			t.nodes = append(t.nodes, newNode(len(t.nodes), i, j, t.r0))
		}
	}
	logger.Printf(logger.DBG, "[topo] grid %dx%d with %d nodes created", size, size, len(t.nodes))
	return t, nil
}

// NewRandomTopology places 'num' nodes uniformly at random on the integer
// positions of the field [0,size]x[0,size].
func NewRandomTopology(size, num int, opts ...Option) (*Topology, error) {
	if num <= 0 {
		return nil, ErrInvalidNodeCount
	}
	t, err := newTopology(size, opts)
	if err != nil {
		return nil, err
	}
	t.nodes = make([]*Node, num)
	for i := range t.nodes {
		t.nodes[i] = newNode(i, t.rnd.Intn(size+1), t.rnd.Intn(size+1), t.r0)
	}
	logger.Printf(logger.DBG, "[topo] %d random nodes placed in %dx%d field", num, size, size)
	return t, nil
}

//----------------------------------------------------------------------
// Read access
//----------------------------------------------------------------------

// Size of the field
func (t *Topology) Size() int {
	return t.size
}

// NumNodes returns the number of nodes (enabled or not)
func (t *Topology) NumNodes() int {
	return len(t.nodes)
}

// Nodes returns all nodes (index == id). The list must not be modified.
func (t *Topology) Nodes() []*Node {
	return t.nodes
}

// Node returns the node with given id (or nil if out of range)
func (t *Topology) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// NodeAt returns the first node at a grid position (or nil)
func (t *Topology) NodeAt(x, y int) *Node {
	for _, n := range t.nodes {
		if n.x == x && n.y == y {
			return n
		}
	}
	return nil
}

// CheckNode returns an error if 'id' is not an enabled node
func (t *Topology) CheckNode(id int) error {
	n := t.Node(id)
	if n == nil {
		return fmt.Errorf("node %d (of %d): %w", id, len(t.nodes), ErrNodeRange)
	}
	if !n.enabled {
		return fmt.Errorf("node %d: %w", id, ErrNodeDisabled)
	}
	return nil
}

// Obstacles returns the raw obstacle discs
func (t *Topology) Obstacles() []*Obstacle {
	return t.obstacles
}

// Disabled returns the ids of all switched-off nodes (ascending)
func (t *Topology) Disabled() []int {
	return t.disabled
}

// CircumscribedObstacles returns the obstacles known to routing. The list
// is only valid if Validate(true) succeeds.
func (t *Topology) CircumscribedObstacles() []*CircumscribedObstacle {
	return t.circ
}

// Validate checks that all derived state is up-to-date: the neighbor graph
// (and with 'known' set the circumscribed obstacles) must have been
// recomputed after the last mutation.
func (t *Topology) Validate(known bool) error {
	if t.nbsStale {
		return ErrNeighborsStale
	}
	if known && t.circStale {
		return ErrObstaclesStale
	}
	return nil
}

// Coverage is the ratio of enabled nodes
func (t *Topology) Coverage() float64 {
	if len(t.nodes) == 0 {
		return 0
	}
	return float64(len(t.nodes)-len(t.disabled)) / float64(len(t.nodes))
}

// AvgDegree is the average number of (dynamic) neighbors of enabled nodes
func (t *Topology) AvgDegree() float64 {
	num, total := 0, 0
	for _, n := range t.nodes {
		if n.enabled {
			num++
			total += len(n.nbs)
		}
	}
	if num == 0 {
		return 0
	}
	return float64(total) / float64(num)
}

// KnownObstacles returns the circumscribed obstacles within the detection
// zone of a node for attenuation degree 'deg'.
func (t *Topology) KnownObstacles(id int, deg float64) []*CircumscribedObstacle {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var list []*CircumscribedObstacle
	for _, h := range t.circ {
		if h.Detects(n, deg) {
			list = append(list, h)
		}
	}
	return list
}

//----------------------------------------------------------------------
// Mutations (trial set-up only)
//----------------------------------------------------------------------

// SetRadioRange of a single node
func (t *Topology) SetRadioRange(id int, r float64) error {
	n := t.Node(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNodeRange)
	}
	if r <= 0 {
		return ErrInvalidRange
	}
	n.r = r
	t.nbsStale = true
	t.circStale = t.circStale || len(t.disabled) > 0
	return nil
}

// RandomizeRadioRange draws the radio range of every node from [min,max)
func (t *Topology) RandomizeRadioRange(min, max float64) error {
	if min <= 0 || max < min {
		return ErrInvalidRange
	}
	for _, n := range t.nodes {
		n.r = min + t.rnd.Float64()*(max-min)
	}
	t.nbsStale = true
	t.circStale = t.circStale || len(t.disabled) > 0
	return nil
}

// GenerateObstacles places up to 'num' random discs with radius in
// [minR,maxR] that keep a distance of one unit from the field boundary.
// Placement is attempted a limited number of times; the number of actually
// placed obstacles is returned.
func (t *Topology) GenerateObstacles(num int, minR, maxR float64) (int, error) {
	if minR <= 0 || maxR < minR {
		return 0, fmt.Errorf("radius [%f,%f]: %w", minR, maxR, ErrInvalidRadius)
	}
	size := float64(t.size)
	placed := 0
	for k := 0; placed < num && k < cfg.Retries*num; k++ {
		x := t.rnd.Float64() * size
		y := t.rnd.Float64() * size
		r := minR + t.rnd.Float64()*(maxR-minR)
		if x-r > 1 && x+r < size && y-r > 1 && y+r < size {
			t.obstacles = append(t.obstacles, &Obstacle{
				ID:     len(t.obstacles),
				Center: Pos(x, y),
				R:      r,
			})
			placed++
		}
	}
	if placed < num {
		logger.Printf(logger.DBG, "[topo] only %d of %d obstacles placed", placed, num)
	}
	t.disableNodes()
	return placed, nil
}

// GenerateObstacle places a single disc at given position
func (t *Topology) GenerateObstacle(x, y, r float64) error {
	if r <= 0 {
		return fmt.Errorf("radius %f: %w", r, ErrInvalidRadius)
	}
	t.obstacles = append(t.obstacles, &Obstacle{
		ID:     len(t.obstacles),
		Center: Pos(x, y),
		R:      r,
	})
	t.disableNodes()
	return nil
}

// ClearObstacles removes all obstacles, switches all nodes on and rebuilds
// the neighbor graph.
func (t *Topology) ClearObstacles() {
	t.obstacles = nil
	t.disabled = nil
	t.circ = nil
	for _, n := range t.nodes {
		n.enabled = true
		n.border = false
	}
	t.circStale = false
	t.RecomputeNeighbors()
}

// switch off all nodes covered by an obstacle
func (t *Topology) disableNodes() {
	t.disabled = nil
	for _, n := range t.nodes {
		pos := n.Pos()
		for _, o := range t.obstacles {
			if o.Contains(pos) {
				n.enabled = false
				break
			}
		}
		if !n.enabled {
			t.disabled = append(t.disabled, n.id)
		}
	}
	t.nbsStale = true
	t.circStale = true
	logger.Printf(logger.DBG, "[topo] %d obstacles, %d nodes switched off", len(t.obstacles), len(t.disabled))
}
