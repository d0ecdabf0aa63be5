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

package sim

import (
	"agra/core"
	"fmt"

	"github.com/bfix/gospel/logger"
)

// Environment of a trial: placement of nodes and obstacles in the field
type Environment interface {
	// Placement of nodes in the field
	Placement(opts ...core.Option) (*core.Topology, error)

	// Obstacles placed in the field
	Obstacles(t *core.Topology) error
}

//----------------------------------------------------------------------
// Obstacles (shared by all models)
//----------------------------------------------------------------------

// ObstacleModel places explicit and random obstacles
type ObstacleModel struct {
	defs       []*ObstacleDef // explicit obstacles
	num        int            // number of random obstacles
	minR, maxR float64        // radius range of random obstacles
}

// Obstacles placed in the field (interface impl)
func (m *ObstacleModel) Obstacles(t *core.Topology) error {
	for _, def := range m.defs {
		if err := t.GenerateObstacle(def.X, def.Y, def.R); err != nil {
			return err
		}
	}
	if m.num > 0 {
		n, err := t.GenerateObstacles(m.num, m.minR, m.maxR)
		if err != nil {
			return err
		}
		if n < m.num {
			logger.Printf(logger.WARN, "[env] only %d of %d random obstacles placed", n, m.num)
		}
	}
	return nil
}

//----------------------------------------------------------------------
// Dense grid of nodes
//----------------------------------------------------------------------

// GridModel places a node on every integer position of the field
type GridModel struct {
	ObstacleModel
	size int
}

// Placement of nodes in the field (interface impl)
func (m *GridModel) Placement(opts ...core.Option) (*core.Topology, error) {
	return core.NewTopology(m.size, opts...)
}

//----------------------------------------------------------------------
// Simple model with random distribution
//----------------------------------------------------------------------

// RndModel places a number of nodes at random positions
type RndModel struct {
	ObstacleModel
	size, num int
}

// Placement of nodes in the field (interface impl)
func (m *RndModel) Placement(opts ...core.Option) (*core.Topology, error) {
	return core.NewRandomTopology(m.size, m.num, opts...)
}

//----------------------------------------------------------------------

// BuildEnvironment creates the "physical" environment that controls
// placement of nodes and obstacles.
func BuildEnvironment(env *EnvironCfg) (Environment, error) {
	obs := ObstacleModel{
		defs: env.Obstacles,
		num:  env.NumObstacles,
		minR: env.MinR,
		maxR: env.MaxR,
	}
	switch env.Class {
	case "", "grid":
		return &GridModel{ObstacleModel: obs, size: env.Size}, nil
	case "rand":
		return &RndModel{ObstacleModel: obs, size: env.Size, num: env.NumNodes}, nil
	}
	return nil, fmt.Errorf("no environment class '%s' defined", env.Class)
}

// BuildTopology runs the set-up steps of a trial: node placement, radio
// ranges, obstacles, neighbor graph and obstacle circumscription. The
// returned topology is ready for routing.
func BuildTopology(env *EnvironCfg) (*core.Topology, error) {
	e, err := BuildEnvironment(env)
	if err != nil {
		return nil, err
	}
	opt := core.WithRand(Random)
	if env.Seed != 0 {
		opt = core.WithSeed(env.Seed)
	}
	t, err := e.Placement(opt)
	if err != nil {
		return nil, err
	}
	if env.RangeMin > 0 {
		rMax := max(env.RangeMin, env.RangeMax)
		if err = t.RandomizeRadioRange(env.RangeMin, rMax); err != nil {
			return nil, err
		}
	}
	if err = e.Obstacles(t); err != nil {
		return nil, err
	}
	t.RecomputeNeighbors()
	circ, err := t.RecomputeCircumscribedObstacles()
	if err != nil {
		return nil, err
	}
	logger.Printf(logger.INFO, "[env] %d nodes (%.1f%% enabled), %d obstacles, %d circumscribed",
		t.NumNodes(), 100*t.Coverage(), len(t.Obstacles()), len(circ))
	return t, nil
}
