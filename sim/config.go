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
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Random generator (deterministic) for reproducible tests
var Random = rand.New(rand.NewSource(19031962)) //nolint:gosec // deterministic testing

// ObstacleDef for an explicit obstacle in the environment
type ObstacleDef struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	R float64 `json:"r" yaml:"r"`
}

// EnvironCfg holds configuration data for the environment
type EnvironCfg struct {
	Class        string         `json:"class" yaml:"class"`               // "grid" or "rand"
	Size         int            `json:"size" yaml:"size"`                 // side length of the field
	NumNodes     int            `json:"numNodes" yaml:"numNodes"`         // nodes for random placement
	RangeMin     float64        `json:"rangeMin" yaml:"rangeMin"`         // min. radio range (0 = default)
	RangeMax     float64        `json:"rangeMax" yaml:"rangeMax"`         // max. radio range
	NumObstacles int            `json:"numObstacles" yaml:"numObstacles"` // random obstacles
	MinR         float64        `json:"minR" yaml:"minR"`                 // min. radius of random obstacles
	MaxR         float64        `json:"maxR" yaml:"maxR"`                 // max. radius of random obstacles
	Obstacles    []*ObstacleDef `json:"obstacles" yaml:"obstacles"`       // explicit obstacles
	Seed         int64          `json:"seed" yaml:"seed"`                 // seed for the topology (0 = use sim.Random)
}

// RoutingCfg holds configuration data for route computation
type RoutingCfg struct {
	Algorithms []string           `json:"algorithms" yaml:"algorithms"` // algorithms to run (empty = all)
	TTL        int                `json:"ttl" yaml:"ttl"`               // hop limit
	Pairs      int                `json:"pairs" yaml:"pairs"`           // number of random src/dst pairs
	Workers    int                `json:"workers" yaml:"workers"`       // concurrent route computations
	Degree     map[string]float64 `json:"degree" yaml:"degree"`         // attenuation degree per algorithm
}

// RenderCfg options
type RenderCfg struct {
	Mode   string `json:"mode" yaml:"mode"`     // "svg" or "none"
	File   string `json:"file" yaml:"file"`     // output file
	Algo   string `json:"algo" yaml:"algo"`     // draw paths of this algorithm
	Planar bool   `json:"planar" yaml:"planar"` // draw planar links
}

// Config for test configuration data
type Config struct {
	Core    *core.Config `json:"core" yaml:"core"`
	Env     *EnvironCfg  `json:"environment" yaml:"environment"`
	Routing *RoutingCfg  `json:"routing" yaml:"routing"`
	Render  *RenderCfg   `json:"render" yaml:"render"`
}

// Cfg is the global configuration
var Cfg = &Config{
	Core: &core.Config{
		Pr:          0.95,
		RangeFactor: 0.1,
		BorderR:     1,
		Retries:     100,
	},
	Env: &EnvironCfg{
		Class:        "grid",
		Size:         100,
		RangeMin:     4,
		RangeMax:     5,
		NumObstacles: 10,
		MinR:         5,
		MaxR:         15,
	},
	Routing: &RoutingCfg{
		TTL:     1000,
		Pairs:   100,
		Workers: 8,
	},
	Render: &RenderCfg{
		Mode: "none",
	},
}

//----------------------------------------------------------------------

// ReadConfig to deserialize a configuration from a JSON or YAML file
// (selected by file extension).
func ReadConfig(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, Cfg)
	}
	return json.Unmarshal(data, &Cfg)
}
