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
	"sort"

	"agra/core"
)

// Forwarding algorithms
const (
	GF         = "GF"          // greedy forwarding
	GPSR       = "GPSR"        // greedy with perimeter recovery
	GPGF       = "GPGF"        // greedy with pressure recovery
	ARGFGlobal = "ARGF_Global" // potential field, all obstacles known
	ARGFLocal  = "ARGF_Local"  // potential field, obstacles in detection zone
	ARPGF      = "ARPGF"       // local potential field with pressure recovery
	ARPSR      = "ARPSR"       // local potential field with perimeter recovery
)

// Params for forwarding
type Params struct {
	Degree   float64  // attenuation degree (0 = algorithm default)
	Q0       float64  // base charge (0 = 1)
	Listener Listener // event listener (optional)
}

// algorithm table entry
type algorithm struct {
	field  bool    // uses circumscribed obstacles
	degree float64 // default attenuation degree
	fwd    func(t *core.Topology, src, dst, ttl int, p Params) Outcome
}

// field forwarder entry
func fieldAlgo(name string, local bool, rec recovery, deg float64) *algorithm {
	ff := &fieldForwarder{algo: name, local: local, rec: rec}
	return &algorithm{
		field:  true,
		degree: deg,
		fwd:    ff.forward,
	}
}

// registered algorithms
var algorithms = map[string]*algorithm{
	GF: {
		fwd: func(t *core.Topology, src, dst, ttl int, p Params) Outcome {
			return forwardGreedy(GF, t, src, dst, ttl, false, p.Listener)
		},
	},
	GPSR: {
		fwd: func(t *core.Topology, src, dst, ttl int, p Params) Outcome {
			return forwardGreedy(GPSR, t, src, dst, ttl, true, p.Listener)
		},
	},
	GPGF: {
		fwd: func(t *core.Topology, src, dst, ttl int, p Params) Outcome {
			return forwardPressure(GPGF, t, src, dst, ttl, p.Listener)
		},
	},
	ARGFGlobal: fieldAlgo(ARGFGlobal, false, noRecovery, 2),
	ARGFLocal:  fieldAlgo(ARGFLocal, true, noRecovery, 2),
	ARPGF:      fieldAlgo(ARPGF, true, pressureRecovery, 1),
	ARPSR:      fieldAlgo(ARPSR, true, perimeterRecovery, 2),
}

// Algorithms returns the names of all forwarding algorithms (sorted)
func Algorithms() []string {
	list := make([]string, 0, len(algorithms))
	for name := range algorithms {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// UsesObstacles returns true if an algorithm routes around circumscribed
// obstacles.
func UsesObstacles(name string) bool {
	a, ok := algorithms[name]
	return ok && a.field
}

// DefaultDegree of the attenuation for an algorithm (0 if not applicable)
func DefaultDegree(name string) float64 {
	if a, ok := algorithms[name]; ok {
		return a.degree
	}
	return 0
}

// Forward a packet from 'src' to 'dst' with the named algorithm. The path
// never has more than 'ttl' hops. Routing failures are reported in the
// outcome; an error is returned only for malformed requests.
func Forward(name string, t *core.Topology, src, dst, ttl int, p Params) (Outcome, error) {
	a, ok := algorithms[name]
	if !ok {
		return Outcome{}, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	if ttl < 0 {
		return Outcome{}, fmt.Errorf("ttl %d: %w", ttl, ErrInvalidRequest)
	}
	if p.Degree < 0 || p.Q0 < 0 {
		return Outcome{}, fmt.Errorf("degree %f, charge %f: %w", p.Degree, p.Q0, ErrInvalidRequest)
	}
	if p.Degree == 0 {
		p.Degree = a.degree
	}
	if p.Q0 == 0 {
		p.Q0 = 1
	}
	if err := t.Validate(a.field); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", name, err)
	}
	if err := t.CheckNode(src); err != nil {
		return Outcome{}, fmt.Errorf("source: %w", err)
	}
	if err := t.CheckNode(dst); err != nil {
		return Outcome{}, fmt.Errorf("destination: %w", err)
	}
	if src == dst {
		return Outcome{Status: Delivered, Path: []int{src}}, nil
	}
	return a.fwd(t, src, dst, ttl, p), nil
}
