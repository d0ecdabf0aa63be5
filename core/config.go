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

// Config for topology construction and obstacle handling
type Config struct {
	Pr          float64 `json:"pr" yaml:"pr"`                   // link probability for nodes in mutual range
	RangeFactor float64 `json:"rangeFactor" yaml:"rangeFactor"` // default radio range as fraction of grid size
	BorderR     float64 `json:"borderR" yaml:"borderR"`         // max. distance of border nodes to an obstacle cluster
	Retries     int     `json:"retries" yaml:"retries"`         // attempts per requested obstacle
}

// package-local configuration data (with default values)
var cfg = &Config{
	Pr:          0.95,
	RangeFactor: 0.1,
	BorderR:     1,
	Retries:     100,
}

// SetConfiguration before use
func SetConfiguration(c *Config) {
	if c == nil {
		return
	}
	if c.Pr > 0 && c.Pr <= 1 {
		cfg.Pr = c.Pr
	}
	if c.RangeFactor > 0 {
		cfg.RangeFactor = c.RangeFactor
	}
	if c.BorderR > 0 {
		cfg.BorderR = c.BorderR
	}
	if c.Retries > 0 {
		cfg.Retries = c.Retries
	}
}

// Configuration returns a copy of the active configuration.
func Configuration() Config {
	return *cfg
}
