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

import "errors"

// Errors raised by topology construction and validation
var (
	ErrInvalidGrid      = errors.New("core: grid size must be positive")
	ErrInvalidNodeCount = errors.New("core: node count must be positive")
	ErrInvalidRadius    = errors.New("core: invalid obstacle radius")
	ErrInvalidRange     = errors.New("core: invalid radio range")
	ErrNodeRange        = errors.New("core: node id out of range")
	ErrNodeDisabled     = errors.New("core: node is disabled")
	ErrNeighborsStale   = errors.New("core: neighbor graph not recomputed after topology change")
	ErrObstaclesStale   = errors.New("core: circumscribed obstacles not recomputed after topology change")
)
