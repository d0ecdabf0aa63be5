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

// Event types
const (
	EvRecoveryEnter = 1 // recovery mode entered at node
	EvRecoveryLeave = 2 // back from recovery mode at node
	EvFaceChange    = 3 // perimeter traversal changed the face
	EvStuck         = 4 // forwarding gave up at node
)

// Event from a forwarder if something interesting happens
type Event struct {
	Type int    // event type (see consts)
	Algo string // forwarding algorithm
	Node int    // node where the event happened
	Ref  int    // reference node (optional)
	Val  int    // additional data
}

// Listener for routing events
type Listener func(*Event)
