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

import "fmt"

// Status of a finished route
type Status int

// Route status values
const (
	Delivered   Status = iota // destination reached
	Stuck                     // forwarding gave up (see Reason)
	TTLExceeded               // hop limit reached before delivery
)

// String returns a human-readable status
func (s Status) String() string {
	switch s {
	case Delivered:
		return "Delivered"
	case Stuck:
		return "Stuck"
	case TTLExceeded:
		return "TtlExceeded"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Reason why forwarding got stuck
type Reason int

// Stuck reasons
const (
	NoReason               Reason = iota // not stuck
	LocalMinimumNoRecovery               // local minimum and no recovery mode
	RecoveryLoopDetected                 // perimeter traversal returned to its first edge
	IsolatedNode                         // no eligible neighbor in recovery mode
)

// String returns a human-readable reason
func (r Reason) String() string {
	switch r {
	case NoReason:
		return "-"
	case LocalMinimumNoRecovery:
		return "LocalMinimumNoRecovery"
	case RecoveryLoopDetected:
		return "RecoveryLoopDetected"
	case IsolatedNode:
		return "IsolatedNode"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Diagnostics collected while forwarding
type Diagnostics struct {
	RecoveryEntries int // number of times a recovery mode was entered
	RecoveryHops    int // hops made in recovery mode
	RepulsionHops   int // hops made in repulsion mode
	FaceChanges     int // face changes in perimeter mode
	HeaderSize      int // distinct nodes in the visit-count map
}

// Outcome of a forwarding request
type Outcome struct {
	Status Status      // final status
	Reason Reason      // reason if stuck
	Path   []int       // node ids from source (to destination if delivered)
	Diag   Diagnostics // per-route diagnostics
}

// Hops returns the number of hops in the path
func (o *Outcome) Hops() int {
	if len(o.Path) == 0 {
		return 0
	}
	return len(o.Path) - 1
}

// Delivered returns true if the destination was reached
func (o *Outcome) Delivered() bool {
	return o.Status == Delivered
}

// String returns a human-readable outcome
func (o *Outcome) String() string {
	if o.Status == Stuck {
		return fmt.Sprintf("%s(%s, %d hops)", o.Status, o.Reason, o.Hops())
	}
	return fmt.Sprintf("%s(%d hops)", o.Status, o.Hops())
}
