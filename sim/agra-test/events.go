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

package main

import (
	"agra/routing"
	"log"
	"sync"
)

// EventHandler logs routing events and counts them per type. Routes are
// computed concurrently, so the handler is safe for concurrent use.
type EventHandler struct {
	sync.Mutex
	show   bool
	counts map[int]int
}

// NewEventHandler creates a new handler; events are logged if 'show' is set.
func NewEventHandler(show bool) *EventHandler {
	return &EventHandler{
		show:   show,
		counts: make(map[int]int),
	}
}

// HandleEvent is a routing.Listener
func (hdlr *EventHandler) HandleEvent(ev *routing.Event) {
	hdlr.Lock()
	hdlr.counts[ev.Type]++
	hdlr.Unlock()
	if !hdlr.show {
		return
	}
	switch ev.Type {

	//------------------------------------------------------------------
	case routing.EvRecoveryEnter:
		log.Printf("[%s %d] recovery mode for %d", ev.Algo, ev.Node, ev.Ref)

	//------------------------------------------------------------------
	case routing.EvRecoveryLeave:
		log.Printf("[%s %d] recovery mode left", ev.Algo, ev.Node)

	//------------------------------------------------------------------
	case routing.EvFaceChange:
		log.Printf("[%s %d] face change #%d towards %d", ev.Algo, ev.Node, ev.Val, ev.Ref)

	//------------------------------------------------------------------
	case routing.EvStuck:
		log.Printf("[%s %d] stuck: %s", ev.Algo, ev.Node, routing.Reason(ev.Val))
	}
}

// Report the number of events per type
func (hdlr *EventHandler) Report() {
	hdlr.Lock()
	defer hdlr.Unlock()
	log.Printf("  * Events: %d recovery, %d back, %d face changes, %d stuck",
		hdlr.counts[routing.EvRecoveryEnter], hdlr.counts[routing.EvRecoveryLeave],
		hdlr.counts[routing.EvFaceChange], hdlr.counts[routing.EvStuck])
}
