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
	"math/rand"
	"sort"

	"agra/core"

	"gonum.org/v1/gonum/stat"
)

// Stretch is the ratio of hops in a path to the hops of the shortest path.
// Returns 0 if either path is empty.
func Stretch(path, shortest []int) float64 {
	if len(path) == 0 || len(shortest) == 0 {
		return 0
	}
	if len(shortest) == 1 {
		return 1
	}
	return float64(len(path)-1) / float64(len(shortest)-1)
}

// Summary of routing results for one algorithm
type Summary struct {
	Algo        string  // algorithm name
	Routes      int     // number of routes
	Delivered   int     // number of delivered routes
	Stuck       int     // number of stuck routes
	TTLExceeded int     // number of routes exceeding the hop limit
	StretchMean float64 // mean stretch of delivered routes
	StretchStd  float64 // standard deviation of stretch
	HeaderMean  float64 // mean header size
}

// DeliveryRatio is the share of delivered routes
func (s *Summary) DeliveryRatio() float64 {
	if s.Routes == 0 {
		return 0
	}
	return float64(s.Delivered) / float64(s.Routes)
}

// String returns a human-readable summary
func (s *Summary) String() string {
	return fmt.Sprintf("%-12s routes=%d delivered=%.3f stuck=%d ttl=%d stretch=%.3f±%.3f header=%.2f",
		s.Algo, s.Routes, s.DeliveryRatio(), s.Stuck, s.TTLExceeded, s.StretchMean, s.StretchStd, s.HeaderMean)
}

// Summarize results per algorithm (sorted by name)
func Summarize(results []Result) []*Summary {
	type acc struct {
		sum     *Summary
		stretch []float64
		header  []float64
	}
	accs := make(map[string]*acc)
	for _, res := range results {
		a, ok := accs[res.Algo]
		if !ok {
			a = &acc{sum: &Summary{Algo: res.Algo}}
			accs[res.Algo] = a
		}
		a.sum.Routes++
		a.header = append(a.header, float64(res.Outcome.Diag.HeaderSize))
		switch res.Outcome.Status {
		case Delivered:
			a.sum.Delivered++
			if s := Stretch(res.Outcome.Path, res.Shortest); s > 0 {
				a.stretch = append(a.stretch, s)
			}
		case Stuck:
			a.sum.Stuck++
		case TTLExceeded:
			a.sum.TTLExceeded++
		}
	}
	list := make([]*Summary, 0, len(accs))
	for _, a := range accs {
		switch len(a.stretch) {
		case 0:
		case 1:
			a.sum.StretchMean = a.stretch[0]
		default:
			a.sum.StretchMean, a.sum.StretchStd = stat.MeanStdDev(a.stretch, nil)
		}
		a.sum.HeaderMean = stat.Mean(a.header, nil)
		list = append(list, a.sum)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Algo < list[j].Algo
	})
	return list
}

// RandomPairs returns 'n' source/destination pairs of distinct enabled
// nodes. No pairs are returned if less than two nodes are enabled.
func RandomPairs(t *core.Topology, n int, rnd *rand.Rand) [][2]int {
	var on []int
	for _, node := range t.Nodes() {
		if node.Enabled() {
			on = append(on, node.ID())
		}
	}
	if len(on) < 2 || n <= 0 {
		return nil
	}
	pairs := make([][2]int, n)
	for i := range pairs {
		src := rnd.Intn(len(on))
		dst := rnd.Intn(len(on) - 1)
		if dst >= src {
			dst++
		}
		pairs[i] = [2]int{on[src], on[dst]}
	}
	return pairs
}
