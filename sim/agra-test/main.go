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
	"agra/core"
	"agra/routing"
	"agra/sim"
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bfix/gospel/logger"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	//------------------------------------------------------------------
	// parse arguments
	var (
		cfgFile string
		verbose bool
		events  bool
		metrics string
	)
	flag.StringVar(&cfgFile, "c", "config.yaml", "JSON- or YAML-encoded configuration file")
	flag.BoolVar(&verbose, "v", false, "debug output")
	flag.BoolVar(&events, "e", false, "log routing events")
	flag.StringVar(&metrics, "m", "", "serve route metrics on this address (e.g. ':9100')")
	flag.Parse()

	// read configuration
	if err := sim.ReadConfig(cfgFile); err != nil {
		log.Fatal(err)
	}
	core.SetConfiguration(sim.Cfg.Core)
	if verbose {
		logger.SetLogLevel(logger.DBG)
	} else {
		logger.SetLogLevel(logger.WARN)
	}

	//------------------------------------------------------------------
	// Build topology of trial
	log.Println("Building topology...")
	t, err := sim.BuildTopology(sim.Cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("  * Nodes: %d (%.2f%% enabled)", t.NumNodes(), 100*t.Coverage())
	log.Printf("  * Avg. degree: %.2f", t.AvgDegree())
	log.Printf("  * Obstacles: %d raw, %d circumscribed", len(t.Obstacles()), len(t.CircumscribedObstacles()))

	//------------------------------------------------------------------
	// Route random pairs with all algorithms
	algos := sim.Cfg.Routing.Algorithms
	if len(algos) == 0 {
		algos = routing.Algorithms()
	}
	hdlr := NewEventHandler(events)
	pairs := routing.RandomPairs(t, sim.Cfg.Routing.Pairs, sim.Random)
	var reqs []routing.Request
	for _, algo := range algos {
		for _, p := range pairs {
			reqs = append(reqs, routing.Request{
				Algo: algo,
				Src:  p[0],
				Dst:  p[1],
				TTL:  sim.Cfg.Routing.TTL,
				Params: routing.Params{
					Degree:   sim.Cfg.Routing.Degree[algo],
					Listener: hdlr.HandleEvent,
				},
			})
		}
	}
	col, err := routing.NewCollector(prometheus.NewRegistry())
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	srv := serveMetrics(metrics, col)

	log.Printf("Routing %d pairs with %d algorithms...", len(pairs), len(algos))
	results, err := routing.RouteAll(ctx, t, reqs, sim.Cfg.Routing.Workers, col)
	if err != nil {
		log.Fatal(err)
	}
	reachable := 0
	for i := range pairs {
		if len(results[i].Shortest) > 0 {
			reachable++
		}
	}
	log.Printf("  * Reachable pairs: %d of %d", reachable, len(pairs))
	for _, s := range routing.Summarize(results) {
		log.Printf("  * %s", s)
	}
	hdlr.Report()

	//------------------------------------------------------------------
	// build SVG on demand
	if c := sim.GetCanvas(sim.Cfg.Render, float64(t.Size())); c != nil {
		var paths [][]int
		for _, res := range results {
			if res.Algo == sim.Cfg.Render.Algo {
				paths = append(paths, res.Outcome.Path)
			}
		}
		if err = sim.Render(c, t, paths, sim.Cfg.Render.Planar); err != nil {
			log.Fatal(err)
		}
		c.Close()
	}

	// keep metrics available until interrupted
	if srv != nil {
		log.Printf("Serving metrics on %s (interrupt to stop)", metrics)
		<-ctx.Done()
		if err = srv.Shutdown(context.Background()); err != nil {
			log.Println(err)
		}
	}
	log.Println("Done")
}

// serveMetrics exposes the route metrics on '/metrics' if an address is set.
func serveMetrics(addr string, col *routing.Collector) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", col.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %s", err)
		}
	}()
	return srv
}
