// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// The lfmapd tool runs a synthetic, concurrent read/write/remove load
// generator against an lfmap.Map and serves its statistics over HTTP. It
// never exposes the map's actual contents, only aggregate counters: the
// map's job here is to demonstrate throughput and resize behavior under
// contention, not to act as a cache service.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aristanetworks/glog"

	"github.com/concurrentmap/lfmap/concurrency"
	"github.com/concurrentmap/lfmap/glogadapter"
	"github.com/concurrentmap/lfmap/lfmap"
	"github.com/concurrentmap/lfmap/logger"
	"github.com/concurrentmap/lfmap/monitor"
)

var (
	listenAddr = flag.String("listen_addr", ":8080",
		"address the /debug and /metrics HTTP server listens on")
	initialCapacity = flag.Int("initial_capacity", lfmap.DefaultInitialCapacity,
		"initial bucket array capacity")
	loadFactor = flag.Float64("load_factor", lfmap.DefaultLoadFactor,
		"fraction of capacity at which a resize triggers")
	keySpace = flag.Int("key_space", 100000,
		"number of distinct integer keys the load generator spreads operations over")
	workers = flag.Int("workers", 32,
		"number of concurrent load-generator goroutines")
	maxInFlight = flag.Int64("max_in_flight", 16,
		"maximum number of load-generator workers allowed to run concurrently")
)

func main() {
	flag.Parse()

	log := &glogadapter.Glog{}

	m := lfmap.New[int, string](hashInt, func(a, b int) bool { return a == b },
		lfmap.WithInitialCapacity[int, string](*initialCapacity),
		lfmap.WithLoadFactor[int, string](*loadFactor),
		lfmap.WithLogger[int, string](log),
	)

	srv := monitor.NewMonitorServer(*listenAddr, log, m.Collector("lfmapd"))
	go func() {
		if err := srv.Run(); err != nil {
			glog.Errorf("monitor server exited: %s", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runLoadGenerator(ctx, m, log); err != nil && ctx.Err() == nil {
		glog.Fatalf("load generator exited with error: %s", err)
	}
}

func hashInt(k int) uint32 {
	return uint32(k)
}

// runLoadGenerator fans out *workers goroutines, each repeatedly
// performing a random put/get/remove against a shared key space, bounded
// to at most *maxInFlight running concurrently via concurrency.Weighted.
// It runs until ctx is canceled.
func runLoadGenerator(ctx context.Context, m *lfmap.Map[int, string], log logger.Logger) error {
	sem := concurrency.NewWeighted(*maxInFlight)
	eg, ctx := errgroup.WithContext(ctx)

	for w := 0; w < *workers; w++ {
		w := w
		eg.Go(func() error {
			rnd := rand.New(rand.NewSource(int64(w) + time.Now().UnixNano()))
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				if err := sem.Acquire(ctx, 1); err != nil {
					return nil
				}
				runOnce(m, rnd)
				sem.Release(1)
			}
		})
	}

	return eg.Wait()
}

func runOnce(m *lfmap.Map[int, string], rnd *rand.Rand) {
	key := rnd.Intn(*keySpace)
	switch rnd.Intn(3) {
	case 0:
		m.Put(key, strconv.Itoa(key))
	case 1:
		m.Get(key)
	case 2:
		m.Remove(key)
	}
}
