// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import "github.com/prometheus/client_golang/prometheus"

// Stats is a point-in-time snapshot of a Map's internal counters, used
// both by Map.Stats and by the prometheus Collector below.
type Stats struct {
	Size        int64
	Capacity    int
	LoadFactor  float64
	ResizeCount int64
	CASRetries  int64
	NextResize  int64
	Resizing    bool
}

// Stats returns a snapshot of the map's current size, bucket-array
// capacity, configured load factor, completed-resize count, cumulative
// CAS-retry count from the bucket-chain insertion path, and distance to
// the next resize.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Size:        m.size.Load(),
		Capacity:    m.data.Load().length(),
		LoadFactor:  m.loadFactor,
		ResizeCount: m.resizeCount.Load(),
		CASRetries:  m.casRetries.Load(),
		NextResize:  m.NextResize(),
		Resizing:    m.resizeLock.Load(),
	}
}

// Collector implements prometheus.Collector over a Map's Stats. It is a
// separate, non-generic type because Go does not allow a generic method
// to satisfy a non-generic interface: Map[K,V].Collector constructs one
// of these, closing over m.Stats so the Collector itself need not be
// parameterized over K and V.
type Collector struct {
	statsFn func() Stats

	size        *prometheus.Desc
	capacity    *prometheus.Desc
	loadFactor  *prometheus.Desc
	resizeCount *prometheus.Desc
	casRetries  *prometheus.Desc
	nextResize  *prometheus.Desc
	resizing    *prometheus.Desc
}

// Collector builds a prometheus.Collector that reports m's Stats under
// metric names prefixed with name (e.g. name="lfmap" yields lfmap_size,
// lfmap_capacity, lfmap_load_factor, lfmap_resize_count,
// lfmap_cas_retries, lfmap_next_resize, lfmap_resizing).
func (m *Map[K, V]) Collector(name string) *Collector {
	return &Collector{
		statsFn:     m.Stats,
		size:        prometheus.NewDesc(name+"_size", "Approximate number of live entries.", nil, nil),
		capacity:    prometheus.NewDesc(name+"_capacity", "Current bucket array length.", nil, nil),
		loadFactor:  prometheus.NewDesc(name+"_load_factor", "Configured load factor.", nil, nil),
		resizeCount: prometheus.NewDesc(name+"_resize_count", "Number of completed resizes.", nil, nil),
		casRetries:  prometheus.NewDesc(name+"_cas_retries", "Cumulative failed CAS attempts on the bucket-chain insertion path.", nil, nil),
		nextResize:  prometheus.NewDesc(name+"_next_resize", "Inserts remaining before the next resize.", nil, nil),
		resizing:    prometheus.NewDesc(name+"_resizing", "1 if a resize is currently in flight.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.loadFactor
	ch <- c.resizeCount
	ch <- c.casRetries
	ch <- c.nextResize
	ch <- c.resizing
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.statsFn()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, s.LoadFactor)
	ch <- prometheus.MustNewConstMetric(c.resizeCount, prometheus.GaugeValue, float64(s.ResizeCount))
	ch <- prometheus.MustNewConstMetric(c.casRetries, prometheus.CounterValue, float64(s.CASRetries))
	ch <- prometheus.MustNewConstMetric(c.nextResize, prometheus.GaugeValue, float64(s.NextResize))
	resizing := 0.0
	if s.Resizing {
		resizing = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.resizing, prometheus.GaugeValue, resizing)
}
