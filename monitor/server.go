// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package monitor provides an embedded HTTP server to expose
// metrics for monitoring
package monitor

import (
	_ "expvar" // Go documentation recommended usage
	"fmt"
	"net/http"
	_ "net/http/pprof" // Go documentation recommended usage

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/concurrentmap/lfmap/logger"
)

// Server represents a monitoring server
type Server interface {
	Run() error
}

// server contains information for the monitoring server
type server struct {
	// Server name e.g. host[:port]
	serverName string
	log        logger.Logger
	mux        *http.ServeMux
}

// NewMonitorServer creates a new server struct. If collectors are
// supplied, they are registered against a dedicated prometheus registry
// served at /metrics, alongside the process/Go runtime collectors.
func NewMonitorServer(serverName string, log logger.Logger, collectors ...prometheus.Collector) Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	for _, c := range collectors {
		reg.MustRegister(c)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug", debugHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/debug/vars", http.DefaultServeMux)
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return &server{serverName: serverName, log: log, mux: mux}
}

func debugHandler(w http.ResponseWriter, r *http.Request) {
	indexTmpl := `<html>
	<head>
	<title>/debug</title>
	</head>
	<body>
	<p>/debug</p>
	<div><a href="/debug/vars">vars</a></div>
	<div><a href="/debug/pprof">pprof</a></div>
	<div><a href="/metrics">metrics</a></div>
	</body>
	</html>
	`
	fmt.Fprint(w, indexTmpl)
}

// Run sets up the HTTP server and any handlers. It blocks until the
// server stops, returning the error ListenAndServe reported.
func (s *server) Run() error {
	err := http.ListenAndServe(s.serverName, s.mux)
	if err != nil && s.log != nil {
		s.log.Errorf("monitor server stopped: %s", err)
	}
	return err
}
