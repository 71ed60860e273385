// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package glogadapter adapts github.com/aristanetworks/glog to logger.Logger
// so it can be handed to lfmap.WithLogger without lfmap depending on glog
// directly.
package glogadapter

import "github.com/aristanetworks/glog"

// Glog implements logger.Logger on top of glog.
type Glog struct {
	// InfoLevel is the glog verbosity level lfmap's info-level messages
	// (resize start/finish, skipped resize races) are logged at.
	// The zero value logs them unconditionally.
	InfoLevel glog.Level
}

// Info logs at the info level
func (g *Glog) Info(args ...interface{}) {
	glog.V(g.InfoLevel).Info(args...)
}

// Infof logs at the info level, with format
func (g *Glog) Infof(format string, args ...interface{}) {
	glog.V(g.InfoLevel).Infof(format, args...)
}

// Error logs at the error level
func (g *Glog) Error(args ...interface{}) {
	glog.Error(args...)
}

// Errorf logs at the error level, with format
func (g *Glog) Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}

// Fatal logs at the fatal level
func (g *Glog) Fatal(args ...interface{}) {
	glog.Fatal(args...)
}

// Fatalf logs at the fatal level, with format
func (g *Glog) Fatalf(format string, args ...interface{}) {
	glog.Fatalf(format, args...)
}
