// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import (
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// spinBudget is the number of CAS attempts a retry loop makes before it
// starts yielding the processor between attempts. Under light contention
// a CAS almost always succeeds within a handful of attempts; beyond that,
// busy-spinning just burns a core fighting goroutines that the scheduler
// hasn't yet run.
const spinBudget = 64

// spinner paces a CAS retry loop: it spins freely for spinBudget attempts,
// then switches to a short exponential backoff so that a goroutine stuck
// behind sustained contention yields CPU instead of livelocking its
// siblings.
type spinner struct {
	attempts int
	bo       *backoff.ExponentialBackOff
	retries  *atomic.Int64
}

func newSpinner(retries *atomic.Int64) *spinner {
	return &spinner{retries: retries}
}

// wait is called once per failed CAS attempt. It never blocks longer than
// a few milliseconds and never aborts the loop itself; the map is
// lock-free and every retry loop must eventually be retried by its
// caller, not abandoned here.
func (s *spinner) wait() {
	s.attempts++
	if s.retries != nil {
		s.retries.Add(1)
	}
	if s.attempts <= spinBudget {
		return
	}
	if s.bo == nil {
		s.bo = backoff.NewExponentialBackOff()
		s.bo.InitialInterval = 50 * time.Microsecond
		s.bo.MaxInterval = 2 * time.Millisecond
		s.bo.MaxElapsedTime = 0
	}
	time.Sleep(s.bo.NextBackOff())
}
