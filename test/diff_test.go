// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package test

import "testing"

func TestDiffAndDeepEqual(t *testing.T) {
	type point struct{ X, Y int }

	if !DeepEqual(point{1, 2}, point{1, 2}) {
		t.Errorf("expected equal points to be DeepEqual")
	}
	if DeepEqual(point{1, 2}, point{1, 3}) {
		t.Errorf("expected different points to not be DeepEqual")
	}
	if d := Diff(point{1, 2}, point{1, 3}); d == "" {
		t.Errorf("expected a non-empty diff for different points")
	}
	if s := PrettyPrint(point{1, 2}); s == "" {
		t.Errorf("expected a non-empty pretty-print")
	}
}
