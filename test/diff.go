// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package test

import "github.com/kylelemons/godebug/pretty"

// diffConfig controls how values are rendered by Diff and PrettyPrint.
var diffConfig = &pretty.Config{
	Diffable:          true,
	IncludeUnexported: false,
}

// Diff returns the difference of two objects in a human readable format.
// An empty string is returned when there is no difference.
func Diff(a, b interface{}) string {
	return diffConfig.Compare(a, b)
}

// DeepEqual reports whether a and b are structurally equal, field by field,
// ignoring unexported fields. It is a thin wrapper around Diff so that test
// code can ask a yes/no question without rendering a diff it doesn't need.
func DeepEqual(a, b interface{}) bool {
	return Diff(a, b) == ""
}

// PrettyPrint renders a human readable representation of v, for use in test
// failure messages.
func PrettyPrint(v interface{}) string {
	return diffConfig.Sprint(v)
}
