package sliceutils

import "slices"

// AppendIfNotContains appends v to s unless s already holds it.
func AppendIfNotContains[T comparable](s []T, v T) []T {
	if slices.Contains(s, v) {
		return s
	}
	return append(s, v)
}
