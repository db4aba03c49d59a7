package maputils

import "maps"

// Copy returns a shallow copy of m. The copy of a nil map is an empty,
// writable map.
func Copy[K comparable, T any](m map[K]T) map[K]T {
	c := make(map[K]T, len(m))
	maps.Copy(c, m)
	return c
}
