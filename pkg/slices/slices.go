package sliceutils

func Map[T any, U any](values []T, mapper func(v T) U) []U {
	mapped := make([]U, len(values))
	for i, value := range values {
		mapped[i] = mapper(value)
	}
	return mapped
}

// CountBy counts values per key.
func CountBy[T any, K comparable](values []T, key func(v T) K) map[K]int {
	counts := make(map[K]int)
	for _, value := range values {
		counts[key(value)]++
	}
	return counts
}
