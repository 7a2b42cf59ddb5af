package annotate

// memo keeps the most recent result of one computation, keyed by its inputs.
type memo[K comparable, V any] struct {
	key   K
	val   V
	ok    bool
	valid bool
}

// get returns the cached result for key, running compute on a miss.
// hit reports whether the cache was used.
func (m *memo[K, V]) get(key K, compute func() (V, bool)) (val V, ok, hit bool) {
	if m.valid && m.key == key {
		return m.val, m.ok, true
	}
	m.val, m.ok = compute()
	m.key = key
	m.valid = true
	return m.val, m.ok, false
}
