package grid

// Key is a composite coordinate usable as an Index key. Point and Edge are
// comparable structs, so the Go map compares them structurally; String is
// their canonical encoding for logs and diagnostics.
type Key interface {
	comparable
	String() string
}

// Index maps grid keys to values. It has no ordering guarantee.
// The zero value is not usable; create one with NewIndex.
type Index[K Key, V any] struct {
	m map[K]V
}

// NewIndex creates an empty index.
func NewIndex[K Key, V any]() *Index[K, V] {
	return &Index[K, V]{m: make(map[K]V)}
}

// Get returns the value stored at k.
func (ix *Index[K, V]) Get(k K) (V, bool) {
	v, ok := ix.m[k]
	return v, ok
}

// Has reports whether k has a value.
func (ix *Index[K, V]) Has(k K) bool {
	_, ok := ix.m[k]
	return ok
}

// Set stores v at k, replacing any previous value.
func (ix *Index[K, V]) Set(k K, v V) {
	ix.m[k] = v
}

// Delete removes k. Deleting a missing key is a no-op.
func (ix *Index[K, V]) Delete(k K) {
	delete(ix.m, k)
}

// Len returns the number of stored keys.
func (ix *Index[K, V]) Len() int {
	return len(ix.m)
}

// Range calls fn for each entry until fn returns false.
func (ix *Index[K, V]) Range(fn func(K, V) bool) {
	for k, v := range ix.m {
		if !fn(k, v) {
			return
		}
	}
}
