package segtree

import "iter"

// ForEachLeaf walks the values of leaves [0, Len()) in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[V]) ForEachLeaf(fn func(i int, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	offset := t.nLeaves - 1
	for i := range t.size {
		if !fn(i, t.values[offset+i]) {
			return
		}
	}
}

// Values returns an iterator over the leaves [0, Len()) and their values.
func (t *Tree[V]) Values() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		t.ForEachLeaf(yield)
	}
}
