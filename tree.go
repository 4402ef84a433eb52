package segtree

// Tree is a segment tree over values of type V.
//
// Values are kept in an implicit complete binary tree: slot 0 is the root,
// the children of slot i are at 2i+1 and 2i+2, and leaf k lives at slot
// k + Leaves() - 1. Every inner slot holds the monoid sum of its children.
type Tree[V any] struct {
	monoid  Monoid[V]
	values  []V
	nLeaves int // power of two, >= 1
	size    int // number of leaves requested by the client
}

// New creates a tree with room for size values, all initialized to identity.
// combine has to be associative with identity as its neutral element.
//
// The leaf count is padded up to the next power of two. A size of 0 results
// in a tree with a single leaf. New panics if size is negative or combine is nil.
func New[V any](identity V, size int, combine func(V, V) V) *Tree[V] {
	if size < 0 {
		fail(ErrIllegalArguments, "size must be >= 0, is %d", size)
	}
	return newTree(MonoidFunc(identity, combine), size)
}

// NewWithConfig creates a tree from a validated configuration.
func NewWithConfig[V any](cfg Config[V]) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return newTree(cfg.Monoid, cfg.Size), nil
}

func newTree[V any](monoid Monoid[V], size int) *Tree[V] {
	n := leafCount(size)
	tracer().Debugf("segtree: new tree of size %d with %d leaves", size, n)
	t := &Tree[V]{
		monoid:  monoid,
		values:  make([]V, 2*n-1),
		nLeaves: n,
		size:    size,
	}
	zero := monoid.Zero()
	for i := range t.values {
		t.values[i] = zero
	}
	return t
}

// FromSlice creates a tree holding values as its leading leaves. Padding
// leaves hold the identity of monoid. The tree is built bottom-up in linear
// time.
func FromSlice[V any](values []V, monoid Monoid[V]) *Tree[V] {
	if monoid == nil {
		fail(ErrIllegalArguments, "monoid is nil")
	}
	t := newTree(monoid, len(values))
	copy(t.values[t.nLeaves-1:], values)
	for i := t.nLeaves - 2; i >= 0; i-- {
		t.pull(i)
	}
	return t
}

// pull recomputes an inner slot from its children.
func (t *Tree[V]) pull(node int) {
	t.values[node] = t.monoid.Add(t.values[2*node+1], t.values[2*node+2])
}

// Len returns the number of leaves requested at construction time.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Leaves returns the number of leaves, i.e. Len() padded to a power of two.
func (t *Tree[V]) Leaves() int {
	if t == nil {
		return 0
	}
	return t.nLeaves
}

// Identity returns the neutral element of the tree's monoid.
func (t *Tree[V]) Identity() V {
	return t.monoid.Zero()
}

// Total returns the aggregate over all leaves.
func (t *Tree[V]) Total() V {
	return t.values[0]
}

// Clone returns a copy of the tree which does not share any state with t.
func (t *Tree[V]) Clone() *Tree[V] {
	if t == nil {
		return nil
	}
	cloned := *t
	cloned.values = make([]V, len(t.values))
	copy(cloned.values, t.values)
	return &cloned
}

// At returns the value of leaf i. At panics if i is not in [0, Leaves()).
func (t *Tree[V]) At(i int) V {
	t.checkLeaf(i)
	return t.values[i+t.nLeaves-1]
}

// Update replaces the value of leaf i and recomputes all of its ancestors.
// Update panics if i is not in [0, Leaves()).
func (t *Tree[V]) Update(i int, value V) {
	t.checkLeaf(i)
	node := i + t.nLeaves - 1
	t.values[node] = value
	for node > 0 {
		node = (node - 1) / 2
		t.pull(node)
	}
}

// Query returns the aggregate of leaves in the half-open range [begin, end),
// folded left to right. An empty range yields the identity.
// Query panics unless 0 <= begin <= end <= Leaves().
func (t *Tree[V]) Query(begin, end int) V {
	t.checkRange(begin, end)
	return t.query(begin, end, 0, 0, t.nLeaves)
}

// query aggregates [begin, end) below node, which covers [left, right).
func (t *Tree[V]) query(begin, end, node, left, right int) V {
	if right <= begin || end <= left {
		return t.monoid.Zero()
	}
	if begin <= left && right <= end {
		return t.values[node]
	}
	assert(right-left > 1, "query descends below a leaf")
	mid := (left + right) / 2
	l := t.query(begin, end, 2*node+1, left, mid)
	r := t.query(begin, end, 2*node+2, mid, right)
	return t.monoid.Add(l, r)
}

func (t *Tree[V]) checkLeaf(i int) {
	if i < 0 || i >= t.nLeaves {
		fail(ErrIndexOutOfBounds, "leaf %d not in [0, %d)", i, t.nLeaves)
	}
}

func (t *Tree[V]) checkRange(begin, end int) {
	if begin < 0 || begin > end || end > t.nLeaves {
		fail(ErrIndexOutOfBounds, "range [%d, %d) not within [0, %d)", begin, end, t.nLeaves)
	}
}
