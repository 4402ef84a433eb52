package segtree

// MaxRight finds the largest r in [begin, Leaves()] such that
// pred(Query(begin, r)) holds.
//
// pred has to be monotone: once it fails for a range [begin, r), it has to
// fail for every longer range as well. pred has to accept the identity.
// MaxRight panics if begin is not in [0, Leaves()] or if pred(Identity())
// is false.
//
// A typical application is finding the longest prefix whose sum does not
// exceed a threshold:
//
//	r := tree.MaxRight(0, func(sum int) bool { return sum <= 100 })
func (t *Tree[V]) MaxRight(begin int, pred func(V) bool) int {
	t.checkRange(begin, t.nLeaves)
	t.checkPredicate(pred)
	if begin == t.nLeaves {
		return t.nLeaves
	}
	r, _, stopped := t.maxRight(begin, pred, 0, 0, t.nLeaves, t.monoid.Zero())
	if !stopped {
		return t.nLeaves
	}
	return r
}

// maxRight extends acc = Query(begin, left) through node, which covers
// [left, right). It reports the position where pred first failed, if it did.
func (t *Tree[V]) maxRight(begin int, pred func(V) bool, node, left, right int, acc V) (int, V, bool) {
	if right <= begin {
		return right, acc, false
	}
	if begin <= left {
		next := t.monoid.Add(acc, t.values[node])
		if pred(next) {
			return right, next, false
		}
		if right-left == 1 {
			return left, acc, true
		}
	}
	mid := (left + right) / 2
	pos, acc, stopped := t.maxRight(begin, pred, 2*node+1, left, mid, acc)
	if stopped {
		return pos, acc, true
	}
	return t.maxRight(begin, pred, 2*node+2, mid, right, acc)
}

// MinLeft finds the smallest l in [0, end] such that pred(Query(l, end)) holds.
//
// Requirements for pred are the same as for MaxRight. MinLeft panics if end
// is not in [0, Leaves()] or if pred(Identity()) is false.
func (t *Tree[V]) MinLeft(end int, pred func(V) bool) int {
	t.checkRange(0, end)
	t.checkPredicate(pred)
	if end == 0 {
		return 0
	}
	l, _, stopped := t.minLeft(end, pred, 0, 0, t.nLeaves, t.monoid.Zero())
	if !stopped {
		return 0
	}
	return l
}

// minLeft extends acc = Query(right, end) leftwards through node, which
// covers [left, right).
func (t *Tree[V]) minLeft(end int, pred func(V) bool, node, left, right int, acc V) (int, V, bool) {
	if end <= left {
		return left, acc, false
	}
	if right <= end {
		next := t.monoid.Add(t.values[node], acc)
		if pred(next) {
			return left, next, false
		}
		if right-left == 1 {
			return right, acc, true
		}
	}
	mid := (left + right) / 2
	pos, acc, stopped := t.minLeft(end, pred, 2*node+2, mid, right, acc)
	if stopped {
		return pos, acc, true
	}
	return t.minLeft(end, pred, 2*node+1, left, mid, acc)
}

func (t *Tree[V]) checkPredicate(pred func(V) bool) {
	if pred == nil {
		fail(ErrIllegalArguments, "predicate is nil")
	}
	if !pred(t.monoid.Zero()) {
		fail(ErrInvalidPredicate, "search needs pred(identity) == true")
	}
}

// Cover returns the slots which Query(begin, end) reads without descending
// further, in left to right order. There are at most two of them per tree
// level. Cover panics under the same conditions as Query.
func (t *Tree[V]) Cover(begin, end int) []int {
	t.checkRange(begin, end)
	var slots []int
	var walk func(node, left, right int)
	walk = func(node, left, right int) {
		if right <= begin || end <= left {
			return
		}
		if begin <= left && right <= end {
			slots = append(slots, node)
			return
		}
		mid := (left + right) / 2
		walk(2*node+1, left, mid)
		walk(2*node+2, mid, right)
	}
	walk(0, 0, t.nLeaves)
	return slots
}
