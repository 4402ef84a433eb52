package segtree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree/monoids"
)

func TestMaxRightPrefixSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree := FromSlice([]int{3, 1, 4, 1, 5, 9, 2}, Monoid[int](monoids.Sum[int]{}))
	tests := []struct {
		begin, limit int
		want         int
	}{
		{0, 0, 0},
		{0, 3, 1},
		{0, 4, 2},
		{0, 9, 4},
		{0, 14, 5},
		{0, 1000, 8},
		{2, 5, 4},
		{5, 8, 5},
		{7, 0, 8},
		{8, 0, 8},
	}
	for _, tt := range tests {
		limit := tt.limit
		got := tree.MaxRight(tt.begin, func(sum int) bool { return sum <= limit })
		if got != tt.want {
			t.Errorf("MaxRight(%d, sum <= %d) = %d, want %d", tt.begin, tt.limit, got, tt.want)
		}
	}
}

func TestMinLeftSuffixSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree := FromSlice([]int{3, 1, 4, 1, 5, 9, 2, 6}, Monoid[int](monoids.Sum[int]{}))
	tests := []struct {
		end, limit int
		want       int
	}{
		{8, 0, 8},
		{8, 6, 7},
		{8, 8, 6},
		{8, 17, 5},
		{8, 1000, 0},
		{5, 5, 4},
		{0, 0, 0},
	}
	for _, tt := range tests {
		limit := tt.limit
		got := tree.MinLeft(tt.end, func(sum int) bool { return sum <= limit })
		if got != tt.want {
			t.Errorf("MinLeft(%d, sum <= %d) = %d, want %d", tt.end, tt.limit, got, tt.want)
		}
	}
}

func TestSearchAgainstLinearScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	r := rand.New(rand.NewSource(42))
	for _, size := range []int{1, 5, 8, 13} {
		model := make([]int, size)
		for i := range model {
			model[i] = r.Intn(10)
		}
		tree := FromSlice(model, MonoidFunc(0, sumInt))
		padded := make([]int, tree.Leaves())
		copy(padded, model)
		for range 100 {
			limit := r.Intn(40)
			pred := func(sum int) bool { return sum <= limit }
			begin := r.Intn(tree.Leaves() + 1)
			wantR := begin
			for wantR < tree.Leaves() && pred(naiveQuery(padded, 0, sumInt, begin, wantR+1)) {
				wantR++
			}
			if got := tree.MaxRight(begin, pred); got != wantR {
				t.Fatalf("size %d: MaxRight(%d, sum <= %d) = %d, want %d", size, begin, limit, got, wantR)
			}
			end := r.Intn(tree.Leaves() + 1)
			wantL := end
			for wantL > 0 && pred(naiveQuery(padded, 0, sumInt, wantL-1, end)) {
				wantL--
			}
			if got := tree.MinLeft(end, pred); got != wantL {
				t.Fatalf("size %d: MinLeft(%d, sum <= %d) = %d, want %d", size, end, limit, got, wantL)
			}
		}
	}
}

func TestSearchRejectsInvalidPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree := New(0, 4, sumInt)
	never := func(int) bool { return false }
	if err := expectPanic(t, func() { tree.MaxRight(0, never) }); !errors.Is(err, ErrInvalidPredicate) {
		t.Errorf("expected ErrInvalidPredicate, got %v", err)
	}
	if err := expectPanic(t, func() { tree.MinLeft(4, never) }); !errors.Is(err, ErrInvalidPredicate) {
		t.Errorf("expected ErrInvalidPredicate, got %v", err)
	}
	if err := expectPanic(t, func() { tree.MaxRight(0, nil) }); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	always := func(int) bool { return true }
	if err := expectPanic(t, func() { tree.MaxRight(5, always) }); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := expectPanic(t, func() { tree.MinLeft(-1, always) }); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestCoverIsCanonical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree := New("", 16, concat)
	for i := range 16 {
		tree.Update(i, string(rune('a'+i)))
	}
	level := func(slot int) int {
		l := 0
		for slot > 0 {
			slot = (slot - 1) / 2
			l++
		}
		return l
	}
	for begin := 0; begin <= 16; begin++ {
		for end := begin; end <= 16; end++ {
			slots := tree.Cover(begin, end)
			perLevel := make(map[int]int)
			acc := ""
			for _, slot := range slots {
				perLevel[level(slot)]++
				acc += tree.values[slot]
			}
			for l, n := range perLevel {
				if n > 2 {
					t.Errorf("cover of [%d,%d) reads %d slots at level %d", begin, end, n, l)
				}
			}
			if want := tree.Query(begin, end); acc != want {
				t.Errorf("cover of [%d,%d) folds to %q, query yields %q", begin, end, acc, want)
			}
		}
	}
	if slots := tree.Cover(0, 16); len(slots) != 1 || slots[0] != 0 {
		t.Errorf("expected full range to be covered by the root, have %v", slots)
	}
	if slots := tree.Cover(3, 3); len(slots) != 0 {
		t.Errorf("expected empty cover for empty range, have %v", slots)
	}
}
