package segtree_test

import (
	"fmt"
	"os"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoids"
)

func ExampleNew() {
	tree := segtree.New(0, 4, func(x, y int) int { return x + y })
	tree.Update(0, 2)
	tree.Update(1, 4)
	tree.Update(2, 3)
	tree.Update(3, 0)
	fmt.Println(tree.Query(0, 2), tree.Query(1, 4), tree.Query(2, 2))
	// Output: 6 7 0
}

func ExampleFromSlice() {
	m := monoids.MinOf[int]()
	tree := segtree.FromSlice([]int{5, 3, 8, 1, 9}, segtree.Monoid[int](m))
	fmt.Println(tree.Len(), tree.Leaves(), tree.Query(0, 3), tree.Total())
	// Output: 5 8 3 1
}

func ExampleTree_MaxRight() {
	tree := segtree.FromSlice([]int{3, 1, 4, 1, 5, 9}, segtree.Monoid[int](monoids.Sum[int]{}))
	// longest prefix with a sum of at most 10
	r := tree.MaxRight(0, func(sum int) bool { return sum <= 10 })
	fmt.Println(r, tree.Query(0, r))
	// Output: 4 9
}

func ExampleDumpCover() {
	tree := segtree.FromSlice([]string{"a", "b", "c", "d"}, segtree.MonoidFunc("", func(x, y string) string {
		return x + y
	}))
	segtree.DumpCover(tree, os.Stdout, 1, 4, nil)
	fmt.Println(tree.Cover(1, 4))
	// Output:
	//  0: [0,4) abcd
	//  1: [0,2) ab *[2,4) cd
	//  2: [0,1) a *[1,2) b [2,3) c [3,4) d
	// [4 2]
}
