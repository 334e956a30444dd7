package pmt_test

import (
	"fmt"

	"github.com/celestiaorg/pmt"
)

func Example() {
	leaf := func(v int) int { return v }
	node := func(l, r int) int { return l + r }

	tree, err := pmt.New(2, []int{1, 2, 3, 4}, leaf, node)
	if err != nil {
		panic(err)
	}
	proof, err := tree.Prove(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.Root(), proof.TargetHash(), proof.Neighbors())
	fmt.Println(pmt.VerifyComparable(proof, node, tree.Root()))
	// Output:
	// 10 3 [4 3]
	// true
}

func ExampleTree_Path() {
	concat := func(l, r string) string { return l + r }
	tree, err := pmt.New(2, []string{"a", "b", "c", "d"}, func(s string) string { return s }, concat)
	if err != nil {
		panic(err)
	}
	path, err := tree.Path(3)
	if err != nil {
		panic(err)
	}
	fmt.Println(path, tree.Root())
	// Output: [3 5 6] abcd
}
