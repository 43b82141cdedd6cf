package skiplist_test

import (
	"errors"
	"fmt"

	"github.com/metailurini/ordered"
	"github.com/metailurini/ordered/rng"
	"github.com/metailurini/ordered/skiplist"
)

func ExampleSkipList_Insert() {
	s := skiplist.NewOrdered[int]()
	_ = s.Insert(2)
	_ = s.Insert(1)
	err := s.Insert(2)
	fmt.Println(s.Len(), errors.Is(err, ordered.ErrDuplicateKey))
	// Output: 2 true
}

func ExampleSkipList_Remove() {
	s := skiplist.NewOrdered[string](skiplist.WithSource(rng.NewWithSeed(7)))
	for _, k := range []string{"b", "a", "c"} {
		_ = s.Insert(k)
	}
	fmt.Println(s.Remove("a"), s.Remove("z"))
	fmt.Println(s.Keys())
	// Output: true false
	// [b c]
}

func ExampleSkipList_Iterator() {
	s := skiplist.NewOrdered[int]()
	for _, k := range []int{3, 1, 2} {
		_ = s.Insert(k)
	}
	it := s.Iterator()
	for it.Next() {
		fmt.Printf("%d ", it.Key())
	}
	fmt.Println()
	// Output: 1 2 3
}
