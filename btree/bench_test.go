package btree

import (
	"fmt"
	"math/rand"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func benchKeys(kind distributionKind, n int) []int {
	keys := make([]int, n)
	r := rand.New(rand.NewSource(1))
	var zipf *rand.Zipf
	if kind == distZipf {
		zipf = rand.NewZipf(r, 1.2, 1, uint64(n*4))
	}
	for i := range keys {
		switch kind {
		case distAscending:
			keys[i] = i
		case distZipf:
			keys[i] = int(zipf.Uint64())
		default:
			keys[i] = r.Intn(n * 4)
		}
	}
	return keys
}

func BenchmarkTreeWorkloads(b *testing.B) {
	distributions := []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
		{name: "Zipfian", kind: distZipf},
	}
	const keyRange = 1 << 14

	for _, dist := range distributions {
		dist := dist
		keys := benchKeys(dist.kind, keyRange)
		for _, degree := range []int{2, 8, 32} {
			degree := degree
			b.Run(fmt.Sprintf("%s/Insert/t=%d", dist.name, degree), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					tr := NewOrdered[int](degree)
					for _, k := range keys {
						_ = tr.Insert(k)
					}
				}
			})
			b.Run(fmt.Sprintf("%s/Search/t=%d", dist.name, degree), func(b *testing.B) {
				tr := NewOrdered[int](degree)
				for _, k := range keys {
					_ = tr.Insert(k)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					tr.Has(keys[i%len(keys)])
				}
			})
			b.Run(fmt.Sprintf("%s/InsertRemove/t=%d", dist.name, degree), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					tr := NewOrdered[int](degree)
					for _, k := range keys {
						_ = tr.Insert(k)
					}
					for _, k := range keys {
						tr.Remove(k)
					}
				}
			})
		}
	}
}
