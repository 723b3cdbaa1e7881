package draid

import (
	"math/rand"
	"sort"
)

//devOrder pairs a device index with its random sort key for one draw
type devOrder struct {
	dev   int
	order int64
}

//permuteDevs derives the next row from the previous one.
//
//For two devices a random draw returns the identity half the time, which
//defeats permutation diversity, so that case always swaps. Otherwise every
//device gets a random order key and the row is stably sorted by key.
func permuteDevs(in, out []int, r *rand.Rand) {
	ndevs := len(in)
	if ndevs == 2 {
		out[0], out[1] = in[1], in[0]
		return
	}
	tmp := make([]devOrder, ndevs)
	for i := 0; i < ndevs; i++ {
		tmp[i] = devOrder{dev: in[i], order: r.Int63()}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		return tmp[i].order < tmp[j].order
	})
	for i := 0; i < ndevs; i++ {
		out[i] = tmp[i].dev
	}
}
