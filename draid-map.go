// Package draid analyzes declustered-RAID permutation layouts in Go
//
// It generates candidate permutation maps of drives, simulates the resilver
// I/O a drive failure would cause, and scores how evenly each candidate
// spreads that load, so a layout can be picked before a storage engine
// adopts it. For usage see https://github.com/DurantVivado/Draid
//
package draid

import (
	"math/rand"
)

//Map is one candidate permutation layout. Each row maps all drives: the
//first ngroups*groupsz slots form the redundancy groups, the trailing
//nspares slots are the hot-spare pool for that row. Rows are immutable
//once built, so one Map may serve many concurrent simulations.
type Map struct {
	//uid is the global unique id of this map, used to tell candidates apart
	uid int64

	//the total number of drives taking part in the layout
	ndevs int

	//the number of equal-sized redundancy groups per row
	ngroups int

	//groupsz holds the size of each group, (ndevs-nspares)/ngroups for all
	groupsz []int

	//the number of slots per row reserved as hot spares
	nspares int

	//the number of rows
	nrows int

	//rows[i] is a permutation of 0..ndevs-1
	rows [][]int
}

//NewMap builds a fully populated permutation map.
//
//Row 0 is the identity permutation and every later row derives from its
//predecessor via permuteDevs. Pass a *rand.Rand to make the draw
//reproducible; a nil r seeds from system entropy.
//
//Unlike the usual silent truncation, a (ndevs-nspares) that does not divide
//evenly by ngroups is rejected: under-allocating drives in a layout tool is
//worse than refusing the configuration.
func NewMap(ndevs, ngroups, nspares, nrows int, r *rand.Rand) (*Map, error) {
	if ndevs <= 0 {
		return nil, invalidLayoutf("ndevs %d must be positive", ndevs)
	}
	if nspares < 0 || ndevs <= nspares {
		return nil, invalidLayoutf("nspares %d must be in [0, ndevs %d)", nspares, ndevs)
	}
	if ngroups <= 0 {
		return nil, invalidLayoutf("ngroups %d must be positive", ngroups)
	}
	if (ndevs-nspares)%ngroups != 0 {
		return nil, invalidLayoutf("%d non-spare drives do not divide into %d groups", ndevs-nspares, ngroups)
	}
	if nrows <= 0 {
		return nil, invalidLayoutf("nrows %d must be positive", nrows)
	}
	if r == nil {
		r = newRand()
	}
	m := &Map{
		uid:     genUUID(),
		ndevs:   ndevs,
		ngroups: ngroups,
		nspares: nspares,
		nrows:   nrows,
		groupsz: make([]int, ngroups),
		rows:    makeArr2DInt(nrows, ndevs),
	}
	groupsz := (ndevs - nspares) / ngroups
	for i := range m.groupsz {
		m.groupsz[i] = groupsz
	}
	for j := 0; j < ndevs; j++ {
		m.rows[0][j] = j
	}
	for i := 1; i < nrows; i++ {
		permuteDevs(m.rows[i-1], m.rows[i], r)
	}
	return m, nil
}

//UID returns the map's unique id
func (m *Map) UID() int64 {
	return m.uid
}

//DevNum returns the number of drives in the layout
func (m *Map) DevNum() int {
	return m.ndevs
}

//GroupNum returns the number of redundancy groups per row
func (m *Map) GroupNum() int {
	return m.ngroups
}

//SpareNum returns the number of hot-spare slots per row
func (m *Map) SpareNum() int {
	return m.nspares
}

//RowNum returns the number of rows
func (m *Map) RowNum() int {
	return m.nrows
}

//GroupSize returns the size of group g
func (m *Map) GroupSize(g int) int {
	return m.groupsz[g]
}

//Row returns a copy of row i, so callers cannot alias the row table
func (m *Map) Row(i int) []int {
	row := make([]int, m.ndevs)
	copy(row, m.rows[i])
	return row
}
