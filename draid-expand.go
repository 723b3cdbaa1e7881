package draid

//Expand develops a base map into a larger one by applying every cyclic
//drive-label rotation to every base row, multiplying the row count by
//ndevs. Relabeling drives by a fixed rotation preserves the declustering
//structure, so each base permutation yields ndevs evaluatable rows without
//a fresh random draw. The receiver is never mutated.
func (m *Map) Expand() *Map {
	d := &Map{
		uid:     genUUID(),
		ndevs:   m.ndevs,
		ngroups: m.ngroups,
		nspares: m.nspares,
		nrows:   m.nrows * m.ndevs,
		groupsz: make([]int, m.ngroups),
		rows:    makeArr2DInt(m.nrows*m.ndevs, m.ndevs),
	}
	copy(d.groupsz, m.groupsz)
	for base := 0; base < m.nrows; base++ {
		for add := 0; add < m.ndevs; add++ {
			drow := d.rows[base*m.ndevs+add]
			for j := 0; j < m.ndevs; j++ {
				drow[j] = (m.rows[base][j] + add) % m.ndevs
			}
		}
	}
	return d
}
