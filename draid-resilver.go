package draid

import "fmt"

//ResilverLoad records the rebuild I/O a fault set would place on every
//drive, summed over all rows: reads against surviving group members and
//writes against the spare drives standing in for the broken ones. The core
//never formats it; a reporting layer reads it through the accessors.
type ResilverLoad struct {
	reads  []int
	writes []int

	//MaxReads is the heaviest per-drive read count
	MaxReads int

	//MaxWrites is the heaviest per-drive write count
	MaxWrites int

	//MaxIOs is the heaviest per-drive reads+writes total, the figure the
	//decluster score is built from
	MaxIOs int
}

//Reads returns the read count accumulated on drive dev
func (l *ResilverLoad) Reads(dev int) int {
	return l.reads[dev]
}

//Writes returns the write count accumulated on drive dev
func (l *ResilverLoad) Writes(dev int) int {
	return l.writes[dev]
}

//DevNum returns the number of drives covered by the table
func (l *ResilverLoad) DevNum() int {
	return len(l.reads)
}

//EvalResilver simulates rebuilding the drives in brokens and returns the
//per-drive load table.
//
//For each row, each group holding a broken drive is resilvered: every
//surviving member is read once, and every broken member is rebuilt onto
//the next non-broken spare slot of that row, scanned in ascending order
//from the head of the spare chunk for each group.
//Groups without failures cost nothing. The fault set is call-local, so any
//number of simulations may run against the same Map concurrently.
func (m *Map) EvalResilver(brokens []int) (*ResilverLoad, error) {
	if len(brokens) > m.nspares {
		return nil, fmt.Errorf("%w: %d faults but only %d spare slots per row",
			ErrInsufficientSpares, len(brokens), m.nspares)
	}
	isBroken := make([]bool, m.ndevs)
	for _, dev := range brokens {
		if dev < 0 || dev >= m.ndevs {
			return nil, fmt.Errorf("draid: broken drive %d out of range [0,%d)", dev, m.ndevs)
		}
		if isBroken[dev] {
			return nil, fmt.Errorf("%w: drive %d", errDuplicateFault, dev)
		}
		isBroken[dev] = true
	}

	load := &ResilverLoad{
		reads:  make([]int, m.ndevs),
		writes: make([]int, m.ndevs),
	}
	for i := 0; i < m.nrows; i++ {
		row := m.rows[i]
		index := 0
		for j := 0; j < m.ngroups; j++ {
			groupsz := m.groupsz[j]
			fix := false
			for k := 0; k < groupsz && !fix; k++ {
				fix = isBroken[row[index+k]]
			}
			if !fix {
				index += groupsz
				continue
			}
			//the spare scan restarts at the head of the spare chunk for
			//every group, each group draws its stand-ins independently
			spareIndex := m.ndevs - m.nspares
			for k := 0; k < groupsz; k++ {
				dev := row[index+k]
				if !isBroken[dev] {
					load.reads[dev]++
					continue
				}
				//rebuild dev onto the next usable spare of this row
				for spareIndex < m.ndevs && isBroken[row[spareIndex]] {
					spareIndex++
				}
				if spareIndex >= m.ndevs {
					return nil, fmt.Errorf("%w: row %d exhausted its spares", ErrInsufficientSpares, i)
				}
				load.writes[row[spareIndex]]++
				spareIndex++
			}
			index += groupsz
		}
	}

	for dev := 0; dev < m.ndevs; dev++ {
		load.MaxReads = maxInt(load.MaxReads, load.reads[dev])
		load.MaxWrites = maxInt(load.MaxWrites, load.writes[dev])
		load.MaxIOs = maxInt(load.MaxIOs, load.reads[dev]+load.writes[dev])
	}
	return load, nil
}
