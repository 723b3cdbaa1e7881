package draid

import (
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

//Statistic selects how per-combination loads aggregate into one score
type Statistic string

const (
	//Worst is the maximum MaxIOs over all fault combinations
	Worst Statistic = "Worst"
	//Mean is the arithmetic mean of MaxIOs over all fault combinations
	Mean Statistic = "Mean"
	//RMS is the root mean square of MaxIOs over all fault combinations
	RMS Statistic = "RMS"
)

func (s Statistic) String() string {
	return string(s)
}

type declusterOption struct {
	//parallel fans the combinations out over parallelism goroutines;
	//the score is identical either way since every combination is
	//simulated independently over the read-only row table
	parallel    bool
	parallelism int
}

var defaultDeclusterOption = &declusterOption{
	parallel:    false,
	parallelism: runtime.NumCPU(),
}

//DeclusterOption tweaks one evaluator call
type DeclusterOption func(*declusterOption)

//WithParallel makes the evaluator simulate fault combinations concurrently
func WithParallel() DeclusterOption {
	return func(o *declusterOption) {
		o.parallel = true
	}
}

//DeclusterResult carries the score plus the worst combination observed,
//for a reporting layer that wants to show where a candidate falls over
type DeclusterResult struct {
	//Score is the normalized decluster statistic, lower is flatter
	Score float64

	//WorstFaults is the fault combination that produced the heaviest load
	WorstFaults []int

	//WorstLoad is that combination's per-drive load table
	WorstLoad *ResilverLoad

	//Combinations is how many fault sets were evaluated
	Combinations int
}

//EvalDecluster scores how evenly this map spreads resilver I/O. It
//exhaustively injects every combination of faults distinct drive failures
//(faults must be 1 or 2), simulates each, and aggregates the per-combination
//MaxIOs under stat. The raw statistic is normalized by ngroups/nrows so maps
//built with different row counts stay comparable.
func (m *Map) EvalDecluster(stat Statistic, faults int, opts ...DeclusterOption) (float64, error) {
	res, err := m.EvalDeclusterResult(stat, faults, opts...)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

//EvalDeclusterResult is EvalDecluster plus worst-combination diagnostics
func (m *Map) EvalDeclusterResult(stat Statistic, faults int, opts ...DeclusterOption) (*DeclusterResult, error) {
	switch stat {
	case Worst, Mean, RMS:
	default:
		return nil, errInvalidStatistic
	}
	if faults != 1 && faults != 2 {
		return nil, errInvalidFaultCount
	}
	opt := *defaultDeclusterOption
	for _, o := range opts {
		o(&opt)
	}

	var agg declusterAgg
	var err error
	if opt.parallel {
		err = m.evalCombinationsParallel(faults, opt.parallelism, &agg)
	} else {
		err = m.evalCombinations(faults, &agg)
	}
	if err != nil {
		return nil, err
	}

	val := 0.0
	switch stat {
	case Worst:
		val = float64(agg.maxIOs)
	case Mean:
		val = float64(agg.sum) / float64(agg.count)
	case RMS:
		val = math.Sqrt(float64(agg.sumsq) / float64(agg.count))
	}
	worst, err := m.EvalResilver(agg.worst)
	if err != nil {
		return nil, err
	}
	return &DeclusterResult{
		Score:        val / float64(m.nrows) * float64(m.ngroups),
		WorstFaults:  agg.worst,
		WorstLoad:    worst,
		Combinations: agg.count,
	}, nil
}

//declusterAgg accumulates the running sum, sum of squares and maximum of
//the MaxIOs samples, and remembers which fault set produced the maximum
type declusterAgg struct {
	sum    int64
	sumsq  int64
	maxIOs int
	count  int
	worst  []int
}

func (a *declusterAgg) add(ios int, faults []int) {
	a.sum += int64(ios)
	a.sumsq += int64(ios) * int64(ios)
	a.count++
	if a.worst == nil || ios > a.maxIOs {
		a.maxIOs = ios
		a.worst = faults
	}
}

//merge folds b into a, keeping the lexicographically first worst set on a
//tie so parallel runs reduce to the same answer as sequential ones
func (a *declusterAgg) merge(b *declusterAgg) {
	a.sum += b.sum
	a.sumsq += b.sumsq
	a.count += b.count
	if b.worst == nil {
		return
	}
	if a.worst == nil || b.maxIOs > a.maxIOs ||
		(b.maxIOs == a.maxIOs && lessFaults(b.worst, a.worst)) {
		a.maxIOs = b.maxIOs
		a.worst = b.worst
	}
}

func lessFaults(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

//evalCombinations walks the fault combinations lazily, loop counters are
//the only enumeration state
func (m *Map) evalCombinations(faults int, agg *declusterAgg) error {
	for f1 := 0; f1 < m.ndevs; f1++ {
		if faults < 2 {
			load, err := m.EvalResilver([]int{f1})
			if err != nil {
				return err
			}
			agg.add(load.MaxIOs, []int{f1})
			continue
		}
		for f2 := f1 + 1; f2 < m.ndevs; f2++ {
			load, err := m.EvalResilver([]int{f1, f2})
			if err != nil {
				return err
			}
			agg.add(load.MaxIOs, []int{f1, f2})
		}
	}
	return nil
}

//evalCombinationsParallel shards the combination space by first fault over
//an errgroup; each goroutine owns a private aggregate, merged after Wait
func (m *Map) evalCombinationsParallel(faults, parallelism int, agg *declusterAgg) error {
	g := new(errgroup.Group)
	parts := make([]declusterAgg, parallelism)
	var next int64

	for w := 0; w < parallelism; w++ {
		part := &parts[w]
		g.Go(func() error {
			for {
				f1 := int(atomic.AddInt64(&next, 1)) - 1
				if f1 >= m.ndevs {
					return nil
				}
				if faults < 2 {
					load, err := m.EvalResilver([]int{f1})
					if err != nil {
						return err
					}
					part.add(load.MaxIOs, []int{f1})
					continue
				}
				for f2 := f1 + 1; f2 < m.ndevs; f2++ {
					load, err := m.EvalResilver([]int{f1, f2})
					if err != nil {
						return err
					}
					part.add(load.MaxIOs, []int{f1, f2})
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range parts {
		agg.merge(&parts[i])
	}
	return nil
}
