package draid

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSearchPlan(t *testing.T) {
	path := writePlanFile(t, `
statistic: RMS
faults: 2
seed: 7
candidates:
  - name: a
    ndevs: 12
    ngroups: 2
    nspares: 2
    nrows: 8
  - name: b
    ndevs: 12
    ngroups: 2
    nspares: 2
    nrows: 8
    expand: true
`)
	plan, err := LoadSearchPlan(path)
	require.NoError(t, err)
	require.Equal(t, RMS, plan.Statistic)
	require.Equal(t, 2, plan.Faults)
	require.NotNil(t, plan.Seed)
	require.Equal(t, int64(7), *plan.Seed)
	require.Len(t, plan.Candidates, 2)
	require.True(t, plan.Candidates[1].Expand)
}

func TestLoadSearchPlan_Defaults(t *testing.T) {
	path := writePlanFile(t, `
candidates:
  - ndevs: 6
    ngroups: 2
    nspares: 0
    nrows: 4
`)
	plan, err := LoadSearchPlan(path)
	require.NoError(t, err)
	require.Equal(t, Mean, plan.Statistic)
	require.Equal(t, 1, plan.Faults)
	require.Nil(t, plan.Seed)
}

func TestSearch_RanksAscending(t *testing.T) {
	seed := int64(11)
	plan := &SearchPlan{
		Statistic: Mean,
		Faults:    1,
		Seed:      &seed,
		Candidates: []CandidateConfig{
			{Name: "small", DevNum: 10, GroupNum: 2, SpareNum: 2, RowNum: 8},
			{Name: "developed", DevNum: 10, GroupNum: 2, SpareNum: 2, RowNum: 8, Expand: true},
			{Name: "tall", DevNum: 10, GroupNum: 2, SpareNum: 2, RowNum: 64},
		},
	}
	ranked, err := Search(plan)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		require.True(t, ranked[i-1].Score() <= ranked[i].Score())
	}
	seen := map[int64]bool{}
	for _, c := range ranked {
		require.NotNil(t, c.Result)
		require.False(t, seen[c.UID], "duplicate uid")
		seen[c.UID] = true
	}
}

func TestSearch_DeterministicUnderSeed(t *testing.T) {
	seed := int64(3)
	plan := &SearchPlan{
		Statistic: Mean,
		Faults:    1,
		Seed:      &seed,
		Candidates: []CandidateConfig{
			{Name: "a", DevNum: 12, GroupNum: 2, SpareNum: 2, RowNum: 16},
			{Name: "b", DevNum: 12, GroupNum: 5, SpareNum: 2, RowNum: 16},
		},
	}
	first, err := Search(plan)
	require.NoError(t, err)
	second, err := Search(plan)
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Name, second[i].Name)
		require.Equal(t, first[i].Score(), second[i].Score())
	}
}

func TestSearch_EmptyPlan(t *testing.T) {
	_, err := Search(&SearchPlan{Statistic: Mean, Faults: 1})
	require.Error(t, err)
}

func TestSearch_PropagatesLayoutErrors(t *testing.T) {
	plan := &SearchPlan{
		Statistic: Mean,
		Faults:    1,
		Candidates: []CandidateConfig{
			{Name: "broken", DevNum: 11, GroupNum: 5, SpareNum: 2, RowNum: 4},
		},
	}
	_, err := Search(plan)
	require.Error(t, err)
}

func TestNewReport(t *testing.T) {
	seed := int64(5)
	plan := &SearchPlan{
		Statistic: Worst,
		Faults:    1,
		Seed:      &seed,
		Candidates: []CandidateConfig{
			{Name: "only", DevNum: 10, GroupNum: 2, SpareNum: 2, RowNum: 8},
		},
	}
	ranked, err := Search(plan)
	require.NoError(t, err)
	rep := NewReport(plan, ranked)
	require.Equal(t, Worst, rep.Statistic)
	require.Len(t, rep.Entries, 1)
	e := rep.Entries[0]
	require.Equal(t, "only", e.Name)
	require.Len(t, e.Reads, 10)
	require.Len(t, e.Writes, 10)
	require.Equal(t, ranked[0].Score(), e.Score)
}
