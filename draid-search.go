package draid

import (
	"io/ioutil"
	"math/rand"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/DurantVivado/Draid/xlog"
)

//CandidateConfig describes one layout to generate and score
type CandidateConfig struct {
	//Name labels the candidate in reports, defaults to its uid
	Name string `yaml:"name" json:"name"`

	DevNum   int `yaml:"ndevs" json:"ndevs"`
	GroupNum int `yaml:"ngroups" json:"ngroups"`
	SpareNum int `yaml:"nspares" json:"nspares"`
	RowNum   int `yaml:"nrows" json:"nrows"`

	//Expand develops the base map with every cyclic rotation before scoring
	Expand bool `yaml:"expand" json:"expand"`
}

//SearchPlan is a batch of candidate layouts to rank under one statistic.
//Plans are written by hand in yaml, see examples/plan.yaml
type SearchPlan struct {
	Statistic  Statistic         `yaml:"statistic"`
	Faults     int               `yaml:"faults"`
	Seed       *int64            `yaml:"seed"`
	Candidates []CandidateConfig `yaml:"candidates"`
}

//LoadSearchPlan parses a yaml plan file
func LoadSearchPlan(path string) (*SearchPlan, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	plan := &SearchPlan{}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, err
	}
	if plan.Statistic == "" {
		plan.Statistic = Mean
	}
	if plan.Faults == 0 {
		plan.Faults = 1
	}
	return plan, nil
}

//Candidate is one generated and scored layout
type Candidate struct {
	UID    int64
	Name   string
	Config CandidateConfig
	Map    *Map
	Result *DeclusterResult
}

//Score is the candidate's normalized decluster score, lower is better
func (c *Candidate) Score() float64 {
	return c.Result.Score
}

//Search generates every candidate in the plan, scores them concurrently
//and returns them ranked ascending by score, the flattest rebuild load
//first. With a plan seed the whole run is reproducible: candidate i draws
//from its own generator seeded with seed+i.
func Search(plan *SearchPlan) ([]*Candidate, error) {
	if len(plan.Candidates) == 0 {
		return nil, errEmptyPlan
	}
	candidates := make([]*Candidate, len(plan.Candidates))
	for i, cfg := range plan.Candidates {
		var r *rand.Rand
		if plan.Seed != nil {
			r = rand.New(rand.NewSource(*plan.Seed + int64(i)))
		}
		m, err := NewMap(cfg.DevNum, cfg.GroupNum, cfg.SpareNum, cfg.RowNum, r)
		if err != nil {
			return nil, err
		}
		if cfg.Expand {
			m = m.Expand()
		}
		name := cfg.Name
		if name == "" {
			name = strconv.FormatInt(m.UID(), 10)
		}
		candidates[i] = &Candidate{
			UID:    m.UID(),
			Name:   name,
			Config: cfg,
			Map:    m,
		}
	}

	g := new(errgroup.Group)
	for _, c := range candidates {
		c := c
		g.Go(func() error {
			res, err := c.Map.EvalDeclusterResult(plan.Statistic, plan.Faults)
			if err != nil {
				return err
			}
			c.Result = res
			xlog.Infof("candidate %s scored %.4f over %d fault sets",
				c.Name, res.Score, res.Combinations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score() < candidates[j].Score()
	})
	return candidates, nil
}
