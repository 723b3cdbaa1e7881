package draid

//ReportEntry is the serializable slice of one scored candidate
type ReportEntry struct {
	Name        string          `json:"name"`
	UID         int64           `json:"uid"`
	Config      CandidateConfig `json:"config"`
	Score       float64         `json:"score"`
	WorstFaults []int           `json:"worstFaults"`

	//Reads and Writes are the per-drive load of the worst fault set
	Reads  []int `json:"reads"`
	Writes []int `json:"writes"`
}

//Report is the serializable outcome of a search, ready for a codec
type Report struct {
	Statistic Statistic     `json:"statistic"`
	Faults    int           `json:"faults"`
	Entries   []ReportEntry `json:"entries"`
}

//NewReport flattens ranked candidates into a Report
func NewReport(plan *SearchPlan, candidates []*Candidate) *Report {
	rep := &Report{
		Statistic: plan.Statistic,
		Faults:    plan.Faults,
		Entries:   make([]ReportEntry, 0, len(candidates)),
	}
	for _, c := range candidates {
		load := c.Result.WorstLoad
		reads := make([]int, load.DevNum())
		writes := make([]int, load.DevNum())
		for dev := 0; dev < load.DevNum(); dev++ {
			reads[dev] = load.Reads(dev)
			writes[dev] = load.Writes(dev)
		}
		rep.Entries = append(rep.Entries, ReportEntry{
			Name:        c.Name,
			UID:         c.UID,
			Config:      c.Config,
			Score:       c.Score(),
			WorstFaults: c.Result.WorstFaults,
			Reads:       reads,
			Writes:      writes,
		})
	}
	return rep
}
