// Command draid ranks candidate declustered-RAID permutation layouts.
//
// It loads a yaml search plan, scores every candidate and prints them
// ranked by decluster score, flattest rebuild load first. All algorithmic
// work lives in the draid package; this is only the adapter around it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/DurantVivado/Draid"
	"github.com/DurantVivado/Draid/codec"
	"github.com/DurantVivado/Draid/xlog"
)

var (
	planPath   = flag.String("plan", "examples/plan.yaml", "path of the yaml search plan")
	format     = flag.String("format", "table", "report format: table, json or gob")
	outPath    = flag.String("o", "", "write the encoded report to this file instead of stdout")
	cpuProfile = flag.Bool("cpuprofile", false, "profile the run with pkg/profile")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if !*verbose {
		xlog.SetLevel(xlog.WarnLevel, os.Stdout)
	}

	plan, err := draid.LoadSearchPlan(*planPath)
	if err != nil {
		xlog.Fatal(err)
	}
	candidates, err := draid.Search(plan)
	if err != nil {
		xlog.Fatal(err)
	}
	report := draid.NewReport(plan, candidates)

	switch *format {
	case "table":
		printTable(report)
	case "json", "gob":
		if err := encodeReport(report, *format, *outPath); err != nil {
			xlog.Fatal(err)
		}
	default:
		xlog.Fatalf("unknown format %q", *format)
	}
}

//printTable renders the ranked candidates and, for the winner, the
//per-drive load of its worst fault set, normalized per row and group the
//same way the score is
func printTable(report *draid.Report) {
	fmt.Printf("statistic:%s faults:%d\n", report.Statistic, report.Faults)
	fmt.Printf("%-4s %-16s %8s  %s\n", "rank", "name", "score", "worst faults")
	for i, e := range report.Entries {
		fmt.Printf("%-4d %-16s %8.4f  %v\n", i+1, e.Name, e.Score, e.WorstFaults)
	}
	if len(report.Entries) == 0 {
		return
	}
	best := report.Entries[0]
	norm := float64(best.Config.GroupNum) / float64(best.Config.RowNum)
	if best.Config.Expand {
		norm /= float64(best.Config.DevNum)
	}
	fmt.Printf("\nworst-case load of %s:\nReads:  ", best.Name)
	for _, r := range best.Reads {
		fmt.Printf("%6.3f", float64(r)*norm)
	}
	fmt.Printf("\nWrites: ")
	for _, w := range best.Writes {
		fmt.Printf("%6.3f", float64(w)*norm)
	}
	fmt.Println()
}

func encodeReport(report *draid.Report, format, outPath string) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	typ := codec.JsonType
	if format == "gob" {
		typ = codec.GobType
	}
	cc := codec.NewCodecFuncMap[typ](out)
	header := &codec.Header{
		Tool:      "draid",
		Statistic: report.Statistic.String(),
		Faults:    report.Faults,
		Entries:   len(report.Entries),
	}
	if err := cc.WriteHeader(header); err != nil {
		return err
	}
	return cc.WriteBody(report)
}
