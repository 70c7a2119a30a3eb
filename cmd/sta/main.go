// Command sta analyzes a Verilog netlist and reports timing.
//
// Usage:
//
//	sta -netlist top.v [flags]
//
// Flags:
//
//	-netlist string
//	    Path to the Verilog netlist (required)
//	-constraints string
//	    Optional YAML constraints file
//	-tclk float
//	    Clock period in seconds (default 1.0)
//	-setup float
//	    Setup time in seconds (default 0.05)
//	-clock-to-q float
//	    Clock-to-Q delay in seconds (default 0.05)
//	-k int
//	    Number of edge-disjoint critical paths to extract (default 5)
//	-json
//	    Emit the full report as JSON instead of text
//
// Example:
//
//	sta -netlist benches/counter.v -tclk 0.5 -k 3
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yesoreyeram/neram/pkg/config"
	"github.com/yesoreyeram/neram/pkg/engine"
	"github.com/yesoreyeram/neram/pkg/types"
)

func main() {
	netlistPath := flag.String("netlist", "", "Path to the Verilog netlist")
	constraintsPath := flag.String("constraints", "", "Optional YAML constraints file")
	tclk := flag.Float64("tclk", 1.0, "Clock period in seconds")
	setup := flag.Float64("setup", 0.05, "Setup time in seconds")
	clockToQ := flag.Float64("clock-to-q", 0.05, "Clock-to-Q delay in seconds")
	k := flag.Int("k", 5, "Number of edge-disjoint critical paths to extract")
	jsonOut := flag.Bool("json", false, "Emit the full report as JSON")

	flag.Parse()

	if *netlistPath == "" {
		fmt.Fprintln(os.Stderr, "sta: -netlist is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	cfg.Tclk = *tclk
	cfg.Setup = *setup
	cfg.ClockToQ = *clockToQ
	cfg.MaxPaths = *k

	if *constraintsPath != "" {
		merged, err := config.LoadConstraints(*constraintsPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sta: %v\n", err)
			os.Exit(1)
		}
		cfg = merged
	}

	eng, err := engine.NewFromFile(*netlistPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sta: %v\n", err)
		os.Exit(1)
	}

	report, err := eng.Report(context.Background(), cfg.MaxPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sta: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "sta: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(eng, report, *netlistPath)
}

// printReport renders the text report: the netlist summary, the edge delay
// distribution, the aggregate slacks and the extracted paths.
func printReport(eng *engine.Engine, report *types.AnalysisReport, netlistPath string) {
	p := message.NewPrinter(language.English)

	p.Printf("Loaded DAG from %s\n", netlistPath)
	p.Printf("Nodes: %d, Edges: %d\n", report.Nets, report.Edges)
	p.Printf("Startpoints: %d, Endpoints: %d\n\n", len(report.Startpoints), len(report.Endpoints))

	printDelayDistribution(p, eng)

	p.Printf("=== STA results ===\n")
	p.Printf("WNS = %.6f s  TNS = %.6f s\n\n", report.Result.WNS, report.Result.TNS)

	p.Printf("Found %d critical path(s)\n", len(report.Paths))
	for i, path := range report.Paths {
		p.Printf("\nPath %d:\n", i+1)
		p.Printf("  Total delay = %.6f s\n", path.Delay)
		p.Printf("  Path WNS    = %.6f s\n", path.WNS)
		p.Printf("  Path TNS    = %.6f s\n", path.TNS)
		p.Printf("  Nodes: %d, Edges: %d\n", len(path.Nodes), len(path.Edges))
	}
}

// printDelayDistribution summarizes the edge delays the way a quick sanity
// pass over a netlist wants to see them: min, max, and a per-value count.
func printDelayDistribution(p *message.Printer, eng *engine.Engine) {
	edges := eng.Graph().Edges()
	if len(edges) == 0 {
		return
	}

	counts := make(map[float64]int)
	min, max := edges[0].Delay, edges[0].Delay
	for _, e := range edges {
		counts[e.Delay]++
		if e.Delay < min {
			min = e.Delay
		}
		if e.Delay > max {
			max = e.Delay
		}
	}

	delays := make([]float64, 0, len(counts))
	for d := range counts {
		delays = append(delays, d)
	}
	sort.Float64s(delays)

	p.Printf("Min edge delay: %.3f s\n", min)
	p.Printf("Max edge delay: %.3f s\n", max)
	p.Printf("Delay distribution (%d unique):\n", len(delays))
	for _, d := range delays {
		count := counts[d]
		pct := 100 * float64(count) / float64(len(edges))
		p.Printf("  %.3f s: %d edges (%.1f%%)\n", d, count, pct)
	}
	p.Println()
}
