package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"macro-scenario-risk/internal/analysis"
	"macro-scenario-risk/internal/config"
	"macro-scenario-risk/internal/data"
	"macro-scenario-risk/internal/model"
	"macro-scenario-risk/internal/moments"
	"macro-scenario-risk/internal/risk"
	"macro-scenario-risk/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml [--out results/risk.csv]")
	fmt.Println("  cli report --distribution results/baseline.csv --confidence 0.05")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate runs baseline and stressed Monte Carlo passes and prints VaR/CVaR")
	fmt.Println("  - report re-analyzes an existing distribution CSV")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: risk report CSV path (overrides config output.report_path)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	panel, err := loadPanel(cfg.Panel.Path)
	if err != nil {
		fatal(err)
	}

	constants := cfg.TaylorConstants()
	seed := cfg.Seed()
	engine := simulate.New()

	distributions := map[model.Scenario][]float64{}
	rows := make([]data.ScenarioReportRow, 0, len(cfg.Scenarios))

	for _, scenario := range cfg.ScenarioList() {
		m, err := moments.Estimate(panel, scenario)
		if err != nil {
			fatal(err)
		}
		results, err := engine.Run(cfg.Simulation.Iterations, constants, m, seed)
		if err != nil {
			fatal(err)
		}
		rep, err := risk.Analyze(results, cfg.Simulation.ConfidenceLevel)
		if err != nil {
			fatal(err)
		}

		distributions[scenario] = results
		rows = append(rows, data.ScenarioReportRow{
			Scenario: scenario,
			Summary:  analysis.Summarize(results),
			Risk:     rep,
		})

		if cfg.Output.DistributionDir != "" {
			if err := os.MkdirAll(cfg.Output.DistributionDir, 0o755); err != nil {
				fatal(err)
			}
			path := filepath.Join(cfg.Output.DistributionDir, string(scenario)+".csv")
			if err := data.WriteDistributionCSV(path, scenario, results); err != nil {
				fatal(err)
			}
			fmt.Printf("Wrote %d draws to %s\n", len(results), path)
		}
	}

	printReport(rows, seed, cfg.Simulation.Iterations)

	if b, ok := distributions[model.ScenarioBaseline]; ok {
		if s, ok := distributions[model.ScenarioStressed]; ok {
			cmp := analysis.Compare(b, s)
			fmt.Printf("\nStressed vs baseline: mean shift %+.4f, IQR ratio %.3f\n", cmp.MeanShift, cmp.IQRRatio)
		}
	}

	reportPath := cfg.Output.ReportPath
	if *outPath != "" {
		reportPath = *outPath
	}
	if reportPath != "" {
		if err := os.MkdirAll(filepath.Dir(reportPath), 0o755); err != nil {
			fatal(err)
		}
		if err := data.WriteReportCSV(reportPath, rows); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote risk report to %s\n", reportPath)
	}
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	distPath := fs.String("distribution", "", "Path to a distribution CSV written by simulate")
	confidence := fs.Float64("confidence", 0.05, "Two-sided confidence level in (0,1)")
	_ = fs.Parse(args)

	if *distPath == "" {
		fmt.Println("--distribution is required")
		os.Exit(2)
	}

	scenario, results, err := data.LoadDistributionCSV(*distPath)
	if err != nil {
		fatal(err)
	}
	rep, err := risk.Analyze(results, *confidence)
	if err != nil {
		fatal(err)
	}

	rows := []data.ScenarioReportRow{{
		Scenario: scenario,
		Summary:  analysis.Summarize(results),
		Risk:     rep,
	}}
	printReport(rows, 0, len(results))
}

func printReport(rows []data.ScenarioReportRow, seed uint64, iterations int) {
	fmt.Printf("Implied inflation distributions (N=%d, seed=%d)\n\n", iterations, seed)
	fmt.Printf("%-10s %-9s %-9s %-9s %-9s %-9s %-10s %-10s %-10s %-10s\n",
		"scenario", "min", "q1", "median", "mean", "max", "lowerVaR", "upperVaR", "lowerCVaR", "upperCVaR")
	for _, r := range rows {
		fmt.Printf("%-10s %-9.4f %-9.4f %-9.4f %-9.4f %-9.4f %-10.4f %-10.4f %-10s %-10s\n",
			r.Scenario,
			r.Summary.Min,
			r.Summary.Q1,
			r.Summary.Median,
			r.Summary.Mean,
			r.Summary.Max,
			r.Risk.LowerVaR,
			r.Risk.UpperVaR,
			fmtCVaR(r.Risk.LowerCVaR, r.Risk.LowerCVaRValid),
			fmtCVaR(r.Risk.UpperCVaR, r.Risk.UpperCVaRValid),
		)
	}
}

func fmtCVaR(v float64, valid bool) string {
	if !valid {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

func loadPanel(path string) (*model.HistoricalPanel, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return data.LoadPanelJSON(path)
	}
	return data.LoadPanelCSV(path)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
