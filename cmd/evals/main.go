// Command evals runs the LowCode MCP tool selection evaluations.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// Suites are checked against the registered tool catalogue and scored with
// the keyword baseline selector. To evaluate a model, implement
// evals.ToolSelector in your LLM harness and call the evals package directly.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olgasafonova/lowcodeapi-go/evals"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to run: tool_selection, confusion_pairs, arguments, or all")
	verbose := flag.Bool("verbose", false, "Show per-test results")
	flag.Parse()

	os.Exit(run(os.Stdout, *dir, *suite, *verbose))
}

// run loads the suites, prints a report to w and returns the exit code
func run(w io.Writer, dir, suite string, verbose bool) int {
	switch suite {
	case "tool_selection", "confusion_pairs", "arguments", "all":
	default:
		fmt.Fprintf(w, "Unknown suite: %s\n", suite)
		return 2
	}

	ts, cp, as, err := evals.LoadAllEvals(dir)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "LowCode MCP Server - Evaluation Framework")
	fmt.Fprintln(w, "=========================================")

	if unknown := evals.UnknownTools(evals.KnownTools(), ts, cp, as); len(unknown) > 0 {
		fmt.Fprintf(w, "\nSuites reference unregistered tools: %s\n", strings.Join(unknown, ", "))
		return 1
	}

	selector := evals.NewKeywordSelector(nil)
	failed := 0

	if suite == "tool_selection" || suite == "all" {
		metrics, results := evals.EvaluateToolSelection(ts, selector)
		fmt.Fprint(w, evals.FormatMetrics(metrics, ts.Name))
		printCoverage(w, ts)
		if verbose {
			for _, r := range results {
				fmt.Fprintf(w, "  %s [%s] %s -> %s\n", mark(r.Passed), r.TestID, r.Input, r.ActualTool)
			}
		}
		failed += metrics.FailedTests
	}

	if suite == "confusion_pairs" || suite == "all" {
		metrics, results := evals.EvaluateConfusionPairs(cp, selector)
		fmt.Fprint(w, evals.FormatMetrics(metrics, cp.Name))
		if verbose {
			for _, r := range results {
				fmt.Fprintf(w, "  %s [%s] %s -> %s (%s)\n", mark(r.Passed), r.PairID, r.TestInput, r.ActualTool, r.Reason)
			}
		}
		failed += metrics.FailedTests
	}

	if suite == "arguments" || suite == "all" {
		metrics, results := evals.EvaluateArguments(as, selector)
		fmt.Fprint(w, evals.FormatMetrics(metrics, as.Name))
		if verbose {
			for _, r := range results {
				fmt.Fprintf(w, "  %s [%s] %s -> %s\n", mark(r.Passed), r.TestID, r.Input, r.ActualTool)
			}
		}
		failed += metrics.FailedTests
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// printCoverage lists registered tools that no tool selection test expects
func printCoverage(w io.Writer, ts *evals.ToolSelectionSuite) {
	covered := make(map[string]bool)
	for _, test := range ts.Tests {
		covered[test.ExpectedTool] = true
	}

	var missing []string
	for name := range evals.KnownTools() {
		if !covered[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		fmt.Fprintln(w, "\nEvery registered tool has a selection test.")
		return
	}
	sort.Strings(missing)
	fmt.Fprintf(w, "\nTools without selection tests: %s\n", strings.Join(missing, ", "))
}

func mark(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
