// Package evals provides an evaluation framework for LowCode MCP tool selection.
// Suites are JSON files describing natural language requests and the tool
// (and arguments) an agent should pick for them.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/olgasafonova/lowcodeapi-go/tools"
)

// Suite file names inside an eval directory
const (
	ToolSelectionFile = "tool_selection.json"
	ConfusionPairFile = "confusion_pairs.json"
	ArgumentFile      = "argument_correctness.json"
)

// ToolSelectionTest is one request with the tool expected to serve it
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite is a set of tool selection tests
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest is one request that must resolve to one tool of a pair
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair groups tools that agents tend to mix up
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite is a set of confusion pairs
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ArgumentTest checks the arguments extracted for a tool call
type ArgumentTest struct {
	ID            string         `json:"id"`
	Tool          string         `json:"tool"`
	Input         string         `json:"input"`
	RequiredArgs  []string       `json:"required_args"`
	ExpectedArgs  map[string]any `json:"expected_args"`
	ForbiddenArgs []string       `json:"forbidden_args"`
	ArgNotes      string         `json:"arg_notes,omitempty"`
}

// ArgumentSuite is a set of argument tests
type ArgumentSuite struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Tests       []ArgumentTest `json:"tests"`
}

// ToolSelectionResult is the outcome of one tool selection test
type ToolSelectionResult struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// ConfusionPairResult is the outcome of one confusion pair test
type ConfusionPairResult struct {
	PairID       string
	TestInput    string
	ExpectedTool string
	ActualTool   string
	Reason       string
	Passed       bool
}

// ArgumentResult is the outcome of one argument test
type ArgumentResult struct {
	TestID       string
	Tool         string
	ActualTool   string
	Input        string
	Passed       bool
	MissingArgs  []string
	WrongArgs    map[string]string // arg -> "expected X, got Y"
	ForbiddenHit []string
}

// EvalMetrics aggregates results for a suite
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64 // PassedTests / TotalTests
	ByCategory    map[string]*CategoryMetrics
	ByTool        map[string]*ToolMetrics
	FailedDetails []string
}

// CategoryMetrics counts results per category
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// ToolMetrics counts results per tool
type ToolMetrics struct {
	ExpectedCount  int
	SelectedCount  int
	CorrectCount   int
	FalsePositives int
	FalseNegatives int
}

// ToolSelector picks a tool and its arguments for a natural language request.
// An LLM harness or the KeywordSelector baseline can implement it.
type ToolSelector interface {
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

func newMetrics() *EvalMetrics {
	return &EvalMetrics{
		ByCategory: make(map[string]*CategoryMetrics),
		ByTool:     make(map[string]*ToolMetrics),
	}
}

func (m *EvalMetrics) category(name string) *CategoryMetrics {
	if m.ByCategory[name] == nil {
		m.ByCategory[name] = &CategoryMetrics{}
	}
	return m.ByCategory[name]
}

func (m *EvalMetrics) tool(name string) *ToolMetrics {
	if m.ByTool[name] == nil {
		m.ByTool[name] = &ToolMetrics{}
	}
	return m.ByTool[name]
}

// record updates the pass/fail counters for one test
func (m *EvalMetrics) record(category string, passed bool, detail string) {
	m.TotalTests++
	c := m.category(category)
	c.Total++
	if passed {
		m.PassedTests++
		c.Passed++
		return
	}
	m.FailedTests++
	c.Failed++
	m.FailedDetails = append(m.FailedDetails, detail)
}

func (m *EvalMetrics) finish() {
	if m.TotalTests > 0 {
		m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
	}
}

func loadJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &v, nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	return loadJSON[ToolSelectionSuite](path)
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	return loadJSON[ConfusionPairSuite](path)
}

// LoadArgumentSuite loads argument tests from a JSON file
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	return loadJSON[ArgumentSuite](path)
}

// LoadAllEvals loads all three suites from a directory
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	toolSelection, err := LoadToolSelectionSuite(filepath.Join(dir, ToolSelectionFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}
	confusionPairs, err := LoadConfusionPairSuite(filepath.Join(dir, ConfusionPairFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}
	arguments, err := LoadArgumentSuite(filepath.Join(dir, ArgumentFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading arguments: %w", err)
	}
	return toolSelection, confusionPairs, arguments, nil
}

// KnownTools returns the names of every tool the MCP server registers
func KnownTools() map[string]bool {
	known := make(map[string]bool, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}
	return known
}

// UnknownTools lists tool names referenced by the suites that are missing
// from known. Nil suites are skipped.
func UnknownTools(known map[string]bool, ts *ToolSelectionSuite, cp *ConfusionPairSuite, as *ArgumentSuite) []string {
	seen := make(map[string]bool)
	check := func(name string) {
		if name != "" && !known[name] {
			seen[name] = true
		}
	}

	if ts != nil {
		for _, test := range ts.Tests {
			check(test.ExpectedTool)
			for _, name := range test.NotTools {
				check(name)
			}
		}
	}
	if cp != nil {
		for _, pair := range cp.Pairs {
			for _, name := range pair.Tools {
				check(name)
			}
			for _, test := range pair.Tests {
				check(test.Expected)
			}
		}
	}
	if as != nil {
		for _, test := range as.Tests {
			check(test.Tool)
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// EvaluateToolSelection runs tool selection tests against a selector
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*EvalMetrics, []ToolSelectionResult) {
	metrics := newMetrics()
	var results []ToolSelectionResult

	for _, test := range suite.Tests {
		metrics.tool(test.ExpectedTool).ExpectedCount++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)
		result := ToolSelectionResult{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}
		fail := func(format string, args ...any) {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
		}

		if err != nil {
			fail("selector error: %v", err)
		}

		metrics.tool(actualTool).SelectedCount++
		if actualTool == test.ExpectedTool {
			metrics.tool(test.ExpectedTool).CorrectCount++
		} else {
			fail("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool)
			metrics.tool(test.ExpectedTool).FalseNegatives++
			metrics.tool(actualTool).FalsePositives++
		}

		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				fail("selected forbidden tool: %s", forbidden)
			}
		}

		for key, expected := range test.ExpectedArgs {
			actual, ok := actualArgs[key]
			switch {
			case !ok:
				fail("missing arg %s (expected %v)", key, expected)
			case !compareValues(expected, actual):
				fail("wrong arg %s: expected %v, got %v", key, expected, actual)
			}
		}

		metrics.record(test.Category, result.Passed,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

// EvaluateConfusionPairs runs confusion pair tests against a selector.
// Each pair ID is reported as its own category.
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) (*EvalMetrics, []ConfusionPairResult) {
	metrics := newMetrics()
	var results []ConfusionPairResult

	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			metrics.tool(test.Expected).ExpectedCount++

			actualTool, _, err := selector.SelectTool(test.Input)
			result := ConfusionPairResult{
				PairID:       pair.ID,
				TestInput:    test.Input,
				ExpectedTool: test.Expected,
				ActualTool:   actualTool,
				Reason:       test.Reason,
				Passed:       err == nil && actualTool == test.Expected,
			}

			metrics.tool(actualTool).SelectedCount++
			if result.Passed {
				metrics.tool(test.Expected).CorrectCount++
			} else {
				metrics.tool(test.Expected).FalseNegatives++
				metrics.tool(actualTool).FalsePositives++
			}

			metrics.record(pair.ID, result.Passed,
				fmt.Sprintf("[%s] %s: expected %s, got %s (%s)",
					pair.ID, test.Input, test.Expected, actualTool, test.Reason))
			results = append(results, result)
		}
	}

	metrics.finish()
	return metrics, results
}

// EvaluateArguments runs argument tests against a selector. A test whose
// tool was not selected fails without its arguments being inspected.
func EvaluateArguments(suite *ArgumentSuite, selector ToolSelector) (*EvalMetrics, []ArgumentResult) {
	metrics := newMetrics()
	var results []ArgumentResult

	for _, test := range suite.Tests {
		actualTool, actualArgs, err := selector.SelectTool(test.Input)
		result := ArgumentResult{
			TestID:     test.ID,
			Tool:       test.Tool,
			ActualTool: actualTool,
			Input:      test.Input,
			Passed:     err == nil && actualTool == test.Tool,
			WrongArgs:  make(map[string]string),
		}

		var details []string
		if err != nil {
			details = append(details, fmt.Sprintf("selector error: %v", err))
		} else if actualTool != test.Tool {
			details = append(details, fmt.Sprintf("wrong tool: expected %s, got %s", test.Tool, actualTool))
		} else {
			for _, name := range test.RequiredArgs {
				if _, ok := actualArgs[name]; !ok {
					result.MissingArgs = append(result.MissingArgs, name)
				}
			}
			for key, expected := range test.ExpectedArgs {
				actual, ok := actualArgs[key]
				if !ok {
					if !contains(result.MissingArgs, key) {
						result.MissingArgs = append(result.MissingArgs, key)
					}
				} else if !compareValues(expected, actual) {
					result.WrongArgs[key] = fmt.Sprintf("expected %v, got %v", expected, actual)
				}
			}
			for _, forbidden := range test.ForbiddenArgs {
				if _, ok := actualArgs[forbidden]; ok {
					result.ForbiddenHit = append(result.ForbiddenHit, forbidden)
				}
			}

			if len(result.MissingArgs) > 0 {
				details = append(details, fmt.Sprintf("missing: %v", result.MissingArgs))
			}
			for k, v := range result.WrongArgs {
				details = append(details, fmt.Sprintf("%s: %s", k, v))
			}
			if len(result.ForbiddenHit) > 0 {
				details = append(details, fmt.Sprintf("forbidden: %v", result.ForbiddenHit))
			}
			result.Passed = len(details) == 0
		}

		metrics.record(test.Tool, result.Passed,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(details, "; ")))
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// compareValues compares expected and actual values. JSON decodes numbers
// as float64, so numeric kinds are compared by value.
func compareValues(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	if ef, ok := asFloat(ev); ok {
		if af, ok := asFloat(av); ok {
			return ef == af
		}
		return false
	}

	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := 0; i < ev.Len(); i++ {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// FormatMetrics returns a human-readable summary of evaluation metrics
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		names := make([]string, 0, len(metrics.ByCategory))
		for name := range metrics.ByCategory {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\nBy Category:\n")
		for _, name := range names {
			m := metrics.ByCategory[name]
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				fmt.Fprintf(&b, "  %-25s: %d/%d (%.0f%%)\n", name, m.Passed, m.Total, acc)
			}
		}
	}

	details := metrics.FailedDetails
	if len(details) > 10 {
		fmt.Fprintf(&b, "\nFailed Tests (showing first 10 of %d):\n", len(details))
		details = details[:10]
	} else if len(details) > 0 {
		b.WriteString("\nFailed Tests:\n")
	}
	for _, detail := range details {
		fmt.Fprintf(&b, "  - %s\n", detail)
	}

	return b.String()
}
