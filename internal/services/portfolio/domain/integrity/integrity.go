// Package integrity runs the startup self-check over a project catalog.
//
// Validate never aborts: every check is evaluated and reported, and a failing
// record does not stop the remaining records from being checked. What to do
// with a failing report is the caller's decision.
package integrity

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
)

// Check identifies one structural rule of the catalog.
type Check string

const (
	// CheckRequiredFields requires title, problem, importance and build on every record.
	CheckRequiredFields Check = "required-fields"
	// CheckUniqueTitles requires titles to be unique (case-sensitive).
	CheckUniqueTitles Check = "unique-titles"
	// CheckUniqueSlugs requires every distinct title to yield its own URL slug.
	CheckUniqueSlugs Check = "unique-slugs"
	// CheckRetiredContent rejects titles naming retired projects.
	CheckRetiredContent Check = "retired-content"
	// CheckEvaluationMetrics requires the evaluation pipeline project to list its metrics.
	CheckEvaluationMetrics Check = "evaluation-metrics"
)

const (
	// RetiredTitle is matched case-insensitively as a title substring.
	RetiredTitle = "alfred chatbot"
	// EvaluationTitle locates the evaluation pipeline record, case-insensitively.
	EvaluationTitle = "rag evaluation pipeline"
	// RequiredMetric must appear verbatim in the evaluation pipeline metrics.
	RequiredMetric = "Hallucination"
	// MinEvaluationMetrics is the minimum metrics count for the evaluation pipeline.
	MinEvaluationMetrics = 5
)

var descriptions = map[Check]string{
	CheckRequiredFields:    "record has a title, problem, importance and build",
	CheckUniqueTitles:      "no two records share a title",
	CheckUniqueSlugs:       "every title yields a distinct, non-empty URL slug",
	CheckRetiredContent:    fmt.Sprintf("no title mentions %q", RetiredTitle),
	CheckEvaluationMetrics: fmt.Sprintf("evaluation pipeline lists %q among at least %d metrics", RequiredMetric, MinEvaluationMetrics),
}

// Describe returns the human-readable rule for check.
func Describe(check Check) string {
	return descriptions[check]
}

// Result is the outcome of one check.
type Result struct {
	Check       Check  `json:"check"`
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
	// Record names the record a per-record result is about.
	Record string `json:"record,omitempty"`
	// Detail explains a failure.
	Detail string `json:"detail,omitempty"`
}

// Report is the ordered list of results: per-record required-field results
// in catalog order, then the catalog-wide checks.
type Report struct {
	Results []Result `json:"results"`
}

// Passed reports whether every result passed.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failing results in report order.
func (r Report) Failures() []Result {
	var failures []Result
	for _, result := range r.Results {
		if !result.Passed {
			failures = append(failures, result)
		}
	}
	return failures
}

// Lookup returns the results for check in report order.
func (r Report) Lookup(check Check) []Result {
	var out []Result
	for _, result := range r.Results {
		if result.Check == check {
			out = append(out, result)
		}
	}
	return out
}

// Log writes one line per result and a summary line.
func (r Report) Log(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	for _, result := range r.Results {
		status := "pass"
		if !result.Passed {
			status = "fail"
		}
		line := fmt.Sprintf("integrity check=%s status=%s", result.Check, status)
		if result.Record != "" {
			line += fmt.Sprintf(" record=%q", result.Record)
		}
		if result.Detail != "" {
			line += fmt.Sprintf(" detail=%q", result.Detail)
		}
		logger.Print(line)
	}
	logger.Printf("integrity summary passed=%t results=%d failures=%d", r.Passed(), len(r.Results), len(r.Failures()))
}

// Validate checks catalog against every rule.
func Validate(catalog *project.Catalog) Report {
	records := catalog.All()
	results := make([]Result, 0, len(records)+4)
	for i, record := range records {
		results = append(results, checkRequiredFields(i, record))
	}
	results = append(results,
		checkUniqueTitles(records),
		checkUniqueSlugs(records),
		checkRetiredContent(records),
		checkEvaluationMetrics(catalog),
	)
	return Report{Results: results}
}

func newResult(check Check) Result {
	return Result{Check: check, Description: Describe(check), Passed: true}
}

func checkRequiredFields(index int, record *project.Record) Result {
	result := newResult(CheckRequiredFields)
	result.Record = recordName(index, record)

	var missing []string
	if strings.TrimSpace(record.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(record.Problem) == "" {
		missing = append(missing, "problem")
	}
	if strings.TrimSpace(record.Importance) == "" {
		missing = append(missing, "importance")
	}
	if strings.TrimSpace(record.Build) == "" {
		missing = append(missing, "build")
	}
	if len(missing) > 0 {
		result.Passed = false
		result.Detail = "missing " + strings.Join(missing, ", ")
	}
	return result
}

func recordName(index int, record *project.Record) string {
	if title := strings.TrimSpace(record.Title); title != "" {
		return title
	}
	return fmt.Sprintf("record #%d", index+1)
}

func checkUniqueTitles(records []*project.Record) Result {
	result := newResult(CheckUniqueTitles)
	seen := make(map[string]int, len(records))
	var duplicates []string
	for _, record := range records {
		seen[record.Title]++
		if seen[record.Title] == 2 {
			duplicates = append(duplicates, record.Title)
		}
	}
	if len(seen) < len(records) {
		result.Passed = false
		quoted := make([]string, 0, len(duplicates))
		for _, title := range duplicates {
			quoted = append(quoted, fmt.Sprintf("%q", title))
		}
		result.Detail = "duplicate titles " + strings.Join(quoted, ", ")
	}
	return result
}

// checkUniqueSlugs skips blank and repeated titles; those are reported by
// required-fields and unique-titles.
func checkUniqueSlugs(records []*project.Record) Result {
	result := newResult(CheckUniqueSlugs)
	owners := make(map[string]string, len(records))
	titles := make(map[string]bool, len(records))
	var problems []string
	for _, record := range records {
		title := record.Title
		if strings.TrimSpace(title) == "" || titles[title] {
			continue
		}
		titles[title] = true
		slug := record.Slug()
		if slug == "" {
			problems = append(problems, fmt.Sprintf("%q has no slug", title))
			continue
		}
		if first, ok := owners[slug]; ok {
			problems = append(problems, fmt.Sprintf("%q and %q share slug %q", first, title, slug))
			continue
		}
		owners[slug] = title
	}
	if len(problems) > 0 {
		result.Passed = false
		result.Detail = strings.Join(problems, "; ")
	}
	return result
}

func checkRetiredContent(records []*project.Record) Result {
	result := newResult(CheckRetiredContent)
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Title), RetiredTitle) {
			result.Passed = false
			result.Record = record.Title
			result.Detail = "retired project is listed"
			return result
		}
	}
	return result
}

func checkEvaluationMetrics(catalog *project.Catalog) Result {
	result := newResult(CheckEvaluationMetrics)
	record, ok := catalog.Find(func(record *project.Record) bool {
		return strings.Contains(strings.ToLower(record.Title), EvaluationTitle)
	})
	if !ok {
		return result
	}
	result.Record = record.Title
	switch {
	case !record.HasMetrics():
		result.Passed = false
		result.Detail = "metrics are missing"
	case !slices.Contains(record.Metrics, RequiredMetric):
		result.Passed = false
		result.Detail = fmt.Sprintf("metrics do not include %q", RequiredMetric)
	case len(record.Metrics) < MinEvaluationMetrics:
		result.Passed = false
		result.Detail = fmt.Sprintf("metrics list %d entries, want at least %d", len(record.Metrics), MinEvaluationMetrics)
	}
	return result
}
