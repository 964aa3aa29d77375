package doctor

import "time"

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check (e.g., "config", "themes").
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run() *CheckResult
}

// Runner executes diagnostic checks in registration order.
type Runner struct {
	checks []Check
}

// NewRunner creates a new diagnostic runner.
func NewRunner() *Runner {
	return &Runner{
		checks: make([]Check, 0),
	}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all registered checks and returns a report.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		if result.Name == "" {
			result.Name = check.Name()
		}
		if result.Category == "" {
			result.Category = check.Category()
		}
		report.Results = append(report.Results, result)

		switch result.Status {
		case SeverityPass:
			report.Summary.Passed++
		case SeverityInfo:
			report.Summary.Info++
		case SeverityWarning:
			report.Summary.Warnings++
		case SeverityError:
			report.Summary.Errors++
		}
	}

	return report
}

// Report aggregates all check results with timing and summary.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
