package selftest

import (
	"context"

	"github.com/tildeworks/pkg-assist/internal/pkgmgr"
)

// CaseResult records expected-vs-actual for one case.
type CaseResult struct {
	Name   string
	Passed bool
	// FailedStep indexes the first unexpected step; -1 when passed.
	FailedStep int
	Want       pkgmgr.Status
	Got        pkgmgr.Result
	Op         pkgmgr.Operation
}

// Report aggregates the per-case results of one suite run. Immutable once
// the runner returns it.
type Report struct {
	Cases []CaseResult
}

// Passed reports the AND of all cases.
func (r *Report) Passed() bool {
	for _, c := range r.Cases {
		if !c.Passed {
			return false
		}
	}
	return true
}

// FailedCount returns how many cases failed.
func (r *Report) FailedCount() int {
	n := 0
	for _, c := range r.Cases {
		if !c.Passed {
			n++
		}
	}
	return n
}

// Runner executes a suite against one live adapter, cases in declaration
// order, steps in declaration order, one operation in flight at a time.
type Runner struct {
	adapter pkgmgr.Adapter
	cases   []Case
}

// NewRunner builds a runner for the adapter and suite.
func NewRunner(adapter pkgmgr.Adapter, cases []Case) *Runner {
	return &Runner{adapter: adapter, cases: cases}
}

// Run executes every case and returns the report. A case short-circuits on
// its first unexpected status; the suite itself always runs every case, so
// the report names everything that is broken, not just the first thing.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{Cases: make([]CaseResult, 0, len(r.cases))}
	for _, c := range r.cases {
		report.Cases = append(report.Cases, r.runCase(ctx, c))
	}
	return report
}

func (r *Runner) runCase(ctx context.Context, c Case) CaseResult {
	for i, step := range c.Steps {
		got := pkgmgr.Do(ctx, r.adapter, step.Op)
		if got.Status != step.Want {
			return CaseResult{
				Name:       c.Name,
				Passed:     false,
				FailedStep: i,
				Want:       step.Want,
				Got:        got,
				Op:         step.Op,
			}
		}
	}
	return CaseResult{Name: c.Name, Passed: true, FailedStep: -1}
}
