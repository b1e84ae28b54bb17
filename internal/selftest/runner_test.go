package selftest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildeworks/pkg-assist/internal/pkgmgr"
)

// memAdapter simulates a package manager over an in-memory installed set,
// so the whole suite can run against deterministic state.
type memAdapter struct {
	installed map[string]bool
	available map[string]bool
	ops       []pkgmgr.Operation

	refreshStatus pkgmgr.Status
}

func newMemAdapter(available ...string) *memAdapter {
	a := &memAdapter{
		installed: map[string]bool{},
		available: map[string]bool{},
	}
	for _, name := range available {
		a.available[name] = true
	}
	return a
}

func (a *memAdapter) Name() string { return "mem" }

func (a *memAdapter) Refresh(context.Context) pkgmgr.Result {
	a.ops = append(a.ops, pkgmgr.Refresh())
	return pkgmgr.Result{Status: a.refreshStatus}
}

func (a *memAdapter) Install(_ context.Context, names []string) pkgmgr.Result {
	a.ops = append(a.ops, pkgmgr.Install(names...))
	for _, name := range names {
		if !a.available[name] {
			return pkgmgr.Result{Status: pkgmgr.StatusNotFound, ExitCode: 1}
		}
	}
	for _, name := range names {
		a.installed[name] = true
	}
	return pkgmgr.Result{}
}

func (a *memAdapter) Query(_ context.Context, name string) pkgmgr.Result {
	a.ops = append(a.ops, pkgmgr.Query(name))
	if !a.installed[name] {
		return pkgmgr.Result{Status: pkgmgr.StatusNotFound, ExitCode: 1}
	}
	return pkgmgr.Result{}
}

func (a *memAdapter) Remove(_ context.Context, names []string) pkgmgr.Result {
	a.ops = append(a.ops, pkgmgr.Remove(names...))
	for _, name := range names {
		if !a.installed[name] {
			return pkgmgr.Result{Status: pkgmgr.StatusNotFound, ExitCode: 1}
		}
		delete(a.installed, name)
	}
	return pkgmgr.Result{}
}

func (a *memAdapter) ListUpgrades(context.Context) ([]pkgmgr.Upgrade, pkgmgr.Result) {
	return nil, pkgmgr.Result{Status: pkgmgr.StatusUnsupported}
}

func (a *memAdapter) DownloadUpgrades(context.Context) pkgmgr.Result {
	return pkgmgr.Result{Status: pkgmgr.StatusUnsupported}
}

func (a *memAdapter) Changelog(context.Context, string) (string, pkgmgr.Result) {
	return "", pkgmgr.Result{Status: pkgmgr.StatusUnsupported}
}

func TestBuiltinSuitePassesAgainstHealthySystem(t *testing.T) {
	a := newMemAdapter("curl", "jq")
	runner := NewRunner(a, BuiltinSuite("", []string{"jq"}))

	report := runner.Run(context.Background())

	assert.True(t, report.Passed())
	assert.Equal(t, 0, report.FailedCount())
	require.Len(t, report.Cases, 7)
	for _, c := range report.Cases {
		assert.Equal(t, -1, c.FailedStep, c.Name)
	}
}

func TestBuiltinSuiteCaseOrder(t *testing.T) {
	cases := BuiltinSuite("", nil)
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		"refresh-repositories",
		"install-dependencies",
		"query-installed",
		"reinstall-idempotent",
		"remove-package",
		"install-after-remove",
		"query-missing",
	}, names)
}

func TestBuiltinSuiteProbeDefault(t *testing.T) {
	cases := BuiltinSuite("", []string{"jq"})
	// The install set carries the dependencies plus the probe.
	assert.Equal(t, []string{"jq", "curl"}, cases[1].Steps[0].Op.Names)

	cases = BuiltinSuite("wget", nil)
	assert.Equal(t, []string{"wget"}, cases[1].Steps[0].Op.Names)
}

func TestSuiteReportsEveryFailure(t *testing.T) {
	// Nothing is available, so every install fails while refresh and the
	// negative query still pass.
	a := newMemAdapter()
	report := NewRunner(a, BuiltinSuite("", nil)).Run(context.Background())

	assert.False(t, report.Passed())
	require.Len(t, report.Cases, 7)
	byName := map[string]CaseResult{}
	for _, c := range report.Cases {
		byName[c.Name] = c
	}
	assert.True(t, byName["refresh-repositories"].Passed)
	assert.False(t, byName["install-dependencies"].Passed)
	assert.False(t, byName["query-installed"].Passed)
	assert.True(t, byName["query-missing"].Passed)
	assert.Equal(t, 5, report.FailedCount())
}

func TestCaseShortCircuitsOnFirstUnexpectedStep(t *testing.T) {
	// curl is available but not installed, so the remove step fails and
	// the query step must not run.
	a := newMemAdapter("curl")
	suite := []Case{
		{
			Name: "remove-missing",
			Steps: []Step{
				{Op: pkgmgr.Remove("curl"), Want: pkgmgr.StatusSuccess},
				{Op: pkgmgr.Query("curl"), Want: pkgmgr.StatusNotFound},
			},
		},
	}
	report := NewRunner(a, suite).Run(context.Background())

	require.Len(t, report.Cases, 1)
	c := report.Cases[0]
	assert.False(t, c.Passed)
	assert.Equal(t, 0, c.FailedStep)
	assert.Equal(t, pkgmgr.StatusSuccess, c.Want)
	assert.Equal(t, pkgmgr.StatusNotFound, c.Got.Status)
	// Only the remove ran.
	require.Len(t, a.ops, 1)
	assert.Equal(t, pkgmgr.OpRemove, a.ops[0].Kind)
}

func TestFailedRefreshRecordsDiagnostics(t *testing.T) {
	a := newMemAdapter()
	a.refreshStatus = pkgmgr.StatusNetworkFailure
	report := NewRunner(a, BuiltinSuite("", nil)[:1]).Run(context.Background())

	assert.False(t, report.Passed())
	c := report.Cases[0]
	assert.Equal(t, pkgmgr.StatusSuccess, c.Want)
	assert.Equal(t, pkgmgr.StatusNetworkFailure, c.Got.Status)
	assert.Equal(t, pkgmgr.OpRefresh, c.Op.Kind)
}
