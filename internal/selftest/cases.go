// Package selftest defines and runs the built-in functional suite that
// validates adapter normalization on a live system.
package selftest

import "github.com/tildeworks/pkg-assist/internal/pkgmgr"

// DefaultProbe is the package the suite installs, queries, and removes.
// Small, universally packaged, and safe to churn inside a test container.
const DefaultProbe = "curl"

// A name no repository carries, for the negative query case.
const missingProbe = "pka-selftest-no-such-package"

// Step pairs one operation with the status it must produce.
type Step struct {
	Op   pkgmgr.Operation
	Want pkgmgr.Status
}

// Case is one named scenario: an ordered operation sequence with expected
// statuses. Defined statically, never persisted.
type Case struct {
	Name  string
	Steps []Step
}

// BuiltinSuite returns the fixed scenario list. Declaration order is load
// bearing: later cases assume the install/remove state earlier cases left
// behind.
func BuiltinSuite(probe string, dependencies []string) []Case {
	if probe == "" {
		probe = DefaultProbe
	}
	installSet := append(append([]string{}, dependencies...), probe)

	return []Case{
		{
			Name: "refresh-repositories",
			Steps: []Step{
				{Op: pkgmgr.Refresh(), Want: pkgmgr.StatusSuccess},
			},
		},
		{
			Name: "install-dependencies",
			Steps: []Step{
				{Op: pkgmgr.Install(installSet...), Want: pkgmgr.StatusSuccess},
			},
		},
		{
			Name: "query-installed",
			Steps: []Step{
				{Op: pkgmgr.Query(probe), Want: pkgmgr.StatusSuccess},
			},
		},
		{
			Name: "reinstall-idempotent",
			Steps: []Step{
				{Op: pkgmgr.Install(probe), Want: pkgmgr.StatusSuccess},
			},
		},
		{
			Name: "remove-package",
			Steps: []Step{
				{Op: pkgmgr.Remove(probe), Want: pkgmgr.StatusSuccess},
				{Op: pkgmgr.Query(probe), Want: pkgmgr.StatusNotFound},
			},
		},
		{
			Name: "install-after-remove",
			Steps: []Step{
				{Op: pkgmgr.Install(probe), Want: pkgmgr.StatusSuccess},
				{Op: pkgmgr.Query(probe), Want: pkgmgr.StatusSuccess},
			},
		},
		{
			Name: "query-missing",
			Steps: []Step{
				{Op: pkgmgr.Query(missingProbe), Want: pkgmgr.StatusNotFound},
			},
		},
	}
}
