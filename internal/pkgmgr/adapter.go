package pkgmgr

import (
	"context"
	"time"
)

// Adapter is the normalized contract over one package-manager family.
// Implementations translate each abstract operation into that family's
// command line and map the outcome through a per-family classifier. No
// method propagates an execution failure as an error: everything surfaces
// as a Result so callers branch on status uniformly.
//
// Families are a closed set; new distributions are added by registering a
// new variant, never by layering on an existing one.
type Adapter interface {
	Name() string
	Refresh(ctx context.Context) Result
	Install(ctx context.Context, names []string) Result
	Query(ctx context.Context, name string) Result
	Remove(ctx context.Context, names []string) Result
	ListUpgrades(ctx context.Context) ([]Upgrade, Result)
	DownloadUpgrades(ctx context.Context) Result
	Changelog(ctx context.Context, name string) (string, Result)
}

// system is the shared execution core embedded by every adapter variant:
// one runner, one per-operation timeout.
type system struct {
	runner  commandRunner
	timeout time.Duration
}

func (s system) exec(ctx context.Context, env []string, name string, args ...string) execResult {
	return s.runner.run(ctx, s.timeout, env, name, args...)
}
