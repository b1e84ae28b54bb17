// Package orchestrate drives repository refresh and dependency
// installation through a resolved adapter.
package orchestrate

import (
	"context"
	"time"

	"github.com/tildeworks/pkg-assist/internal/pkgmgr"
	"github.com/tildeworks/pkg-assist/internal/settings"
)

// State is one step of the init state machine.
type State int

const (
	StateStart State = iota
	StateRefreshingRepos
	StateInstallingDependencies
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRefreshingRepos:
		return "refreshing repositories"
	case StateInstallingDependencies:
		return "installing dependencies"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Outcome is the terminal result of one init run. Phase records where an
// aborted run stopped; Result carries the failing (or final) adapter
// outcome with its diagnostic tails.
type Outcome struct {
	State    State
	Phase    State
	Result   pkgmgr.Result
	Attempts int
}

// Done reports whether the run reached the Done state.
func (o Outcome) Done() bool { return o.State == StateDone }

// Orchestrator runs the Start -> RefreshingRepos -> InstallingDependencies
// -> Done state machine. Strictly sequential: at most one adapter
// operation is in flight at any point.
type Orchestrator struct {
	adapter      pkgmgr.Adapter
	dependencies []string
	retryBound   int

	// sleep and observe are seams: tests replace sleep, the CLI uses
	// observe to announce phase transitions.
	sleep   func(time.Duration)
	observe func(State)
}

// New builds an orchestrator for the adapter and settings.
func New(adapter pkgmgr.Adapter, s *settings.Settings) *Orchestrator {
	return &Orchestrator{
		adapter:      adapter,
		dependencies: s.Dependencies,
		retryBound:   s.RetryBound(),
		sleep:        time.Sleep,
		observe:      func(State) {},
	}
}

// OnPhase registers a callback invoked on each phase transition.
func (o *Orchestrator) OnPhase(fn func(State)) *Orchestrator {
	if fn != nil {
		o.observe = fn
	}
	return o
}

// Run executes the state machine. Running twice against an unchanged
// system terminates in Done both times: the install phase hands the full
// dependency set to the manager's own resolver, and already-satisfied
// packages are a success, not a failure.
func (o *Orchestrator) Run(ctx context.Context) Outcome {
	o.observe(StateRefreshingRepos)
	res, attempts := o.refresh(ctx)
	if !res.OK() {
		return Outcome{State: StateAborted, Phase: StateRefreshingRepos, Result: res, Attempts: attempts}
	}

	if len(o.dependencies) > 0 {
		o.observe(StateInstallingDependencies)
		// One call with the whole set so cross-package constraints are
		// resolved together.
		res = o.adapter.Install(ctx, o.dependencies)
		if !res.OK() {
			return Outcome{State: StateAborted, Phase: StateInstallingDependencies, Result: res, Attempts: attempts}
		}
	}

	o.observe(StateDone)
	return Outcome{State: StateDone, Phase: StateDone, Result: res, Attempts: attempts}
}

// refresh retries network failures (including timeouts) with exponential
// backoff up to the configured bound. Any other failure aborts at once:
// a refresh failure is not assumed transient unless it is network-shaped.
func (o *Orchestrator) refresh(ctx context.Context) (pkgmgr.Result, int) {
	var res pkgmgr.Result
	attempts := 0
	for {
		attempts++
		res = o.adapter.Refresh(ctx)
		if res.OK() || res.Status != pkgmgr.StatusNetworkFailure {
			return res, attempts
		}
		if attempts > o.retryBound {
			return res, attempts
		}
		o.sleep(nextBackoffDelay(attempts))
	}
}
