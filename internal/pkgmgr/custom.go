package pkgmgr

import (
	"context"
	"strings"
)

// customAdapter drives distributions without a built-in family through the
// raw refresh/install command overrides from the settings file. Commands
// run through `sh -c`; package names are appended to the install line.
type customAdapter struct {
	system
	refreshCommand string
	installCommand string
}

// The custom adapter knows nothing about the manager's vocabulary, so only
// the shared phrase tables apply.
var customClassifier = classifier{}

func (a customAdapter) Name() string { return "custom" }

func (a customAdapter) Refresh(ctx context.Context) Result {
	return customClassifier.classify(a.exec(ctx, nil, "sh", "-c", a.refreshCommand))
}

func (a customAdapter) Install(ctx context.Context, names []string) Result {
	command := a.installCommand
	if len(names) > 0 {
		command += " " + strings.Join(names, " ")
	}
	return customClassifier.classify(a.exec(ctx, nil, "sh", "-c", command))
}

func (a customAdapter) Query(ctx context.Context, name string) Result {
	return Result{Status: StatusUnsupported}
}

func (a customAdapter) Remove(ctx context.Context, names []string) Result {
	return Result{Status: StatusUnsupported}
}

func (a customAdapter) ListUpgrades(ctx context.Context) ([]Upgrade, Result) {
	return nil, Result{Status: StatusUnsupported}
}

func (a customAdapter) DownloadUpgrades(ctx context.Context) Result {
	return Result{Status: StatusUnsupported}
}

func (a customAdapter) Changelog(ctx context.Context, name string) (string, Result) {
	return "", Result{Status: StatusUnsupported}
}
