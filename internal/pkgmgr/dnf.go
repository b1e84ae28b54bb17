package pkgmgr

import (
	"context"
	"regexp"
	"strings"
)

// dnfAdapter covers RPM-family systems driven by dnf (Fedora, RHEL).
type dnfAdapter struct {
	system
}

// dnf reserves exit 100 for "updates available" on check-update.
const dnfUpdatesAvailable = 100

var dnfClassifier = classifier{
	notFoundPatterns: []string{
		"unable to find a match",
		"no match for argument",
		"is not installed",
	},
	permissionPatterns: []string{
		"this command has to be run with superuser privileges",
	},
	networkPatterns: []string{
		"failed to download metadata",
		"cannot download",
		"error downloading",
	},
}

func (a dnfAdapter) Name() string { return "dnf" }

func (a dnfAdapter) Refresh(ctx context.Context) Result {
	return dnfClassifier.classify(a.exec(ctx, nil, "dnf", "makecache", "--refresh"))
}

func (a dnfAdapter) Install(ctx context.Context, names []string) Result {
	args := append([]string{"install", "-y", "--"}, names...)
	return dnfClassifier.classify(a.exec(ctx, nil, "dnf", args...))
}

func (a dnfAdapter) Query(ctx context.Context, name string) Result {
	return dnfClassifier.classify(a.exec(ctx, nil, "rpm", "-q", "--", name))
}

func (a dnfAdapter) Remove(ctx context.Context, names []string) Result {
	args := append([]string{"remove", "-y", "--"}, names...)
	return dnfClassifier.classify(a.exec(ctx, nil, "dnf", args...))
}

func (a dnfAdapter) ListUpgrades(ctx context.Context) ([]Upgrade, Result) {
	raw := a.exec(ctx, nil, "dnf", "check-update", "-q")
	if raw.exitCode == dnfUpdatesAvailable && raw.startErr == nil && !raw.timedOut {
		raw.exitCode = 0
		res := dnfClassifier.classify(raw)
		return parseDnfCheckUpdate(raw.stdout), res
	}
	return nil, dnfClassifier.classify(raw)
}

func (a dnfAdapter) DownloadUpgrades(ctx context.Context) Result {
	return dnfClassifier.classify(a.exec(ctx, nil, "dnf", "upgrade", "-y", "--downloadonly"))
}

func (a dnfAdapter) Changelog(ctx context.Context, name string) (string, Result) {
	raw := a.exec(ctx, nil, "rpm", "-q", "--changelog", "--", name)
	res := dnfClassifier.classify(raw)
	if !res.OK() {
		return "", res
	}
	return raw.stdout, res
}

// dnf check-update lines: "name.arch  version  repo".
var dnfUpdateLine = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\S+\s*$`)

func parseDnfCheckUpdate(out string) []Upgrade {
	var upgrades []Upgrade
	for _, line := range strings.Split(out, "\n") {
		m := dnfUpdateLine.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
		if m == nil {
			continue
		}
		name := m[1]
		// Obsoleting-package sections repeat the same shape; skip their
		// indented continuation marker lines.
		if strings.HasPrefix(name, "Obsoleting") {
			continue
		}
		if dot := strings.LastIndexByte(name, '.'); dot > 0 {
			name = name[:dot]
		}
		upgrades = append(upgrades, Upgrade{Name: name, NewVersion: m[2]})
	}
	return upgrades
}
