package pkgmgr

import (
	"context"
	"strings"
)

// aptAdapter covers Debian-family systems (apt-get/dpkg).
type aptAdapter struct {
	system
}

// Installs must never block on debconf prompts inside a container.
var aptEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

var aptClassifier = classifier{
	notFoundPatterns: []string{
		"unable to locate package",
		"no packages found matching",
		"is not installed, so not removed",
	},
	permissionPatterns: []string{
		"could not open lock file",
		"permission denied",
	},
	networkPatterns: []string{
		"failed to fetch",
		"unable to connect",
	},
}

func (a aptAdapter) Name() string { return "apt" }

func (a aptAdapter) Refresh(ctx context.Context) Result {
	return aptClassifier.classify(a.exec(ctx, aptEnv, "apt-get", "update"))
}

func (a aptAdapter) Install(ctx context.Context, names []string) Result {
	args := append([]string{"install", "-y", "-q", "--"}, names...)
	return aptClassifier.classify(a.exec(ctx, aptEnv, "apt-get", args...))
}

func (a aptAdapter) Query(ctx context.Context, name string) Result {
	raw := a.exec(ctx, nil, "dpkg-query", "-W", "-f=${Status}", "--", name)
	res := aptClassifier.classify(raw)
	// dpkg keeps removed-but-not-purged packages in its database with a
	// deinstall status, so exit 0 alone does not mean installed.
	if res.OK() && !strings.Contains(raw.stdout, "install ok installed") {
		res.Status = StatusNotFound
	}
	return res
}

func (a aptAdapter) Remove(ctx context.Context, names []string) Result {
	args := append([]string{"remove", "-y", "-q", "--"}, names...)
	return aptClassifier.classify(a.exec(ctx, aptEnv, "apt-get", args...))
}

func (a aptAdapter) ListUpgrades(ctx context.Context) ([]Upgrade, Result) {
	raw := a.exec(ctx, nil, "apt", "list", "--upgradable")
	res := aptClassifier.classify(raw)
	if !res.OK() {
		return nil, res
	}
	return parseAptUpgradable(raw.stdout), res
}

func (a aptAdapter) DownloadUpgrades(ctx context.Context) Result {
	return aptClassifier.classify(a.exec(ctx, aptEnv, "apt-get", "dist-upgrade", "-d", "-y", "-q"))
}

func (a aptAdapter) Changelog(ctx context.Context, name string) (string, Result) {
	raw := a.exec(ctx, aptEnv, "apt-get", "changelog", "--", name)
	res := aptClassifier.classify(raw)
	if !res.OK() {
		return "", res
	}
	return raw.stdout, res
}

// parseAptUpgradable reads `apt list --upgradable` lines of the form
//
//	name/suite new-version arch [upgradable from: old-version]
func parseAptUpgradable(out string) []Upgrade {
	var upgrades []Upgrade
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		slash := strings.IndexByte(line, '/')
		if line == "" || slash <= 0 || strings.HasPrefix(line, "Listing") {
			continue
		}
		up := Upgrade{Name: line[:slash]}
		if fields := strings.Fields(line); len(fields) >= 2 {
			up.NewVersion = fields[1]
		}
		const fromMarker = "upgradable from: "
		if i := strings.Index(line, fromMarker); i >= 0 {
			up.OldVersion = strings.TrimSuffix(strings.TrimSpace(line[i+len(fromMarker):]), "]")
		}
		upgrades = append(upgrades, up)
	}
	return upgrades
}
