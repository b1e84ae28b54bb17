package pkgmgr

import (
	"context"
	"strings"
)

// apkAdapter covers Alpine systems.
type apkAdapter struct {
	system
}

var apkClassifier = classifier{
	notFoundPatterns: []string{
		"no such package",
		"unable to select packages",
	},
	permissionPatterns: []string{
		"unable to lock database",
	},
	networkPatterns: []string{
		"temporary error",
		"bad address",
	},
}

func (a apkAdapter) Name() string { return "apk" }

func (a apkAdapter) Refresh(ctx context.Context) Result {
	return apkClassifier.classify(a.exec(ctx, nil, "apk", "update"))
}

func (a apkAdapter) Install(ctx context.Context, names []string) Result {
	args := append([]string{"add", "--"}, names...)
	return apkClassifier.classify(a.exec(ctx, nil, "apk", args...))
}

func (a apkAdapter) Query(ctx context.Context, name string) Result {
	raw := a.exec(ctx, nil, "apk", "info", "-e", "--", name)
	res := apkClassifier.classify(raw)
	// apk info -e prints the name only when installed; an empty success
	// means absent on some apk versions.
	if res.OK() && strings.TrimSpace(raw.stdout) == "" {
		res.Status = StatusNotFound
	}
	if res.Status == StatusFailed && raw.exitCode == 1 {
		res.Status = StatusNotFound
	}
	return res
}

func (a apkAdapter) Remove(ctx context.Context, names []string) Result {
	args := append([]string{"del", "--"}, names...)
	return apkClassifier.classify(a.exec(ctx, nil, "apk", args...))
}

func (a apkAdapter) ListUpgrades(ctx context.Context) ([]Upgrade, Result) {
	raw := a.exec(ctx, nil, "apk", "version", "-l", "<")
	res := apkClassifier.classify(raw)
	if !res.OK() {
		return nil, res
	}
	return parseApkOutdated(raw.stdout), res
}

func (a apkAdapter) DownloadUpgrades(ctx context.Context) Result {
	// apk has no download-only upgrade mode; its cache is populated at
	// install time.
	return Result{Status: StatusUnsupported}
}

func (a apkAdapter) Changelog(ctx context.Context, name string) (string, Result) {
	// apk packages do not carry changelogs.
	return "", Result{Status: StatusUnsupported}
}

// apk version -l '<' lines: "name-version-release < new-version".
func parseApkOutdated(out string) []Upgrade {
	var upgrades []Upgrade
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "<" {
			continue
		}
		name, oldVersion := splitApkPackage(fields[0])
		upgrades = append(upgrades, Upgrade{
			Name:       name,
			OldVersion: oldVersion,
			NewVersion: fields[2],
		})
	}
	return upgrades
}

// splitApkPackage separates "name-version-release" into name and version;
// apk names may themselves contain dashes, so split on the last two.
func splitApkPackage(token string) (string, string) {
	parts := strings.Split(token, "-")
	if len(parts) < 3 {
		return token, ""
	}
	name := strings.Join(parts[:len(parts)-2], "-")
	version := strings.Join(parts[len(parts)-2:], "-")
	return name, version
}
