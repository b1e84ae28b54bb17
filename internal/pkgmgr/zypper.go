package pkgmgr

import (
	"context"
	"encoding/xml"
	"strings"
)

// zypperAdapter covers SUSE-family systems. Zypper has documented exit
// codes where the other families rely on stderr phrasing.
type zypperAdapter struct {
	system
}

// Zypper exit codes (see zypper(8) EXIT CODES).
const (
	zypperExitNotFound     = 104
	zypperExitNoPermission = 5
	zypperExitRepoFailure  = 106
)

var zypperClassifier = classifier{
	notFoundExits:   []int{zypperExitNotFound},
	permissionExits: []int{zypperExitNoPermission},
	notFoundPatterns: []string{
		"not found in package names",
		"no provider of",
		// Query and Changelog go through rpm, which has its own phrasing.
		"is not installed",
	},
	networkPatterns: []string{
		"download (curl) error",
		"cannot access installation media",
	},
}

func (a zypperAdapter) Name() string { return "zypper" }

func (a zypperAdapter) Refresh(ctx context.Context) Result {
	raw := a.exec(ctx, nil, "zypper", "--non-interactive", "refresh")
	if raw.exitCode == zypperExitRepoFailure && raw.startErr == nil && !raw.timedOut {
		// Some repositories failed to refresh; zypper treats this as
		// recoverable, and so do we.
		res := zypperClassifier.classify(raw)
		res.Status = StatusNetworkFailure
		return res
	}
	return zypperClassifier.classify(raw)
}

func (a zypperAdapter) Install(ctx context.Context, names []string) Result {
	args := append([]string{"--non-interactive", "install", "--"}, names...)
	return zypperClassifier.classify(a.exec(ctx, nil, "zypper", args...))
}

func (a zypperAdapter) Query(ctx context.Context, name string) Result {
	return zypperClassifier.classify(a.exec(ctx, nil, "rpm", "-q", "--", name))
}

func (a zypperAdapter) Remove(ctx context.Context, names []string) Result {
	args := append([]string{"--non-interactive", "remove", "--"}, names...)
	return zypperClassifier.classify(a.exec(ctx, nil, "zypper", args...))
}

func (a zypperAdapter) ListUpgrades(ctx context.Context) ([]Upgrade, Result) {
	raw := a.exec(ctx, nil, "zypper", "--non-interactive", "--xmlout", "list-updates")
	res := zypperClassifier.classify(raw)
	if !res.OK() {
		return nil, res
	}
	return parseZypperUpdates(raw.stdout), res
}

func (a zypperAdapter) DownloadUpgrades(ctx context.Context) Result {
	return zypperClassifier.classify(a.exec(ctx, nil, "zypper", "--non-interactive", "update", "--download-only"))
}

func (a zypperAdapter) Changelog(ctx context.Context, name string) (string, Result) {
	raw := a.exec(ctx, nil, "rpm", "-q", "--changelog", "--", name)
	res := zypperClassifier.classify(raw)
	if !res.OK() {
		return "", res
	}
	return raw.stdout, res
}

// parseZypperUpdates walks `zypper --xmlout list-updates` output, reading
// the name/edition/edition-old attributes of each <update> element.
func parseZypperUpdates(out string) []Upgrade {
	decoder := xml.NewDecoder(strings.NewReader(out))
	var upgrades []Upgrade
	for {
		token, err := decoder.Token()
		if err != nil {
			return upgrades
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "update" {
			continue
		}
		var up Upgrade
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "name":
				up.Name = attr.Value
			case "edition":
				up.NewVersion = attr.Value
			case "edition-old":
				up.OldVersion = attr.Value
			}
		}
		if up.Name != "" {
			upgrades = append(upgrades, up)
		}
	}
}
