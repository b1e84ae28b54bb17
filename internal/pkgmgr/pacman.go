package pkgmgr

import (
	"context"
	"strings"
)

// pacmanAdapter covers Arch-family systems.
type pacmanAdapter struct {
	system
}

var pacmanClassifier = classifier{
	notFoundPatterns: []string{
		"target not found",
		"was not found",
	},
	permissionPatterns: []string{
		"you cannot perform this operation unless you are root",
		"could not lock database",
	},
	networkPatterns: []string{
		"failed retrieving file",
		"download library error",
	},
}

func (a pacmanAdapter) Name() string { return "pacman" }

func (a pacmanAdapter) Refresh(ctx context.Context) Result {
	return pacmanClassifier.classify(a.exec(ctx, nil, "pacman", "-Sy", "--noconfirm"))
}

func (a pacmanAdapter) Install(ctx context.Context, names []string) Result {
	// --needed keeps reinstalls of present packages a no-op success.
	args := append([]string{"-S", "--noconfirm", "--needed", "--"}, names...)
	return pacmanClassifier.classify(a.exec(ctx, nil, "pacman", args...))
}

func (a pacmanAdapter) Query(ctx context.Context, name string) Result {
	return pacmanClassifier.classify(a.exec(ctx, nil, "pacman", "-Q", "--", name))
}

func (a pacmanAdapter) Remove(ctx context.Context, names []string) Result {
	args := append([]string{"-R", "--noconfirm", "--"}, names...)
	return pacmanClassifier.classify(a.exec(ctx, nil, "pacman", args...))
}

func (a pacmanAdapter) ListUpgrades(ctx context.Context) ([]Upgrade, Result) {
	raw := a.exec(ctx, nil, "pacman", "-Qu")
	// pacman -Qu exits 1 with no output when everything is current.
	if raw.exitCode == 1 && raw.startErr == nil && !raw.timedOut && strings.TrimSpace(raw.stdout+raw.stderr) == "" {
		raw.exitCode = 0
	}
	res := pacmanClassifier.classify(raw)
	if !res.OK() {
		return nil, res
	}
	return parsePacmanOutdated(raw.stdout), res
}

func (a pacmanAdapter) DownloadUpgrades(ctx context.Context) Result {
	return pacmanClassifier.classify(a.exec(ctx, nil, "pacman", "-Syuw", "--noconfirm"))
}

func (a pacmanAdapter) Changelog(ctx context.Context, name string) (string, Result) {
	raw := a.exec(ctx, nil, "pacman", "-Qc", "--", name)
	res := pacmanClassifier.classify(raw)
	if !res.OK() {
		return "", res
	}
	return raw.stdout, res
}

// pacman -Qu lines: "name old-version -> new-version".
func parsePacmanOutdated(out string) []Upgrade {
	var upgrades []Upgrade
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "->" {
			continue
		}
		upgrades = append(upgrades, Upgrade{
			Name:       fields[0],
			OldVersion: fields[1],
			NewVersion: fields[3],
		})
	}
	return upgrades
}
