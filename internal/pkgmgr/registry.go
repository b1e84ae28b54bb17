package pkgmgr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tildeworks/pkg-assist/internal/messages"
	"github.com/tildeworks/pkg-assist/internal/settings"
)

// family identifies one adapter variant in the registry.
type family int

const (
	familyApt family = iota
	familyDnf
	familyZypper
	familyPacman
	familyApk
)

// distroFamilies is the fixed mapping of known distro_id values to adapter
// families. Each family also registers a "-like" alias so a profile can
// name the family without claiming a specific distribution.
var distroFamilies = map[string]family{
	"debian":      familyApt,
	"ubuntu":      familyApt,
	"debian-like": familyApt,
	"fedora":      familyDnf,
	"rhel":        familyDnf,
	"centos":      familyDnf,
	"rpm-like":    familyDnf,
	"opensuse":    familyZypper,
	"sles":        familyZypper,
	"suse-like":   familyZypper,
	"arch":        familyPacman,
	"manjaro":     familyPacman,
	"arch-like":   familyPacman,
	"alpine":      familyApk,
	"alpine-like": familyApk,
}

// KnownDistroIDs returns the registered identifiers, sorted.
func KnownDistroIDs() []string {
	ids := make([]string, 0, len(distroFamilies))
	for id := range distroFamilies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve selects the adapter for validated settings: a built-in family
// for a known distro_id, the custom adapter when the overrides are set and
// distro_id is empty. Pure lookup; no state, safe to call repeatedly.
// An unknown distro_id fails with settings.ErrInvalidDistroID before any
// operation runs.
func Resolve(s *settings.Settings) (Adapter, error) {
	return resolveWith(s, execRunner{})
}

func resolveWith(s *settings.Settings, runner commandRunner) (Adapter, error) {
	core := system{runner: runner, timeout: s.CommandTimeout()}

	id := strings.TrimSpace(s.DistroID)
	if id == "" {
		if !s.HasOverrides() {
			return nil, fmt.Errorf("%w: "+messages.PkgmgrNoAdapterSource, settings.ErrMissingField)
		}
		return customAdapter{
			system:         core,
			refreshCommand: s.RefreshCommand,
			installCommand: s.InstallCommand,
		}, nil
	}

	fam, ok := distroFamilies[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: "+messages.PkgmgrUnknownDistroFmt,
			settings.ErrInvalidDistroID, id, strings.Join(KnownDistroIDs(), ", "))
	}
	switch fam {
	case familyApt:
		return aptAdapter{core}, nil
	case familyDnf:
		return dnfAdapter{core}, nil
	case familyZypper:
		return zypperAdapter{core}, nil
	case familyPacman:
		return pacmanAdapter{core}, nil
	case familyApk:
		return apkAdapter{core}, nil
	}
	return nil, fmt.Errorf("%w: "+messages.PkgmgrUnknownDistroFmt,
		settings.ErrInvalidDistroID, id, strings.Join(KnownDistroIDs(), ", "))
}
