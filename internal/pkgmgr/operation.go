// Package pkgmgr translates abstract package operations into concrete
// package-manager invocations and normalizes their outcomes.
package pkgmgr

import (
	"context"
	"fmt"
)

// OpKind tags an Operation with the abstract action it requests.
type OpKind int

const (
	OpRefresh OpKind = iota
	OpInstall
	OpQuery
	OpRemove
	OpListUpgrades
	OpDownloadUpgrades
	OpChangelog
)

// String returns the lowercase operation name for messages and reports.
func (k OpKind) String() string {
	switch k {
	case OpRefresh:
		return "refresh"
	case OpInstall:
		return "install"
	case OpQuery:
		return "query"
	case OpRemove:
		return "remove"
	case OpListUpgrades:
		return "list-upgrades"
	case OpDownloadUpgrades:
		return "download-upgrades"
	case OpChangelog:
		return "changelog"
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Operation is an immutable request against an adapter. Construct with the
// helpers below; never mutate Names after construction.
type Operation struct {
	Kind  OpKind
	Names []string
}

// Refresh requests a repository metadata refresh.
func Refresh() Operation { return Operation{Kind: OpRefresh} }

// Install requests installation of the named packages as one set.
func Install(names ...string) Operation {
	return Operation{Kind: OpInstall, Names: cloneNames(names)}
}

// Query asks whether one named package is installed.
func Query(name string) Operation {
	return Operation{Kind: OpQuery, Names: []string{name}}
}

// Remove requests removal of the named packages.
func Remove(names ...string) Operation {
	return Operation{Kind: OpRemove, Names: cloneNames(names)}
}

// Changelog requests the changelog of one named package.
func Changelog(name string) Operation {
	return Operation{Kind: OpChangelog, Names: []string{name}}
}

func (o Operation) String() string {
	if len(o.Names) == 0 {
		return o.Kind.String()
	}
	names := o.Names
	if len(names) > 3 {
		names = names[:3]
	}
	s := o.Kind.String() + " " + names[0]
	for _, n := range names[1:] {
		s += " " + n
	}
	if len(o.Names) > 3 {
		s += fmt.Sprintf(" (+%d more)", len(o.Names)-3)
	}
	return s
}

func cloneNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Do executes one Operation against an adapter. List and download results
// collapse to their Result; callers needing the upgrade list use the
// adapter directly.
func Do(ctx context.Context, a Adapter, op Operation) Result {
	switch op.Kind {
	case OpRefresh:
		return a.Refresh(ctx)
	case OpInstall:
		return a.Install(ctx, op.Names)
	case OpQuery:
		return a.Query(ctx, op.Names[0])
	case OpRemove:
		return a.Remove(ctx, op.Names)
	case OpListUpgrades:
		_, res := a.ListUpgrades(ctx)
		return res
	case OpDownloadUpgrades:
		return a.DownloadUpgrades(ctx)
	case OpChangelog:
		_, res := a.Changelog(ctx, op.Names[0])
		return res
	}
	return Result{Status: StatusUnsupported}
}
