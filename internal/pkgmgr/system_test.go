package pkgmgr

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildeworks/pkg-assist/internal/testutil"
)

// These cases run adapters against real subprocesses, with the package
// manager binaries replaced by stubs on PATH.

func liveSystem() system {
	return system{runner: execRunner{}, timeout: 30 * time.Second}
}

func TestAptRefreshAgainstStub(t *testing.T) {
	dir := t.TempDir()
	testutil.StubCommand(t, dir, "apt-get", "Reading package lists...\n", 0)

	res := aptAdapter{liveSystem()}.Refresh(context.Background())

	assert.True(t, res.OK(), "%+v", res)
	assert.Contains(t, testutil.StubArgs(t, dir, "apt-get"), "update")
}

func TestAptInstallFailureCarriesTail(t *testing.T) {
	dir := t.TempDir()
	testutil.StubCommand(t, dir, "apt-get", "E: Unable to locate package nope\n", 100)

	res := aptAdapter{liveSystem()}.Install(context.Background(), []string{"nope"})

	assert.Equal(t, StatusNotFound, res.Status)
	assert.Equal(t, 100, res.ExitCode)
	assert.Contains(t, strings.ToLower(res.StdoutTail), "unable to locate package")
}

func TestDnfCheckUpdateAgainstStub(t *testing.T) {
	dir := t.TempDir()
	testutil.StubCommand(t, dir, "dnf", "curl.x86_64  8.5.0-1.fc39  updates\n", dnfUpdatesAvailable)

	ups, res := dnfAdapter{liveSystem()}.ListUpgrades(context.Background())

	require.True(t, res.OK(), "%+v", res)
	require.Len(t, ups, 1)
	assert.Equal(t, "curl", ups[0].Name)
}

func TestMissingManagerBinaryIsUnsupported(t *testing.T) {
	// Restrict PATH to an empty directory so pacman cannot be found.
	t.Setenv("PATH", t.TempDir())

	res := pacmanAdapter{liveSystem()}.Refresh(context.Background())

	assert.Equal(t, StatusUnsupported, res.Status)
	assert.Equal(t, -1, res.ExitCode)
}
