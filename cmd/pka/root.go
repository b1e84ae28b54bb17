package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tildeworks/pkg-assist/internal/messages"
	"github.com/tildeworks/pkg-assist/internal/pkgmgr"
	"github.com/tildeworks/pkg-assist/internal/settings"
	"github.com/tildeworks/pkg-assist/internal/terminal"
)

// Seams for command tests.
var (
	resolveAdapterFunc = pkgmgr.Resolve
	loadSettingsFunc   = settings.Load
	isTerminal         = terminal.IsInteractive
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newInitCmd(),
		newTestCmd(),
		newCheckUpdatesCmd(),
		newChangelogCmd(),
		newSetupCmd(),
	)
	return cmd
}

// settingsPathOrDefault resolves the -c flag, falling back to the default
// profile location.
func settingsPathOrDefault(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return settings.DefaultPath()
}

// loadProfile loads and validates settings, then resolves the adapter.
// Fails before any side effect: a bad profile never reaches the system
// package database.
func loadProfile(flagValue string) (*settings.Settings, pkgmgr.Adapter, error) {
	path, err := settingsPathOrDefault(flagValue)
	if err != nil {
		return nil, nil, err
	}
	s, err := loadSettingsFunc(path)
	if err != nil {
		return nil, nil, err
	}
	adapter, err := resolveAdapterFunc(s)
	if err != nil {
		return nil, nil, err
	}
	return s, adapter, nil
}

// printFailure reports a failed adapter result with its diagnostic tails.
func printFailure(out io.Writer, res pkgmgr.Result) {
	if res.TimedOut {
		_, _ = fmt.Fprintln(out, color.RedString(messages.FailureTimeout))
	}
	_, _ = fmt.Fprintln(out, color.RedString(fmt.Sprintf(messages.FailureStatusFmt, res.Status, res.ExitCode)))
	if res.StderrTail != "" {
		_, _ = fmt.Fprintf(out, messages.FailureStderrFmt+"\n", res.StderrTail)
	} else if res.StdoutTail != "" {
		_, _ = fmt.Fprintf(out, messages.FailureStdoutFmt+"\n", res.StdoutTail)
	}
}
