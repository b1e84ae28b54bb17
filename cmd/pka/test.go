package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tildeworks/pkg-assist/internal/messages"
	"github.com/tildeworks/pkg-assist/internal/orchestrate"
	"github.com/tildeworks/pkg-assist/internal/selftest"
)

func newTestCmd() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   messages.TestUse,
		Short: messages.TestShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, adapter, err := loadProfile(settingsPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.TestHeaderFmt, adapter.Name())

			// The suite assumes refreshed repositories and installed
			// dependencies, so it runs init first rather than inheriting
			// whatever state the container is in.
			_, _ = fmt.Fprintln(out, messages.SelftestPreconditionHeader)
			outcome := orchestrate.New(adapter, s).Run(cmd.Context())
			if !outcome.Done() {
				printFailure(cmd.ErrOrStderr(), outcome.Result)
				return &SilentExitError{Code: exitExecFailure}
			}

			suite := selftest.BuiltinSuite(selftest.DefaultProbe, s.Dependencies)
			report := selftest.NewRunner(adapter, suite).Run(cmd.Context())
			printReport(out, report)
			if !report.Passed() {
				return fmt.Errorf(messages.SelftestFailureError)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "config", "c", "", messages.InitFlagSettings)

	return cmd
}

// printReport renders one line per case plus an overall summary.
func printReport(out io.Writer, report *selftest.Report) {
	for _, c := range report.Cases {
		label := color.GreenString(messages.SelftestStatusPassLabel)
		if !c.Passed {
			label = color.RedString(messages.SelftestStatusFailLabel)
		}
		_, _ = fmt.Fprintf(out, messages.SelftestResultLineFmt, label, c.Name)
		if c.Passed {
			continue
		}
		_, _ = fmt.Fprintf(out, messages.SelftestDetailFmt, c.FailedStep+1, c.Op, c.Want, c.Got.Status)
		if c.Got.StderrTail != "" {
			_, _ = fmt.Fprintf(out, messages.SelftestDetailTailFmt, c.Got.StderrTail)
		}
	}
	if report.Passed() {
		_, _ = fmt.Fprintln(out, color.GreenString(fmt.Sprintf(messages.SelftestSummaryPassFmt, len(report.Cases))))
		return
	}
	_, _ = fmt.Fprintln(out, color.RedString(fmt.Sprintf(messages.SelftestSummaryFailFmt, report.FailedCount(), len(report.Cases))))
}
