package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tildeworks/pkg-assist/internal/messages"
)

func newChangelogCmd() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   messages.ChangelogUse,
		Short: messages.ChangelogShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := loadProfile(settingsPath)
			if err != nil {
				return err
			}
			name := args[0]
			text, res := adapter.Changelog(cmd.Context(), name)
			if !res.OK() {
				printFailure(cmd.ErrOrStderr(), res)
				return &SilentExitError{Code: exitExecFailure}
			}
			out := cmd.OutOrStdout()
			if strings.TrimSpace(text) == "" {
				_, _ = fmt.Fprintf(out, messages.ChangelogNoneFmt, name)
				return nil
			}
			_, _ = fmt.Fprintln(out, strings.TrimRight(text, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "config", "c", "", messages.InitFlagSettings)

	return cmd
}
