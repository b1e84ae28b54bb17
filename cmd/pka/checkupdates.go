package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tildeworks/pkg-assist/internal/messages"
)

func newCheckUpdatesCmd() *cobra.Command {
	var settingsPath string
	var download bool

	cmd := &cobra.Command{
		Use:   messages.CheckUpdatesUse,
		Short: messages.CheckUpdatesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adapter, err := loadProfile(settingsPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			upgrades, res := adapter.ListUpgrades(cmd.Context())
			if !res.OK() {
				printFailure(cmd.ErrOrStderr(), res)
				return &SilentExitError{Code: exitExecFailure}
			}
			if len(upgrades) == 0 {
				_, _ = fmt.Fprintln(out, messages.CheckUpdatesNone)
			} else {
				_, _ = fmt.Fprintf(out, messages.CheckUpdatesHeaderFmt, len(upgrades))
				for _, up := range upgrades {
					_, _ = fmt.Fprintf(out, "  %s\n", up)
				}
			}

			if !download {
				return nil
			}
			_, _ = fmt.Fprintln(out, messages.CheckUpdatesDownloading)
			if res := adapter.DownloadUpgrades(cmd.Context()); !res.OK() {
				printFailure(cmd.ErrOrStderr(), res)
				return &SilentExitError{Code: exitExecFailure}
			}
			_, _ = fmt.Fprintln(out, messages.CheckUpdatesDownloaded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "config", "c", "", messages.InitFlagSettings)
	cmd.Flags().BoolVarP(&download, "download", "d", false, messages.CheckUpdatesFlagDownload)

	return cmd
}
