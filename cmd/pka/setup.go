package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tildeworks/pkg-assist/internal/messages"
	"github.com/tildeworks/pkg-assist/internal/wizard"
)

var runWizard = func(path string, out io.Writer) error {
	return wizard.Run(path, wizard.NewHuhUI(), out)
}

func newSetupCmd() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   messages.SetupUse,
		Short: messages.SetupShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settingsPathOrDefault(settingsPath)
			if err != nil {
				return err
			}
			return runWizard(path, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "config", "c", "", messages.InitFlagSettings)

	return cmd
}
