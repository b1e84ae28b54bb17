package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tildeworks/pkg-assist/internal/messages"
	"github.com/tildeworks/pkg-assist/internal/orchestrate"
)

func newInitCmd() *cobra.Command {
	var settingsPath string
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, adapter, err := loadProfile(settingsPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !assumeYes && isTerminal() {
				prompt := fmt.Sprintf(messages.InitConfirmFmt, len(s.Dependencies), adapter.Name())
				proceed, err := promptYesNo(cmd.InOrStdin(), out, prompt, true)
				if err != nil {
					return err
				}
				if !proceed {
					_, _ = fmt.Fprintln(out, messages.InitDeclined)
					return nil
				}
			}

			outcome := orchestrate.New(adapter, s).
				OnPhase(func(state orchestrate.State) {
					if state != orchestrate.StateDone {
						_, _ = fmt.Fprintf(out, messages.InitPhaseFmt, state)
					}
				}).
				Run(cmd.Context())
			if !outcome.Done() {
				printFailure(cmd.ErrOrStderr(), outcome.Result)
				return &SilentExitError{Code: exitExecFailure}
			}
			_, _ = fmt.Fprintf(out, messages.InitDoneFmt, len(s.Dependencies), adapter.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "config", "c", "", messages.InitFlagSettings)
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, messages.InitFlagYes)

	return cmd
}

// promptYesNo asks a yes/no question and returns the user's choice or an error.
// defaultYes controls the result when the user provides an empty response.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		format := messages.PromptNoDefaultFmt
		if defaultYes {
			format = messages.PromptYesDefaultFmt
		}
		if _, err := fmt.Fprintf(out, format, prompt); err != nil {
			return false, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return defaultYes, nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponseFmt, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}
