package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tildeworks/pkg-assist/internal/messages"
	"github.com/tildeworks/pkg-assist/internal/pkgmgr"
	"github.com/tildeworks/pkg-assist/internal/settings"
)

// Run walks the user through a starter settings file and writes it to
// path. An existing file is never overwritten without confirmation.
func Run(path string, ui UI, out io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		overwrite := false
		if err := ui.Confirm(fmt.Sprintf(messages.WizardOverwriteTitleFmt, path), &overwrite); err != nil {
			return err
		}
		if !overwrite {
			_, _ = fmt.Fprintln(out, messages.WizardAbortedWrite)
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	distro := "debian"
	if err := ui.Select(messages.WizardSelectDistroTitle, pkgmgr.KnownDistroIDs(), &distro); err != nil {
		return err
	}
	var depsInput string
	if err := ui.Input(messages.WizardDependenciesTitle, &depsInput); err != nil {
		return err
	}
	var reposInput string
	if err := ui.Input(messages.WizardRepositoriesTitle, &reposInput); err != nil {
		return err
	}
	write := true
	if err := ui.Confirm(fmt.Sprintf(messages.WizardConfirmWriteTitleFmt, path), &write); err != nil {
		return err
	}
	if !write {
		_, _ = fmt.Fprintln(out, messages.WizardAbortedWrite)
		return nil
	}

	s := settings.Settings{
		DistroID:          distro,
		Dependencies:      splitList(depsInput),
		RepositorySources: splitList(reposInput),
	}
	data, err := toml.Marshal(&s)
	if err != nil {
		return fmt.Errorf(messages.WizardEncodeErrFmt, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.WizardCreateDirFmt, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.WizardWriteFileFmt, err)
	}
	_, _ = fmt.Fprintf(out, messages.WizardWroteFileFmt, path)
	return nil
}

// splitList parses a comma-separated prompt answer, dropping empties.
func splitList(input string) []string {
	var items []string
	for _, item := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
