package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tildeworks/pkg-assist/internal/messages"
)

// ErrInvalid is the umbrella sentinel for every settings failure mode.
// Callers use errors.Is(err, ErrInvalid) to distinguish configuration
// problems (reported before any side effect) from execution failures.
var ErrInvalid = errors.New("invalid settings")

// Specific failure modes, each wrapping ErrInvalid.
var (
	ErrMissingField    = fmt.Errorf("%w: required field missing", ErrInvalid)
	ErrMalformedSyntax = fmt.Errorf("%w: malformed syntax", ErrInvalid)
	ErrInvalidDistroID = fmt.Errorf("%w: invalid distro_id", ErrInvalid)
)

// Validate ensures the settings are complete and consistent. Validation is
// total: every check runs before any adapter is selected.
func (s *Settings) Validate(source string) error {
	if strings.TrimSpace(s.DistroID) == "" && !s.HasOverrides() {
		if s.RefreshCommand != "" || s.InstallCommand != "" {
			return fmt.Errorf("%w: "+messages.SettingsOverridesIncompleteFmt, ErrMissingField, source)
		}
		return fmt.Errorf("%w: "+messages.SettingsDistroOrOverridesRequiredFmt, ErrMissingField, source)
	}
	for i, uri := range s.RepositorySources {
		if strings.TrimSpace(uri) == "" {
			return fmt.Errorf("%w: "+messages.SettingsRepositorySourceEmptyFmt, ErrMissingField, source, i)
		}
	}
	for i, name := range s.Dependencies {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: "+messages.SettingsDependencyEmptyFmt, ErrMissingField, source, i)
		}
	}
	if s.CommandTimeoutSecs < 0 {
		return fmt.Errorf("%w: "+messages.SettingsTimeoutNegativeFmt, ErrInvalid, source)
	}
	if s.RefreshRetries != nil && *s.RefreshRetries < 0 {
		return fmt.Errorf("%w: "+messages.SettingsRefreshRetriesNegativeFmt, ErrInvalid, source)
	}
	return nil
}
