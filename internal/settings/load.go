package settings

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/tildeworks/pkg-assist/internal/messages"
)

// DefaultPath returns the default settings file location
// (~/.config/pkg-assist/settings.toml).
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.SettingsResolveHomeErrFmt, err)
	}
	return filepath.Join(home, ".config", "pkg-assist", "settings.toml"), nil
}

// Load reads and validates the settings file at path. It performs no side
// effects on failure: a bad file never reaches an adapter.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.SettingsMissingFileFmt, ErrInvalid, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates settings TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: "+messages.SettingsMalformedFmt, ErrMalformedSyntax, source, err)
	}
	if err := s.Validate(source); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadLenient reads the settings file without validation. Returns an error
// only on filesystem or TOML syntax errors; suitable for the setup wizard,
// which needs to read partially valid files.
func LoadLenient(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.SettingsMissingFileFmt, ErrInvalid, path, err)
	}
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: "+messages.SettingsMalformedFmt, ErrMalformedSyntax, path, err)
	}
	return &s, nil
}
