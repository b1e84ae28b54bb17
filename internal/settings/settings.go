// Package settings loads and validates the pka settings file.
package settings

import "time"

// Default bounds applied when the settings file leaves them unset.
const (
	DefaultCommandTimeout = 120 * time.Second
	DefaultRefreshRetries = 3
)

// Settings is the parsed settings file for one distribution profile.
// Unknown keys in the file are ignored.
type Settings struct {
	// DistroID selects a built-in adapter. Empty when the custom
	// command overrides are used instead.
	DistroID string `toml:"distro_id"`
	// RepositorySources are mirror URIs in probe order.
	RepositorySources []string `toml:"repository_sources"`
	// Dependencies are installed as one set at init time.
	Dependencies []string `toml:"dependencies"`
	// RefreshCommand and InstallCommand drive the custom adapter for
	// distributions without a built-in one. Run through `sh -c`.
	RefreshCommand string `toml:"refresh_command"`
	InstallCommand string `toml:"install_command"`
	// CommandTimeoutSecs bounds each package-manager invocation.
	CommandTimeoutSecs int `toml:"command_timeout_secs"`
	// RefreshRetries bounds retry attempts after a network failure
	// during repository refresh. Nil means the default.
	RefreshRetries *int `toml:"refresh_retries"`
}

// CommandTimeout returns the per-operation bound, defaulted when unset.
func (s *Settings) CommandTimeout() time.Duration {
	if s.CommandTimeoutSecs <= 0 {
		return DefaultCommandTimeout
	}
	return time.Duration(s.CommandTimeoutSecs) * time.Second
}

// RetryBound returns the refresh retry bound, defaulted when unset.
func (s *Settings) RetryBound() int {
	if s.RefreshRetries == nil {
		return DefaultRefreshRetries
	}
	return *s.RefreshRetries
}

// HasOverrides reports whether both custom adapter commands are present.
func (s *Settings) HasOverrides() bool {
	return s.RefreshCommand != "" && s.InstallCommand != ""
}
