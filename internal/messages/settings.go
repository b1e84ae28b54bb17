package messages

// Settings messages for loading and validating the settings file.
const (
	SettingsMissingFileFmt = "missing settings file %s: %w"
	SettingsMalformedFmt   = "malformed settings %s: %w"

	SettingsDistroOrOverridesRequiredFmt = "%s: distro_id or both refresh_command and install_command are required"
	SettingsOverridesIncompleteFmt       = "%s: custom adapter requires both refresh_command and install_command"
	SettingsRepositorySourceEmptyFmt     = "%s: repository_sources[%d] is empty"
	SettingsDependencyEmptyFmt           = "%s: dependencies[%d] is empty"
	SettingsTimeoutNegativeFmt           = "%s: command_timeout_secs must not be negative"
	SettingsRefreshRetriesNegativeFmt    = "%s: refresh_retries must not be negative"

	SettingsResolveHomeErrFmt = "resolve home dir: %w"
)
