package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "pka"
	// RootShort is the short description for the root command.
	RootShort = "Normalized package operations across Linux distributions"
	RootLong  = "pka drives the host's native package manager through one settings-driven\n" +
		"interface: repository refresh, dependency install, presence query, removal,\n" +
		"and a built-in self-test suite that validates the abstraction on a live system."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Refresh repositories and install configured dependencies"

	InitFlagSettings = "Path to the settings file"
	InitFlagYes      = "Skip the confirmation prompt before mutating the system"
	InitConfirmFmt   = "Refresh repositories and ensure %d package(s) via %s?"
	InitDeclined     = "Aborted: no changes made"
	InitPhaseFmt     = "==> %s\n"
	InitDoneFmt      = "Init complete: repositories refreshed, %d package(s) ensured via %s\n"

	TestUse       = "test"
	TestShort     = "Run the built-in self-test suite against the configured adapter"
	TestHeaderFmt = "Running self-test suite against adapter %q\n"

	CheckUpdatesUse          = "check-updates"
	CheckUpdatesShort        = "List packages with available upgrades"
	CheckUpdatesFlagDownload = "Download available upgrades without installing them"
	CheckUpdatesNone         = "System is up to date."
	CheckUpdatesHeaderFmt    = "%d package(s) can be upgraded:\n"
	CheckUpdatesDownloading  = "Downloading available upgrades..."
	CheckUpdatesDownloaded   = "Download complete."

	ChangelogUse     = "changelog <package>"
	ChangelogShort   = "Show the changelog of an installed package"
	ChangelogNoneFmt = "No changelog entries for %s.\n"

	SetupUse   = "setup"
	SetupShort = "Interactively write a starter settings file"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt      = "%s [Y/n]: "
	PromptNoDefaultFmt       = "%s [y/N]: "
	PromptRetryYesNo         = "Please answer 'y' or 'n'."
	PromptInvalidResponseFmt = "invalid response %q"
)

// Failure reporting shared by subcommands.
const (
	FailureStatusFmt = "operation failed: %s (exit code %d)"
	FailureTimeout   = "operation timed out (classified as network failure)"
	FailureStderrFmt = "stderr (tail):\n%s"
	FailureStdoutFmt = "stdout (tail):\n%s"
)
