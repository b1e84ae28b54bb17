package messages

// Setup wizard messages.
const (
	WizardRequiresTerminal = "setup requires an interactive terminal"

	WizardSelectDistroTitle    = "Which distribution family is this system?"
	WizardDependenciesTitle    = "Packages to install at init time (comma-separated, optional)"
	WizardRepositoriesTitle    = "Repository mirror URIs (comma-separated, optional)"
	WizardConfirmWriteTitleFmt = "Write settings to %s?"
	WizardOverwriteTitleFmt    = "%s already exists. Overwrite it?"

	WizardAbortedWrite = "setup aborted: nothing written"
	WizardWroteFileFmt = "Wrote settings to %s\n"
	WizardCreateDirFmt = "create settings dir: %w"
	WizardWriteFileFmt = "write settings file: %w"
	WizardEncodeErrFmt = "encode settings: %w"
)
