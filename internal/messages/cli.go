package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "il"
	// RootShort is the short description for the root command.
	RootShort = "Install Layer"
	// RootLong describes what the installer does.
	RootLong = "Install Layer collects module configuration, validates it, and drives the configuration management engine to apply it."

	RootFlagInteractive = "Resolve parameters through the interactive wizard instead of CLI flags"
	RootFlagVerbose     = "Enable debug-level logging"
	RootFlagNoop        = "Run the engine in no-operation mode (report changes without applying them)"
	RootFlagDontSave    = "Do not persist answers; use a temporary answer file removed after the run"
	RootFlagAnswerFile  = "Path to the answer file"
	RootFlagScenario    = "Path to the scenario definition file"

	// EnableModuleFlagFmt documents the per-module enable flag.
	EnableModuleFlagFmt = "Enable the %s module"
	// DisableModuleFlagFmt documents the per-module disable flag.
	DisableModuleFlagFmt = "Disable the %s module"
	// ParamListDocSuffix marks the multi-valued variant of a parameter flag.
	ParamListDocSuffix = " (repeatable)"

	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ValuesInvalidExit is printed before exiting with the invalid_values code.
	ValuesInvalidExit = "One or more parameter values are invalid; see the log for details"
	// NoopNotice announces a dry run.
	NoopNotice = "Running in noop mode; no changes will be applied"
	// RunCompletedFmt reports the engine exit status on the installer channel.
	RunCompletedFmt = "installation run finished with status %d"
)
