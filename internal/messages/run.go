package messages

// Preflight, validation, and engine-run messages.
const (
	// PreflightEngineMissingFmt reports an engine binary that is not on PATH.
	PreflightEngineMissingFmt = "configuration management engine %q not found on PATH"
	// PreflightManifestMissingFmt reports a missing engine manifest.
	PreflightManifestMissingFmt = "engine manifest %s does not exist"
	// PreflightHostnameFmt reports a hostname that is not a dotted FQDN.
	PreflightHostnameFmt = "hostname %q is not a fully qualified domain name"
	PreflightLookupFmt   = "determine hostname: %v"

	// ValidationFailedFmt logs a single failing parameter.
	ValidationFailedFmt = "parameter %s of module %s is invalid: %s"
	// ValidationRequired describes a missing required value.
	ValidationRequired = "a value is required"
	// ValidationPatternFmt describes a pattern mismatch.
	ValidationPatternFmt = "value %q does not match %s"

	// RunnerSpawnFailedFmt reports that the engine could not be started.
	RunnerSpawnFailedFmt = "start engine %s: %w"
	// RunnerNotStarted reports a wait on a runner that never spawned.
	RunnerNotStarted = "engine was never started"
)
