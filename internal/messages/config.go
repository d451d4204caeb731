package messages

// Scenario and answer-file messages.
const (
	// ScenarioMissingFileFmt formats missing scenario file errors.
	ScenarioMissingFileFmt      = "missing scenario file %s: %w"
	ScenarioInvalidFmt          = "invalid scenario %s: %w"
	ScenarioUnrecognizedKeysFmt = "scenario %s contains unrecognized keys: %w"
	ScenarioEngineCommandEmpty  = "engine.command must not be empty"
	ScenarioEngineManifestEmpty = "engine.manifest must not be empty"
	ScenarioModuleNameEmptyFmt  = "module[%d]: name must not be empty"
	ScenarioDuplicateModuleFmt  = "duplicate module %q"
	ScenarioParamNameEmptyFmt   = "module %q: parameter name must not be empty"
	ScenarioDuplicateParamFmt   = "module %q: duplicate parameter %q"
	ScenarioBadPatternFmt       = "module %q parameter %q: invalid pattern: %w"

	// AnswersMissingFileFmt formats an explicitly referenced answer file that does not exist.
	AnswersMissingFileFmt = "answer file %s does not exist"
	AnswersReadFailedFmt  = "read answer file %s: %w"
	AnswersParseFailedFmt = "parse answer file %s: %w"
	AnswersWriteFailedFmt = "write answer file %s: %w"
	AnswersBadModuleFmt   = "answer file entry %q must be a mapping or false"
	AnswersBadValueFmt    = "answer %s.%s has unsupported type %T"
	AnswersOpenLockFmt    = "open answer lock %s: %w"
	AnswersLockFmt        = "lock answer file %s: %w"
	AnswersLockTimeoutFmt = "timed out waiting for answer file lock after %s"
	AnswersExpandPathFmt  = "expand answer file path %s: %w"
	AnswersTempFailedFmt  = "create temporary answer file: %w"
	AnswersDiffHeaderFmt  = "Answer file changes for %s:"

	// UnknownModuleFmt names a module reference that is not in the model.
	UnknownModuleFmt = "unknown module %q"
)
