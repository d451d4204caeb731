package messages

// Wizard messages for interactive parameter resolution.
const (
	// WizardRequiresTerminal is returned when --interactive is used without a TTY.
	WizardRequiresTerminal = "interactive mode requires an interactive terminal"
	// WizardEnableModuleFmt asks whether a module should be configured.
	WizardEnableModuleFmt = "Configure the %s module?"
	// WizardParamTitleFmt titles a parameter prompt.
	WizardParamTitleFmt = "%s: %s"
	// WizardListHint explains multi-valued input.
	WizardListHint = "Separate multiple values with commas"
	// WizardCancelled is printed when the wizard is aborted without changes.
	WizardCancelled = "Wizard cancelled; no answers were changed"
)
