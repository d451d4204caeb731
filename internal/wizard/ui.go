// Package wizard implements interactive parameter resolution over the same
// module/parameter model the CLI surface is generated from.
package wizard

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/conn-castle/install-layer/internal/messages"
)

// UI defines the narrow interaction surface the wizard needs. Tests provide
// scripted implementations; interactive runs use HuhUI.
type UI interface {
	Confirm(title string, value *bool) error
	Input(title string, description string, value *string) error
}

// HuhUI implements UI with charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: stdioIsTerminal}
}

// stdioIsTerminal reports whether both stdin and stdout are terminals.
func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ensureInteractive rejects wizard use without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = stdioIsTerminal
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.WizardRequiresTerminal)
}

// Confirm asks a yes/no question.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(value),
	))
	return runFormFunc(form)
}

// Input prompts for a free-text value with the current value prefilled.
func (ui *HuhUI) Input(title string, description string, value *string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	input := huh.NewInput().Title(title).Value(value)
	if description != "" {
		input = input.Description(description)
	}
	form := huh.NewForm(huh.NewGroup(input))
	return runFormFunc(form)
}
