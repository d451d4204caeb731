package wizard

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/conn-castle/install-layer/internal/logging"
	"github.com/conn-castle/install-layer/internal/model"
)

// scriptedUI answers prompts from canned decisions keyed by title substrings.
type scriptedUI struct {
	confirms map[string]bool
	inputs   map[string]string
	err      error
}

func (ui *scriptedUI) Confirm(title string, value *bool) error {
	if ui.err != nil {
		return ui.err
	}
	for key, answer := range ui.confirms {
		if strings.Contains(title, key) {
			*value = answer
			return nil
		}
	}
	return nil
}

func (ui *scriptedUI) Input(title string, _ string, value *string) error {
	if ui.err != nil {
		return ui.err
	}
	for key, answer := range ui.inputs {
		if strings.Contains(title, key) {
			*value = answer
			return nil
		}
	}
	return nil
}

func newWizardSet(t *testing.T) *model.ModuleSet {
	t.Helper()
	logging.Init(logging.LevelError, io.Discard)
	set := model.NewModuleSet()

	ntp := model.NewModule("ntp", "", true)
	ntp.AddParameter(&model.Parameter{Name: "server", Default: "pool.ntp.org", HasDefault: true})
	if err := set.Add(ntp); err != nil {
		t.Fatal(err)
	}

	dns := model.NewModule("dns", "", true)
	dns.AddParameter(&model.Parameter{Name: "nameservers", Multivalued: true})
	if err := set.Add(dns); err != nil {
		t.Fatal(err)
	}

	if err := model.Resolve(set, model.Layer{}, model.Layer{}); err != nil {
		t.Fatal(err)
	}
	return set
}

func TestRunCollectsAnswers(t *testing.T) {
	set := newWizardSet(t)
	ui := &scriptedUI{
		confirms: map[string]bool{"ntp": true, "dns": true},
		inputs:   map[string]string{"ntp: server": "time.example.com", "dns: nameservers": "10.0.0.1, 10.0.0.2"},
	}

	layer, err := Run(set, ui)
	if err != nil {
		t.Fatalf("wizard: %v", err)
	}

	ntp := layer["ntp"]
	if ntp.Enabled == nil || !*ntp.Enabled {
		t.Fatalf("ntp enable decision = %+v", ntp.Enabled)
	}
	if v := ntp.Params["server"].Values[0]; v != "time.example.com" {
		t.Fatalf("server = %q", v)
	}

	ns := layer["dns"].Params["nameservers"]
	if !ns.List || len(ns.Values) != 2 || ns.Values[1] != "10.0.0.2" {
		t.Fatalf("nameservers = %+v", ns)
	}
}

func TestRunPrefillsCurrentValue(t *testing.T) {
	set := newWizardSet(t)
	var seen string
	ui := &promptRecorder{record: &seen}

	if _, err := Run(set, ui); err != nil {
		t.Fatalf("wizard: %v", err)
	}
	if seen != "pool.ntp.org" {
		t.Fatalf("prefill = %q, want resolved default", seen)
	}
}

// promptRecorder captures the prefilled value of the first input prompt.
type promptRecorder struct {
	record *string
	done   bool
}

func (ui *promptRecorder) Confirm(_ string, value *bool) error {
	*value = true
	return nil
}

func (ui *promptRecorder) Input(_ string, _ string, value *string) error {
	if !ui.done {
		*ui.record = *value
		ui.done = true
	}
	return nil
}

func TestRunDisabledModuleSkipsPrompts(t *testing.T) {
	set := newWizardSet(t)
	ui := &scriptedUI{confirms: map[string]bool{"ntp": false, "dns": false}}

	layer, err := Run(set, ui)
	if err != nil {
		t.Fatalf("wizard: %v", err)
	}
	for name, settings := range layer {
		if settings.Enabled == nil || *settings.Enabled {
			t.Fatalf("module %s should be disabled", name)
		}
		if len(settings.Params) != 0 {
			t.Fatalf("module %s should have no prompted values, got %+v", name, settings.Params)
		}
	}
}

func TestRunPropagatesUIError(t *testing.T) {
	set := newWizardSet(t)
	ui := &scriptedUI{err: errors.New("terminal gone")}

	if _, err := Run(set, ui); err == nil {
		t.Fatal("expected UI error to propagate")
	}
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	confirmed := false
	if err := ui.Confirm("anything", &confirmed); err == nil {
		t.Fatal("expected non-terminal confirm to fail")
	}
	value := ""
	if err := ui.Input("anything", "", &value); err == nil {
		t.Fatal("expected non-terminal input to fail")
	}
}
