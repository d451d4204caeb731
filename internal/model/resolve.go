package model

import (
	"github.com/conn-castle/install-layer/internal/exitcode"
	"github.com/conn-castle/install-layer/internal/logging"
	"github.com/conn-castle/install-layer/internal/messages"
)

// Setting is a raw value supplied for one parameter by an outer layer
// (stored answers or CLI overrides) before resolution.
type Setting struct {
	Values []string
	List   bool
}

// ModuleSettings are the raw per-module inputs from one layer.
type ModuleSettings struct {
	// Enabled toggles the module when non-nil. Stored answers use false to
	// represent a disabled module; the CLI layer sets it from the
	// enable/no-enable flag pair.
	Enabled *bool
	Params  map[string]Setting
}

// Layer maps module names to their raw settings for one provenance layer.
type Layer map[string]ModuleSettings

// Resolve merges defaults, stored answers, and CLI overrides into final
// parameter values. Layers are applied lowest precedence first (default, then
// stored answer, then CLI), each overwriting the previous, so a CLI value
// always wins regardless of module registration order. A missing required
// value is not fatal here; it fails validation afterwards.
//
// A layer naming a module that is not in the set is a fatal
// configuration-structure error (unknown_module), distinct from a
// validation failure.
func Resolve(set *ModuleSet, stored Layer, cli Layer) error {
	for _, m := range set.Modules() {
		for _, p := range m.Parameters() {
			if p.HasDefault {
				p.Set(p.Default, SourceDefault)
			}
		}
	}
	if err := applyLayer(set, stored, SourceAnswers); err != nil {
		return err
	}
	return applyLayer(set, cli, SourceCLI)
}

func applyLayer(set *ModuleSet, layer Layer, src Source) error {
	for name, settings := range layer {
		m, ok := set.Module(name)
		if !ok {
			return exitcode.Fail(exitcode.UnknownModule, messages.UnknownModuleFmt, name)
		}
		if settings.Enabled != nil {
			m.Enabled = *settings.Enabled
		}
		for paramName, setting := range settings.Params {
			p, ok := m.Parameter(paramName)
			if !ok {
				// Stale answer keys survive scenario changes; skip them
				// rather than failing the run.
				logging.Warn(logging.ChannelInstaller, "ignoring unknown parameter %s.%s from %s", name, paramName, src)
				continue
			}
			if setting.List || p.Multivalued {
				p.SetList(setting.Values, src)
				continue
			}
			value := ""
			if len(setting.Values) > 0 {
				value = setting.Values[0]
			}
			p.Set(value, src)
		}
	}
	return nil
}
