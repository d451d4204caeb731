package model

import (
	"fmt"
	"strings"

	"github.com/conn-castle/install-layer/internal/messages"
)

// OptionKind classifies the flag a descriptor renders to.
type OptionKind int

const (
	// OptionBool renders to a boolean flag.
	OptionBool OptionKind = iota
	// OptionValue renders to a single-valued string flag.
	OptionValue
	// OptionList renders to a repeatable string flag.
	OptionList
)

// Option is a CLI flag descriptor emitted from the module/parameter model.
// The builder is pure: descriptors carry everything the CLI layer needs and
// producing them has no side effects, so the surface is testable without an
// argument parser.
type Option struct {
	Name     string
	Doc      string
	Kind     OptionKind
	Default  string
	Defaults []string
	// Module and Param tie a descriptor back to the model entry it sets.
	// Enable toggles set Module only; EnableValue distinguishes the
	// enable/no-enable pair.
	Module      string
	Param       string
	EnableValue bool
}

// BuildOptions walks the module set and emits the dynamic CLI surface:
// an enable/no-enable pair per module, then one flag per parameter of each
// enabled module (with a repeatable -list variant for multi-valued
// parameters). Parameters of modules disabled by the scenario are excluded
// from the surface.
func BuildOptions(set *ModuleSet) []Option {
	var opts []Option
	for _, m := range set.Modules() {
		opts = append(opts,
			Option{
				Name:        "enable-" + flagName(m.Name),
				Doc:         fmt.Sprintf(messages.EnableModuleFlagFmt, m.Name),
				Kind:        OptionBool,
				Module:      m.Name,
				EnableValue: true,
			},
			Option{
				Name:   "no-enable-" + flagName(m.Name),
				Doc:    fmt.Sprintf(messages.DisableModuleFlagFmt, m.Name),
				Kind:   OptionBool,
				Module: m.Name,
			},
		)
		if !m.Enabled {
			continue
		}
		for _, p := range m.Parameters() {
			opts = append(opts, paramOptions(m, p)...)
		}
	}
	return opts
}

func paramOptions(m *Module, p *Parameter) []Option {
	base := Option{
		Name:    flagName(m.Name) + "-" + flagName(p.Name),
		Doc:     p.Doc,
		Module:  m.Name,
		Param:   p.Name,
		Kind:    OptionValue,
		Default: p.Default,
	}
	if !p.Multivalued {
		return []Option{base}
	}
	// Multi-valued parameters keep the base flag (comma-separated) and add a
	// repeatable -list variant targeting the same parameter.
	list := base
	list.Name += "-list"
	list.Doc += messages.ParamListDocSuffix
	list.Kind = OptionList
	list.Default = ""
	if p.HasDefault {
		list.Defaults = []string{p.Default}
	}
	return []Option{base, list}
}

// flagName converts a model name to flag spelling.
func flagName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}
