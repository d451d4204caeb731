// Package scenario loads the TOML scenario definition: engine settings plus
// the modules and typed parameters the installer exposes.
package scenario

import (
	"fmt"
	"regexp"

	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
)

// DefaultPath is where the scenario definition lives unless overridden by
// --scenario or the IL_SCENARIO environment variable.
const DefaultPath = "/etc/install-layer/scenario.toml"

// EnvVar overrides the scenario path when set.
const EnvVar = "IL_SCENARIO"

// Scenario is the full installer definition loaded at startup.
type Scenario struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description,omitempty"`
	Engine      Engine   `toml:"engine"`
	Answers     Answers  `toml:"answers,omitempty"`
	Modules     []Module `toml:"module"`
}

// Engine describes the configuration management engine invocation.
type Engine struct {
	// Command is the engine binary, resolved on PATH.
	Command string `toml:"command"`
	// Args are inserted between the command and the manifest (for example
	// an "apply" subcommand).
	Args []string `toml:"args,omitempty"`
	// Manifest is the entry manifest the engine applies.
	Manifest string `toml:"manifest"`
}

// Answers configures answer persistence.
type Answers struct {
	// Path is the default answer file location.
	Path string `toml:"path,omitempty"`
}

// Module defines one feature module and its parameters.
type Module struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description,omitempty"`
	Enabled     bool    `toml:"enabled"`
	Params      []Param `toml:"param"`
}

// Param defines one typed, validatable parameter.
type Param struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description,omitempty"`
	Default     *string `toml:"default,omitempty"`
	Required    bool    `toml:"required,omitempty"`
	Multivalued bool    `toml:"multivalued,omitempty"`
	// Pattern is an optional anchored regular expression the value must match.
	Pattern string `toml:"pattern,omitempty"`
}

// Validate checks the scenario for configuration-structure errors. These are
// fatal; they are never reported as parameter validation failures.
func (s *Scenario) Validate() error {
	if s.Engine.Command == "" {
		return fmt.Errorf(messages.ScenarioEngineCommandEmpty)
	}
	if s.Engine.Manifest == "" {
		return fmt.Errorf(messages.ScenarioEngineManifestEmpty)
	}
	seenModules := map[string]bool{}
	for i, m := range s.Modules {
		if m.Name == "" {
			return fmt.Errorf(messages.ScenarioModuleNameEmptyFmt, i)
		}
		if seenModules[m.Name] {
			return fmt.Errorf(messages.ScenarioDuplicateModuleFmt, m.Name)
		}
		seenModules[m.Name] = true
		seenParams := map[string]bool{}
		for _, p := range m.Params {
			if p.Name == "" {
				return fmt.Errorf(messages.ScenarioParamNameEmptyFmt, m.Name)
			}
			if seenParams[p.Name] {
				return fmt.Errorf(messages.ScenarioDuplicateParamFmt, m.Name, p.Name)
			}
			seenParams[p.Name] = true
			if p.Pattern != "" {
				if _, err := regexp.Compile(p.Pattern); err != nil {
					return fmt.Errorf(messages.ScenarioBadPatternFmt, m.Name, p.Name, err)
				}
			}
		}
	}
	return nil
}

// BuildModel populates a module set from the scenario definitions.
// Validate must have passed; an invalid pattern here panics.
func (s *Scenario) BuildModel() *model.ModuleSet {
	set := model.NewModuleSet()
	for _, m := range s.Modules {
		mod := model.NewModule(m.Name, m.Description, m.Enabled)
		for _, p := range m.Params {
			param := &model.Parameter{
				Name:        p.Name,
				Doc:         p.Description,
				Required:    p.Required,
				Multivalued: p.Multivalued,
			}
			if p.Default != nil {
				param.Default = *p.Default
				param.HasDefault = true
			}
			if p.Pattern != "" {
				param.Pattern = regexp.MustCompile(p.Pattern)
			}
			mod.AddParameter(param)
		}
		// Duplicate names were rejected by Validate.
		_ = set.Add(mod)
	}
	return set
}
