package model

import (
	"fmt"

	"github.com/conn-castle/install-layer/internal/messages"
)

// Module is a named, independently enable/disable-able unit owning an ordered
// set of parameters. Disabled modules keep their parameters in memory; they
// are only excluded from the CLI surface, validation, and persistence.
type Module struct {
	Name    string
	Doc     string
	Enabled bool

	params []*Parameter
	byName map[string]*Parameter
}

// NewModule creates a module with the given scenario-supplied enabled default.
func NewModule(name string, doc string, enabled bool) *Module {
	return &Module{
		Name:    name,
		Doc:     doc,
		Enabled: enabled,
		byName:  map[string]*Parameter{},
	}
}

// AddParameter appends a parameter, preserving registration order.
func (m *Module) AddParameter(p *Parameter) {
	m.params = append(m.params, p)
	m.byName[p.Name] = p
}

// Parameters returns the module's parameters in registration order.
func (m *Module) Parameters() []*Parameter {
	return m.params
}

// Parameter looks up a parameter by name.
func (m *Module) Parameter(name string) (*Parameter, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// ModuleSet is the ordered collection of modules populated at startup.
type ModuleSet struct {
	modules []*Module
	byName  map[string]*Module
}

// NewModuleSet creates an empty module set.
func NewModuleSet() *ModuleSet {
	return &ModuleSet{byName: map[string]*Module{}}
}

// Add registers a module. Duplicate names are a configuration-structure error.
func (s *ModuleSet) Add(m *Module) error {
	if _, exists := s.byName[m.Name]; exists {
		return fmt.Errorf(messages.ScenarioDuplicateModuleFmt, m.Name)
	}
	s.modules = append(s.modules, m)
	s.byName[m.Name] = m
	return nil
}

// Modules returns all modules in registration order, disabled ones included.
func (s *ModuleSet) Modules() []*Module {
	return s.modules
}

// Module looks up a module by name.
func (s *ModuleSet) Module(name string) (*Module, bool) {
	m, ok := s.byName[name]
	return m, ok
}
