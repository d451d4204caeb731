// Package model holds the in-memory module/parameter configuration model:
// typed parameter definitions grouped into enable/disable-able modules,
// layered value resolution, and validation.
package model

import "regexp"

// Source identifies which provenance layer supplied a parameter's value.
type Source int

const (
	// SourceUnset means no layer supplied a value.
	SourceUnset Source = iota
	// SourceDefault means the module-supplied default is in effect.
	SourceDefault
	// SourceAnswers means a prior stored answer is in effect.
	SourceAnswers
	// SourceCLI means a command-line override is in effect.
	SourceCLI
)

// String makes Source satisfy fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceAnswers:
		return "answers"
	case SourceCLI:
		return "cli"
	default:
		return "unset"
	}
}

// Parameter is a single named, validatable configuration value. Parameters are
// created when their owning module is loaded and never deleted during a run;
// only Resolve assigns values.
type Parameter struct {
	Name        string
	Doc         string
	Default     string
	HasDefault  bool
	Required    bool
	Multivalued bool
	// Pattern is the optional validation rule; nil means always valid.
	Pattern *regexp.Regexp

	values []string
	source Source
}

// Set assigns a single value from the given layer. Setting from a layer
// overwrites whatever a lower-precedence layer assigned; Resolve applies
// layers lowest-precedence first so the invariant holds without comparisons.
func (p *Parameter) Set(value string, src Source) {
	p.values = []string{value}
	p.source = src
}

// SetList assigns an ordered multi-value sequence from the given layer.
func (p *Parameter) SetList(values []string, src Source) {
	p.values = append([]string(nil), values...)
	p.source = src
}

// Value returns the resolved scalar value and whether one is set.
// Multi-valued parameters report their first element.
func (p *Parameter) Value() (string, bool) {
	if p.source == SourceUnset || len(p.values) == 0 {
		return "", false
	}
	return p.values[0], true
}

// Values returns the resolved ordered values and whether any are set.
func (p *Parameter) Values() ([]string, bool) {
	if p.source == SourceUnset {
		return nil, false
	}
	return append([]string(nil), p.values...), true
}

// Source reports which layer supplied the current value.
func (p *Parameter) Source() Source {
	return p.source
}

// Explicit reports whether the value was explicitly set (CLI or stored
// answer) rather than defaulted or unset.
func (p *Parameter) Explicit() bool {
	return p.source == SourceCLI || p.source == SourceAnswers
}
