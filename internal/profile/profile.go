// Package profile holds the declarative build profile: which options are
// enabled plus auxiliary build parameters, with an order-preserving YAML
// round-trip.
package profile

import (
	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/options"
)

// Setting is one option entry of a profile, in insertion order.
type Setting struct {
	Name    string
	Enabled bool
}

// Profile is a named bundle of option settings and build parameters.
// Option insertion order is preserved so serialized profiles diff cleanly.
type Profile struct {
	BSPPath       string
	SwitchProfile string
	P4Examples    []string
	KernelDir     string

	catalog *options.Catalog
	order   []string
	state   map[string]bool
}

// New creates an empty profile bound to an option catalog.
func New(catalog *options.Catalog) *Profile {
	return &Profile{
		catalog: catalog,
		state:   map[string]bool{},
	}
}

// Catalog returns the option catalog this profile is bound to.
func (p *Profile) Catalog() *options.Catalog {
	return p.catalog
}

// SetOption records an enablement state for a catalog option. It does not
// cascade to parents or dependents; callers that need cascading use Enable
// and Disable.
func (p *Profile) SetOption(name string, enabled bool) error {
	if !p.catalog.Has(name) {
		return apperrors.NewUnknownOptionError(name)
	}
	p.set(name, enabled)
	return nil
}

func (p *Profile) set(name string, enabled bool) {
	if _, ok := p.state[name]; !ok {
		p.order = append(p.order, name)
	}
	p.state[name] = enabled
}

// Enable turns an option on, transitively enabling its parent chain first.
func (p *Profile) Enable(name string) error {
	opt, err := p.catalog.Get(name)
	if err != nil {
		return err
	}
	chain := p.catalog.ParentChain(opt)
	for i := len(chain) - 1; i >= 0; i-- {
		p.set(chain[i].Name, true)
	}
	p.set(name, true)
	return nil
}

// Disable turns an option off. It is rejected when the option is marked
// non-disableable or when enabled dependents exist; dependents are never
// cascade-disabled silently.
func (p *Profile) Disable(name string) error {
	opt, err := p.catalog.Get(name)
	if err != nil {
		return err
	}
	if !opt.Disableable {
		return apperrors.NewConfigurationError(name, "option cannot be disabled")
	}
	var enabledDeps []string
	for _, dep := range p.catalog.Dependents(name) {
		if p.state[dep.Name] {
			enabledDeps = append(enabledDeps, dep.Name)
		}
	}
	if len(enabledDeps) > 0 {
		return apperrors.NewConfigurationError(name, "cannot disable option with enabled dependents", enabledDeps...)
	}
	p.set(name, false)
	return nil
}

// IsEnabled reports the recorded state of an option; options never set are
// disabled.
func (p *Profile) IsEnabled(name string) bool {
	return p.state[name]
}

// Settings returns all recorded option settings in insertion order.
func (p *Profile) Settings() []Setting {
	out := make([]Setting, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, Setting{Name: name, Enabled: p.state[name]})
	}
	return out
}

// ConfigArgs returns the names of all enabled options in insertion order.
// Downstream stages key behavior off this set (e.g. presence of "asic").
func (p *Profile) ConfigArgs() []string {
	var args []string
	for _, name := range p.order {
		if p.state[name] {
			args = append(args, name)
		}
	}
	return args
}

// AddP4Program appends a program to the example list. Duplicates are kept;
// the configurator deduplicates downstream.
func (p *Profile) AddP4Program(name string) {
	p.P4Examples = append(p.P4Examples, name)
}
