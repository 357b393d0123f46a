// Package options defines the static catalog of SDE build options and the
// parenthood ordering used when option changes are applied.
package options

import (
	"strings"

	"github.com/sdefoundry/sdectl/internal/apperrors"
)

// Option describes a single build/feature toggle. Parent is a weak
// by-name reference to another option that must be enabled for this one
// to be enabled.
type Option struct {
	Name        string `yaml:"name"`
	Default     bool   `yaml:"default"`
	Parent      string `yaml:"parent,omitempty"`
	Disableable bool   `yaml:"disableable"`

	depth int
}

// Selection pairs an option with a requested enablement state. It is the
// parsed form of one compact-notation token.
type Selection struct {
	Option  *Option
	Enabled bool
}

// Catalog is the static option model. It is immutable after construction;
// per-profile enablement state lives in the profile, not here.
type Catalog struct {
	ordered []*Option
	byName  map[string]*Option
}

// NewCatalog builds a catalog from option definitions, validating parent
// references and rejecting parent cycles.
func NewCatalog(defs []Option) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]*Option, 0, len(defs)),
		byName:  make(map[string]*Option, len(defs)),
	}
	for i := range defs {
		opt := defs[i]
		if opt.Name == "" {
			return nil, apperrors.NewConfigurationError("catalog", "option with empty name")
		}
		if _, ok := c.byName[opt.Name]; ok {
			return nil, apperrors.NewConfigurationError(opt.Name, "duplicate option definition")
		}
		o := &opt
		c.ordered = append(c.ordered, o)
		c.byName[opt.Name] = o
	}

	for _, o := range c.ordered {
		if o.Parent == "" {
			continue
		}
		if _, ok := c.byName[o.Parent]; !ok {
			return nil, apperrors.NewConfigurationError(o.Name, "parent refers to unknown option", o.Parent)
		}
	}

	if err := c.computeDepths(); err != nil {
		return nil, err
	}
	return c, nil
}

// computeDepths assigns each option its distance from a parentless root.
// A cycle in the parent chain is a definition error and fails fast.
func (c *Catalog) computeDepths() error {
	for _, o := range c.ordered {
		depth := 0
		seen := map[string]bool{o.Name: true}
		cur := o
		for cur.Parent != "" {
			next := c.byName[cur.Parent]
			if seen[next.Name] {
				cycle := append(cycleMembers(c, next), next.Name)
				return apperrors.NewConfigurationError(o.Name, "parent cycle detected", cycle...)
			}
			seen[next.Name] = true
			depth++
			cur = next
		}
		o.depth = depth
	}
	return nil
}

// cycleMembers collects the names on the parent chain starting at opt,
// stopping when a name repeats.
func cycleMembers(c *Catalog, opt *Option) []string {
	var members []string
	seen := map[string]bool{}
	cur := opt
	for cur != nil && !seen[cur.Name] {
		seen[cur.Name] = true
		members = append(members, cur.Name)
		cur = c.byName[cur.Parent]
	}
	return members
}

// Get returns the option with the given name.
func (c *Catalog) Get(name string) (*Option, error) {
	o, ok := c.byName[name]
	if !ok {
		return nil, apperrors.NewUnknownOptionError(name)
	}
	return o, nil
}

// Has reports whether an option with the given name exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Options returns all options in definition order.
func (c *Catalog) Options() []*Option {
	out := make([]*Option, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ParentChain returns the parents of opt from nearest to root.
func (c *Catalog) ParentChain(opt *Option) []*Option {
	var chain []*Option
	cur := opt
	for cur.Parent != "" {
		cur = c.byName[cur.Parent]
		chain = append(chain, cur)
	}
	return chain
}

// Dependents returns the options whose parent is name, in definition order.
func (c *Catalog) Dependents(name string) []*Option {
	var deps []*Option
	for _, o := range c.ordered {
		if o.Parent == name {
			deps = append(deps, o)
		}
	}
	return deps
}

// ParseSelection parses a single compact-notation token: "name" enables,
// "^name" disables. A second leading caret is invalid input.
func (c *Catalog) ParseSelection(token string) (Selection, error) {
	enabled := true
	name := token
	if strings.HasPrefix(name, "^") {
		enabled = false
		name = name[1:]
	}
	if name == "" || strings.HasPrefix(name, "^") {
		return Selection{}, apperrors.NewConfigurationError(token, "invalid option token")
	}
	opt, err := c.Get(name)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Option: opt, Enabled: enabled}, nil
}

// ParseSelections parses a comma-separated compact-notation list such as
// "a,^b,c". An empty string yields no selections. Any invalid token fails
// the whole parse; no partial result is returned.
func (c *Catalog) ParseSelections(spec string) ([]Selection, error) {
	if spec == "" {
		return nil, nil
	}
	tokens := strings.Split(spec, ",")
	selections := make([]Selection, 0, len(tokens))
	for _, token := range tokens {
		sel, err := c.ParseSelection(token)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, nil
}

// DefaultSelections returns one selection per catalog option carrying its
// default enablement, in definition order.
func (c *Catalog) DefaultSelections() []Selection {
	selections := make([]Selection, 0, len(c.ordered))
	for _, o := range c.ordered {
		selections = append(selections, Selection{Option: o, Enabled: o.Default})
	}
	return selections
}
