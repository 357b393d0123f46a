package profile

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/options"
)

// document is the on-disk profile shape. Options use an ordered mapping so
// serialization preserves insertion order instead of sorting keys.
type document struct {
	Options       yaml.MapSlice `yaml:"options"`
	BSPPath       string        `yaml:"bsp-path,omitempty"`
	SwitchProfile string        `yaml:"switch-profile,omitempty"`
	P4Examples    []string      `yaml:"p4-examples,omitempty"`
	KernelDir     string        `yaml:"kernel-dir,omitempty"`
}

// Marshal serializes the profile to YAML, options in insertion order.
func Marshal(p *Profile) ([]byte, error) {
	doc := document{
		BSPPath:       p.BSPPath,
		SwitchProfile: p.SwitchProfile,
		P4Examples:    p.P4Examples,
		KernelDir:     p.KernelDir,
	}
	for _, s := range p.Settings() {
		doc.Options = append(doc.Options, yaml.MapItem{Key: s.Name, Value: s.Enabled})
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}
	return out, nil
}

// Unmarshal parses a profile document, validating its structure against the
// profile schema and every option name against the catalog. No partial
// profile is returned on error.
func Unmarshal(data []byte, catalog *options.Catalog) (*Profile, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	p := New(catalog)
	p.BSPPath = doc.BSPPath
	p.SwitchProfile = doc.SwitchProfile
	p.KernelDir = doc.KernelDir
	for _, program := range doc.P4Examples {
		p.AddP4Program(program)
	}
	for _, item := range doc.Options {
		name, ok := item.Key.(string)
		if !ok {
			return nil, apperrors.NewConfigurationError(fmt.Sprint(item.Key), "option name must be a string")
		}
		enabled, ok := item.Value.(bool)
		if !ok {
			return nil, apperrors.NewConfigurationError(name, "option value must be a boolean")
		}
		if err := p.SetOption(name, enabled); err != nil {
			return nil, err
		}
	}
	return p, nil
}
