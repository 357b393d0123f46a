package options

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogDoc struct {
	Options []optionDef `yaml:"options"`
}

type optionDef struct {
	Name        string `yaml:"name"`
	Default     bool   `yaml:"default"`
	Parent      string `yaml:"parent"`
	Disableable *bool  `yaml:"disableable"` // nil means disableable
}

// LoadCatalog parses a catalog definition document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse option catalog: %w", err)
	}
	defs := make([]Option, 0, len(doc.Options))
	for _, d := range doc.Options {
		disableable := true
		if d.Disableable != nil {
			disableable = *d.Disableable
		}
		defs = append(defs, Option{
			Name:        d.Name,
			Default:     d.Default,
			Parent:      d.Parent,
			Disableable: disableable,
		})
	}
	return NewCatalog(defs)
}

// DefaultCatalog returns the built-in option catalog. A definition error in
// the embedded document is a programming error, so it panics.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded option catalog is invalid: %v", err))
	}
	return c
}
