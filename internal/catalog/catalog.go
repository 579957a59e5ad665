// Package catalog holds the static list of unit categories and currencies
// offered by the converter. It is loaded once at start and never mutated.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/SscSPs/smart_converter/pkg/units"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Category is a labelled, ordered list of unit names of one dimension.
type Category struct {
	Label string   `yaml:"label"`
	Icon  string   `yaml:"icon"`
	Units []string `yaml:"units"`
}

// Display returns the label prefixed with its icon, e.g. "📏 Length".
func (c Category) Display() string {
	if c.Icon == "" {
		return c.Label
	}
	return c.Icon + " " + c.Label
}

// HasUnit reports whether name is one of the category's units.
func (c Category) HasUnit(name string) bool {
	for _, u := range c.Units {
		if u == name {
			return true
		}
	}
	return false
}

type document struct {
	Categories []Category `yaml:"categories"`
	Currencies []string   `yaml:"currencies"`
}

// Catalog is the read-only unit and currency catalog.
type Catalog struct {
	categories []Category
	byLabel    map[string]int
	currencies []string
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}

	c := &Catalog{
		categories: doc.Categories,
		byLabel:    make(map[string]int, len(doc.Categories)),
		currencies: make([]string, 0, len(doc.Currencies)),
	}
	for i, cat := range doc.Categories {
		key := strings.ToLower(cat.Label)
		if _, dup := c.byLabel[key]; dup {
			return nil, fmt.Errorf("duplicate catalog category %q", cat.Label)
		}
		c.byLabel[key] = i
	}
	for _, code := range doc.Currencies {
		c.currencies = append(c.currencies, strings.ToUpper(code))
	}
	return c, nil
}

// Validate checks that every unit is known to reg and that all units of a
// category share one dimension. All problems are reported together.
func (c *Catalog) Validate(reg *units.Registry) error {
	var result *multierror.Error
	for _, cat := range c.categories {
		if len(cat.Units) == 0 {
			result = multierror.Append(result, fmt.Errorf("category %q has no units", cat.Label))
			continue
		}
		for _, name := range cat.Units {
			if _, err := reg.Lookup(name); err != nil {
				result = multierror.Append(result, fmt.Errorf("category %q: %w", cat.Label, err))
				continue
			}
			if !reg.Compatible(cat.Units[0], name) {
				result = multierror.Append(result, fmt.Errorf("category %q: %q and %q measure different dimensions", cat.Label, cat.Units[0], name))
			}
		}
	}
	for _, code := range c.currencies {
		if len(code) != 3 {
			result = multierror.Append(result, fmt.Errorf("currency code %q must be 3 letters", code))
		}
	}
	return result.ErrorOrNil()
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category finds a category by its label, with or without the icon prefix.
func (c *Catalog) Category(label string) (Category, bool) {
	label = strings.TrimSpace(label)
	if i, ok := c.byLabel[strings.ToLower(label)]; ok {
		return c.categories[i], true
	}
	for _, cat := range c.categories {
		if cat.Display() == label {
			return cat, true
		}
	}
	return Category{}, false
}

// Currencies returns the offered currency codes in catalog order.
func (c *Catalog) Currencies() []string {
	out := make([]string, len(c.currencies))
	copy(out, c.currencies)
	return out
}

// HasCurrency reports whether code is offered.
func (c *Catalog) HasCurrency(code string) bool {
	code = strings.ToUpper(code)
	for _, cur := range c.currencies {
		if cur == code {
			return true
		}
	}
	return false
}
