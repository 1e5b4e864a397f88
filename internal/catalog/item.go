// Package catalog loads item definitions and the collection rule tables that
// decide which items the auto-collector may gather.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/autocollect/internal/farm"
)

// CategoryAnimalProduct is the category tag carried by every animal product.
const CategoryAnimalProduct = "Animal Product"


// ItemDef defines the static properties of a catalog item loaded from YAML.
type ItemDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    int    `yaml:"price"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.Price < 0 {
		errs = append(errs, errors.New("Price must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// QualifiedID returns id with the object qualifier, e.g. "176" becomes "(O)176".
// Ids that already carry a qualifier are returned unchanged.
func QualifiedID(id string) string { return farm.QualifiedID(id) }

// BareID strips a leading "(X)" qualifier, e.g. "(O)176" becomes "176".
func BareID(id string) string {
	if strings.HasPrefix(id, "(") {
		if end := strings.Index(id, ")"); end >= 0 {
			return id[end+1:]
		}
	}
	return id
}

type itemFile struct {
	Items []ItemDef `yaml:"items"`
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as a list of
// ItemDefs under an "items" key, validates them, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		defs, err := ParseItems(data)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: %q: %w", path, err)
		}
		items = append(items, defs...)
	}
	return items, nil
}

// ParseItems parses and validates item definitions from YAML bytes.
func ParseItems(data []byte) ([]*ItemDef, error) {
	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cannot parse items: %w", err)
	}
	out := make([]*ItemDef, 0, len(f.Items))
	for i := range f.Items {
		d := f.Items[i]
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid item %d (%q): %w", i, d.ID, err)
		}
		out = append(out, &d)
	}
	return out, nil
}
