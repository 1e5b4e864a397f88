package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// ProductRule names one conceptual product and every catalog id it has been known by.
type ProductRule struct {
	Name string   `yaml:"name"`
	IDs  []string `yaml:"ids"`
}

// Rules holds the per-enclosure allow-lists.
type Rules struct {
	// AnimalProductCategory is the category tag that makes any item collectible in barns.
	AnimalProductCategory string        `yaml:"animal_product_category"`
	Coop                  []ProductRule `yaml:"coop"`
	Barn                  []ProductRule `yaml:"barn"`
}

// DefaultRules returns the compiled-in rule tables.
//
// Postcondition: the embedded tables always parse; a failure is a build defect and panics.
func DefaultRules() Rules {
	r, err := ParseRules(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog.DefaultRules: %v", err))
	}
	return r
}

// LoadRules reads rule tables from path. An empty path yields DefaultRules.
//
// Postcondition: Returns structurally valid Rules or a non-nil error.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	r, err := ParseRules(data)
	if err != nil {
		return Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	return r, nil
}

// ParseRules parses rule tables from YAML bytes and checks their structure.
func ParseRules(data []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parsing rules YAML: %w", err)
	}
	if r.AnimalProductCategory == "" {
		r.AnimalProductCategory = CategoryAnimalProduct
	}
	if err := r.checkShape(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (r Rules) checkShape() error {
	var errs []string
	check := func(table string, rules []ProductRule) {
		for i, pr := range rules {
			if pr.Name == "" {
				errs = append(errs, fmt.Sprintf("%s[%d]: name must not be empty", table, i))
			}
			if len(pr.IDs) == 0 {
				errs = append(errs, fmt.Sprintf("%s[%d] %q: at least one id is required", table, i, pr.Name))
			}
			for _, id := range pr.IDs {
				if strings.TrimSpace(id) == "" {
					errs = append(errs, fmt.Sprintf("%s[%d] %q: ids must not be blank", table, i, pr.Name))
				}
			}
		}
	}
	check("coop", r.Coop)
	check("barn", r.Barn)
	if len(errs) > 0 {
		return fmt.Errorf("invalid rules: %s", strings.Join(errs, "; "))
	}
	return nil
}

// CoopIDs returns the set of every id variant in the coop table.
func (r Rules) CoopIDs() map[string]struct{} {
	return idSet(r.Coop)
}

// BarnIDs returns the set of every id variant in the barn table.
func (r Rules) BarnIDs() map[string]struct{} {
	return idSet(r.Barn)
}

func idSet(rules []ProductRule) map[string]struct{} {
	set := make(map[string]struct{})
	for _, pr := range rules {
		for _, id := range pr.IDs {
			set[id] = struct{}{}
		}
	}
	return set
}

// CheckAgainst verifies every rule id resolves in reg. Unknown ids are reported
// with the closest registered id as a suggestion.
//
// Postcondition: returns nil iff every id resolves.
func (r Rules) CheckAgainst(reg *Registry) error {
	var errs []error
	known := reg.IDs()
	for _, table := range []struct {
		name  string
		rules []ProductRule
	}{{"coop", r.Coop}, {"barn", r.Barn}} {
		for _, pr := range table.rules {
			for _, id := range pr.IDs {
				if _, ok := reg.Item(id); ok {
					continue
				}
				msg := fmt.Sprintf("%s rule %q: %v %q", table.name, pr.Name, ErrUnknownItem, id)
				if s := suggest(id, known); s != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
				errs = append(errs, errors.New(msg))
			}
		}
	}
	return errors.Join(errs...)
}

// suggestLimit bounds the edit distance for which a suggestion is offered.
func suggestLimit(n int) int {
	switch {
	case n <= 3:
		return 1
	case n <= 6:
		return 2
	default:
		return 3
	}
}

func suggest(id string, known []string) string {
	want := BareID(id)
	best, bestDist := "", -1
	for _, cand := range known {
		dist := levenshtein.ComputeDistance(want, BareID(cand))
		if dist > suggestLimit(len(want)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}
