// Package world loads farm state from YAML for the standalone host.
package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/autocollect/internal/farm"
)

// ItemFactory creates item instances from catalog ids.
type ItemFactory interface {
	Create(id string) (*farm.Item, error)
}

// yamlFarmFile is the top-level YAML structure for farm files.
type yamlFarmFile struct {
	Farm yamlFarm `yaml:"farm"`
}

type yamlFarm struct {
	Structures []yamlStructure `yaml:"structures"`
}

type yamlStructure struct {
	ID      string         `yaml:"id"`
	Type    string         `yaml:"type"`
	Indoors *yamlEnclosure `yaml:"indoors"`
}

type yamlEnclosure struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Objects []yamlObject `yaml:"objects"`
	Animals []yamlAnimal `yaml:"animals"`
}

type yamlObject struct {
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	Item  *yamlItem  `yaml:"item"`
	Chest *yamlChest `yaml:"chest"`
}

type yamlItem struct {
	ID string `yaml:"id"`
	// Quality is a produce quality tier: 0, 1, 2 or 4.
	Quality int `yaml:"quality"`
	Stack   int `yaml:"stack"`
}

type yamlChest struct {
	Items []yamlItem `yaml:"items"`
}

type yamlAnimal struct {
	ID                   string `yaml:"id"`
	Name                 string `yaml:"name"`
	Type                 string `yaml:"type"`
	Age                  int    `yaml:"age"`
	DaysToMature         int    `yaml:"days_to_mature"`
	CurrentProduce       string `yaml:"current_produce"`
	ProduceQuality       int    `yaml:"produce_quality"`
	DoubleYield          bool   `yaml:"double_yield"`
	DaysSinceLastProduce int    `yaml:"days_since_last_produce"`
}

// LoadFarmFromFile reads and validates a farm YAML file.
//
// Precondition: path must point to a valid YAML farm file; capacity >= 1.
// Postcondition: Returns a populated Farm or a non-nil error.
func LoadFarmFromFile(path string, items ItemFactory, capacity int) (*farm.Farm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading farm file %s: %w", path, err)
	}
	return LoadFarmFromBytes(data, items, capacity)
}

// LoadFarmFromBytes parses a farm from YAML bytes. Every item is created through
// items and every chest is given the same capacity.
//
// Precondition: data must be valid YAML conforming to the farm schema; capacity >= 1.
// Postcondition: Returns a populated Farm or a non-nil error. Structure ids and
// indoors ids are each unique across the farm.
func LoadFarmFromBytes(data []byte, items ItemFactory, capacity int) (*farm.Farm, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("chest capacity must be >= 1, got %d", capacity)
	}
	var file yamlFarmFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing farm YAML: %w", err)
	}
	if len(file.Farm.Structures) == 0 {
		return nil, errors.New("farm has no structures")
	}

	f := farm.NewFarm()
	enclosures := make(map[string]string, len(file.Farm.Structures))
	for _, ys := range file.Farm.Structures {
		s, err := convertStructure(ys, items, capacity)
		if err != nil {
			return nil, fmt.Errorf("structure %q: %w", ys.ID, err)
		}
		if s.Indoors != nil {
			if other, dup := enclosures[s.Indoors.ID]; dup {
				return nil, fmt.Errorf("structure %q: indoors id %q already used by structure %q", ys.ID, s.Indoors.ID, other)
			}
			enclosures[s.Indoors.ID] = ys.ID
		}
		if err := f.AddStructure(s); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func convertStructure(ys yamlStructure, items ItemFactory, capacity int) (*farm.Structure, error) {
	if ys.ID == "" {
		return nil, errors.New("id must not be empty")
	}
	if ys.Type == "" {
		return nil, errors.New("type must not be empty")
	}
	s := &farm.Structure{ID: ys.ID, Type: ys.Type}
	if ys.Indoors == nil {
		return s, nil
	}
	enc, err := convertEnclosure(*ys.Indoors, items, capacity)
	if err != nil {
		return nil, fmt.Errorf("indoors: %w", err)
	}
	s.Indoors = enc
	return s, nil
}

func convertEnclosure(ye yamlEnclosure, items ItemFactory, capacity int) (*farm.Enclosure, error) {
	if ye.ID == "" {
		return nil, errors.New("id must not be empty")
	}
	enc := farm.NewEnclosure(ye.ID, ye.Name)

	for _, yo := range ye.Objects {
		pos := farm.Position{X: yo.X, Y: yo.Y}
		if _, taken := enc.Objects.Get(pos); taken {
			return nil, fmt.Errorf("object at %s: position already occupied", pos)
		}
		obj, err := convertObject(yo, items, capacity)
		if err != nil {
			return nil, fmt.Errorf("object at %s: %w", pos, err)
		}
		enc.Objects.Set(pos, obj)
	}

	seen := make(map[string]bool, len(ye.Animals))
	for _, ya := range ye.Animals {
		if ya.ID == "" {
			return nil, errors.New("animal id must not be empty")
		}
		if seen[ya.ID] {
			return nil, fmt.Errorf("animal %q: duplicate id", ya.ID)
		}
		seen[ya.ID] = true
		enc.Animals = append(enc.Animals, &farm.Animal{
			ID:                   ya.ID,
			Name:                 ya.Name,
			Type:                 ya.Type,
			Age:                  ya.Age,
			DaysToMature:         ya.DaysToMature,
			CurrentProduce:       ya.CurrentProduce,
			ProduceQuality:       ya.ProduceQuality,
			DoubleYield:          ya.DoubleYield,
			DaysSinceLastProduce: ya.DaysSinceLastProduce,
		})
	}
	return enc, nil
}

func convertObject(yo yamlObject, items ItemFactory, capacity int) (farm.Object, error) {
	switch {
	case yo.Item != nil && yo.Chest != nil:
		return nil, errors.New("must be either an item or a chest, not both")
	case yo.Item != nil:
		return convertItem(*yo.Item, items)
	case yo.Chest != nil:
		if len(yo.Chest.Items) > capacity {
			return nil, fmt.Errorf("chest holds %d slots, capacity is %d", len(yo.Chest.Items), capacity)
		}
		chest := farm.NewChest(capacity)
		for _, yi := range yo.Chest.Items {
			it, err := convertItem(yi, items)
			if err != nil {
				return nil, err
			}
			if err := chest.Append(it); err != nil {
				return nil, err
			}
		}
		return chest, nil
	default:
		return nil, errors.New("must be an item or a chest")
	}
}

func convertItem(yi yamlItem, items ItemFactory) (*farm.Item, error) {
	it, err := items.Create(yi.ID)
	if err != nil {
		return nil, err
	}
	it.Quality = farm.QualityFromTier(yi.Quality)
	if yi.Stack < 0 {
		return nil, fmt.Errorf("item %q: stack must be >= 1, got %d", yi.ID, yi.Stack)
	}
	if yi.Stack > 0 {
		it.Stack = yi.Stack
	}
	return it, nil
}
