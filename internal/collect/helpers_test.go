package collect_test

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/autocollect/internal/catalog"
	"github.com/cory-johannsen/autocollect/internal/collect"
	"github.com/cory-johannsen/autocollect/internal/config"
	"github.com/cory-johannsen/autocollect/internal/farm"
)

// tb is satisfied by *testing.T and *rapid.T.
type tb interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

func testRegistry(t tb) *catalog.Registry {
	reg, err := catalog.NewRegistryFrom([]*catalog.ItemDef{
		{ID: "176", Name: "Egg", Category: catalog.CategoryAnimalProduct},
		{ID: "442", Name: "Duck Egg", Category: catalog.CategoryAnimalProduct},
		{ID: "184", Name: "Milk", Category: catalog.CategoryAnimalProduct},
		{ID: "436", Name: "Goat Milk", Category: catalog.CategoryAnimalProduct},
		{ID: "440", Name: "Wool", Category: catalog.CategoryAnimalProduct},
		{ID: "430", Name: "Truffle", Category: catalog.CategoryAnimalProduct},
		{ID: "CloudWool", Name: "Cloud Wool", Category: catalog.CategoryAnimalProduct},
		{ID: "178", Name: "Hay", Category: "Fodder"},
	})
	require.NoError(t, err)
	return reg
}

func enabledConfig() config.CollectorConfig {
	return config.CollectorConfig{
		Enabled:           true,
		EnableForCoops:    true,
		EnableForBarns:    true,
		ContainerCapacity: config.DefaultContainerCapacity,
	}
}

// recorder collects notifications.
type recorder struct {
	got []collect.Notification
}

func (r *recorder) Notify(n collect.Notification) { r.got = append(r.got, n) }

type harness struct {
	farm      *farm.Farm
	collector *collect.Collector
	notes     *recorder
	logs      *observer.ObservedLogs
	reg       *catalog.Registry
}

func newHarness(t tb, cfg config.CollectorConfig) *harness {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := testRegistry(t)
	f := farm.NewFarm()
	notes := &recorder{}
	c := collect.NewCollector(
		cfg,
		f,
		collect.NewClassifier(catalog.DefaultRules()),
		collect.NewSynthesizer(reg),
		notes,
		zap.New(core),
	)
	return &harness{farm: f, collector: c, notes: notes, logs: logs, reg: reg}
}

func (h *harness) enclosure(t tb, structureType string) *farm.Enclosure {
	enc := farm.NewEnclosure(structureType+"-indoors", structureType)
	require.NoError(t, h.farm.AddStructure(&farm.Structure{
		ID:      structureType + "-" + string(rune('a'+len(h.farm.Structures()))),
		Type:    structureType,
		Indoors: enc,
	}))
	return enc
}

func (h *harness) item(t tb, id string) *farm.Item {
	it, err := h.reg.Create(id)
	require.NoError(t, err)
	return it
}

func fillChest(capacity int, id string) *farm.Chest {
	c := farm.NewChest(capacity)
	for c.Len() < capacity {
		_ = c.Append(farm.NewItem(id, "Stone", "Resource", farm.QualityLow, 1))
	}
	return c
}
