package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/autocollect/internal/catalog"
	"github.com/cory-johannsen/autocollect/internal/farm"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistryFrom([]*catalog.ItemDef{
		{ID: "176", Name: "Egg", Category: catalog.CategoryAnimalProduct},
		{ID: "184", Name: "Milk", Category: catalog.CategoryAnimalProduct},
		{ID: "178", Name: "Hay", Category: "Fodder"},
	})
	require.NoError(t, err)
	return reg
}

func TestRegistry_BareAndQualifiedResolveTogether(t *testing.T) {
	reg := testRegistry(t)
	a, ok := reg.Item("176")
	require.True(t, ok)
	b, ok := reg.Item("(O)176")
	require.True(t, ok)
	assert.Same(t, a, b)
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	reg := testRegistry(t)
	err := reg.Register(&catalog.ItemDef{ID: "(O)176", Name: "Egg again"})
	assert.Error(t, err)
}

func TestRegistry_Create(t *testing.T) {
	reg := testRegistry(t)
	it, err := reg.Create("184")
	require.NoError(t, err)
	assert.Equal(t, "(O)184", it.ID)
	assert.Equal(t, "Milk", it.Name)
	assert.Equal(t, catalog.CategoryAnimalProduct, it.Category)
	assert.Equal(t, farm.QualityLow, it.Quality)
	assert.Equal(t, 1, it.Stack)
	assert.NotEmpty(t, it.InstanceID)

	other, err := reg.Create("(O)184")
	require.NoError(t, err)
	assert.NotEqual(t, it.InstanceID, other.InstanceID)
}

func TestRegistry_CreateUnknown(t *testing.T) {
	reg := testRegistry(t)
	_, err := reg.Create("999")
	assert.True(t, errors.Is(err, catalog.ErrUnknownItem))
}

func TestRegistry_IDsSorted(t *testing.T) {
	reg := testRegistry(t)
	assert.Equal(t, []string{"(O)176", "(O)178", "(O)184"}, reg.IDs())
}
