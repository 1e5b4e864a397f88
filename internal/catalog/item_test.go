package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/autocollect/internal/catalog"
)

func TestItemDef_Validate(t *testing.T) {
	ok := &catalog.ItemDef{ID: "176", Name: "Egg", Category: catalog.CategoryAnimalProduct}
	assert.NoError(t, ok.Validate())

	assert.Error(t, (&catalog.ItemDef{Name: "Egg"}).Validate())
	assert.Error(t, (&catalog.ItemDef{ID: "176"}).Validate())
	assert.Error(t, (&catalog.ItemDef{ID: "176", Name: "Egg", Price: -1}).Validate())
}

func TestQualifiedAndBareID(t *testing.T) {
	assert.Equal(t, "(O)176", catalog.QualifiedID("176"))
	assert.Equal(t, "(O)176", catalog.QualifiedID("(O)176"))
	assert.Equal(t, "(BC)130", catalog.QualifiedID("(BC)130"))
	assert.Equal(t, "176", catalog.BareID("(O)176"))
	assert.Equal(t, "176", catalog.BareID("176"))
}

func TestProperty_BareOfQualifiedRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.StringMatching(`[0-9A-Za-z_]{1,12}`).Draw(t, "id")
		if got := catalog.BareID(catalog.QualifiedID(id)); got != id {
			t.Fatalf("BareID(QualifiedID(%q)) = %q", id, got)
		}
	})
}

func TestLoadItems_Content(t *testing.T) {
	defs, err := catalog.LoadItems(filepath.Join("..", "..", "content", "items"))
	require.NoError(t, err)
	assert.NotEmpty(t, defs)

	reg, err := catalog.NewRegistryFrom(defs)
	require.NoError(t, err)
	require.NoError(t, catalog.DefaultRules().CheckAgainst(reg),
		"every default rule id must exist in the shipped catalog")
}

func TestLoadItems_SkipsNonYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(`
items:
  - { id: "176", name: Egg, category: Animal Product }
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not yaml"), 0644))

	defs, err := catalog.LoadItems(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Egg", defs[0].Name)
}

func TestLoadItems_InvalidItem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
items:
  - { id: "", name: Egg }
`), 0644))
	_, err := catalog.LoadItems(dir)
	assert.Error(t, err)
}

func TestLoadItems_MissingDir(t *testing.T) {
	_, err := catalog.LoadItems("/nonexistent/items")
	assert.Error(t, err)
}
