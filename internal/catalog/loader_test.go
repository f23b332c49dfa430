package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const loaderFixture = `inputs:
  - name: showerTile
    label: Shower wall tile
    category: bathroom
    subcategory: tileWork
    element: numberInput
    unit: sq ft
    price: 24
    formula: UNIT * PRICE
  - name: basementFlooring
    label: Basement flooring
    category: basement
    element: selectCustomInputText
    selections: [Carpet, Vinyl Plank, Epoxy]
    unit: sq ft
    prices: [5, 8, 11]
    formula: UNIT * PRICE
    custom: true
  - name: exhaustFan
    label: Exhaust fan
    category: bathroom
    element: radioButton
    selections: ["Yes", "No"]
    price: 290
    formula: Y=TRUE
`

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	return path
}

func TestLoadFile_PreservesDeclarationOrder(t *testing.T) {
	path := writeCatalogFile(t, t.TempDir(), "additional.yaml", loaderFixture)

	c, err := LoadFile(KindAdditional, path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	want := []string{"showerTile", "basementFlooring", "exhaustFan"}
	all := c.All()
	if len(all) != len(want) {
		t.Fatalf("loaded %d inputs, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestLoadFile_ResolvesFields(t *testing.T) {
	path := writeCatalogFile(t, t.TempDir(), "additional.yaml", loaderFixture)

	c, err := LoadFile(KindAdditional, path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	flooring, ok := c.ByName("basementFlooring")
	if !ok {
		t.Fatal("basementFlooring not loaded")
	}
	if flooring.Element != SelectCustomText {
		t.Fatalf("element = %v", flooring.Element)
	}
	if len(flooring.Prices) != 3 || flooring.Prices[1] != 8 {
		t.Fatalf("prices = %v", flooring.Prices)
	}
	if !flooring.Custom || flooring.CustomField != "basementFlooringCustom" {
		t.Fatalf("custom companion not resolved: %+v", flooring)
	}

	tile, _ := c.ByName("showerTile")
	if tile.BasePrice() != 24 {
		t.Fatalf("scalar price = %v, want 24", tile.BasePrice())
	}
	if tile.Subcategory != "tileWork" {
		t.Fatalf("subcategory = %q", tile.Subcategory)
	}
}

func TestLoadFile_DuplicateNameFails(t *testing.T) {
	content := `inputs:
  - name: showerTile
    element: numberInput
  - name: showerTile
    element: numberInput
`
	path := writeCatalogFile(t, t.TempDir(), "additional.yaml", content)

	if _, err := LoadFile(KindAdditional, path); err == nil {
		t.Fatal("expected duplicate-name error")
	}
}

func TestLoadDir_MissingFileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "additional.yaml", loaderFixture)

	catalogs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if catalogs[KindAdditional].Len() != 3 {
		t.Fatalf("additional catalog not loaded from file: %d inputs", catalogs[KindAdditional].Len())
	}

	def, err := Default(KindKitchen)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if catalogs[KindKitchen].Len() != def.Len() {
		t.Fatalf("kitchen catalog should fall back to the built-in default")
	}
}
