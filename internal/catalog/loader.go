package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Catalog file names expected inside a catalog directory.
const (
	kitchenFileName    = "kitchen.yaml"
	additionalFileName = "additional.yaml"
)

type catalogFile struct {
	Inputs []InputDef
}

// LoadFile reads one catalog from a YAML file. The file holds a top-level
// `inputs` list; list position is declaration order, which YAML preserves,
// so the ordering contract survives the round trip.
func LoadFile(kind Kind, path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}
	if len(file.Inputs) == 0 {
		return nil, fmt.Errorf("catalog file %s declares no inputs", path)
	}

	return New(kind, file.Inputs)
}

// LoadDir loads the kitchen and additional-work catalogs from dir. A missing
// file falls back to the built-in default for that kind, so a deployment can
// override just one catalog.
func LoadDir(dir string) (map[Kind]*Catalog, error) {
	catalogs := make(map[Kind]*Catalog, 2)

	files := []struct {
		kind Kind
		name string
	}{
		{KindKitchen, kitchenFileName},
		{KindAdditional, additionalFileName},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			c, err := Default(f.kind)
			if err != nil {
				return nil, err
			}
			catalogs[f.kind] = c
			continue
		}

		c, err := LoadFile(f.kind, path)
		if err != nil {
			return nil, err
		}
		catalogs[f.kind] = c
	}

	return catalogs, nil
}

// LoadDefaults builds both built-in catalogs, used when no catalog directory
// is configured.
func LoadDefaults() (map[Kind]*Catalog, error) {
	catalogs := make(map[Kind]*Catalog, 2)
	for _, kind := range []Kind{KindKitchen, KindAdditional} {
		c, err := Default(kind)
		if err != nil {
			return nil, err
		}
		catalogs[kind] = c
	}
	return catalogs, nil
}
