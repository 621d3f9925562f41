package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/ytget/topbar/internal/derive"
)

//go:embed default.yaml
var defaultCatalogYAML []byte

// File is the on-disk shape of a catalog. Icons keeps document order so
// duplicate detection can name the first entry.
type File struct {
	Version string        `yaml:"version"`
	Default string        `yaml:"default"`
	Icons   yaml.MapSlice `yaml:"icons"`
}

// Catalog is an immutable lookup from normalized identity key to icon
type Catalog struct {
	version string
	def     derive.IconRef
	keys    []string
	icons   map[string]derive.IconRef
}

var _ derive.IconLookup = (*Catalog)(nil)

// New builds a catalog from raw process-name keys. Keys are normalized; two
// raw keys that normalize to the same identity are an error, as is a key that
// normalizes to nothing.
func New(version, defaultIcon string, icons yaml.MapSlice) (*Catalog, error) {
	if defaultIcon == "" {
		defaultIcon = derive.DefaultAppIcon
	}
	c := &Catalog{
		version: version,
		def:     derive.IconRef{Name: defaultIcon},
		keys:    make([]string, 0, len(icons)),
		icons:   make(map[string]derive.IconRef, len(icons)),
	}

	raw := make(map[string]string, len(icons))
	for _, item := range icons {
		rawKey := fmt.Sprint(item.Key)
		file, ok := item.Value.(string)
		if !ok || file == "" {
			return nil, fmt.Errorf("icon for %q must be a file name", rawKey)
		}

		key := derive.Normalize(rawKey)
		if key == "" {
			return nil, fmt.Errorf("key %q normalizes to nothing", rawKey)
		}
		if first, dup := raw[key]; dup {
			return nil, fmt.Errorf("keys %q and %q both normalize to %q", first, rawKey, key)
		}
		raw[key] = rawKey
		c.keys = append(c.keys, key)
		c.icons[key] = derive.IconRef{Name: file}
	}
	return c, nil
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Version, f.Default, f.Icons)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		// default.yaml ships with the binary and is covered by tests
		panic(fmt.Sprintf("built-in icon catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file. A missing file yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault is Load with soft failure: errors are logged and the
// built-in catalog is returned.
func LoadOrDefault(path string) *Catalog {
	c, err := Load(path)
	if err != nil {
		log.Printf("Warning: using built-in icon catalog: %v", err)
		return Default()
	}
	return c
}

// Save writes the catalog to path, creating its directory if needed
func Save(c *Catalog, path string) error {
	data, err := yaml.Marshal(c.File())
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// File returns the catalog in its on-disk shape, with normalized keys
func (c *Catalog) File() File {
	icons := make(yaml.MapSlice, 0, len(c.keys))
	for _, key := range c.keys {
		icons = append(icons, yaml.MapItem{Key: key, Value: c.icons[key].Name})
	}
	return File{Version: c.version, Default: c.def.Name, Icons: icons}
}

// Lookup returns the icon for a normalized key
func (c *Catalog) Lookup(key string) (derive.IconRef, bool) {
	if c == nil {
		return derive.IconRef{}, false
	}
	ref, ok := c.icons[key]
	return ref, ok
}

// Default returns the fallback icon
func (c *Catalog) Default() derive.IconRef {
	if c == nil {
		return derive.IconRef{Name: derive.DefaultAppIcon}
	}
	return c.def
}

// Version returns the catalog version string
func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the normalized keys in document order
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}
