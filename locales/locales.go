// Package locales loads per-locale translation catalogs and flattens them
// into defined-key sets.
//
// Three catalog formats are supported, dispatched by file extension:
//
//   - JSON (en.json): nested object, leaves contribute dotted paths
//   - YAML (en.yaml / en.yml): nested map, same flattening
//   - PO (en.po): gettext catalog, msgids form the flat key set
//
// Flattening is depth-first: a nested map contributes no key itself, every
// non-map leaf (string, number, bool, array) contributes its full dotted
// ancestor path. A malformed or unreadable catalog degrades to an empty key
// set so one broken locale never aborts a run.
package locales

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"
)

// KeySet is a locale's flat set of dotted key paths.
type KeySet map[string]bool

// Catalog is one locale's loaded key set.
type Catalog struct {
	// Locale is the language code derived from the file name (en.json → en).
	Locale string
	// Path is the catalog file on disk.
	Path string
	// Keys is the flattened defined-key set.
	Keys KeySet
}

// catalogExtensions are the recognized catalog formats.
var catalogExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
	".po":   true,
}

// Discover finds locale catalogs in dir, one per locale, sorted by locale
// code. When only wants non-empty, locales outside it are skipped.
func Discover(dir string, only []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading locales dir %s: %w", dir, err)
	}

	wanted := make(map[string]bool, len(only))
	for _, l := range only {
		wanted[l] = true
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !catalogExtensions[ext] {
			continue
		}
		locale := strings.TrimSuffix(e.Name(), ext)
		if len(wanted) > 0 && !wanted[locale] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// Load reads and flattens one catalog file. The returned Catalog always has
// a usable (possibly empty) key set; the error reports why it is empty.
func Load(path string) (*Catalog, error) {
	ext := filepath.Ext(path)
	c := &Catalog{
		Locale: strings.TrimSuffix(filepath.Base(path), ext),
		Path:   path,
		Keys:   make(KeySet),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading %s: %w", path, err)
	}

	switch ext {
	case ".json":
		err = flattenJSON(data, c.Keys)
	case ".yaml", ".yml":
		err = flattenYAML(data, c.Keys)
	case ".po":
		err = flattenPO(data, c.Keys)
	default:
		err = fmt.Errorf("unsupported catalog format %s", ext)
	}
	if err != nil {
		c.Keys = make(KeySet)
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}

	return c, nil
}

// SortedKeys returns the key set in lexicographic order for stable output.
func (k KeySet) SortedKeys() []string {
	out := make([]string, 0, len(k))
	for key := range k {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Union merges the defined keys of all catalogs.
func Union(catalogs []*Catalog) KeySet {
	all := make(KeySet)
	for _, c := range catalogs {
		for k := range c.Keys {
			all[k] = true
		}
	}
	return all
}

// ---------------------------------------------------------------------------
// Format flattening
// ---------------------------------------------------------------------------

func flattenJSON(data []byte, into KeySet) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	flattenMap(doc, "", into)
	return nil
}

func flattenYAML(data []byte, into KeySet) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	flattenMap(doc, "", into)
	return nil
}

// flattenMap walks a nested map depth-first, joining ancestor keys with dots.
func flattenMap(obj map[string]any, prefix string, into KeySet) {
	for key, value := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenMap(v, path, into)
		case map[any]any:
			// yaml.v3 decodes non-string-keyed maps into this shape.
			flattenMap(stringifyKeys(v), path, into)
		default:
			into[path] = true
		}
	}
}

func stringifyKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}

// flattenPO collects the msgids of a gettext catalog. The header entry
// (empty msgid) is skipped.
func flattenPO(data []byte, into KeySet) error {
	po := gotext.NewPo()
	po.Parse(data)
	for id := range po.GetDomain().GetTranslations() {
		if id == "" {
			continue
		}
		into[id] = true
	}
	return nil
}
