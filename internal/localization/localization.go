// Package localization provides the string tables for user-facing text.
package localization

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// Keys used by the image comments screen.
const (
	KeyTitle     = "IMAGE_COMMENTS_VIEW_TITLE"
	KeyLoadError = "IMAGE_COMMENTS_LOAD_ERROR"
)

const (
	tableName       = "ImageComments"
	defaultLanguage = "en"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// Table looks up localized strings by key.
type Table interface {
	Lookup(key string) string
}

// MapTable is a Table backed by a map.
// Lookup of a missing key returns the key itself.
type MapTable map[string]string

// Lookup implements Table.
func (t MapTable) Lookup(key string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

// Load reads the embedded table for language, e.g. "en".
func Load(language string) (MapTable, error) {
	name := path.Join("tables", fmt.Sprintf("%s.%s.yaml", tableName, language))
	data, err := tablesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no %s table for language %q", tableName, language)
	}
	return Parse(data)
}

// Parse decodes a YAML mapping of keys to strings.
func Parse(data []byte) (MapTable, error) {
	var t MapTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing string table: %w", err)
	}
	if t == nil {
		t = MapTable{}
	}
	return t, nil
}

var defaultTable = mustLoad(defaultLanguage)

func mustLoad(language string) MapTable {
	t, err := Load(language)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the built-in English table.
func Default() Table {
	return defaultTable
}
