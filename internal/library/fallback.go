package library

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/capyhoc/capyhoc/internal/catalog"
)

//go:embed data
var dataFS embed.FS

// Bundle is the statically bundled dataset substituted when live retrieval
// fails. It mirrors the shape of the live collections exactly.
type Bundle struct {
	Videos     []catalog.ResourceItem
	Ebooks     []catalog.ResourceItem
	Lectures   []catalog.ResourceItem
	Documents  []catalog.ResourceItem
	Worksheets []catalog.Worksheet
}

// LoadBundle reads the embedded fallback datasets and validates each against
// its JSON Schema. The bundle is developer-owned, so unlike live sheet data a
// broken file is an error, not something to degrade around.
func LoadBundle() (*Bundle, error) {
	var b Bundle
	resources := map[string]*[]catalog.ResourceItem{
		"videos":    &b.Videos,
		"ebooks":    &b.Ebooks,
		"lectures":  &b.Lectures,
		"documents": &b.Documents,
	}
	for name, dst := range resources {
		if err := loadDataset(name, "resources", dst); err != nil {
			return nil, err
		}
	}
	if err := loadDataset("worksheets", "worksheets", &b.Worksheets); err != nil {
		return nil, err
	}
	return &b, nil
}

func loadDataset(name, schemaName string, dst any) error {
	doc, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("reading bundled %s: %w", name, err)
	}
	schema, err := dataFS.ReadFile("data/schema/" + schemaName + ".schema.json")
	if err != nil {
		return fmt.Errorf("reading %s schema: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validating bundled %s: %w", name, err)
	}
	if !result.Valid() {
		return fmt.Errorf("bundled %s violates schema: %v", name, result.Errors())
	}

	if err := json.Unmarshal(doc, dst); err != nil {
		return fmt.Errorf("decoding bundled %s: %w", name, err)
	}
	return nil
}
