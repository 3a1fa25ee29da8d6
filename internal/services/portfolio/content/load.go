package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const catalogSchemaURL = "https://portfolio.schemas.local/catalog.schema.json"

//go:embed catalog.schema.json
var catalogSchemaJSON string

var catalogSchema = mustCompileCatalogSchema()

type catalogDocument struct {
	Projects []projectDocument `yaml:"projects"`
}

type projectDocument struct {
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Tech       []string `yaml:"tech"`
	Impact     []string `yaml:"impact"`
	Featured   bool     `yaml:"featured"`
	Problem    string   `yaml:"problem"`
	Importance string   `yaml:"importance"`
	Build      string   `yaml:"build"`
	Extra      string   `yaml:"extra"`
	Metrics    []string `yaml:"metrics"`
}

// LoadFile reads a YAML project list from path.
func LoadFile(path string) ([]project.Record, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return records, nil
}

// Load reads a YAML project list from r.
func Load(r io.Reader) ([]project.Record, error) {
	if r == nil {
		return nil, errors.New("catalog reader is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the catalog schema and decodes it. Shape is
// checked here; content rules are left to the integrity check.
func Parse(data []byte) ([]project.Record, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if raw == nil {
		return nil, errors.New("catalog document is empty")
	}
	if err := catalogSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate catalog schema: %w", err)
	}

	var doc catalogDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	records := make([]project.Record, 0, len(doc.Projects))
	for _, entry := range doc.Projects {
		records = append(records, project.Record{
			Title:      entry.Title,
			Subtitle:   entry.Subtitle,
			Tech:       entry.Tech,
			Impact:     entry.Impact,
			Featured:   entry.Featured,
			Problem:    entry.Problem,
			Importance: entry.Importance,
			Build:      entry.Build,
			Extra:      entry.Extra,
			Metrics:    entry.Metrics,
		})
	}
	return records, nil
}

func mustCompileCatalogSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(catalogSchemaURL, strings.NewReader(catalogSchemaJSON)); err != nil {
		panic(fmt.Sprintf("load catalog schema: %v", err))
	}
	schema, err := compiler.Compile(catalogSchemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile catalog schema: %v", err))
	}
	return schema
}

// LoadCatalog builds the catalog from the YAML file at path, or from the
// built-in projects when path is blank.
func LoadCatalog(path string) (*project.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return project.NewCatalog(DefaultProjects()...), nil
	}
	records, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return project.NewCatalog(records...), nil
}
