// Where: cli/internal/config/preset.go
// What: Preset file loading for non-interactive project creation.
// Why: Let CI and repeat users answer the prompts from a checked-in file.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

//go:embed preset.schema.json
var presetSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Preset mirrors the create command's answers. Empty fields stay
// unset and fall back to flags, prompts, or defaults.
type Preset struct {
	ProjectName       string   `yaml:"projectName"`
	TargetDirectory   string   `yaml:"targetDirectory"`
	Language          string   `yaml:"language"`
	Features          []string `yaml:"features"`
	PackageManager    string   `yaml:"packageManager"`
	DataProviders     []string `yaml:"dataProviders"`
	FrontendFramework string   `yaml:"frontendFramework"`
}

// LoadPreset reads, validates, and decodes a YAML or JSON preset file.
func LoadPreset(path string) (Preset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return Preset{}, fmt.Errorf("parse preset %s: %w", path, err)
	}

	sch, err := loadSchema()
	if err != nil {
		return Preset{}, err
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return Preset{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if err := sch.Validate(document); err != nil {
		return Preset{}, fmt.Errorf("invalid preset %s: %w", path, err)
	}

	var preset Preset
	if err := yaml.Unmarshal(content, &preset); err != nil {
		return Preset{}, fmt.Errorf("decode preset %s: %w", path, err)
	}
	return preset, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("preset.schema.json", strings.NewReader(presetSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("preset.schema.json")
	})
	return compiledSchema, schemaErr
}
