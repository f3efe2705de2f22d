package java

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SyntaxMapping holds user supplied replacements for imports, unscoped method
// calls and annotations
type SyntaxMapping struct {
	ImportMappings        map[string]string `yaml:"ImportMappings" toml:"ImportMappings"`
	VoidMethodMappings    map[string]string `yaml:"VoidMethodMappings" toml:"VoidMethodMappings"`
	NonVoidMethodMappings map[string]string `yaml:"NonVoidMethodMappings" toml:"NonVoidMethodMappings"`
	AnnotationMappings    map[string]string `yaml:"AnnotationMappings" toml:"AnnotationMappings"`
}

// ParseSyntaxMapping parses and validates a YAML mapping document
func ParseSyntaxMapping(data []byte) (*SyntaxMapping, error) {
	mapping := &SyntaxMapping{}
	if err := yaml.Unmarshal(data, mapping); err != nil {
		return nil, fmt.Errorf("parsing syntax mapping: %w", err)
	}
	return mapping.finish()
}

// ParseSyntaxMappingTOML parses and validates a TOML mapping document
func ParseSyntaxMappingTOML(data []byte) (*SyntaxMapping, error) {
	mapping := &SyntaxMapping{}
	if err := toml.Unmarshal(data, mapping); err != nil {
		return nil, fmt.Errorf("parsing syntax mapping: %w", err)
	}
	return mapping.finish()
}

// LoadSyntaxMapping reads a mapping file. Files ending in .toml are parsed as
// TOML, everything else as YAML.
func LoadSyntaxMapping(path string) (*SyntaxMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading syntax mapping %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseSyntaxMappingTOML(data)
	}
	return ParseSyntaxMapping(data)
}

func (m *SyntaxMapping) finish() (*SyntaxMapping, error) {
	if m.ImportMappings == nil {
		m.ImportMappings = map[string]string{}
	}
	if m.VoidMethodMappings == nil {
		m.VoidMethodMappings = map[string]string{}
	}
	if m.NonVoidMethodMappings == nil {
		m.NonVoidMethodMappings = map[string]string{}
	}
	if m.AnnotationMappings == nil {
		m.AnnotationMappings = map[string]string{}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate rejects method mappings keyed by qualified names or with empty values
func (m *SyntaxMapping) Validate() error {
	if err := validateMethodMapping(m.VoidMethodMappings); err != nil {
		return err
	}
	return validateMethodMapping(m.NonVoidMethodMappings)
}

func validateMethodMapping(mapping map[string]string) error {
	for key := range mapping {
		if strings.Contains(key, ".") {
			return fmt.Errorf("%w: Mappings from fully qualified java methods are not supported (%s)", ErrInvalidMapping, key)
		}
	}
	for key, value := range mapping {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: Mappings from java methods can not have an empty value (%s)", ErrInvalidMapping, key)
		}
	}
	return nil
}
