package java

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

// ConversionState is reported to state handlers while a file is converted
type ConversionState int

const (
	Starting ConversionState = iota
	ParsingSource
	BuildingTargetTree
	Done
)

func (s ConversionState) String() string {
	switch s {
	case Starting:
		return "Starting"
	case ParsingSource:
		return "ParsingSource"
	case BuildingTargetTree:
		return "BuildingTargetTree"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("ConversionState(%d)", int(s))
}

// Warning is a recoverable problem found while converting
type Warning struct {
	Message string
	Line    int
}

// Replacement rewrites the package name before it becomes the namespace
type Replacement struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// Options controls a conversion. Handlers are called synchronously, in
// registration order, on the converting goroutine.
type Options struct {
	IncludeUsings                bool              `toml:"include_usings"`
	IncludeNamespace             bool              `toml:"include_namespace"`
	IncludeComments              bool              `toml:"include_comments"`
	StartInterfaceNamesWithI     bool              `toml:"start_interface_names_with_i"`
	UseDebugAssertForAsserts     bool              `toml:"use_debug_assert_for_asserts"`
	UseUnrecognizedCodeToComment bool              `toml:"use_unrecognized_code_to_comment"`
	UseAnnotationsToComment      bool              `toml:"use_annotations_to_comment"`
	ConvertSystemOutToConsole    bool              `toml:"convert_system_out_to_console"`
	UseFileScopedNamespaces      bool              `toml:"use_file_scoped_namespaces"`
	LanguageVersion              string            `toml:"language_version"`
	Usings                       []string          `toml:"usings"`
	PackageReplacements          []Replacement     `toml:"package_replacements"`
	TypeMappings                 map[string]string `toml:"type_mappings"`
	MappingsFile                 string            `toml:"mappings_file"`
	SyntaxMappings               *SyntaxMapping    `toml:"-"`

	warningHandlers []func(Warning)
	stateHandlers   []func(ConversionState)
}

// DefaultUsings are emitted when IncludeUsings is set and no usings are configured
var DefaultUsings = []string{
	"System",
	"System.Collections.Generic",
	"System.Collections.ObjectModel",
	"System.Linq",
	"System.Text",
}

// C# language features gated on LanguageVersion
const (
	featureDefaultInterfaceMethods = ">= 8.0"
	featureOrPatterns              = ">= 9.0"
	featureTargetTypedNew          = ">= 9.0"
	featureFileScopedNamespaces    = ">= 10.0"
)

// DefaultOptions returns the options used when no configuration is given
func DefaultOptions() *Options {
	return &Options{
		IncludeUsings:                true,
		IncludeNamespace:             true,
		IncludeComments:              true,
		UseUnrecognizedCodeToComment: true,
		LanguageVersion:              "12.0",
		Usings:                       append([]string(nil), DefaultUsings...),
	}
}

// LoadOptions loads options from a TOML file. A missing file yields the
// defaults; keys absent from the file keep their default value.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks the replacement patterns and the language version
func (o *Options) Validate() error {
	for _, replacement := range o.PackageReplacements {
		if _, err := regexp.Compile(replacement.Pattern); err != nil {
			return fmt.Errorf("package replacement %q: %w", replacement.Pattern, err)
		}
	}
	if _, err := semver.NewVersion(o.LanguageVersion); err != nil {
		return fmt.Errorf("language version %q: %w", o.LanguageVersion, err)
	}
	return nil
}

// OnWarning registers a warning handler
func (o *Options) OnWarning(handler func(Warning)) {
	o.warningHandlers = append(o.warningHandlers, handler)
}

// OnStateChanged registers a conversion state handler
func (o *Options) OnStateChanged(handler func(ConversionState)) {
	o.stateHandlers = append(o.stateHandlers, handler)
}

func (o *Options) warn(message string, line int) {
	warning := Warning{Message: message, Line: line}
	for _, handler := range o.warningHandlers {
		handler(warning)
	}
}

func (o *Options) setState(state ConversionState) {
	for _, handler := range o.stateHandlers {
		handler(state)
	}
}

// Clone returns a copy of the options without the registered handlers
func (o *Options) Clone() *Options {
	clone := *o
	clone.Usings = append([]string(nil), o.Usings...)
	clone.PackageReplacements = append([]Replacement(nil), o.PackageReplacements...)
	if o.TypeMappings != nil {
		clone.TypeMappings = make(map[string]string, len(o.TypeMappings))
		for k, v := range o.TypeMappings {
			clone.TypeMappings[k] = v
		}
	}
	clone.warningHandlers = nil
	clone.stateHandlers = nil
	return &clone
}

// supports reports whether the target language version satisfies constraint.
// An unparsable version enables every feature.
func (o *Options) supports(constraint string) bool {
	version, err := semver.NewVersion(o.LanguageVersion)
	if err != nil {
		return true
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Sprintf("invalid version constraint %q: %v", constraint, err))
	}
	return c.Check(version)
}

// replaceNamespace applies the package replacements in order
func (o *Options) replaceNamespace(name string) string {
	for _, replacement := range o.PackageReplacements {
		re, err := regexp.Compile(replacement.Pattern)
		if err != nil {
			continue
		}
		name = re.ReplaceAllString(name, replacement.Replacement)
	}
	return name
}

func (o *Options) mappings() *SyntaxMapping {
	if o.SyntaxMappings == nil {
		return &SyntaxMapping{}
	}
	return o.SyntaxMappings
}
