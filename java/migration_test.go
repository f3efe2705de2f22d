package java

import (
	"errors"
	"os"
	"slices"
	"testing"
)

// bareOptions disables the namespace and default usings so expectations only
// contain the converted types
func bareOptions() *Options {
	opts := DefaultOptions()
	opts.IncludeNamespace = false
	opts.IncludeUsings = false
	return opts
}

func convertForTest(t *testing.T, source string, opts *Options) string {
	t.Helper()
	result, err := ConvertText([]byte(source), opts)
	if err != nil {
		t.Fatalf("ConvertText failed: %v", err)
	}
	return result
}

func assertSource(t *testing.T, got, expected string) {
	t.Helper()
	if got != expected {
		t.Errorf("Output does not match expected.\n--- Got ---\n%s\n--- Expected ---\n%s", got, expected)
	}
}

func TestLoadOptionsWithTypeMappings(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	configContent := `include_namespace = false
language_version = "9.0"

[type_mappings]
DiagnosticCode = "Diagnostics.DiagnosticCode"
SyntaxKind = "Diagnostics.SyntaxKind"
CustomType = "Pkg.CustomType"
`
	if err := os.WriteFile("Config.toml", []byte(configContent), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions("Config.toml")
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	if opts.IncludeNamespace {
		t.Error("Expected include_namespace to be false")
	}
	if !opts.IncludeUsings {
		t.Error("Expected include_usings to keep its default")
	}
	if opts.LanguageVersion != "9.0" {
		t.Errorf("Expected language version '9.0', got '%s'", opts.LanguageVersion)
	}

	expected := map[string]string{
		"DiagnosticCode": "Diagnostics.DiagnosticCode",
		"SyntaxKind":     "Diagnostics.SyntaxKind",
		"CustomType":     "Pkg.CustomType",
	}
	if len(opts.TypeMappings) != len(expected) {
		t.Errorf("Expected %d type mappings, got %d", len(expected), len(opts.TypeMappings))
	}
	for key, expectedValue := range expected {
		if actualValue, ok := opts.TypeMappings[key]; !ok {
			t.Errorf("Missing type mapping for '%s'", key)
		} else if actualValue != expectedValue {
			t.Errorf("For key '%s', expected '%s', got '%s'", key, expectedValue, actualValue)
		}
	}
}

func TestLoadOptionsWithoutTypeMappings(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	configContent := `usings = ["System", "Xunit"]
start_interface_names_with_i = true
`
	if err := os.WriteFile("Config.toml", []byte(configContent), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions("Config.toml")
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if !slices.Equal(opts.Usings, []string{"System", "Xunit"}) {
		t.Errorf("Expected configured usings, got %v", opts.Usings)
	}
	if !opts.StartInterfaceNamesWithI {
		t.Error("Expected start_interface_names_with_i to be true")
	}
	if len(opts.TypeMappings) != 0 {
		t.Errorf("Expected TypeMappings to be nil or empty, got %v", opts.TypeMappings)
	}
}

func TestLoadOptionsNonexistent(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions("Config.toml")
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	defaults := DefaultOptions()
	if opts.IncludeNamespace != defaults.IncludeNamespace || opts.IncludeUsings != defaults.IncludeUsings {
		t.Errorf("Expected default options, got %+v", opts)
	}
	if !slices.Equal(opts.Usings, DefaultUsings) {
		t.Errorf("Expected default usings, got %v", opts.Usings)
	}
	if opts.LanguageVersion != "12.0" {
		t.Errorf("Expected default language version, got '%s'", opts.LanguageVersion)
	}
}

func TestLoadOptionsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid toml", content: "include_usings = [unclosed\n"},
		{name: "wrong type", content: "include_usings = \"yes\"\n"},
		{name: "invalid language version", content: "language_version = \"latest\"\n"},
		{name: "invalid replacement pattern", content: "[[package_replacements]]\npattern = \"(\"\nreplacement = \"x\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := t.TempDir() + "/Config.toml"
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadOptions(path); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestNewMigrationContextWithTypeMappings(t *testing.T) {
	opts := DefaultOptions()
	opts.TypeMappings = map[string]string{
		"DiagnosticCode": "Diagnostics.DiagnosticCode",
		"String":         "Text",
	}

	ctx := NewMigrationContext([]byte("public class Foo {}"), opts)

	if ctx.typeConversions["DiagnosticCode"] != "Diagnostics.DiagnosticCode" {
		t.Errorf("Expected DiagnosticCode mapping, got '%s'", ctx.typeConversions["DiagnosticCode"])
	}
	if ctx.typeConversions["String"] != "Text" {
		t.Errorf("Expected String mapping to override the built-in, got '%s'", ctx.typeConversions["String"])
	}
	if ctx.typeConversions["Integer"] != "int" {
		t.Errorf("Expected built-in Integer mapping, got '%s'", ctx.typeConversions["Integer"])
	}
	if typeConversions["String"] != "string" {
		t.Error("Type mappings must not leak into the built-in table")
	}
}

func TestNewMigrationContextWithNilOptions(t *testing.T) {
	ctx := NewMigrationContext([]byte("public class Foo {}"), nil)
	if ctx.Options == nil {
		t.Fatal("Options should default when nil")
	}
	if len(ctx.typeConversions) != len(typeConversions) {
		t.Errorf("Expected %d conversions, got %d", len(typeConversions), len(ctx.typeConversions))
	}
}

func TestTypeMappingInConversion(t *testing.T) {
	javaSource := `public class Diagnostic {
    private DiagnosticCode code;
    private CustomType custom;

    public DiagnosticCode getCode() {
        return code;
    }
}`

	opts := bareOptions()
	opts.TypeMappings = map[string]string{
		"DiagnosticCode": "Diagnostics.DiagnosticCode",
		"CustomType":     "MyPkg.MyCustomType",
	}

	expected := `public class Diagnostic
{
    private Diagnostics.DiagnosticCode code;
    private MyPkg.MyCustomType custom;

    public virtual Diagnostics.DiagnosticCode GetCode()
    {
        return code;
    }
}
`
	assertSource(t, convertForTest(t, javaSource, opts), expected)
}

func TestTypeMappingPrecedenceOverBuiltins(t *testing.T) {
	javaSource := `public class Example {
    private String name;
    private List<Integer> values;
}`

	opts := bareOptions()
	opts.TypeMappings = map[string]string{
		"String": "Text",
	}

	expected := `public class Example
{
    private Text name;
    private IList<int> values;
}
`
	assertSource(t, convertForTest(t, javaSource, opts), expected)
}

func TestConvertTextDefaults(t *testing.T) {
	javaSource := `package com.example;

import java.util.List;

public class Foo {
}
`
	expected := `using System;
using System.Collections.Generic;
using System.Collections.ObjectModel;
using System.Linq;
using System.Text;

namespace Com.Example
{
    public class Foo
    {
    }
}
`
	first := convertForTest(t, javaSource, nil)
	assertSource(t, first, expected)

	second := convertForTest(t, javaSource, nil)
	if first != second {
		t.Error("Conversion is not deterministic")
	}
}

func TestConvertTextWithoutPackage(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeUsings = false
	opts.UseFileScopedNamespaces = true

	expected := `namespace MyApp;

class Foo
{
}
`
	assertSource(t, convertForTest(t, "class Foo {}", opts), expected)
}

func TestFileScopedNamespaceRequiresCSharp10(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeUsings = false
	opts.UseFileScopedNamespaces = true
	opts.LanguageVersion = "9.0"
	var warnings []Warning
	opts.OnWarning(func(w Warning) {
		warnings = append(warnings, w)
	})

	expected := `namespace MyApp
{
    class Foo
    {
    }
}
`
	assertSource(t, convertForTest(t, "class Foo {}", opts), expected)
	if len(warnings) != 1 {
		t.Errorf("Expected 1 warning, got %v", warnings)
	}
}

func TestPackageReplacements(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeUsings = false
	opts.PackageReplacements = []Replacement{
		{Pattern: `^org\.example`, Replacement: "Company"},
	}

	expected := `namespace Company.Tools
{
    class Foo
    {
    }
}
`
	assertSource(t, convertForTest(t, "package org.example.tools;\nclass Foo {}", opts), expected)
}

func TestConversionStates(t *testing.T) {
	opts := bareOptions()
	var states []ConversionState
	opts.OnStateChanged(func(state ConversionState) {
		states = append(states, state)
	})

	convertForTest(t, "class Foo {}", opts)

	expected := []ConversionState{Starting, ParsingSource, BuildingTargetTree, Done}
	if !slices.Equal(states, expected) {
		t.Errorf("Expected states %v, got %v", expected, states)
	}
}

func TestConvertTextParseError(t *testing.T) {
	_, err := ConvertText([]byte("public class {"), bareOptions())
	if !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}

func TestSyntaxMappingConversion(t *testing.T) {
	javaSource := `import static org.junit.Assert.assertEquals;
import static org.junit.Assert.assertTrue;
import org.junit.Test;
public class MappingsTest {
	@Test @CustomJava @NotMapped
    public void testAsserts() {
		assertEquals("a", "a");
		assertTrue(true);
        va.assertTrue(true); // non void is not mapped
	}
}
`
	mappingsYaml := `ImportMappings:
  org.junit.Test : Xunit
  #to remove static imports
  org.junit.Assert.assertEquals : ""
  org.junit.Assert.assertTrue : ""
VoidMethodMappings:
  assertEquals : Assert.Equal
  assertTrue : Assert.True
AnnotationMappings:
  Test : Fact
  CustomJava : CustomCs
`
	mappings, err := ParseSyntaxMapping([]byte(mappingsYaml))
	if err != nil {
		t.Fatalf("ParseSyntaxMapping failed: %v", err)
	}
	opts := bareOptions()
	opts.SyntaxMappings = mappings

	expected := `using Xunit;

public class MappingsTest
{
    [Fact]
    [CustomCs]
    public virtual void TestAsserts()
    {
        Assert.Equal("a", "a");
        Assert.True(true);
        va.AssertTrue(true); // non void is not mapped
    }
}
`
	assertSource(t, convertForTest(t, javaSource, opts), expected)
}

func TestImportComments(t *testing.T) {
	tests := []struct {
		name     string
		java     string
		expected string
	}{
		{
			name: "mapped import keeps its comment",
			java: `// junit
import org.junit.Test;

class A {
}
`,
			expected: `// junit
using Xunit;

class A
{
}
`,
		},
		{
			name: "unmapped import moves its comment to the header",
			java: `// lists
import java.util.List;

class A {
}
`,
			expected: `// lists

class A
{
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := bareOptions()
			opts.SyntaxMappings = &SyntaxMapping{
				ImportMappings: map[string]string{"org.junit.Test": "Xunit"},
			}
			assertSource(t, convertForTest(t, tt.java, opts), tt.expected)
		})
	}
}

func TestOptionsClone(t *testing.T) {
	opts := DefaultOptions()
	opts.TypeMappings = map[string]string{"A": "B"}
	opts.OnWarning(func(Warning) {})

	clone := opts.Clone()
	clone.Usings[0] = "Changed"
	clone.TypeMappings["A"] = "C"

	if opts.Usings[0] != "System" {
		t.Error("Clone shares usings with the original")
	}
	if opts.TypeMappings["A"] != "B" {
		t.Error("Clone shares type mappings with the original")
	}
	if len(clone.warningHandlers) != 0 {
		t.Error("Clone should not carry handlers")
	}
}

func TestOptionsSupports(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		expected   bool
	}{
		{"12.0", featureFileScopedNamespaces, true},
		{"9.0", featureFileScopedNamespaces, false},
		{"9.0", featureOrPatterns, true},
		{"7.3", featureDefaultInterfaceMethods, false},
		{"8", featureDefaultInterfaceMethods, true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			opts := DefaultOptions()
			opts.LanguageVersion = tt.version
			if got := opts.supports(tt.constraint); got != tt.expected {
				t.Errorf("supports(%q) = %v, expected %v", tt.constraint, got, tt.expected)
			}
		})
	}
}
