package java

import (
	"errors"
	"strings"
	"testing"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"
)

func TestConvertType(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"String", "string"},
		{"Integer", "int"},
		{"List<String>", "IList<string>"},
		{"Map<String, List<Integer>>", "Map<string, IList<int>>"},
		{"List<? extends Number>", "IList<" + WildcardPlaceholder + ">"},
		{"Map<?, ?>", "Map<" + WildcardPlaceholder + ", " + WildcardPlaceholder + ">"},
		{"Boolean[]", "bool[]"},
		{"RuntimeException", "Exception"},
		{"MyType", "MyType"},
		// not part of the type grammar, returned unchanged
		{"java.util.List", "java.util.List"},
		{"List<String", "List<String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertType(tt.name); got != tt.expected {
				t.Errorf("ConvertType(%q) = %q, expected %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParseTypeNameTranslate(t *testing.T) {
	got := ParseTypeName("Pair<Key, Value>", strings.ToUpper)
	if got != "PAIR<KEY, VALUE>" {
		t.Errorf("Unexpected result %q", got)
	}
	if got := ParseTypeName("Pair< Key ,Value >", nil); got != "Pair<Key, Value>" {
		t.Errorf("Expected normalized spacing, got %q", got)
	}
}

func TestConvertArrayType(t *testing.T) {
	tests := []struct {
		element      string
		actualRank   int
		expectedRank int
		expected     string
	}{
		{"int", 0, 0, "int"},
		{"int", 1, 0, "int[]"},
		{"int", 2, 0, "int[,]"},
		{"string", 3, 3, "string[,,]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := ConvertArrayType(tt.element, tt.actualRank, tt.expectedRank)
			if err != nil {
				t.Fatalf("ConvertArrayType failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ConvertArrayType = %q, expected %q", got, tt.expected)
			}
		})
	}

	_, err := ConvertArrayType("int", 1, 2)
	if !errors.Is(err, ErrRankMismatch) {
		t.Errorf("Expected ErrRankMismatch, got %v", err)
	}
}

func TestParseModifiers(t *testing.T) {
	mods := ParseModifiers("public static final")
	if !mods.has(PUBLIC) || !mods.has(STATIC) || !mods.has(FINAL) {
		t.Errorf("Missing modifiers in %s", mods)
	}
	if mods.has(PRIVATE) {
		t.Error("Unexpected private modifier")
	}
	if mods.String() != "public static final" {
		t.Errorf("Unexpected string form %q", mods.String())
	}
}

func TestNaming(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"capitalize segments", Capitalize, "com.example.app", "Com.Example.App"},
		{"capitalize empty", Capitalize, "", ""},
		{"escape keyword", EscapeIdentifier, "string", "@string"},
		{"escape lock", EscapeIdentifier, "lock", "@lock"},
		{"plain identifier", EscapeIdentifier, "name", "name"},
		{"hashCode", ReplaceCommonMethodNames, "hashCode", "GetHashCode"},
		{"close ignores case", ReplaceCommonMethodNames, "Close", "Dispose"},
		{"unknown method", ReplaceCommonMethodNames, "toString", "toString"},
		{"method name", methodName, "getClass", "GetType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestInferProperty(t *testing.T) {
	list := &cssrc.Identifier{Name: "list"}
	zero := &cssrc.Literal{Value: "0"}
	value := &cssrc.Identifier{Name: "x"}

	tests := []struct {
		name     string
		method   string
		args     []cssrc.Expression
		expected string
	}{
		{"size", "size", nil, "list.Count"},
		{"length", "length", nil, "list.Length"},
		{"get", "get", []cssrc.Expression{zero}, "list[0]"},
		{"set", "set", []cssrc.Expression{zero, value}, "list[0] = x"},
		{"size with argument", "size", []cssrc.Expression{zero}, ""},
		{"get without argument", "get", nil, ""},
		{"set with one argument", "set", []cssrc.Expression{zero}, ""},
		{"other method", "add", []cssrc.Expression{value}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferProperty(list, tt.method, tt.args)
			if tt.expected == "" {
				if got != nil {
					t.Errorf("Expected no rewrite, got %s", got.ToSource())
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected %s, got no rewrite", tt.expected)
			}
			if got.ToSource() != tt.expected {
				t.Errorf("got %s, expected %s", got.ToSource(), tt.expected)
			}
		})
	}
}
