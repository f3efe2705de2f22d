package java

import (
	"errors"
	"testing"
)

func TestConvertIntegerLiteral(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
	}{
		{"0", "0"},
		{"42", "42"},
		{"1_000_000", "1000000"},
		{"0x1F", "31"},
		{"017", "15"},
		{"0b101L", "5L"},
		{"0xFFFFFFFF", "-1"},
		{"0x80000000", "-2147483648"},
		{"2147483648", "2147483648"},
		{"9L", "9L"},
		{"0xFFFFFFFFFFFFFFFFL", "-1L"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := ConvertIntegerLiteral(tt.literal)
			if err != nil {
				t.Fatalf("ConvertIntegerLiteral(%q) failed: %v", tt.literal, err)
			}
			if got != tt.expected {
				t.Errorf("ConvertIntegerLiteral(%q) = %q, expected %q", tt.literal, got, tt.expected)
			}
		})
	}
}

func TestConvertIntegerLiteralOutOfRange(t *testing.T) {
	for _, literal := range []string{"2147483649", "0x1FFFFFFFF", "9223372036854775809L"} {
		t.Run(literal, func(t *testing.T) {
			if _, err := ConvertIntegerLiteral(literal); !errors.Is(err, ErrUnsupported) {
				t.Errorf("Expected ErrUnsupported, got %v", err)
			}
		})
	}
}

func TestConvertFloatingPointLiteral(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
	}{
		{"1.5", "1.5"},
		{"1.5f", "1.5F"},
		{"2F", "2F"},
		{"3d", "3D"},
		{"3.0d", "3.0"},
		{".5", "0.5"},
		{"1e10", "1e10"},
		{"1_000.25", "1000.25"},
		{"0x1p3", "8D"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := ConvertFloatingPointLiteral(tt.literal)
			if err != nil {
				t.Fatalf("ConvertFloatingPointLiteral(%q) failed: %v", tt.literal, err)
			}
			if got != tt.expected {
				t.Errorf("ConvertFloatingPointLiteral(%q) = %q, expected %q", tt.literal, got, tt.expected)
			}
		})
	}
}

func TestConvertCharLiteral(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
	}{
		{`'a'`, `'a'`},
		{`'\''`, `'\''`},
		{`'"'`, `'"'`},
		{`'\n'`, `'\n'`},
		{`'A'`, `'A'`},
		{`'\0'`, `'\0'`},
		{`'\101'`, `'A'`},
		{`'\\'`, `'\\'`},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := ConvertCharLiteral(tt.literal)
			if err != nil {
				t.Fatalf("ConvertCharLiteral(%q) failed: %v", tt.literal, err)
			}
			if got != tt.expected {
				t.Errorf("ConvertCharLiteral(%q) = %q, expected %q", tt.literal, got, tt.expected)
			}
		})
	}
}

func TestConvertTextBlock(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		expected string
	}{
		{
			name:     "closing delimiter on its own line",
			literal:  "\"\"\"\n    Hello\n      World\n    \"\"\"",
			expected: `"Hello\n  World\n"`,
		},
		{
			name:     "closing delimiter after text",
			literal:  "\"\"\"\n    Hello \"quoted\"\"\"\"",
			expected: `"Hello \"quoted\""`,
		},
		{
			name:     "line continuation",
			literal:  "\"\"\"\n    one \\\n    two\"\"\"",
			expected: `"one two"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertTextBlock(tt.literal)
			if err != nil {
				t.Fatalf("ConvertTextBlock failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ConvertTextBlock = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestLiteralsInSource(t *testing.T) {
	java := `class C {
    int mask = 0xFF;
    long big = 0x7FFFFFFFFFFFFFFFL;
    char c = '\t';
    float f = .5f;
}`
	expected := `class C
{
    int mask = 255;
    long big = 9223372036854775807L;
    char c = '\t';
    float f = 0.5F;
}
`
	assertSource(t, convertForTest(t, java, bareOptions()), expected)
}
