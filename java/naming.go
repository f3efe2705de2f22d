package java

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var reservedWords = map[string]bool{
	"string":    true,
	"ref":       true,
	"object":    true,
	"int":       true,
	"short":     true,
	"float":     true,
	"long":      true,
	"double":    true,
	"decimal":   true,
	"in":        true,
	"out":       true,
	"byte":      true,
	"class":     true,
	"delegate":  true,
	"params":    true,
	"is":        true,
	"as":        true,
	"base":      true,
	"namespace": true,
	"event":     true,
	"lock":      true,
	"operator":  true,
	"override":  true,
}

// keys are lower case
var commonMethodNames = map[string]string{
	"hashcode": "GetHashCode",
	"getclass": "GetType",
	"close":    "Dispose",
}

// Capitalize upper cases the first letter of every dot separated segment
func Capitalize(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = capitalizeWord(part)
	}
	return strings.Join(parts, ".")
}

func capitalizeWord(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// EscapeIdentifier prefixes identifiers that collide with C# keywords with @
func EscapeIdentifier(name string) string {
	if reservedWords[name] {
		return "@" + name
	}
	return name
}

// ReplaceCommonMethodNames maps well known java method names to their .NET
// counterpart. Matching ignores case.
func ReplaceCommonMethodNames(name string) string {
	if replacement, ok := commonMethodNames[strings.ToLower(name)]; ok {
		return replacement
	}
	return name
}

// methodName is the C# name of a called or declared java method
func methodName(name string) string {
	return ReplaceCommonMethodNames(Capitalize(name))
}
