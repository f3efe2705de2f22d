package java

import (
	"fmt"
	"strings"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Modifier bit flags
const (
	PUBLIC modifiers = 1 << iota
	PRIVATE
	PROTECTED
	STATIC
	FINAL
	ABSTRACT
	SYNCHRONIZED
	VOLATILE
	TRANSIENT
	NATIVE
	DEFAULT
)

// modifiers represents Java modifiers as a bitmask
type modifiers uint16

var modifierNames = []struct {
	flag modifiers
	name string
}{
	{PUBLIC, "public"},
	{PRIVATE, "private"},
	{PROTECTED, "protected"},
	{STATIC, "static"},
	{FINAL, "final"},
	{ABSTRACT, "abstract"},
	{SYNCHRONIZED, "synchronized"},
	{VOLATILE, "volatile"},
	{TRANSIENT, "transient"},
	{NATIVE, "native"},
	{DEFAULT, "default"},
}

func (m modifiers) String() string {
	var parts []string
	for _, mod := range modifierNames {
		if m&mod.flag != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, " ")
}

func (m modifiers) has(flag modifiers) bool {
	return m&flag != 0
}

// ParseModifiers parses modifier string into a modifiers bitmask
func ParseModifiers(source string) modifiers {
	var mods modifiers
	for _, part := range strings.Fields(source) {
		for _, mod := range modifierNames {
			if part == mod.name {
				mods |= mod.flag
			}
		}
	}
	return mods
}

// annotation is a java annotation attached to a declaration
type annotation struct {
	Name string
	// Args is the argument list text without parentheses, empty for marker annotations
	Args string
	Line int
}

// parseModifiers reads the modifiers child of a declaration node
func parseModifiers(ctx *MigrationContext, node *tree_sitter.Node) (modifiers, []annotation) {
	modifiersNode := childOfKind(node, "modifiers")
	if modifiersNode == nil {
		return 0, nil
	}
	var mods modifiers
	var annotations []annotation
	IterateChildren(modifiersNode, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "marker_annotation", "annotation":
			ann := annotation{
				Name: ctx.text(child.ChildByFieldName("name")),
				Line: lineOf(child),
			}
			if args := child.ChildByFieldName("arguments"); args != nil {
				ann.Args = strings.TrimSuffix(strings.TrimPrefix(ctx.text(args), "("), ")")
			}
			annotations = append(annotations, ann)
		// ignored
		case "line_comment", "block_comment":
		default:
			mods |= ParseModifiers(child.Kind())
		}
	})
	return mods, annotations
}

func hasAnnotation(annotations []annotation, name string) bool {
	for _, ann := range annotations {
		if ann.Name == name {
			return true
		}
	}
	return false
}

var typeConversions = map[string]string{
	"boolean":                       "bool",
	"Boolean":                       "bool",
	"ICloseable":                    "IDisposable",
	"Integer":                       "int",
	"Long":                          "long",
	"Float":                         "float",
	"String":                        "string",
	"Object":                        "object",
	"ArrayList":                     "List",
	"List":                          "IList",
	"AlreadyClosedException":        "ObjectDisposedException",
	"Error":                         "Exception",
	"IllegalArgumentException":      "ArgumentException",
	"IllegalStateException":         "InvalidOperationException",
	"UnsupportedOperationException": "NotSupportedException",
	"RuntimeException":              "Exception",
}

// ConvertType translates a java type name using the built-in conversion table
func ConvertType(name string) string {
	return ParseTypeName(name, func(ident string) string {
		if converted, ok := typeConversions[ident]; ok {
			return converted
		}
		return ident
	})
}

// ConvertArrayType renders element with the given rank. An expectedRank of 0
// accepts the actual rank.
func ConvertArrayType(element string, actualRank, expectedRank int) (string, error) {
	if expectedRank != 0 && expectedRank != actualRank {
		return "", fmt.Errorf("%w: expected rank %d, got %d", ErrRankMismatch, expectedRank, actualRank)
	}
	if actualRank < 1 {
		return element, nil
	}
	return element + "[" + strings.Repeat(",", actualRank-1) + "]", nil
}

// convertTypeName translates a type name using the per run conversion table
func (ctx *MigrationContext) convertTypeName(name string) string {
	return ParseTypeName(name, func(ident string) string {
		if converted, ok := ctx.typeConversions[ident]; ok {
			return converted
		}
		return ident
	})
}

// convertType converts a java type node into a C# type name
func convertType(ctx *MigrationContext, node *tree_sitter.Node) string {
	return convertTypeWithRank(ctx, node, 0, 0)
}

// convertTypeWithRank converts a type node, adding extraRank dimensions that were
// declared on the variable instead of the type
func convertTypeWithRank(ctx *MigrationContext, node *tree_sitter.Node, extraRank, expectedRank int) string {
	element, rank := splitArrayType(ctx, node)
	rank += extraRank
	converted, err := ConvertArrayType(element, rank, expectedRank)
	if err != nil {
		fatalErr(ctx, node, err)
	}
	return converted
}

// splitArrayType returns the converted element type and the array rank of node
func splitArrayType(ctx *MigrationContext, node *tree_sitter.Node) (string, int) {
	switch node.Kind() {
	case "array_type":
		element, rank := splitArrayType(ctx, node.ChildByFieldName("element"))
		return element, rank + countDimensions(node.ChildByFieldName("dimensions"))
	case "annotated_type":
		children := namedChildren(node)
		return splitArrayType(ctx, children[len(children)-1])
	}
	return convertSimpleType(ctx, node), 0
}

func convertSimpleType(ctx *MigrationContext, node *tree_sitter.Node) string {
	switch node.Kind() {
	case "void_type":
		return "void"
	case "boolean_type":
		return "bool"
	case "integral_type", "floating_point_type":
		return ctx.text(node)
	case "type_identifier", "scoped_type_identifier", "generic_type":
		return ctx.convertTypeName(ctx.text(node))
	case "wildcard":
		return WildcardPlaceholder
	default:
		UnhandledChild(ctx, node, "type")
	}
	return ""
}

// countDimensions counts the [] pairs of a dimensions node
func countDimensions(node *tree_sitter.Node) int {
	if node == nil {
		return 0
	}
	count := 0
	IterateChildren(node, func(child *tree_sitter.Node) {
		if child.Kind() == "[" {
			count++
		}
	})
	return count
}

// convertTypeArguments converts the types of a type_arguments node
func convertTypeArguments(ctx *MigrationContext, node *tree_sitter.Node) []string {
	if node == nil {
		return nil
	}
	var args []string
	for _, child := range namedChildren(node) {
		args = append(args, convertType(ctx, child))
	}
	return args
}

// convertTypeParameters converts generic parameters and their bounds into
// parameters with where constraints
func convertTypeParameters(ctx *MigrationContext, node *tree_sitter.Node) []cssrc.TypeParameter {
	if node == nil {
		return nil
	}
	var params []cssrc.TypeParameter
	for _, child := range namedChildren(node) {
		if child.Kind() != "type_parameter" {
			continue
		}
		var param cssrc.TypeParameter
		IterateChildren(child, func(part *tree_sitter.Node) {
			switch part.Kind() {
			case "type_identifier":
				param.Name = ctx.text(part)
			case "type_bound":
				for _, bound := range namedChildren(part) {
					param.Constraints = append(param.Constraints, convertType(ctx, bound))
				}
			// ignored
			case "marker_annotation", "annotation", "line_comment", "block_comment":
			default:
				UnhandledChild(ctx, part, "type_parameter")
			}
		})
		params = append(params, param)
	}
	return params
}

// convertTypeList converts the types of a superclass, super_interfaces or
// extends_interfaces node
func convertTypeList(ctx *MigrationContext, node *tree_sitter.Node) []string {
	if node == nil {
		return nil
	}
	var types []string
	for _, child := range namedChildren(node) {
		if child.Kind() == "type_list" {
			types = append(types, convertTypeList(ctx, child)...)
			continue
		}
		types = append(types, convertType(ctx, child))
	}
	return types
}
