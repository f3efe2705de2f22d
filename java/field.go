package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// convertFieldDeclaration converts a field or interface constant. All
// declarators share the C# type, so their array ranks must agree.
func convertFieldDeclaration(ctx *MigrationContext, fieldNode *tree_sitter.Node) cssrc.Member {
	mods, annotations := parseModifiers(ctx, fieldNode)
	typeName, variables := convertDeclarators(ctx, fieldNode)
	field := &cssrc.Field{
		Attributes: convertAnnotations(ctx, annotations),
		Modifiers:  fieldModifiers(mods),
		Type:       typeName,
		Variables:  variables,
	}
	annotationComments(ctx, annotations, field)
	return field
}

func fieldModifiers(mods modifiers) []string {
	var result []string
	if mods.has(PUBLIC) {
		result = append(result, "public")
	}
	if mods.has(PROTECTED) {
		result = append(result, "protected")
	}
	if mods.has(PRIVATE) {
		result = append(result, "private")
	}
	if mods.has(STATIC) {
		result = append(result, "static")
	}
	if mods.has(FINAL) {
		result = append(result, "readonly")
	}
	if mods.has(VOLATILE) {
		result = append(result, "volatile")
	}
	return result
}
