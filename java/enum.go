package java

import (
	"fmt"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const commentRule = "// --------------------"

// convertEnumDeclaration converts an enum into plain enumerators. Constant
// arguments, constant bodies and enum members have no C# counterpart; they are
// kept as comments when UseUnrecognizedCodeToComment is set.
func convertEnumDeclaration(ctx *MigrationContext, enumNode *tree_sitter.Node, nested bool) cssrc.Member {
	name := ctx.text(enumNode.ChildByFieldName("name"))
	if !nested {
		ctx.RootTypeName = name
	}
	ctx.LastTypeName = name

	mods, annotations := parseModifiers(ctx, enumNode)
	enum := &cssrc.Enum{
		Attributes: convertAnnotations(ctx, annotations),
		Modifiers:  classModifiers(mods &^ (ABSTRACT | FINAL)),
		Name:       name,
	}
	annotationComments(ctx, annotations, enum)
	if enumNode.ChildByFieldName("interfaces") != nil {
		ctx.warn(enumNode, fmt.Sprintf("Interfaces implemented by enum %s will not be ported. Check for correctness.", name))
	}

	toComment := ctx.Options.UseUnrecognizedCodeToComment
	notPorted := false
	body := enumNode.ChildByFieldName("body")
	var declarations *tree_sitter.Node
	for _, child := range namedChildren(body) {
		switch child.Kind() {
		case "enum_constant":
			member := cssrc.EnumMember{Name: ctx.text(child.ChildByFieldName("name"))}
			attachComments(ctx, child, &member)
			if child.ChildByFieldName("arguments") != nil || child.ChildByFieldName("body") != nil {
				notPorted = true
				if toComment {
					member.AddLeading(commentLines(ctx.text(child))...)
				}
			}
			enum.Members = append(enum.Members, member)
		case "enum_body_declarations":
			declarations = child
		default:
			UnhandledChild(ctx, child, "enum_body")
		}
	}

	if declarations != nil && len(namedChildren(declarations)) > 0 {
		notPorted = true
		if toComment {
			block := enumBodyComment(ctx, declarations)
			if len(enum.Members) > 0 {
				enum.Members[len(enum.Members)-1].AddTrailing(block...)
			} else {
				enum.AddTrailing(block...)
			}
		}
	}
	if notPorted {
		ctx.warn(enumNode, fmt.Sprintf("Members found in enum %s will not be ported. Check for correctness.", name))
	}
	return enum
}

// enumBodyComment renders the members of an enum as a TODO comment block
func enumBodyComment(ctx *MigrationContext, declarations *tree_sitter.Node) []cssrc.Comment {
	block := []cssrc.Comment{
		{Kind: cssrc.LineComment, OwnLine: true},
		{Kind: cssrc.LineComment, Text: commentRule, OwnLine: true},
		{Kind: cssrc.LineComment, Text: "// TODO enum body members", OwnLine: true},
	}
	for _, member := range namedChildren(declarations) {
		for _, line := range commentLines(ctx.text(member)) {
			line.OwnLine = true
			block = append(block, line)
		}
	}
	return append(block, cssrc.Comment{Kind: cssrc.LineComment, Text: commentRule, OwnLine: true})
}
