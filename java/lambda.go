package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func convertLambda(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	lambda := &cssrc.Lambda{}
	params := node.ChildByFieldName("parameters")
	switch params.Kind() {
	case "identifier":
		lambda.Params = []cssrc.Param{{Name: EscapeIdentifier(ctx.text(params))}}
	case "inferred_parameters":
		lambda.Parenthesized = true
		for _, param := range namedChildren(params) {
			lambda.Params = append(lambda.Params, cssrc.Param{Name: EscapeIdentifier(ctx.text(param))})
		}
	case "formal_parameters":
		lambda.Parenthesized = true
		lambda.Params = convertFormalParameters(ctx, params)
	default:
		UnhandledChild(ctx, params, "lambda_expression")
	}

	body := node.ChildByFieldName("body")
	if body.Kind() == "block" {
		lambda.Block = convertBlock(ctx, body)
	} else {
		lambda.Exp = convertExpression(ctx, body)
	}
	return lambda
}

// convertFormalParameters converts method, constructor and lambda parameters.
// Varargs become params arrays.
func convertFormalParameters(ctx *MigrationContext, node *tree_sitter.Node) []cssrc.Param {
	var params []cssrc.Param
	for _, child := range namedChildren(node) {
		switch child.Kind() {
		case "formal_parameter":
			params = append(params, cssrc.Param{
				Type: convertTypeWithRank(ctx, child.ChildByFieldName("type"), countDimensions(child.ChildByFieldName("dimensions")), 0),
				Name: EscapeIdentifier(ctx.text(child.ChildByFieldName("name"))),
			})
		case "spread_parameter":
			params = append(params, convertSpreadParameter(ctx, child))
		// ignored
		case "receiver_parameter":
		default:
			UnhandledChild(ctx, child, "formal_parameters")
		}
	}
	return params
}

func convertSpreadParameter(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Param {
	var typeNode, declarator *tree_sitter.Node
	for _, child := range namedChildren(node) {
		switch child.Kind() {
		case "variable_declarator":
			declarator = child
		// ignored
		case "modifiers", "marker_annotation", "annotation":
		default:
			if typeNode == nil {
				typeNode = child
			}
		}
	}
	if typeNode == nil || declarator == nil {
		fatalf(ctx, node, "malformed varargs parameter")
	}
	extraRank := 1 + countDimensions(declarator.ChildByFieldName("dimensions"))
	return cssrc.Param{
		Modifiers: []string{"params"},
		Type:      convertTypeWithRank(ctx, typeNode, extraRank, 0),
		Name:      EscapeIdentifier(ctx.text(declarator.ChildByFieldName("name"))),
	}
}

// convertMethodReference turns Type::method and expr::method into method
// groups. Constructor references have no method group form.
func convertMethodReference(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	var receiver *tree_sitter.Node
	var name string
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "::", "type_arguments", "line_comment", "block_comment":
		case "new":
			name = "new"
		case "identifier":
			if receiver == nil {
				receiver = child
			} else {
				name = ctx.text(child)
			}
		default:
			if receiver == nil {
				receiver = child
			}
		}
	})
	if receiver == nil || name == "" {
		fatalf(ctx, node, "malformed method reference")
	}

	if name != "new" {
		if console, ok := consoleMethod(ctx, receiver, name); ok {
			return &cssrc.Identifier{Name: console}
		}
	}

	var target cssrc.Expression
	switch receiver.Kind() {
	case "type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"integral_type", "floating_point_type", "boolean_type":
		target = &cssrc.Identifier{Name: convertType(ctx, receiver)}
	default:
		target = convertExpression(ctx, receiver)
	}
	if name == "new" {
		ctx.warn(node, "Constructor reference converted to a New method group; check for correctness.")
		return &cssrc.MemberAccess{Target: target, Name: "New"}
	}
	return &cssrc.MemberAccess{Target: target, Name: methodName(name)}
}
