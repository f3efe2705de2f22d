package java

import (
	"strings"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

var consoleMethods = map[string]string{
	"println": "WriteLine",
	"print":   "Write",
}

var consoleStreams = map[string]string{
	"System.out": "Console",
	"System.err": "Console.Error",
}

func convertMethodInvocation(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	name := ctx.text(node.ChildByFieldName("name"))
	args := convertArguments(ctx, node.ChildByFieldName("arguments"))
	typeArgs := convertTypeArguments(ctx, node.ChildByFieldName("type_arguments"))

	objectNode := node.ChildByFieldName("object")
	if objectNode == nil {
		if mapped, ok := mappedMethod(ctx, node, name); ok {
			return &cssrc.Invocation{Target: &cssrc.Identifier{Name: mapped}, Args: args}
		}
		return &cssrc.Invocation{
			Target:   &cssrc.Identifier{Name: methodName(name)},
			TypeArgs: typeArgs,
			Args:     args,
		}
	}

	if console, ok := consoleMethod(ctx, objectNode, name); ok {
		return &cssrc.Invocation{Target: &cssrc.Identifier{Name: console}, Args: args}
	}
	target := convertExpression(ctx, objectNode)
	if hasChildOfKind(node, "super") && objectNode.Kind() != "super" {
		// Interface.super.method() calls the default implementation
		target = &cssrc.Identifier{Name: cssrc.BaseRef}
	}
	if inferred := inferProperty(target, name, args); inferred != nil {
		return inferred
	}
	return &cssrc.Invocation{
		Target:   &cssrc.MemberAccess{Target: target, Name: methodName(name)},
		TypeArgs: typeArgs,
		Args:     args,
	}
}

// inferProperty rewrites accessor style calls into property and indexer access.
// Only the exact arity of each accessor is rewritten.
func inferProperty(target cssrc.Expression, name string, args []cssrc.Expression) cssrc.Expression {
	switch {
	case name == "size" && len(args) == 0:
		return &cssrc.MemberAccess{Target: target, Name: "Count"}
	case name == "length" && len(args) == 0:
		return &cssrc.MemberAccess{Target: target, Name: "Length"}
	case name == "get" && len(args) == 1:
		return &cssrc.ElementAccess{Target: target, Index: args}
	case name == "set" && len(args) == 2:
		return &cssrc.Assignment{
			Left:     &cssrc.ElementAccess{Target: target, Index: args[:1]},
			Operator: "=",
			Right:    args[1],
		}
	}
	return nil
}

// mappedMethod looks up an unscoped call in the user method mappings. Calls
// used as statements use the void table, all others the non-void table.
func mappedMethod(ctx *MigrationContext, node *tree_sitter.Node, name string) (string, bool) {
	mappings := ctx.Options.mappings()
	table := mappings.NonVoidMethodMappings
	if parent := node.Parent(); parent != nil && parent.Kind() == "expression_statement" {
		table = mappings.VoidMethodMappings
	}
	mapped, ok := table[name]
	return mapped, ok
}

// consoleMethod maps System.out and System.err printing onto Console
func consoleMethod(ctx *MigrationContext, objectNode *tree_sitter.Node, name string) (string, bool) {
	if !ctx.Options.ConvertSystemOutToConsole {
		return "", false
	}
	stream, ok := consoleStreams[strings.Join(strings.Fields(ctx.text(objectNode)), "")]
	if !ok {
		return "", false
	}
	method, ok := consoleMethods[name]
	if !ok {
		return "", false
	}
	return stream + "." + method, true
}
