package java

import (
	"fmt"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// maxAnonymousTypes bounds the numbered suffix of anonymous class names
const maxAnonymousTypes = 100

const parentFieldName = "parent"

func convertObjectCreation(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	typeNode := node.ChildByFieldName("type")
	args := convertArguments(ctx, node.ChildByFieldName("arguments"))
	if body := childOfKind(node, "class_body"); body != nil {
		return convertAnonymousClass(ctx, typeNode, body, args)
	}
	if isDiamond(typeNode) {
		if ctx.Options.supports(featureTargetTypedNew) {
			return &cssrc.ObjectCreation{Args: args}
		}
		ctx.warn(node, "Diamond operator requires target typed new (C# 9); type arguments dropped.")
		return &cssrc.ObjectCreation{Type: ctx.convertTypeName(baseTypeName(ctx, typeNode)), Args: args}
	}
	return &cssrc.ObjectCreation{Type: convertType(ctx, typeNode), Args: args}
}

// isDiamond reports whether node is a generic type with empty type arguments
func isDiamond(node *tree_sitter.Node) bool {
	if node.Kind() != "generic_type" {
		return false
	}
	args := childOfKind(node, "type_arguments")
	return args != nil && len(namedChildren(args)) == 0
}

// baseTypeName returns the type name without type arguments
func baseTypeName(ctx *MigrationContext, node *tree_sitter.Node) string {
	if node.Kind() == "generic_type" {
		return ctx.text(namedChildren(node)[0])
	}
	return ctx.text(node)
}

// simpleTypeName returns the last identifier of a possibly scoped or generic type
func simpleTypeName(ctx *MigrationContext, node *tree_sitter.Node) string {
	switch node.Kind() {
	case "generic_type":
		return simpleTypeName(ctx, namedChildren(node)[0])
	case "scoped_type_identifier":
		children := namedChildren(node)
		return simpleTypeName(ctx, children[len(children)-1])
	}
	return ctx.text(node)
}

// convertAnonymousClass synthesizes a private sealed nested class for an
// anonymous class body. The class is queued on the context and the creation
// expression passes the enclosing instance as the first argument.
func convertAnonymousClass(ctx *MigrationContext, typeNode, body *tree_sitter.Node, args []cssrc.Expression) cssrc.Expression {
	baseName := ctx.convertTypeName(simpleTypeName(ctx, typeNode))
	name := nextAnonymousName(ctx, typeNode, baseName)

	baseType := ctx.convertTypeName(baseTypeName(ctx, typeNode))
	if !isDiamond(typeNode) {
		baseType = convertType(ctx, typeNode)
	}

	parentType := ctx.LastTypeName
	class := &cssrc.Class{
		Modifiers: []string{"private", "sealed"},
		Name:      name,
		BaseTypes: []string{baseType},
	}
	class.Members = append(class.Members,
		&cssrc.Constructor{
			Modifiers: []string{"public"},
			Name:      name,
			Params:    []cssrc.Param{{Type: parentType, Name: parentFieldName}},
			Body: &cssrc.Block{Statements: []cssrc.Statement{
				&cssrc.ExpressionStatement{Exp: &cssrc.Assignment{
					Left:     &cssrc.MemberAccess{Target: &cssrc.Identifier{Name: cssrc.SelfRef}, Name: parentFieldName},
					Operator: "=",
					Right:    &cssrc.Identifier{Name: parentFieldName},
				}},
			}},
		},
		&cssrc.Field{
			Modifiers: []string{"private", "readonly"},
			Type:      parentType,
			Variables: []cssrc.VariableDeclarator{{Name: parentFieldName}},
		},
	)
	ctx.LastTypeName = name
	class.Members = append(class.Members, convertClassBody(ctx, body, typeInfo{Name: name, Sealed: true})...)
	ctx.LastTypeName = parentType
	ctx.pendingAnonymousTypes = append(ctx.pendingAnonymousTypes, class)

	return &cssrc.ObjectCreation{
		Type: name,
		Args: append([]cssrc.Expression{&cssrc.Identifier{Name: cssrc.SelfRef}}, args...),
	}
}

// nextAnonymousName returns Anonymous<Base>, then Anonymous<Base>1 up to 99
func nextAnonymousName(ctx *MigrationContext, node *tree_sitter.Node, baseName string) string {
	for i := 0; i < maxAnonymousTypes; i++ {
		name := "Anonymous" + baseName
		if i > 0 {
			name += fmt.Sprint(i)
		}
		if !ctx.usedAnonymousNames[name] {
			ctx.usedAnonymousNames[name] = true
			return name
		}
	}
	FatalError(ctx, node, "Too many anonymous types")
	return ""
}
