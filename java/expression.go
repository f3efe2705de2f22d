package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const unsignedShiftWarning = "Use of unsigned right shift in original code; verify correctness."

func convertExpression(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	switch node.Kind() {
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal",
		"decimal_floating_point_literal", "hex_floating_point_literal",
		"character_literal", "string_literal", "true", "false", "null_literal":
		return convertLiteral(ctx, node)
	case "identifier":
		return &cssrc.Identifier{Name: EscapeIdentifier(ctx.text(node))}
	case "this":
		return &cssrc.Identifier{Name: cssrc.SelfRef}
	case "super":
		return &cssrc.Identifier{Name: cssrc.BaseRef}
	case "parenthesized_expression":
		return &cssrc.ParenthesizedExpression{Exp: convertExpression(ctx, innerExpression(ctx, node))}
	case "assignment_expression":
		return convertAssignment(ctx, node)
	case "binary_expression":
		return convertBinaryExpression(ctx, node)
	case "unary_expression":
		return &cssrc.UnaryExpression{
			Operator: ctx.text(node.ChildByFieldName("operator")),
			Operand:  convertExpression(ctx, node.ChildByFieldName("operand")),
		}
	case "update_expression":
		return convertUpdateExpression(ctx, node)
	case "ternary_expression":
		return &cssrc.ConditionalExpression{
			Condition: convertExpression(ctx, node.ChildByFieldName("condition")),
			WhenTrue:  convertExpression(ctx, node.ChildByFieldName("consequence")),
			WhenFalse: convertExpression(ctx, node.ChildByFieldName("alternative")),
		}
	case "cast_expression":
		return &cssrc.CastExpression{
			Type:  convertType(ctx, node.ChildByFieldName("type")),
			Value: convertExpression(ctx, node.ChildByFieldName("value")),
		}
	case "instanceof_expression":
		return convertInstanceOf(ctx, node)
	case "class_literal":
		return &cssrc.TypeOfExpression{Type: convertType(ctx, namedChildren(node)[0])}
	case "field_access":
		return convertFieldAccess(ctx, node)
	case "array_access":
		return &cssrc.ElementAccess{
			Target: convertExpression(ctx, node.ChildByFieldName("array")),
			Index:  []cssrc.Expression{convertExpression(ctx, node.ChildByFieldName("index"))},
		}
	case "method_invocation":
		return convertMethodInvocation(ctx, node)
	case "object_creation_expression":
		return convertObjectCreation(ctx, node)
	case "array_creation_expression":
		return convertArrayCreation(ctx, node)
	case "array_initializer":
		return &cssrc.ImplicitArrayCreation{Initializer: convertArrayInitializer(ctx, node)}
	case "lambda_expression":
		return convertLambda(ctx, node)
	case "method_reference":
		return convertMethodReference(ctx, node)
	case "switch_expression":
		return convertSwitchExpression(ctx, node)
	}
	fatalf(ctx, node, "unsupported expression kind: %s", node.Kind())
	return nil
}

// innerExpression returns the single expression wrapped by a parenthesized_expression
func innerExpression(ctx *MigrationContext, node *tree_sitter.Node) *tree_sitter.Node {
	children := namedChildren(node)
	if len(children) != 1 {
		fatalf(ctx, node, "unexpected parenthesized expression shape")
	}
	return children[0]
}

func convertExpressions(ctx *MigrationContext, nodes []*tree_sitter.Node) []cssrc.Expression {
	var result []cssrc.Expression
	for _, node := range nodes {
		result = append(result, convertExpression(ctx, node))
	}
	return result
}

// convertArguments converts the expressions of an argument_list
func convertArguments(ctx *MigrationContext, node *tree_sitter.Node) []cssrc.Expression {
	if node == nil {
		return nil
	}
	return convertExpressions(ctx, namedChildren(node))
}

func convertAssignment(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	operator := ctx.text(node.ChildByFieldName("operator"))
	if operator == ">>>=" {
		ctx.warn(node, unsignedShiftWarning)
		operator = ">>="
	}
	return &cssrc.Assignment{
		Left:     convertExpression(ctx, node.ChildByFieldName("left")),
		Operator: operator,
		Right:    convertExpression(ctx, node.ChildByFieldName("right")),
	}
}

func convertBinaryExpression(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	operator := ctx.text(node.ChildByFieldName("operator"))
	if operator == ">>>" {
		ctx.warn(node, unsignedShiftWarning)
		operator = ">>"
	}
	return &cssrc.BinaryExpression{
		Left:     convertExpression(ctx, node.ChildByFieldName("left")),
		Operator: operator,
		Right:    convertExpression(ctx, node.ChildByFieldName("right")),
	}
}

func convertUpdateExpression(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	var operator string
	var operand *tree_sitter.Node
	postfix := false
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "++", "--":
			operator = child.Kind()
			postfix = operand != nil
		// ignored
		case "line_comment", "block_comment":
		default:
			operand = child
		}
	})
	return &cssrc.UnaryExpression{
		Operator: operator,
		Operand:  convertExpression(ctx, operand),
		Postfix:  postfix,
	}
}

func convertInstanceOf(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	if node.ChildByFieldName("name") != nil || node.ChildByFieldName("pattern") != nil {
		FatalError(ctx, node, "pattern matching is not supported")
	}
	return &cssrc.IsExpression{
		Value: convertExpression(ctx, node.ChildByFieldName("left")),
		Type:  convertType(ctx, node.ChildByFieldName("right")),
	}
}

func convertFieldAccess(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	field := node.ChildByFieldName("field")
	if field.Kind() == "this" {
		ctx.warn(node, "Qualified this expression converted to this; check for correctness.")
		return &cssrc.Identifier{Name: cssrc.SelfRef}
	}
	target := convertExpression(ctx, node.ChildByFieldName("object"))
	if hasChildOfKind(node, "super") && node.ChildByFieldName("object").Kind() != "super" {
		// Interface.super.field has no C# form, base is the closest match
		target = &cssrc.Identifier{Name: cssrc.BaseRef}
	}
	return &cssrc.MemberAccess{Target: target, Name: ctx.text(field)}
}

// convertArrayCreation converts new T[a][b][] and new T[][] {..}. Sized
// dimensions share one rank specifier.
func convertArrayCreation(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	creation := &cssrc.ArrayCreation{
		ElementType: convertType(ctx, node.ChildByFieldName("type")),
	}
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "dimensions_expr":
			for _, size := range namedChildren(child) {
				switch size.Kind() {
				case "marker_annotation", "annotation":
				default:
					creation.Sizes = append(creation.Sizes, convertExpression(ctx, size))
				}
			}
		case "dimensions":
			// unsized dimensions after sized ones are dropped
			if len(creation.Sizes) > 0 {
				return
			}
			rank, err := ConvertArrayType("", countDimensions(child), 0)
			if err != nil {
				fatalErr(ctx, child, err)
			}
			creation.Rank = rank
		case "array_initializer":
			creation.Initializer = convertArrayInitializer(ctx, child)
		}
	})
	return creation
}

// convertArrayInitializer converts {a, b}; nested initializers stay bare
func convertArrayInitializer(ctx *MigrationContext, node *tree_sitter.Node) *cssrc.Initializer {
	initializer := &cssrc.Initializer{}
	for _, child := range namedChildren(node) {
		initializer.Elements = append(initializer.Elements, convertVariableInitializer(ctx, child))
	}
	return initializer
}

// convertVariableInitializer converts the value of a declarator or an element
// of an array initializer
func convertVariableInitializer(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	if node.Kind() == "array_initializer" {
		return convertArrayInitializer(ctx, node)
	}
	return convertExpression(ctx, node)
}
