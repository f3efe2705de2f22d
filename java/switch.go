package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const unsupportedArm = "unsupported switch-expression arm"

// switchLabels collects the case expressions of the switch_label children of
// node. isDefault is set when any label is `default`.
func switchLabels(ctx *MigrationContext, node *tree_sitter.Node) (labels []cssrc.Expression, isDefault bool) {
	for _, label := range namedChildren(node) {
		if label.Kind() != "switch_label" {
			continue
		}
		if hasChildOfKind(label, "default") {
			isDefault = true
		}
		for _, child := range namedChildren(label) {
			switch child.Kind() {
			case "pattern", "type_pattern", "record_pattern", "guard":
				FatalError(ctx, child, "pattern matching is not supported")
			default:
				labels = append(labels, convertExpression(ctx, child))
			}
		}
	}
	return labels, isDefault
}

func switchSelector(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	condition := node.ChildByFieldName("condition")
	if condition == nil {
		FatalError(ctx, node, "switch without selector expression")
	}
	if condition.Kind() == "parenthesized_expression" {
		condition = innerExpression(ctx, condition)
	}
	return convertExpression(ctx, condition)
}

// switchBodyStatements returns the statements of a switch group, skipping its labels
func switchBodyStatements(node *tree_sitter.Node) []*tree_sitter.Node {
	var result []*tree_sitter.Node
	for _, child := range namedChildren(node) {
		if child.Kind() != "switch_label" {
			result = append(result, child)
		}
	}
	return result
}

// convertSwitchExpression converts a switch used as a value. Every arm must
// reduce to a single value or throw.
func convertSwitchExpression(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	switchExp := &cssrc.SwitchExpression{Selector: switchSelector(ctx, node)}
	body := node.ChildByFieldName("body")
	for _, child := range namedChildren(body) {
		labels, isDefault := switchLabels(ctx, child)
		arm := cssrc.SwitchArm{Pattern: switchPattern(ctx, child, labels, isDefault)}
		switch child.Kind() {
		case "switch_rule":
			arm.Value = switchRuleValue(ctx, child)
		case "switch_block_statement_group":
			statements := switchBodyStatements(child)
			if len(statements) != 1 {
				FatalError(ctx, child, unsupportedArm)
			}
			arm.Value = switchArmValue(ctx, statements[0])
		default:
			UnhandledChild(ctx, child, "switch_block")
		}
		switchExp.Arms = append(switchExp.Arms, arm)
	}
	return switchExp
}

// switchPattern combines the labels of an arm into a single pattern
func switchPattern(ctx *MigrationContext, node *tree_sitter.Node, labels []cssrc.Expression, isDefault bool) cssrc.Expression {
	if isDefault || len(labels) == 0 {
		return cssrc.Discard
	}
	if len(labels) > 1 && !ctx.Options.supports(featureOrPatterns) {
		ctx.warn(node, "Multiple case labels require C# 9 or patterns.")
	}
	pattern := labels[0]
	for _, label := range labels[1:] {
		pattern = &cssrc.OrPattern{Left: pattern, Right: label}
	}
	return pattern
}

func switchRuleValue(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	body := switchBodyStatements(node)
	if len(body) != 1 {
		FatalError(ctx, node, unsupportedArm)
	}
	if body[0].Kind() == "block" {
		statements := namedChildren(body[0])
		if len(statements) != 1 {
			FatalError(ctx, body[0], unsupportedArm)
		}
		return switchArmValue(ctx, statements[0])
	}
	return switchArmValue(ctx, body[0])
}

func switchArmValue(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	switch node.Kind() {
	case "expression_statement", "yield_statement":
		children := namedChildren(node)
		if len(children) != 1 {
			FatalError(ctx, node, unsupportedArm)
		}
		return convertExpression(ctx, children[0])
	case "throw_statement":
		return &cssrc.ThrowExpression{Value: convertExpression(ctx, namedChildren(node)[0])}
	}
	FatalError(ctx, node, unsupportedArm)
	return nil
}

// convertSwitchStatement converts a switch in statement position. Arrow rules
// become sections closed by a break.
func convertSwitchStatement(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Statement {
	stmt := &cssrc.SwitchStatement{Selector: switchSelector(ctx, node)}
	body := node.ChildByFieldName("body")
	for _, child := range namedChildren(body) {
		labels, isDefault := switchLabels(ctx, child)
		section := cssrc.SwitchSection{Labels: labels, Default: isDefault}
		switch child.Kind() {
		case "switch_block_statement_group":
			section.Statements = convertStatements(ctx, switchBodyStatements(child))
			// comments at the edges of a group hang off the switch block
			leading, trailing := gatherComments(ctx, child)
			if len(section.Statements) > 0 {
				if commented, ok := section.Statements[0].(cssrc.Commented); ok && len(leading) > 0 {
					commented.Comments().Leading = append(leading, commented.Comments().Leading...)
				}
				if commented, ok := section.Statements[len(section.Statements)-1].(cssrc.Commented); ok {
					commented.Comments().AddTrailing(trailing...)
				}
			}
			if isDefault && !hasTopLevelBreak(section.Statements) && !endsWithJump(section.Statements) {
				section.Statements = append(section.Statements, &cssrc.BreakStatement{})
			}
		case "switch_rule":
			section.Statements = convertStatements(ctx, switchBodyStatements(child))
			if !endsWithJump(section.Statements) {
				section.Statements = append(section.Statements, &cssrc.BreakStatement{})
			}
		default:
			UnhandledChild(ctx, child, "switch_block")
		}
		stmt.Sections = append(stmt.Sections, section)
	}
	return stmt
}

func hasTopLevelBreak(statements []cssrc.Statement) bool {
	for _, stmt := range statements {
		if _, ok := stmt.(*cssrc.BreakStatement); ok {
			return true
		}
	}
	return false
}

// endsWithJump reports whether control never falls out of the statements
func endsWithJump(statements []cssrc.Statement) bool {
	if len(statements) == 0 {
		return false
	}
	switch last := statements[len(statements)-1].(type) {
	case *cssrc.BreakStatement, *cssrc.ContinueStatement, *cssrc.ReturnStatement, *cssrc.ThrowStatement:
		return true
	case *cssrc.Block:
		return endsWithJump(last.Statements)
	}
	return false
}
