package java

import (
	"fmt"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// convertBlock converts a block. A block holding only comments keeps them as
// an empty statement.
func convertBlock(ctx *MigrationContext, blockNode *tree_sitter.Node) *cssrc.Block {
	block := &cssrc.Block{Statements: convertStatements(ctx, namedChildren(blockNode))}
	if orphans := orphanComments(ctx, blockNode); len(orphans) > 0 {
		block.Statements = append(block.Statements, &cssrc.RawStatement{Trivia: cssrc.Trivia{Leading: orphans}})
	}
	return block
}

// convertStatements converts a statement list, attaching comments and
// dropping elided statements
func convertStatements(ctx *MigrationContext, nodes []*tree_sitter.Node) []cssrc.Statement {
	var result []cssrc.Statement
	for _, node := range nodes {
		stmt := convertStatement(ctx, node)
		if stmt == nil {
			continue
		}
		if commented, ok := stmt.(cssrc.Commented); ok {
			attachComments(ctx, node, commented)
		}
		result = append(result, stmt)
	}
	return result
}

// convertStatement converts a single statement. A nil result means the
// statement has no C# counterpart and is dropped.
func convertStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	switch stmtNode.Kind() {
	case "line_comment", "block_comment", ";":
		return nil
	case "block":
		return convertBlock(ctx, stmtNode)
	case "expression_statement":
		return &cssrc.ExpressionStatement{Exp: convertExpression(ctx, namedChildren(stmtNode)[0])}
	case "assert_statement":
		return convertAssert(ctx, stmtNode)
	case "labeled_statement":
		return convertLabeledStatement(ctx, stmtNode)
	case "break_statement":
		if hasChildOfKind(stmtNode, "identifier") {
			ctx.warn(stmtNode, "Break with label detected, using plain break instead. Check for correctness.")
		}
		return &cssrc.BreakStatement{}
	case "continue_statement":
		if hasChildOfKind(stmtNode, "identifier") {
			ctx.warn(stmtNode, "Continue with label detected, using plain continue instead. Check for correctness.")
		}
		return &cssrc.ContinueStatement{}
	case "return_statement":
		stmt := &cssrc.ReturnStatement{}
		if children := namedChildren(stmtNode); len(children) > 0 {
			stmt.Value = convertExpression(ctx, children[0])
		}
		return stmt
	case "throw_statement":
		return &cssrc.ThrowStatement{Value: convertExpression(ctx, namedChildren(stmtNode)[0])}
	case "if_statement":
		return convertIfStatement(ctx, stmtNode)
	case "while_statement":
		return convertWhileStatement(ctx, stmtNode)
	case "do_statement":
		return convertDoStatement(ctx, stmtNode)
	case "for_statement":
		return convertForStatement(ctx, stmtNode)
	case "enhanced_for_statement":
		return convertEnhancedForStatement(ctx, stmtNode)
	case "local_variable_declaration":
		return convertLocalVariableDeclaration(ctx, stmtNode)
	case "switch_expression":
		return convertSwitchStatement(ctx, stmtNode)
	case "synchronized_statement":
		return convertSynchronizedStatement(ctx, stmtNode)
	case "try_statement":
		return convertTryStatement(ctx, stmtNode)
	case "try_with_resources_statement":
		return convertTryWithResources(ctx, stmtNode)
	case "yield_statement":
		FatalError(ctx, stmtNode, "yield outside of a switch expression arm is not supported")
	case "class_declaration", "interface_declaration", "enum_declaration":
		return convertLocalTypeDeclaration(ctx, stmtNode)
	case "record_declaration":
		FatalError(ctx, stmtNode, "records are not supported")
	case "explicit_constructor_invocation":
		FatalError(ctx, stmtNode, "constructor invocation must be the first statement of a constructor")
	default:
		fatalf(ctx, stmtNode, "unsupported statement kind: %s", stmtNode.Kind())
	}
	return nil
}

func convertAssert(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	if !ctx.Options.UseDebugAssertForAsserts {
		return nil
	}
	return &cssrc.ExpressionStatement{Exp: &cssrc.Invocation{
		Target: &cssrc.Identifier{Name: "Debug.Assert"},
		Args:   convertExpressions(ctx, namedChildren(stmtNode)),
	}}
}

func convertLabeledStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	children := namedChildren(stmtNode)
	labeled := &cssrc.LabeledStatement{Label: ctx.text(children[0])}
	if len(children) > 1 {
		labeled.Statement = convertStatement(ctx, children[1])
	}
	if labeled.Statement == nil {
		labeled.Statement = &cssrc.RawStatement{Source: ";"}
	}
	return labeled
}

// embeddedStatement converts the body of a control statement
func embeddedStatement(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Statement {
	if node == nil {
		return nil
	}
	stmt := convertStatement(ctx, node)
	if stmt == nil {
		return nil
	}
	if commented, ok := stmt.(cssrc.Commented); ok && node.Kind() != "block" {
		attachComments(ctx, node, commented)
	}
	return stmt
}

func convertCondition(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	if node.Kind() == "parenthesized_expression" {
		node = innerExpression(ctx, node)
	}
	return convertExpression(ctx, node)
}

func convertIfStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	ifStatement := &cssrc.IfStatement{
		Condition: convertCondition(ctx, stmtNode.ChildByFieldName("condition")),
		Then:      embeddedStatement(ctx, stmtNode.ChildByFieldName("consequence")),
	}
	if alternative := stmtNode.ChildByFieldName("alternative"); alternative != nil {
		ifStatement.Else = embeddedStatement(ctx, alternative)
	}
	return ifStatement
}

// loopBody converts a loop body; ok is false when the body elides to nothing
func loopBody(ctx *MigrationContext, stmtNode *tree_sitter.Node) (cssrc.Statement, bool) {
	body := embeddedStatement(ctx, stmtNode.ChildByFieldName("body"))
	if body == nil {
		ctx.warn(stmtNode, "Loop with an empty body was dropped.")
		return nil, false
	}
	return body, true
}

func convertWhileStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	body, ok := loopBody(ctx, stmtNode)
	if !ok {
		return nil
	}
	return &cssrc.WhileStatement{
		Condition: convertCondition(ctx, stmtNode.ChildByFieldName("condition")),
		Body:      body,
	}
}

func convertDoStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	body, ok := loopBody(ctx, stmtNode)
	if !ok {
		return nil
	}
	return &cssrc.DoStatement{
		Body:      body,
		Condition: convertCondition(ctx, stmtNode.ChildByFieldName("condition")),
	}
}

func convertForStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	body, ok := loopBody(ctx, stmtNode)
	if !ok {
		return nil
	}
	forStatement := &cssrc.ForStatement{Body: body}
	cursor := stmtNode.Walk()
	defer cursor.Close()
	for _, initNode := range stmtNode.ChildrenByFieldName("init", cursor) {
		if initNode.Kind() == "local_variable_declaration" {
			forStatement.Declaration = convertLocalVariableDeclaration(ctx, &initNode)
			continue
		}
		forStatement.Initializers = append(forStatement.Initializers, convertExpression(ctx, &initNode))
	}
	if condition := stmtNode.ChildByFieldName("condition"); condition != nil {
		forStatement.Condition = convertExpression(ctx, condition)
	}
	for _, update := range stmtNode.ChildrenByFieldName("update", cursor) {
		forStatement.Incrementors = append(forStatement.Incrementors, convertExpression(ctx, &update))
	}
	return forStatement
}

func convertEnhancedForStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	body, ok := loopBody(ctx, stmtNode)
	if !ok {
		return nil
	}
	rank := countDimensions(stmtNode.ChildByFieldName("dimensions"))
	return &cssrc.ForEachStatement{
		Type:       convertTypeWithRank(ctx, stmtNode.ChildByFieldName("type"), rank, 0),
		Name:       EscapeIdentifier(ctx.text(stmtNode.ChildByFieldName("name"))),
		Collection: convertExpression(ctx, stmtNode.ChildByFieldName("value")),
		Body:       body,
	}
}

func convertLocalVariableDeclaration(ctx *MigrationContext, stmtNode *tree_sitter.Node) *cssrc.LocalDeclaration {
	typeName, variables := convertDeclarators(ctx, stmtNode)
	return &cssrc.LocalDeclaration{Type: typeName, Variables: variables}
}

// convertDeclarators converts the variable_declarator children of a local or
// field declaration. Every declarator must have the same array rank.
func convertDeclarators(ctx *MigrationContext, node *tree_sitter.Node) (string, []cssrc.VariableDeclarator) {
	typeNode := node.ChildByFieldName("type")
	var variables []cssrc.VariableDeclarator
	rank := -1
	cursor := node.Walk()
	defer cursor.Close()
	for _, declarator := range node.ChildrenByFieldName("declarator", cursor) {
		dims := countDimensions(declarator.ChildByFieldName("dimensions"))
		if rank >= 0 && dims != rank {
			fatalErr(ctx, &declarator, fmt.Errorf("%w: expected rank %d, got %d", ErrRankMismatch, rank, dims))
		}
		rank = dims
		variable := cssrc.VariableDeclarator{Name: EscapeIdentifier(ctx.text(declarator.ChildByFieldName("name")))}
		if value := declarator.ChildByFieldName("value"); value != nil {
			variable.Init = convertVariableInitializer(ctx, value)
		}
		variables = append(variables, variable)
	}
	if rank < 0 {
		rank = 0
	}
	return convertTypeWithRank(ctx, typeNode, rank, 0), variables
}

// convertSynchronizedStatement locks on the type inside static methods and on
// the instance otherwise
func convertSynchronizedStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	return &cssrc.LockStatement{
		Lock: lockTarget(ctx, stmtNode),
		Body: convertBlock(ctx, stmtNode.ChildByFieldName("body")),
	}
}

func lockTarget(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	if ctx.inStaticMethod {
		return &cssrc.TypeOfExpression{Type: ctx.LastTypeName}
	}
	ctx.warn(node, "Synchronized converted to lock (this); check for correctness.")
	return &cssrc.Identifier{Name: cssrc.SelfRef}
}

func convertTryStatement(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	tryStatement := &cssrc.TryStatement{Body: convertBlock(ctx, stmtNode.ChildByFieldName("body"))}
	convertHandlers(ctx, stmtNode, tryStatement)
	return tryStatement
}

// convertHandlers converts the catch and finally clauses of stmtNode into tryStatement
func convertHandlers(ctx *MigrationContext, stmtNode *tree_sitter.Node, tryStatement *cssrc.TryStatement) {
	for _, child := range namedChildren(stmtNode) {
		switch child.Kind() {
		case "catch_clause":
			tryStatement.Catches = append(tryStatement.Catches, convertCatchClause(ctx, child))
		case "finally_clause":
			tryStatement.Finally = convertBlock(ctx, childOfKind(child, "block"))
		}
	}
}

func convertCatchClause(ctx *MigrationContext, clauseNode *tree_sitter.Node) cssrc.CatchClause {
	param := childOfKind(clauseNode, "catch_formal_parameter")
	catchType := childOfKind(param, "catch_type")
	types := namedChildren(catchType)
	if len(types) != 1 {
		FatalError(ctx, catchType, "multi-catch is not supported")
	}
	return cssrc.CatchClause{
		ExceptionType: convertType(ctx, types[0]),
		ExceptionVar:  EscapeIdentifier(ctx.text(param.ChildByFieldName("name"))),
		Body:          convertBlock(ctx, clauseNode.ChildByFieldName("body")),
	}
}

// convertTryWithResources nests one using statement per resource. Catch and
// finally clauses wrap the usings so resources are released first.
func convertTryWithResources(ctx *MigrationContext, stmtNode *tree_sitter.Node) cssrc.Statement {
	var resources []*tree_sitter.Node
	for _, child := range namedChildren(stmtNode.ChildByFieldName("resources")) {
		if child.Kind() == "resource" {
			resources = append(resources, child)
		}
	}

	var body cssrc.Statement = convertBlock(ctx, stmtNode.ChildByFieldName("body"))
	for i := len(resources) - 1; i >= 0; i-- {
		body = convertResource(ctx, resources[i], body)
	}

	tryStatement := &cssrc.TryStatement{}
	convertHandlers(ctx, stmtNode, tryStatement)
	if len(tryStatement.Catches) == 0 && tryStatement.Finally == nil {
		return body
	}
	tryStatement.Body = &cssrc.Block{Statements: []cssrc.Statement{body}}
	return tryStatement
}

func convertResource(ctx *MigrationContext, resource *tree_sitter.Node, body cssrc.Statement) cssrc.Statement {
	using := &cssrc.UsingStatement{Body: body}
	typeNode := resource.ChildByFieldName("type")
	if typeNode == nil {
		// an effectively final variable or field
		using.Exp = convertExpression(ctx, namedChildren(resource)[0])
		return using
	}
	rank := countDimensions(resource.ChildByFieldName("dimensions"))
	using.Declaration = &cssrc.LocalDeclaration{
		Type: convertTypeWithRank(ctx, typeNode, rank, 0),
		Variables: []cssrc.VariableDeclarator{{
			Name: EscapeIdentifier(ctx.text(resource.ChildByFieldName("name"))),
			Init: convertExpression(ctx, resource.ChildByFieldName("value")),
		}},
	}
	return using
}

// convertLocalTypeDeclaration converts a type declared inside a method body
// and injects its printed form as a raw statement
func convertLocalTypeDeclaration(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Statement {
	savedType := ctx.LastTypeName
	defer func() {
		ctx.LastTypeName = savedType
	}()
	var member cssrc.Member
	switch node.Kind() {
	case "class_declaration":
		member = convertClassDeclaration(ctx, node, true)
	case "interface_declaration":
		member = convertInterfaceDeclaration(ctx, node, true)
	case "enum_declaration":
		member = convertEnumDeclaration(ctx, node, true)
	}
	return &cssrc.RawStatement{Source: member.ToSource()}
}
