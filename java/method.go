package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func convertMethodDeclaration(ctx *MigrationContext, methodNode *tree_sitter.Node, owner typeInfo) cssrc.Member {
	mods, annotations := parseModifiers(ctx, methodNode)
	dims := countDimensions(methodNode.ChildByFieldName("dimensions"))
	method := &cssrc.Method{
		Attributes:     convertAnnotations(ctx, annotations),
		ReturnType:     convertTypeWithRank(ctx, methodNode.ChildByFieldName("type"), dims, 0),
		Name:           methodName(ctx.text(methodNode.ChildByFieldName("name"))),
		TypeParameters: convertTypeParameters(ctx, methodNode.ChildByFieldName("type_parameters")),
		Params:         convertFormalParameters(ctx, methodNode.ChildByFieldName("parameters")),
	}
	if owner.Interface {
		method.Modifiers = interfaceMethodModifiers(mods)
	} else {
		method.Modifiers = methodModifiers(mods, hasAnnotation(annotations, "Override"), owner)
	}
	annotationComments(ctx, annotations, method)

	bodyNode := methodNode.ChildByFieldName("body")
	if bodyNode == nil {
		return method
	}
	if owner.Interface && !ctx.Options.supports(featureDefaultInterfaceMethods) {
		ctx.warn(methodNode, "Interface method bodies require C# 8; check the target language version.")
	}

	saved := ctx.inStaticMethod
	ctx.inStaticMethod = mods.has(STATIC)
	defer func() {
		ctx.inStaticMethod = saved
	}()
	method.Body = convertBlock(ctx, bodyNode)
	if mods.has(SYNCHRONIZED) {
		method.Body = &cssrc.Block{Statements: []cssrc.Statement{
			&cssrc.LockStatement{Lock: lockTarget(ctx, methodNode), Body: method.Body},
		}}
	}
	return method
}

// methodModifiers maps java method modifiers. Methods that java lets
// subclasses override become virtual.
func methodModifiers(mods modifiers, override bool, owner typeInfo) []string {
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
	if mods.has(ABSTRACT) {
		result = append(result, "abstract")
	}
	if mods.has(NATIVE) {
		result = append(result, "extern")
	}
	if override {
		result = append(result, "override")
	}
	if !mods.has(FINAL) && !mods.has(ABSTRACT) && !mods.has(STATIC) && !mods.has(PRIVATE) && !override && !owner.Sealed {
		result = append(result, "virtual")
	}
	return result
}

// interfaceMethodModifiers keeps only the modifiers C# allows on interface members
func interfaceMethodModifiers(mods modifiers) []string {
	var result []string
	if mods.has(PRIVATE) {
		result = append(result, "private")
	}
	if mods.has(STATIC) {
		result = append(result, "static")
	}
	return result
}

func convertConstructorDeclaration(ctx *MigrationContext, ctorNode *tree_sitter.Node, owner typeInfo) cssrc.Member {
	if owner.Interface {
		FatalError(ctx, ctorNode, "constructors are not valid on interfaces")
	}
	mods, annotations := parseModifiers(ctx, ctorNode)
	ctor := &cssrc.Constructor{
		Attributes: convertAnnotations(ctx, annotations),
		Name:       owner.Name,
		Params:     convertFormalParameters(ctx, ctorNode.ChildByFieldName("parameters")),
	}
	if mods.has(PUBLIC) {
		ctor.Modifiers = append(ctor.Modifiers, "public")
	}
	if mods.has(PROTECTED) {
		ctor.Modifiers = append(ctor.Modifiers, "protected")
	}
	if mods.has(PRIVATE) {
		ctor.Modifiers = append(ctor.Modifiers, "private")
	}
	annotationComments(ctx, annotations, ctor)

	saved := ctx.inStaticMethod
	ctx.inStaticMethod = false
	defer func() {
		ctx.inStaticMethod = saved
	}()

	body := ctorNode.ChildByFieldName("body")
	statements := namedChildren(body)
	if len(statements) > 0 && statements[0].Kind() == "explicit_constructor_invocation" {
		ctor.Initializer = convertConstructorInvocation(ctx, statements[0])
		statements = statements[1:]
	}
	ctor.Body = &cssrc.Block{Statements: convertStatements(ctx, statements)}
	if orphans := orphanComments(ctx, body); len(orphans) > 0 {
		ctor.Body.Statements = append(ctor.Body.Statements, &cssrc.RawStatement{Trivia: cssrc.Trivia{Leading: orphans}})
	}
	return ctor
}

// convertConstructorInvocation turns this(...) and super(...) into a constructor initializer
func convertConstructorInvocation(ctx *MigrationContext, node *tree_sitter.Node) *cssrc.ConstructorInitializer {
	initializer := &cssrc.ConstructorInitializer{
		Keyword: cssrc.BaseRef,
		Args:    convertArguments(ctx, node.ChildByFieldName("arguments")),
	}
	if node.ChildByFieldName("constructor").Kind() == "this" {
		initializer.Keyword = cssrc.SelfRef
	}
	if node.ChildByFieldName("object") != nil {
		ctx.warn(node, "Qualified superclass constructor invocation converted to base; check for correctness.")
	}
	return initializer
}
