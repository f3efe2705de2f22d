package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// typeInfo describes the type whose members are being converted
type typeInfo struct {
	Name      string
	Sealed    bool
	Interface bool
}

func convertClassDeclaration(ctx *MigrationContext, classNode *tree_sitter.Node, nested bool) cssrc.Member {
	name := ctx.text(classNode.ChildByFieldName("name"))
	if !nested {
		ctx.RootTypeName = name
	}
	ctx.LastTypeName = name

	mods, annotations := parseModifiers(ctx, classNode)
	class := &cssrc.Class{
		Attributes:     convertAnnotations(ctx, annotations),
		Modifiers:      classModifiers(mods),
		Name:           name,
		TypeParameters: convertTypeParameters(ctx, classNode.ChildByFieldName("type_parameters")),
	}
	class.BaseTypes = append(class.BaseTypes, convertTypeList(ctx, classNode.ChildByFieldName("superclass"))...)
	class.BaseTypes = append(class.BaseTypes, convertTypeList(ctx, classNode.ChildByFieldName("interfaces"))...)
	if classNode.ChildByFieldName("permits") != nil {
		ctx.warn(classNode, "Permitted subclasses of sealed class "+name+" are not ported.")
	}
	annotationComments(ctx, annotations, class)

	class.Members = convertClassBody(ctx, classNode.ChildByFieldName("body"), typeInfo{Name: name, Sealed: mods.has(FINAL)})
	return class
}

func classModifiers(mods modifiers) []string {
	var result []string
	if mods.has(PRIVATE) {
		result = append(result, "private")
	}
	if mods.has(PROTECTED) {
		result = append(result, "protected")
	}
	if mods.has(PUBLIC) {
		result = append(result, "public")
	}
	if mods.has(ABSTRACT) {
		result = append(result, "abstract")
	}
	if mods.has(FINAL) {
		result = append(result, "sealed")
	}
	return result
}

// convertClassBody converts the members of a class, anonymous class or enum
// body. Anonymous classes created while converting a member are placed right
// after it.
func convertClassBody(ctx *MigrationContext, body *tree_sitter.Node, owner typeInfo) []cssrc.Member {
	var members []cssrc.Member
	for _, child := range namedChildren(body) {
		member, hoisted := hoist(ctx, func() cssrc.Member {
			return convertClassMember(ctx, child, owner)
		})
		if member != nil {
			if commented, ok := member.(cssrc.Commented); ok {
				attachComments(ctx, child, commented)
			}
			members = append(members, member)
		}
		members = append(members, hoisted...)
		ctx.LastTypeName = owner.Name
	}
	if orphans := orphanComments(ctx, body); len(orphans) > 0 {
		members = append(members, &cssrc.CommentMember{Trivia: cssrc.Trivia{Leading: orphans}})
	}
	return members
}

// convertClassMember converts one class body declaration; nil means the
// member is skipped
func convertClassMember(ctx *MigrationContext, member *tree_sitter.Node, owner typeInfo) cssrc.Member {
	switch member.Kind() {
	case "field_declaration":
		return convertFieldDeclaration(ctx, member)
	case "method_declaration":
		return convertMethodDeclaration(ctx, member, owner)
	case "constructor_declaration":
		return convertConstructorDeclaration(ctx, member, owner)
	case "static_initializer":
		saved := ctx.inStaticMethod
		ctx.inStaticMethod = true
		defer func() {
			ctx.inStaticMethod = saved
		}()
		return &cssrc.Constructor{
			Modifiers: []string{"static"},
			Name:      owner.Name,
			Body:      convertBlock(ctx, childOfKind(member, "block")),
		}
	case "class_declaration":
		return convertClassDeclaration(ctx, member, true)
	case "interface_declaration":
		return convertInterfaceDeclaration(ctx, member, true)
	case "enum_declaration":
		return convertEnumDeclaration(ctx, member, true)
	case "annotation_type_declaration":
		ctx.warn(member, "Annotation type declarations are not supported and will be skipped.")
		return nil
	case "block":
		FatalError(ctx, member, "instance initializer blocks are not supported")
	case "record_declaration", "compact_constructor_declaration":
		FatalError(ctx, member, "records are not supported")
	default:
		fatalf(ctx, member, "unsupported class member: %s", member.Kind())
	}
	return nil
}

// convertAnnotations maps annotations onto attributes. @Deprecated becomes
// [Obsolete]; other annotations need an entry in the annotation mappings.
func convertAnnotations(ctx *MigrationContext, annotations []annotation) []cssrc.Attribute {
	var attributes []cssrc.Attribute
	mappings := ctx.Options.mappings().AnnotationMappings
	for _, ann := range annotations {
		if ann.Name == "Deprecated" {
			attributes = append(attributes, cssrc.Attribute{Name: "Obsolete", Args: []string{`"Obsolete"`}})
			continue
		}
		mapped, ok := mappings[ann.Name]
		if !ok || mapped == "" {
			continue
		}
		attribute := cssrc.Attribute{Name: mapped}
		if ann.Args != "" {
			attribute.Args = []string{ann.Args}
		}
		attributes = append(attributes, attribute)
	}
	return attributes
}

// annotationComments records annotations without a C# counterpart as leading
// comments when enabled
func annotationComments(ctx *MigrationContext, annotations []annotation, target cssrc.Commented) {
	if !ctx.Options.UseAnnotationsToComment {
		return
	}
	mappings := ctx.Options.mappings().AnnotationMappings
	for _, ann := range annotations {
		if ann.Name == "Deprecated" || ann.Name == "Override" || mappings[ann.Name] != "" {
			continue
		}
		text := "// @" + ann.Name
		if ann.Args != "" {
			text += "(" + ann.Args + ")"
		}
		target.Comments().AddLeading(cssrc.Comment{Kind: cssrc.LineComment, Text: text})
	}
}
