package java

import (
	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const interfaceFieldTodo = "// TODO: java interface constants have no direct C# counterpart; check for correctness."

func convertInterfaceDeclaration(ctx *MigrationContext, interfaceNode *tree_sitter.Node, nested bool) cssrc.Member {
	name := interfaceName(ctx, ctx.text(interfaceNode.ChildByFieldName("name")))
	if !nested {
		ctx.RootTypeName = name
	}
	ctx.LastTypeName = name

	mods, annotations := parseModifiers(ctx, interfaceNode)
	iface := &cssrc.Interface{
		Attributes:     convertAnnotations(ctx, annotations),
		Modifiers:      classModifiers(mods &^ (ABSTRACT | FINAL)),
		Name:           name,
		TypeParameters: convertTypeParameters(ctx, interfaceNode.ChildByFieldName("type_parameters")),
		BaseTypes:      convertTypeList(ctx, childOfKind(interfaceNode, "extends_interfaces")),
	}
	annotationComments(ctx, annotations, iface)

	owner := typeInfo{Name: name, Interface: true}
	body := interfaceNode.ChildByFieldName("body")
	for _, child := range namedChildren(body) {
		member, hoisted := hoist(ctx, func() cssrc.Member {
			return convertInterfaceMember(ctx, child, owner)
		})
		if member != nil {
			if commented, ok := member.(cssrc.Commented); ok {
				attachComments(ctx, child, commented)
			}
			iface.Members = append(iface.Members, member)
		}
		iface.Members = append(iface.Members, hoisted...)
		ctx.LastTypeName = name
	}
	if orphans := orphanComments(ctx, body); len(orphans) > 0 {
		iface.Members = append(iface.Members, &cssrc.CommentMember{Trivia: cssrc.Trivia{Leading: orphans}})
	}
	return iface
}

func convertInterfaceMember(ctx *MigrationContext, member *tree_sitter.Node, owner typeInfo) cssrc.Member {
	switch member.Kind() {
	case "method_declaration":
		return convertMethodDeclaration(ctx, member, owner)
	case "constant_declaration":
		field := convertFieldDeclaration(ctx, member)
		field.(*cssrc.Field).AddLeading(cssrc.Comment{Kind: cssrc.LineComment, Text: interfaceFieldTodo})
		return field
	case "class_declaration":
		return convertClassDeclaration(ctx, member, true)
	case "interface_declaration":
		return convertInterfaceDeclaration(ctx, member, true)
	case "enum_declaration":
		return convertEnumDeclaration(ctx, member, true)
	case "annotation_type_declaration":
		ctx.warn(member, "Annotation type declarations are not supported and will be skipped.")
		return nil
	case "constructor_declaration", "static_initializer", "block":
		FatalError(ctx, member, "constructors and initializers are not valid on interfaces")
	case "record_declaration":
		FatalError(ctx, member, "records are not supported")
	default:
		fatalf(ctx, member, "unsupported interface member: %s", member.Kind())
	}
	return nil
}
