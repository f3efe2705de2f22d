package java

import (
	"fmt"
	"strings"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// MigrationContext holds state during a single Java to C# conversion. It is not
// safe for concurrent use.
type MigrationContext struct {
	JavaSource []byte
	Options    *Options
	// RootTypeName is the name of the first top level type
	RootTypeName string
	// LastTypeName is the most recently entered type; anonymous classes capture it as their parent
	LastTypeName string

	typeConversions       map[string]string
	usedAnonymousNames    map[string]bool
	pendingAnonymousTypes []cssrc.Member
	commentCache          map[uintptr][]*tree_sitter.Node
	inStaticMethod        bool
}

// NewMigrationContext creates and initializes a new MigrationContext
func NewMigrationContext(javaSource []byte, opts *Options) *MigrationContext {
	if opts == nil {
		opts = DefaultOptions()
	}
	conversions := make(map[string]string, len(typeConversions)+len(opts.TypeMappings))
	for k, v := range typeConversions {
		conversions[k] = v
	}
	for k, v := range opts.TypeMappings {
		conversions[k] = v
	}
	return &MigrationContext{
		JavaSource:         javaSource,
		Options:            opts,
		typeConversions:    conversions,
		usedAnonymousNames: make(map[string]bool),
		commentCache:       make(map[uintptr][]*tree_sitter.Node),
	}
}

func (ctx *MigrationContext) warn(node *tree_sitter.Node, message string) {
	line := 0
	if node != nil {
		line = lineOf(node)
	}
	ctx.Options.warn(message, line)
}

// hoist runs convert in a fresh anonymous type scope and returns the classes
// synthesized while it ran. The enclosing scope is restored afterwards.
func hoist[T any](ctx *MigrationContext, convert func() T) (T, []cssrc.Member) {
	saved := ctx.pendingAnonymousTypes
	ctx.pendingAnonymousTypes = nil
	defer func() {
		ctx.pendingAnonymousTypes = saved
	}()
	result := convert()
	return result, ctx.pendingAnonymousTypes
}

// ConvertText converts java source code to C# source code
func ConvertText(javaSource []byte, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts.setState(Starting)

	opts.setState(ParsingSource)
	tree := ParseJava(javaSource)
	if tree == nil {
		return "", ErrParse
	}
	defer tree.Close()
	if errNode := firstError(tree.RootNode()); errNode != nil {
		pos := errNode.StartPosition()
		return "", fmt.Errorf("%w: line %d, column %d", ErrParse, pos.Row+1, pos.Column+1)
	}

	opts.setState(BuildingTargetTree)
	ctx := NewMigrationContext(javaSource, opts)
	unit, err := MigrateTree(ctx, tree)
	if err != nil {
		return "", err
	}
	result := unit.ToSource()

	opts.setState(Done)
	return result, nil
}

// MigrateTree converts a parsed java compilation unit. Unsupported constructs
// abort the whole conversion and are returned as *MigrationError.
func MigrateTree(ctx *MigrationContext, tree *tree_sitter.Tree) (unit *cssrc.CompilationUnit, err error) {
	defer recoverMigration(&err)

	root := tree.RootNode()
	if ctx.Options.StartInterfaceNamesWithI {
		analyzeInterfaceNames(ctx, tree)
	}

	unit = &cssrc.CompilationUnit{}
	var packageNode *tree_sitter.Node
	var types []*tree_sitter.Node
	IterateChildren(root, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "package_declaration":
			packageNode = child
		case "import_declaration":
			migrateImport(ctx, unit, child)
		case "class_declaration", "interface_declaration", "enum_declaration":
			types = append(types, child)
		case "annotation_type_declaration":
			ctx.warn(child, "Annotation type declarations are not supported and will be skipped.")
		case "record_declaration":
			FatalError(ctx, child, "records are not supported")
		// ignored
		case "line_comment", "block_comment", ";":
		default:
			UnhandledChild(ctx, child, "program")
		}
	})

	if packageNode != nil {
		leading, trailing := gatherComments(ctx, packageNode)
		unit.Header = append(append(leading, trailing...), unit.Header...)
	}
	if ctx.Options.IncludeUsings {
		unit.Usings = appendUsings(unit.Usings, ctx.Options.Usings)
	}

	var members []cssrc.Member
	for _, typeNode := range types {
		if member := convertTopLevelType(ctx, typeNode); member != nil {
			members = append(members, member)
		}
	}

	if ctx.Options.IncludeNamespace {
		unit.Namespace = &cssrc.Namespace{
			Name:       namespaceName(ctx, packageNode),
			FileScoped: useFileScopedNamespace(ctx),
			Members:    members,
		}
	} else {
		unit.Members = members
	}
	return unit, nil
}

func convertTopLevelType(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Member {
	var member cssrc.Member
	switch node.Kind() {
	case "class_declaration":
		member = convertClassDeclaration(ctx, node, false)
	case "interface_declaration":
		member = convertInterfaceDeclaration(ctx, node, false)
	case "enum_declaration":
		member = convertEnumDeclaration(ctx, node, false)
	}
	if commented, ok := member.(cssrc.Commented); ok {
		attachComments(ctx, node, commented)
	}
	return member
}

// analyzeInterfaceNames registers the I prefixed name of every interface
// declared in the file before any type reference is converted
func analyzeInterfaceNames(ctx *MigrationContext, tree *tree_sitter.Tree) {
	query, queryErr := tree_sitter.NewQuery(javaLanguage(), "(interface_declaration name: (identifier) @name)")
	if queryErr != nil {
		// This is a programming error - the query syntax is invalid
		panic(fmt.Sprintf("Invalid tree-sitter query: %v", queryErr))
	}
	defer query.Close()

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(query, tree.RootNode(), ctx.JavaSource)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			name := capture.Node.Utf8Text(ctx.JavaSource)
			ctx.typeConversions[name] = interfaceName(ctx, name)
		}
	}
}

func interfaceName(ctx *MigrationContext, name string) string {
	if ctx.Options.StartInterfaceNamesWithI {
		return "I" + name
	}
	return name
}

// migrateImport emits the mapped using of an import. Comments of an import
// that is not emitted move to the file header.
func migrateImport(ctx *MigrationContext, unit *cssrc.CompilationUnit, node *tree_sitter.Node) {
	var name string
	wildcard := false
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "identifier", "scoped_identifier":
			name = ctx.text(child)
		case "asterisk":
			wildcard = true
		// ignored
		case "import", "static", ".", ";", "line_comment", "block_comment":
		default:
			UnhandledChild(ctx, child, "import_declaration")
		}
	})
	if wildcard {
		name += ".*"
	}

	leading, trailing := gatherComments(ctx, node)
	mapped, ok := ctx.Options.mappings().ImportMappings[name]
	if !ok || mapped == "" || hasUsing(unit.Usings, mapped) {
		unit.Header = append(unit.Header, leading...)
		unit.Header = append(unit.Header, ownLine(trailing)...)
		return
	}
	using := cssrc.Using{Name: mapped}
	using.AddLeading(leading...)
	using.AddTrailing(trailing...)
	unit.Usings = append(unit.Usings, using)
}

// ownLine drops the trailing position of comments moved to the header
func ownLine(comments []cssrc.Comment) []cssrc.Comment {
	for i := range comments {
		comments[i].OwnLine = false
	}
	return comments
}

func hasUsing(usings []cssrc.Using, name string) bool {
	for _, using := range usings {
		if using.Name == name {
			return true
		}
	}
	return false
}

// appendUsings adds the configured usings, skipping blanks and duplicates
func appendUsings(usings []cssrc.Using, names []string) []cssrc.Using {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || hasUsing(usings, name) {
			continue
		}
		usings = append(usings, cssrc.Using{Name: name})
	}
	return usings
}

func namespaceName(ctx *MigrationContext, packageNode *tree_sitter.Node) string {
	name := cssrc.DefaultNamespace
	if packageNode != nil {
		for _, child := range namedChildren(packageNode) {
			switch child.Kind() {
			case "identifier", "scoped_identifier":
				name = ctx.text(child)
			}
		}
	}
	return Capitalize(ctx.Options.replaceNamespace(name))
}

func useFileScopedNamespace(ctx *MigrationContext) bool {
	if !ctx.Options.UseFileScopedNamespaces {
		return false
	}
	if !ctx.Options.supports(featureFileScopedNamespaces) {
		ctx.Options.warn(fmt.Sprintf("File scoped namespaces require C# 10, target is %s; using a block namespace.", ctx.Options.LanguageVersion), 0)
		return false
	}
	return true
}
