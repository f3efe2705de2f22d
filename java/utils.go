package java

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// ParseJava parses Java source code and returns a tree-sitter tree
func ParseJava(source []byte) *tree_sitter.Tree {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javaLanguage())
	tree := parser.Parse(source, nil)
	return tree
}

func javaLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_java.Language())
}

// UnhandledChild aborts the conversion for a node kind the parent does not support
func UnhandledChild(ctx *MigrationContext, node *tree_sitter.Node, parentName string) {
	FatalError(ctx, node, fmt.Sprintf("unsupported %s child node kind: %s", parentName, node.Kind()))
}

// IterateChildren iterates over all children of a node and calls fn for each
func IterateChildren(node *tree_sitter.Node, fn func(child *tree_sitter.Node)) {
	cursor := node.Walk()
	defer cursor.Close()
	children := node.Children(cursor)
	for i := range children {
		fn(&children[i])
	}
}

// IterateChildrenWhile iterates over all children of a node while fn returns true
func IterateChildrenWhile(node *tree_sitter.Node, fn func(child *tree_sitter.Node) bool) {
	cursor := node.Walk()
	defer cursor.Close()
	children := node.Children(cursor)
	for i := range children {
		if !fn(&children[i]) {
			return
		}
	}
}

// namedChildren returns the named children of node, skipping comments
func namedChildren(node *tree_sitter.Node) []*tree_sitter.Node {
	var result []*tree_sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || isComment(child) {
			continue
		}
		result = append(result, child)
	}
	return result
}

// childOfKind returns the first direct child with the given kind
func childOfKind(node *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

func hasChildOfKind(node *tree_sitter.Node, kind string) bool {
	return childOfKind(node, kind) != nil
}

func isComment(node *tree_sitter.Node) bool {
	switch node.Kind() {
	case "line_comment", "block_comment":
		return true
	}
	return false
}

// lineOf returns the 1-based line a node starts on
func lineOf(node *tree_sitter.Node) int {
	return int(node.StartPosition().Row) + 1
}

func (ctx *MigrationContext) text(node *tree_sitter.Node) string {
	return node.Utf8Text(ctx.JavaSource)
}

// firstError returns the first error or missing node in the tree rooted at node
func firstError(node *tree_sitter.Node) *tree_sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := firstError(node.Child(i)); found != nil {
			return found
		}
	}
	return node
}
