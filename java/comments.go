package java

import (
	"regexp"
	"slices"
	"strings"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// optional *, optional @tag, text with leading whitespace kept and trailing trimmed
var docLinePattern = regexp.MustCompile(`^(\s*\*)?(\s*(?P<param>@[a-z]+))?\s?(?P<text>.*?)\s*$`)

var knownDocTags = map[string]string{
	"@param":     "param",
	"@return":    "returns",
	"@exception": "exception",
	"@throws":    "exception",
}

// gatherComments finds the comments that belong to node. Ownership is decided
// by position relative to the siblings of node under its parent:
//   - leading comments start after the previous sibling's last line and end
//     before node starts
//   - trailing comments start on node's last line after its end; when node is
//     the last sibling every later comment is trailing
func gatherComments(ctx *MigrationContext, node *tree_sitter.Node) (leading, trailing []cssrc.Comment) {
	if node == nil || !ctx.Options.IncludeComments {
		return nil, nil
	}
	parent := node.Parent()
	if parent == nil {
		return nil, nil
	}
	comments := ctx.commentsUnder(parent)
	if len(comments) == 0 {
		return nil, nil
	}

	var previous, next *tree_sitter.Node
	for _, sibling := range namedChildren(parent) {
		if sibling.EndByte() <= node.StartByte() && sibling.Id() != node.Id() {
			previous = sibling
		}
		if next == nil && sibling.StartByte() >= node.EndByte() && sibling.Id() != node.Id() {
			next = sibling
		}
	}
	previousRow := -1
	if previous != nil {
		previousRow = int(previous.EndPosition().Row)
	}
	endRow := int(node.EndPosition().Row)

	for _, comment := range comments {
		startRow := int(comment.StartPosition().Row)
		switch {
		case startRow > previousRow && comment.EndByte() <= node.StartByte():
			leading = append(leading, convertComment(ctx, comment)...)
		case comment.StartByte() >= node.EndByte() && (startRow == endRow || next == nil):
			converted := convertComment(ctx, comment)
			if isDocComment(ctx.text(comment)) {
				leading = append(leading, converted...)
				continue
			}
			for i := range converted {
				converted[i].OwnLine = startRow > endRow
			}
			trailing = append(trailing, converted...)
		}
	}
	return leading, trailing
}

// attachComments copies the comments of node onto target
func attachComments(ctx *MigrationContext, node *tree_sitter.Node, target cssrc.Commented) {
	leading, trailing := gatherComments(ctx, node)
	if len(leading) == 0 && len(trailing) == 0 {
		return
	}
	trivia := target.Comments()
	trivia.Leading = append(leading, trivia.Leading...)
	trivia.AddTrailing(trailing...)
}

// orphanComments converts the comments directly inside node when it has no
// other named children, e.g. an empty block
func orphanComments(ctx *MigrationContext, node *tree_sitter.Node) []cssrc.Comment {
	if !ctx.Options.IncludeComments || len(namedChildren(node)) > 0 {
		return nil
	}
	var result []cssrc.Comment
	IterateChildren(node, func(child *tree_sitter.Node) {
		if isComment(child) {
			result = append(result, convertComment(ctx, child)...)
		}
	})
	return result
}

// commentsUnder returns every comment below parent ordered by position
func (ctx *MigrationContext) commentsUnder(parent *tree_sitter.Node) []*tree_sitter.Node {
	if cached, ok := ctx.commentCache[parent.Id()]; ok {
		return cached
	}
	var comments []*tree_sitter.Node
	var collect func(n *tree_sitter.Node)
	collect = func(n *tree_sitter.Node) {
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if isComment(child) {
				comments = append(comments, child)
				continue
			}
			collect(child)
		}
	}
	collect(parent)
	slices.SortStableFunc(comments, func(a, b *tree_sitter.Node) int {
		return int(a.StartByte()) - int(b.StartByte())
	})
	ctx.commentCache[parent.Id()] = comments
	return comments
}

func isDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/"
}

func convertComment(ctx *MigrationContext, node *tree_sitter.Node) []cssrc.Comment {
	text := strings.TrimRight(ctx.text(node), "\r\n")
	switch {
	case node.Kind() == "line_comment":
		return []cssrc.Comment{{Kind: cssrc.LineComment, Text: text}}
	case isDocComment(text):
		return convertDocComment(strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/"))
	default:
		return []cssrc.Comment{{Kind: cssrc.BlockComment, Text: text}}
	}
}

// convertDocComment turns javadoc content into /// xml documentation lines
func convertDocComment(content string) []cssrc.Comment {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	paramGroup := docLinePattern.SubexpIndex("param")
	textGroup := docLinePattern.SubexpIndex("text")

	var output, remarks []string
	current := &output
	tag := ""
	for _, line := range lines {
		match := docLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		param, text := match[paramGroup], match[textGroup]
		if newTag, ok := knownDocTags[param]; ok {
			closeDocSection(&output, tag)
			tag = newTag
			current = &output
			openDocSection(&output, tag, text)
		} else if param != "" {
			closeDocSection(&output, tag)
			current = &remarks
			remarks = append(remarks, strings.TrimSpace(param+" "+text))
			tag = "remarks"
		} else if tag == "" {
			tag = "summary"
			openDocSection(&output, tag, text)
		} else {
			*current = append(*current, text)
		}
	}
	closeDocSection(&output, tag)

	remarks = trimTrailingEmptyLines(remarks)
	switch {
	case len(remarks) == 1:
		output = append(output, "<remarks>"+remarks[0]+"</remarks>")
	case len(remarks) > 1:
		output = append(output, "<remarks>")
		output = append(output, remarks...)
		output = append(output, "</remarks>")
	}

	result := make([]cssrc.Comment, len(output))
	for i, line := range output {
		result[i] = cssrc.Comment{Kind: cssrc.DocComment, Text: strings.TrimRight("/// "+line, " ")}
	}
	return result
}

func openDocSection(output *[]string, tag, text string) {
	switch tag {
	case "summary":
		*output = append(*output, "<summary>")
		if strings.TrimSpace(text) != "" {
			*output = append(*output, text)
		}
	case "param":
		id, label := splitFirstWord(text)
		*output = append(*output, `<param name="`+id+`">`+label)
	case "exception":
		id, label := splitFirstWord(text)
		*output = append(*output, `<exception cref="`+id+`">`+label)
	default:
		*output = append(*output, "<"+tag+">"+text)
	}
}

// closeDocSection ends the open section; summary always closes on its own line
func closeDocSection(output *[]string, tag string) {
	if len(*output) == 0 || tag == "remarks" {
		return
	}
	*output = trimTrailingEmptyLines(*output)
	endTag := "</" + tag + ">"
	if tag == "summary" || len(*output) == 0 {
		*output = append(*output, endTag)
		return
	}
	(*output)[len(*output)-1] += endTag
}

func trimTrailingEmptyLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func splitFirstWord(text string) (string, string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ""
	}
	id := fields[0]
	rest := strings.TrimLeft(text, " \t")
	return id, strings.TrimLeft(rest[len(id):], " \t")
}

// commentLines renders source text as // comment lines
func commentLines(text string) []cssrc.Comment {
	var result []cssrc.Comment
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		result = append(result, cssrc.Comment{Kind: cssrc.LineComment, Text: strings.TrimRight("// "+line, " ")})
	}
	return result
}
