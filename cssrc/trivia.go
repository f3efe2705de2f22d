package cssrc

import "strings"

const indentUnit = "    "

// CommentKind distinguishes how a comment is rendered
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
	DocComment
)

type (
	// Comment is a single comment attached to a declaration or statement.
	// Text holds the full comment including its delimiters; an empty Text
	// renders as a blank line.
	Comment struct {
		Kind CommentKind
		Text string
		// OwnLine trailing comments are printed on the line after the node
		OwnLine bool
	}

	// Trivia holds comments attached before and after a node
	Trivia struct {
		Leading  []Comment
		Trailing []Comment
	}

	// Commented is implemented by every node embedding Trivia
	Commented interface {
		Comments() *Trivia
	}
)

func (t *Trivia) Comments() *Trivia {
	return t
}

// AddLeading appends leading comments
func (t *Trivia) AddLeading(comments ...Comment) {
	t.Leading = append(t.Leading, comments...)
}

// AddTrailing appends trailing comments
func (t *Trivia) AddTrailing(comments ...Comment) {
	t.Trailing = append(t.Trailing, comments...)
}

// ToSource renders the comment. Continuation lines of block comments are
// re-aligned one column right of the opening delimiter; the enclosing
// indentation is added by Indent.
func (c Comment) ToSource() string {
	if c.Kind != BlockComment || !strings.Contains(c.Text, "\n") {
		return c.Text
	}
	lines := strings.Split(strings.ReplaceAll(c.Text, "\r\n", "\n"), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = " " + strings.TrimLeft(lines[i], " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " ")
}

// Indent prefixes every non empty line with one indentation level
func Indent(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indentUnit + line
		}
	}
	return strings.Join(lines, "\n")
}

func withTrivia(el SourceElement) string {
	return renderTrivia(el, false)
}

// renderTrivia renders a node with its comments. When spaced is set a blank
// line is inserted before the first leading single-line comment.
func renderTrivia(el SourceElement, spaced bool) string {
	src := el.ToSource()
	c, ok := el.(Commented)
	if !ok {
		return src
	}
	t := c.Comments()
	if len(t.Leading) == 0 && len(t.Trailing) == 0 {
		return src
	}
	sb := strings.Builder{}
	writeLeading(&sb, t.Leading, spaced)
	sb.WriteString(src)
	writeTrailing(&sb, t.Trailing)
	if src == "" {
		return strings.TrimSuffix(strings.TrimPrefix(sb.String(), "\n"), "\n")
	}
	return sb.String()
}

func writeLeading(sb *strings.Builder, comments []Comment, spaced bool) {
	for _, comment := range comments {
		if spaced && comment.Kind == LineComment {
			sb.WriteString("\n")
			spaced = false
		}
		sb.WriteString(comment.ToSource())
		sb.WriteString("\n")
	}
}

func writeTrailing(sb *strings.Builder, comments []Comment) {
	for _, comment := range comments {
		if comment.OwnLine {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(comment.ToSource())
	}
}
