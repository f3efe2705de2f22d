package java

import (
	"regexp"
	"strings"
)

// WildcardPlaceholder replaces generic wildcards that have no C# equivalent
const WildcardPlaceholder = "TWildcardTodo"

var typeNameTokenizer = regexp.MustCompile(`\w+|<|>|,|\?|\[|\]`)

type typeNameParser struct {
	tokens    []string
	pos       int
	translate func(string) string
}

// ParseTypeName re-assembles a java type name, passing every identifier through
// translate. Names that do not match the type grammar are returned unchanged.
//
//	TypeName     = identifier ["<" TypeArgument {"," TypeArgument} ">"] {"[" "]"}
//	TypeArgument = "?" [("extends" | "super") TypeName] | TypeName
func ParseTypeName(name string, translate func(string) string) string {
	if translate == nil {
		translate = func(s string) string { return s }
	}
	p := &typeNameParser{
		tokens:    typeNameTokenizer.FindAllString(name, -1),
		translate: translate,
	}
	result, ok := p.typeName()
	if !ok || p.pos != len(p.tokens) {
		return name
	}
	return result
}

func (p *typeNameParser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *typeNameParser) accept(token string) bool {
	if p.peek() == token {
		p.pos++
		return true
	}
	return false
}

func isIdentifierToken(token string) bool {
	switch token {
	case "", "<", ">", ",", "?", "[", "]":
		return false
	}
	return true
}

func (p *typeNameParser) typeName() (string, bool) {
	ident := p.peek()
	if !isIdentifierToken(ident) {
		return "", false
	}
	p.pos++
	sb := strings.Builder{}
	sb.WriteString(p.translate(ident))
	if p.accept("<") {
		var args []string
		for {
			arg, ok := p.typeArgument()
			if !ok {
				return "", false
			}
			args = append(args, arg)
			if !p.accept(",") {
				break
			}
		}
		if !p.accept(">") {
			return "", false
		}
		sb.WriteString("<")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(">")
	}
	for p.accept("[") {
		if !p.accept("]") {
			return "", false
		}
		sb.WriteString("[]")
	}
	return sb.String(), true
}

func (p *typeNameParser) typeArgument() (string, bool) {
	if !p.accept("?") {
		return p.typeName()
	}
	if p.accept("extends") || p.accept("super") {
		// the bound is validated but not emitted
		if _, ok := p.typeName(); !ok {
			return "", false
		}
	}
	return WildcardPlaceholder, true
}
