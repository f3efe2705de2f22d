// Package cssrc provide type safe way to represent C# source code along with way
// to convert them to actual C# source code
package cssrc

import (
	"fmt"
	"strings"
)

const (
	SelfRef = "this"
	BaseRef = "base"
	// DefaultNamespace is used when the source file does not declare a package
	DefaultNamespace = "MyApp"
)

// Interfaces for source elements

type (
	// SourceElement represents any element that can be converted to C# source
	SourceElement interface {
		ToSource() string
	}

	// Statement represents a C# statement
	Statement interface {
		SourceElement
	}

	// Expression represents a C# expression
	Expression interface {
		SourceElement
	}

	// Member represents a type member or a top level type declaration
	Member interface {
		SourceElement
	}
)

// Core C# source structures

type (
	// CompilationUnit represents a complete C# source file
	CompilationUnit struct {
		// Header comments are printed before anything else
		Header    []Comment
		Usings    []Using
		Namespace *Namespace
		// Members are emitted at the top level when there is no namespace
		Members []Member
	}

	// Using represents a using directive
	Using struct {
		Trivia
		Name string
	}

	// Namespace wraps the declared types
	Namespace struct {
		Trivia
		Name       string
		FileScoped bool
		Members    []Member
	}

	// Attribute represents a single attribute list entry, e.g. [Obsolete("x")]
	Attribute struct {
		Name string
		Args []string
	}

	// TypeParameter represents a generic parameter with optional constraints
	TypeParameter struct {
		Name        string
		Constraints []string
	}

	// Class represents a class declaration
	Class struct {
		Trivia
		Attributes     []Attribute
		Modifiers      []string
		Name           string
		TypeParameters []TypeParameter
		BaseTypes      []string
		Members        []Member
	}

	// Interface represents an interface declaration
	Interface struct {
		Trivia
		Attributes     []Attribute
		Modifiers      []string
		Name           string
		TypeParameters []TypeParameter
		BaseTypes      []string
		Members        []Member
	}

	// Enum represents an enum declaration
	Enum struct {
		Trivia
		Attributes []Attribute
		Modifiers  []string
		Name       string
		Members    []EnumMember
	}

	// EnumMember represents a single enumerator
	EnumMember struct {
		Trivia
		Name string
	}

	// Field represents a field declaration with one or more declarators
	Field struct {
		Trivia
		Attributes []Attribute
		Modifiers  []string
		Type       string
		Variables  []VariableDeclarator
	}

	// VariableDeclarator represents `name` or `name = init`
	VariableDeclarator struct {
		Name string
		Init Expression
	}

	// Method represents a method declaration; nil Body means `;`
	Method struct {
		Trivia
		Attributes     []Attribute
		Modifiers      []string
		ReturnType     string
		Name           string
		TypeParameters []TypeParameter
		Params         []Param
		Body           *Block
	}

	// Constructor represents an instance or static constructor
	Constructor struct {
		Trivia
		Attributes  []Attribute
		Modifiers   []string
		Name        string
		Params      []Param
		Initializer *ConstructorInitializer
		Body        *Block
	}

	// ConstructorInitializer represents `: this(...)` or `: base(...)`
	ConstructorInitializer struct {
		Keyword string
		Args    []Expression
	}

	// Param represents a method, constructor or lambda parameter.
	// An empty Type is an implicitly typed lambda parameter.
	Param struct {
		Modifiers []string
		Type      string
		Name      string
	}

	// CommentMember is a member made only of comments
	CommentMember struct {
		Trivia
	}
)

// ToSource methods for declarations

func (u *CompilationUnit) ToSource() string {
	sb := strings.Builder{}
	for _, c := range u.Header {
		sb.WriteString(c.ToSource())
		sb.WriteString("\n")
	}
	for _, using := range u.Usings {
		sb.WriteString(withTrivia(&using))
		sb.WriteString("\n")
	}
	var body []string
	if u.Namespace != nil {
		body = append(body, withTrivia(u.Namespace))
	}
	for _, member := range u.Members {
		body = append(body, withTrivia(member))
	}
	if len(body) > 0 && (len(u.Usings) > 0 || len(u.Header) > 0) {
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Join(body, "\n\n"))
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func (u *Using) ToSource() string {
	return fmt.Sprintf("using %s;", u.Name)
}

func (n *Namespace) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("namespace ")
	sb.WriteString(n.Name)
	if n.FileScoped {
		sb.WriteString(";")
		if len(n.Members) > 0 {
			sb.WriteString("\n\n")
			sb.WriteString(writeMembers(n.Members))
		}
		return strings.TrimRight(sb.String(), "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(writeBody(writeMembers(n.Members)))
	return sb.String()
}

func (a Attribute) ToSource() string {
	if len(a.Args) == 0 {
		return fmt.Sprintf("[%s]", a.Name)
	}
	return fmt.Sprintf("[%s(%s)]", a.Name, strings.Join(a.Args, ", "))
}

func (c *Class) ToSource() string {
	sb := strings.Builder{}
	writeAttributes(&sb, c.Attributes)
	writeTypeHeader(&sb, c.Modifiers, "class", c.Name, c.TypeParameters, c.BaseTypes)
	sb.WriteString(writeBody(writeMembers(c.Members)))
	return sb.String()
}

func (i *Interface) ToSource() string {
	sb := strings.Builder{}
	writeAttributes(&sb, i.Attributes)
	writeTypeHeader(&sb, i.Modifiers, "interface", i.Name, i.TypeParameters, i.BaseTypes)
	sb.WriteString(writeBody(writeMembers(i.Members)))
	return sb.String()
}

func (e *Enum) ToSource() string {
	sb := strings.Builder{}
	writeAttributes(&sb, e.Attributes)
	writeTypeHeader(&sb, e.Modifiers, "enum", e.Name, nil, nil)
	members := strings.Builder{}
	for i := range e.Members {
		member := &e.Members[i]
		writeLeading(&members, member.Leading, false)
		members.WriteString(member.Name)
		if i < len(e.Members)-1 {
			members.WriteString(",")
		}
		writeTrailing(&members, member.Trailing)
		members.WriteString("\n")
	}
	sb.WriteString(writeBody(members.String()))
	return sb.String()
}

func (e *EnumMember) ToSource() string {
	return e.Name
}

func (f *Field) ToSource() string {
	sb := strings.Builder{}
	writeAttributes(&sb, f.Attributes)
	writeModifiers(&sb, f.Modifiers)
	sb.WriteString(f.Type)
	sb.WriteString(" ")
	sb.WriteString(joinDeclarators(f.Variables))
	sb.WriteString(";")
	return sb.String()
}

func (v VariableDeclarator) ToSource() string {
	if v.Init == nil {
		return v.Name
	}
	return v.Name + " = " + v.Init.ToSource()
}

func (m *Method) ToSource() string {
	sb := strings.Builder{}
	writeAttributes(&sb, m.Attributes)
	writeModifiers(&sb, m.Modifiers)
	sb.WriteString(m.ReturnType)
	sb.WriteString(" ")
	sb.WriteString(m.Name)
	writeTypeParameterNames(&sb, m.TypeParameters)
	sb.WriteString("(")
	sb.WriteString(joinParams(m.Params))
	sb.WriteString(")")
	writeConstraints(&sb, m.TypeParameters)
	if m.Body == nil {
		sb.WriteString(";")
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(m.Body.ToSource())
	return sb.String()
}

func (c *Constructor) ToSource() string {
	sb := strings.Builder{}
	writeAttributes(&sb, c.Attributes)
	writeModifiers(&sb, c.Modifiers)
	sb.WriteString(c.Name)
	sb.WriteString("(")
	sb.WriteString(joinParams(c.Params))
	sb.WriteString(")")
	if c.Initializer != nil {
		sb.WriteString(" : ")
		sb.WriteString(c.Initializer.Keyword)
		sb.WriteString("(")
		sb.WriteString(joinExpressions(c.Initializer.Args))
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	body := c.Body
	if body == nil {
		body = &Block{}
	}
	sb.WriteString(body.ToSource())
	return sb.String()
}

func (p Param) ToSource() string {
	sb := strings.Builder{}
	writeModifiers(&sb, p.Modifiers)
	if p.Type != "" {
		sb.WriteString(p.Type)
		sb.WriteString(" ")
	}
	sb.WriteString(p.Name)
	return sb.String()
}

// ToSource of a comment-only member is empty; its trivia carries the text
func (c *CommentMember) ToSource() string {
	return ""
}

// Helper functions

func writeAttributes(sb *strings.Builder, attributes []Attribute) {
	for _, attr := range attributes {
		sb.WriteString(attr.ToSource())
		sb.WriteString("\n")
	}
}

func writeModifiers(sb *strings.Builder, modifiers []string) {
	for _, modifier := range modifiers {
		sb.WriteString(modifier)
		sb.WriteString(" ")
	}
}

func writeTypeHeader(sb *strings.Builder, modifiers []string, keyword, name string, typeParams []TypeParameter, baseTypes []string) {
	writeModifiers(sb, modifiers)
	sb.WriteString(keyword)
	sb.WriteString(" ")
	sb.WriteString(name)
	writeTypeParameterNames(sb, typeParams)
	if len(baseTypes) > 0 {
		sb.WriteString(" : ")
		sb.WriteString(strings.Join(baseTypes, ", "))
	}
	writeConstraints(sb, typeParams)
	sb.WriteString("\n")
}

func writeTypeParameterNames(sb *strings.Builder, typeParams []TypeParameter) {
	if len(typeParams) == 0 {
		return
	}
	names := make([]string, len(typeParams))
	for i, tp := range typeParams {
		names[i] = tp.Name
	}
	sb.WriteString("<")
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString(">")
}

func writeConstraints(sb *strings.Builder, typeParams []TypeParameter) {
	for _, tp := range typeParams {
		if len(tp.Constraints) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(indentUnit)
		sb.WriteString("where ")
		sb.WriteString(tp.Name)
		sb.WriteString(" : ")
		sb.WriteString(strings.Join(tp.Constraints, ", "))
	}
}

// writeMembers joins members with blank lines; consecutive fields stay together
func writeMembers(members []Member) string {
	sb := strings.Builder{}
	for i, member := range members {
		if i > 0 {
			_, prevField := members[i-1].(*Field)
			_, isField := member.(*Field)
			if !prevField || !isField {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(withTrivia(member))
		sb.WriteString("\n")
	}
	return sb.String()
}

// writeBody wraps already rendered lines in an indented brace block
func writeBody(content string) string {
	if strings.TrimSpace(content) == "" {
		return "{\n}"
	}
	return "{\n" + Indent(content) + "}"
}

func joinDeclarators(vars []VariableDeclarator) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.ToSource()
	}
	return strings.Join(parts, ", ")
}

func joinParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.ToSource()
	}
	return strings.Join(parts, ", ")
}

func joinExpressions(exps []Expression) string {
	parts := make([]string, len(exps))
	for i, e := range exps {
		parts[i] = e.ToSource()
	}
	return strings.Join(parts, ", ")
}
