package cssrc

import (
	"fmt"
	"strings"
)

// Statement implementations

type (
	// RawStatement represents an already rendered statement
	RawStatement struct {
		Trivia
		Source string
	}

	// Block represents `{ ... }`
	Block struct {
		Trivia
		Statements []Statement
	}

	// ExpressionStatement represents `expr;`
	ExpressionStatement struct {
		Trivia
		Exp Expression
	}

	// LocalDeclaration represents `T a = x, b;`
	LocalDeclaration struct {
		Trivia
		Modifiers []string
		Type      string
		Variables []VariableDeclarator
	}

	// IfStatement represents an if-else statement; Else may be another IfStatement
	IfStatement struct {
		Trivia
		Condition Expression
		Then      Statement
		Else      Statement
	}

	// WhileStatement represents a while loop
	WhileStatement struct {
		Trivia
		Condition Expression
		Body      Statement
	}

	// DoStatement represents a do-while loop
	DoStatement struct {
		Trivia
		Body      Statement
		Condition Expression
	}

	// ForStatement represents a traditional for loop
	ForStatement struct {
		Trivia
		Declaration  *LocalDeclaration
		Initializers []Expression
		Condition    Expression
		Incrementors []Expression
		Body         Statement
	}

	// ForEachStatement represents a foreach loop
	ForEachStatement struct {
		Trivia
		Type       string
		Name       string
		Collection Expression
		Body       Statement
	}

	// SwitchStatement represents a switch statement
	SwitchStatement struct {
		Trivia
		Selector Expression
		Sections []SwitchSection
	}

	// SwitchSection represents case labels with their statements. A section
	// without labels is the default section.
	SwitchSection struct {
		Labels     []Expression
		Default    bool
		Statements []Statement
	}

	// ReturnStatement represents `return [value];`
	ReturnStatement struct {
		Trivia
		Value Expression
	}

	// BreakStatement represents `break;`
	BreakStatement struct {
		Trivia
	}

	// ContinueStatement represents `continue;`
	ContinueStatement struct {
		Trivia
	}

	// ThrowStatement represents `throw [value];`
	ThrowStatement struct {
		Trivia
		Value Expression
	}

	// TryStatement represents a try-catch-finally block
	TryStatement struct {
		Trivia
		Body    *Block
		Catches []CatchClause
		Finally *Block
	}

	// CatchClause represents a catch clause in a try statement
	CatchClause struct {
		ExceptionType string
		ExceptionVar  string
		Body          *Block
	}

	// LockStatement represents `lock (x) { ... }`
	LockStatement struct {
		Trivia
		Lock Expression
		Body Statement
	}

	// UsingStatement represents `using (decl) body`
	UsingStatement struct {
		Trivia
		Declaration *LocalDeclaration
		Exp         Expression
		Body        Statement
	}

	// LabeledStatement represents `label: stmt`
	LabeledStatement struct {
		Trivia
		Label     string
		Statement Statement
	}
)

func (s *RawStatement) ToSource() string {
	return s.Source
}

func (b *Block) ToSource() string {
	sb := strings.Builder{}
	for i, stmt := range b.Statements {
		sb.WriteString(renderTrivia(stmt, i > 0))
		sb.WriteString("\n")
	}
	return writeBody(sb.String())
}

func (s *ExpressionStatement) ToSource() string {
	return s.Exp.ToSource() + ";"
}

// Header renders the declaration without the terminating semicolon
func (s *LocalDeclaration) Header() string {
	sb := strings.Builder{}
	writeModifiers(&sb, s.Modifiers)
	sb.WriteString(s.Type)
	sb.WriteString(" ")
	sb.WriteString(joinDeclarators(s.Variables))
	return sb.String()
}

func (s *LocalDeclaration) ToSource() string {
	return s.Header() + ";"
}

func (s *IfStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("if (%s)", s.Condition.ToSource()))
	sb.WriteString(embedded(s.Then))
	if s.Else != nil {
		sb.WriteString("\nelse")
		if elseIf, ok := s.Else.(*IfStatement); ok && len(elseIf.Leading) == 0 {
			sb.WriteString(" ")
			sb.WriteString(withTrivia(elseIf))
		} else {
			sb.WriteString(embedded(s.Else))
		}
	}
	return sb.String()
}

func (s *WhileStatement) ToSource() string {
	return fmt.Sprintf("while (%s)", s.Condition.ToSource()) + embedded(s.Body)
}

func (s *DoStatement) ToSource() string {
	return "do" + embedded(s.Body) + fmt.Sprintf("\nwhile (%s);", s.Condition.ToSource())
}

func (s *ForStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("for (")
	if s.Declaration != nil {
		sb.WriteString(s.Declaration.Header())
	} else {
		sb.WriteString(joinExpressions(s.Initializers))
	}
	sb.WriteString(";")
	if s.Condition != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Condition.ToSource())
	}
	sb.WriteString(";")
	if len(s.Incrementors) > 0 {
		sb.WriteString(" ")
		sb.WriteString(joinExpressions(s.Incrementors))
	}
	sb.WriteString(")")
	sb.WriteString(embedded(s.Body))
	return sb.String()
}

func (s *ForEachStatement) ToSource() string {
	return fmt.Sprintf("foreach (%s %s in %s)", s.Type, s.Name, s.Collection.ToSource()) + embedded(s.Body)
}

func (s *SwitchStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("switch (%s)\n", s.Selector.ToSource()))
	sections := strings.Builder{}
	for _, section := range s.Sections {
		sections.WriteString(section.ToSource())
		sections.WriteString("\n")
	}
	sb.WriteString(writeBody(sections.String()))
	return sb.String()
}

func (s SwitchSection) ToSource() string {
	sb := strings.Builder{}
	for _, label := range s.Labels {
		sb.WriteString(fmt.Sprintf("case %s:\n", label.ToSource()))
	}
	if s.Default || len(s.Labels) == 0 {
		sb.WriteString("default:\n")
	}
	stmts := strings.Builder{}
	for i, stmt := range s.Statements {
		stmts.WriteString(renderTrivia(stmt, i > 0))
		stmts.WriteString("\n")
	}
	sb.WriteString(Indent(stmts.String()))
	return strings.TrimRight(sb.String(), "\n")
}

func (s *ReturnStatement) ToSource() string {
	if s.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", s.Value.ToSource())
}

func (s *BreakStatement) ToSource() string {
	return "break;"
}

func (s *ContinueStatement) ToSource() string {
	return "continue;"
}

func (s *ThrowStatement) ToSource() string {
	if s.Value == nil {
		return "throw;"
	}
	return fmt.Sprintf("throw %s;", s.Value.ToSource())
}

func (s *TryStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("try\n")
	sb.WriteString(s.Body.ToSource())
	for _, catch := range s.Catches {
		sb.WriteString("\n")
		sb.WriteString(catch.ToSource())
	}
	if s.Finally != nil {
		sb.WriteString("\nfinally\n")
		sb.WriteString(s.Finally.ToSource())
	}
	return sb.String()
}

func (c CatchClause) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("catch (")
	sb.WriteString(c.ExceptionType)
	if c.ExceptionVar != "" {
		sb.WriteString(" ")
		sb.WriteString(c.ExceptionVar)
	}
	sb.WriteString(")\n")
	sb.WriteString(c.Body.ToSource())
	return sb.String()
}

func (s *LockStatement) ToSource() string {
	return fmt.Sprintf("lock (%s)", s.Lock.ToSource()) + embedded(s.Body)
}

func (s *UsingStatement) ToSource() string {
	var resource string
	if s.Declaration != nil {
		resource = s.Declaration.Header()
	} else {
		resource = s.Exp.ToSource()
	}
	return fmt.Sprintf("using (%s)", resource) + embedded(s.Body)
}

func (s *LabeledStatement) ToSource() string {
	return s.Label + ":\n" + withTrivia(s.Statement)
}

// embedded renders the body of a control statement on the following line,
// indenting it unless it is a block
func embedded(stmt Statement) string {
	if stmt == nil {
		return "\n" + indentUnit + ";"
	}
	if _, ok := stmt.(*Block); ok {
		return "\n" + withTrivia(stmt)
	}
	return "\n" + Indent(withTrivia(stmt))
}
