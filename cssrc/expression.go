package cssrc

import (
	"fmt"
	"strings"
)

// Expression implementations

type (
	// RawExpression represents an already rendered expression
	RawExpression struct {
		Source string
	}

	// Literal represents a literal token such as 1, 2L, "x", 'c', true or null
	Literal struct {
		Value string
	}

	// Identifier represents a simple name, possibly escaped with @
	Identifier struct {
		Name string
	}

	// MemberAccess represents `target.Name`
	MemberAccess struct {
		Target Expression
		Name   string
	}

	// Invocation represents `target<TypeArgs>(args)`
	Invocation struct {
		Target   Expression
		TypeArgs []string
		Args     []Expression
	}

	// ElementAccess represents `target[index]`
	ElementAccess struct {
		Target Expression
		Index  []Expression
	}

	// Assignment represents `left op right` where op ends with =
	Assignment struct {
		Left     Expression
		Operator string
		Right    Expression
	}

	// BinaryExpression represents `left op right`
	BinaryExpression struct {
		Left     Expression
		Operator string
		Right    Expression
	}

	// UnaryExpression represents prefix and postfix unary operators
	UnaryExpression struct {
		Operator string
		Operand  Expression
		Postfix  bool
	}

	// ConditionalExpression represents `cond ? a : b`
	ConditionalExpression struct {
		Condition Expression
		WhenTrue  Expression
		WhenFalse Expression
	}

	// CastExpression represents `(T)value`
	CastExpression struct {
		Type  string
		Value Expression
	}

	// IsExpression represents `value is T`
	IsExpression struct {
		Value Expression
		Type  string
	}

	// TypeOfExpression represents `typeof(T)`
	TypeOfExpression struct {
		Type string
	}

	// ObjectCreation represents `new T(args) { init }`; an empty Type is target typed
	ObjectCreation struct {
		Type        string
		Args        []Expression
		Initializer *Initializer
	}

	// ArrayCreation represents `new T[sizes]rank { init }`. Sizes are joined
	// in a single rank specifier; Rank is only set for unsized creations.
	ArrayCreation struct {
		ElementType string
		Sizes       []Expression
		Rank        string
		Initializer *Initializer
	}

	// ImplicitArrayCreation represents `new[] { ... }`
	ImplicitArrayCreation struct {
		Initializer *Initializer
	}

	// Initializer represents `{ a, b }`
	Initializer struct {
		Elements []Expression
	}

	// ParenthesizedExpression represents `(exp)`
	ParenthesizedExpression struct {
		Exp Expression
	}

	// Lambda represents `params => body`. Exactly one of Exp and Block is set.
	Lambda struct {
		Params        []Param
		Parenthesized bool
		Exp           Expression
		Block         *Block
	}

	// SwitchExpression represents `selector switch { arms }`
	SwitchExpression struct {
		Selector Expression
		Arms     []SwitchArm
	}

	// SwitchArm represents `pattern => value`
	SwitchArm struct {
		Pattern Expression
		Value   Expression
	}

	// OrPattern represents `left or right`
	OrPattern struct {
		Left  Expression
		Right Expression
	}

	// ThrowExpression represents `throw value` in expression position
	ThrowExpression struct {
		Value Expression
	}
)

// Discard is the `_` pattern
var Discard = &Identifier{Name: "_"}

func (e *RawExpression) ToSource() string {
	return e.Source
}

func (e *Literal) ToSource() string {
	return e.Value
}

func (e *Identifier) ToSource() string {
	return e.Name
}

func (e *MemberAccess) ToSource() string {
	return e.Target.ToSource() + "." + e.Name
}

func (e *Invocation) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString(e.Target.ToSource())
	if len(e.TypeArgs) > 0 {
		sb.WriteString("<")
		sb.WriteString(strings.Join(e.TypeArgs, ", "))
		sb.WriteString(">")
	}
	sb.WriteString("(")
	sb.WriteString(joinExpressions(e.Args))
	sb.WriteString(")")
	return sb.String()
}

func (e *ElementAccess) ToSource() string {
	return fmt.Sprintf("%s[%s]", e.Target.ToSource(), joinExpressions(e.Index))
}

func (e *Assignment) ToSource() string {
	return fmt.Sprintf("%s %s %s", e.Left.ToSource(), e.Operator, e.Right.ToSource())
}

func (e *BinaryExpression) ToSource() string {
	return fmt.Sprintf("%s %s %s", e.Left.ToSource(), e.Operator, e.Right.ToSource())
}

func (e *UnaryExpression) ToSource() string {
	if e.Postfix {
		return e.Operand.ToSource() + e.Operator
	}
	return e.Operator + e.Operand.ToSource()
}

func (e *ConditionalExpression) ToSource() string {
	return fmt.Sprintf("%s ? %s : %s", e.Condition.ToSource(), e.WhenTrue.ToSource(), e.WhenFalse.ToSource())
}

func (e *CastExpression) ToSource() string {
	return fmt.Sprintf("(%s)%s", e.Type, e.Value.ToSource())
}

func (e *IsExpression) ToSource() string {
	return fmt.Sprintf("%s is %s", e.Value.ToSource(), e.Type)
}

func (e *TypeOfExpression) ToSource() string {
	return fmt.Sprintf("typeof(%s)", e.Type)
}

// ToSource renders a target-typed new() when Type is empty
func (e *ObjectCreation) ToSource() string {
	src := fmt.Sprintf("new %s(%s)", e.Type, joinExpressions(e.Args))
	if e.Type == "" {
		src = fmt.Sprintf("new(%s)", joinExpressions(e.Args))
	}
	if e.Initializer != nil {
		src += " " + e.Initializer.ToSource()
	}
	return src
}

func (e *ArrayCreation) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("new ")
	sb.WriteString(e.ElementType)
	if len(e.Sizes) > 0 {
		sb.WriteString("[")
		sb.WriteString(joinExpressions(e.Sizes))
		sb.WriteString("]")
	}
	sb.WriteString(e.Rank)
	if e.Initializer != nil {
		sb.WriteString(" ")
		sb.WriteString(e.Initializer.ToSource())
	}
	return sb.String()
}

func (e *ImplicitArrayCreation) ToSource() string {
	return "new[] " + e.Initializer.ToSource()
}

func (e *Initializer) ToSource() string {
	if len(e.Elements) == 0 {
		return "{ }"
	}
	return "{ " + joinExpressions(e.Elements) + " }"
}

func (e *ParenthesizedExpression) ToSource() string {
	return "(" + e.Exp.ToSource() + ")"
}

func (e *Lambda) ToSource() string {
	sb := strings.Builder{}
	if len(e.Params) == 1 && !e.Parenthesized && e.Params[0].Type == "" {
		sb.WriteString(e.Params[0].Name)
	} else {
		sb.WriteString("(")
		sb.WriteString(joinParams(e.Params))
		sb.WriteString(")")
	}
	sb.WriteString(" =>")
	if e.Block != nil {
		sb.WriteString("\n")
		sb.WriteString(e.Block.ToSource())
		return sb.String()
	}
	sb.WriteString(" ")
	sb.WriteString(e.Exp.ToSource())
	return sb.String()
}

func (e *SwitchExpression) ToSource() string {
	arms := make([]string, len(e.Arms))
	for i, arm := range e.Arms {
		arms[i] = arm.ToSource()
	}
	content := ""
	if len(arms) > 0 {
		content = strings.Join(arms, ",\n") + "\n"
	}
	return e.Selector.ToSource() + " switch\n" + writeBody(content)
}

func (a SwitchArm) ToSource() string {
	return a.Pattern.ToSource() + " => " + a.Value.ToSource()
}

func (e *OrPattern) ToSource() string {
	return e.Left.ToSource() + " or " + e.Right.ToSource()
}

func (e *ThrowExpression) ToSource() string {
	return "throw " + e.Value.ToSource()
}
