package ast

import (
	"bytes"
	"strings"

	"github.com/guilload/kaleidoscope/source/token"
)

// The base Node interface. Every node owns its children exclusively: no
// sharing, no cycles.
type Node interface {
	Children() []Node
	GetToken() *token.Token
	String() string
}

// Nodes in alphabetical order.

type CallExpression struct {
	Token     token.Token
	Callee    string
	Arguments []Node
}

func (ce *CallExpression) Children() []Node       { return ce.Arguments }
func (ce *CallExpression) GetToken() *token.Token { return &ce.Token }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(ce.Callee)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

type ForExpression struct {
	Token    token.Token
	Variable string
	Start    Node
	End      Node
	Step     Node // nil when absent
	Body     Node
}

func (fe *ForExpression) Children() []Node {
	if fe.Step == nil {
		return []Node{fe.Start, fe.End, fe.Body}
	}
	return []Node{fe.Start, fe.End, fe.Step, fe.Body}
}
func (fe *ForExpression) GetToken() *token.Token { return &fe.Token }
func (fe *ForExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(for ")
	out.WriteString(fe.Variable)
	out.WriteString(" = ")
	out.WriteString(fe.Start.String())
	out.WriteString(", ")
	out.WriteString(fe.End.String())
	if fe.Step != nil {
		out.WriteString(", ")
		out.WriteString(fe.Step.String())
	}
	out.WriteString(" in ")
	out.WriteString(fe.Body.String())
	out.WriteString(")")
	return out.String()
}

// A FunctionDefinition with a nil Body represents an extern declaration; one
// with an anonymous zero-parameter Prototype wraps a top-level expression, so
// that the parser's output stream is uniformly "definitions".
type FunctionDefinition struct {
	Token     token.Token
	Prototype *Prototype
	Body      Node
}

func (fd *FunctionDefinition) Children() []Node {
	if fd.Body == nil {
		return []Node{fd.Prototype}
	}
	return []Node{fd.Prototype, fd.Body}
}
func (fd *FunctionDefinition) GetToken() *token.Token { return &fd.Token }
func (fd *FunctionDefinition) String() string {
	if fd.Body == nil {
		return "extern " + fd.Prototype.String()
	}
	if fd.IsAnonymous() {
		return fd.Body.String()
	}
	return "def " + fd.Prototype.String() + " " + fd.Body.String()
}

func (fd *FunctionDefinition) IsAnonymous() bool { return fd.Prototype.Name == "" }

type Identifier struct {
	Token token.Token
	Value string
}

func (id *Identifier) Children() []Node       { return []Node{} }
func (id *Identifier) GetToken() *token.Token { return &id.Token }
func (id *Identifier) String() string         { return id.Value }

type IfExpression struct {
	Token       token.Token
	Condition   Node
	Consequence Node
	Alternative Node // nil when there is no 'else'
}

func (ie *IfExpression) Children() []Node {
	if ie.Alternative == nil {
		return []Node{ie.Condition, ie.Consequence}
	}
	return []Node{ie.Condition, ie.Consequence, ie.Alternative}
}
func (ie *IfExpression) GetToken() *token.Token { return &ie.Token }
func (ie *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(if ")
	out.WriteString(ie.Condition.String())
	out.WriteString(" then ")
	out.WriteString(ie.Consequence.String())
	if ie.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ie.Alternative.String())
	}
	out.WriteString(")")
	return out.String()
}

type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Node
	Right    Node
}

func (ie *InfixExpression) Children() []Node       { return []Node{ie.Left, ie.Right} }
func (ie *InfixExpression) GetToken() *token.Token { return &ie.Token }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) Children() []Node       { return []Node{} }
func (nl *NumberLiteral) GetToken() *token.Token { return &nl.Token }
func (nl *NumberLiteral) String() string         { return nl.Token.Literal }

type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Node
}

func (pe *PrefixExpression) Children() []Node       { return []Node{pe.Right} }
func (pe *PrefixExpression) GetToken() *token.Token { return &pe.Token }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(pe.Operator)
	out.WriteString(" ")
	out.WriteString(pe.Right.String())
	out.WriteString(")")
	return out.String()
}

// The Prototype of a user-defined unary operator has the synthesized name
// "unary" + op and exactly one parameter; a binary one has "binary" + op,
// exactly two parameters, and possibly a declared precedence. Precedence 0
// means none was declared.
type Prototype struct {
	Token      token.Token
	Name       string
	Params     []string
	IsOperator bool
	Precedence int
}

func (pr *Prototype) Children() []Node       { return []Node{} }
func (pr *Prototype) GetToken() *token.Token { return &pr.Token }
func (pr *Prototype) String() string {
	return pr.Name + "(" + strings.Join(pr.Params, " ") + ")"
}

func (pr *Prototype) IsUnaryOperator() bool {
	return pr.IsOperator && strings.HasPrefix(pr.Name, "unary")
}

func (pr *Prototype) IsBinaryOperator() bool {
	return pr.IsOperator && strings.HasPrefix(pr.Name, "binary")
}

// Operator recovers the operator symbol from the synthesized name.
func (pr *Prototype) Operator() string {
	if pr.IsUnaryOperator() {
		return strings.TrimPrefix(pr.Name, "unary")
	}
	return strings.TrimPrefix(pr.Name, "binary")
}

type VarBinding struct {
	Name        string
	Initializer Node // nil when absent
}

type VarExpression struct {
	Token    token.Token
	Bindings []VarBinding
	Body     Node
}

func (ve *VarExpression) Children() []Node {
	result := []Node{}
	for _, b := range ve.Bindings {
		if b.Initializer != nil {
			result = append(result, b.Initializer)
		}
	}
	return append(result, ve.Body)
}
func (ve *VarExpression) GetToken() *token.Token { return &ve.Token }
func (ve *VarExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(var ")
	bindings := []string{}
	for _, b := range ve.Bindings {
		if b.Initializer == nil {
			bindings = append(bindings, b.Name)
		} else {
			bindings = append(bindings, b.Name+" = "+b.Initializer.String())
		}
	}
	out.WriteString(strings.Join(bindings, ", "))
	out.WriteString(" in ")
	out.WriteString(ve.Body.String())
	out.WriteString(")")
	return out.String()
}
