package evaluator

// This is basically your standard tree-walking evaluator, kept honest by the
// fact that the language has exactly one value type. It is the collaborator
// the parser hands its output to: the parser performs no scope tracking and
// no arity checking against definitions, both of those happen here.

import (
	"fmt"
	"io"
	"os"

	"github.com/guilload/kaleidoscope/source/ast"
	"github.com/guilload/kaleidoscope/source/dtypes"
	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/settings"
	"github.com/guilload/kaleidoscope/source/token"
)

// Guards against runaway recursion in user code.
const maxCallDepth = 10000

// A Context holds what outlives a single evaluation: the functions defined
// so far, the externs declared so far, the global frame, and where output
// goes. Like the parser's PrecedenceTable it belongs to the session and is
// threaded through, never reconstructed.
type Context struct {
	Functions map[string]*ast.FunctionDefinition
	Externs   map[string]*ast.Prototype
	Globals   *Environment
	Output    io.Writer
	calls     *dtypes.Stack[string]
}

func NewContext() *Context {
	return &Context{
		Functions: make(map[string]*ast.FunctionDefinition),
		Externs:   make(map[string]*ast.Prototype),
		Globals:   NewEnvironment(),
		Output:    os.Stdout,
		calls:     dtypes.NewStack[string](),
	}
}

// Define registers a named function or operator definition. Redefinition
// replaces the previous body, which is what an interactive session wants.
func (c *Context) Define(fd *ast.FunctionDefinition) {
	c.Functions[fd.Prototype.Name] = fd
}

// Declare registers an extern. Whether the host actually implements it is
// only checked if the function gets called.
func (c *Context) Declare(proto *ast.Prototype) {
	c.Externs[proto.Name] = proto
}

func Eval(node ast.Node, c *Context, env *Environment) (float64, *err.Error) {
	if settings.SHOW_EVALUATOR {
		fmt.Println(node.String())
	}

	switch node := node.(type) {

	case *ast.NumberLiteral:
		return node.Value, nil

	case *ast.Identifier:
		value, ok := env.Get(node.Value)
		if !ok {
			return 0, newError("eval/ident", node.GetToken(), node.Value)
		}
		return value, nil

	case *ast.PrefixExpression:
		operand, e := Eval(node.Right, c, env)
		if e != nil {
			return 0, e
		}
		return c.applyOperator(node.GetToken(), "unary"+node.Operator, []float64{operand})

	case *ast.InfixExpression:
		return evalInfixExpression(node, c, env)

	case *ast.CallExpression:
		args := make([]float64, 0, len(node.Arguments))
		for _, a := range node.Arguments {
			value, e := Eval(a, c, env)
			if e != nil {
				return 0, e
			}
			args = append(args, value)
		}
		return c.apply(node.GetToken(), node.Callee, args)

	case *ast.IfExpression:
		condition, e := Eval(node.Condition, c, env)
		if e != nil {
			return 0, e
		}
		if condition != 0 {
			return Eval(node.Consequence, c, env)
		}
		if node.Alternative == nil {
			return 0, nil
		}
		return Eval(node.Alternative, c, env)

	case *ast.ForExpression:
		return evalForExpression(node, c, env)

	case *ast.VarExpression:
		return evalVarExpression(node, c, env)

	case *ast.FunctionDefinition:
		if node.IsAnonymous() {
			return Eval(node.Body, c, env)
		}
		if node.Body == nil {
			c.Declare(node.Prototype)
			return 0, nil
		}
		c.Define(node)
		return 0, nil

	case *ast.Prototype:
		c.Declare(node)
		return 0, nil
	}

	// The node set is closed, so this is unreachable unless the parser has
	// grown a node the evaluator doesn't know about.
	return 0, newError("eval/ident", node.GetToken(), node.String())
}

func evalInfixExpression(node *ast.InfixExpression, c *Context, env *Environment) (float64, *err.Error) {
	if node.Operator == "=" {
		return evalAssignment(node, c, env)
	}

	left, e := Eval(node.Left, c, env)
	if e != nil {
		return 0, e
	}
	right, e := Eval(node.Right, c, env)
	if e != nil {
		return 0, e
	}

	switch node.Operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	case "<":
		return boolToFloat(left < right), nil
	case ">":
		return boolToFloat(left > right), nil
	// The lexer emits one-character symbols only, so nothing reaches the
	// next two cases yet; 'a <= b' is 'a < (= b)'. The operator table
	// carries the entries all the same.
	case "<=":
		return boolToFloat(left <= right), nil
	case ">=":
		return boolToFloat(left >= right), nil
	default:
		return c.applyOperator(node.GetToken(), "binary"+node.Operator, []float64{left, right})
	}
}

// The destination of '=' has to be a variable that a binding form has
// already introduced; the value assigned is also the value of the
// expression, so assignments chain.
func evalAssignment(node *ast.InfixExpression, c *Context, env *Environment) (float64, *err.Error) {
	destination, ok := node.Left.(*ast.Identifier)
	if !ok {
		return 0, newError("eval/assign/lhs", node.GetToken())
	}
	value, e := Eval(node.Right, c, env)
	if e != nil {
		return 0, e
	}
	if !env.Assign(destination.Value, value) {
		return 0, newError("eval/ident", destination.GetToken(), destination.Value)
	}
	return value, nil
}

// The loop variable lives in a frame of its own, so it shadows any outer
// binding of the same name for the duration of the body and no longer. The
// loop always yields 0.
func evalForExpression(node *ast.ForExpression, c *Context, env *Environment) (float64, *err.Error) {
	start, e := Eval(node.Start, c, env)
	if e != nil {
		return 0, e
	}

	frame := NewEnclosedEnvironment(env)
	frame.Set(node.Variable, start)

	for {
		condition, e := Eval(node.End, c, frame)
		if e != nil {
			return 0, e
		}
		if condition == 0 {
			return 0, nil
		}

		if _, e := Eval(node.Body, c, frame); e != nil {
			return 0, e
		}

		step := 1.0
		if node.Step != nil {
			if step, e = Eval(node.Step, c, frame); e != nil {
				return 0, e
			}
		}
		current, _ := frame.Get(node.Variable)
		frame.Set(node.Variable, current+step)
	}
}

// Bindings are added to the new frame one at a time, each initializer being
// evaluated before its name is introduced: in 'var x = x in ...' the
// initializer's x is the outer one, while in 'var a = 1, b = a in ...' the
// second initializer sees the first binding.
func evalVarExpression(node *ast.VarExpression, c *Context, env *Environment) (float64, *err.Error) {
	frame := NewEnclosedEnvironment(env)
	for _, binding := range node.Bindings {
		value := 0.0
		if binding.Initializer != nil {
			var e *err.Error
			if value, e = Eval(binding.Initializer, c, frame); e != nil {
				return 0, e
			}
		}
		frame.Set(binding.Name, value)
	}
	return Eval(node.Body, c, frame)
}

// apply resolves a call: user-defined functions first, then declared
// externs. Arity is checked here at the call site, not by the parser.
func (c *Context) apply(tok *token.Token, name string, args []float64) (float64, *err.Error) {
	if fd, ok := c.Functions[name]; ok {
		return c.applyFunction(tok, fd, args)
	}
	if proto, ok := c.Externs[name]; ok {
		return c.applyExtern(tok, proto, args)
	}
	return 0, newError("eval/fn", tok, name)
}

// applyOperator is apply for the synthesized "unary?"/"binary?" names, with
// a friendlier error when no definition exists.
func (c *Context) applyOperator(tok *token.Token, name string, args []float64) (float64, *err.Error) {
	if _, ok := c.Functions[name]; !ok {
		if _, ok := c.Externs[name]; !ok {
			if len(args) == 1 {
				return 0, newError("eval/op/unary", tok, name[len("unary"):])
			}
			return 0, newError("eval/op/binary", tok, name[len("binary"):])
		}
	}
	return c.apply(tok, name, args)
}

// A function body sees its parameters and the globals, nothing else: the
// parameters go in a fresh frame enclosing the global one, so whatever
// scope the call site was in is invisible to the callee.
func (c *Context) applyFunction(tok *token.Token, fd *ast.FunctionDefinition, args []float64) (float64, *err.Error) {
	params := fd.Prototype.Params
	if len(args) != len(params) {
		return 0, newError("eval/arity", tok, fd.Prototype.Name, len(params), len(args))
	}

	if c.calls.Len() >= maxCallDepth {
		return 0, newError("eval/stack", tok, fd.Prototype.Name)
	}
	c.calls.Push(fd.Prototype.Name)
	defer c.calls.Pop()

	frame := NewEnclosedEnvironment(c.Globals)
	for i, param := range params {
		frame.Set(param, args[i])
	}
	return Eval(fd.Body, c, frame)
}

func (c *Context) applyExtern(tok *token.Token, proto *ast.Prototype, args []float64) (float64, *err.Error) {
	host, ok := hostFunctions[proto.Name]
	if !ok {
		return 0, newError("eval/extern", tok, proto.Name)
	}
	if len(args) != len(proto.Params) || len(args) != host.arity {
		return 0, newError("eval/arity", tok, proto.Name, host.arity, len(args))
	}
	return host.fn(c, args), nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func newError(errorID string, tok *token.Token, args ...any) *err.Error {
	return err.CreateErr(errorID, tok, args...)
}
