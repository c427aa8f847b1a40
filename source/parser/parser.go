package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guilload/kaleidoscope/source/ast"
	"github.com/guilload/kaleidoscope/source/dtypes"
	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/settings"
	"github.com/guilload/kaleidoscope/source/token"
)

type TokenSupplier interface{ NextToken() token.Token }

// String slurps a TokenSupplier dry, for dumping a token stream to the user.
func String(t TokenSupplier) string {
	result := ""
	for tok := t.NextToken(); tok.Type != token.EOF; tok = t.NextToken() {
		result = result + fmt.Sprintf("%v\n", tok)
	}
	return result
}

// A ParsedItem is one top-level item: a definition, an extern declaration,
// or a standalone expression, all normalized to a FunctionDefinition. The
// flag tells the driver whether to evaluate the item on the spot: a
// standalone def/extern/if/var form is not auto-evaluated, everything
// else is.
type ParsedItem struct {
	IsExpression bool
	Item         *ast.FunctionDefinition
}

// The Parser pulls one token at a time from its supplier, keeping exactly
// one token of lookahead, and builds AST nodes bottom-up. Parsing a 'binary'
// prototype writes into the shared PrecedenceTable as a side effect, which
// is what makes user-defined operators parseable in the rest of the session.
type Parser struct {
	TokenizedCode TokenSupplier
	Errors        err.Errors
	Precedences   *PrecedenceTable
	curToken      token.Token
	nonUnary      dtypes.Set[string] // symbols that can't act as prefix operators
}

func New(supplier TokenSupplier, precedences *PrecedenceTable) *Parser {
	p := &Parser{
		TokenizedCode: supplier,
		Errors:        []*err.Error{},
		Precedences:   precedences,
		nonUnary:      dtypes.MakeFromSlice([]string{"(", ")"}),
	}
	p.NextToken()
	return p
}

func (p *Parser) NextToken() {
	p.curToken = p.TokenizedCode.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// curPrecedence looks the current symbol up in the operator table. Anything
// that isn't a symbol, or isn't in the table, gets -1.
func (p *Parser) curPrecedence() int {
	if !p.curTokenIs(token.SYMBOL) {
		return -1
	}
	return p.Precedences.Precedence(p.curToken.Literal)
}

// NextItem yields the next top-level item, or false when the input is
// exhausted or the current item could not be parsed. The two cases are told
// apart with ErrorsExist: the parser never recovers by itself, the driver
// decides whether to discard and resume or to abort.
func (p *Parser) NextItem() (ParsedItem, bool) {
	if p.curTokenIs(token.EOF) {
		return ParsedItem{}, false
	}
	var item ParsedItem
	switch p.curToken.Type {
	case token.DEF:
		item = ParsedItem{false, p.parseDefinition()}
	case token.EXTERN:
		item = ParsedItem{false, p.parseExtern()}
	case token.IF:
		tok := p.curToken
		item = ParsedItem{false, p.wrapAnonymous(tok, p.parseIfExpression())}
	case token.VAR:
		tok := p.curToken
		item = ParsedItem{false, p.wrapAnonymous(tok, p.parseVarExpression())}
	default:
		tok := p.curToken
		item = ParsedItem{true, p.wrapAnonymous(tok, p.parseExpression())}
	}
	if item.Item == nil {
		return ParsedItem{}, false
	}
	if settings.SHOW_PARSER {
		fmt.Println(item.Item.String())
	}
	return item, true
}

// A bare top-level expression is wrapped in a definition with an anonymous
// zero-parameter prototype, so the output stream is uniformly definitions.
func (p *Parser) wrapAnonymous(tok token.Token, body ast.Node) *ast.FunctionDefinition {
	if body == nil {
		return nil
	}
	proto := &ast.Prototype{Token: tok, Name: "", Params: []string{}}
	return &ast.FunctionDefinition{Token: tok, Prototype: proto, Body: body}
}

// expression := unary (BINOP unary)*
func (p *Parser) parseExpression() ast.Node {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	return p.parseBinopRight(left, 0)
}

// parseBinopRight is the precedence-climbing loop. It consumes operators
// left to right as long as they bind at least as tightly as minPrecedence,
// and hands the right operand to a recursive call only when the operator
// after it binds strictly tighter. Equal precedences therefore associate to
// the left.
func (p *Parser) parseBinopRight(left ast.Node, minPrecedence int) ast.Node {
	for {
		precedence := p.curPrecedence()
		if precedence < minPrecedence {
			return left
		}

		opToken := p.curToken
		p.NextToken()

		right := p.parseUnary()
		if right == nil {
			return nil
		}

		if precedence < p.curPrecedence() {
			right = p.parseBinopRight(right, precedence+1)
			if right == nil {
				return nil
			}
		}

		left = &ast.InfixExpression{Token: opToken, Operator: opToken.Literal, Left: left, Right: right}
	}
}

// unary := primary | SYMBOL unary
//
// Any symbol in prefix position is accepted here, mapped or not; whether it
// means anything is the collaborator's business. Parentheses are the one
// exception, since '(' starts a primary and ')' can't start anything.
func (p *Parser) parseUnary() ast.Node {
	if !p.curTokenIs(token.SYMBOL) || p.nonUnary.Contains(p.curToken.Literal) {
		return p.parsePrimary()
	}
	opToken := p.curToken
	p.NextToken()
	operand := p.parseUnary()
	if operand == nil {
		return nil
	}
	return &ast.PrefixExpression{Token: opToken, Operator: opToken.Literal, Right: operand}
}

// primary := number | identifier | call | if | for | var | '(' expression ')'
func (p *Parser) parsePrimary() ast.Node {
	switch {
	case p.curTokenIs(token.NUMBER):
		return p.parseNumberLiteral()
	case p.curTokenIs(token.IDENT):
		return p.parseIdentifierExpression()
	case p.curTokenIs(token.IF):
		return p.parseIfExpression()
	case p.curTokenIs(token.FOR):
		return p.parseForExpression()
	case p.curTokenIs(token.VAR):
		return p.parseVarExpression()
	case p.curToken.Is('('):
		return p.parseGroupedExpression()
	default:
		p.Throw("parse/prefix", p.curToken)
		return nil
	}
}

func (p *Parser) parseNumberLiteral() ast.Node {
	tok := p.curToken
	value, e := strconv.ParseFloat(tok.Literal, 64)
	if e != nil {
		// The lexer only emits digits with at most one dot, so this is
		// unreachable; belt and braces.
		p.Throw("parse/prefix", tok)
		return nil
	}
	p.NextToken()
	return &ast.NumberLiteral{Token: tok, Value: value}
}

// identifierexpr := identifier | identifier '(' (expression (',' expression)*)? ')'
func (p *Parser) parseIdentifierExpression() ast.Node {
	tok := p.curToken
	name := tok.Literal
	p.NextToken()

	if !p.curToken.Is('(') {
		return &ast.Identifier{Token: tok, Value: name}
	}
	p.NextToken()

	args := []ast.Node{}
	if !p.curToken.Is(')') {
		for {
			arg := p.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)

			if p.curToken.Is(')') {
				break
			}
			if !p.curToken.Is(',') {
				p.Throw("parse/call/comma", p.curToken)
				return nil
			}
			p.NextToken()
		}
	}
	p.NextToken()
	return &ast.CallExpression{Token: tok, Callee: name, Arguments: args}
}

func (p *Parser) parseGroupedExpression() ast.Node {
	lparen := p.curToken
	p.NextToken()
	expression := p.parseExpression()
	if expression == nil {
		return nil
	}
	if !p.curToken.Is(')') {
		p.Throw("parse/paren", p.curToken, &lparen)
		return nil
	}
	p.NextToken()
	return expression
}

// ifexpr := 'if' expression 'then' expression ('else' expression)?
func (p *Parser) parseIfExpression() ast.Node {
	tok := p.curToken
	p.NextToken()

	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	if !p.curTokenIs(token.THEN) {
		p.Throw("parse/if/then", p.curToken)
		return nil
	}
	p.NextToken()

	consequence := p.parseExpression()
	if consequence == nil {
		return nil
	}

	if !p.curTokenIs(token.ELSE) {
		return &ast.IfExpression{Token: tok, Condition: condition, Consequence: consequence}
	}
	p.NextToken()

	alternative := p.parseExpression()
	if alternative == nil {
		return nil
	}
	return &ast.IfExpression{Token: tok, Condition: condition, Consequence: consequence, Alternative: alternative}
}

// forexpr := 'for' identifier '=' expression ',' expression (',' expression)? 'in' expression
func (p *Parser) parseForExpression() ast.Node {
	tok := p.curToken
	p.NextToken()

	if !p.curTokenIs(token.IDENT) {
		p.Throw("parse/for/ident", p.curToken)
		return nil
	}
	variable := p.curToken.Literal
	p.NextToken()

	if !p.curToken.Is('=') {
		p.Throw("parse/for/assign", p.curToken)
		return nil
	}
	p.NextToken()

	start := p.parseExpression()
	if start == nil {
		return nil
	}

	if !p.curToken.Is(',') {
		p.Throw("parse/for/comma", p.curToken)
		return nil
	}
	p.NextToken()

	end := p.parseExpression()
	if end == nil {
		return nil
	}

	// The step value is optional.
	var step ast.Node
	if p.curToken.Is(',') {
		p.NextToken()
		step = p.parseExpression()
		if step == nil {
			return nil
		}
	}

	if !p.curTokenIs(token.IN) {
		p.Throw("parse/for/in", p.curToken)
		return nil
	}
	p.NextToken()

	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.ForExpression{Token: tok, Variable: variable, Start: start, End: end, Step: step, Body: body}
}

// varexpr := 'var' identifier ('=' expression)? (',' identifier ('=' expression)?)* 'in' expression
func (p *Parser) parseVarExpression() ast.Node {
	tok := p.curToken
	p.NextToken()

	if !p.curTokenIs(token.IDENT) {
		p.Throw("parse/var/ident/a", p.curToken)
		return nil
	}

	bindings := []ast.VarBinding{}
	for {
		name := p.curToken.Literal
		p.NextToken()

		// The initializer is optional; a name without one is bound to 0.
		var initializer ast.Node
		if p.curToken.Is('=') {
			p.NextToken()
			initializer = p.parseExpression()
			if initializer == nil {
				return nil
			}
		}
		bindings = append(bindings, ast.VarBinding{Name: name, Initializer: initializer})

		if !p.curToken.Is(',') {
			break
		}
		p.NextToken()

		if !p.curTokenIs(token.IDENT) {
			p.Throw("parse/var/ident/b", p.curToken)
			return nil
		}
	}

	if !p.curTokenIs(token.IN) {
		p.Throw("parse/var/in", p.curToken)
		return nil
	}
	p.NextToken()

	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.VarExpression{Token: tok, Bindings: bindings, Body: body}
}

// prototype := identifier '(' identifier* ')'
//            | 'unary' SYMBOL '(' identifier ')'
//            | 'binary' SYMBOL NUMBER? '(' identifier identifier ')'
//
// A binary prototype with a declared precedence writes it into the operator
// table here, before any body is parsed: this is what makes
//
//     def binary^ 50 (a b) ...
//
// usable in the very next expression of the same session.
func (p *Parser) parsePrototype() *ast.Prototype {
	protoToken := p.curToken
	var name string
	arity := 0
	precedence := 0

	switch p.curToken.Type {
	case token.IDENT:
		name = p.curToken.Literal
		p.NextToken()
	case token.UNARY:
		arity = 1
		p.NextToken()
		if !p.curTokenIs(token.SYMBOL) {
			p.Throw("parse/proto/op/unary", p.curToken)
			return nil
		}
		name = "unary" + p.curToken.Literal
		p.NextToken()
	case token.BINARY:
		arity = 2
		p.NextToken()
		if !p.curTokenIs(token.SYMBOL) {
			p.Throw("parse/proto/op/binary", p.curToken)
			return nil
		}
		name = "binary" + p.curToken.Literal
		p.NextToken()

		if p.curTokenIs(token.NUMBER) {
			value, _ := strconv.ParseFloat(p.curToken.Literal, 64)
			if value < MinPrecedence || value > MaxPrecedence {
				p.Throw("parse/prec", p.curToken, p.curToken.Literal)
				return nil
			}
			// The table holds integers, so a fractional precedence such
			// as 50.5 is accepted but truncated to 50.
			precedence = int(value)
			p.NextToken()
		}
	default:
		p.Throw("parse/proto/name", p.curToken)
		return nil
	}

	if !p.curToken.Is('(') {
		p.Throw("parse/proto/lparen", p.curToken)
		return nil
	}
	p.NextToken()

	params := []string{}
	for p.curTokenIs(token.IDENT) {
		params = append(params, p.curToken.Literal)
		p.NextToken()
	}

	if !p.curToken.Is(')') {
		p.Throw("parse/proto/rparen", p.curToken)
		return nil
	}
	p.NextToken()

	if arity == 1 && len(params) != 1 {
		p.Throw("parse/arity/unary", protoToken, len(params))
		return nil
	}
	if arity == 2 && len(params) != 2 {
		p.Throw("parse/arity/binary", protoToken, len(params))
		return nil
	}

	if arity == 2 && precedence > 0 {
		p.Precedences.Add(strings.TrimPrefix(name, "binary"), precedence)
	}

	return &ast.Prototype{Token: protoToken, Name: name, Params: params, IsOperator: arity != 0, Precedence: precedence}
}

// definition := 'def' prototype expression
func (p *Parser) parseDefinition() *ast.FunctionDefinition {
	tok := p.curToken
	p.NextToken()

	prototype := p.parsePrototype()
	if prototype == nil {
		return nil
	}
	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.FunctionDefinition{Token: tok, Prototype: prototype, Body: body}
}

// extern := 'extern' prototype
func (p *Parser) parseExtern() *ast.FunctionDefinition {
	tok := p.curToken
	p.NextToken()

	prototype := p.parsePrototype()
	if prototype == nil {
		return nil
	}
	return &ast.FunctionDefinition{Token: tok, Prototype: prototype}
}

func (p *Parser) Throw(errorID string, tok token.Token, args ...any) {
	p.Errors = err.Throw(errorID, p.Errors, &tok, args...)
}

func (p *Parser) ErrorsExist() bool {
	return len(p.Errors) > 0
}

func (p *Parser) ReturnErrors() string {
	return err.GetList(p.Errors)
}
