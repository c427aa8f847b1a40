package session

import (
	"strconv"

	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/evaluator"
	"github.com/guilload/kaleidoscope/source/lexer"
	"github.com/guilload/kaleidoscope/source/parser"
)

// A Session owns the mutable state that outlives a single line of input: the
// operator precedence table, the function and extern tables, and the global
// variable frame. Operators registered by a 'def binary' on one line parse
// correctly on every later line because each call to Do hands the parser the
// same table.
type Session struct {
	Precedences *parser.PrecedenceTable
	Context     *evaluator.Context
}

func New() *Session {
	return &Session{
		Precedences: parser.NewPrecedenceTable(),
		Context:     evaluator.NewContext(),
	}
}

// Do lexes, parses, and evaluates input, returning the formatted value of
// each top-level expression. Items are evaluated as they are parsed, so a
// definition takes effect before the items after it. On the first error the
// results gathered so far are returned alongside it.
func (s *Session) Do(source, input string) ([]string, *err.Error) {
	p := parser.New(lexer.NewLexer(source, input), s.Precedences)
	results := []string{}
	for {
		item, ok := p.NextItem()
		if !ok {
			if p.ErrorsExist() {
				return results, p.Errors[0]
			}
			return results, nil
		}
		// A standalone if or var form parses but is not auto-evaluated;
		// definitions and externs are registered, bare expressions computed.
		if item.Item.IsAnonymous() && !item.IsExpression {
			continue
		}
		value, e := evaluator.Eval(item.Item, s.Context, s.Context.Globals)
		if e != nil {
			return results, e
		}
		if item.IsExpression {
			results = append(results, strconv.FormatFloat(value, 'g', -1, 64))
		}
	}
}

// Parse runs the front end only, returning the string form of each parsed
// item. Definitions still register their operators in the session table.
func (s *Session) Parse(source, input string) ([]string, *err.Error) {
	p := parser.New(lexer.NewLexer(source, input), s.Precedences)
	items := []string{}
	for {
		item, ok := p.NextItem()
		if !ok {
			if p.ErrorsExist() {
				return items, p.Errors[0]
			}
			return items, nil
		}
		items = append(items, item.Item.String())
	}
}
