package parser_test

import (
	"testing"

	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/session"
	"github.com/guilload/kaleidoscope/source/test_helper"
)

func TestParser(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `2 + 2`, Want: `(2 + 2)`},
		{Input: `2 + 3 * 4`, Want: `(2 + (3 * 4))`},
		{Input: `2 * 3 + 4`, Want: `((2 * 3) + 4)`},
		{Input: `a + b + c`, Want: `((a + b) + c)`},
		{Input: `a - b - c`, Want: `((a - b) - c)`},
		{Input: `a * b / c`, Want: `((a * b) / c)`},
		{Input: `a < b + c`, Want: `(a < (b + c))`},
		// Symbols are single characters, so '<=' is '<' followed by a
		// prefix '='.
		{Input: `a <= b`, Want: `(a < (= b))`},
		{Input: `x = y + 1`, Want: `(x = (y + 1))`},
		{Input: `-5 + 3`, Want: `((- 5) + 3)`},
		{Input: `-a * b`, Want: `((- a) * b)`},
		{Input: `!!x`, Want: `(! (! x))`},
		{Input: `fib(40)`, Want: `fib(40)`},
		{Input: `g(a, b + 1)`, Want: `g(a, (b + 1))`},
		{Input: `f()`, Want: `f()`},
		{Input: `(1 + 2) * 3`, Want: `((1 + 2) * 3)`},
		{Input: `if x < 3 then 1 else 2`, Want: `(if (x < 3) then 1 else 2)`},
		{Input: `if x then 1`, Want: `(if x then 1)`},
		{Input: `for i = 1, n in putchard(i)`, Want: `(for i = 1, n in putchard(i))`},
		{Input: `for i = 1, n, 2 in i`, Want: `(for i = 1, n, 2 in i)`},
		{Input: `var a = 1, b in a + b`, Want: `(var a = 1, b in (a + b))`},
		{Input: `var a = 1 in var b = 2 in a + b`, Want: `(var a = 1 in (var b = 2 in (a + b)))`},
		{Input: `var x = 1 in var x = x in x`, Want: `(var x = 1 in (var x = x in x))`},
	}
	test_helper.RunTest(t, tests, testParserOutput)
}

func TestDefinitionSyntax(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `def fib(x) x`, Want: `def fib(x) x`},
		{Input: `def f() 42`, Want: `def f() 42`},
		{Input: `extern sin(x)`, Want: `extern sin(x)`},
		{Input: `extern pow(base exponent)`, Want: `extern pow(base exponent)`},
		{Input: `def unary!(v) if v then 0 else 1`, Want: `def unary!(v) (if v then 0 else 1)`},
		{Input: `def binary^ 50 (a b) a * b`, Want: `def binary^(a b) (a * b)`},
	}
	test_helper.RunTest(t, tests, testParserOutput)
}

// A 'def binary' changes how the rest of the input parses, so each test here
// is a definition followed by an expression that exercises the new operator.
func TestOperatorRegistration(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `def binary^ 50 (a b) a * b
		  1 ^ 2 ^ 3`, Want: `((1 ^ 2) ^ 3)`},
		{Input: `def binary^ 50 (a b) a * b
		  1 + 2 ^ 3`, Want: `(1 + (2 ^ 3))`},
		{Input: `def binary& 6 (a b) a
		  1 + 2 & 3`, Want: `((1 + 2) & 3)`},
		{Input: `def binary@ 1 (a b) a
		  1 @ 2`, Want: `(1 @ 2)`},
		{Input: `def binary@ 100 (a b) a
		  1 @ 2`, Want: `(1 @ 2)`},
		{Input: `def unary!(v) 1 - v
		  !x`, Want: `(! x)`},
		// A fractional precedence is truncated, so '^' lands at 50 here
		// and still binds tighter than '+'.
		{Input: `def binary^ 50.5 (a b) a
		  1 + 2 ^ 3`, Want: `(1 + (2 ^ 3))`},
	}
	test_helper.RunTest(t, tests, testParserOutput)
}

func TestParserErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `2 +`, Want: `parse/prefix`},
		{Input: `)`, Want: `parse/prefix`},
		{Input: `(1 + 2`, Want: `parse/paren`},
		{Input: `f(1 2)`, Want: `parse/call/comma`},
		{Input: `if 1 1`, Want: `parse/if/then`},
		{Input: `for 1`, Want: `parse/for/ident`},
		{Input: `for i 1`, Want: `parse/for/assign`},
		{Input: `for i = 1 in i`, Want: `parse/for/comma`},
		{Input: `for i = 1, 10 i`, Want: `parse/for/in`},
		{Input: `var 1 in x`, Want: `parse/var/ident/a`},
		{Input: `var x, 1 in x`, Want: `parse/var/ident/b`},
		{Input: `var x = 1`, Want: `parse/var/in`},
		{Input: `def 1(x) x`, Want: `parse/proto/name`},
		{Input: `def f x`, Want: `parse/proto/lparen`},
		{Input: `def f(x x`, Want: `parse/proto/rparen`},
		{Input: `extern sin`, Want: `parse/proto/lparen`},
		{Input: `def unary x (v) v`, Want: `parse/proto/op/unary`},
		{Input: `def binary 5 (a b) a`, Want: `parse/proto/op/binary`},
		{Input: `def unary!(a b) a`, Want: `parse/arity/unary`},
		{Input: `def binary^ 50 (a) a`, Want: `parse/arity/binary`},
		{Input: `def binary^ 0 (a b) a`, Want: `parse/prec`},
		{Input: `def binary^ 101 (a b) a`, Want: `parse/prec`},
	}
	test_helper.RunTest(t, tests, testParserErrors)
}

func testParserOutput(s *session.Session, input string) (string, *err.Error) {
	items, e := s.Parse("test", input)
	if e != nil {
		return "", e
	}
	if len(items) == 0 {
		return "", nil
	}
	return items[len(items)-1], nil
}

func testParserErrors(s *session.Session, input string) (string, *err.Error) {
	_, e := s.Parse("test", input)
	if e == nil {
		return "unexpected successful parsing", nil
	}
	return e.ErrorId, nil
}
