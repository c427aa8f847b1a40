package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/session"
	"github.com/guilload/kaleidoscope/source/test_helper"
)

func TestArithmetic(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `1 + 2 * 3`, Want: `7`},
		{Input: `10 / 4`, Want: `2.5`},
		{Input: `(1 + 2) * 3`, Want: `9`},
		{Input: `1 < 2`, Want: `1`},
		{Input: `2 < 1`, Want: `0`},
		{Input: `(if 1 then 2 else 3)`, Want: `2`},
		{Input: `(if 0 then 2 else 3)`, Want: `3`},
		{Input: `(if 0 then 2)`, Want: `0`},
	}
	test_helper.RunTest(t, tests, testValue)
}

func TestFunctions(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `def f() 42
		  f()`, Want: `42`},
		{Input: `def double(x) x * 2
		  double(double(10))`, Want: `40`},
		{Input: `def fib(x) if x < 3 then 1 else fib(x - 1) + fib(x - 2)
		  fib(10)`, Want: `55`},
	}
	test_helper.RunTest(t, tests, testValue)
}

func TestUserOperators(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `def unary-(v) 0 - v
		  (-5) + 3`, Want: `-2`},
		{Input: `def unary!(v) if v then 0 else 1
		  !0`, Want: `1`},
		{Input: `def binary^ 50 (a b) a * b
		  2 ^ 3`, Want: `6`},
		{Input: `def binary^ 50 (a b) a * b
		  2 + 2 ^ 3`, Want: `8`},
	}
	test_helper.RunTest(t, tests, testValue)
}

func TestBindingForms(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(var x = 1 in x + 1)`, Want: `2`},
		{Input: `(var x in x)`, Want: `0`},
		{Input: `(var x = 1, y = x in x + y)`, Want: `2`},
		{Input: `(var x = 1 in var x = 2 in x)`, Want: `2`},
		{Input: `(var x = 1 in var x = x + 1 in x)`, Want: `2`},
		{Input: `(var x = 1 in (var y = 2 in x + y) + x)`, Want: `4`},
		{Input: `(var s = 0 in (for i = 1, i < 10 in s = s + i) + s)`, Want: `45`},
		{Input: `(var s = 0 in (for i = 0, i < 10, 2 in s = s + i) + s)`, Want: `20`},
		{Input: `(var x = 1 in (x = 7) + x)`, Want: `14`},
	}
	test_helper.RunTest(t, tests, testValue)
}

func TestExterns(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `extern sin(x)
		  sin(0)`, Want: `0`},
		{Input: `extern cos(x)
		  cos(0)`, Want: `1`},
		{Input: `extern pow(base exponent)
		  pow(2, 10)`, Want: `1024`},
	}
	test_helper.RunTest(t, tests, testValue)
}

func TestEvaluatorErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `x`, Want: `eval/ident`},
		{Input: `g(1)`, Want: `eval/fn`},
		{Input: `def f(x) x
		  f(1, 2)`, Want: `eval/arity`},
		{Input: `!1`, Want: `eval/op/unary`},
		{Input: `1 = 2`, Want: `eval/assign/lhs`},
		{Input: `(var x = 1 in y = 2)`, Want: `eval/ident`},
		{Input: `extern foo(x)
		  foo(1)`, Want: `eval/extern`},
		{Input: `def loop(x) loop(x + 1)
		  loop(0)`, Want: `eval/stack`},
	}
	test_helper.RunTest(t, tests, testErrors)
}

// Newlines are plain whitespace, so a definition's body runs on for as long
// as the binop loop can absorb what follows: 'def unary-(v) 0 - v' followed
// by '-5 + 3' on the next line is one definition whose body is
// '((0 - v) - 5) + 3'. A second call to Do is the item boundary.
func TestDefinitionBodyRunsOn(t *testing.T) {
	s := session.New()
	results, e := s.Do("test", `def unary-(v) 0 - v
	                            -5 + 3`)
	require.Nil(t, e)
	require.Empty(t, results)

	other := session.New()
	_, e = other.Do("line 1", `def unary-(v) 0 - v`)
	require.Nil(t, e)

	results, e = other.Do("line 2", `-5 + 3`)
	require.Nil(t, e)
	require.Equal(t, []string{"-2"}, results)
}

func TestHostOutput(t *testing.T) {
	s := session.New()
	out := &bytes.Buffer{}
	s.Context.Output = out

	_, e := s.Do("test", `extern putchard(c)
	                      extern printd(x)
	                      putchard(88)
	                      printd(1.5)`)
	require.Nil(t, e)
	require.Equal(t, "X1.5\n", out.String())
}

// Functions see their parameters and the globals; the caller's locals are
// out of reach.
func TestCalleeScope(t *testing.T) {
	s := session.New()
	_, e := s.Do("line 1", `def g() y`)
	require.Nil(t, e)

	_, e = s.Do("line 2", `(var y = 5 in g())`)
	require.NotNil(t, e)
	require.Equal(t, "eval/ident", e.ErrorId)
}

func testValue(s *session.Session, input string) (string, *err.Error) {
	results, e := s.Do("test", input)
	if e != nil {
		return "", e
	}
	if len(results) == 0 {
		return "", nil
	}
	return results[len(results)-1], nil
}

func testErrors(s *session.Session, input string) (string, *err.Error) {
	_, e := s.Do("test", input)
	if e == nil {
		return "unexpected successful evaluation", nil
	}
	return e.ErrorId, nil
}
