package lexer

import (
	"testing"

	"github.com/guilload/kaleidoscope/source/token"
)

func TestDefinitions(t *testing.T) {
	input :=
		`# Compute the x'th fibonacci number.
def fib(x)
  if x < 3 then
    1
  else
    fib(x - 1) + fib(x - 2)

fib(40)
`
	items := []testItem{
		{token.DEF, "def", 2}, //0
		{token.IDENT, "fib", 2},
		{token.SYMBOL, "(", 2},
		{token.IDENT, "x", 2},
		{token.SYMBOL, ")", 2},
		{token.IF, "if", 3},
		{token.IDENT, "x", 3},
		{token.SYMBOL, "<", 3},
		{token.NUMBER, "3", 3},
		{token.THEN, "then", 3},
		{token.NUMBER, "1", 4}, //10
		{token.ELSE, "else", 5},
		{token.IDENT, "fib", 6},
		{token.SYMBOL, "(", 6},
		{token.IDENT, "x", 6},
		{token.SYMBOL, "-", 6},
		{token.NUMBER, "1", 6},
		{token.SYMBOL, ")", 6},
		{token.SYMBOL, "+", 6},
		{token.IDENT, "fib", 6},
		{token.SYMBOL, "(", 6}, //20
		{token.IDENT, "x", 6},
		{token.SYMBOL, "-", 6},
		{token.NUMBER, "2", 6},
		{token.SYMBOL, ")", 6},
		{token.IDENT, "fib", 8},
		{token.SYMBOL, "(", 8},
		{token.NUMBER, "40", 8},
		{token.SYMBOL, ")", 8},
		{token.EOF, "EOF", 9},
	}
	runTest(t, NewLexer("dummy source", input), items)
}

func TestKeywordsAndOperators(t *testing.T) {
	input := `extern sin(x)
def unary!(v) if v then 0 else 1
def binary| 5 (a b) a
for i = 1, 10, 2 in i
var a = 1, b in a`
	items := []testItem{
		{token.EXTERN, "extern", 1}, //0
		{token.IDENT, "sin", 1},
		{token.SYMBOL, "(", 1},
		{token.IDENT, "x", 1},
		{token.SYMBOL, ")", 1},
		{token.DEF, "def", 2},
		{token.UNARY, "unary", 2},
		{token.SYMBOL, "!", 2},
		{token.SYMBOL, "(", 2},
		{token.IDENT, "v", 2},
		{token.SYMBOL, ")", 2}, //10
		{token.IF, "if", 2},
		{token.IDENT, "v", 2},
		{token.THEN, "then", 2},
		{token.NUMBER, "0", 2},
		{token.ELSE, "else", 2},
		{token.NUMBER, "1", 2},
		{token.DEF, "def", 3},
		{token.BINARY, "binary", 3},
		{token.SYMBOL, "|", 3},
		{token.NUMBER, "5", 3}, //20
		{token.SYMBOL, "(", 3},
		{token.IDENT, "a", 3},
		{token.IDENT, "b", 3},
		{token.SYMBOL, ")", 3},
		{token.IDENT, "a", 3},
		{token.FOR, "for", 4},
		{token.IDENT, "i", 4},
		{token.SYMBOL, "=", 4},
		{token.NUMBER, "1", 4},
		{token.SYMBOL, ",", 4}, //30
		{token.NUMBER, "10", 4},
		{token.SYMBOL, ",", 4},
		{token.NUMBER, "2", 4},
		{token.IN, "in", 4},
		{token.IDENT, "i", 4},
		{token.VAR, "var", 5},
		{token.IDENT, "a", 5},
		{token.SYMBOL, "=", 5},
		{token.NUMBER, "1", 5},
		{token.SYMBOL, ",", 5}, //40
		{token.IDENT, "b", 5},
		{token.IN, "in", 5},
		{token.IDENT, "a", 5},
		{token.EOF, "EOF", 5},
	}
	runTest(t, NewLexer("dummy source", input), items)
}

func TestNumbers(t *testing.T) {
	input := `12.34 1.2.3 .5 5. 007`
	items := []testItem{
		{token.NUMBER, "12.34", 1},
		{token.NUMBER, "1.2", 1},
		{token.SYMBOL, ".", 1},
		{token.NUMBER, "3", 1},
		{token.SYMBOL, ".", 1},
		{token.NUMBER, "5", 1},
		{token.NUMBER, "5.", 1},
		{token.NUMBER, "007", 1},
		{token.EOF, "EOF", 1},
	}
	runTest(t, NewLexer("dummy source", input), items)
}

func TestComments(t *testing.T) {
	input := `# only a comment
1 # trailing comment
# another
2`
	items := []testItem{
		{token.NUMBER, "1", 2},
		{token.NUMBER, "2", 4},
		{token.EOF, "EOF", 4},
	}
	runTest(t, NewLexer("dummy source", input), items)
}

// Lexing the literal of any non-EOF token must give back a token of the
// same type and literal.
func TestLiteralRoundTrip(t *testing.T) {
	input := `def fib(x) if x < 3 then 1 else fib(x - 1) + fib(x - 2)
	          def binary^ 50 (a b) a * b
	          var y = 1.5 in y ^ 2`
	l := NewLexer("dummy source", input)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		again := NewLexer("dummy source", tok.Literal).NextToken()
		if again.Type != tok.Type || again.Literal != tok.Literal {
			t.Fatalf("round trip of %s gave %s", tok.String(), again.String())
		}
	}
}

func TestEOFRepeats(t *testing.T) {
	l := NewLexer("dummy source", "42")
	if tok := l.NextToken(); tok.Type != token.NUMBER {
		t.Fatalf("expected a number, got %s", tok.String())
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.EOF {
			t.Fatalf("pull %d - expected EOF, got %s", i, tok.String())
		}
	}
}

type testItem struct {
	expectedType    token.TokenType
	expectedLiteral string
	expectedLine    int
}

func runTest(t *testing.T, l *Lexer, items []testItem) {
	for i, tt := range items {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q with literal %q, got=%q with literal %q",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d",
				i, tt.expectedLine, tok.Line)
		}
	}
}
