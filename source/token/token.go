package token

type TokenType string

const (
	EOF = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // fib, foobar, x, y, ...
	NUMBER = "NUMBER" // 1343456, 1.23

	// Any single non-alphanumeric, non-whitespace character: operator
	// glyphs, brackets, commas, strays.
	SYMBOL = "SYMBOL"

	// Keywords
	DEF    = "def"
	EXTERN = "extern"
	IF     = "if"
	THEN   = "then"
	ELSE   = "else"
	FOR    = "for"
	IN     = "in"
	VAR    = "var"
	UNARY  = "unary"
	BINARY = "binary"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

var keywords = map[string]TokenType{
	"def":    DEF,
	"extern": EXTERN,

	"if":   IF,
	"then": THEN,
	"else": ELSE,

	"for": FOR,
	"in":  IN,
	"var": VAR,

	"unary":  UNARY,
	"binary": BINARY,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Is says whether the token is the SYMBOL token for the given character.
// The parser uses this everywhere in preference to inspecting the type.
func (t Token) Is(ch rune) bool {
	return t.Type == SYMBOL && t.Literal == string(ch)
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case IDENT:
		return "identifier '" + t.Literal + "'"
	case NUMBER:
		return "number '" + t.Literal + "'"
	case SYMBOL:
		return "symbol '" + t.Literal + "'"
	default:
		return "keyword '" + t.Literal + "'"
	}
}
