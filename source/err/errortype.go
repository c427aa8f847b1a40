package err

import (
	"github.com/guilload/kaleidoscope/source/token"
)

// The 'error' type.
type Error struct {
	ErrorId string
	Message string
	Args    []any
	Trace   []*token.Token
	Token   *token.Token
}

func (e *Error) AddToTrace(tok *token.Token) {
	e.Trace = append(e.Trace, tok)
}

// The broad categories of error. Drivers that want to react differently to,
// say, a missing token and a bad precedence can switch on the kind rather
// than matching identifiers.
type ErrorKind int

const (
	UNDEFINED_ERROR ErrorKind = iota
	UNEXPECTED_TOKEN
	MISSING_TOKEN
	INVALID_PRECEDENCE
	ARITY_MISMATCH
	UNTERMINATED_CONSTRUCT
	RUNTIME_ERROR
)

var errorKinds = map[string]ErrorKind{
	"parse/prefix":          UNEXPECTED_TOKEN,
	"parse/proto/name":      UNEXPECTED_TOKEN,
	"parse/paren":           MISSING_TOKEN,
	"parse/call/comma":      MISSING_TOKEN,
	"parse/proto/op/unary":  MISSING_TOKEN,
	"parse/proto/op/binary": MISSING_TOKEN,
	"parse/proto/lparen":    MISSING_TOKEN,
	"parse/proto/rparen":    MISSING_TOKEN,
	"parse/if/then":         MISSING_TOKEN,
	"parse/for/ident":       MISSING_TOKEN,
	"parse/for/assign":      MISSING_TOKEN,
	"parse/for/comma":       MISSING_TOKEN,
	"parse/for/in":          MISSING_TOKEN,
	"parse/var/ident/a":     MISSING_TOKEN,
	"parse/var/ident/b":     MISSING_TOKEN,
	"parse/var/in":          UNTERMINATED_CONSTRUCT,
	"parse/prec":            INVALID_PRECEDENCE,
	"parse/arity/unary":     ARITY_MISMATCH,
	"parse/arity/binary":    ARITY_MISMATCH,
	"eval/ident":            RUNTIME_ERROR,
	"eval/fn":               RUNTIME_ERROR,
	"eval/arity":            ARITY_MISMATCH,
	"eval/assign/lhs":       RUNTIME_ERROR,
	"eval/op/unary":         RUNTIME_ERROR,
	"eval/op/binary":        RUNTIME_ERROR,
	"eval/extern":           RUNTIME_ERROR,
	"eval/stack":            RUNTIME_ERROR,
}

func (e *Error) Kind() ErrorKind {
	if kind, ok := errorKinds[e.ErrorId]; ok {
		return kind
	}
	return UNDEFINED_ERROR
}
