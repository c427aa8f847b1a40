package err

import (
	"fmt"
	"strconv"

	"github.com/guilload/kaleidoscope/source/text"
	"github.com/guilload/kaleidoscope/source/token"
)

// A map from error identifiers to functions that supply the corresponding error
// messages and explanations.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// The major categories are eval and parse: the lexer by construction cannot
// fail, since anything it doesn't recognize is handed to the parser as a
// one-character symbol for the grammar to reject or not.
//
// Two otherwise identical errors thrown in different places in the Go code must
// be assigned different identifiers, if only by suffixing /a, /b, etc to the
// identifier.

type ErrorCreator struct {
	Message     func(tok *token.Token, args ...any) string
	Explanation func(errors Errors, pos int, tok *token.Token, args ...any) string
}

type Errors []*Error

var ErrorCreatorMap = map[string]ErrorCreator{

	"eval/arity": {
		Message: func(tok *token.Token, args ...any) string {
			return "function " + emph(args[0]) + " takes " + count(args[1].(int), "argument") +
				", not " + strconv.Itoa(args[2].(int))
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A function must be called with exactly as many arguments as its prototype declares parameters."
		},
	},

	"eval/assign/lhs": {
		Message: func(tok *token.Token, args ...any) string {
			return "left-hand side of " + emph("=") + " is not a variable"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The " + emph("=") + " operator stores its right-hand side in a variable, " +
				"so the thing on its left has to be a variable name and not some other expression."
		},
	},

	"eval/extern": {
		Message: func(tok *token.Token, args ...any) string {
			return "extern " + emph(args[0]) + " has no implementation"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An " + emph("extern") + " declaration promises that the host supplies the function. " +
				"This one doesn't correspond to anything the interpreter knows how to do."
		},
	},

	"eval/fn": {
		Message: func(tok *token.Token, args ...any) string {
			return "unknown function " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A function has to be defined with " + emph("def") + " or declared with " +
				emph("extern") + " before you can call it."
		},
	},

	"eval/ident": {
		Message: func(tok *token.Token, args ...any) string {
			return "unknown variable " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Variables come into being as function parameters or through the " + emph("var") +
				" and " + emph("for") + " binding forms, and are visible only inside the body of " +
				"the form that introduced them."
		},
	},

	"eval/op/binary": {
		Message: func(tok *token.Token, args ...any) string {
			return "binary operator " + emph(args[0]) + " has no definition"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An operator that isn't built in can only be used after a " +
				emph("def binary") + " definition gives it a meaning."
		},
	},

	"eval/op/unary": {
		Message: func(tok *token.Token, args ...any) string {
			return "unary operator " + emph(args[0]) + " has no definition"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An operator that isn't built in can only be used after a " +
				emph("def unary") + " definition gives it a meaning."
		},
	},

	"eval/stack": {
		Message: func(tok *token.Token, args ...any) string {
			return "call stack overflow in " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The evaluator gave up after ten thousand nested calls, which almost always " +
				"means a recursive function without a base case, or one that never reaches it."
		},
	},

	"parse/arity/binary": {
		Message: func(tok *token.Token, args ...any) string {
			return "a binary operator takes exactly 2 parameters, not " + strconv.Itoa(args[0].(int))
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A " + emph("binary") + " prototype overloads an infix operator, which has a " +
				"left and a right operand and therefore exactly two parameters."
		},
	},

	"parse/arity/unary": {
		Message: func(tok *token.Token, args ...any) string {
			return "a unary operator takes exactly 1 parameter, not " + strconv.Itoa(args[0].(int))
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A " + emph("unary") + " prototype overloads a prefix operator, which has one " +
				"operand and therefore exactly one parameter."
		},
	},

	"parse/call/comma": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(")") + " or " + emph(",") + " in argument list"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The arguments of a function call are separated by commas and closed by a parenthesis, " +
				"and the parser can't make sense of anything else between them."
		},
	},

	"parse/for/assign": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph("=") + " after " + emph("for") + " variable"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The loop variable of a " + emph("for") + " expression must be given a starting " +
				"value, e.g. " + emph("for i = 1, i < 10 in ...") + "."
		},
	},

	"parse/for/comma": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(",") + " after " + emph("for") + " start value"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The header of a " + emph("for") + " expression is a comma-separated list: the " +
				"start value, the end condition, and optionally a step."
		},
	},

	"parse/for/ident": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected identifier after " + emph("for")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A " + emph("for") + " expression begins by naming its loop variable."
		},
	},

	"parse/for/in": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph("in") + " after " + emph("for") + " header"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "After the loop variable, start, end, and optional step, the body of a " +
				emph("for") + " expression is introduced by the keyword " + emph("in") + "."
		},
	},

	"parse/if/then": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph("then")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The condition of an " + emph("if") + " expression is followed by the keyword " +
				emph("then") + " and then by the expression to evaluate when the condition holds."
		},
	},

	"parse/paren": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(")") + " to match " + emph("(") + " at line " +
				strconv.Itoa(args[0].(*token.Token).Line)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A parenthesized expression has to be closed before the input runs out or " +
				"something unparseable turns up."
		},
	},

	"parse/prec": {
		Message: func(tok *token.Token, args ...any) string {
			return "invalid precedence " + emph(args[0]) + ": must be in range [1, 100]"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The precedence declared for a user-defined binary operator says how tightly it " +
				"binds relative to the other operators, and must lie between 1 and 100 inclusive."
		},
	},

	"parse/prefix": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected " + tok.String() + " when expecting an expression"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An expression can begin with a number, an identifier, a parenthesis, a prefix " +
				"operator, or one of the keywords " + emph("if") + ", " + emph("for") + ", and " +
				emph("var") + ". Whatever the parser found here, it wasn't one of those."
		},
	},

	"parse/proto/lparen": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph("(") + " in prototype"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The name of a function is followed by its parameter list in parentheses, even " +
				"when the list is empty."
		},
	},

	"parse/proto/name": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected function name, " + emph("unary") + " or " + emph("binary") + " in prototype"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "After " + emph("def") + " or " + emph("extern") + " the parser expects the " +
				"prototype of a function: either its name, or one of the operator-overloading forms."
		},
	},

	"parse/proto/op/binary": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected an operator after " + emph("binary")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The " + emph("binary") + " keyword in a prototype is followed by the symbol " +
				"being overloaded, e.g. " + emph("def binary^ 50 (a b)") + "."
		},
	},

	"parse/proto/op/unary": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected an operator after " + emph("unary")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The " + emph("unary") + " keyword in a prototype is followed by the symbol " +
				"being overloaded, e.g. " + emph("def unary!(v)") + "."
		},
	},

	"parse/proto/rparen": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(")") + " in prototype"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The parameter list of a prototype is a plain sequence of identifiers closed by " +
				"a parenthesis: anything else in it is an error."
		},
	},

	"parse/var/ident/a": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected identifier after " + emph("var")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A " + emph("var") + " expression must bind at least one name."
		},
	},

	"parse/var/ident/b": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected identifier after " + emph(",") + " in a " + emph("var") + " expression"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A comma in the binding list of a " + emph("var") + " expression announces " +
				"another name to bind."
		},
	},

	"parse/var/in": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph("in") + " after " + emph("var") + " bindings"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The names bound by a " + emph("var") + " expression are visible only in a body, " +
				"which is introduced by the keyword " + emph("in") + ". A " + emph("var") +
				" without an " + emph("in") + " is an unterminated construct."
		},
	},
}

func Throw(errorID string, errs Errors, tok *token.Token, args ...any) Errors {
	errs = append(errs, CreateErr(errorID, tok, args...))
	return errs
}

func CreateErr(errorID string, tok *token.Token, args ...any) *Error {
	errorCreator, ok := ErrorCreatorMap[errorID]
	if !ok {
		return &Error{ErrorId: errorID, Message: "unknown error identifier " + emph(errorID), Token: tok}
	}
	return &Error{ErrorId: errorID, Message: errorCreator.Message(tok, args...), Args: args, Token: tok}
}

// GetList produces the errors as a report for the driver to show the user.
func GetList(errs Errors) string {
	result := "\n"
	for i, e := range errs {
		result = result + text.BULLET + describe(e, i) + "\n"
	}
	return result + "\n"
}

func describe(e *Error, i int) string {
	location := ""
	if e.Token != nil && e.Token.Line > 0 {
		location = " at line " + strconv.Itoa(e.Token.Line)
	}
	return fmt.Sprintf("[%d] %s%s.", i, e.Message, location)
}

func emph(s any) string {
	return "'" + fmt.Sprint(s) + "'"
}

func count(n int, thing string) string {
	if n == 1 {
		return "1 " + thing
	}
	return strconv.Itoa(n) + " " + thing + "s"
}
