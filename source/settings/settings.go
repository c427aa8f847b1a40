// All this does is contain in one place the constants controlling which bits of
// the inner workings of the lexer/parser/evaluator are displayed for debugging
// purposes. In a release they must all be set to false.

package settings

const (
	SHOW_LEXER     = false // Prints each token as the lexer emits it.
	SHOW_PARSER    = false // Prints each top-level item as the parser yields it.
	SHOW_EVALUATOR = false // Prints the value of each node as the evaluator walks it.
	SHOW_TESTS     = false // Prints the input of each test as it runs.
)
