package lexer

import (
	"fmt"
	"unicode"

	"github.com/guilload/kaleidoscope/source/settings"
	"github.com/guilload/kaleidoscope/source/token"
)

// The lexer is deliberately unable to fail: anything it doesn't recognize
// becomes a one-character SYMBOL token for the parser's grammar to judge.
// Which branch to take is decided by the start character alone, so one rune
// of lookahead is all it ever needs.
type Lexer struct {
	runes  *RuneSupplier
	tstart int // the character position at the start of a token
	lineNo int
	source string
}

func NewLexer(source, input string) *Lexer {
	return &Lexer{
		runes:  NewRuneSupplier([]rune(input)),
		source: source,
		lineNo: 1,
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	l.lineNo, l.tstart = l.runes.Position()
	ch := l.runes.CurrentRune()
	switch {
	case ch == 0:
		// The sentinel is repeatable: once the input is exhausted every
		// subsequent pull gets EOF again.
		return l.MakeToken(token.EOF, "EOF")
	case isAlpha(ch):
		lit := l.readIdentifier()
		return l.MakeToken(token.LookupIdent(lit), lit)
	case isDigit(ch):
		return l.MakeToken(token.NUMBER, l.readNumber())
	default:
		return l.NewToken(token.SYMBOL, string(ch))
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		ch := l.runes.CurrentRune()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.runes.Next()
			continue
		}
		if ch == '#' { // A comment runs to the end of the line and produces no token.
			for l.runes.CurrentRune() != '\n' && l.runes.CurrentRune() != 0 {
				l.runes.Next()
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() string {
	result := string(l.runes.CurrentRune())
	for isAlnum(l.runes.PeekRune()) {
		l.runes.Next()
		result = result + string(l.runes.CurrentRune())
	}
	l.runes.Next()
	return result
}

// readNumber consumes digits and at most one '.'. A second '.' ends the
// token and is left in the stream, so text like `1.2.3` comes out as a
// number, a stray symbol, and another number. This mirrors the permissive
// lexing the language has always had; the parser is where validity gets
// judged, if anywhere.
func (l *Lexer) readNumber() string {
	result := string(l.runes.CurrentRune())
	dot := l.runes.CurrentRune() == '.'
	for {
		pk := l.runes.PeekRune()
		if !isDigit(pk) && (pk != '.' || dot) {
			break
		}
		if pk == '.' {
			dot = true
		}
		l.runes.Next()
		result = result + string(l.runes.CurrentRune())
	}
	l.runes.Next()
	return result
}

func isAlpha(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isAlnum(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}

// NewToken consumes the current rune and makes a token; MakeToken makes one
// when the reading functions have already consumed everything they should.
func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *Lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		fmt.Println(tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
}
