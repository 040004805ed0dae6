package lox

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune

	errors []error
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.advance()
	return l
}

// advance moves the cursor one rune forward, tracking line and column.
func (l *lexer) advance() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peek() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

// operatorTokens maps a leading operator rune to its token type;
// operatorsWithEquals maps the same rune to the type produced when an `=`
// follows (== != <= >=).
var operatorTokens = map[rune]TokenType{
	'+': tokenPlus, '-': tokenMinus, '*': tokenAsterisk, '/': tokenSlash,
	'(': tokenLParen, ')': tokenRParen, '{': tokenLBrace, '}': tokenRBrace,
	',': tokenComma, '.': tokenDot, ';': tokenSemicolon,
	'?': tokenQuestion, ':': tokenColon,
	'!': tokenBang, '=': tokenAssign, '<': tokenLT, '>': tokenGT,
}

var operatorsWithEquals = map[rune]TokenType{
	'!': tokenNotEQ, '=': tokenEQ, '<': tokenLTE, '>': tokenGTE,
}

func (l *lexer) NextToken() Token {
	l.skipTrivia()

	pos := Position{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0:
		return Token{Type: tokenEOF, Pos: pos}

	case l.ch == '"':
		literal, terminated := l.readString()
		if !terminated {
			l.recordError(pos, "unterminated string")
			return Token{Type: tokenIllegal, Literal: literal, Pos: pos}
		}
		return Token{Type: tokenString, Literal: literal, Pos: pos}

	case isIdentifierStart(l.ch):
		literal := l.readIdentifier()
		return Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}

	case unicode.IsDigit(l.ch):
		literal, ok := l.readNumber()
		if !ok {
			l.recordError(pos, "malformed number literal")
			return Token{Type: tokenIllegal, Literal: literal, Pos: pos}
		}
		return Token{Type: tokenNumber, Literal: literal, Pos: pos}
	}

	ch := l.ch
	if tt, ok := operatorsWithEquals[ch]; ok && l.peek() == '=' {
		l.advance()
		l.advance()
		return Token{Type: tt, Literal: string(ch) + "=", Pos: pos}
	}
	if tt, ok := operatorTokens[ch]; ok {
		l.advance()
		return Token{Type: tt, Literal: string(ch), Pos: pos}
	}

	l.recordError(pos, "unexpected character %q", ch)
	l.advance()
	return Token{Type: tokenIllegal, Literal: string(ch), Pos: pos}
}

// Errors reports every lexical fault seen so far, in source order.
func (l *lexer) Errors() []error {
	return l.errors
}

func (l *lexer) recordError(pos Position, format string, args ...any) {
	l.errors = append(l.errors, newLexError(pos, l.input, format, args...))
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

// skipTrivia consumes whitespace and // line comments.
func (l *lexer) skipTrivia() {
	for {
		if l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.advance()
			continue
		}
		if l.ch == '/' && l.peek() == '/' {
			for l.ch != 0 && l.ch != '\n' {
				l.advance()
			}
			continue
		}
		return
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.peek()) {
		l.advance()
	}
	literal := l.input[start:l.offset]
	l.advance()
	return literal
}

// readNumber consumes a number literal. A decimal point must be followed by
// at least one digit; `1.` is a malformed literal, not a number plus a dot.
func (l *lexer) readNumber() (string, bool) {
	var sb strings.Builder
	sb.WriteRune(l.ch)

	for unicode.IsDigit(l.peek()) {
		l.advance()
		sb.WriteRune(l.ch)
	}

	if l.peek() == '.' {
		l.advance()
		sb.WriteByte('.')
		if !unicode.IsDigit(l.peek()) {
			l.advance()
			return sb.String(), false
		}
		for unicode.IsDigit(l.peek()) {
			l.advance()
			sb.WriteRune(l.ch)
		}
	}

	l.advance()
	return sb.String(), true
}

// readString consumes a double-quoted string literal and reports whether the
// closing quote was found before end of input. Escapes \" \\ \n \t are
// decoded; any other escaped character passes through verbatim.
func (l *lexer) readString() (string, bool) {
	var sb strings.Builder

	for {
		l.advance()
		switch l.ch {
		case 0:
			return sb.String(), false
		case '"':
			l.advance()
			return sb.String(), true
		case '\\':
			next := l.peek()
			l.advance()
			switch next {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteRune(next)
			}
		default:
			sb.WriteRune(l.ch)
		}
	}
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
