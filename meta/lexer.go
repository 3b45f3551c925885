// Package meta implements the lexer and parser for the S-expression-like
// meta-grammar language used to describe a grammar: <axiom <S>> <S <...>
// <...>> ..., with '-introduced line comments and the convention that a
// term beginning with an uppercase letter names a non-terminal.
package meta

import (
	"strings"
	"unicode"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// Position is a line/column/byte-offset location in a meta-grammar
// source string.
type Position struct {
	Line   int
	Column int
	Index  int
}

// Span is a half-open [Begin, End) source range.
type Span struct {
	Begin Position
	End   Position
}

// Attribute is the payload carried by each lexed Token: its source span
// plus, for "nterm" and "term" tokens, the name captured.
type Attribute struct {
	Span        Span
	NonTerminal string
	Terminal    string
}

// Token is a meta-grammar lexical token.
type Token = table.Token[Attribute]

type lexer struct {
	input []rune
	cur   Position
}

// Lex tokenizes src into the open/close/ax/nterm/term vocabulary,
// terminated by a grammar.EndOfInput token.
func Lex(src string) []Token {
	l := &lexer{input: []rune(src), cur: Position{Line: 1, Column: 1}}
	var out []Token
	for {
		tok := l.next()
		out = append(out, tok)
		if tok.Tag.End {
			return out
		}
	}
}

func (l *lexer) peek() (rune, bool) {
	if l.cur.Index >= len(l.input) {
		return 0, false
	}
	return l.input[l.cur.Index], true
}

func (l *lexer) advance() {
	if ch, ok := l.peek(); ok {
		if ch == '\n' {
			l.cur.Line++
			l.cur.Column = 1
		} else {
			l.cur.Column++
		}
	}
	l.cur.Index++
}

func (l *lexer) skipSpaces() {
	for {
		ch, ok := l.peek()
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		l.advance()
	}
}

func (l *lexer) readWhile(pred func(rune) bool) string {
	var sb strings.Builder
	for {
		ch, ok := l.peek()
		if !ok || !pred(ch) {
			break
		}
		sb.WriteRune(ch)
		l.advance()
	}
	return sb.String()
}

func isWordRune(ch rune) bool {
	return !unicode.IsSpace(ch) && ch != '<' && ch != '>'
}

func (l *lexer) next() Token {
	l.skipSpaces()
	begin := l.cur

	ch, ok := l.peek()
	if !ok {
		return Token{Tag: grammar.EndOfInput, Attribute: Attribute{Span: Span{Begin: begin, End: l.cur}}}
	}

	switch {
	case unicode.IsUpper(ch):
		name := l.readWhile(isWordRune)
		return Token{
			Tag:       grammar.La("nterm"),
			Attribute: Attribute{Span: Span{Begin: begin, End: l.cur}, NonTerminal: name},
		}
	case ch == '<':
		l.advance()
		return Token{Tag: grammar.La("open"), Attribute: Attribute{Span: Span{Begin: begin, End: l.cur}}}
	case ch == '>':
		l.advance()
		return Token{Tag: grammar.La("close"), Attribute: Attribute{Span: Span{Begin: begin, End: l.cur}}}
	case ch == '\'':
		l.readWhile(func(c rune) bool { return c != '\n' })
		l.advance()
		return l.next()
	default:
		word := l.readWhile(isWordRune)
		if word == "axiom" {
			return Token{Tag: grammar.La("ax"), Attribute: Attribute{Span: Span{Begin: begin, End: l.cur}}}
		}
		return Token{
			Tag:       grammar.La("term"),
			Attribute: Attribute{Span: Span{Begin: begin, End: l.cur}, Terminal: word},
		}
	}
}
