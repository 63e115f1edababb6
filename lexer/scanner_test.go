/*
File    : plox/lexer/scanner_test.go
*/
package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/plox/diagnostics"
)

func scan(t *testing.T, src string) ([]Token, *diagnostics.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := diagnostics.New(&buf)
	toks := New(src, sink).ScanTokens()
	return toks, sink
}

func TestScanner_SingleCharTokens(t *testing.T) {
	toks, sink := scan(t, "(){},.-+;*?:")
	assert.False(t, sink.HadError)

	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, QUESTION, COLON, EOF,
	}
	assert.Equal(t, len(expected), len(toks))
	for i, want := range expected {
		assert.Equal(t, want, toks[i].Type)
	}
}

func TestScanner_TwoCharOperators(t *testing.T) {
	toks, _ := scan(t, "!= == <= >= ! = < >")
	expected := []TokenType{BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL, BANG, EQUAL, LESS, GREATER, EOF}
	assert.Equal(t, len(expected), len(toks))
	for i, want := range expected {
		assert.Equal(t, want, toks[i].Type)
	}
}

func TestScanner_NumberIntVsFloat(t *testing.T) {
	toks, _ := scan(t, "42 3.14")
	assert.Equal(t, NUMBER, toks[0].Type)
	assert.Equal(t, int64(42), toks[0].Literal)
	assert.Equal(t, NUMBER, toks[1].Type)
	assert.Equal(t, 3.14, toks[1].Literal)
}

func TestScanner_StringEitherQuote(t *testing.T) {
	toks, sink := scan(t, `"hello" 'world'`)
	assert.False(t, sink.HadError)
	assert.Equal(t, "hello", toks[0].Literal)
	assert.Equal(t, "world", toks[1].Literal)
}

func TestScanner_UnterminatedStringReportsAndContinues(t *testing.T) {
	toks, sink := scan(t, `"unterminated`)
	assert.True(t, sink.HadError)
	assert.Equal(t, EOF, toks[0].Type)
}

func TestScanner_KeywordsAndIdentifiers(t *testing.T) {
	toks, _ := scan(t, "class super this myVar")
	assert.Equal(t, CLASS, toks[0].Type)
	assert.Equal(t, SUPER, toks[1].Type)
	assert.Equal(t, THIS, toks[2].Type)
	assert.Equal(t, IDENTIFIER, toks[3].Type)
}

func TestScanner_CommentsAndLineCounting(t *testing.T) {
	toks, _ := scan(t, "var a = 1; // comment\n# also comment\nvar b = 2;")
	var lines []int
	for _, tok := range toks {
		if tok.Type != EOF {
			lines = append(lines, tok.Line)
		}
	}
	assert.Equal(t, 1, lines[0])
	assert.Equal(t, 3, lines[len(lines)-1])
}

func TestScanner_UnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, sink := scan(t, "var a = 1 @ var b = 2;")
	assert.True(t, sink.HadError)
	// Scanning must continue past the bad character: 'b' should still
	// be tokenized later in the stream.
	found := false
	for _, tok := range toks {
		if tok.Type == IDENTIFIER && tok.Lexeme == "b" {
			found = true
		}
	}
	assert.True(t, found)
}
