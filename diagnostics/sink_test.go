/*
File    : plox/diagnostics/sink_test.go
*/
package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/plox/lexer"
)

func TestSink_ErrorSetsHadErrorAndCounts(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)
	sink.Error(lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "x", Line: 3}, "boom")

	assert.True(t, sink.HadError)
	assert.Equal(t, 1, sink.ErrorCount)
	assert.Contains(t, buf.String(), "[line 3]")
	assert.Contains(t, buf.String(), "boom")
}

func TestSink_WarningDoesNotSetHadError(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)
	sink.Warning(lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "x", Line: 1}, "careful")

	assert.False(t, sink.HadError)
	assert.Equal(t, 1, sink.WarningCount)
}

func TestSink_ErrorAtEndToken(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)
	sink.Error(lexer.Token{Type: lexer.EOF, Line: 1}, "unexpected eof")
	assert.Contains(t, buf.String(), "at end")
}

func TestSink_RuntimeErrorSetsHadRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)
	sink.RuntimeError(lexer.Token{Line: 5}, "bad")
	assert.True(t, sink.HadRuntimeError)
	assert.Contains(t, buf.String(), "RuntimeError")
}

func TestSink_ResetClearsState(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)
	sink.Error(lexer.Token{Line: 1}, "boom")
	sink.Reset()
	assert.False(t, sink.HadError)
	assert.Equal(t, 0, sink.ErrorCount)
}
