/*
File    : plox/diagnostics/sink.go

Package diagnostics implements the single error/warning sink shared by
the scanner, parser, resolver, and interpreter. Every stage reports
through the same Sink so the driver can apply one exit-code policy
after the pipeline runs.
*/
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/plox/lexer"
)

var (
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

// Sink collects diagnostics produced while processing one source unit
// (one file, or one REPL line). HadError/HadRuntimeError gate whether
// later pipeline stages run; ErrorCount/WarningCount are reported to
// the user once a stage finishes.
type Sink struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
	ErrorCount      int
	WarningCount    int
}

// New creates a Sink that writes to w.
func New(w io.Writer) *Sink {
	return &Sink{Out: w}
}

// Reset clears error/warning state so a Sink can be reused across REPL
// lines without carrying over a previous line's failure.
func (s *Sink) Reset() {
	s.HadError = false
	s.HadRuntimeError = false
	s.ErrorCount = 0
	s.WarningCount = 0
}

// Error reports a scanner/parser/resolver error at the given token and
// sets HadError, which suppresses later pipeline stages in file mode.
func (s *Sink) Error(tok lexer.Token, message string) {
	s.report(tok.Line, whereFor(tok), message, false)
}

// Warning reports a non-fatal diagnostic (unused local, unreachable
// code, uninitialized var). Warnings never set HadError.
func (s *Sink) Warning(tok lexer.Token, message string) {
	s.report(tok.Line, whereFor(tok), message, true)
}

// ErrorAt reports a scanner-level error that has no token yet (an
// unterminated string, an unexpected character).
func (s *Sink) ErrorAt(line int, message string) {
	s.report(line, "", message, false)
}

// RuntimeError reports a failure raised while evaluating the AST and
// sets HadRuntimeError. The interpreter stops evaluating after this.
func (s *Sink) RuntimeError(tok lexer.Token, message string) {
	errorColor.Fprintf(s.Out, "[line %d] RuntimeError: %s\n", tok.Line, message)
	s.HadRuntimeError = true
}

func whereFor(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

func (s *Sink) report(line int, where, message string, warning bool) {
	level := "Error"
	c := errorColor
	if warning {
		level = "Warning"
		c = warningColor
	}
	c.Fprintf(s.Out, "[line %d] %s%s: %s\n", line, level, where, message)
	if warning {
		s.WarningCount++
	} else {
		s.HadError = true
		s.ErrorCount++
	}
}

// Summarize prints the "N error(s) and M warning(s) occurred" line the
// original plox driver prints after the parser and again after the
// resolver, matching _examples/original_source/plox/lox.py's run().
func (s *Sink) Summarize() {
	if s.ErrorCount > 0 || s.WarningCount > 0 {
		fmt.Fprintf(s.Out, "%d error(s) and %d warning(s) occurred\n", s.ErrorCount, s.WarningCount)
	}
}
