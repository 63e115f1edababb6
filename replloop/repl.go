/*
File    : plox/replloop/repl.go

Package replloop implements the Read-Eval-Print Loop for plox. Each
line runs through the full lexer/parser/resolver/interpreter pipeline
as its own statement list; if that line fails to parse as statements
or fails at runtime, and it parses as a single bare expression (e.g.
typing `1 + 2` with no trailing semicolon), the REPL falls back to
parsing and evaluating it as an expression and printing its value.
*/
package replloop

import (
	"bytes"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/interpreter"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive plox session. It owns a single Interpreter
// instance across lines so top-level vars, functions, and classes
// declared on one line stay visible on the next.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	interp *interpreter.Interpreter
}

// New creates a Repl with the given banner and prompt furniture.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to plox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until the user exits or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	diagSink := diagnostics.New(writer)
	r.interp = interpreter.New(diagSink, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, diagSink, line)
	}
}

// evalLine runs one line of input through the full pipeline. A line
// that fails to parse as statements is still resolved, to surface more
// diagnostics, and is then retried as a bare expression; a line that
// fails at runtime is retried the same way (the prompt-only fallback
// the file driver never needs).
func (r *Repl) evalLine(writer io.Writer, sink *diagnostics.Sink, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RuntimeError] %v\n", recovered)
		}
	}()

	sink.Reset()
	toks := lexer.New(line, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()

	if sink.HadError {
		resolver.New(sink).Resolve(stmts)
		r.tryBareExpression(writer, sink, line)
		return
	}

	resolver.New(sink).Resolve(stmts)
	if sink.HadError {
		sink.Summarize()
		return
	}
	sink.Summarize()

	r.interp.Interpret(stmts)
	if sink.HadRuntimeError {
		r.tryBareExpression(writer, sink, line)
	}
}

// tryBareExpression re-parses line as a single expression and prints
// its value, so `1 + 2` works at the prompt without a trailing `;`.
// Errors from this fallback are reported as ordinary REPL errors, not
// retried again.
func (r *Repl) tryBareExpression(writer io.Writer, sink *diagnostics.Sink, line string) {
	var exprDiag bytes.Buffer
	exprSink := diagnostics.New(&exprDiag)

	toks := lexer.New(line, exprSink).ScanTokens()
	expr := parser.New(toks, exprSink).ParseExpression()

	if expr == nil || exprSink.HadError {
		sink.Summarize()
		return
	}

	val, err := r.interp.EvaluateExpression(expr)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", interpreter.Stringify(val))
}
