/*
File    : plox/cmd/plox/main.go

Package main is the entry point for plox. It provides two modes of
operation:
 1. Prompt mode (default): interactive Read-Eval-Print Loop
 2. File mode: execute a plox source file given on the command line

A single-threaded, no-concurrency language has no use for a networked
REPL server, so this driver supports only the two modes above.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/interpreter"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/replloop"
	"github.com/akashmaji946/plox/resolver"
)

// VERSION is the current version of the plox interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in prompt mode.
var PROMPT = "plox >>> "

// BANNER is the ASCII art logo displayed when starting the prompt.
var BANNER = `
 ██████╗ ██╗      ██████╗ ██╗  ██╗
 ██╔══██╗██║     ██╔═══██╗╚██╗██╔╝
 ██████╔╝██║     ██║   ██║ ╚███╔╝
 ██╔═══╝ ██║     ██║   ██║ ██╔██╗
 ██║     ███████╗╚██████╔╝██╔╝ ██╗
 ╚═╝     ╚══════╝ ╚═════╝ ╚═╝  ╚═╝
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor = color.New(color.FgRed)
)

// exit codes.
const (
	exitOK      = 0
	exitUsage   = 64
	exitErrors  = 65
	exitRuntime = 70
)

// main dispatches to prompt mode or file mode based on argv.
func main() {
	switch len(os.Args) {
	case 1:
		repler := replloop.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		redColor.Fprintln(os.Stderr, "Usage: plox [script]")
		os.Exit(exitUsage)
	}
}

// runFile reads and executes one plox source file, returning the
// process exit code for the outcome: 64 if the file cannot be read,
// 65 for any scanner/parser/resolver error, 70 for a runtime error,
// 0 otherwise.
func runFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitUsage
	}
	return runSource(string(data), os.Stdout)
}

// runSource drives the lexer/parser/resolver/interpreter pipeline over
// one program and writes its output to out, split out from runFile so
// the golden-output tests can capture output without touching os.Stdout.
func runSource(source string, out io.Writer) int {
	sink := diagnostics.New(out)

	toks := lexer.New(source, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	sink.Summarize()
	if sink.HadError {
		return exitErrors
	}

	resolver.New(sink).Resolve(stmts)
	sink.Summarize()
	if sink.HadError {
		return exitErrors
	}

	interp := interpreter.New(sink, out)
	interp.Interpret(stmts)
	if sink.HadRuntimeError {
		return exitRuntime
	}
	return exitOK
}
