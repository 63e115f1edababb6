/*
File    : plox/interpreter/interpreter.go

Package interpreter tree-walks the resolved AST, evaluating expressions
and executing statements directly against a chain of environments.
Dispatch is a single type switch over the ast package's tagged node
types, and non-local control flow — break and return — propagates as
an explicit signal value returned alongside any error, never as a
panic.
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/lexer"
)

// signalKind tags what, if anything, a statement's execution is
// unwinding for.
type signalKind int

const (
	sigNone signalKind = iota
	sigBreak
	sigReturn
)

// signal is what execute returns in place of raising an exception for
// break/return: sigNone means keep going, sigBreak means unwind to the
// nearest enclosing loop, sigReturn carries a value out to the nearest
// enclosing function call.
type signal struct {
	kind  signalKind
	value interface{}
}

// RuntimeError is a failure raised while evaluating the tree: a type
// mismatch, an undefined property, a division by zero. The driver
// reports it through the diagnostics sink at Token and sets the
// process's runtime-error exit status.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Interpreter holds the runtime state for one program run: the global
// environment, the environment currently in scope, and where `print`
// writes.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	sink    *diagnostics.Sink
	out     io.Writer
}

// New creates an Interpreter with the global environment pre-seeded
// with the `clock()` native function, the only builtin this
// implementation carries.
func New(sink *diagnostics.Sink, out io.Writer) *Interpreter {
	globals := environment.New()
	globals.Define("clock", clockBuiltin{})
	return &Interpreter{Globals: globals, env: globals, sink: sink, out: out}
}

// Interpret executes a full program (or one REPL chunk), stopping at
// the first RuntimeError and reporting it through the sink. It does
// not panic: every failure path below this function returns an error
// value that propagates up through ordinary Go returns.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if _, err := i.execute(stmt); err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				i.sink.RuntimeError(rerr.Token, rerr.Message)
			} else {
				i.sink.RuntimeError(lexer.Token{}, err.Error())
			}
			return
		}
	}
}

// EvaluateExpression evaluates a single expression in the interpreter's
// current global scope, used by the REPL's bare-expression fallback to
// print the value of a line typed with no trailing semicolon.
func (i *Interpreter) EvaluateExpression(expr ast.Expr) (interface{}, error) {
	val, err := i.evaluate(expr)
	if err != nil {
		if rerr, ok := err.(*RuntimeError); ok {
			return nil, fmt.Errorf("[line %d] RuntimeError: %s", rerr.Token.Line, rerr.Message)
		}
		return nil, err
	}
	return val, nil
}

func (i *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) (signal, error) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		sig, err := i.execute(stmt)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return signal{}, nil
}

func runtimeErrorf(tok lexer.Token, format string, args ...interface{}) error {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
