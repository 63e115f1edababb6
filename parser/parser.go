/*
File    : plox/parser/parser.go

Package parser implements a recursive-descent parser for Lox. It
converts a token stream from the lexer into the ast.Stmt/ast.Expr tree
the resolver and interpreter walk.

Error recovery is panic-mode: a malformed construct raises a local
parseError, caught only at the declaration boundary, which then
discards tokens until a likely statement boundary and resumes parsing
the next declaration. This keeps every parsing function's signature
a plain `Expr`/`Stmt` return instead of threading `(node, error)`
through the whole grammar — the panic never crosses the Parse() call,
so it does not conflict with the interpreter's control-flow discipline
of never using panics for break/return.
*/
package parser

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/lexer"
)

// maxArgs is the limit on function parameters and call arguments.
const maxArgs = 255

// Parser holds the token stream and reporting sink for one parse.
type Parser struct {
	tokens  []lexer.Token
	current int
	sink    *diagnostics.Sink
}

// parseError unwinds the current declaration to the panic-mode
// recovery point. It carries no data: the diagnostic was already
// reported to the sink at the point of failure.
type parseError struct{}

// New creates a Parser over tokens, reporting syntax errors to sink.
func New(tokens []lexer.Token, sink *diagnostics.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse runs the parser to completion, returning every top-level
// declaration it could recover. The result is still meaningful even
// after a reported error — the driver decides whether to resolve/
// execute it based on sink.HadError.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ParseExpression parses a single expression, used by the REPL's
// bare-expression fallback. Returns nil if the line does not parse as
// one expression.
func (p *Parser) ParseExpression() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				expr = nil
				return
			}
			panic(r)
		}
	}()
	return p.expression()
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(lexer.CLASS) {
		return p.classDeclaration()
	}
	if p.match(lexer.FUN) {
		return p.function("function")
	}
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// synchronize discards tokens until a consumed semicolon or a token
// that begins a new declaration/statement, resuming the panic-mode
// parser at a likely boundary.
func (p *Parser) synchronize() {
	if !p.startsStatement() {
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		if p.startsStatement() {
			return
		}
		p.advance()
	}
}

// startsStatement reports whether the next token begins a declaration
// or statement that declaration() consumes on entry.
func (p *Parser) startsStatement() bool {
	switch p.peek().Type {
	case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF,
		lexer.WHILE, lexer.PRINT, lexer.RETURN, lexer.BREAK:
		return true
	}
	return false
}

// --- token cursor helpers ---

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	p.sink.Error(tok, message)
	return parseError{}
}
