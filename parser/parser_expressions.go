/*
File    : plox/parser/parser_expressions.go

One function per precedence level, lowest to highest:
assignment -> ternary -> or -> and -> equality -> comparison ->
addition -> multiplication -> unary -> call -> primary.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative and only legal when its left side
// is itself an expression that denotes a storage location (a bare
// name or a property get) — anything else is a syntax error raised
// after the fact, which is how Lox reports `a + b = c` instead of
// baking assignability into the grammar itself.
func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) ternary() ast.Expr {
	expr := p.or()

	if p.match(lexer.QUESTION) {
		then := p.expression()
		p.consume(lexer.COLON, "Expect ':' in ternary expression.")
		els := p.expression()
		return &ast.Ternary{Condition: expr, Then: then, Else: els}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.addition()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.addition()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) addition() ast.Expr {
	expr := p.multiplication()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.multiplication()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) multiplication() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any number of `(args)`
// calls or `.name` property reads chained onto it, e.g. `a.b(1)(2).c`.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	case p.match(lexer.FUN):
		return p.anonymousFunction()
	}

	panic(p.errorAt(p.peek(), "Expect expression."))
}

// anonymousFunction parses `fun (params?) { body }` used as an
// expression, producing an ast.FunctionExpr with a synthetic name so
// the interpreter's `<fn NAME>` stringification has something to
// print even though no identifier was ever declared for it.
func (p *Parser) anonymousFunction() ast.Expr {
	keyword := p.previous()
	name := lexer.Token{
		Type:   lexer.IDENTIFIER,
		Lexeme: "anonymous_function_at_line_" + strconv.Itoa(keyword.Line),
		Line:   keyword.Line,
	}
	params, body := p.paramsAndBody("function")
	return &ast.FunctionExpr{Name: name, Params: params, Body: body}
}
