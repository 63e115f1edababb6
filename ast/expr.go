/*
File    : plox/ast/expr.go

Package ast defines the tagged tree node families the parser builds
and the resolver/interpreter walk. There is no Visitor interface: the
resolver and interpreter dispatch on these concrete types with a
single type switch, and the resolver writes a variable's lexical depth
straight onto the node that needs it instead of keeping a side table
keyed by node identity.
*/
package ast

import "github.com/akashmaji946/plox/lexer"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
}

// Assign is `name = value`.
type Assign struct {
	Name  lexer.Token
	Value Expr
	Depth *int // nil until resolved; nil after resolution means global
}

// Binary is a two-operand arithmetic, comparison, or equality
// expression: `left operator right`.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Call is `callee(arguments...)`. Paren is the closing ')' token, used
// to anchor arity/call-target diagnostics at the call site.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

// Get is a property read `object.name`, resolved at runtime against
// an instance's fields and its class's methods.
type Get struct {
	Object Expr
	Name   lexer.Token
}

// Grouping is a parenthesized expression `(expression)`.
type Grouping struct {
	Expression Expr
}

// FunctionExpr is an anonymous function literal used in expression
// position, e.g. `var f = fun (a, b) { return a + b; };`. It carries a
// synthetic Name (never user-visible as an identifier) purely so
// stack traces and the `<fn NAME>` stringification have something to
// print.
type FunctionExpr struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// Literal is a constant value produced directly by the scanner: a
// number, string, boolean, or nil.
type Literal struct {
	Value interface{}
}

// Logical is `left and right` or `left or right`. Evaluated with
// short-circuiting, so it cannot share Binary's evaluation path.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Set is a property write `object.name = value`.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// Super is `super.method`, used inside a subclass method to reach the
// superclass's implementation while keeping `this` bound to the
// original receiver.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
	Depth   *int
}

// Ternary is `condition ? then : else`.
type Ternary struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword lexer.Token
	Depth   *int
}

// Unary is a single-operand prefix expression: `-right` or `!right`.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Variable is a bare identifier used as an expression.
type Variable struct {
	Name  lexer.Token
	Depth *int
}

func (*Assign) exprNode()       {}
func (*Binary) exprNode()       {}
func (*Call) exprNode()         {}
func (*FunctionExpr) exprNode() {}
func (*Get) exprNode()          {}
func (*Grouping) exprNode()     {}
func (*Literal) exprNode()      {}
func (*Logical) exprNode()      {}
func (*Set) exprNode()          {}
func (*Super) exprNode()        {}
func (*Ternary) exprNode()      {}
func (*This) exprNode()         {}
func (*Unary) exprNode()        {}
func (*Variable) exprNode()     {}
