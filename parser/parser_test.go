/*
File    : plox/parser/parser_test.go
*/
package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diagnostics.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := diagnostics.New(&buf)
	toks := lexer.New(src, sink).ScanTokens()
	stmts := New(toks, sink).Parse()
	return stmts, sink
}

func TestParser_VarDeclarationWithInitializer(t *testing.T) {
	stmts, sink := parse(t, `var a = 1 + 2;`)
	assert.False(t, sink.HadError)
	assert.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.Var)
	assert.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)

	bin, ok := v.Initializer.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator.Type)
}

func TestParser_VarDeclarationWithoutInitializerIsNilInitializer(t *testing.T) {
	stmts, sink := parse(t, `var a;`)
	assert.False(t, sink.HadError)
	v := stmts[0].(*ast.Var)
	assert.Nil(t, v.Initializer)
}

func TestParser_TernaryAndPrecedence(t *testing.T) {
	stmts, sink := parse(t, `print 1 < 2 ? "yes" : "no";`)
	assert.False(t, sink.HadError)
	pr := stmts[0].(*ast.Print)
	tern, ok := pr.Expression.(*ast.Ternary)
	assert.True(t, ok)
	_, ok = tern.Condition.(*ast.Binary)
	assert.True(t, ok)
}

func TestParser_AssignmentTargetMustBeVariableOrGet(t *testing.T) {
	_, sink := parse(t, `1 + 2 = 3;`)
	assert.True(t, sink.HadError)
}

func TestParser_ClassWithSuperclass(t *testing.T) {
	stmts, sink := parse(t, `class Dog < Animal { speak() { print "woof"; } }`)
	assert.False(t, sink.HadError)

	cls := stmts[0].(*ast.Class)
	assert.Equal(t, "Dog", cls.Name.Lexeme)
	assert.NotNil(t, cls.Superclass)
	assert.Equal(t, "Animal", cls.Superclass.Name.Lexeme)
	assert.Len(t, cls.Methods, 1)
	assert.False(t, cls.Methods[0].IsGetter)
}

func TestParser_ClassWithoutSuperclass(t *testing.T) {
	stmts, sink := parse(t, `class Thing { }`)
	assert.False(t, sink.HadError)
	cls := stmts[0].(*ast.Class)
	assert.Nil(t, cls.Superclass)
}

func TestParser_GetterHasNoParamList(t *testing.T) {
	stmts, sink := parse(t, `class Circle { area { return 1; } }`)
	assert.False(t, sink.HadError)
	cls := stmts[0].(*ast.Class)
	assert.True(t, cls.Methods[0].IsGetter)
	assert.Nil(t, cls.Methods[0].Params)
}

func TestParser_SuperExpression(t *testing.T) {
	stmts, sink := parse(t, `class Dog < Animal { speak() { return super.speak(); } }`)
	assert.False(t, sink.HadError)
	cls := stmts[0].(*ast.Class)
	ret := cls.Methods[0].Body[0].(*ast.Return)
	call := ret.Value.(*ast.Call)
	sup, ok := call.Callee.(*ast.Super)
	assert.True(t, ok)
	assert.Equal(t, "speak", sup.Method.Lexeme)
}

func TestParser_ForDesugarsToWhileInBlock(t *testing.T) {
	stmts, sink := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.False(t, sink.HadError)

	outer := stmts[0].(*ast.Block)
	assert.Len(t, outer.Statements, 2)
	_, ok := outer.Statements[0].(*ast.Var)
	assert.True(t, ok)

	loop, ok := outer.Statements[1].(*ast.While)
	assert.True(t, ok)

	body := loop.Body.(*ast.Block)
	assert.Len(t, body.Statements, 2)
}

func TestParser_AnonymousFunctionExpression(t *testing.T) {
	stmts, sink := parse(t, `var f = fun (a, b) { return a + b; };`)
	assert.False(t, sink.HadError)
	v := stmts[0].(*ast.Var)
	fn, ok := v.Initializer.(*ast.FunctionExpr)
	assert.True(t, ok)
	assert.Len(t, fn.Params, 2)
}

func TestParser_CallChaining(t *testing.T) {
	stmts, sink := parse(t, `a.b(1)(2).c;`)
	assert.False(t, sink.HadError)
	expr := stmts[0].(*ast.Expression)
	get := expr.Expression.(*ast.Get)
	assert.Equal(t, "c", get.Name.Lexeme)
	_, ok := get.Object.(*ast.Call)
	assert.True(t, ok)
}

func TestParser_TooManyArgumentsReportsError(t *testing.T) {
	var args bytes.Buffer
	for i := 0; i < 256; i++ {
		if i > 0 {
			args.WriteString(", ")
		}
		args.WriteString("1")
	}
	_, sink := parse(t, `f(`+args.String()+`);`)
	assert.True(t, sink.HadError)
}

func TestParser_MissingSemicolonReportsAndSynchronizes(t *testing.T) {
	stmts, sink := parse(t, "var a = 1\nvar b = 2;")
	assert.True(t, sink.HadError)
	// Recovery should still produce the second, well-formed declaration.
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.Var); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_BreakStatement(t *testing.T) {
	stmts, sink := parse(t, `while (true) { break; }`)
	assert.False(t, sink.HadError)
	loop := stmts[0].(*ast.While)
	body := loop.Body.(*ast.Block)
	_, ok := body.Statements[0].(*ast.Break)
	assert.True(t, ok)
}
