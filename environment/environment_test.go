/*
File    : plox/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/plox/lexer"
)

func tok(lexeme string) lexer.Token {
	return lexer.Token{Type: lexer.IDENTIFIER, Lexeme: lexeme, Line: 1}
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", int64(1))
	v, err := env.Get(tok("a"))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestEnvironment_GetUndefinedReturnsError(t *testing.T) {
	env := New()
	_, err := env.Get(tok("missing"))
	assert.Error(t, err)
}

func TestEnvironment_GetWalksEnclosing(t *testing.T) {
	global := New()
	global.Define("a", "outer")
	child := NewChild(global)
	v, err := child.Get(tok("a"))
	assert.NoError(t, err)
	assert.Equal(t, "outer", v)
}

func TestEnvironment_AssignUpdatesOriginalScope(t *testing.T) {
	global := New()
	global.Define("a", int64(1))
	child := NewChild(global)

	err := child.Assign(tok("a"), int64(2))
	assert.NoError(t, err)

	v, _ := global.Get(tok("a"))
	assert.Equal(t, int64(2), v)
}

func TestEnvironment_AssignUndefinedReturnsError(t *testing.T) {
	env := New()
	err := env.Assign(tok("missing"), int64(1))
	assert.Error(t, err)
}

func TestEnvironment_ShadowingDefinesInCurrentScope(t *testing.T) {
	global := New()
	global.Define("a", "outer")
	child := NewChild(global)
	child.Define("a", "inner")

	v, _ := child.Get(tok("a"))
	assert.Equal(t, "inner", v)
	outerV, _ := global.Get(tok("a"))
	assert.Equal(t, "outer", outerV)
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	global := New()
	global.Define("a", int64(1))
	child1 := NewChild(global)
	child2 := NewChild(child1)

	assert.Equal(t, int64(1), child2.GetAt(2, "a"))

	child2.AssignAt(2, tok("a"), int64(99))
	v, _ := global.Get(tok("a"))
	assert.Equal(t, int64(99), v)
}

func TestEnvironment_AncestorZeroIsSelf(t *testing.T) {
	env := New()
	assert.Same(t, env, env.Ancestor(0))
}
