/*
File    : plox/environment/environment.go

Package environment implements the runtime variable store the
interpreter evaluates against: a chain of scopes from the block or
call currently executing out to the global scope, mirroring the
resolver's static scope chain one level at a time.
*/
package environment

import (
	"fmt"

	"github.com/akashmaji946/plox/lexer"
)

// Environment holds one lexical scope's variable bindings and a link
// to the scope that encloses it.
//
// Environment implements the runtime half of lexical scoping: each
// block, function call, and the top-level program gets its own
// Environment, and lookups walk outward through Enclosing until a
// binding is found or the chain is exhausted. This is what makes
// closures work — a function value captures the Environment active
// where it was declared, so later calls still see variables from that
// scope even after the block that created them has returned.
//
// Resolved lookups skip the walk entirely: the resolver has already
// computed how many Enclosing links separate a variable reference from
// its declaration, so GetAt/AssignAt jump straight there via Ancestor
// instead of searching.
type Environment struct {
	values    map[string]interface{}
	Enclosing *Environment
}

// New creates a top-level Environment with no enclosing scope — the
// global environment of one program run.
func New() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewChild creates an Environment nested inside enclosing, the scope
// entered for a block, a function call, or a loop body.
func NewChild(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Enclosing: enclosing}
}

// Define binds name to value in this environment. Re-declaring a name
// already bound here is allowed and simply replaces the binding —
// rejecting a local redeclared in the same scope is the resolver's
// job, not the environment's.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name starting in this environment and walking outward
// through Enclosing. It returns an error carrying the same message the
// original tree-walker raises for an undefined variable, which the
// interpreter reports through the diagnostics sink at the offending
// token.
func (e *Environment) Get(name lexer.Token) (interface{}, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding for name, searching outward the
// same way Get does, and fails the same way if no binding exists
// anywhere in the chain. Assign never creates a new binding — that is
// Define's job, reached only through a `var` declaration.
func (e *Environment) Assign(name lexer.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// Ancestor walks distance links up the Enclosing chain. A distance of
// 0 is this environment itself.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance scopes out,
// skipping the walk Get would otherwise do. distance comes from the
// resolver's static analysis (ast.Variable.Depth / ast.Assign.Depth /
// ast.This.Depth / ast.Super.Depth).
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.Ancestor(distance).values[name]
}

// AssignAt writes value directly into the environment distance scopes
// out, the resolved counterpart of Assign.
func (e *Environment) AssignAt(distance int, name lexer.Token, value interface{}) {
	e.Ancestor(distance).values[name.Lexeme] = value
}
