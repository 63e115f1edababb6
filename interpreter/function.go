/*
File    : plox/interpreter/function.go

Function is the runtime representation of every `fun` declaration,
method, getter, and anonymous function literal — one type covers all
four, distinguished only by the isInitializer/isGetter flags carried
alongside the declaration.
*/
package interpreter

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/lexer"
)

// Function is a closure: the declaring node plus the environment that
// was active where it was declared.
type Function struct {
	name          string
	params        []lexer.Token
	body          []ast.Stmt
	closure       *environment.Environment
	isInitializer bool
	isGetter      bool
}

func newFunction(name string, params []lexer.Token, body []ast.Stmt, closure *environment.Environment, isInitializer, isGetter bool) *Function {
	return &Function{name: name, params: params, body: body, closure: closure, isInitializer: isInitializer, isGetter: isGetter}
}

// bind returns a copy of the function whose closure has `this` bound
// to instance, one environment layer in front of the function's
// original closure — what turns a class's stored method into a value
// callable on a particular instance.
func (f *Function) bind(instance *Instance) *Function {
	env := environment.NewChild(f.closure)
	env.Define("this", instance)
	return newFunction(f.name, f.params, f.body, env, f.isInitializer, f.isGetter)
}

// Arity is the declared parameter count; getters are invoked without
// call syntax and are never arity-checked through Callable.
func (f *Function) Arity() int {
	return len(f.params)
}

// Call runs the function body in a fresh environment parented on the
// closure, binding each argument to its parameter name. A bare
// `return;` or falling off the end of the body yields nil, except in
// an initializer, which always yields the bound `this` regardless of
// what the body returned.
func (f *Function) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	callEnv := environment.NewChild(f.closure)
	for idx, param := range f.params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	sig, err := i.executeBlock(f.body, callEnv)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if sig.kind == sigReturn {
		return sig.value, nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.name + ">"
}
