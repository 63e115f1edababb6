/*
File    : plox/interpreter/interpreter_statements.go
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/environment"
)

func (i *Interpreter) execute(stmt ast.Stmt) (signal, error) {
	switch n := stmt.(type) {
	case *ast.Block:
		return i.executeBlock(n.Statements, environment.NewChild(i.env))

	case *ast.Break:
		return signal{kind: sigBreak}, nil

	case *ast.Class:
		return signal{}, i.executeClass(n)

	case *ast.Expression:
		_, err := i.evaluate(n.Expression)
		return signal{}, err

	case *ast.Function:
		fn := newFunction(n.Name.Lexeme, n.Params, n.Body, i.env, false, n.IsGetter)
		i.env.Define(n.Name.Lexeme, fn)
		return signal{}, nil

	case *ast.If:
		cond, err := i.evaluate(n.Condition)
		if err != nil {
			return signal{}, err
		}
		if isTruthy(cond) {
			return i.execute(n.ThenBranch)
		}
		if n.ElseBranch != nil {
			return i.execute(n.ElseBranch)
		}
		return signal{}, nil

	case *ast.Print:
		val, err := i.evaluate(n.Expression)
		if err != nil {
			return signal{}, err
		}
		fmt.Fprintln(i.out, stringify(val))
		return signal{}, nil

	case *ast.Return:
		var value interface{}
		if n.Value != nil {
			v, err := i.evaluate(n.Value)
			if err != nil {
				return signal{}, err
			}
			value = v
		}
		return signal{kind: sigReturn, value: value}, nil

	case *ast.Var:
		var value interface{}
		if n.Initializer != nil {
			v, err := i.evaluate(n.Initializer)
			if err != nil {
				return signal{}, err
			}
			value = v
		}
		i.env.Define(n.Name.Lexeme, value)
		return signal{}, nil

	case *ast.While:
		for {
			cond, err := i.evaluate(n.Condition)
			if err != nil {
				return signal{}, err
			}
			if !isTruthy(cond) {
				return signal{}, nil
			}
			sig, err := i.execute(n.Body)
			if err != nil {
				return signal{}, err
			}
			if sig.kind == sigBreak {
				return signal{}, nil
			}
			if sig.kind == sigReturn {
				return sig, nil
			}
		}
	}
	return signal{}, nil
}

// executeClass evaluates a class declaration, wiring up the
// superclass environment layer a `super` reference resolves against
// one hop further out than the `this` layer every method closes over.
func (i *Interpreter) executeClass(stmt *ast.Class) error {
	var superclass *Class
	if stmt.Superclass != nil {
		superVal, err := i.evaluate(stmt.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		superclass, ok = superVal.(*Class)
		if !ok {
			return runtimeErrorf(stmt.Superclass.Name, "Superclass must be a class.")
		}
	}

	i.env.Define(stmt.Name.Lexeme, nil)

	methodEnv := i.env
	if stmt.Superclass != nil {
		methodEnv = environment.NewChild(i.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, method := range stmt.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = newFunction(method.Name.Lexeme, method.Params, method.Body, methodEnv, isInitializer, method.IsGetter)
	}

	class := &Class{Name: stmt.Name.Lexeme, Superclass: superclass, Methods: methods}
	return i.env.Assign(stmt.Name, class)
}
