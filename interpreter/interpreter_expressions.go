/*
File    : plox/interpreter/interpreter_expressions.go
*/
package interpreter

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch n := expr.(type) {
	case *ast.Assign:
		return i.evalAssign(n)
	case *ast.Binary:
		return i.evalBinary(n)
	case *ast.Call:
		return i.evalCall(n)
	case *ast.FunctionExpr:
		return newFunction(n.Name.Lexeme, n.Params, n.Body, i.env, false, false), nil
	case *ast.Get:
		return i.evalGet(n)
	case *ast.Grouping:
		return i.evaluate(n.Expression)
	case *ast.Literal:
		return n.Value, nil
	case *ast.Logical:
		return i.evalLogical(n)
	case *ast.Set:
		return i.evalSet(n)
	case *ast.Super:
		return i.evalSuper(n)
	case *ast.Ternary:
		return i.evalTernary(n)
	case *ast.This:
		return i.lookUpVariable(n.Keyword, n.Depth)
	case *ast.Unary:
		return i.evalUnary(n)
	case *ast.Variable:
		return i.lookUpVariable(n.Name, n.Depth)
	}
	return nil, runtimeErrorf(lexer.Token{}, "unreachable: unknown expression node")
}

func (i *Interpreter) lookUpVariable(name lexer.Token, depth *int) (interface{}, error) {
	if depth != nil {
		return i.env.GetAt(*depth, name.Lexeme), nil
	}
	return i.Globals.Get(name)
}

func (i *Interpreter) evalAssign(n *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}

	if n.Depth != nil {
		i.env.AssignAt(*n.Depth, n.Name, value)
		return value, nil
	}
	if err := i.Globals.Assign(n.Name, value); err != nil {
		return nil, &RuntimeError{Token: n.Name, Message: err.Error()}
	}
	return value, nil
}

func (i *Interpreter) evalTernary(n *ast.Ternary) (interface{}, error) {
	cond, err := i.evaluate(n.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return i.evaluate(n.Then)
	}
	return i.evaluate(n.Else)
}

func (i *Interpreter) evalLogical(n *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}

	if n.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}

	return i.evaluate(n.Right)
}

func (i *Interpreter) evalUnary(n *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.MINUS:
		switch v := right.(type) {
		case int64:
			return -v, nil
		case float64:
			return -v, nil
		}
		return nil, runtimeErrorf(n.Operator, "Operand must be a number.")
	case lexer.BANG:
		return !isTruthy(right), nil
	}
	return nil, runtimeErrorf(n.Operator, "Unknown unary operator.")
}

func (i *Interpreter) evalBinary(n *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.PLUS:
		switch {
		case isNumber(left) && isNumber(right):
			return numericBinary(n.Operator, left, right)
		case isString(left) && isString(right):
			return left.(string) + right.(string), nil
		case isString(left) || isString(right):
			return stringify(left) + stringify(right), nil
		}
		return nil, runtimeErrorf(n.Operator, "Operands must be two numbers or two strings.")

	case lexer.MINUS, lexer.STAR, lexer.SLASH:
		if !isNumber(left) || !isNumber(right) {
			return nil, runtimeErrorf(n.Operator, "Operands must be numbers.")
		}
		return numericBinary(n.Operator, left, right)

	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		return compare(n.Operator, left, right)

	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, runtimeErrorf(n.Operator, "Unknown binary operator.")
}

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// numericBinary performs +, -, *, / with Lox's type promotion: `+`,
// `-`, and `*` over two ints stay an int, any float operand promotes
// both sides to float. `/` always promotes to float, matching true
// division rather than truncating integer division. Division by zero
// is a runtime error in either case rather than an inf/NaN result.
func numericBinary(op lexer.Token, left, right interface{}) (interface{}, error) {
	li, lIsInt := left.(int64)
	ri, rIsInt := right.(int64)

	if lIsInt && rIsInt && op.Type != lexer.SLASH {
		switch op.Type {
		case lexer.PLUS:
			return li + ri, nil
		case lexer.MINUS:
			return li - ri, nil
		case lexer.STAR:
			return li * ri, nil
		}
	}

	lv, rv := asFloat(left), asFloat(right)
	switch op.Type {
	case lexer.PLUS:
		return lv + rv, nil
	case lexer.MINUS:
		return lv - rv, nil
	case lexer.STAR:
		return lv * rv, nil
	case lexer.SLASH:
		if rv == 0 {
			return nil, runtimeErrorf(op, "Division by zero.")
		}
		return lv / rv, nil
	}
	return nil, runtimeErrorf(op, "Unknown arithmetic operator.")
}

// compare implements the ordering operators over numbers (with the
// usual int/float promotion) and over strings lexicographically.
func compare(op lexer.Token, left, right interface{}) (interface{}, error) {
	if isNumber(left) && isNumber(right) {
		lv, rv := asFloat(left), asFloat(right)
		switch op.Type {
		case lexer.GREATER:
			return lv > rv, nil
		case lexer.GREATER_EQUAL:
			return lv >= rv, nil
		case lexer.LESS:
			return lv < rv, nil
		case lexer.LESS_EQUAL:
			return lv <= rv, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			switch op.Type {
			case lexer.GREATER:
				return ls > rs, nil
			case lexer.GREATER_EQUAL:
				return ls >= rs, nil
			case lexer.LESS:
				return ls < rs, nil
			case lexer.LESS_EQUAL:
				return ls <= rs, nil
			}
		}
	}
	return nil, runtimeErrorf(op, "Operands must be two numbers or two strings.")
}

func (i *Interpreter) evalCall(n *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(n.Arguments))
	for idx, argExpr := range n.Arguments {
		v, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(n.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(n.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(n *ast.Get) (interface{}, error) {
	obj, err := i.evaluate(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(n.Name, "Only instances have properties.")
	}
	return instance.get(n.Name, i)
}

func (i *Interpreter) evalSet(n *ast.Set) (interface{}, error) {
	obj, err := i.evaluate(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(n.Name, "Only instances have fields.")
	}
	value, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	instance.set(n.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(n *ast.Super) (interface{}, error) {
	if n.Depth == nil {
		return nil, runtimeErrorf(n.Keyword, "Undefined property '%s'.", n.Method.Lexeme)
	}
	distance := *n.Depth
	superVal := i.env.GetAt(distance, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, runtimeErrorf(n.Keyword, "Superclass must be a class.")
	}

	// `this` always sits one environment layer nearer than `super`'s,
	// since the class's "this" scope was opened just inside its
	// "super" scope at resolve time.
	thisVal := i.env.GetAt(distance-1, "this")
	instance, _ := thisVal.(*Instance)

	method, ok := superclass.findMethod(n.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(n.Method, "Undefined property '%s'.", n.Method.Lexeme)
	}
	return method.bind(instance), nil
}
