/*
File    : plox/interpreter/callable.go
*/
package interpreter

// Callable is implemented by every value that can appear on the left
// of a call expression: user-defined functions and methods, classes
// (called as constructors), and native functions like clock.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// clockBuiltin is the one native function this implementation ships.
type clockBuiltin struct{}

func (clockBuiltin) Arity() int { return 0 }

func (clockBuiltin) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	return float64(nowMillis()), nil
}

func (clockBuiltin) String() string { return "<native fn>" }
