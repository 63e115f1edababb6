/*
File    : plox/interpreter/class.go
*/
package interpreter

import "github.com/akashmaji946/plox/lexer"

// Class is a runtime class value, callable as a constructor. Methods
// are looked up by walking the superclass chain, the same single-
// inheritance model the original interpreter already implements —
// only parsing and resolving that chain is new.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// findMethod looks up name on this class, then its superclass chain.
func (c *Class) findMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the `init` method's arity, or 0 when the class declares
// none — constructing such a class takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance and, if the class declares an
// `init` method, runs it bound to that instance before returning it.
func (c *Class) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	instance := &Instance{class: c, fields: make(map[string]interface{})}
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}

// Instance is a runtime object: a bag of fields backed by a class for
// method lookup. Fields shadow methods of the same name, matching the
// original implementation's field-then-method lookup order.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

// get resolves a property read. A getter method is invoked immediately
// with no arguments rather than returned as a bound callable — that is
// what makes it a getter instead of a zero-argument method.
func (inst *Instance) get(name lexer.Token, i *Interpreter) (interface{}, error) {
	if v, ok := inst.fields[name.Lexeme]; ok {
		return v, nil
	}

	if method, ok := inst.class.findMethod(name.Lexeme); ok {
		bound := method.bind(inst)
		if bound.isGetter {
			return bound.Call(i, nil)
		}
		return bound, nil
	}

	return nil, runtimeErrorf(name, "Undefined property '%s'.", name.Lexeme)
}

func (inst *Instance) set(name lexer.Token, value interface{}) {
	inst.fields[name.Lexeme] = value
}

func (inst *Instance) String() string {
	return inst.class.Name + " instance"
}
