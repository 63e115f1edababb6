/*
File    : plox/resolver/resolver.go

Package resolver performs a single static pass over the parsed tree
between parsing and execution. It answers one question per variable
reference: how many environment links out is the scope that declared
it? That answer is written straight onto the referencing node's Depth
field (ast.Variable, ast.Assign, ast.This, ast.Super) rather than kept
in a side table keyed by node identity, so the interpreter reads the
depth off the node and walks that many Enclosing links instead of
probing a side table first.

The same pass also catches a family of errors that would otherwise
only surface at runtime, or never at all: reading a local in its own
initializer, returning from top-level code, using `this`/`super`
outside a class, `break` outside a loop, and redeclaring a name twice
in one block. It also reports a few non-fatal warnings: a declared but
unused local, code unreachable after a return, and a `var` with no
initializer (left to default to nil at runtime).
*/
package resolver

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/lexer"
)

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
	functionTypeMethod
	functionTypeInitializer
	functionTypeGetter
)

type classType int

const (
	classTypeNone classType = iota
	classTypeClass
	classTypeSubclass
)

type loopType int

const (
	loopTypeNone loopType = iota
	loopTypeWhile
)

// binding is the per-name bookkeeping kept for one lexical scope: has
// the name finished its own initializer yet (defined), and has
// anything read it since (used).
type binding struct {
	defined bool
	used    bool
	token   lexer.Token
}

// Resolver walks the tree once, tracking a stack of block scopes plus
// what kind of function, class, and loop the walk is currently inside.
type Resolver struct {
	sink       *diagnostics.Sink
	scopes     []map[string]*binding
	returnSeen []*ast.Return

	currentFunction functionType
	currentClass    classType
	currentLoop     loopType
}

// New creates a Resolver reporting through sink.
func New(sink *diagnostics.Sink) *Resolver {
	return &Resolver{sink: sink, returnSeen: []*ast.Return{nil}}
}

// Resolve runs static resolution over a whole program or REPL chunk.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	warned := false
	for _, stmt := range statements {
		if top := r.returnSeen[len(r.returnSeen)-1]; top != nil && !warned {
			r.sink.Warning(top.Keyword, "Unreachable code.")
			warned = true
		}
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStatements(n.Statements)
		r.endScope()

	case *ast.Break:
		if r.currentLoop == loopTypeNone {
			r.sink.Error(n.Keyword, "Can't use 'break' outside of a loop.")
		}

	case *ast.Class:
		r.resolveClass(n)

	case *ast.Expression:
		r.resolveExpr(n.Expression)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, functionTypeFunction)

	case *ast.If:
		r.resolveExpr(n.Condition)
		r.pushReturnFrame()
		r.resolveStmt(n.ThenBranch)
		r.popReturnFrame()
		if n.ElseBranch != nil {
			r.pushReturnFrame()
			r.resolveStmt(n.ElseBranch)
			r.popReturnFrame()
		}

	case *ast.Print:
		r.resolveExpr(n.Expression)

	case *ast.Return:
		if r.currentFunction == functionTypeNone {
			r.sink.Error(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == functionTypeInitializer {
				r.sink.Error(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}
		r.returnSeen[len(r.returnSeen)-1] = n

	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer == nil {
			r.sink.Warning(n.Name, "Variable declared without an initializer; it defaults to nil.")
		} else {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)

	case *ast.While:
		enclosingLoop := r.currentLoop
		r.currentLoop = loopTypeWhile
		r.resolveExpr(n.Condition)
		r.pushReturnFrame()
		r.resolveStmt(n.Body)
		r.popReturnFrame()
		r.currentLoop = enclosingLoop
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(n.Value)
		n.Depth = r.resolveLocal(n.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.FunctionExpr:
		r.resolveFunctionLiteral(n)

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Grouping:
		r.resolveExpr(n.Expression)

	case *ast.Literal:
		// Carries no name to resolve.

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.Super:
		switch r.currentClass {
		case classTypeNone:
			r.sink.Error(n.Keyword, "Can't use 'super' outside of a class.")
		case classTypeClass:
			r.sink.Error(n.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		n.Depth = r.resolveLocal("super")

	case *ast.Ternary:
		r.resolveExpr(n.Condition)
		r.resolveExpr(n.Then)
		r.resolveExpr(n.Else)

	case *ast.This:
		if r.currentClass == classTypeNone {
			r.sink.Error(n.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		n.Depth = r.resolveLocal("this")

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			top := r.scopes[len(r.scopes)-1]
			if b, ok := top[n.Name.Lexeme]; ok && !b.defined {
				r.sink.Error(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		n.Depth = r.resolveLocal(n.Name.Lexeme)
	}
}

// resolveClass resolves a class declaration, including the superclass
// clause the grammar now parses: a `this` scope is opened for every
// class, and a `super` scope beneath it is opened only when the class
// declares a superclass, exactly as the scope for `super.method` calls
// for — one environment hop further out than `this`.
func (r *Resolver) resolveClass(stmt *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.sink.Error(stmt.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = &binding{defined: true, used: true, token: stmt.Superclass.Name}
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = &binding{defined: true, used: true, token: stmt.Name}

	for _, method := range stmt.Methods {
		fnType := functionTypeMethod
		switch {
		case method.Name.Lexeme == "init" && method.IsGetter:
			r.sink.Error(method.Name, "An initializer can't be a getter.")
			fnType = functionTypeInitializer
		case method.Name.Lexeme == "init":
			fnType = functionTypeInitializer
		case method.IsGetter:
			fnType = functionTypeGetter
		}
		r.resolveFunction(method, fnType)
	}

	r.endScope()

	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, fnType functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = fnType

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveFunctionLiteral(fn *ast.FunctionExpr) {
	enclosingFunction := r.currentFunction
	r.currentFunction = functionTypeFunction

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]*binding{})
	r.pushReturnFrame()
}

func (r *Resolver) endScope() {
	top := r.scopes[len(r.scopes)-1]
	for _, b := range top {
		if !b.used {
			r.sink.Warning(b.token, "Local variable declared but never used.")
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
	r.popReturnFrame()
}

func (r *Resolver) pushReturnFrame() {
	r.returnSeen = append(r.returnSeen, nil)
}

func (r *Resolver) popReturnFrame() {
	r.returnSeen = r.returnSeen[:len(r.returnSeen)-1]
}

func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[name.Lexeme]; exists {
		r.sink.Error(name, "Variable with this name already declared in this scope.")
	}
	top[name.Lexeme] = &binding{token: name}
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	if b, ok := r.scopes[len(r.scopes)-1][name.Lexeme]; ok {
		b.defined = true
	}
}

// resolveLocal searches the scope stack innermost-out for name,
// returning the number of environment hops to it, or nil if it is
// never found in a local scope — meaning it is resolved against the
// global environment at runtime instead.
func (r *Resolver) resolveLocal(name string) *int {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name]; ok {
			b.used = true
			distance := len(r.scopes) - 1 - i
			return &distance
		}
	}
	return nil
}
