package analysis

import (
	"fmt"

	"gem/parser"
)

type Symbol string

// SymbolInfo describes what a name is bound to. Arity is -1 for variables
// and parameters.
type SymbolInfo struct {
	Arity int
}

func (s SymbolInfo) isFunction() bool { return s.Arity >= 0 }

type SymbolTable struct {
	Parent  *SymbolTable
	Symbols map[Symbol]SymbolInfo
}

func newTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{Parent: parent, Symbols: map[Symbol]SymbolInfo{}}
}

func (t *SymbolTable) find(name Symbol) (SymbolInfo, bool) {
	if info, ok := t.Symbols[name]; ok {
		return info, true
	} else if t.Parent == nil {
		return SymbolInfo{}, false
	} else {
		return t.Parent.find(name)
	}
}

func (t *SymbolTable) contains(name Symbol) bool {
	_, ok := t.find(name)
	return ok
}

type checker struct {
	errs []error
}

func (c *checker) errorf(format string, args ...interface{}) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

func (c *checker) declare(scope *SymbolTable, name string, info SymbolInfo) {
	sym := Symbol(name)
	if _, ok := scope.Symbols[sym]; ok {
		c.errorf("%q redeclared in this scope", name)
		return
	}
	scope.Symbols[sym] = info
}

// Check resolves every name used in prog and returns one error per problem:
// undefined variables and functions, calls to non-functions, calls with the
// wrong number of arguments and duplicate declarations. Top-level functions
// and variables are visible everywhere in the program; names declared inside
// a block are visible from their declaration to the end of that block.
func Check(prog parser.Block) []error {
	c := &checker{}
	global := newTable(nil)
	for _, stmt := range prog.Stmts {
		switch s := stmt.(type) {
		case parser.FuncDecl:
			c.declare(global, s.Name, SymbolInfo{Arity: len(s.Params)})
		case parser.VarDecl:
			c.declare(global, s.Name, SymbolInfo{Arity: -1})
		}
	}
	for _, stmt := range prog.Stmts {
		c.checkStmt(global, stmt)
	}
	return c.errs
}

func (c *checker) checkBlock(parent *SymbolTable, blk parser.Block) {
	scope := newTable(parent)
	for _, stmt := range blk.Stmts {
		switch s := stmt.(type) {
		case parser.FuncDecl:
			c.declare(scope, s.Name, SymbolInfo{Arity: len(s.Params)})
		case parser.VarDecl:
			c.checkExpr(scope, s.Value)
			c.declare(scope, s.Name, SymbolInfo{Arity: -1})
			continue
		}
		c.checkStmt(scope, stmt)
	}
}

func (c *checker) checkStmt(scope *SymbolTable, stmt parser.Stmt) {
	switch s := stmt.(type) {
	case parser.FuncDecl:
		fn := newTable(scope)
		for _, param := range s.Params {
			c.declare(fn, param, SymbolInfo{Arity: -1})
		}
		c.checkBlock(fn, s.Body)
	case parser.VarDecl:
		c.checkExpr(scope, s.Value)
	case parser.ExprStmt:
		c.checkExpr(scope, s.X)
	case parser.Block:
		c.checkBlock(scope, s)
	case parser.If:
		c.checkExpr(scope, s.Cond)
		c.checkBlock(scope, s.Then)
		c.checkBlock(scope, s.Else)
	case parser.While:
		c.checkExpr(scope, s.Cond)
		c.checkBlock(scope, s.Body)
	case parser.Return:
		c.checkExpr(scope, s.Value)
	default:
		panic(fmt.Sprintf("unknown statement %T", stmt))
	}
}

func (c *checker) checkExpr(scope *SymbolTable, expr parser.Expr) {
	switch e := expr.(type) {
	case parser.NumberLit, parser.StringLit, parser.Empty:
	case parser.Variable:
		if !scope.contains(Symbol(e.Name)) {
			c.errorf("undefined: %s", e.Name)
		}
	case parser.Binary:
		c.checkExpr(scope, e.Left)
		c.checkExpr(scope, e.Right)
	case parser.Call:
		info, ok := scope.find(Symbol(e.Name))
		switch {
		case !ok:
			c.errorf("undefined function: %s", e.Name)
		case !info.isFunction():
			c.errorf("cannot call non-function %s", e.Name)
		case info.Arity != len(e.Args):
			c.errorf("wrong number of arguments in call to %s: have %d, want %d", e.Name, len(e.Args), info.Arity)
		}
		for _, arg := range e.Args {
			c.checkExpr(scope, arg)
		}
	default:
		panic(fmt.Sprintf("unknown expression %T", expr))
	}
}
