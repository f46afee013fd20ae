package parser

import "gem/scanner"

type Operation int

const (
	Add Operation = iota
	Sub
	Mul
	Div
)

// Precedence reports how tightly the operation binds; higher binds tighter.
func (op Operation) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	}
	return 0
}

func (op Operation) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

var binaryOps = map[scanner.TokenKind]Operation{
	scanner.Plus:  Add,
	scanner.Minus: Sub,
	scanner.Star:  Mul,
	scanner.Slash: Div,
}

type Expr interface {
	exprNode()
	String() string
}

type Stmt interface {
	stmtNode()
	String() string
}

type NumberLit struct{ Value float64 }

type StringLit struct{ Value string }

type Variable struct{ Name string }

type Binary struct {
	Op    Operation
	Left  Expr
	Right Expr
}

type Call struct {
	Name string
	Args []Expr
}

// Empty marks an absent expression, such as a function without a declared
// return type.
type Empty struct{}

func (NumberLit) exprNode() {}
func (StringLit) exprNode() {}
func (Variable) exprNode()  {}
func (Binary) exprNode()    {}
func (Call) exprNode()      {}
func (Empty) exprNode()     {}

// Block is a sequence of statements run in order. A parsed program and every
// function body are blocks.
type Block struct {
	Stmts []Stmt
}

type FuncDecl struct {
	ReturnType Expr
	Name       string
	Params     []string
	Body       Block
}

// VarDecl always has a Value; a declaration without an initializer gets
// NumberLit{0}.
type VarDecl struct {
	Name  string
	Value Expr
}

type ExprStmt struct{ X Expr }

type If struct {
	Cond Expr
	Then Block
	Else Block
}

type While struct {
	Cond Expr
	Body Block
}

type Return struct{ Value Expr }

func (Block) stmtNode()    {}
func (FuncDecl) stmtNode() {}
func (VarDecl) stmtNode()  {}
func (ExprStmt) stmtNode() {}
func (If) stmtNode()       {}
func (While) stmtNode()    {}
func (Return) stmtNode()   {}
