package parser

import (
	"strconv"
	"strings"

	"github.com/kr/text"
)

const indent = "    "

func (e NumberLit) String() string { return strconv.FormatFloat(e.Value, 'f', -1, 64) }
func (e StringLit) String() string { return "str'" + e.Value + "'" }
func (e Variable) String() string  { return e.Name }
func (Empty) String() string       { return "<empty>" }

func (e Binary) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

func (e Call) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func (b Block) String() string {
	lines := make([]string, len(b.Stmts))
	for i, stmt := range b.Stmts {
		lines[i] = stmt.String()
	}
	return strings.Join(lines, "\n")
}

// braced renders b between braces with its statements indented.
func braced(b Block) string {
	if len(b.Stmts) == 0 {
		return "{}"
	}
	return "{\n" + text.Indent(b.String(), indent) + "\n}"
}

func (s FuncDecl) String() string {
	var sb strings.Builder
	sb.WriteString("function ")
	sb.WriteString(s.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(s.Params, ", "))
	sb.WriteString(")")
	if _, ok := s.ReturnType.(Empty); !ok && s.ReturnType != nil {
		sb.WriteString(": ")
		sb.WriteString(s.ReturnType.String())
	}
	sb.WriteString(" ")
	sb.WriteString(braced(s.Body))
	return sb.String()
}

func (s VarDecl) String() string  { return "variable " + s.Name + "(" + s.Value.String() + ")" }
func (s ExprStmt) String() string { return s.X.String() }

func (s If) String() string {
	out := "if " + s.Cond.String() + " " + braced(s.Then)
	if len(s.Else.Stmts) > 0 {
		out += " else " + braced(s.Else)
	}
	return out
}

func (s While) String() string {
	return "while " + s.Cond.String() + " " + braced(s.Body)
}

func (s Return) String() string {
	if _, ok := s.Value.(Empty); ok || s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}
