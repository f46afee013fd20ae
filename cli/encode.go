package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gem/parser"
)

// encodeYAML writes prog as a YAML sequence of statements. Every node is a
// single-key mapping naming its kind, and fields keep their declaration order.
func encodeYAML(w io.Writer, prog parser.Block) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(stmtList(prog)); err != nil {
		return err
	}
	return enc.Close()
}

func scalar(v interface{}) *yaml.Node {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		panic(err)
	}
	return &n
}

func mapping(pairs ...interface{}) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i < len(pairs); i += 2 {
		n.Content = append(n.Content, scalar(pairs[i]), pairs[i+1].(*yaml.Node))
	}
	return n
}

func tagged(kind string, v *yaml.Node) *yaml.Node {
	return mapping(kind, v)
}

func stmtList(b parser.Block) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, stmt := range b.Stmts {
		n.Content = append(n.Content, stmtNode(stmt))
	}
	return n
}

func stmtNode(stmt parser.Stmt) *yaml.Node {
	switch s := stmt.(type) {
	case parser.Block:
		return tagged("block", stmtList(s))
	case parser.FuncDecl:
		params := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, p := range s.Params {
			params.Content = append(params.Content, scalar(p))
		}
		return tagged("func", mapping(
			"name", scalar(s.Name),
			"params", params,
			"returns", exprNode(s.ReturnType),
			"body", stmtList(s.Body),
		))
	case parser.VarDecl:
		return tagged("var", mapping("name", scalar(s.Name), "value", exprNode(s.Value)))
	case parser.ExprStmt:
		return tagged("expr", exprNode(s.X))
	case parser.If:
		return tagged("if", mapping(
			"cond", exprNode(s.Cond),
			"then", stmtList(s.Then),
			"else", stmtList(s.Else),
		))
	case parser.While:
		return tagged("while", mapping("cond", exprNode(s.Cond), "body", stmtList(s.Body)))
	case parser.Return:
		return tagged("return", exprNode(s.Value))
	}
	panic(fmt.Sprintf("unknown statement %T", stmt))
}

func exprNode(expr parser.Expr) *yaml.Node {
	switch e := expr.(type) {
	case nil, parser.Empty:
		return scalar(nil)
	case parser.NumberLit:
		return tagged("num", scalar(e.Value))
	case parser.StringLit:
		return tagged("str", scalar(e.Value))
	case parser.Variable:
		return tagged("ref", scalar(e.Name))
	case parser.Binary:
		return tagged("binary", mapping(
			"op", scalar(e.Op.String()),
			"left", exprNode(e.Left),
			"right", exprNode(e.Right),
		))
	case parser.Call:
		args := &yaml.Node{Kind: yaml.SequenceNode}
		for _, arg := range e.Args {
			args.Content = append(args.Content, exprNode(arg))
		}
		return tagged("call", mapping("name", scalar(e.Name), "args", args))
	}
	panic(fmt.Sprintf("unknown expression %T", expr))
}
