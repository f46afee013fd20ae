package parser

import "gem/scanner"

// TokenSource supplies tokens one at a time. *scanner.Scanner implements it.
type TokenSource interface {
	Next() scanner.Token
}

// Parser builds a syntax tree from a token stream using a single token of
// lookahead. A Parser consumes its source; it is not safe for concurrent use.
type Parser struct {
	src TokenSource
	tok scanner.Token
}

func New(src TokenSource) *Parser {
	return &Parser{src: src}
}

// ParseString parses a whole program from src.
func ParseString(src string, mode scanner.Mode) (Block, error) {
	return New(scanner.New(src, mode)).Parse()
}

// ParseExprString parses src as a single expression.
func ParseExprString(src string, mode scanner.Mode) (Expr, error) {
	return New(scanner.New(src, mode)).ParseExpr()
}

// Parse reads statements until the end of input and returns them as the
// program block. Any syntax error aborts the parse and is returned as a
// *SyntaxError with no partial tree.
func (p *Parser) Parse() (prog Block, err error) {
	defer p.handle(&err)
	p.next()
	b := p.consumeBlock()
	p.expect(scanner.EOF, "end of input")
	return b, nil
}

// ParseExpr parses one expression that must span the whole input.
func (p *Parser) ParseExpr() (e Expr, err error) {
	defer p.handle(&err)
	p.next()
	x := p.consumeExpr()
	p.expect(scanner.EOF, "end of input")
	return x, nil
}

func (p *Parser) handle(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

func (p *Parser) fail(kind ErrorKind, want string) {
	panic(bailout{&SyntaxError{Kind: kind, Want: want, Got: p.tok}})
}

func (p *Parser) next() {
	p.tok = p.src.Next()
	if p.tok.Kind == scanner.Illegal {
		p.fail(Lexical, "")
	}
}

func (p *Parser) match(kinds ...scanner.TokenKind) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind scanner.TokenKind, want string) {
	if p.tok.Kind != kind {
		p.fail(Expectation, want)
	}
}

func (p *Parser) consume(kind scanner.TokenKind, want string) scanner.Token {
	p.expect(kind, want)
	t := p.tok
	p.next()
	return t
}

func (p *Parser) consumeIdent(want string) string {
	return p.consume(scanner.Ident, want).Text
}

func (p *Parser) consumeStmt() Stmt {
	switch p.tok.Kind {
	case scanner.Func:
		return p.consumeFuncDecl()
	case scanner.Var:
		return p.consumeVarDecl()
	case scanner.If:
		return p.consumeIf()
	case scanner.While:
		return p.consumeWhile()
	case scanner.Return:
		return p.consumeReturn()
	default:
		return ExprStmt{p.consumeExpr()}
	}
}

// consumeBlock reads statements up to a closing brace or the end of input,
// leaving that token in place.
func (p *Parser) consumeBlock() Block {
	var blk Block
	for !p.match(scanner.RBrace, scanner.EOF) {
		// Ignore lone semicolons
		if p.match(scanner.Semicolon) {
			p.next()
			continue
		}
		blk.Stmts = append(blk.Stmts, p.consumeStmt())
		if p.match(scanner.Semicolon) {
			p.next()
		}
	}
	return blk
}

func (p *Parser) consumeBracedBlock(what string) Block {
	p.consume(scanner.LBrace, "'{' before "+what)
	blk := p.consumeBlock()
	p.consume(scanner.RBrace, "'}' after "+what)
	return blk
}

func (p *Parser) consumeFuncDecl() Stmt {
	p.consume(scanner.Func, "'func'")
	name := p.consumeIdent("function name")
	p.consume(scanner.LParen, "'(' after function name")
	var params []string
	for !p.match(scanner.RParen) {
		params = append(params, p.consumeIdent("parameter name"))
		if p.match(scanner.Comma) {
			p.next()
		} else if !p.match(scanner.RParen) {
			p.fail(Expectation, "',' or ')' after function parameter")
		}
	}
	p.next()

	var ret Expr = Empty{}
	if p.match(scanner.Colon) {
		p.next()
		ret = p.consumePrimary()
	}

	body := p.consumeBracedBlock("function body")
	return FuncDecl{ReturnType: ret, Name: name, Params: params, Body: body}
}

func (p *Parser) consumeVarDecl() Stmt {
	p.consume(scanner.Var, "'var'")
	name := p.consumeIdent("variable name")
	var value Expr = NumberLit{0}
	if p.match(scanner.Eq) {
		p.next()
		value = p.consumeExpr()
	}
	p.consume(scanner.Semicolon, "';' after variable declaration")
	return VarDecl{Name: name, Value: value}
}

func (p *Parser) consumeIf() Stmt {
	p.consume(scanner.If, "'if'")
	cond := p.consumeGroupExpr("if condition")
	then := p.consumeBracedBlock("if body")
	var els Block
	if p.match(scanner.Else) {
		p.next()
		if p.match(scanner.If) {
			els = Block{[]Stmt{p.consumeIf()}}
		} else {
			els = p.consumeBracedBlock("else body")
		}
	}
	return If{Cond: cond, Then: then, Else: els}
}

func (p *Parser) consumeWhile() Stmt {
	p.consume(scanner.While, "'while'")
	cond := p.consumeGroupExpr("while condition")
	body := p.consumeBracedBlock("while body")
	return While{Cond: cond, Body: body}
}

func (p *Parser) consumeReturn() Stmt {
	p.consume(scanner.Return, "'return'")
	if p.match(scanner.Semicolon, scanner.RBrace, scanner.EOF) {
		return Return{Empty{}}
	}
	return Return{p.consumeExpr()}
}

func (p *Parser) consumeExpr() Expr {
	return p.consumeBinary(0)
}

// consumeBinary parses operators binding at least as tightly as minPrec.
// The right operand is parsed one level tighter, so operators of equal
// precedence fold to the left.
func (p *Parser) consumeBinary(minPrec int) Expr {
	e := p.consumePrimary()
	for {
		op, ok := binaryOps[p.tok.Kind]
		if !ok || op.Precedence() < minPrec {
			return e
		}
		p.next()
		right := p.consumeBinary(op.Precedence() + 1)
		e = Binary{Op: op, Left: e, Right: right}
	}
}

func (p *Parser) consumeGroupExpr(what string) Expr {
	p.consume(scanner.LParen, "'(' before "+what)
	e := p.consumeExpr()
	p.consume(scanner.RParen, "')' after "+what)
	return e
}

func (p *Parser) consumePrimary() Expr {
	t := p.tok
	switch t.Kind {
	case scanner.Num:
		p.next()
		return NumberLit{t.Num}
	case scanner.Str:
		p.next()
		return StringLit{t.Text}
	case scanner.Ident:
		p.next()
		if p.match(scanner.LParen) {
			return p.consumeCall(t.Text)
		}
		return Variable{t.Text}
	case scanner.LParen:
		return p.consumeGroupExpr("expression")
	}
	p.fail(Unexpected, "an expression")
	return nil
}

func (p *Parser) consumeCall(name string) Expr {
	p.consume(scanner.LParen, "'(' before call arguments")
	var args []Expr
	if !p.match(scanner.RParen) {
		for {
			args = append(args, p.consumeExpr())
			if !p.match(scanner.Comma) {
				break
			}
			p.next()
		}
	}
	p.consume(scanner.RParen, "')' after call arguments")
	return Call{Name: name, Args: args}
}
