package parser

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"

	"gem/scanner"
)

type ErrorKind int

const (
	// Expectation means the current token is not the one the grammar requires.
	Expectation ErrorKind = iota
	// Unexpected means the current token cannot start the construct at hand.
	Unexpected
	// Lexical means the scanner produced an illegal token.
	Lexical
)

func (k ErrorKind) String() string {
	switch k {
	case Expectation:
		return "expectation failure"
	case Unexpected:
		return "unexpected token"
	case Lexical:
		return "lexical error"
	}
	return "unknown"
}

var (
	ErrExpectation = errors.New("expectation failure")
	ErrUnexpected  = errors.New("unexpected token")
	ErrLexical     = errors.New("lexical error")
)

// SyntaxError is returned for every grammar violation. Want names the
// construct the parser was looking for, Got the token it found instead.
type SyntaxError struct {
	Kind ErrorKind
	Want string
	Got  scanner.Token
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case Expectation:
		return "expected " + e.Want + ", got " + e.Got.String()
	case Unexpected:
		return "unexpected " + e.Got.String() + " where " + e.Want + " was expected"
	default:
		return "invalid input: " + e.Got.Text
	}
}

func (e *SyntaxError) Unwrap() error {
	switch e.Kind {
	case Expectation:
		return ErrExpectation
	case Unexpected:
		return ErrUnexpected
	default:
		return ErrLexical
	}
}

func (e *SyntaxError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *SyntaxError) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		p.Printf("kind: %v\n", e.Kind)
		if e.Want != "" {
			p.Printf("want: %s\n", e.Want)
		}
		p.Printf("got:  %v", e.Got)
	}
	return nil
}

// bailout carries a SyntaxError up the recursive descent to the entry point
// that recovers it.
type bailout struct{ err *SyntaxError }
