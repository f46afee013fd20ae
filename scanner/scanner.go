package scanner

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:generate stringer -type=TokenKind -linecomment
type TokenKind int

const (
	Illegal TokenKind = iota // illegal token
	EOF                      // end of input

	Num   // number
	Str   // string
	Ident // identifier

	Plus      // '+'
	Minus     // '-'
	Star      // '*'
	Slash     // '/'
	Eq        // '='
	Colon     // ':'
	Comma     // ','
	Dot       // '.'
	Semicolon // ';'
	LParen    // '('
	RParen    // ')'
	LBrace    // '{'
	RBrace    // '}'

	Func   // 'func'
	Var    // 'var'
	If     // 'if'
	Else   // 'else'
	While  // 'while'
	Return // 'return'
)

// Token is a single lexical unit. Num holds the value of number tokens, Text
// the value of strings and identifiers, or the reason for an Illegal token.
// Tokens compare with ==.
type Token struct {
	Kind TokenKind
	Num  float64
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case Num:
		return "number " + strconv.FormatFloat(t.Num, 'f', -1, 64)
	case Str:
		return "string " + strconv.Quote(t.Text)
	case Ident:
		return "identifier " + strconv.Quote(t.Text)
	case Illegal:
		return "illegal token (" + t.Text + ")"
	default:
		return t.Kind.String()
	}
}

// Mode controls how the scanner treats input it cannot classify.
type Mode int

const (
	// Permissive drops unknown characters, ends unterminated strings at the
	// end of input and turns unparsable numbers into 0.
	Permissive Mode = iota
	// Strict reports each of those cases as an Illegal token.
	Strict
)

var keywords = map[string]TokenKind{
	"func":   Func,
	"var":    Var,
	"if":     If,
	"else":   Else,
	"while":  While,
	"return": Return,
}

var symbols = map[rune]TokenKind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'=': Eq,
	':': Colon,
	',': Comma,
	'.': Dot,
	';': Semicolon,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
}

// Scanner turns source text into tokens on demand. Its cursor only moves
// forward; once the input is exhausted every call to Next returns EOF.
type Scanner struct {
	src  string
	pos  int
	mode Mode
}

func New(src string, mode Mode) *Scanner {
	return &Scanner{src: src, mode: mode}
}

// Scan returns every token of src, ending with EOF.
func Scan(src string, mode Mode) []Token {
	s := New(src, mode)
	var tokens []Token
	for {
		t := s.Next()
		tokens = append(tokens, t)
		if t.Kind == EOF {
			return tokens
		}
	}
}

func (s *Scanner) peek() (rune, int) {
	if s.pos >= len(s.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

func (s *Scanner) Next() Token {
	for {
		s.skipWhitespace()
		ch, w := s.peek()
		if w == 0 {
			return Token{Kind: EOF}
		}

		if kind, ok := symbols[ch]; ok {
			s.pos += w
			return Token{Kind: kind}
		}
		switch {
		case ch == '"':
			s.pos += w
			return s.scanStr()
		case '0' <= ch && ch <= '9':
			return s.scanNum()
		case 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z':
			return s.scanIdent()
		}

		s.pos += w
		if s.mode == Strict {
			return Token{Kind: Illegal, Text: "unknown character " + strconv.QuoteRune(ch)}
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		ch, w := s.peek()
		if w == 0 || !unicode.IsSpace(ch) {
			return
		}
		s.pos += w
	}
}

func (s *Scanner) scanStr() Token {
	var buf strings.Builder
	for {
		ch, w := s.peek()
		if w == 0 {
			if s.mode == Strict {
				return Token{Kind: Illegal, Text: "unterminated string " + strconv.Quote(buf.String())}
			}
			return Token{Kind: Str, Text: buf.String()}
		}
		s.pos += w

		switch ch {
		case '"':
			return Token{Kind: Str, Text: buf.String()}
		case '\\':
			esc, ew := s.peek()
			if ew == 0 {
				buf.WriteRune('\\')
				continue
			}
			s.pos += ew
			switch esc {
			case 'n':
				buf.WriteRune('\n')
			case 't':
				buf.WriteRune('\t')
			case '"':
				buf.WriteRune('"')
			case '\\':
				buf.WriteRune('\\')
			default:
				buf.WriteRune('\\')
				buf.WriteRune(esc)
			}
		default:
			buf.WriteRune(ch)
		}
	}
}

func (s *Scanner) skipDigits() {
	for s.pos < len(s.src) && '0' <= s.src[s.pos] && s.src[s.pos] <= '9' {
		s.pos++
	}
}

func (s *Scanner) scanNum() Token {
	start := s.pos
	s.skipDigits()
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		s.skipDigits()
	}

	lexeme := s.src[start:s.pos]
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		if s.mode == Strict {
			return Token{Kind: Illegal, Text: "malformed number " + strconv.Quote(lexeme)}
		}
		n = 0
	}
	return Token{Kind: Num, Num: n}
}

func (s *Scanner) scanIdent() Token {
	start := s.pos
	for {
		ch, w := s.peek()
		if w == 0 || !(unicode.IsLetter(ch) || unicode.IsDigit(ch)) {
			break
		}
		s.pos += w
	}

	lexeme := s.src[start:s.pos]
	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind}
	}
	return Token{Kind: Ident, Text: lexeme}
}
