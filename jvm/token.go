package jvm

import (
	"fmt"
)

// tokenKind classifies value-grammar tokens.
type tokenKind uint8

const (
	tokenEOF tokenKind = iota
	tokenInt           // -?\d+
	tokenBool          // true | false
	tokenChar          // 'x'
	tokenComma
	tokenOpenArray  // [I: or [C:
	tokenCloseArray // ]
)

// String returns the token kind name.
func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenInt:
		return "INT"
	case tokenBool:
		return "BOOL"
	case tokenChar:
		return "CHAR"
	case tokenComma:
		return ","
	case tokenOpenArray:
		return "OPEN_ARRAY"
	case tokenCloseArray:
		return "]"
	default:
		return "UNKNOWN"
	}
}

// token is a single value-grammar token.
type token struct {
	kind  tokenKind
	value string
	pos   int // byte offset in the input
}

func (t token) String() string {
	if t.value == "" {
		return t.kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.kind, t.value)
}

// tokenizeValues scans a value-grammar input into tokens. Whitespace is
// discarded; any byte that starts none of the recognized tokens fails
// with an unrecognized-token error at its offset.
func tokenizeValues(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		ch := input[i]

		switch {
		case ch == ' ' || ch == '\t':
			i++

		case ch == ',':
			tokens = append(tokens, token{tokenComma, ",", i})
			i++

		case ch == ']':
			tokens = append(tokens, token{tokenCloseArray, "]", i})
			i++

		case ch == '[':
			// Array openers are exactly [I: or [C:
			if i+2 < len(input) && (input[i+1] == 'I' || input[i+1] == 'C') && input[i+2] == ':' {
				tokens = append(tokens, token{tokenOpenArray, input[i : i+3], i})
				i += 3
				continue
			}
			return nil, decodeErrAt(ErrUnrecognizedToken, input, i, "expected [I: or [C:")

		case ch == '-' || isDigit(ch):
			start := i
			if ch == '-' {
				i++
			}
			digits := 0
			for i < len(input) && isDigit(input[i]) {
				i++
				digits++
			}
			if digits == 0 {
				return nil, decodeErrAt(ErrUnrecognizedToken, input, start, "bare '-'")
			}
			tokens = append(tokens, token{tokenInt, input[start:i], start})

		case ch == 't' || ch == 'f':
			lit := "true"
			if ch == 'f' {
				lit = "false"
			}
			if len(input)-i < len(lit) || input[i:i+len(lit)] != lit {
				return nil, decodeErrAt(ErrUnrecognizedToken, input, i, "expected boolean literal")
			}
			tokens = append(tokens, token{tokenBool, lit, i})
			i += len(lit)

		case ch == '\'':
			if i+2 < len(input) && input[i+1] != '\'' && input[i+2] == '\'' {
				tokens = append(tokens, token{tokenChar, input[i : i+3], i})
				i += 3
				continue
			}
			return nil, decodeErrAt(ErrUnrecognizedToken, input, i, "expected 'x'")

		default:
			return nil, decodeErrAt(ErrUnrecognizedToken, input, i, "unexpected character %q", ch)
		}
	}
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// tokenStream walks tokens with one token of lookahead.
type tokenStream struct {
	input  string
	tokens []token
	pos    int
}

func newTokenStream(input string, tokens []token) *tokenStream {
	return &tokenStream{input: input, tokens: tokens}
}

// head returns the current token without advancing. At the end it
// returns an EOF token positioned after the input.
func (ts *tokenStream) head() token {
	if ts.pos >= len(ts.tokens) {
		return token{kind: tokenEOF, pos: len(ts.input)}
	}
	return ts.tokens[ts.pos]
}

// next advances past the current token and returns it.
func (ts *tokenStream) next() token {
	tok := ts.head()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// expect advances if the head has the wanted kind, otherwise fails with
// an unexpected-token error.
func (ts *tokenStream) expect(kind tokenKind) (token, error) {
	tok := ts.head()
	if tok.kind != kind {
		return tok, decodeErrAt(ErrUnexpectedToken, ts.input, tok.pos, "expected %s, got %s", kind, tok)
	}
	ts.next()
	return tok, nil
}

// eof fails with an unexpected-token error unless all tokens are consumed.
func (ts *tokenStream) eof() error {
	if tok := ts.head(); tok.kind != tokenEOF {
		return decodeErrAt(ErrUnexpectedToken, ts.input, tok.pos, "expected end of input, got %s", tok)
	}
	return nil
}
