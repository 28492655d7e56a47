package forth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind distinguishes integer literals from words.
type TokenKind int

const (
	// WordToken is any run of non-space characters that is not an integer
	// literal; its Text is case-folded to lower case.
	WordToken TokenKind = iota

	// IntegerToken is an optional leading '-' followed by one or more ASCII
	// digits; its Value holds the parsed integer.
	IntegerToken
)

func (kind TokenKind) String() string {
	switch kind {
	case WordToken:
		return "word"
	case IntegerToken:
		return "integer"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(kind))
	}
}

// Token is one classified unit of input.
type Token struct {
	Kind  TokenKind
	Text  string
	Value int
}

func (tok Token) String() string {
	if tok.Kind == IntegerToken {
		return strconv.Itoa(tok.Value)
	}
	return tok.Text
}

// Tokenizer produces tokens from a line lazily, one per call to Next.
type Tokenizer struct {
	line string
	pos  int
}

// NewTokenizer returns a Tokenizer positioned at the start of line.
func NewTokenizer(line string) *Tokenizer {
	tz := &Tokenizer{line: line}
	tz.Reset()
	return tz
}

// Reset rewinds the tokenizer to the start of its line.
func (tz *Tokenizer) Reset() { tz.pos = 0 }

// Next scans and classifies the next token, returning false once the line is
// exhausted. The only error is a *LexError for an out of range literal.
func (tz *Tokenizer) Next() (Token, bool, error) {
	raw := tz.scan()
	if raw == "" {
		return Token{}, false, nil
	}
	tok, err := classify(raw)
	return tok, err == nil, err
}

// scan returns the next run of non-space bytes, sliced from the line so that
// invalid UTF-8 passes through unchanged.
func (tz *Tokenizer) scan() string {
	for tz.pos < len(tz.line) {
		r, size := utf8.DecodeRuneInString(tz.line[tz.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		tz.pos += size
	}
	start := tz.pos
	for tz.pos < len(tz.line) {
		r, size := utf8.DecodeRuneInString(tz.line[tz.pos:])
		if unicode.IsSpace(r) {
			break
		}
		tz.pos += size
	}
	return tz.line[start:tz.pos]
}

// Tokenize collects every token from line.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	tz := NewTokenizer(line)
	for {
		tok, ok, err := tz.Next()
		if !ok {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func classify(raw string) (Token, error) {
	if !isNumeral(raw) {
		return Token{Kind: WordToken, Text: foldCase(raw)}, nil
	}
	n, err := strconv.ParseInt(raw, 10, strconv.IntSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrNumberRange
		}
		return Token{}, &LexError{Token: raw, Err: err}
	}
	return Token{Kind: IntegerToken, Text: raw, Value: int(n)}, nil
}

// foldCase lower-cases s rune by rune, copying invalid UTF-8 bytes through
// rather than replacing them with utf8.RuneError.
func foldCase(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return sb.String()
}

func isNumeral(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
