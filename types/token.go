package types

import "fmt"

// TokenKind enumerates the lexical tokens of Ungrammar source.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenLiteral
	TokenEqual
	TokenColon
	TokenStar
	TokenQuestion
	TokenPipe
	TokenParenOpen
	TokenParenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenIdent:
		return "ident"
	case TokenLiteral:
		return "literal"
	case TokenEqual:
		return "'='"
	case TokenColon:
		return "':'"
	case TokenStar:
		return "'*'"
	case TokenQuestion:
		return "'?'"
	case TokenPipe:
		return "'|'"
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a lexed token together with its source span.
type Token struct {
	Kind TokenKind
	Span Span
}

// Text returns the token's source text. Literal tokens are returned
// without their surrounding quotes.
func (t Token) Text(source string) string {
	text := source[t.Span.Start:t.Span.End]
	if t.Kind == TokenLiteral && len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	return text
}

func (t Token) String() string {
	return fmt.Sprintf("<Token %s %s>", t.Kind, t.Span)
}
