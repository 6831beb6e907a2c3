package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Span_Location(t *testing.T) {
	source := "File = Fn*\nFn = 'fn'\n"

	t.Run("start of source", func(t *testing.T) {
		assert.Equal(t, Location{Line: 1, Column: 1}, NewSpan(0, 4).Location(source))
	})

	t.Run("mid line", func(t *testing.T) {
		assert.Equal(t, Location{Line: 1, Column: 6}, NewSpan(5, 6).Location(source))
	})

	t.Run("second line", func(t *testing.T) {
		assert.Equal(t, Location{Line: 2, Column: 1}, NewSpan(11, 13).Location(source))
		assert.Equal(t, Location{Line: 2, Column: 6}, NewSpan(16, 20).Location(source))
	})
}

func Test_Token_Text(t *testing.T) {
	source := "Fn = 'fn'"

	t.Run("ident", func(t *testing.T) {
		token := Token{Kind: TokenIdent, Span: NewSpan(0, 2)}
		assert.Equal(t, "Fn", token.Text(source))
	})

	t.Run("literal strips quotes", func(t *testing.T) {
		token := Token{Kind: TokenLiteral, Span: NewSpan(5, 9)}
		assert.Equal(t, "fn", token.Text(source))
	})
}
