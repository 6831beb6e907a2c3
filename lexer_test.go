package ungram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/b4fun/ungram-go/types"
)

func lexKinds(t testing.TB, source string) []types.TokenKind {
	tokens, err := Lex(source)
	assert.NoError(t, err)

	kinds := make([]types.TokenKind, 0, len(tokens))
	for _, token := range tokens {
		kinds = append(kinds, token.Kind)
	}
	return kinds
}

func Test_Lex(t *testing.T) {
	t.Run("rule line", func(t *testing.T) {
		assert.Equal(
			t,
			[]types.TokenKind{
				types.TokenIdent,
				types.TokenEqual,
				types.TokenIdent,
				types.TokenLiteral,
				types.TokenEOF,
			},
			lexKinds(t, "S = File '#'"),
		)
	})

	t.Run("symbols", func(t *testing.T) {
		assert.Equal(
			t,
			[]types.TokenKind{
				types.TokenParenOpen,
				types.TokenPipe,
				types.TokenParenClose,
				types.TokenStar,
				types.TokenQuestion,
				types.TokenColon,
				types.TokenEOF,
			},
			lexKinds(t, "(|)*?:"),
		)
	})

	t.Run("skips whitespace and comments", func(t *testing.T) {
		source := "# leading comment\nFn = 'fn' # trailing comment\n"
		assert.Equal(
			t,
			[]types.TokenKind{
				types.TokenIdent,
				types.TokenEqual,
				types.TokenLiteral,
				types.TokenEOF,
			},
			lexKinds(t, source),
		)
	})

	t.Run("quoted hash is a literal, not a comment", func(t *testing.T) {
		tokens, err := Lex("'#'")
		assert.NoError(t, err)
		assert.Len(t, tokens, 2)
		assert.Equal(t, types.TokenLiteral, tokens[0].Kind)
		assert.Equal(t, "#", tokens[0].Text("'#'"))
	})

	t.Run("token spans index the source", func(t *testing.T) {
		source := "Fn = 'fn'"
		tokens, err := Lex(source)
		assert.NoError(t, err)
		assert.Equal(t, types.NewSpan(0, 2), tokens[0].Span)
		assert.Equal(t, types.NewSpan(3, 4), tokens[1].Span)
		assert.Equal(t, types.NewSpan(5, 9), tokens[2].Span)
		assert.Equal(t, "fn", tokens[2].Text(source))
	})

	t.Run("unterminated literal", func(t *testing.T) {
		_, err := Lex("Fn = 'fn")
		assert.Error(t, err)
		assert.IsType(t, &types.ErrUnterminatedLiteral{}, err)
		assert.Equal(
			t,
			types.Location{Line: 1, Column: 6},
			err.(types.ParseError).Position(),
		)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := Lex("Fn = @")
		assert.Error(t, err)
		assert.IsType(t, &types.ErrInvalidToken{}, err)
		assert.Equal(t, "@", err.(*types.ErrInvalidToken).Text)
	})

	t.Run("empty source yields only eof", func(t *testing.T) {
		assert.Equal(t, []types.TokenKind{types.TokenEOF}, lexKinds(t, ""))
	})
}
