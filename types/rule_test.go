package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Expr_String(t *testing.T) {
	t.Run("atoms", func(t *testing.T) {
		assert.Equal(t, "'fn'", NewLiteral("fn").String())
		assert.Equal(t, "Block", NewReference("Block").String())
	})

	t.Run("sequence", func(t *testing.T) {
		expr := NewSequence([]Expr{
			NewLiteral("fn"),
			NewReference("ParamList"),
		})
		assert.Equal(t, "'fn' ParamList", expr.String())
	})

	t.Run("alternation groups sequence members", func(t *testing.T) {
		expr := NewAlternation([]Expr{
			NewSequence([]Expr{NewLiteral("a"), NewReference("B")}),
			NewLiteral("c"),
		})
		assert.Equal(t, "('a' B) | 'c'", expr.String())
	})

	t.Run("postfix groups compound members", func(t *testing.T) {
		assert.Equal(t, "Fn*", NewRepetition(NewReference("Fn")).String())
		assert.Equal(
			t, "('->' 'type')?",
			NewOptional(NewSequence([]Expr{
				NewLiteral("->"),
				NewLiteral("type"),
			})).String(),
		)
	})

	t.Run("labeled", func(t *testing.T) {
		expr := NewLabeled("op", NewAlternation([]Expr{
			NewLiteral("+"),
			NewLiteral("-"),
		}))
		assert.Equal(t, "op:('+' | '-')", expr.String())
	})
}
