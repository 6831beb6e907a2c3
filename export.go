package ungram

import (
	"github.com/b4fun/ungram-go/sets"
	"github.com/b4fun/ungram-go/types"
)

var (
	First  = sets.First
	Follow = sets.Follow

	FollowStrict = sets.FollowStrict
)

type (
	Grammar = types.Grammar
	Expr    = types.Expr
	Token   = types.Token
	Span    = types.Span

	Set   = sets.Set
	Table = sets.Table

	ParseError = types.ParseError
)

const Epsilon = sets.Epsilon
