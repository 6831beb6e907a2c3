package ungram

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/b4fun/ungram-go/types"
)

// tokenPattern binds a token kind to the pattern matching it at the
// current position. Patterns are tried in order; first match wins.
type tokenPattern struct {
	kind    types.TokenKind
	pattern *regexp2.Regexp
	skip    bool
}

func mustCompileAnchored(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(`\A(?:`+pattern+`)`, regexp2.RE2)
}

var tokenPatterns = []tokenPattern{
	{skip: true, pattern: mustCompileAnchored(`[ \t\r\n]+`)},
	{skip: true, pattern: mustCompileAnchored(`#[^\r\n]*`)},
	{kind: types.TokenLiteral, pattern: mustCompileAnchored(`'[^'\r\n]*'`)},
	{kind: types.TokenIdent, pattern: mustCompileAnchored(`[A-Za-z0-9_]+`)},
	{kind: types.TokenEqual, pattern: mustCompileAnchored(`=`)},
	{kind: types.TokenColon, pattern: mustCompileAnchored(`:`)},
	{kind: types.TokenStar, pattern: mustCompileAnchored(`\*`)},
	{kind: types.TokenQuestion, pattern: mustCompileAnchored(`\?`)},
	{kind: types.TokenPipe, pattern: mustCompileAnchored(`\|`)},
	{kind: types.TokenParenOpen, pattern: mustCompileAnchored(`\(`)},
	{kind: types.TokenParenClose, pattern: mustCompileAnchored(`\)`)},
}

// Lex tokenizes the whole source up front. The trailing EOF token makes
// the parser's two-token lookahead total.
func Lex(source string) ([]types.Token, error) {
	var tokens []types.Token

	pos := 0
	for pos < len(source) {
		rest := source[pos:]

		width := 0
		for _, tp := range tokenPatterns {
			m, err := tp.pattern.FindStringMatch(rest)
			if err != nil || m == nil {
				continue
			}

			width = len(m.String())
			if !tp.skip {
				tokens = append(tokens, types.Token{
					Kind: tp.kind,
					Span: types.NewSpan(pos, pos+width),
				})
			}
			break
		}

		if width == 0 {
			loc := types.NewSpan(pos, pos).Location(source)
			if source[pos] == '\'' {
				return nil, &types.ErrUnterminatedLiteral{Loc: loc}
			}

			_, runeWidth := utf8.DecodeRuneInString(rest)
			return nil, &types.ErrInvalidToken{
				Text: rest[:runeWidth],
				Loc:  loc,
			}
		}

		pos += width
	}

	tokens = append(tokens, types.Token{
		Kind: types.TokenEOF,
		Span: types.NewSpan(len(source), len(source)),
	})
	return tokens, nil
}
