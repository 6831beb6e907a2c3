package ungram

import (
	"github.com/b4fun/ungram-go/types"
)

// ParseOptions represents options for parsing.
type ParseOptions struct {
	strictReferences bool
}

// ParseOption configures a ParseOptions.
type ParseOption func(*ParseOptions)

// ParseWithStrictReferences makes a reference to an undefined rule a
// parse error. The default treats such names as implicit terminals,
// which is how Ungrammar files refer to token nodes.
func ParseWithStrictReferences(strict bool) ParseOption {
	return func(opts *ParseOptions) {
		opts.strictReferences = strict
	}
}

func createParseOpts(opts ...ParseOption) *ParseOptions {
	parseOpts := &ParseOptions{}
	for _, o := range opts {
		o(parseOpts)
	}
	return parseOpts
}

// Parse parses Ungrammar source text into a grammar. It is a pure
// function of the source text: no partial grammar is returned on error.
func Parse(source string, opts ...ParseOption) (*types.Grammar, error) {
	parseOpts := createParseOpts(opts...)

	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	p := &parser{source: source, tokens: tokens}
	grammar, err := p.parseGrammar()
	if err != nil {
		return nil, err
	}

	if parseOpts.strictReferences {
		if err := p.checkReferences(grammar); err != nil {
			return nil, err
		}
	}

	return grammar, nil
}

// refSite records where a reference occurred, so strict-reference
// checking can point at the offending name.
type refSite struct {
	name string
	span types.Span
}

type parser struct {
	source string
	tokens []types.Token
	pos    int
	refs   []refSite
}

func (p *parser) peek() types.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekKind() types.TokenKind {
	return p.tokens[p.pos].Kind
}

// peekAheadKind looks n tokens past the current one. Past the end it
// reports EOF, since the token stream ends with an EOF token.
func (p *parser) peekAheadKind(n int) types.TokenKind {
	if p.pos+n >= len(p.tokens) {
		return types.TokenEOF
	}
	return p.tokens[p.pos+n].Kind
}

func (p *parser) next() types.Token {
	token := p.tokens[p.pos]
	if token.Kind != types.TokenEOF {
		p.pos++
	}
	return token
}

func (p *parser) expect(kind types.TokenKind) (types.Token, error) {
	if p.peekKind() != kind {
		return types.Token{}, p.errUnexpected(kind.String())
	}
	return p.next(), nil
}

func (p *parser) errUnexpected(want string) error {
	token := p.peek()
	return &types.ErrUnexpectedToken{
		Want: want,
		Got:  token.Kind,
		Loc:  token.Span.Location(p.source),
	}
}

func (p *parser) parseGrammar() (*types.Grammar, error) {
	if p.peekKind() == types.TokenEOF {
		return nil, &types.ErrEmptyGrammar{}
	}

	grammar := types.NewGrammar()
	for p.peekKind() != types.TokenEOF {
		if p.peekKind() == types.TokenParenClose {
			return nil, &types.ErrUnbalancedParen{
				Loc: p.peek().Span.Location(p.source),
			}
		}

		nameToken, err := p.expect(types.TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(types.TokenEqual); err != nil {
			return nil, err
		}

		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		name := nameToken.Text(p.source)
		if err := grammar.AddRule(name, body); err != nil {
			return nil, &types.ErrDuplicateRule{
				Name: name,
				Loc:  nameToken.Span.Location(p.source),
			}
		}
	}

	return grammar, nil
}

// parseExpr parses one rule body: an alternation of sequences.
// Alternation binds loosest, then juxtaposition, then postfix '*'/'?'.
func (p *parser) parseExpr() (types.Expr, error) {
	alt, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.peekKind() != types.TokenPipe {
		return alt, nil
	}

	exprs := []types.Expr{alt}
	for p.peekKind() == types.TokenPipe {
		p.next()
		alt, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, alt)
	}
	return types.NewAlternation(exprs), nil
}

func (p *parser) parseSequence() (types.Expr, error) {
	var exprs []types.Expr
	for p.atTerm() && !p.atRuleBoundary() {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, term)
	}

	switch len(exprs) {
	case 0:
		return nil, p.errUnexpected("an identifier, literal, or '('")
	case 1:
		return exprs[0], nil
	default:
		return types.NewSequence(exprs), nil
	}
}

// atRuleBoundary reports whether the lookahead starts the next rule.
// A subsequent '=' is the only thing that distinguishes a rule name
// from a reference to a rule defined somewhere else.
func (p *parser) atRuleBoundary() bool {
	return p.peekKind() == types.TokenIdent &&
		p.peekAheadKind(1) == types.TokenEqual
}

func (p *parser) atTerm() bool {
	switch p.peekKind() {
	case types.TokenIdent, types.TokenLiteral, types.TokenParenOpen:
		return true
	default:
		return false
	}
}

func (p *parser) parseTerm() (types.Expr, error) {
	// label:term
	if p.peekKind() == types.TokenIdent &&
		p.peekAheadKind(1) == types.TokenColon {
		labelToken := p.next()
		p.next()

		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return types.NewLabeled(labelToken.Text(p.source), child), nil
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(atom), nil
}

// parsePostfix associates '*' and '?' with the immediately preceding
// atom or parenthesized group.
func (p *parser) parsePostfix(expr types.Expr) types.Expr {
	for {
		switch p.peekKind() {
		case types.TokenStar:
			p.next()
			expr = types.NewRepetition(expr)
		case types.TokenQuestion:
			p.next()
			expr = types.NewOptional(expr)
		default:
			return expr
		}
	}
}

func (p *parser) parseAtom() (types.Expr, error) {
	switch p.peekKind() {
	case types.TokenLiteral:
		token := p.next()
		return types.NewLiteral(token.Text(p.source)), nil

	case types.TokenIdent:
		token := p.next()
		name := token.Text(p.source)
		p.refs = append(p.refs, refSite{name: name, span: token.Span})
		return types.NewReference(name), nil

	case types.TokenParenOpen:
		open := p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peekKind() != types.TokenParenClose {
			return nil, &types.ErrUnbalancedParen{
				Loc: open.Span.Location(p.source),
			}
		}
		p.next()
		return inner, nil

	default:
		return nil, p.errUnexpected("an identifier, literal, or '('")
	}
}

func (p *parser) checkReferences(grammar *types.Grammar) error {
	for _, ref := range p.refs {
		if !grammar.IsRule(ref.name) {
			return &types.ErrUndefinedReference{
				Name: ref.name,
				Loc:  ref.span.Location(p.source),
			}
		}
	}
	return nil
}
