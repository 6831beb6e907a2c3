package types

import "fmt"

// ParseError is implemented by every parse-time error. Position reports
// where in the source the error was detected.
type ParseError interface {
	error

	Position() Location
}

// ErrEmptyGrammar reports source text that defines no rules.
type ErrEmptyGrammar struct{}

var _ ParseError = (*ErrEmptyGrammar)(nil)

func (e *ErrEmptyGrammar) Error() string {
	return "empty grammar: no rules defined"
}

func (e *ErrEmptyGrammar) Position() Location {
	return Location{Line: 1, Column: 1}
}

// ErrInvalidToken reports source text no token pattern matches.
type ErrInvalidToken struct {
	Text string
	Loc  Location
}

var _ ParseError = (*ErrInvalidToken)(nil)

func (e *ErrInvalidToken) Error() string {
	return fmt.Sprintf("invalid token %q at %s", e.Text, e.Loc)
}

func (e *ErrInvalidToken) Position() Location {
	return e.Loc
}

// ErrUnterminatedLiteral reports a string literal with no closing quote
// before the end of the line.
type ErrUnterminatedLiteral struct {
	Loc Location
}

var _ ParseError = (*ErrUnterminatedLiteral)(nil)

func (e *ErrUnterminatedLiteral) Error() string {
	return fmt.Sprintf("unterminated string literal at %s", e.Loc)
}

func (e *ErrUnterminatedLiteral) Position() Location {
	return e.Loc
}

// ErrUnexpectedToken reports a token the parser cannot accept here.
type ErrUnexpectedToken struct {
	Want string
	Got  TokenKind
	Loc  Location
}

var _ ParseError = (*ErrUnexpectedToken)(nil)

func (e *ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("expected %s, got %s at %s", e.Want, e.Got, e.Loc)
}

func (e *ErrUnexpectedToken) Position() Location {
	return e.Loc
}

// ErrUnbalancedParen reports a parenthesized group that never closes,
// or a ')' with no matching '('. The position names the offending
// parenthesis.
type ErrUnbalancedParen struct {
	Loc Location
}

var _ ParseError = (*ErrUnbalancedParen)(nil)

func (e *ErrUnbalancedParen) Error() string {
	return fmt.Sprintf("unbalanced parenthesis at %s", e.Loc)
}

func (e *ErrUnbalancedParen) Position() Location {
	return e.Loc
}

// ErrDuplicateRule reports a second definition of an existing rule.
type ErrDuplicateRule struct {
	Name string
	Loc  Location
}

var _ ParseError = (*ErrDuplicateRule)(nil)

func (e *ErrDuplicateRule) Error() string {
	return fmt.Sprintf("duplicate rule %q at %s", e.Name, e.Loc)
}

func (e *ErrDuplicateRule) Position() Location {
	return e.Loc
}

// ErrUndefinedReference reports a reference to a rule that is never
// defined. Only raised under strict-reference parsing; the default
// policy treats such names as implicit terminals.
type ErrUndefinedReference struct {
	Name string
	Loc  Location
}

var _ ParseError = (*ErrUndefinedReference)(nil)

func (e *ErrUndefinedReference) Error() string {
	return fmt.Sprintf("reference to undefined rule %q at %s", e.Name, e.Loc)
}

func (e *ErrUndefinedReference) Position() Location {
	return e.Loc
}
