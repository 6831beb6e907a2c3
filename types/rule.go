package types

import (
	"fmt"
	"strings"
)

// Expr is one node of a rule body. The variant set is closed: the set
// solvers switch exhaustively over the concrete types, and anything
// else is a programming error.
type Expr interface {
	fmt.Stringer

	exprVariant()
}

// Literal matches exactly the quoted terminal text.
type Literal struct {
	Text string
}

var _ Expr = (*Literal)(nil)

func NewLiteral(text string) *Literal {
	return &Literal{Text: text}
}

func (e *Literal) exprVariant() {}

func (e *Literal) String() string {
	return fmt.Sprintf("'%s'", e.Text)
}

// Reference refers to another rule by name. The reference may be
// forward or cyclic; it is resolved by name against the grammar's rule
// table, never by embedding the referenced body.
type Reference struct {
	Name string
}

var _ Expr = (*Reference)(nil)

func NewReference(name string) *Reference {
	return &Reference{Name: name}
}

func (e *Reference) exprVariant() {}

func (e *Reference) String() string {
	return e.Name
}

// Sequence matches its members in order.
type Sequence struct {
	Exprs []Expr
}

var _ Expr = (*Sequence)(nil)

func NewSequence(exprs []Expr) *Sequence {
	return &Sequence{Exprs: exprs}
}

func (e *Sequence) exprVariant() {}

func (e *Sequence) String() string {
	return joinExprs(e.Exprs, " ")
}

// Alternation matches exactly one of its members.
type Alternation struct {
	Exprs []Expr
}

var _ Expr = (*Alternation)(nil)

func NewAlternation(exprs []Expr) *Alternation {
	return &Alternation{Exprs: exprs}
}

func (e *Alternation) exprVariant() {}

func (e *Alternation) String() string {
	return joinExprs(e.Exprs, " | ")
}

// Optional matches its member zero or one times.
type Optional struct {
	Expr Expr
}

var _ Expr = (*Optional)(nil)

func NewOptional(expr Expr) *Optional {
	return &Optional{Expr: expr}
}

func (e *Optional) exprVariant() {}

func (e *Optional) String() string {
	return groupExpr(e.Expr) + "?"
}

// Repetition matches its member zero or more times.
type Repetition struct {
	Expr Expr
}

var _ Expr = (*Repetition)(nil)

func NewRepetition(expr Expr) *Repetition {
	return &Repetition{Expr: expr}
}

func (e *Repetition) exprVariant() {}

func (e *Repetition) String() string {
	return groupExpr(e.Expr) + "*"
}

// Labeled attaches a field label to its member. Labels are ignored
// metadata: FIRST and FOLLOW look straight through them.
type Labeled struct {
	Label string
	Expr  Expr
}

var _ Expr = (*Labeled)(nil)

func NewLabeled(label string, expr Expr) *Labeled {
	return &Labeled{Label: label, Expr: expr}
}

func (e *Labeled) exprVariant() {}

func (e *Labeled) String() string {
	return e.Label + ":" + groupExpr(e.Expr)
}

// groupExpr renders expr, parenthesized when its rendering would
// otherwise not read as a single term.
func groupExpr(expr Expr) string {
	switch expr.(type) {
	case *Sequence, *Alternation:
		return "(" + expr.String() + ")"
	default:
		return expr.String()
	}
}

func joinExprs(exprs []Expr, sep string) string {
	var sb strings.Builder
	for i, expr := range exprs {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(groupExpr(expr))
	}
	return sb.String()
}
