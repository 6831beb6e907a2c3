package ungram

import (
	"fmt"
	"strings"

	"github.com/b4fun/ungram-go/types"
)

// DumpExprTree renders a combinator tree with two-space indentation.
func DumpExprTree(expr types.Expr) string {
	sb := new(strings.Builder)
	dumpExpr(sb, expr, 0)
	return sb.String()
}

// DumpGrammarTree renders every rule's combinator tree in declaration
// order, one block per rule.
func DumpGrammarTree(grammar *types.Grammar) string {
	sb := new(strings.Builder)
	for _, name := range grammar.RuleNames() {
		body, _ := grammar.Body(name)
		fmt.Fprintf(sb, "%s\n", name)
		dumpExpr(sb, body, 2)
	}
	return sb.String()
}

func dumpExpr(sb *strings.Builder, expr types.Expr, indent int) {
	sb.WriteString(strings.Repeat(" ", indent))

	switch e := expr.(type) {
	case *types.Literal:
		fmt.Fprintf(sb, "Literal %q\n", e.Text)
	case *types.Reference:
		fmt.Fprintf(sb, "Reference %s\n", e.Name)
	case *types.Labeled:
		fmt.Fprintf(sb, "Labeled %s\n", e.Label)
		dumpExpr(sb, e.Expr, indent+2)
	case *types.Sequence:
		sb.WriteString("Sequence\n")
		for _, child := range e.Exprs {
			dumpExpr(sb, child, indent+2)
		}
	case *types.Alternation:
		sb.WriteString("Alternation\n")
		for _, child := range e.Exprs {
			dumpExpr(sb, child, indent+2)
		}
	case *types.Optional:
		sb.WriteString("Optional\n")
		dumpExpr(sb, e.Expr, indent+2)
	case *types.Repetition:
		sb.WriteString("Repetition\n")
		dumpExpr(sb, e.Expr, indent+2)
	default:
		fmt.Fprintf(sb, "%s\n", expr)
	}
}
