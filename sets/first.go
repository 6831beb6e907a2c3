package sets

import (
	"fmt"

	"github.com/b4fun/ungram-go/types"
)

// First computes the FIRST set of every rule: the terminals that can
// begin a derivation from it, plus ε when the rule can derive the empty
// string.
//
// Monotone fixed point: every pass recomputes each rule's set from the
// current table and only ever adds elements. The sets are bounded by
// the grammar's literal alphabet, so the iteration terminates, and it
// converges even for mutually recursive rules because references read
// the table by name instead of recursing into rule bodies.
func First(grammar *types.Grammar) Table {
	table := newTable(grammar)
	for changed := true; changed; {
		changed = false
		for _, name := range grammar.RuleNames() {
			body, _ := grammar.Body(name)
			if table[name].AddSet(firstOf(body, table)) {
				changed = true
			}
		}
	}
	return table
}

// firstOf evaluates the structural FIRST recursion against the current,
// possibly still growing, table. Combinator cases build fresh sets;
// only the leaf cases may return a set owned by the table, so callers
// must not mutate the result.
func firstOf(expr types.Expr, table Table) Set {
	switch e := expr.(type) {
	case *types.Literal:
		return NewSet(e.Text)

	case *types.Reference:
		if set, ok := table[e.Name]; ok {
			return set
		}
		// Unresolved references act as implicit terminals.
		return NewSet(e.Name)

	case *types.Labeled:
		return firstOf(e.Expr, table)

	case *types.Sequence:
		return firstOfSeq(e.Exprs, table)

	case *types.Alternation:
		rv := NewSet()
		for _, child := range e.Exprs {
			rv.AddSet(firstOf(child, table))
		}
		return rv

	case *types.Optional:
		rv := NewSet(Epsilon)
		rv.AddSet(firstOf(e.Expr, table))
		return rv

	case *types.Repetition:
		rv := NewSet(Epsilon)
		rv.AddSet(firstOf(e.Expr, table))
		return rv

	default:
		panic(fmt.Sprintf("unhandled expression %T", expr))
	}
}

// firstOfSeq folds FIRST across sequence members, consuming members
// while the prefix so far can still derive ε. An empty member list
// yields {ε}.
func firstOfSeq(exprs []types.Expr, table Table) Set {
	rv := NewSet()
	for _, child := range exprs {
		childFirst := firstOf(child, table)
		rv.AddSet(childFirst.WithoutEpsilon())
		if !childFirst.HasEpsilon() {
			return rv
		}
	}

	rv.Add(Epsilon)
	return rv
}
