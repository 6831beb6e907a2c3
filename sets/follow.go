package sets

import (
	"fmt"

	"github.com/b4fun/ungram-go/types"
)

// FollowOptions represents options for the FOLLOW solver.
type FollowOptions struct {
	strict bool
}

// FollowOption configures a FollowOptions.
type FollowOption func(*FollowOptions)

// FollowStrict disables the repetition self-loop: the FIRST set of a
// repeated body is then not counted as following references at the tail
// of that body.
func FollowStrict(strict bool) FollowOption {
	return func(opts *FollowOptions) {
		opts.strict = strict
	}
}

// continuation describes what may come after a node occurrence: the
// terminals that can start the rest of the enclosing rule, and whether
// the enclosing rule's own FOLLOW set propagates through (everything to
// the right can derive ε, or the node is last).
type continuation struct {
	first   Set
	inherit bool
}

// Follow computes the FOLLOW set of every rule from a completed FIRST
// table: the terminals that can immediately follow an occurrence of the
// rule in some derivation from the start rule.
//
// The start rule receives no end-of-input marker; its FOLLOW set stays
// empty unless some rule references it. Same fixed-point argument as
// First, now bounded by terminal alphabet size times rule count.
func Follow(grammar *types.Grammar, first Table, opts ...FollowOption) Table {
	followOpts := &FollowOptions{}
	for _, o := range opts {
		o(followOpts)
	}

	solver := &followSolver{first: first, strict: followOpts.strict}
	table := newTable(grammar)
	for changed := true; changed; {
		changed = false
		for _, name := range grammar.RuleNames() {
			body, _ := grammar.Body(name)
			cont := continuation{first: NewSet(), inherit: true}
			if solver.walk(body, table[name], cont, table) {
				changed = true
			}
		}
	}
	return table
}

type followSolver struct {
	first  Table
	strict bool
}

// walk visits every reference occurrence in expr. ruleFollow is the
// enclosing rule's current FOLLOW set; cont describes the occurrence's
// continuation. Reports whether any FOLLOW set grew.
func (s *followSolver) walk(expr types.Expr, ruleFollow Set, cont continuation, table Table) bool {
	switch e := expr.(type) {
	case *types.Literal:
		return false

	case *types.Reference:
		target, ok := table[e.Name]
		if !ok {
			// Implicit terminal, no FOLLOW entry.
			return false
		}
		changed := target.AddSet(cont.first)
		if cont.inherit && target.AddSet(ruleFollow) {
			changed = true
		}
		return changed

	case *types.Labeled:
		return s.walk(e.Expr, ruleFollow, cont, table)

	case *types.Sequence:
		changed := false
		for i, child := range e.Exprs {
			tailFirst := firstOfSeq(e.Exprs[i+1:], s.first)

			childCont := continuation{
				first:   tailFirst.WithoutEpsilon(),
				inherit: false,
			}
			if tailFirst.HasEpsilon() {
				childCont.first.AddSet(cont.first)
				childCont.inherit = cont.inherit
			}

			if s.walk(child, ruleFollow, childCont, table) {
				changed = true
			}
		}
		return changed

	case *types.Alternation:
		// Each alternative independently inherits the alternation's
		// own continuation.
		changed := false
		for _, child := range e.Exprs {
			if s.walk(child, ruleFollow, cont, table) {
				changed = true
			}
		}
		return changed

	case *types.Optional:
		return s.walk(e.Expr, ruleFollow, cont, table)

	case *types.Repetition:
		// The repeated body can be followed by another occurrence of
		// itself, so its own FIRST set feeds FOLLOW at its tail.
		childCont := continuation{
			first:   NewSet(),
			inherit: cont.inherit,
		}
		childCont.first.AddSet(cont.first)
		if !s.strict {
			childCont.first.AddSet(firstOf(e.Expr, s.first).WithoutEpsilon())
		}
		return s.walk(e.Expr, ruleFollow, childCont, table)

	default:
		panic(fmt.Sprintf("unhandled expression %T", expr))
	}
}
