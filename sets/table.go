package sets

import (
	"fmt"
	"strings"

	"github.com/b4fun/ungram-go/types"
)

// Table maps rule names to their solved terminal sets. Every defined
// rule has an entry, possibly empty.
type Table map[string]Set

func newTable(grammar *types.Grammar) Table {
	table := make(Table, grammar.Len())
	for _, name := range grammar.RuleNames() {
		table[name] = NewSet()
	}
	return table
}

// Format renders one "Name: {...}" row per rule in declaration order.
func (t Table) Format(grammar *types.Grammar) string {
	sb := new(strings.Builder)
	for _, name := range grammar.RuleNames() {
		fmt.Fprintf(sb, "%s: %s\n", name, t[name])
	}
	return sb.String()
}
