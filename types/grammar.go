package types

import "fmt"

// Grammar is an ordered table of named rules. Declaration order is kept
// for deterministic output only; lookups go through the name table.
type Grammar struct {
	names []string
	rules map[string]Expr
}

func NewGrammar() *Grammar {
	return &Grammar{
		rules: make(map[string]Expr),
	}
}

func (g *Grammar) String() string {
	return fmt.Sprintf(
		"<Grammar #rules=%d start=%q>",
		len(g.names),
		g.Start(),
	)
}

// AddRule appends a named rule. Rule names are unique.
func (g *Grammar) AddRule(name string, body Expr) error {
	if _, exists := g.rules[name]; exists {
		return fmt.Errorf("duplicate rule name: %s", name)
	}

	g.names = append(g.names, name)
	g.rules[name] = body
	return nil
}

// RuleNames returns the rule names in declaration order.
func (g *Grammar) RuleNames() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	return names
}

// Body returns the named rule's combinator tree.
func (g *Grammar) Body(name string) (Expr, bool) {
	body, ok := g.rules[name]
	return body, ok
}

// IsRule reports whether name is a defined rule.
func (g *Grammar) IsRule(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Start returns the first-declared rule, the grammar's start rule.
func (g *Grammar) Start() string {
	if len(g.names) == 0 {
		return ""
	}
	return g.names[0]
}

func (g *Grammar) Len() int {
	return len(g.names)
}
