// Package kb implements a small propositional-logic knowledge base over
// CNF-encoded rules, with forward chaining to a fixed point and backward
// chaining with cycle detection. Every decision call builds its own
// KnowledgeBase; nothing is shared between calls.
package kb

// Literal is a possibly-negated reference to a named boolean fact.
type Literal struct {
	Fact    string
	Negated bool
}

// Pos returns a positive literal for fact.
func Pos(fact string) Literal { return Literal{Fact: fact} }

// Neg returns a negated literal for fact.
func Neg(fact string) Literal { return Literal{Fact: fact, Negated: true} }

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Fact
	}
	return l.Fact
}

// Clause is a disjunction of literals.
type Clause []Literal

// Rule is a conjunction of clauses (CNF). CNF holds the human-readable
// formula text for snapshots; Clauses is the machine form.
type Rule struct {
	Name        string
	CNF         string
	Clauses     []Clause
	Description string
}
