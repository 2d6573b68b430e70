package kb

import "fmt"

// KnowledgeBase holds a static rule list and a mutable fact store. Facts are
// only ever added, never retracted, which bounds both inference loops.
type KnowledgeBase struct {
	rules []Rule
	facts map[string]bool
	trace []string
}

// New returns an empty knowledge base.
func New() *KnowledgeBase {
	return &KnowledgeBase{facts: make(map[string]bool)}
}

// AddRule appends a rule. Rules are declared once per decision and never
// mutated afterwards.
func (kb *KnowledgeBase) AddRule(rule Rule) {
	kb.rules = append(kb.rules, rule)
}

// AddFact records a fact value.
func (kb *KnowledgeBase) AddFact(name string, value bool) {
	kb.facts[name] = value
}

// Fact returns the value of a fact and whether it is known.
func (kb *KnowledgeBase) Fact(name string) (value, known bool) {
	value, known = kb.facts[name]
	return value, known
}

// Trace returns the accumulated inference trace.
func (kb *KnowledgeBase) Trace() []string {
	out := make([]string, len(kb.trace))
	copy(out, kb.trace)
	return out
}

// Log appends an entry to the inference trace.
func (kb *KnowledgeBase) Log(format string, args ...any) {
	kb.trace = append(kb.trace, fmt.Sprintf(format, args...))
}

// literal truth under current facts: true, false, or unknown.
func (kb *KnowledgeBase) literalValue(l Literal) (value, known bool) {
	v, ok := kb.facts[l.Fact]
	if !ok {
		return false, false
	}
	if l.Negated {
		return !v, true
	}
	return v, true
}

func (kb *KnowledgeBase) clauseSatisfied(c Clause) bool {
	for _, l := range c {
		if v, known := kb.literalValue(l); known && v {
			return true
		}
	}
	return false
}

// clauseSatisfiable reports whether a clause can still become true: it is
// already satisfied or has at least one undetermined literal.
func (kb *KnowledgeBase) clauseSatisfiable(c Clause) bool {
	for _, l := range c {
		v, known := kb.literalValue(l)
		if !known || v {
			return true
		}
	}
	return false
}

// ForwardChain derives new facts by unit resolution until a fixed point:
// within a rule whose clauses are all still satisfiable, a clause with
// exactly one undetermined literal and every other literal false forces
// that literal. Terminates because facts are only added and the fact
// domain is finite.
func (kb *KnowledgeBase) ForwardChain() (facts map[string]bool, derivations []string) {
	for {
		changed := false
		for _, rule := range kb.rules {
			if !kb.ruleSatisfiable(rule) {
				continue
			}
			for _, clause := range rule.Clauses {
				lit, forced := kb.unitLiteral(clause)
				if !forced {
					continue
				}
				// Forcing ¬A records A=false; forcing A records A=true.
				kb.facts[lit.Fact] = !lit.Negated
				entry := fmt.Sprintf("Applied %s: derived %s=%t", rule.Name, lit.Fact, !lit.Negated)
				kb.trace = append(kb.trace, entry)
				derivations = append(derivations, entry)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	facts = make(map[string]bool, len(kb.facts))
	for k, v := range kb.facts {
		facts[k] = v
	}
	return facts, derivations
}

func (kb *KnowledgeBase) ruleSatisfiable(rule Rule) bool {
	for _, clause := range rule.Clauses {
		if !kb.clauseSatisfiable(clause) {
			return false
		}
	}
	return true
}

// unitLiteral returns the single undetermined literal of a clause when all
// other literals are known false and the clause is not already satisfied.
func (kb *KnowledgeBase) unitLiteral(c Clause) (Literal, bool) {
	var unit Literal
	found := false
	for _, l := range c {
		v, known := kb.literalValue(l)
		if known && v {
			return Literal{}, false // clause already satisfied
		}
		if !known {
			if found {
				return Literal{}, false // more than one open literal
			}
			unit, found = l, true
		}
	}
	return unit, found
}

// Query proves goal by backward chaining. A goal already in the fact store
// is returned as-is. Otherwise each rule clause mentioning the goal as a
// positive literal is tried: the goal holds if every co-literal's fact can
// itself be proved true. A goal reached twice on one proof path is a
// circular dependency, reported in the trace and treated as failure.
func (kb *KnowledgeBase) Query(goal string) (bool, []string) {
	return kb.prove(goal, map[string]bool{})
}

func (kb *KnowledgeBase) prove(goal string, visited map[string]bool) (bool, []string) {
	if v, known := kb.facts[goal]; known {
		return v, []string{fmt.Sprintf("Goal '%s' is a known fact: %t", goal, v)}
	}
	if visited[goal] {
		return false, []string{fmt.Sprintf("Circular dependency detected for '%s'", goal)}
	}
	visited[goal] = true

	chain := []string{fmt.Sprintf("Attempting to prove '%s'", goal)}
	for _, rule := range kb.rules {
		for _, clause := range rule.Clauses {
			if !clauseConcludes(clause, goal) {
				continue
			}
			proved, subChain := kb.proveCoLiterals(clause, goal, visited)
			chain = append(chain, subChain...)
			if proved {
				kb.facts[goal] = true
				chain = append(chain, fmt.Sprintf("Proved '%s' using %s", goal, rule.Name))
				return true, chain
			}
		}
	}
	return false, append(chain, fmt.Sprintf("Cannot prove '%s'", goal))
}

// proveCoLiterals proves every literal in the clause other than the goal.
// A negated co-literal ¬A is discharged by establishing A true, which
// forces the clause onto the goal by resolution.
func (kb *KnowledgeBase) proveCoLiterals(clause Clause, goal string, visited map[string]bool) (bool, []string) {
	var chain []string
	for _, l := range clause {
		if !l.Negated && l.Fact == goal {
			continue
		}
		result, subChain := kb.prove(l.Fact, copyVisited(visited))
		chain = append(chain, subChain...)
		if !result {
			return false, chain
		}
	}
	return true, chain
}

func clauseConcludes(c Clause, goal string) bool {
	for _, l := range c {
		if !l.Negated && l.Fact == goal {
			return true
		}
	}
	return false
}

func copyVisited(visited map[string]bool) map[string]bool {
	out := make(map[string]bool, len(visited))
	for k, v := range visited {
		out[k] = v
	}
	return out
}
