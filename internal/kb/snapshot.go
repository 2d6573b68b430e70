package kb

// RuleInfo is the exported view of a rule.
type RuleInfo struct {
	Name        string `json:"name"`
	CNF         string `json:"cnf"`
	Description string `json:"description"`
}

// Snapshot is a point-in-time export of the knowledge base for inspection
// and testing.
type Snapshot struct {
	Rules []RuleInfo      `json:"rules"`
	Facts map[string]bool `json:"facts"`
	Trace []string        `json:"inference_chain"`
}

// Snapshot exports the rules, current facts, and trace.
func (kb *KnowledgeBase) Snapshot() Snapshot {
	rules := make([]RuleInfo, len(kb.rules))
	for i, r := range kb.rules {
		rules[i] = RuleInfo{Name: r.Name, CNF: r.CNF, Description: r.Description}
	}

	facts := make(map[string]bool, len(kb.facts))
	for k, v := range kb.facts {
		facts[k] = v
	}

	return Snapshot{Rules: rules, Facts: facts, Trace: kb.Trace()}
}
