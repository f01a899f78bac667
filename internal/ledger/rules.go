package ledger

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule assigns Category to descriptions matching Pattern.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// RuleSpec is the uncompiled form of a Rule.
type RuleSpec struct {
	Pattern  string
	Category string
}

// RuleTable is an immutable ordered rule list; the first matching rule wins.
type RuleTable struct {
	rules []Rule
}

// NewRuleTable compiles specs in order. Patterns match case-insensitively.
func NewRuleTable(specs ...RuleSpec) (RuleTable, error) {
	rules := make([]Rule, 0, len(specs))
	for i, s := range specs {
		if strings.TrimSpace(s.Category) == "" {
			return RuleTable{}, fmt.Errorf("rule %d: empty category", i)
		}
		re, err := regexp.Compile("(?i)" + s.Pattern)
		if err != nil {
			return RuleTable{}, fmt.Errorf("rule %d (%s): %w", i, s.Category, err)
		}
		rules = append(rules, Rule{Pattern: re, Category: s.Category})
	}
	return RuleTable{rules: rules}, nil
}

var defaultRuleSpecs = []RuleSpec{
	{Pattern: "uber|taxi|transport", Category: "Transport"},
	{Pattern: "kaufland|carrefour|lidl|food", Category: "Food"},
	{Pattern: "netflix|spotify|youtube", Category: "Entertainment"},
	{Pattern: "rent|chirie", Category: "Housing"},
	{Pattern: "salary|income|transfer", Category: "IncomingTransfer"},
}

// DefaultRules returns the built-in five-category table.
func DefaultRules() RuleTable {
	t, err := NewRuleTable(defaultRuleSpecs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the category of the first rule matching the lower-cased
// description. An empty description matches nothing.
func (t RuleTable) Match(description string) (string, bool) {
	desc := strings.ToLower(description)
	if desc == "" {
		return "", false
	}
	for _, r := range t.rules {
		if r.Pattern.MatchString(desc) {
			return r.Category, true
		}
	}
	return "", false
}

// Rules returns a copy of the table in evaluation order.
func (t RuleTable) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules.
func (t RuleTable) Len() int { return len(t.rules) }
