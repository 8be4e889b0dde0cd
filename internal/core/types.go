package core

// Category names a document type with its own rule set.
type Category string

const (
	CategoryEnrollment Category = "Enrollment"
	CategoryUsage      Category = "Usage"
	CategoryUnknown    Category = "Unknown"
)

// RuleSetInfo contains display information about a rule set.
type RuleSetInfo struct {
	Category Category // Document category: "Enrollment", "Usage"
	Keyword  string   // Lowercase filename keyword that selects this set
	Priority int      // Lower values are matched first by Classify
}

// RuleSet is the ordered list of rules applied to one document category.
type RuleSet struct {
	Info  RuleSetInfo
	Rules []Rule
}

// Columns returns every column referenced by the rule set, in rule order,
// without duplicates.
func (s RuleSet) Columns() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Rules {
		for _, c := range r.Targets() {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// RuleResult records what one rule did to a row-set.
type RuleResult struct {
	Kind     RuleKind
	Applied  []string // Target columns present in the row-set
	Missing  []string // Target columns absent from the row-set (skipped)
	Changed  int      // Non-null cells rewritten
	Nulled   int      // Cells that became null (date parse failures)
	Describe string
}
