package core

import "fmt"

// Apply runs every rule of set against rs in order and returns rs.
// The row-set is mutated in place.
//
// Columns named by a rule but absent from rs are skipped. Null cells are
// never passed to a rule. The only error is ErrTransformFailure, returned
// when a rule faults unexpectedly; rs may then be partially transformed.
func Apply(set RuleSet, rs *RowSet) (*RowSet, error) {
	if _, err := ApplyDetailed(set, rs); err != nil {
		return rs, err
	}
	return rs, nil
}

// ApplyDetailed is Apply with a per-rule account of the columns touched,
// for reporting.
func ApplyDetailed(set RuleSet, rs *RowSet) ([]RuleResult, error) {
	results := make([]RuleResult, 0, len(set.Rules))
	for _, rule := range set.Rules {
		res, err := ApplyRule(rule, rs)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ApplyRule applies a single rule to rs. A panic inside the rule is
// recovered and reported as ErrTransformFailure naming the rule and column.
func ApplyRule(rule Rule, rs *RowSet) (res RuleResult, err error) {
	res = RuleResult{Kind: rule.Kind(), Describe: rule.Describe()}

	var column string
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s on column %q: %v", ErrTransformFailure, rule.Kind(), column, p)
		}
	}()

	for _, column = range rule.Targets() {
		if !rs.HasColumn(column) {
			res.Missing = append(res.Missing, column)
			continue
		}
		res.Applied = append(res.Applied, column)

		for _, row := range rs.rows {
			c := row[column]
			if c.IsNull() {
				continue
			}
			out := rule.Transform(column, c)
			if out.IsNull() {
				res.Nulled++
			} else {
				res.Changed++
			}
			row[column] = out
		}
	}
	return res, nil
}
