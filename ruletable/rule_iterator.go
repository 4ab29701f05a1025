package ruletable

import (
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
)

// A ruleIterator views a RowIterator over rows which are known to be Rules,
// because a RuleTable only ever indexes Rules
type ruleIterator struct {
	rows sieve.RowIterator
}

func createRuleIterator(rows sieve.RowIterator) sieve.RuleIterator {
	return &ruleIterator{rows: rows}
}

// HasNext returns true iff this RuleIterator can produce another Rule
func (ri *ruleIterator) HasNext() bool {
	return ri.rows.HasNext()
}

// Next returns the next matching Rule if one is available, or an error otherwise
func (ri *ruleIterator) Next() (sieve.Rule, error) {
	row, err := ri.rows.Next()
	if err != nil {
		return nil, errors.NoMoreRulesError{}
	}
	return row.(sieve.Rule), nil
}
