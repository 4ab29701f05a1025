package ruletable

import (
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
	"github.com/go-sif/sieve/table"
)

// A ruleTable derives its indexed columns from a Signature's dimensions and
// extracts column values by asking each Rule directly. NOT THREAD SAFE.
type ruleTable struct {
	signature sieve.Signature
	table     sieve.Table
}

// ExtractRuleValue is the ExtractOperation of every RuleTable: the row must be
// a Rule, and its value for a column is whatever it reports via ValueAt.
func ExtractRuleValue(row interface{}, column string) (interface{}, error) {
	rule, ok := row.(sieve.Rule)
	if !ok {
		return nil, errors.IncompatibleRowError{Row: row}
	}
	return rule.ValueAt(column), nil
}

// CreateRuleTable produces a RuleTable indexing Rules under the dimensions of
// the given Signature, pre-populated with the given Rules. Construction fails
// if any initial Rule cannot be indexed.
func CreateRuleTable(signature sieve.Signature, rules []sieve.Rule) (sieve.RuleTable, error) {
	if signature == nil {
		return nil, errors.MissingSignatureError{}
	}
	t, err := table.CreateIndexedTable(signature.Dimensions(), ExtractRuleValue)
	if err != nil {
		return nil, err
	}
	rt := &ruleTable{signature: signature, table: t}
	if err = rt.InsertAll(rulesToRows(rules)); err != nil {
		return nil, err
	}
	return rt, nil
}

func rulesToRows(rules []sieve.Rule) []interface{} {
	rows := make([]interface{}, len(rules))
	for i, rule := range rules {
		rows[i] = rule
	}
	return rows
}

// Signature returns the Signature whose dimensions this RuleTable indexes
func (rt *ruleTable) Signature() sieve.Signature {
	return rt.signature
}

// Columns returns the columns this RuleTable indexes, in Signature order
func (rt *ruleTable) Columns() []string {
	return rt.table.Columns()
}

// Insert indexes row under the value it holds for each dimension at the time
// of the call
func (rt *ruleTable) Insert(row interface{}) error {
	return rt.table.Insert(row)
}

// InsertAll indexes each row independently in order, aggregating any failures
// rather than stopping at the first
func (rt *ruleTable) InsertAll(rows []interface{}) error {
	return rt.table.InsertAll(rows)
}

// Remove unindexes row, locating its entries via the values it holds at the
// time of the call. Removing an absent row is a no-op.
func (rt *ruleTable) Remove(row interface{}) error {
	return rt.table.Remove(row)
}

// Lookup returns the rows whose values equal the query's value for every
// queried dimension
func (rt *ruleTable) Lookup(query map[string]interface{}) (sieve.RowIterator, error) {
	return rt.table.Lookup(query)
}

// LookupRules returns the Rules whose values equal the query's value for every
// queried dimension
func (rt *ruleTable) LookupRules(query map[string]interface{}) (sieve.RuleIterator, error) {
	rows, err := rt.table.Lookup(query)
	if err != nil {
		return nil, err
	}
	return createRuleIterator(rows), nil
}

// Stats returns a snapshot of index statistics for this RuleTable
func (rt *ruleTable) Stats() sieve.TableStats {
	return rt.table.Stats()
}
