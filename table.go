package sieve

// A Table is an exact-match index over opaque rows. A Table maintains one
// value index per column, with the column set fixed at construction, and
// answers multi-column lookups by intersecting per-column matches in time
// proportional to the smallest matched set rather than to the total number
// of indexed rows. Rows are tracked by Go equality, so a row must be a
// pointer or a comparable value. Tables perform no locking and are intended
// for use from a single goroutine, or behind external synchronization.
type Table interface {
	Columns() []string                                        // Returns the columns this Table indexes, in construction order
	Insert(row interface{}) error                             // Indexes row under the value it holds for each column at the time of the call
	InsertAll(rows []interface{}) error                       // Indexes each row independently in order, aggregating any failures rather than stopping at the first
	Remove(row interface{}) error                             // Unindexes row, locating its entries via the values it holds at the time of the call. Removing an absent row is a no-op.
	Lookup(query map[string]interface{}) (RowIterator, error) // Returns the rows whose values equal the query's value for every queried column
	Stats() TableStats                                        // Returns a snapshot of index statistics for this Table
}

// A RuleTable is a Table bound to Rules. Its indexed columns are the dimensions
// of a Signature, and each Rule's column values are obtained from Rule.ValueAt.
type RuleTable interface {
	Table
	Signature() Signature                                           // Returns the Signature whose dimensions this RuleTable indexes
	LookupRules(query map[string]interface{}) (RuleIterator, error) // Returns the Rules whose values equal the query's value for every queried dimension
}
