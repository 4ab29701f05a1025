package sieve

// RowIterator is a generalized interface for lazily iterating over indexed rows,
// regardless of where they come from
type RowIterator interface {
	HasNext() bool              // Returns true iff this RowIterator can produce another row
	Next() (interface{}, error) // Returns the next row if one is available, or an error otherwise
}

// RuleIterator is a generalized interface for lazily iterating over Rules,
// regardless of where they come from
type RuleIterator interface {
	HasNext() bool       // Returns true iff this RuleIterator can produce another Rule
	Next() (Rule, error) // Returns the next Rule if one is available, or an error otherwise
}
