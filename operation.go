package sieve

// ExtractOperation - A generic function for obtaining the value a row holds for an indexed column. Returning an error aborts the operation which invoked the extraction.
type ExtractOperation func(row interface{}, column string) (interface{}, error)

// MutateOperation - A generic function for modifying a Rule in place, typically changing one or more of its indexed values. Returns whether a modification was applied.
type MutateOperation func(rule Rule) (bool, error)
