package sieve

// A Rule is a row which can report the value it holds for a named dimension.
// Reporting values is the only capability indexing requires of a Rule - matching
// is by value equality alone, and any further evaluation semantics belong to the
// client. Rules are compared by Go equality when stored, so a Rule must either
// be a pointer or a comparable value type.
type Rule interface {
	ValueAt(dimension string) interface{} // Returns the value this Rule holds for the given dimension, or nil if it holds none
}
