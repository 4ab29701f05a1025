package sieve

// A Signature declares the dimensions shared by a family of Rules. Tables
// derive their indexed columns from a Signature, so a Signature is expected
// not to change for the lifetime of any index built from it.
type Signature interface {
	Dimensions() []string // Returns the dimension identifiers which constitute the indexed columns for this family of Rules
}
