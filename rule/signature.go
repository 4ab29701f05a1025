package rule

import (
	"github.com/go-sif/sieve"
)

// A signature is a fixed set of dimension identifiers in declaration order
type signature struct {
	dimensions []string
}

// CreateSignature produces a Signature from the given dimension identifiers,
// collapsing duplicates and preserving first appearance order
func CreateSignature(dimensions ...string) sieve.Signature {
	seen := make(map[string]bool, len(dimensions))
	unique := make([]string, 0, len(dimensions))
	for _, dimension := range dimensions {
		if seen[dimension] {
			continue
		}
		seen[dimension] = true
		unique = append(unique, dimension)
	}
	return &signature{dimensions: unique}
}

// Dimensions returns the dimension identifiers which constitute the indexed
// columns for this family of Rules
func (s *signature) Dimensions() []string {
	dimensions := make([]string, len(s.dimensions))
	copy(dimensions, s.dimensions)
	return dimensions
}
