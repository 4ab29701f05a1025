package table

import (
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
)

// A rowIterator lazily yields the candidate rows which belong to every other
// matched set. Candidates come from the smallest matched set, and each is
// tested against the remaining sets in ascending size order, abandoning the
// candidate at its first miss.
type rowIterator struct {
	candidates []interface{}
	others     []rowSet
	pos        int
	next       interface{}
	ready      bool
}

func createRowIterator(candidates []interface{}, others []rowSet) sieve.RowIterator {
	return &rowIterator{candidates: candidates, others: others}
}

func createEmptyRowIterator() sieve.RowIterator {
	return &rowIterator{}
}

// advance scans forward to the next candidate present in every other set
func (ri *rowIterator) advance() {
	for ri.pos < len(ri.candidates) {
		row := ri.candidates[ri.pos]
		ri.pos++
		if ri.matches(row) {
			ri.next = row
			ri.ready = true
			return
		}
	}
}

// matches returns true iff row belongs to every other matched set
func (ri *rowIterator) matches(row interface{}) bool {
	for _, s := range ri.others {
		if !s[row] {
			return false
		}
	}
	return true
}

// HasNext returns true iff this RowIterator can produce another row
func (ri *rowIterator) HasNext() bool {
	if !ri.ready {
		ri.advance()
	}
	return ri.ready
}

// Next returns the next matching row if one is available, or an error otherwise
func (ri *rowIterator) Next() (interface{}, error) {
	if !ri.HasNext() {
		return nil, errors.NoMoreRowsError{}
	}
	ri.ready = false
	return ri.next, nil
}
