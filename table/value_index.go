package table

import (
	"bytes"
)

// A rowSet is an unordered collection of indexed rows with unique membership
type rowSet map[interface{}]bool

// A valueBucket holds every row indexed under a single column value, alongside
// the value's canonical encoding for collision resolution
type valueBucket struct {
	key  []byte
	rows rowSet
}

// A valueIndex maps the hash of a canonical value encoding to the rows indexed
// under that value, for a single column. Buckets whose encodings share a hash
// are chained, and resolved by comparing the encodings themselves. NOT THREAD
// SAFE.
type valueIndex struct {
	buckets map[uint64][]*valueBucket
}

func createValueIndex() *valueIndex {
	return &valueIndex{buckets: make(map[uint64][]*valueBucket)}
}

// find returns the bucket for the given canonical value encoding, or nil if no
// row is indexed under the value
func (vi *valueIndex) find(hash uint64, key []byte) *valueBucket {
	for _, b := range vi.buckets[hash] {
		if bytes.Equal(b.key, key) {
			return b
		}
	}
	return nil
}

// add indexes row under the given value encoding, creating a bucket if the
// value has not been seen before
func (vi *valueIndex) add(hash uint64, key []byte, row interface{}) {
	b := vi.find(hash, key)
	if b == nil {
		b = &valueBucket{key: key, rows: make(rowSet)}
		vi.buckets[hash] = append(vi.buckets[hash], b)
	}
	b.rows[row] = true
}

// remove unindexes row from the given value encoding, pruning the bucket and
// chain if they empty. Unknown values and absent rows are ignored.
func (vi *valueIndex) remove(hash uint64, key []byte, row interface{}) {
	chain := vi.buckets[hash]
	for i, b := range chain {
		if !bytes.Equal(b.key, key) {
			continue
		}
		delete(b.rows, row)
		if len(b.rows) == 0 {
			chain[i] = chain[len(chain)-1]
			if len(chain) == 1 {
				delete(vi.buckets, hash)
			} else {
				vi.buckets[hash] = chain[:len(chain)-1]
			}
		}
		return
	}
}

// stats tallies the distinct values and total row references held by this index
func (vi *valueIndex) stats() (values int, rows int) {
	for _, chain := range vi.buckets {
		values += len(chain)
		for _, b := range chain {
			rows += len(b.rows)
		}
	}
	return
}
