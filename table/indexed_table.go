package table

import (
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
	"github.com/go-sif/sieve/internal/util"
	"github.com/go-sif/sieve/internal/valuekey"
	"github.com/hashicorp/go-multierror"
)

// An indexedTable answers exact-match lookups from one valueIndex per column,
// never scanning rows it can rule out by value. NOT THREAD SAFE.
type indexedTable struct {
	columns []string
	extract sieve.ExtractOperation
	indices map[string]*valueIndex
}

// CreateIndexedTable produces a Table which indexes rows under the given
// columns, using extract to obtain the value a row holds for a column.
// Duplicate columns are collapsed, preserving first appearance order. The
// column set is fixed for the lifetime of the Table.
func CreateIndexedTable(columns []string, extract sieve.ExtractOperation) (sieve.Table, error) {
	if columns == nil {
		return nil, errors.NilColumnSetError{}
	}
	if extract == nil {
		return nil, errors.NilExtractOperationError{}
	}
	t := &indexedTable{
		columns: make([]string, 0, len(columns)),
		extract: util.SafeExtractOperation(extract),
		indices: make(map[string]*valueIndex, len(columns)),
	}
	for _, col := range columns {
		if _, ok := t.indices[col]; ok {
			continue
		}
		t.columns = append(t.columns, col)
		t.indices[col] = createValueIndex()
	}
	return t, nil
}

// Columns returns the columns this Table indexes, in construction order
func (t *indexedTable) Columns() []string {
	columns := make([]string, len(t.columns))
	copy(columns, t.columns)
	return columns
}

// keyRow produces the hashed canonical encoding of the value row currently
// holds for every indexed column, extracting all values before the caller
// touches any index
func (t *indexedTable) keyRow(row interface{}) (hashes []uint64, keys [][]byte, err error) {
	hashes = make([]uint64, len(t.columns))
	keys = make([][]byte, len(t.columns))
	for i, col := range t.columns {
		value, err := t.extract(row, col)
		if err != nil {
			return nil, nil, err
		}
		keys[i] = valuekey.Encode(value)
		hashes[i] = xxhash.Sum64(keys[i])
	}
	return
}

// Insert indexes row under the value it holds for each column at the time of
// the call. If any value cannot be extracted, no index is altered.
func (t *indexedTable) Insert(row interface{}) error {
	hashes, keys, err := t.keyRow(row)
	if err != nil {
		return err
	}
	for i, col := range t.columns {
		t.indices[col].add(hashes[i], keys[i], row)
	}
	return nil
}

// InsertAll indexes each row independently in order, aggregating any failures
// rather than stopping at the first. Rows which fail extraction are skipped.
func (t *indexedTable) InsertAll(rows []interface{}) error {
	var multierr *multierror.Error
	for _, row := range rows {
		if err := t.Insert(row); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}

// Remove unindexes row, locating its entries via the value it holds for each
// column at the time of the call. Entries indexed under values the row no
// longer holds are not found, so a row must be removed before its values are
// changed. Removing an absent row is a no-op.
func (t *indexedTable) Remove(row interface{}) error {
	hashes, keys, err := t.keyRow(row)
	if err != nil {
		return err
	}
	for i, col := range t.columns {
		t.indices[col].remove(hashes[i], keys[i], row)
	}
	return nil
}

// Lookup returns the rows whose values equal the query's value for every
// queried column. Querying a column this Table does not index is an error,
// and an empty query matches nothing. The candidate row set is resolved
// eagerly as the set of rows holding the rarest queried value, but membership
// in the remaining sets is tested lazily, as the returned iterator is drained.
func (t *indexedTable) Lookup(query map[string]interface{}) (sieve.RowIterator, error) {
	for col := range query {
		if _, ok := t.indices[col]; !ok {
			return nil, errors.UnindexedColumnError{Column: col}
		}
	}
	if len(query) == 0 {
		return createEmptyRowIterator(), nil
	}
	matches := make([]rowSet, 0, len(query))
	for col, value := range query {
		key := valuekey.Encode(value)
		b := t.indices[col].find(xxhash.Sum64(key), key)
		if b == nil {
			return createEmptyRowIterator(), nil
		}
		matches = append(matches, b.rows)
	}
	sort.Slice(matches, func(i, j int) bool { return len(matches[i]) < len(matches[j]) })
	candidates := make([]interface{}, 0, len(matches[0]))
	for row := range matches[0] {
		candidates = append(candidates, row)
	}
	return createRowIterator(candidates, matches[1:]), nil
}

// Stats returns a snapshot of index statistics for this Table
func (t *indexedTable) Stats() sieve.TableStats {
	stats := sieve.TableStats{
		NumColumns:     len(t.columns),
		NumRows:        make(map[string]int, len(t.columns)),
		DistinctValues: make(map[string]int, len(t.columns)),
	}
	for _, col := range t.columns {
		values, rows := t.indices[col].stats()
		stats.DistinctValues[col] = values
		stats.NumRows[col] = rows
	}
	return stats
}
