package sieve

// TableStats facilitates the inspection of a Table's index shape
type TableStats struct {
	// NumColumns is the number of indexed columns
	NumColumns int
	// NumRows is the number of rows referenced by the index, counted by column
	NumRows map[string]int
	// DistinctValues is the number of distinct indexed values, counted by column
	DistinctValues map[string]int
}
