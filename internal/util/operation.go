package util

import (
	"fmt"

	"github.com/go-sif/sieve"
)

// SafeExtractOperation wraps an ExtractOperation such that panics are recovered
// and nice error messages are constructed. Errors returned by the wrapped
// operation pass through unaltered.
func SafeExtractOperation(extractOp sieve.ExtractOperation) (safeExtractOp sieve.ExtractOperation) {
	return func(row interface{}, column string) (value interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Extract Panic: %w\nColumn: %s\n%s", anErr, column, GetTrace())
				} else {
					err = fmt.Errorf("Extract Panic: %v\nColumn: %s\n%s", r, column, GetTrace())
				}
			}
		}()
		value, err = extractOp(row, column)
		return
	}
}

// SafeMutateOperation wraps a MutateOperation such that panics are recovered
// and nice error messages are constructed. Errors returned by the wrapped
// operation pass through unaltered.
func SafeMutateOperation(mutateOp sieve.MutateOperation) (safeMutateOp sieve.MutateOperation) {
	return func(rule sieve.Rule) (mutated bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Mutate Panic: %w\n%s", anErr, GetTrace())
				} else {
					err = fmt.Errorf("Mutate Panic: %v\n%s", r, GetTrace())
				}
			}
		}()
		mutated, err = mutateOp(rule)
		return
	}
}
