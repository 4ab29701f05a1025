package errors

import (
	"fmt"
)

// NilColumnSetError occurs when a Table is constructed without a column set
type NilColumnSetError struct{}

// Error returns a textual representation of this NilColumnSetError
func (e NilColumnSetError) Error() string {
	return "Column set is nil"
}

// NilExtractOperationError occurs when a Table is constructed without an ExtractOperation
type NilExtractOperationError struct{}

// Error returns a textual representation of this NilExtractOperationError
func (e NilExtractOperationError) Error() string {
	return "Extract operation is nil"
}

// UnindexedColumnError occurs when a lookup names a column the Table does not index
type UnindexedColumnError struct{ Column string }

// Error returns a textual representation of this UnindexedColumnError
func (e UnindexedColumnError) Error() string {
	return fmt.Sprintf("Column %s is not indexed by this table", e.Column)
}

// MissingSignatureError occurs when a RuleTable or RuleProvider is constructed without a Signature
type MissingSignatureError struct{}

// Error returns a textual representation of this MissingSignatureError
func (e MissingSignatureError) Error() string {
	return "Signature is nil"
}

// MissingProviderError occurs when a provider stage is constructed without a provider to wrap
type MissingProviderError struct{}

// Error returns a textual representation of this MissingProviderError
func (e MissingProviderError) Error() string {
	return "Wrapped provider is nil"
}

// MissingTrackerError occurs when a usage-tracking stage is constructed without a Tracker
type MissingTrackerError struct{}

// Error returns a textual representation of this MissingTrackerError
func (e MissingTrackerError) Error() string {
	return "Usage tracker is nil"
}

// IncompatibleRowError occurs when a row handed to a RuleTable is not a Rule
type IncompatibleRowError struct{ Row interface{} }

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row of type %T is not a Rule", e.Row)
}

// NoMoreRowsError occurs when there are no more rows in a RowIterator
type NoMoreRowsError struct{}

// Error returns a textual representation of this NoMoreRowsError
func (e NoMoreRowsError) Error() string {
	return "No more rows"
}

// NoMoreRulesError occurs when there are no more Rules in a RuleIterator
type NoMoreRulesError struct{}

// Error returns a textual representation of this NoMoreRulesError
func (e NoMoreRulesError) Error() string {
	return "No more rules"
}

// InvalidRuleDefinitionError occurs when a rule definition line cannot be parsed
type InvalidRuleDefinitionError struct {
	Line   int
	Reason string
}

// Error returns a textual representation of this InvalidRuleDefinitionError
func (e InvalidRuleDefinitionError) Error() string {
	return fmt.Sprintf("Invalid rule definition on line %d: %s", e.Line, e.Reason)
}
