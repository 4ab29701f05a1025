package sieve

// A RuleProvider grants access to a family of Rules sharing a single Signature.
// RuleProviders are rarely interacted with directly, instead being decorated by
// stages which contribute indexing, instrumentation or usage tracking without
// altering the underlying contract.
type RuleProvider interface {
	Signature() Signature   // Returns the Signature shared by all Rules in this provider
	Rules() []Rule          // Returns all Rules currently held by this provider
	Add(rule Rule) error    // Introduces a Rule to this provider
	Remove(rule Rule) error // Discards a Rule from this provider. Removing an absent Rule is a no-op.
}

// A LookupProvider is a RuleProvider which additionally supports indexed lookup
// of its Rules, along with the remove-mutate-reinsert discipline required to
// change a Rule's indexed values without corrupting the index.
type LookupProvider interface {
	RuleProvider
	Lookup(query map[string]interface{}) (RuleIterator, error) // Returns the Rules whose values equal the query's value for every queried dimension
	Update(rule Rule, mutate MutateOperation) (bool, error)    // Unindexes rule, applies mutate, then reindexes rule under its current values no matter how mutate concludes
}
