package provider

import (
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
	"github.com/go-sif/sieve/internal/util"
	"github.com/go-sif/sieve/ruletable"
	"github.com/hashicorp/go-multierror"
)

// An indexedProvider decorates a RuleProvider with indexed lookup, keeping a
// RuleTable in step with the wrapped provider's contents. All changes to an
// indexed Rule's dimension values must flow through Update, which unindexes
// the Rule for the duration of the change. NOT THREAD SAFE.
type indexedProvider struct {
	wrapped sieve.RuleProvider
	table   sieve.RuleTable
}

// CreateIndexedProvider decorates wrapped with a LookupProvider, indexing the
// wrapped provider's current Rules under its Signature's dimensions
func CreateIndexedProvider(wrapped sieve.RuleProvider) (sieve.LookupProvider, error) {
	if wrapped == nil {
		return nil, errors.MissingProviderError{}
	}
	table, err := ruletable.CreateRuleTable(wrapped.Signature(), wrapped.Rules())
	if err != nil {
		return nil, err
	}
	return &indexedProvider{wrapped: wrapped, table: table}, nil
}

// Signature returns the Signature shared by all Rules in this provider
func (p *indexedProvider) Signature() sieve.Signature {
	return p.wrapped.Signature()
}

// Rules returns all Rules currently held by this provider
func (p *indexedProvider) Rules() []sieve.Rule {
	return p.wrapped.Rules()
}

// Add introduces a Rule to the wrapped provider and indexes it
func (p *indexedProvider) Add(rule sieve.Rule) error {
	if err := p.wrapped.Add(rule); err != nil {
		return err
	}
	return p.table.Insert(rule)
}

// Remove discards a Rule from the wrapped provider and unindexes it. The
// Rule's dimension values must not have changed since it was indexed.
func (p *indexedProvider) Remove(rule sieve.Rule) error {
	if err := p.wrapped.Remove(rule); err != nil {
		return err
	}
	return p.table.Remove(rule)
}

// Lookup returns the Rules whose values equal the query's value for every
// queried dimension
func (p *indexedProvider) Lookup(query map[string]interface{}) (sieve.RuleIterator, error) {
	return p.table.LookupRules(query)
}

// Update unindexes rule, applies mutate to it, then reindexes it under the
// values it holds afterwards. Reindexing happens however mutate concludes,
// panics included, so a Rule can never be lost from the index by a failed
// change. Returns whether mutate reported a modification, along with any
// error raised by mutate or by reindexing.
func (p *indexedProvider) Update(rule sieve.Rule, mutate sieve.MutateOperation) (mutated bool, err error) {
	if err = p.table.Remove(rule); err != nil {
		return false, err
	}
	defer func() {
		if insertErr := p.table.Insert(rule); insertErr != nil {
			err = multierror.Append(err, insertErr).ErrorOrNil()
		}
	}()
	mutated, err = util.SafeMutateOperation(mutate)(rule)
	return mutated, err
}
