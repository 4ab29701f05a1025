package provider

import (
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
	"github.com/go-sif/sieve/usage"
)

// A usageTrackingProvider decorates a LookupProvider, recording one usage
// event for every Rule yielded by Lookup and every Rule handed to Update
type usageTrackingProvider struct {
	inner   sieve.LookupProvider
	tracker usage.Tracker
}

// CreateUsageTrackingProvider decorates inner with usage tracking. Every Rule
// served by the returned provider is recorded against the given Tracker.
func CreateUsageTrackingProvider(inner sieve.LookupProvider, tracker usage.Tracker) (sieve.LookupProvider, error) {
	if inner == nil {
		return nil, errors.MissingProviderError{}
	}
	if tracker == nil {
		return nil, errors.MissingTrackerError{}
	}
	return &usageTrackingProvider{inner: inner, tracker: tracker}, nil
}

// Signature returns the Signature shared by all Rules in this provider
func (p *usageTrackingProvider) Signature() sieve.Signature {
	return p.inner.Signature()
}

// Rules returns all Rules currently held by this provider
func (p *usageTrackingProvider) Rules() []sieve.Rule {
	return p.inner.Rules()
}

// Add introduces a Rule to this provider
func (p *usageTrackingProvider) Add(rule sieve.Rule) error {
	return p.inner.Add(rule)
}

// Remove discards a Rule from this provider
func (p *usageTrackingProvider) Remove(rule sieve.Rule) error {
	return p.inner.Remove(rule)
}

// Lookup returns the Rules whose values equal the query's value for every
// queried dimension, recording a usage event for each Rule as it is yielded
func (p *usageTrackingProvider) Lookup(query map[string]interface{}) (sieve.RuleIterator, error) {
	it, err := p.inner.Lookup(query)
	if err != nil {
		return nil, err
	}
	return &trackedRuleIterator{rules: it, tracker: p.tracker}, nil
}

// Update unindexes rule, applies mutate to it, then reindexes it under the
// values it holds afterwards, recording a usage event for the Rule
func (p *usageTrackingProvider) Update(rule sieve.Rule, mutate sieve.MutateOperation) (bool, error) {
	p.tracker.Record(rule)
	return p.inner.Update(rule, mutate)
}

// A trackedRuleIterator records each Rule it yields as used
type trackedRuleIterator struct {
	rules   sieve.RuleIterator
	tracker usage.Tracker
}

// HasNext returns true iff this RuleIterator can produce another Rule
func (it *trackedRuleIterator) HasNext() bool {
	return it.rules.HasNext()
}

// Next returns the next matching Rule if one is available, or an error otherwise
func (it *trackedRuleIterator) Next() (sieve.Rule, error) {
	rule, err := it.rules.Next()
	if err != nil {
		return nil, err
	}
	it.tracker.Record(rule)
	return rule, nil
}
