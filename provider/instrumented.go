package provider

import (
	"log/slog"
	"time"

	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
)

// InstrumentedConf configures an InstrumentedProvider
type InstrumentedConf struct {
	Logger *slog.Logger // Destination for structured operation logs. Defaults to slog.Default().
}

// ProviderStats counts the operations served by a provider stage
type ProviderStats struct {
	Lookups   uint64
	Updates   uint64
	Additions uint64
	Removals  uint64
}

// An InstrumentedProvider decorates a LookupProvider with structured operation
// logs and counters, without altering the underlying contract
type InstrumentedProvider struct {
	inner  sieve.LookupProvider
	logger *slog.Logger
	stats  ProviderStats
}

// CreateInstrumentedProvider decorates inner with operation logging and
// counting
func CreateInstrumentedProvider(inner sieve.LookupProvider, conf *InstrumentedConf) (*InstrumentedProvider, error) {
	if inner == nil {
		return nil, errors.MissingProviderError{}
	}
	if conf == nil {
		conf = &InstrumentedConf{}
	}
	logger := conf.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InstrumentedProvider{inner: inner, logger: logger}, nil
}

// Stats returns a snapshot of the operation counts recorded so far
func (p *InstrumentedProvider) Stats() ProviderStats {
	return p.stats
}

// Signature returns the Signature shared by all Rules in this provider
func (p *InstrumentedProvider) Signature() sieve.Signature {
	return p.inner.Signature()
}

// Rules returns all Rules currently held by this provider
func (p *InstrumentedProvider) Rules() []sieve.Rule {
	return p.inner.Rules()
}

// Add introduces a Rule to this provider
func (p *InstrumentedProvider) Add(rule sieve.Rule) error {
	p.stats.Additions++
	err := p.inner.Add(rule)
	if err != nil {
		p.logger.Error("add failed", "rule", rule, "error", err)
		return err
	}
	p.logger.Debug("rule added", "rule", rule)
	return nil
}

// Remove discards a Rule from this provider
func (p *InstrumentedProvider) Remove(rule sieve.Rule) error {
	p.stats.Removals++
	err := p.inner.Remove(rule)
	if err != nil {
		p.logger.Error("remove failed", "rule", rule, "error", err)
		return err
	}
	p.logger.Debug("rule removed", "rule", rule)
	return nil
}

// Lookup returns the Rules whose values equal the query's value for every
// queried dimension
func (p *InstrumentedProvider) Lookup(query map[string]interface{}) (sieve.RuleIterator, error) {
	p.stats.Lookups++
	start := time.Now()
	it, err := p.inner.Lookup(query)
	if err != nil {
		p.logger.Error("lookup failed", "dimensions", len(query), "error", err)
		return nil, err
	}
	p.logger.Debug("lookup served", "dimensions", len(query), "duration", time.Since(start))
	return it, nil
}

// Update unindexes rule, applies mutate to it, then reindexes it under the
// values it holds afterwards
func (p *InstrumentedProvider) Update(rule sieve.Rule, mutate sieve.MutateOperation) (bool, error) {
	p.stats.Updates++
	start := time.Now()
	mutated, err := p.inner.Update(rule, mutate)
	if err != nil {
		p.logger.Error("update failed", "rule", rule, "error", err)
		return mutated, err
	}
	p.logger.Debug("rule updated", "rule", rule, "mutated", mutated, "duration", time.Since(start))
	return mutated, nil
}
