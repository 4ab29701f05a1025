package provider

import (
	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
)

// A memoryProvider is a slice-backed RuleProvider, serving as the innermost
// stage of a provider chain. NOT THREAD SAFE.
type memoryProvider struct {
	signature sieve.Signature
	rules     []sieve.Rule
}

// CreateMemoryProvider produces an in-memory RuleProvider over the given
// initial Rules
func CreateMemoryProvider(signature sieve.Signature, rules ...sieve.Rule) (sieve.RuleProvider, error) {
	if signature == nil {
		return nil, errors.MissingSignatureError{}
	}
	held := make([]sieve.Rule, len(rules))
	copy(held, rules)
	return &memoryProvider{signature: signature, rules: held}, nil
}

// Signature returns the Signature shared by all Rules in this provider
func (p *memoryProvider) Signature() sieve.Signature {
	return p.signature
}

// Rules returns all Rules currently held by this provider
func (p *memoryProvider) Rules() []sieve.Rule {
	rules := make([]sieve.Rule, len(p.rules))
	copy(rules, p.rules)
	return rules
}

// Add introduces a Rule to this provider
func (p *memoryProvider) Add(rule sieve.Rule) error {
	p.rules = append(p.rules, rule)
	return nil
}

// Remove discards the first held Rule equal to rule. Removing an absent Rule
// is a no-op.
func (p *memoryProvider) Remove(rule sieve.Rule) error {
	for i, held := range p.rules {
		if held == rule {
			p.rules = append(p.rules[:i], p.rules[i+1:]...)
			return nil
		}
	}
	return nil
}
