package sieve_test

import (
	"strings"
	"testing"

	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/datasource/jsonl"
	"github.com/go-sif/sieve/provider"
	"github.com/go-sif/sieve/rule"
	"github.com/go-sif/sieve/usage"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const ruleDefinitions = `{"name": "web-gold", "properties": {"channel": "web", "tier": "gold", "percent": 10}}
{"name": "web-silver", "properties": {"channel": "web", "tier": "silver", "percent": 5}}
{"name": "store-gold", "properties": {"channel": "store", "tier": "gold", "percent": 8}}
{"name": "store-any", "properties": {"channel": "store"}}`

func drain(t *testing.T, it sieve.RuleIterator) []string {
	var names []string
	for it.HasNext() {
		r, err := it.Next()
		require.Nil(t, err)
		names = append(names, r.(*rule.PropertyRule).Name())
	}
	return names
}

func TestProviderChain(t *testing.T) {
	rules, err := jsonl.CreateParser(&jsonl.ParserConf{}).Parse(strings.NewReader(ruleDefinitions))
	require.Nil(t, err)
	require.Len(t, rules, 4)

	mem, err := provider.CreateMemoryProvider(rule.CreateSignature("channel", "tier"), rules...)
	require.Nil(t, err)
	indexed, err := provider.CreateIndexedProvider(mem)
	require.Nil(t, err)
	tracker := usage.CreateTracker(&usage.TrackerConf{Capacity: 16})
	tracked, err := provider.CreateUsageTrackingProvider(indexed, tracker)
	require.Nil(t, err)
	chain, err := provider.CreateInstrumentedProvider(tracked, nil)
	require.Nil(t, err)

	// multi-dimension lookups intersect
	it, err := chain.Lookup(map[string]interface{}{"channel": "web", "tier": "gold"})
	require.Nil(t, err)
	require.Equal(t, []string{"web-gold"}, drain(t, it))

	it, err = chain.Lookup(map[string]interface{}{"tier": "gold"})
	require.Nil(t, err)
	require.ElementsMatch(t, []string{"web-gold", "store-gold"}, drain(t, it))

	// a rule with no value for a dimension indexes under nil
	it, err = chain.Lookup(map[string]interface{}{"channel": "store", "tier": nil})
	require.Nil(t, err)
	require.Equal(t, []string{"store-any"}, drain(t, it))

	// updating a rule moves it between value sets
	webGold := rules[0]
	mutated, err := chain.Update(webGold, func(r sieve.Rule) (bool, error) {
		r.(*rule.PropertyRule).SetValue("tier", "platinum")
		return true, nil
	})
	require.Nil(t, err)
	require.True(t, mutated)

	it, err = chain.Lookup(map[string]interface{}{"tier": "gold"})
	require.Nil(t, err)
	require.Equal(t, []string{"store-gold"}, drain(t, it))

	it, err = chain.Lookup(map[string]interface{}{"channel": "web", "tier": "platinum"})
	require.Nil(t, err)
	require.Equal(t, []string{"web-gold"}, drain(t, it))

	// every rule served by a lookup or update was recorded
	require.Equal(t, uint64(4), tracker.Count(webGold))
	top := tracker.Top(1)
	require.Len(t, top, 1)
	require.Equal(t, sieve.Rule(webGold), top[0].Key)

	// the outermost stage saw every operation
	stats := chain.Stats()
	require.Equal(t, uint64(5), stats.Lookups)
	require.Equal(t, uint64(1), stats.Updates)
}

func TestProviderChainAddAndRemove(t *testing.T) {
	mem, err := provider.CreateMemoryProvider(rule.CreateSignature("channel"))
	require.Nil(t, err)
	indexed, err := provider.CreateIndexedProvider(mem)
	require.Nil(t, err)

	r1, err := rule.CreatePropertyRule("late-arrival", map[string]interface{}{"channel": "web"})
	require.Nil(t, err)
	require.Nil(t, indexed.Add(r1))

	it, err := indexed.Lookup(map[string]interface{}{"channel": "web"})
	require.Nil(t, err)
	require.Equal(t, []string{"late-arrival"}, drain(t, it))

	require.Nil(t, indexed.Remove(r1))
	it, err = indexed.Lookup(map[string]interface{}{"channel": "web"})
	require.Nil(t, err)
	require.Empty(t, drain(t, it))
	require.Empty(t, indexed.Rules())
}
