package usage

import (
	"log"
	"sort"
)

// TrackerConf configures a frequency Tracker
type TrackerConf struct {
	Capacity     int     // Number of tracked keys which triggers a bulk eviction when exceeded. Defaults to 1024.
	KeepFraction float64 // Fraction of Capacity retained by a bulk eviction. Defaults to 0.5.
}

// A tracker is a dictionary-backed frequency Tracker. NOT THREAD SAFE.
type tracker struct {
	conf   *TrackerConf
	counts map[interface{}]uint64
}

// CreateTracker produces a frequency Tracker
func CreateTracker(conf *TrackerConf) Tracker {
	if conf == nil {
		conf = &TrackerConf{}
	}
	if conf.Capacity == 0 {
		conf.Capacity = 1024
	}
	if conf.Capacity < 0 {
		log.Panicf("Tracker capacity %d must be positive", conf.Capacity)
	}
	if conf.KeepFraction == 0 {
		conf.KeepFraction = 0.5
	}
	if conf.KeepFraction < 0 || conf.KeepFraction > 1 {
		log.Panicf("Tracker keep fraction %f must be within (0, 1]", conf.KeepFraction)
	}
	return &tracker{conf: conf, counts: make(map[interface{}]uint64)}
}

// Record counts one usage of key, evicting the least-used keys if the
// dictionary has grown past capacity
func (t *tracker) Record(key interface{}) {
	t.counts[key]++
	if len(t.counts) > t.conf.Capacity {
		t.evict()
	}
}

// Count returns the recorded usage count for key, or 0 if key is not tracked
func (t *tracker) Count(key interface{}) uint64 {
	return t.counts[key]
}

// Len returns the number of tracked keys
func (t *tracker) Len() int {
	return len(t.counts)
}

// Top returns the n most-used entries, most-used first
func (t *tracker) Top(n int) []Entry {
	entries := t.sortedEntries()
	if n < 0 {
		n = 0
	}
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// evict rebuilds the dictionary from the most-used entries, retaining the
// configured fraction of capacity and discarding the rest
func (t *tracker) evict() {
	entries := t.sortedEntries()
	keep := int(float64(t.conf.Capacity) * t.conf.KeepFraction)
	if keep > len(entries) {
		keep = len(entries)
	}
	counts := make(map[interface{}]uint64, keep)
	for _, entry := range entries[:keep] {
		counts[entry.Key] = entry.Count
	}
	t.counts = counts
}

func (t *tracker) sortedEntries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for key, count := range t.counts {
		entries = append(entries, Entry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return entries
}
