package usage

// An Entry pairs a tracked key with its recorded usage count
type Entry struct {
	Key   interface{}
	Count uint64
}

// A Tracker counts usage events by key, bulk-evicting rarely used keys once
// it grows past its configured capacity
type Tracker interface {
	Record(key interface{})       // Counts one usage of key
	Count(key interface{}) uint64 // Returns the recorded usage count for key, or 0 if key is not tracked
	Len() int                     // Returns the number of tracked keys
	Top(n int) []Entry            // Returns the n most-used entries, most-used first
}
