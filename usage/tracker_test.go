package usage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerCounts(t *testing.T) {
	tracker := CreateTracker(nil)
	require.Equal(t, 0, tracker.Len())
	require.Equal(t, uint64(0), tracker.Count("a"))

	tracker.Record("a")
	tracker.Record("a")
	tracker.Record("b")
	require.Equal(t, 2, tracker.Len())
	require.Equal(t, uint64(2), tracker.Count("a"))
	require.Equal(t, uint64(1), tracker.Count("b"))
}

func TestTrackerTop(t *testing.T) {
	tracker := CreateTracker(nil)
	for i := 0; i < 3; i++ {
		tracker.Record("a")
	}
	for i := 0; i < 2; i++ {
		tracker.Record("b")
	}
	tracker.Record("c")

	top := tracker.Top(2)
	require.Equal(t, []Entry{{Key: "a", Count: 3}, {Key: "b", Count: 2}}, top)

	require.Len(t, tracker.Top(10), 3)
	require.Empty(t, tracker.Top(0))
}

func TestTrackerEviction(t *testing.T) {
	tracker := CreateTracker(&TrackerConf{Capacity: 10, KeepFraction: 0.5})

	// the first ten keys accumulate multiple usages each
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("hot-%d", i)
		tracker.Record(key)
		tracker.Record(key)
	}
	require.Equal(t, 10, tracker.Len())

	// an eleventh key breaches capacity and triggers a bulk eviction
	tracker.Record("cold")
	require.Equal(t, 5, tracker.Len())

	// survivors are the most-used keys, so the newcomer was discarded
	require.Equal(t, uint64(0), tracker.Count("cold"))
	for _, entry := range tracker.Top(5) {
		require.Equal(t, uint64(2), entry.Count)
	}
}

func TestTrackerEvictionRetainsCounts(t *testing.T) {
	tracker := CreateTracker(&TrackerConf{Capacity: 4, KeepFraction: 0.5})
	tracker.Record("a")
	tracker.Record("a")
	tracker.Record("a")
	tracker.Record("b")
	tracker.Record("b")
	tracker.Record("c")
	tracker.Record("d")
	tracker.Record("e")

	require.Equal(t, 2, tracker.Len())
	require.Equal(t, uint64(3), tracker.Count("a"))
	require.Equal(t, uint64(2), tracker.Count("b"))
}
