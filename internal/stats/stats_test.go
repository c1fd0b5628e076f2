package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountsAdd(t *testing.T) {
	a := Counts{Total: 1, Succeeded: 1}
	b := Counts{Failed: 2, Malformed: 1, PartiallyPassed: 3}
	require.Equal(t, Counts{Total: 1, Succeeded: 1, Failed: 2, Malformed: 1, PartiallyPassed: 3}, a.Add(b))
	require.True(t, Counts{}.IsZero())
	require.False(t, a.IsZero())
}

func TestAggregatorConcurrent(t *testing.T) {
	var agg Aggregator
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg.Record(Counts{Total: 1, Failed: 1})
		}()
	}
	wg.Wait()
	require.Equal(t, Counts{Total: 50, Failed: 50}, agg.Snapshot())
}

func TestAggregatorRejectsNegative(t *testing.T) {
	var agg Aggregator
	require.Panics(t, func() {
		agg.Record(Counts{Failed: -1})
	})
}
