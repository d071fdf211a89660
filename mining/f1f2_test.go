package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// toyVDB builds the four-sequence toy dataset Scenario C describes: A, B, F
// appear in all 4 sequences, D appears in 2. A recurs later in sequences 2
// and 4, so <{A}->{A}> is frequent at minsup 2.
func toyVDB() VerticalDB {
	records := []Record{
		{Sid: 1, Eid: 1, Items: []Item{"A", "B"}},
		{Sid: 1, Eid: 2, Items: []Item{"F"}},
		{Sid: 2, Eid: 1, Items: []Item{"A"}},
		{Sid: 2, Eid: 2, Items: []Item{"B", "D"}},
		{Sid: 2, Eid: 3, Items: []Item{"A", "F"}},
		{Sid: 3, Eid: 1, Items: []Item{"A", "B", "F"}},
		{Sid: 4, Eid: 1, Items: []Item{"A"}},
		{Sid: 4, Eid: 2, Items: []Item{"D"}},
		{Sid: 4, Eid: 3, Items: []Item{"A", "B"}},
		{Sid: 4, Eid: 4, Items: []Item{"F"}},
	}
	return BuildVerticalDB(records)
}

func TestF1OnToyInput(t *testing.T) {
	vdb := toyVDB()
	f1 := F1(vdb, 2)

	assert.Len(t, f1, 4)
	items := make([]Item, len(f1))
	sups := make(map[Item]int, len(f1))
	for i, n := range f1 {
		items[i] = n.Pattern[0][0]
		sups[items[i]] = n.Sup()
	}
	assert.Equal(t, []Item{"A", "B", "D", "F"}, items)
	assert.Equal(t, map[Item]int{"A": 4, "B": 4, "D": 2, "F": 4}, sups)
}

func TestF2IncludesIAndSSteps(t *testing.T) {
	vdb := toyVDB()
	f1 := F1(vdb, 2)
	stats := NewStats()
	f2 := F2(f1, 2, stats)

	var haveI, haveSSelf bool
	for _, n := range f2 {
		if n.Length() == 1 && n.Elts() == 2 {
			haveI = true
		}
		if n.Length() == 2 && n.Pattern[0][0] == n.Pattern[1][0] {
			haveSSelf = true
		}
	}
	assert.True(t, haveI, "expected at least one I-step <{x y}> candidate")
	assert.True(t, haveSSelf, "expected at least one S-step <{x}->{x}> candidate")
	assert.Greater(t, stats.TotalAttempted(), 0)
}

func TestF2NilStatsIsSafe(t *testing.T) {
	vdb := toyVDB()
	f1 := F1(vdb, 2)
	assert.NotPanics(t, func() { F2(f1, 2, nil) })
}
