package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVerticalDBInvertsAndSorts(t *testing.T) {
	records := []Record{
		{Sid: 2, Eid: 1, Items: []Item{"A"}},
		{Sid: 1, Eid: 2, Items: []Item{"A", "B"}},
		{Sid: 1, Eid: 1, Items: []Item{"B"}},
	}
	vdb := BuildVerticalDB(records)

	assert.Equal(t, TidList{{1, 2}, {2, 1}}, vdb["A"])
	assert.Equal(t, TidList{{1, 1}, {1, 2}}, vdb["B"])
	assert.Equal(t, []Item{"A", "B"}, vdb.Items())
}

func TestVerticalDBEmptyRecords(t *testing.T) {
	vdb := BuildVerticalDB(nil)
	assert.Empty(t, vdb.Items())
}
