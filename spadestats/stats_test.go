package spadestats

import (
	"testing"

	"github.com/grailspade/spade/spaderecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRejectsEmptyInput(t *testing.T) {
	_, err := Compute(nil)
	assert.Error(t, err)
}

func TestComputeBasicShape(t *testing.T) {
	records := []spaderecord.Record{
		{Sid: 1, Eid: 1, Items: []string{"A", "B"}},
		{Sid: 1, Eid: 2, Items: []string{"C"}},
		{Sid: 2, Eid: 1, Items: []string{"A"}},
	}
	in, err := Compute(records)
	require.NoError(t, err)

	assert.Equal(t, 2, in.NumSequences)
	assert.Equal(t, 3, in.NumTransactions)
	assert.Equal(t, 3, in.NumDistinctItems)
	assert.Equal(t, 1, in.MinTxPerSeq)
	assert.Equal(t, 2, in.MaxTxPerSeq)
	assert.Equal(t, 1, in.MinItemsPerTx)
	assert.Equal(t, 2, in.MaxItemsPerTx)
}

func TestComputeSingleSequenceStddevIsZero(t *testing.T) {
	records := []spaderecord.Record{
		{Sid: 1, Eid: 1, Items: []string{"A"}},
	}
	in, err := Compute(records)
	require.NoError(t, err)
	assert.Zero(t, in.StdTxPerSeq)
	assert.Zero(t, in.StdItemsPerTx)
}
