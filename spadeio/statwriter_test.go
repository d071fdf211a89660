package spadeio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailspade/spade/mining"
	"github.com/grailspade/spade/spadestats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStatProducesExpectedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat.txt")

	in := spadestats.InputStats{NumSequences: 4, NumTransactions: 10, NumDistinctItems: 4}
	stats := mining.NewStats()
	stats.AddCandidate(mining.Node{Pattern: mining.Pattern{mining.NewEvent([]mining.Item{"A"})}, TidList: mining.TidList{{Sid: 1, Eid: 1}}})
	stats.AddDiscovered(mining.Node{Pattern: mining.Pattern{mining.NewEvent([]mining.Item{"A"})}, TidList: mining.TidList{{Sid: 1, Eid: 1}}})

	params := StatParams{Alg: "dspade", Sup: 2}
	timings := Timings{ReadS: 0.1, MineS: 0.2, WriteS: 0.05, TotalS: 0.4}
	require.NoError(t, WriteStat(path, in, params, timings, stats))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(contents)

	for _, want := range []string{
		"num_sequences_D: 4",
		"alg: dspade",
		"sup: 2",
		"max_discovered_length: 1",
		"total_discovered: 1",
		"candidates_len_1: 1",
		"discovered_len_1: 1",
	} {
		assert.True(t, strings.Contains(text, want), "missing %q in:\n%s", want, text)
	}
	assert.False(t, strings.Contains(text, "maxElts:"))
}

func TestWriteStatIncludesMaxElts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat.txt")
	in := spadestats.InputStats{NumSequences: 1, NumTransactions: 1, NumDistinctItems: 1}
	params := StatParams{Alg: "maxelts-dspade", Sup: 1, MaxElts: 3, EltsCap: true}
	require.NoError(t, WriteStat(path, in, params, Timings{}, mining.NewStats()))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "maxElts: 3")
}
