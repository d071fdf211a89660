// Package spadeio writes mining results to disk: a streaming CSV OUT
// writer that implements mining.DiscoverySink, and a STAT report summarizing
// input shape, run parameters, timings, and instrumentation counters.
package spadeio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DatasetInfo names the input dataset for the OUT/STAT filename scheme.
type DatasetInfo struct {
	Stem             string // input filename, extension stripped
	NumSequences     int
	NumTransactions  int
	NumDistinctItems int
}

// DatasetInfoFromPath builds a DatasetInfo from an input path and the shape
// counters spadestats.Compute reports.
func DatasetInfoFromPath(inputPath string, numSequences, numTransactions, numDistinctItems int) DatasetInfo {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return DatasetInfo{
		Stem:             stem,
		NumSequences:     numSequences,
		NumTransactions:  numTransactions,
		NumDistinctItems: numDistinctItems,
	}
}

func runTag(alg string, info DatasetInfo, sup int, maxElts int, eltsCap bool) string {
	tag := fmt.Sprintf("%s_d%d_t%d_i%d_s%d", info.Stem, info.NumSequences, info.NumTransactions, info.NumDistinctItems, sup)
	if eltsCap {
		tag += fmt.Sprintf("_e%d", maxElts)
	}
	return alg + "_" + tag
}

// OutName returns the OUT filename for one mining run.
func OutName(alg string, info DatasetInfo, sup int, maxElts int, eltsCap bool) string {
	return "OUT_" + runTag(alg, info, sup, maxElts, eltsCap) + ".txt"
}

// StatName returns the STAT filename for one mining run.
func StatName(alg string, info DatasetInfo, sup int, maxElts int, eltsCap bool) string {
	return "STAT_" + runTag(alg, info, sup, maxElts, eltsCap) + ".txt"
}
