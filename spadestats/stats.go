// Package spadestats computes dataset-shape statistics from an input
// record set, feeding the STAT report's input-summary section.
package spadestats

import (
	"math"

	"github.com/grailbio/base/errors"
	"github.com/grailspade/spade/spaderecord"
)

// InputStats summarizes the shape of an input dataset: sequence, event,
// and distinct-item counts, plus the distribution of transactions per
// sequence and items per transaction.
type InputStats struct {
	NumSequences     int
	NumTransactions  int
	NumDistinctItems int

	MinTxPerSeq  int
	MaxTxPerSeq  int
	MeanTxPerSeq float64
	StdTxPerSeq  float64

	MinItemsPerTx  int
	MaxItemsPerTx  int
	MeanItemsPerTx float64
	StdItemsPerTx  float64
}

// Compute returns records' InputStats. It reports the "Empty input" error
// (spec.md 7) when records is empty.
func Compute(records []spaderecord.Record) (InputStats, error) {
	if len(records) == 0 {
		return InputStats{}, errors.E(errors.Invalid, "no records loaded")
	}

	sids := make(map[int]bool)
	items := make(map[string]bool)
	txPerSid := make(map[int]int)
	itemsPerTx := make([]int, 0, len(records))

	for _, r := range records {
		sids[r.Sid] = true
		txPerSid[r.Sid]++
		itemsPerTx = append(itemsPerTx, len(r.Items))
		for _, it := range r.Items {
			items[it] = true
		}
	}

	txCounts := make([]int, 0, len(txPerSid))
	for _, n := range txPerSid {
		txCounts = append(txCounts, n)
	}

	minTx, maxTx, meanTx, stdTx := intStats(txCounts)
	minItems, maxItems, meanItems, stdItems := intStats(itemsPerTx)

	return InputStats{
		NumSequences:     len(sids),
		NumTransactions:  len(records),
		NumDistinctItems: len(items),

		MinTxPerSeq:  minTx,
		MaxTxPerSeq:  maxTx,
		MeanTxPerSeq: meanTx,
		StdTxPerSeq:  stdTx,

		MinItemsPerTx:  minItems,
		MaxItemsPerTx:  maxItems,
		MeanItemsPerTx: meanItems,
		StdItemsPerTx:  stdItems,
	}, nil
}

// intStats returns min, max, mean, and population standard deviation of
// vals, which must be non-empty. A single-element vals yields a 0 stddev,
// matching statistics.pstdev's behavior for n == 1.
func intStats(vals []int) (min, max int, mean, stddev float64) {
	min, max = vals[0], vals[0]
	sum := 0
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean = float64(sum) / float64(len(vals))

	if len(vals) > 1 {
		var sqDiff float64
		for _, v := range vals {
			d := float64(v) - mean
			sqDiff += d * d
		}
		stddev = math.Sqrt(sqDiff / float64(len(vals)))
	}
	return min, max, mean, stddev
}
