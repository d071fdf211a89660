package spadeio

import (
	"fmt"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailspade/spade/mining"
	"github.com/grailspade/spade/spadestats"
)

// StatParams names the run being reported: the algorithm and the
// parameters it was invoked with.
type StatParams struct {
	Alg     string
	Sup     int
	MaxElts int  // meaningful only when EltsCap
	EltsCap bool
}

// Timings carries the wall-clock breakdown the STAT report includes.
type Timings struct {
	ReadS  float64
	MineS  float64
	WriteS float64
	TotalS float64
}

// WriteStat writes the STAT report: input shape, run parameters, timings,
// max pattern lengths, running totals, and the per-length
// candidates/discovered/attempted histogram, one "key: value" line each.
func WriteStat(path string, in spadestats.InputStats, params StatParams, timings Timings, counters *mining.Stats) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.E(err, "couldn't create STAT file:", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	write := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, werr := fmt.Fprintf(f, format+"\n", args...)
		if werr != nil {
			err = errors.E(werr, "error writing STAT file:", path)
		}
	}

	write("num_sequences_D: %d", in.NumSequences)
	write("num_transactions_T: %d", in.NumTransactions)
	write("num_distinct_items_I: %d", in.NumDistinctItems)

	write("tx_per_seq_min: %d", in.MinTxPerSeq)
	write("tx_per_seq_max: %d", in.MaxTxPerSeq)
	write("tx_per_seq_mean: %.6f", in.MeanTxPerSeq)
	write("tx_per_seq_std: %.6f", in.StdTxPerSeq)

	write("items_per_tx_min: %d", in.MinItemsPerTx)
	write("items_per_tx_max: %d", in.MaxItemsPerTx)
	write("items_per_tx_mean: %.6f", in.MeanItemsPerTx)
	write("items_per_tx_std: %.6f", in.StdItemsPerTx)

	write("alg: %s", params.Alg)
	write("sup: %d", params.Sup)
	if params.EltsCap {
		write("maxElts: %d", params.MaxElts)
	}

	write("time_read_s: %.6f", timings.ReadS)
	write("time_mine_s: %.6f", timings.MineS)
	write("time_write_s: %.6f", timings.WriteS)
	write("total_time_minus_read_s: %.6f", timings.TotalS-timings.ReadS)
	write("total_time_s: %.6f", timings.TotalS)

	write("max_candidate_length: %d", counters.MaxCandidateLength())
	write("max_discovered_length: %d", counters.MaxDiscoveredLength())

	write("total_candidates: %d", counters.TotalCandidates())
	write("total_candidates_sum_sup: %d", counters.TotalSumSupCandidates())
	write("total_candidates_sum_tidlist_len: %d", counters.TotalSumTidCandidates())

	write("total_discovered: %d", counters.TotalDiscovered())
	write("total_discovered_sum_sup: %d", counters.TotalSumSupDiscovered())
	write("total_discovered_sum_tidlist_len: %d", counters.TotalSumTidDiscovered())

	write("total_attempted_candidates: %d", counters.TotalAttempted())
	write("total_attempted_sum_tidlist_len: %d", counters.TotalSumTidAttempted())

	for k := 1; k <= counters.MaxDiscoveredLength()+1; k++ {
		cand, candSup, candTid := counters.CandidatesAt(k)
		disc, discSup, discTid := counters.DiscoveredAt(k)
		att, attTid := counters.AttemptedAt(k)

		write("candidates_len_%d: %d", k, cand)
		write("candidates_len_%d_sum_sup: %d", k, candSup)
		write("candidates_len_%d_sum_tidlist_len: %d", k, candTid)

		write("discovered_len_%d: %d", k, disc)
		write("discovered_len_%d_sum_sup: %d", k, discSup)
		write("discovered_len_%d_sum_tidlist_len: %d", k, discTid)

		write("attempted_len_%d: %d", k, att)
		write("attempted_len_%d_sum_tidlist_len: %d", k, attTid)
	}

	return err
}
