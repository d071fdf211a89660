/*
spade-mine is a thin driver over the mining library: it reads a sequence
database (CSV or SPMF), runs one of the four SPADE enumerators, and writes
the discovered patterns and a run-statistics report to resultsDir. It does
not implement the grid-runner or plotting scripts that drive repeated runs
across parameter sweeps; it runs exactly one (algorithm, minsup, maxElts)
configuration per invocation.
*/
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailspade/spade/mining"
	"github.com/grailspade/spade/spaderecord"
	"github.com/grailspade/spade/spadeio"
	"github.com/grailspade/spade/spadestats"
)

var (
	alg        = flag.String("alg", "dspade", "Mining algorithm: dspade, bspade, maxelts-dspade, or maxelts-bspade")
	sup        = flag.Int("sup", 0, "Minimum support (required, > 0)")
	maxElts    = flag.Int("maxElts", 0, "Maximum total item count per pattern; required when -alg starts with maxelts-")
	input      = flag.String("input", "", "Input dataset path; .spmf/.spmf.gz read as SPMF, anything else as CSV")
	resultsDir = flag.String("resultsDir", ".", "Directory to write the OUT and STAT files to")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if *sup <= 0 {
		log.Fatalf("-sup must be > 0, got %d", *sup)
	}
	algo := mining.Algorithm(*alg)
	eltsCap := strings.HasPrefix(*alg, "maxelts-")
	if eltsCap && *maxElts <= 0 {
		log.Fatalf("-maxElts is required and must be > 0 for -alg=%s", *alg)
	}
	if *input == "" {
		log.Fatalf("-input is required")
	}

	if err := run(algo, eltsCap); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(algo mining.Algorithm, eltsCap bool) error {
	start := time.Now()

	readStart := time.Now()
	records, err := readInput(*input)
	if err != nil {
		return err
	}
	readElapsed := time.Since(readStart).Seconds()

	inStats, err := spadestats.Compute(records)
	if err != nil {
		return err
	}

	info := spadeio.DatasetInfoFromPath(*input, inStats.NumSequences, inStats.NumTransactions, inStats.NumDistinctItems)
	if err := os.MkdirAll(*resultsDir, 0755); err != nil {
		return err
	}
	outPath := filepath.Join(*resultsDir, spadeio.OutName(string(algo), info, *sup, *maxElts, eltsCap))
	statPath := filepath.Join(*resultsDir, spadeio.StatName(string(algo), info, *sup, *maxElts, eltsCap))

	out, err := spadeio.NewOutWriter(outPath)
	if err != nil {
		return err
	}

	vdb := mining.BuildVerticalDB(spaderecord.ToMining(records))
	stats := mining.NewStats()

	mineStart := time.Now()
	mineErr := mining.Mine(algo, vdb, *sup, *maxElts, out, stats)
	mineElapsed := time.Since(mineStart).Seconds()

	writeStart := time.Now()
	closeErr := out.Close()
	writeElapsed := time.Since(writeStart).Seconds()

	if mineErr != nil {
		return mineErr
	}
	if closeErr != nil {
		return closeErr
	}

	params := spadeio.StatParams{Alg: string(algo), Sup: *sup, MaxElts: *maxElts, EltsCap: eltsCap}
	timings := spadeio.Timings{
		ReadS:  readElapsed,
		MineS:  mineElapsed,
		WriteS: writeElapsed,
		TotalS: time.Since(start).Seconds(),
	}
	if err := spadeio.WriteStat(statPath, inStats, params, timings, stats); err != nil {
		return err
	}

	log.Printf("wrote %s and %s", outPath, statPath)
	return nil
}

func readInput(path string) ([]spaderecord.Record, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz")))
	if ext == ".spmf" {
		return spaderecord.ReadSPMFFile(path)
	}
	return spaderecord.ReadCSVFile(path)
}
