// Package spaderecord reads sequence-database input files into mining
// records: one (sid, eid, items) tuple per event, in the vertical-database
// builder's expected shape. Two formats are supported, a CSV form and the
// SPMF sequential-pattern format; both converge on the same Record type and
// validation rules.
package spaderecord

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/errors"
)

// Sid and Eid mirror mining's sequence-id and event-id types.
type Sid = int
type Eid = int

// Record is one event within one sequence: the items observed at
// (Sid, Eid). Items must be sorted and duplicate-free; Eid must strictly
// increase within a Sid. ReadCSV and ReadSPMF both return records already
// sorted by (Sid, Eid) and validated.
type Record struct {
	Sid   Sid
	Eid   Eid
	Items []string
}

// Validate checks the invariants every Record slice handed to the mining
// core must satisfy: no empty item sets, no duplicate items within an
// event, and strictly increasing Eid within each Sid. Records of different
// Sids may be interleaved, but Validate compares each Eid only with the
// previous one seen for its Sid in iteration order, so records of one Sid
// out of Eid order are rejected; callers should sort by (Sid, Eid) first
// (both readers in this package do).
func Validate(records []Record) error {
	lastEid := make(map[Sid]Eid)
	for _, r := range records {
		if len(r.Items) == 0 {
			return errMalformed(fmt.Sprintf("empty items for (sid=%d, eid=%d)", r.Sid, r.Eid))
		}
		if prev, ok := lastEid[r.Sid]; ok && r.Eid <= prev {
			return errMalformed(fmt.Sprintf("non-increasing eid for sid=%d: %d -> %d", r.Sid, prev, r.Eid))
		}
		lastEid[r.Sid] = r.Eid

		seen := make(map[string]bool, len(r.Items))
		for _, it := range r.Items {
			if seen[it] {
				return errMalformed(fmt.Sprintf("duplicate item %q for (sid=%d, eid=%d)", it, r.Sid, r.Eid))
			}
			seen[it] = true
		}
	}
	return nil
}

func errMalformed(msg string) error {
	return errors.E(errors.Invalid, "malformed record:", msg)
}

func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Sid != records[j].Sid {
			return records[i].Sid < records[j].Sid
		}
		return records[i].Eid < records[j].Eid
	})
}

func canonicalItems(items []string) []string {
	sort.Strings(items)
	n := 0
	for i, it := range items {
		if i == 0 || it != items[n-1] {
			items[n] = it
			n++
		}
	}
	return items[:n]
}
