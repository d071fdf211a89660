// Package mining implements the SPADE family of sequential pattern mining
// algorithms: a vertical tid-list database representation, the I-join and
// S-join primitives over it, equivalence-class candidate generation, and the
// depth-first (dSPADE) and breadth-first (bSPADE) enumerators, with an
// optional maxElts cardinality constraint.
package mining

// Sid identifies one sequence in the input database.
type Sid = int

// Eid identifies the position of an event within its sequence. Eids are
// strictly increasing within a sequence.
type Eid = int

// Tid names one event occurrence: the sequence it belongs to, and the
// position of the occurrence within that sequence. Tids are ordered
// lexicographically on (Sid, Eid).
type Tid struct {
	Sid Sid
	Eid Eid
}

// Less reports whether t sorts before o under the (Sid, Eid) lexicographic
// order.
func (t Tid) Less(o Tid) bool {
	if t.Sid != o.Sid {
		return t.Sid < o.Sid
	}
	return t.Eid < o.Eid
}

// TidList is a sorted, duplicate-free list of Tids. It represents the
// occurrences of a pattern: each Tid's Eid is a position of the pattern's
// last event within that sequence. F1 tid-lists and S-join results may
// carry more than one Tid per sid (SJoin keeps every later eid); Support
// still dedups on Sid.
type TidList []Tid

// Support returns the number of distinct sequences represented in tl. tl is
// assumed sorted, so distinct sids occupy contiguous runs.
func Support(tl TidList) int {
	if len(tl) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(tl); i++ {
		if tl[i].Sid != tl[i-1].Sid {
			n++
		}
	}
	return n
}
