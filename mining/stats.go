package mining

// Stats accumulates the per-length instrumentation spec.md 4.7 requires:
// for every pattern length k, how many candidates were attempted, how many
// survived the support filter, and how many were ultimately discovered,
// along with the sums of support and tid-list length backing each count.
//
// Lengths are dense small integers, so Stats is a plain struct of
// length-indexed slices rather than a map (see the Design Notes in
// spec.md 9); index 0 is unused, length k lives at index k.
//
// Stats is not safe for concurrent use. The mining core in this package is
// single-threaded by design (spec.md 5); a caller that parallelizes
// class-level work on top of it is responsible for serializing access to
// its own Stats value.
type Stats struct {
	candidates []int
	discovered []int
	attempted  []int

	sumSupCandidates []int
	sumSupDiscovered []int

	sumTidCandidates  []int
	sumTidDiscovered  []int
	sumTidAttempted   []int

	maxCandidateLength  int
	maxDiscoveredLength int
}

// NewStats returns a zeroed Stats counter.
func NewStats() *Stats {
	return &Stats{}
}

func grow(s []int, k int) []int {
	if k < len(s) {
		return s
	}
	grown := make([]int, k+1)
	copy(grown, s)
	return grown
}

// AddAttempted records one attempted candidate of pattern length k and
// tid-list length tidLen, before the support filter is applied. Every
// generated candidate, surviving or not, increments this exactly once.
func (s *Stats) AddAttempted(k, tidLen int) {
	if s == nil {
		return
	}
	s.attempted = grow(s.attempted, k)
	s.attempted[k]++
	s.sumTidAttempted = grow(s.sumTidAttempted, k)
	s.sumTidAttempted[k] += tidLen
}

// AddCandidate records a candidate Node that survived the support filter.
func (s *Stats) AddCandidate(n Node) {
	if s == nil {
		return
	}
	k := n.Length()
	if k > s.maxCandidateLength {
		s.maxCandidateLength = k
	}
	s.candidates = grow(s.candidates, k)
	s.candidates[k]++
	s.sumSupCandidates = grow(s.sumSupCandidates, k)
	s.sumSupCandidates[k] += n.Sup()
	s.sumTidCandidates = grow(s.sumTidCandidates, k)
	s.sumTidCandidates[k] += n.Len()
}

// AddDiscovered records a Node handed to the discovery sink.
func (s *Stats) AddDiscovered(n Node) {
	if s == nil {
		return
	}
	k := n.Length()
	if k > s.maxDiscoveredLength {
		s.maxDiscoveredLength = k
	}
	s.discovered = grow(s.discovered, k)
	s.discovered[k]++
	s.sumSupDiscovered = grow(s.sumSupDiscovered, k)
	s.sumSupDiscovered[k] += n.Sup()
	s.sumTidDiscovered = grow(s.sumTidDiscovered, k)
	s.sumTidDiscovered[k] += n.Len()
}

// MaxCandidateLength returns the longest pattern length for which a
// candidate survived the support filter.
func (s *Stats) MaxCandidateLength() int {
	if s == nil {
		return 0
	}
	return s.maxCandidateLength
}

// MaxDiscoveredLength returns the longest discovered pattern's length.
func (s *Stats) MaxDiscoveredLength() int {
	if s == nil {
		return 0
	}
	return s.maxDiscoveredLength
}

// CandidatesAt returns the candidate count at length k, and the sums of
// support and tid-list length backing it.
func (s *Stats) CandidatesAt(k int) (count, sumSup, sumTid int) {
	if s == nil {
		return 0, 0, 0
	}
	return at(s.candidates, k), at(s.sumSupCandidates, k), at(s.sumTidCandidates, k)
}

// DiscoveredAt returns the discovered count at length k, and the sums of
// support and tid-list length backing it.
func (s *Stats) DiscoveredAt(k int) (count, sumSup, sumTid int) {
	if s == nil {
		return 0, 0, 0
	}
	return at(s.discovered, k), at(s.sumSupDiscovered, k), at(s.sumTidDiscovered, k)
}

// AttemptedAt returns the attempted count at length k, and the sum of
// tid-list length backing it.
func (s *Stats) AttemptedAt(k int) (count, sumTid int) {
	if s == nil {
		return 0, 0
	}
	return at(s.attempted, k), at(s.sumTidAttempted, k)
}

func at(s []int, k int) int {
	if k < 0 || k >= len(s) {
		return 0
	}
	return s[k]
}

func sum(s []int) int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// TotalCandidates returns the sum of CandidatesAt counts across all lengths.
func (s *Stats) TotalCandidates() int {
	if s == nil {
		return 0
	}
	return sum(s.candidates)
}

// TotalDiscovered returns the sum of DiscoveredAt counts across all lengths.
func (s *Stats) TotalDiscovered() int {
	if s == nil {
		return 0
	}
	return sum(s.discovered)
}

// TotalAttempted returns the sum of AttemptedAt counts across all lengths.
func (s *Stats) TotalAttempted() int {
	if s == nil {
		return 0
	}
	return sum(s.attempted)
}

// TotalSumSupCandidates returns the sum of candidate supports across all
// lengths.
func (s *Stats) TotalSumSupCandidates() int {
	if s == nil {
		return 0
	}
	return sum(s.sumSupCandidates)
}

// TotalSumTidCandidates returns the sum of candidate tid-list lengths across
// all lengths.
func (s *Stats) TotalSumTidCandidates() int {
	if s == nil {
		return 0
	}
	return sum(s.sumTidCandidates)
}

// TotalSumSupDiscovered returns the sum of discovered-node supports across
// all lengths.
func (s *Stats) TotalSumSupDiscovered() int {
	if s == nil {
		return 0
	}
	return sum(s.sumSupDiscovered)
}

// TotalSumTidDiscovered returns the sum of discovered-node tid-list lengths
// across all lengths.
func (s *Stats) TotalSumTidDiscovered() int {
	if s == nil {
		return 0
	}
	return sum(s.sumTidDiscovered)
}

// TotalSumTidAttempted returns the sum of attempted-candidate tid-list
// lengths across all lengths.
func (s *Stats) TotalSumTidAttempted() int {
	if s == nil {
		return 0
	}
	return sum(s.sumTidAttempted)
}
