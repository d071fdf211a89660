package mining

import "sort"

// options collects the knobs shared by dSPADE and bSPADE: the frequency
// threshold every candidate must clear, and the optional maxElts cardinality
// cap from spec.md 4.6 (eltsCap distinguishes "cap at 0" from "no cap").
type options struct {
	minsup  int
	maxElts int
	eltsCap bool
}

func (o options) allow(n Node) bool {
	return !o.eltsCap || n.Elts() <= o.maxElts
}

// sortByPatternKey sorts nodes by pattern key in place.
func sortByPatternKey(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Pattern.SortKey() < nodes[j].Pattern.SortKey()
	})
}

// emit reports each node to stats.AddDiscovered and then to the sink, in
// order, stopping at the first sink error (spec.md 7).
func emit(nodes []Node, sink DiscoverySink, stats *Stats) error {
	for _, n := range nodes {
		stats.AddDiscovered(n)
		if sink != nil {
			if err := sink.OnDiscover(newDiscovery(n)); err != nil {
				return errSink(err)
			}
		}
	}
	return nil
}

// seedLevels builds F1 and F2, filtering both by maxElts when the run is
// cardinality-capped, and records every surviving node as a candidate.
// F1 is already in pattern-key order (item order); F2 is re-sorted since
// its I-step/S-step emission order isn't pattern-key order once an event
// like <{x}->{x}> sorts ahead of some <{y z}>.
func seedLevels(vdb VerticalDB, o options, stats *Stats) (f1, f2 []Node) {
	f1 = F1(vdb, o.minsup)
	if o.eltsCap {
		f1 = filterElts(f1, o.maxElts)
	}
	for _, n := range f1 {
		stats.AddCandidate(n)
	}

	f2 = F2(f1, o.minsup, stats)
	if o.eltsCap {
		f2 = filterElts(f2, o.maxElts)
	}
	sortByPatternKey(f2)
	for _, n := range f2 {
		stats.AddCandidate(n)
	}
	return f1, f2
}

// filterElts keeps only nodes whose element count is within maxElts.
func filterElts(nodes []Node, maxElts int) []Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n.Elts() <= maxElts {
			out = append(out, n)
		}
	}
	return out
}

// joinClassPairs runs every unordered pair of distinct members of a class
// through joinInClass, applies the maxElts filter when capped, and records
// every surviving candidate to stats. It does not sort or deduplicate
// across pairs -- dSPADE and bSPADE do that at different granularities
// (per class vs. pooled across the whole frontier), so the caller owns
// that step.
func joinClassPairs(members []classified, o options, stats *Stats) []Node {
	var out []Node
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			cand := joinInClass(members[i], members[j], o.minsup, stats)
			if o.eltsCap {
				cand = filterElts(cand, o.maxElts)
			}
			for _, n := range cand {
				stats.AddCandidate(n)
			}
			out = append(out, cand...)
		}
	}
	return out
}
