package mining

// BSpade runs the breadth-first enumerator: it discovers F1 and F2, then
// repeatedly advances one whole level at a time -- joining every pair
// within every class of the current frontier, pooling the results across
// all of those classes, then sorting and deduplicating the pool before
// emitting it and regrouping it into the next frontier. bSPADE discovers
// the same set of patterns as DSpade, in a different traversal order
// (spec.md 4.6, P3).
func BSpade(vdb VerticalDB, minsup int, sink DiscoverySink, stats *Stats) error {
	return mineBSpade(vdb, options{minsup: minsup}, sink, stats)
}

// MaxEltsBSpade is BSpade restricted to patterns with at most maxElts total
// items.
func MaxEltsBSpade(vdb VerticalDB, minsup, maxElts int, sink DiscoverySink, stats *Stats) error {
	if maxElts < 1 {
		return errInvalidMaxElts(maxElts)
	}
	return mineBSpade(vdb, options{minsup: minsup, maxElts: maxElts, eltsCap: true}, sink, stats)
}

func mineBSpade(vdb VerticalDB, o options, sink DiscoverySink, stats *Stats) error {
	if o.minsup < 1 {
		return errInvalidMinSupport(o.minsup)
	}

	f1, f2 := seedLevels(vdb, o, stats)
	if err := emit(f1, sink, stats); err != nil {
		return err
	}
	if err := emit(f2, sink, stats); err != nil {
		return err
	}

	frontier := groupByPrefix(f2)
	for len(frontier) > 0 {
		var pooled []Node
		for _, c := range frontier {
			pooled = append(pooled, joinClassPairs(c.Members, o, stats)...)
		}
		if len(pooled) == 0 {
			break
		}
		pooled = dedupSortedByPattern(pooled)
		if err := emit(pooled, sink, stats); err != nil {
			return err
		}
		frontier = groupByPrefix(pooled)
	}
	return nil
}
