package mining

// DSpade runs the depth-first enumerator: it discovers F1 and F2, then for
// each F2 equivalence class recurses depth-first, fully exploring one
// class's descendants (and their descendants, ...) before moving to the
// next sibling class. Discoveries are still reported to sink in sorted
// pattern-key order within every level; only the traversal order across
// levels is depth-first (spec.md 4.6).
func DSpade(vdb VerticalDB, minsup int, sink DiscoverySink, stats *Stats) error {
	return mineDSpade(vdb, options{minsup: minsup}, sink, stats)
}

// MaxEltsDSpade is DSpade restricted to patterns with at most maxElts total
// items (spec.md 4.6's cardinality-constrained variant).
func MaxEltsDSpade(vdb VerticalDB, minsup, maxElts int, sink DiscoverySink, stats *Stats) error {
	if maxElts < 1 {
		return errInvalidMaxElts(maxElts)
	}
	return mineDSpade(vdb, options{minsup: minsup, maxElts: maxElts, eltsCap: true}, sink, stats)
}

func mineDSpade(vdb VerticalDB, o options, sink DiscoverySink, stats *Stats) error {
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

	for _, c := range groupByPrefix(f2) {
		if err := dfsClass(c.Members, o, sink, stats); err != nil {
			return err
		}
	}
	return nil
}

// dfsClass joins every unordered pair of distinct members of the class,
// sorts and deduplicates the result across all of the class's pairs, emits
// it, and recurses into the sub-classes it forms.
func dfsClass(members []classified, o options, sink DiscoverySink, stats *Stats) error {
	next := dedupSortedByPattern(joinClassPairs(members, o, stats))
	if len(next) == 0 {
		return nil
	}
	if err := emit(next, sink, stats); err != nil {
		return err
	}
	for _, c := range groupByPrefix(next) {
		if err := dfsClass(c.Members, o, sink, stats); err != nil {
			return err
		}
	}
	return nil
}
