package mining

// F1 returns every frequent length-1 pattern from vdb: one Node per item
// whose support meets minsup, in lexicographic item order (spec.md 4.3).
func F1(vdb VerticalDB, minsup int) []Node {
	var out []Node
	for _, it := range vdb.Items() {
		tl := vdb[it]
		if Support(tl) >= minsup {
			out = append(out, Node{Pattern: Pattern{NewEvent([]Item{it})}, TidList: tl})
		}
	}
	return out
}

// F2 generates every frequent length-2 pattern from f1, which must be
// sorted by item (the order F1 returns). It emits the I-step patterns
// <{x y}> for every unordered pair x < y, then the S-step patterns
// <{x}->{y}> for every ordered pair (x, y) including x == y, each only when
// support meets minsup (spec.md 4.3). stats, if non-nil, records an
// attempted candidate for every I-joined and S-joined pair, surviving or
// not.
func F2(f1 []Node, minsup int, stats *Stats) []Node {
	items := make([]Item, len(f1))
	tid := make(map[Item]TidList, len(f1))
	for i, n := range f1 {
		it := n.Pattern[0][0]
		items[i] = it
		tid[it] = n.TidList
	}

	var out []Node

	// I-step: <{x, y}>, x < y.
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			x, y := items[i], items[j]
			tl := IJoin(tid[x], tid[y])
			if stats != nil {
				stats.AddAttempted(1, len(tl))
			}
			if Support(tl) >= minsup {
				out = append(out, Node{Pattern: Pattern{NewEvent([]Item{x, y})}, TidList: tl})
			}
		}
	}

	// S-step: <{x}->{y}>, all ordered pairs including x == y.
	for _, x := range items {
		for _, y := range items {
			tl := SJoin(tid[x], tid[y])
			if stats != nil {
				stats.AddAttempted(2, len(tl))
			}
			if Support(tl) >= minsup {
				out = append(out, Node{Pattern: Pattern{NewEvent([]Item{x}), NewEvent([]Item{y})}, TidList: tl})
			}
		}
	}

	return out
}
