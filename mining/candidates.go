package mining

import "sort"

// joinInClass joins two nodes that must belong to the same equivalence
// class (equal SplitLastStep prefixes), producing the (k+1)-candidates
// spec.md 4.5 defines:
//
//	I + I -> one I-candidate (event-merge)
//	I + S -> one S-candidate (a extended by b's atom)
//	S + I -> one S-candidate (b extended by a's atom)
//	S + S -> three candidates: event-merge, a then b, b then a
//
// Every generated candidate is reported to stats as attempted (before the
// support filter), whether or not it survives. Only candidates with
// sup >= minsup are returned. When two of the (at most three) generated
// candidates are pattern-equal -- only possible in the S+S case, when
// sorted(xa, xb) produces a tie -- the result is deduplicated, keeping one.
// Results are sorted by pattern key.
func joinInClass(a, b classified, minsup int, stats *Stats) []Node {
	if a.Prefix.SortKey() != b.Prefix.SortKey() {
		return nil
	}

	var out []Node
	emit := func(pat Pattern, tl TidList) {
		if stats != nil {
			stats.AddAttempted(pat.Length(), len(tl))
		}
		n := Node{Pattern: pat, TidList: tl}
		if n.Sup() >= minsup {
			out = append(out, n)
		}
	}

	switch {
	case a.Step == StepI && b.Step == StepI:
		lastEv := a.Pattern[len(a.Pattern)-1]
		newEv := NewEvent(append(append(Event{}, lastEv...), b.Atom))
		pat := a.Pattern.clone()
		pat[len(pat)-1] = newEv
		emit(pat, IJoin(a.TidList, b.TidList))

	case a.Step == StepI && b.Step == StepS:
		emit(append(a.Pattern.clone(), NewEvent([]Item{b.Atom})), SJoin(a.TidList, b.TidList))

	case a.Step == StepS && b.Step == StepI:
		emit(append(b.Pattern.clone(), NewEvent([]Item{a.Atom})), SJoin(b.TidList, a.TidList))

	default: // S + S
		xa, xb := a.Atom, b.Atom
		lo, hi := xa, xb
		if hi < lo {
			lo, hi = hi, lo
		}
		evPat := append(a.Prefix.clone(), NewEvent([]Item{lo, hi}))
		emit(evPat, IJoin(a.TidList, b.TidList))

		emit(append(a.Pattern.clone(), NewEvent([]Item{xb})), SJoin(a.TidList, b.TidList))
		emit(append(b.Pattern.clone(), NewEvent([]Item{xa})), SJoin(b.TidList, a.TidList))
	}

	return dedupSortedByPattern(out)
}

// dedupSortedByPattern sorts nodes by pattern key and removes duplicate
// patterns, keeping the first occurrence.
func dedupSortedByPattern(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nodes
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Pattern.SortKey() < nodes[j].Pattern.SortKey()
	})
	out := nodes[:1]
	for _, n := range nodes[1:] {
		if n.Pattern.SortKey() != out[len(out)-1].Pattern.SortKey() {
			out = append(out, n)
		}
	}
	return out
}
