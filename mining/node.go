package mining

// Node pairs a Pattern with its tid-list. Nodes are immutable; all derived
// measures are computed on demand rather than stored.
type Node struct {
	Pattern Pattern
	TidList TidList
}

// Sup returns the support of n: the count of distinct sids in its tid-list.
func (n Node) Sup() int {
	return Support(n.TidList)
}

// Len returns the length of n's tid-list (which may exceed Sup for F1
// nodes and S-join results, where a single sid can contribute more than one
// occurrence).
func (n Node) Len() int {
	return len(n.TidList)
}

// Length returns the number of events in n's pattern.
func (n Node) Length() int {
	return n.Pattern.Length()
}

// Elts returns the total item count across n's pattern's events.
func (n Node) Elts() int {
	return n.Pattern.Elts()
}
