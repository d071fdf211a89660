package mining

import "sort"

// StepType tags how a pattern's last atom was appended: by growing the last
// event (I-step, "intra-event") or by appending a new event (S-step,
// "sequence").
type StepType uint8

const (
	// StepI marks an I-step (intra-event) extension.
	StepI StepType = iota
	// StepS marks an S-step (sequence) extension.
	StepS
)

func (st StepType) String() string {
	if st == StepI {
		return "I"
	}
	return "S"
}

// SplitLastStep decomposes p for equivalence-class keying: it returns the
// (k-1)-prefix obtained by removing p's last atom, the type of step that
// atom was added by, and the atom itself.
//
//   - If the last event has more than one item: I-step. atom is the last
//     item of the last event (assumed, per canonical form, to be the item
//     most recently added via an I-extension); prefix is p with that item
//     removed from the last event.
//   - Else (the last event is a singleton): S-step. atom is that item;
//     prefix is p with the last event removed entirely.
//
// Two patterns lie in the same equivalence class iff SplitLastStep gives
// them equal prefixes. A length-1 pattern returns an empty prefix, so every
// length-1 pattern shares one root class.
//
// This assumes p's events are in canonical sorted order and that every
// I-extension appended an item greater than the event's previous maximum;
// patterns built via NewEvent/the candidate joiner satisfy this.
func SplitLastStep(p Pattern) (prefix Pattern, step StepType, atom Item) {
	lastEv := p[len(p)-1]
	if len(lastEv) > 1 {
		atom = lastEv[len(lastEv)-1]
		prefix = make(Pattern, len(p))
		copy(prefix, p)
		prefix[len(p)-1] = lastEv[:len(lastEv)-1]
		return prefix, StepI, atom
	}
	atom = lastEv[0]
	prefix = make(Pattern, len(p)-1)
	copy(prefix, p[:len(p)-1])
	return prefix, StepS, atom
}

// classified pairs a Node with the cached result of SplitLastStep, so
// candidate generation and class grouping don't recompute it per access (the
// O(1)-classification design note in spec.md 9).
type classified struct {
	Node
	Prefix Pattern
	Step   StepType
	Atom   Item
}

func classify(n Node) classified {
	prefix, step, atom := SplitLastStep(n.Pattern)
	return classified{Node: n, Prefix: prefix, Step: step, Atom: atom}
}

// class is an ordered, deterministic equivalence class: all members share
// Prefix, sorted by pattern sort key.
type class struct {
	Prefix  Pattern
	Members []classified
}

// groupByPrefix partitions nodes into equivalence classes keyed by
// SplitLastStep's prefix, with members sorted by pattern key within each
// class and classes sorted by their prefix's key, giving the deterministic
// traversal order spec.md 4.6 requires.
func groupByPrefix(nodes []Node) []class {
	byKey := make(map[string]*class)
	var order []string
	for _, n := range nodes {
		c := classify(n)
		key := c.Prefix.SortKey()
		cl, ok := byKey[key]
		if !ok {
			cl = &class{Prefix: c.Prefix}
			byKey[key] = cl
			order = append(order, key)
		}
		cl.Members = append(cl.Members, c)
	}
	sort.Strings(order)
	classes := make([]class, len(order))
	for i, key := range order {
		cl := byKey[key]
		sort.Slice(cl.Members, func(i, j int) bool {
			return cl.Members[i].Pattern.SortKey() < cl.Members[j].Pattern.SortKey()
		})
		classes[i] = *cl
	}
	return classes
}
