package mining

import "sort"

// VerticalDB maps each item to the sorted tid-list of every (sid, eid) at
// which it occurs.
type VerticalDB map[Item]TidList

// Record is one (sid, eid, items) occurrence as read from the input: a
// single event within a single sequence. Items must be sorted and
// duplicate-free, and eids must be strictly increasing within a sid; see
// the spaderecord package for a concrete producer and validator.
type Record struct {
	Sid   Sid
	Eid   Eid
	Items []Item
}

// BuildVerticalDB inverts records into a VerticalDB: for every item, the
// sorted list of (sid, eid) pairs at which it occurs. Records are assumed
// already validated (see spaderecord.Validate): non-empty item sets,
// strictly increasing eids per sid.
func BuildVerticalDB(records []Record) VerticalDB {
	vdb := make(VerticalDB)
	for _, r := range records {
		for _, it := range r.Items {
			vdb[it] = append(vdb[it], Tid{Sid: r.Sid, Eid: r.Eid})
		}
	}
	for it, tl := range vdb {
		sort.Slice(tl, func(i, j int) bool { return tl[i].Less(tl[j]) })
		vdb[it] = tl
	}
	return vdb
}

// Items returns the VerticalDB's keys in lexicographic order, giving
// deterministic iteration over the database (spec.md 4.2 requires this).
func (vdb VerticalDB) Items() []Item {
	items := make([]Item, 0, len(vdb))
	for it := range vdb {
		items = append(items, it)
	}
	sort.Strings(items)
	return items
}
