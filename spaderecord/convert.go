package spaderecord

import "github.com/grailspade/spade/mining"

// ToMining converts records into the shape mining.BuildVerticalDB expects.
func ToMining(records []Record) []mining.Record {
	out := make([]mining.Record, len(records))
	for i, r := range records {
		out[i] = mining.Record{Sid: r.Sid, Eid: r.Eid, Items: r.Items}
	}
	return out
}
