package mining

import "github.com/grailbio/base/errors"

// Algorithm selects one of the four enumeration strategies spec.md 4.6
// defines, by the same names the command-line driver accepts.
type Algorithm string

const (
	DepthFirst          Algorithm = "dspade"
	BreadthFirst        Algorithm = "bspade"
	MaxEltsDepthFirst   Algorithm = "maxelts-dspade"
	MaxEltsBreadthFirst Algorithm = "maxelts-bspade"
)

// Mine dispatches to the enumerator algo names, building vdb's frequent
// sequential patterns at the given minsup and reporting each to sink as it
// is discovered. maxElts is ignored unless algo is one of the maxelts
// variants. stats, if non-nil, accumulates the instrumentation counters
// spec.md 4.7 describes; passing nil skips collection entirely.
func Mine(algo Algorithm, vdb VerticalDB, minsup, maxElts int, sink DiscoverySink, stats *Stats) error {
	switch algo {
	case DepthFirst:
		return DSpade(vdb, minsup, sink, stats)
	case BreadthFirst:
		return BSpade(vdb, minsup, sink, stats)
	case MaxEltsDepthFirst:
		return MaxEltsDSpade(vdb, minsup, maxElts, sink, stats)
	case MaxEltsBreadthFirst:
		return MaxEltsBSpade(vdb, minsup, maxElts, sink, stats)
	default:
		return errors.E(errors.Invalid, "unknown mining algorithm", string(algo))
	}
}
