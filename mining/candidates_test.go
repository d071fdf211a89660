package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// classifiedFixture builds a classified test fixture without going through F1/F2.
func classifiedFixture(pattern Pattern, tl TidList) classified {
	return classify(Node{Pattern: pattern, TidList: tl})
}

func TestJoinInClassIPlusI(t *testing.T) {
	// <{A B}> and <{A C}> share prefix <{A}> -> I+I yields <{A B C}>.
	a := classifiedFixture(Pattern{NewEvent([]Item{"A", "B"})}, TidList{{1, 1}, {2, 1}})
	b := classifiedFixture(Pattern{NewEvent([]Item{"A", "C"})}, TidList{{1, 1}, {2, 1}, {3, 1}})

	out := joinInClass(a, b, 1, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, "<{A B C}>", out[0].Pattern.Format())
}

func TestJoinInClassIPlusS(t *testing.T) {
	// <{A B}> (I-step) and <{A}->{C}> (S-step) share prefix <{A}>.
	a := classifiedFixture(Pattern{NewEvent([]Item{"A", "B"})}, TidList{{1, 1}, {2, 1}})
	b := classifiedFixture(Pattern{NewEvent([]Item{"A"}), NewEvent([]Item{"C"})}, TidList{{1, 2}, {2, 2}})

	out := joinInClass(a, b, 1, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, "<{A B}->{C}>", out[0].Pattern.Format())
}

func TestJoinInClassSPlusI(t *testing.T) {
	a := classifiedFixture(Pattern{NewEvent([]Item{"A"}), NewEvent([]Item{"C"})}, TidList{{1, 2}, {2, 2}})
	b := classifiedFixture(Pattern{NewEvent([]Item{"A", "B"})}, TidList{{1, 1}, {2, 1}})

	out := joinInClass(a, b, 1, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, "<{A B}->{C}>", out[0].Pattern.Format())
}

func TestJoinInClassSPlusSProducesThreeCandidates(t *testing.T) {
	// <{A}->{B}> and <{A}->{C}> share prefix <{A}>.
	// B and C co-occur in sid 1, B precedes C in sid 2, C precedes B in sid 3,
	// so all three candidates have support 1.
	a := classifiedFixture(Pattern{NewEvent([]Item{"A"}), NewEvent([]Item{"B"})}, TidList{{1, 2}, {2, 2}, {3, 3}})
	b := classifiedFixture(Pattern{NewEvent([]Item{"A"}), NewEvent([]Item{"C"})}, TidList{{1, 2}, {2, 3}, {3, 2}})

	out := joinInClass(a, b, 1, nil)
	formats := make([]string, len(out))
	for i, n := range out {
		formats[i] = n.Pattern.Format()
	}
	assert.ElementsMatch(t, []string{"<{A}->{B C}>", "<{A}->{B}->{C}>", "<{A}->{C}->{B}>"}, formats)
}

func TestJoinInClassSPlusSSameAtomDedupsExtensions(t *testing.T) {
	// joinInClass itself has no i==j guard (the enumerators never call it
	// that way, but the function is agnostic to it): with xa == xb, the two
	// extension candidates <{A}->{B}->{B}> collapse to one, leaving that plus
	// the distinct event-merge candidate <{A}->{B}>. B recurs in sid 1, so the
	// extension's self S-join is non-empty and survives minsup 1.
	a := classifiedFixture(Pattern{NewEvent([]Item{"A"}), NewEvent([]Item{"B"})}, TidList{{1, 2}, {1, 3}, {2, 2}})

	out := joinInClass(a, a, 1, nil)
	assert.Len(t, out, 2)
}

func TestJoinInClassDifferentPrefixYieldsNothing(t *testing.T) {
	a := classifiedFixture(Pattern{NewEvent([]Item{"A"}), NewEvent([]Item{"B"})}, TidList{{1, 2}})
	b := classifiedFixture(Pattern{NewEvent([]Item{"X"}), NewEvent([]Item{"Y"})}, TidList{{1, 2}})
	assert.Empty(t, joinInClass(a, b, 1, nil))
}

func TestJoinInClassRecordsAttempted(t *testing.T) {
	a := classifiedFixture(Pattern{NewEvent([]Item{"A", "B"})}, TidList{{1, 1}, {2, 1}})
	b := classifiedFixture(Pattern{NewEvent([]Item{"A", "C"})}, TidList{{1, 1}, {2, 1}})
	stats := NewStats()
	joinInClass(a, b, 1, stats)
	assert.Equal(t, 1, stats.TotalAttempted())
}

func TestDedupSortedByPattern(t *testing.T) {
	n1 := Node{Pattern: Pattern{NewEvent([]Item{"B"})}}
	n2 := Node{Pattern: Pattern{NewEvent([]Item{"A"})}}
	n3 := Node{Pattern: Pattern{NewEvent([]Item{"A"})}}
	out := dedupSortedByPattern([]Node{n1, n2, n3})
	assert.Len(t, out, 2)
	assert.Equal(t, "<{A}>", out[0].Pattern.Format())
	assert.Equal(t, "<{B}>", out[1].Pattern.Format())
}
