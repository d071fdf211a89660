package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSJoinStrictness(t *testing.T) {
	t1 := TidList{{1, 10}, {1, 20}, {2, 5}}
	t2 := TidList{{1, 10}, {1, 15}, {1, 25}, {2, 5}, {2, 6}}
	assert.Equal(t, TidList{{1, 15}, {1, 25}, {2, 6}}, SJoin(t1, t2))
}

func TestIJoin(t *testing.T) {
	t1 := TidList{{1, 10}, {1, 20}, {2, 10}}
	t2 := TidList{{1, 20}, {2, 10}, {2, 15}}
	assert.Equal(t, TidList{{1, 20}, {2, 10}}, IJoin(t1, t2))
}

func TestIJoinEmpty(t *testing.T) {
	assert.Empty(t, IJoin(nil, TidList{{1, 1}}))
	assert.Empty(t, IJoin(TidList{{1, 1}}, nil))
}

func TestSJoinEmpty(t *testing.T) {
	assert.Empty(t, SJoin(nil, TidList{{1, 1}}))
	assert.Empty(t, SJoin(TidList{{1, 1}}, nil))
}

func TestSupport(t *testing.T) {
	assert.Equal(t, 2, Support(TidList{{1, 1}, {1, 2}, {2, 1}}))
	assert.Equal(t, 0, Support(nil))
}
