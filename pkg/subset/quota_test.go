package subset_test

import (
	"fmt"
	"testing"

	"github.com/clindata/clinsub/pkg/subset"
	"github.com/stretchr/testify/assert"
)

func TestQuota_FirstSeenFirstKept(t *testing.T) {
	// Patient P1 has 25 events in source order; with a cap of 20
	// exactly the first 20 must win.
	q := subset.NewQuota(subset.NewKeySet("P1"), 20)

	var kept []int
	for i := 1; i <= 25; i++ {
		if q.Take("P1") {
			kept = append(kept, i)
		}
	}

	assert.Len(t, kept, 20)
	assert.Equal(t, 1, kept[0])
	assert.Equal(t, 20, kept[19])
	assert.True(t, q.Exhausted())
}

func TestQuota_UnknownGroupRejected(t *testing.T) {
	q := subset.NewQuota(subset.NewKeySet("P1"), 2)

	assert.False(t, q.Take("P2"),
		"keys outside the group set are never eligible")
	assert.Equal(t, 2, q.Remaining("P1"))
}

func TestQuota_ExhaustedAcrossGroups(t *testing.T) {
	q := subset.NewQuota(subset.NewKeySet("P1", "P2"), 1)

	assert.False(t, q.Exhausted())
	assert.True(t, q.Take("P1"))
	assert.False(t, q.Exhausted(), "P2 still has budget")
	assert.True(t, q.Take("P2"))
	assert.True(t, q.Exhausted())

	assert.False(t, q.Take("P1"))
	assert.False(t, q.Take("P2"))
}

func TestQuota_EmptyGroupSet(t *testing.T) {
	q := subset.NewQuota(subset.KeySet{}, 10)

	assert.True(t, q.Exhausted(),
		"no groups means nothing can ever be accepted")
}

func TestQuota_GroupWithNoRows(t *testing.T) {
	// A patient in the key set but absent from the source keeps its
	// full budget; that is a normal outcome, not an error.
	q := subset.NewQuota(subset.NewKeySet("P1", "P2"), 3)

	for range 3 {
		q.Take("P1")
	}

	assert.False(t, q.Exhausted())
	assert.Equal(t, 3, q.Remaining("P2"))
}

func TestQuota_ManyGroups(t *testing.T) {
	groups := make(subset.KeySet)
	for i := range 100 {
		groups.Add(fmt.Sprintf("P%d", i))
	}
	q := subset.NewQuota(groups, 2)

	for g := range groups {
		assert.True(t, q.Take(g))
		assert.True(t, q.Take(g))
	}
	assert.True(t, q.Exhausted())
}
