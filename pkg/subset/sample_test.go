package subset_test

import (
	"fmt"
	"testing"

	"github.com/clindata/clinsub/pkg/errcode"
	"github.com/clindata/clinsub/pkg/subset"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admissionKeys(n int) subset.KeySet {
	res := make(subset.KeySet, n)
	for i := 1; i <= n; i++ {
		res.Add(fmt.Sprintf("A%d", i))
	}
	return res
}

func TestSampleKeys_Size(t *testing.T) {
	keys := admissionKeys(10)

	sampled, err := subset.SampleKeys(keys, 3, 42)
	require.NoError(t, err)

	assert.Len(t, sampled, 3)
	for k := range sampled {
		assert.True(t, keys.Has(k),
			"sampled key must come from the population")
	}
}

func TestSampleKeys_Deterministic(t *testing.T) {
	keys := admissionKeys(10)

	first, err := subset.SampleKeys(keys, 3, 42)
	require.NoError(t, err)

	second, err := subset.SampleKeys(keys, 3, 42)
	require.NoError(t, err)

	assert.Equal(t, first, second,
		"same population, size and seed must give the same sample")
}

func TestSampleKeys_SeedChangesOrdering(t *testing.T) {
	// With 1000 keys and a sample of 100, two different seeds
	// producing identical samples would mean the seed is ignored.
	keys := admissionKeys(1000)

	first, err := subset.SampleKeys(keys, 100, 42)
	require.NoError(t, err)

	second, err := subset.SampleKeys(keys, 100, 43)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSampleKeys_FullPopulation(t *testing.T) {
	keys := admissionKeys(5)

	sampled, err := subset.SampleKeys(keys, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, keys, sampled)
}

func TestSampleKeys_InsufficientPopulation(t *testing.T) {
	keys := admissionKeys(4)

	_, err := subset.SampleKeys(keys, 5, 42)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.InsufficientPopulationError, gnErr.Code)
	assert.Equal(t, []any{5, 4}, gnErr.Vars)
}

func TestSampleKeys_EmptyPopulation(t *testing.T) {
	sampled, err := subset.SampleKeys(subset.KeySet{}, 0, 42)
	require.NoError(t, err)
	assert.Empty(t, sampled)
}
