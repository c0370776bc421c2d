package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectNextEmptyCandidates(t *testing.T) {
	assert.Nil(t, selectNext(nil, nil))
	assert.Nil(t, selectNext([]Question{}, nil))
}

func TestSelectNextReturnsMember(t *testing.T) {
	candidates := []Question{
		{ID: 1, Question: "q1"},
		{ID: 2, Question: "q2"},
		{ID: 3, Question: "q3"},
	}
	ids := map[int]bool{1: true, 2: true, 3: true}

	for i := 0; i < 100; i++ {
		got := selectNext(candidates, nil)
		require.NotNil(t, got)
		assert.True(t, ids[got.ID], "selected id %d outside candidate set", got.ID)
	}
}

func TestSelectNextHonorsPick(t *testing.T) {
	candidates := []Question{{ID: 10}, {ID: 20}, {ID: 30}}

	got := selectNext(candidates, func(n int) int {
		require.Equal(t, len(candidates), n)
		return 2
	})
	require.NotNil(t, got)
	assert.Equal(t, 30, got.ID)
}

func TestSelectNextCopiesElement(t *testing.T) {
	candidates := []Question{{ID: 1, Question: "original"}}

	got := selectNext(candidates, func(int) int { return 0 })
	require.NotNil(t, got)
	got.Question = "mutated"
	assert.Equal(t, "original", candidates[0].Question)
}
