package rating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScore(t *testing.T) {
	for _, v := range []int{1, 3, 5} {
		assert.NoError(t, ValidateScore(v))
	}
	for _, v := range []int{-1, 0, 6} {
		assert.True(t, errors.Is(ValidateScore(v), ErrInvalid), "score %d", v)
	}
}

func TestSummarizeRatings(t *testing.T) {
	s := SummarizeRatings([]Rating{{Score: 5}, {Score: 3}, {Score: 4}})
	require.NotNil(t, s.Average)
	assert.Equal(t, 4.0, *s.Average)
	assert.Equal(t, int64(3), s.Count)

	empty := SummarizeRatings(nil)
	assert.Nil(t, empty.Average)
	assert.Equal(t, int64(0), empty.Count)
}
