package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-swap/internal/domain/rating"
	"skill-swap/internal/repository/memory"
	"skill-swap/internal/usecase/mocks"
)

func TestRatings_Average(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acceptedPair(t, f)

	sum, err := f.ratings.Average(ctx, Anonymous(), "target")
	require.NoError(t, err)
	assert.Nil(t, sum.Average, "unrated member has no average")
	assert.Zero(t, sum.Count)

	for _, score := range []int{5, 3, 4} {
		_, err := f.ratings.Leave(ctx, member("viewer"), LeaveRatingInput{To: "target", Rating: score})
		require.NoError(t, err)
	}

	sum, err = f.ratings.Average(ctx, Anonymous(), "target")
	require.NoError(t, err)
	require.NotNil(t, sum.Average)
	assert.Equal(t, 4.0, *sum.Average)
	assert.EqualValues(t, 3, sum.Count)

	list, err := f.ratings.List(ctx, Anonymous(), "target")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{5, 3, 4}, []int{list[0].Score, list[1].Score, list[2].Score})
}

func TestRatings_RejectsOutOfRangeWithoutWriting(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acceptedPair(t, f)

	for _, score := range []int{0, 6, -1} {
		_, err := f.ratings.Leave(ctx, member("viewer"), LeaveRatingInput{To: "target", Rating: score})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, rating.ErrInvalid)
	}

	list, err := f.ratings.List(ctx, Anonymous(), "target")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRatings_AverageUsesCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	store := memory.New()
	u := NewRatingUsecase(store, nil, cache, time.Minute, nil, nil, nil)

	avg := 4.5
	cache.EXPECT().
		GetJSON(gomock.Any(), "rating:avg:bob", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) (bool, error) {
			*(out.(*rating.Summary)) = rating.Summary{Count: 2, Sum: 9, Average: &avg}
			return true, nil
		})

	sum, err := u.Average(ctx, Anonymous(), "bob")
	require.NoError(t, err)
	require.NotNil(t, sum.Average)
	assert.Equal(t, 4.5, *sum.Average)
}

func TestRatings_AverageCacheMissFillsCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	u := NewRatingUsecase(memory.New(), nil, cache, time.Minute, nil, nil, nil)

	gomock.InOrder(
		cache.EXPECT().GetJSON(gomock.Any(), "rating:avg:bob", gomock.Any()).Return(false, errors.New("redis down")),
		cache.EXPECT().SetJSON(gomock.Any(), "rating:avg:bob", rating.Summary{}, MaxAverageCacheTTL).Return(nil),
	)

	sum, err := u.Average(ctx, Anonymous(), "bob")
	require.NoError(t, err)
	assert.Nil(t, sum.Average)
}

func TestRatings_ReviewStoredAsSent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acceptedPair(t, f)

	review := "patient tutor, tempo<100 bpm && chords>basics"
	left, err := f.ratings.Leave(ctx, member("viewer"), LeaveRatingInput{To: "target", Rating: 5, Review: review})
	require.NoError(t, err)
	assert.Equal(t, review, left.Review)

	list, err := f.ratings.List(ctx, Anonymous(), "target")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, review, list[0].Review)
}

func TestRatings_AverageCacheTTLIsBounded(t *testing.T) {
	tests := []struct {
		name       string
		configured time.Duration
		want       time.Duration
	}{
		{name: "default", configured: 0, want: MaxAverageCacheTTL},
		{name: "long ttl capped", configured: 10 * time.Minute, want: MaxAverageCacheTTL},
		{name: "short ttl kept", configured: 5 * time.Second, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := mocks.NewMockCache(ctrl)
			u := NewRatingUsecase(memory.New(), nil, cache, tt.configured, nil, nil, nil)

			cache.EXPECT().GetJSON(gomock.Any(), "rating:avg:bob", gomock.Any()).Return(false, nil)
			cache.EXPECT().SetJSON(gomock.Any(), "rating:avg:bob", gomock.Any(), tt.want).Return(nil)

			_, err := u.Average(context.Background(), Anonymous(), "bob")
			require.NoError(t, err)
		})
	}
}
