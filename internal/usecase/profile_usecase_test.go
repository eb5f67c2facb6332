package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository/memory"
	"skill-swap/internal/usecase/mocks"
)

func TestProfiles_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	got, err := f.profiles.GetCallerProfile(ctx, Anonymous())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = f.profiles.GetCallerProfile(ctx, member("alice"))
	require.NoError(t, err)
	assert.Nil(t, got)

	saved, err := f.profiles.CreateOrUpdateProfile(ctx, member("alice"), ProfileInput{
		Name:          "  <i>Alice</i> ",
		Bio:           "Plays guitar",
		OfferedSkills: []skill.Skill{{Name: "Guitar", Category: "music", Proficiency: 4}},
		WantedSkills:  []skill.Skill{{Name: "Spanish", Proficiency: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", saved.Name)
	assert.Equal(t, "Music", saved.OfferedSkills[0].Category)
	assert.Equal(t, skill.DefaultCategory, saved.WantedSkills[0].Category)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err = f.profiles.GetCallerProfile(ctx, member("alice"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved, *got)

	got, err = f.profiles.GetProfile(ctx, Anonymous(), "alice")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = f.profiles.GetProfile(ctx, Anonymous(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfiles_SaveRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.profiles.SaveCallerProfile(ctx, Anonymous(), profile.Profile{Name: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	tests := []struct {
		name string
		in   profile.Profile
	}{
		{"empty name", profile.Profile{Name: "  "}},
		{"proficiency out of range", profile.Profile{Name: "a", OfferedSkills: []skill.Skill{{Name: "Go", Proficiency: 9}}}},
		{"unknown category", profile.Profile{Name: "a", WantedSkills: []skill.Skill{{Name: "Go", Category: "Astrology", Proficiency: 1}}}},
		{"blank skill name", profile.Profile{Name: "a", OfferedSkills: []skill.Skill{{Name: " ", Proficiency: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.profiles.SaveCallerProfile(ctx, member("alice"), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	got, err := f.profiles.GetCallerProfile(ctx, member("alice"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfiles_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.saveProfile(t, "carol", []skill.Skill{{Name: "Python", Category: "Technology", Proficiency: 5}}, nil)
	f.saveProfile(t, "alice", []skill.Skill{{Name: "Guitar", Category: "Music", Proficiency: 4}}, skills("Python"))

	list, err := f.profiles.ListProfiles(ctx, Anonymous())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].MemberID)

	hits, err := f.profiles.SearchSkills(ctx, Anonymous(), "PYTH")
	require.NoError(t, err)
	require.Len(t, hits, 1, "wanted skills are not searched")
	assert.Equal(t, "carol", hits[0].MemberID)

	hits, err = f.profiles.SearchSkills(ctx, Anonymous(), "music")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Guitar", hits[0].Skill.Name)

	hits, err = f.profiles.SearchSkills(ctx, Anonymous(), "  ")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestProfiles_CacheReadThroughAndInvalidation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	u := NewProfileUsecase(memory.New(), cache, time.Minute, nil, nil)

	cache.EXPECT().Delete(gomock.Any(), "profile:alice", "profiles:all").Return(nil)
	_, err := u.SaveCallerProfile(ctx, member("alice"), profile.Profile{Name: "Alice"})
	require.NoError(t, err)

	cache.EXPECT().GetJSON(gomock.Any(), "profile:alice", gomock.Any()).Return(false, nil)
	cache.EXPECT().SetJSON(gomock.Any(), "profile:alice", gomock.Any(), time.Minute).Return(nil)
	got, err := u.GetProfile(ctx, Anonymous(), "alice")
	require.NoError(t, err)
	require.NotNil(t, got)

	cache.EXPECT().
		GetJSON(gomock.Any(), "profile:alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) (bool, error) {
			*(out.(*profile.Profile)) = profile.Profile{Name: "Cached"}
			return true, nil
		})
	got, err = u.GetProfile(ctx, Anonymous(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Name)
}
