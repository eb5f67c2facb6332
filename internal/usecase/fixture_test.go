package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/pkg/clock"
	"skill-swap/internal/repository/memory"
)

type fixture struct {
	store     *memory.Store
	scope     tally.TestScope
	profiles  *Profiles
	matches   *Matches
	exchanges *Exchanges
	gate      *AccessGate
	messages  *Messages
	ratings   *Ratings
	roles     *Roles
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMonotonic(func() time.Time { return base })
	store := memory.New()
	scope := tally.NewTestScope("", nil)
	gate := NewAccessGate(store)

	return &fixture{
		store:     store,
		scope:     scope,
		profiles:  NewProfileUsecase(store, nil, time.Minute, clk, nil),
		matches:   NewMatchUsecase(store),
		exchanges: NewExchangeUsecase(store, clk, scope, nil),
		gate:      gate,
		messages:  NewMessageUsecase(store, gate, clk, 0, scope, nil),
		ratings:   NewRatingUsecase(store, gate, nil, time.Minute, clk, scope, nil),
		roles:     NewRoleUsecase(store, []string{"root"}, clk, nil),
	}
}

func member(id string) Caller {
	return Caller{ID: id, Role: role.User}
}

func skills(names ...string) []skill.Skill {
	out := make([]skill.Skill, 0, len(names))
	for _, n := range names {
		out = append(out, skill.Skill{Name: n, Category: "Other", Proficiency: 3})
	}
	return out
}

func (f *fixture) saveProfile(t *testing.T, id string, offered, wanted []skill.Skill) {
	t.Helper()
	_, err := f.profiles.SaveCallerProfile(context.Background(), member(id), profile.Profile{
		Name:          id,
		OfferedSkills: offered,
		WantedSkills:  wanted,
	})
	require.NoError(t, err)
}

// guitarSpanish sets up the complementary Guitar <-> Spanish pair.
func (f *fixture) guitarSpanish(t *testing.T) {
	t.Helper()
	f.saveProfile(t, "viewer",
		[]skill.Skill{{Name: "Guitar", Category: "Music", Proficiency: 4}},
		[]skill.Skill{{Name: "Spanish", Category: "Language", Proficiency: 2}},
	)
	f.saveProfile(t, "target",
		[]skill.Skill{{Name: "Spanish", Category: "Language", Proficiency: 5}},
		[]skill.Skill{{Name: "Guitar", Category: "Music", Proficiency: 1}},
	)
}

func counterValue(s tally.TestScope, name string) int64 {
	var total int64
	for _, c := range s.Snapshot().Counters() {
		if c.Name() == name {
			total += c.Value()
		}
	}
	return total
}
