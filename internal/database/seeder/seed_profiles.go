package seeder

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"
)

// DemoProfilesSeeder creates a handful of profiles, including the
// complementary Guitar <-> Spanish pair. Existing profiles are left alone.
type DemoProfilesSeeder struct {
	Now func() time.Time
}

func (DemoProfilesSeeder) Name() string { return "demo_profiles" }

func (s DemoProfilesSeeder) Run(ctx context.Context, store repository.Store) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	items := []profile.Entry{
		{MemberID: "demo-ana", Profile: profile.Profile{
			Name:          "Ana",
			Bio:           "Guitarist looking to finally learn Spanish.",
			OfferedSkills: []skill.Skill{{Name: "Guitar", Category: "Music", Description: "Acoustic and classical", Proficiency: 4}},
			WantedSkills:  []skill.Skill{{Name: "Spanish", Category: "Language", Proficiency: 2}},
		}},
		{MemberID: "demo-diego", Profile: profile.Profile{
			Name:          "Diego",
			Bio:           "Native Spanish speaker, beginner on strings.",
			OfferedSkills: []skill.Skill{{Name: "Spanish", Category: "Language", Description: "Conversation practice", Proficiency: 5}},
			WantedSkills:  []skill.Skill{{Name: "Guitar", Category: "Music", Proficiency: 1}},
		}},
		{MemberID: "demo-kim", Profile: profile.Profile{
			Name: "Kim",
			Bio:  "Backend developer who bakes on weekends.",
			OfferedSkills: []skill.Skill{
				{Name: "Go", Category: "Technology", Description: "Services and tooling", Proficiency: 5},
				{Name: "Sourdough", Category: "Cooking", Proficiency: 3},
			},
			WantedSkills: []skill.Skill{{Name: "Watercolor", Category: "Art", Proficiency: 1}},
		}},
		{MemberID: "demo-lea", Profile: profile.Profile{
			Name:          "Lea",
			Bio:           "Illustrator curious about programming.",
			OfferedSkills: []skill.Skill{{Name: "Watercolor", Category: "Art", Proficiency: 4}},
			WantedSkills:  []skill.Skill{{Name: "Go", Category: "Technology", Proficiency: 1}},
		}},
	}

	return store.WithinTx(ctx, func(tx repository.Store) error {
		for _, it := range items {
			_, err := tx.Profiles().Get(ctx, it.MemberID)
			if err == nil {
				continue
			}
			if !errors.Is(err, profile.ErrNotFound) {
				return err
			}

			p, err := profile.Normalize(it.Profile)
			if err != nil {
				return err
			}
			p.UpdatedAt = now().UTC()
			if err := tx.Profiles().Upsert(ctx, it.MemberID, p); err != nil {
				return err
			}
		}
		return nil
	})
}
