package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/pkg/sanitize"
	"skill-swap/internal/repository"
)

type ProfileInput struct {
	Name          string
	Bio           string
	OfferedSkills []skill.Skill
	WantedSkills  []skill.Skill
}

// SkillHit is an offered skill returned by search together with its owner.
type SkillHit struct {
	MemberID string
	Skill    skill.Skill
}

type ProfileUsecase interface {
	// GetCallerProfile returns nil for anonymous callers and callers without
	// a profile.
	GetCallerProfile(ctx context.Context, c Caller) (*profile.Profile, error)
	SaveCallerProfile(ctx context.Context, c Caller, p profile.Profile) (profile.Profile, error)
	CreateOrUpdateProfile(ctx context.Context, c Caller, in ProfileInput) (profile.Profile, error)
	GetProfile(ctx context.Context, c Caller, memberID string) (*profile.Profile, error)
	ListProfiles(ctx context.Context, c Caller) ([]profile.Entry, error)
	SearchSkills(ctx context.Context, c Caller, term string) ([]SkillHit, error)
}

type Profiles struct {
	store    repository.Store
	cache    Cache
	cacheTTL time.Duration
	clock    Clock
	logger   *zap.Logger
}

func NewProfileUsecase(store repository.Store, cache Cache, cacheTTL time.Duration, clock Clock, log *zap.Logger) *Profiles {
	return &Profiles{
		store:    store,
		cache:    cacheOrNoop(cache),
		cacheTTL: cacheTTL,
		clock:    clockOrSystem(clock),
		logger:   logger.OrNop(log),
	}
}

func (u *Profiles) GetCallerProfile(ctx context.Context, c Caller) (*profile.Profile, error) {
	if !c.Authenticated() {
		return nil, nil
	}
	return u.lookup(ctx, c.ID)
}

func (u *Profiles) SaveCallerProfile(ctx context.Context, c Caller, p profile.Profile) (profile.Profile, error) {
	if !c.Authenticated() {
		return profile.Profile{}, ErrUnauthorized
	}

	p, err := profile.Normalize(sanitize.Profile(p))
	if err != nil {
		return profile.Profile{}, validation(err)
	}
	p.UpdatedAt = u.clock.Now()

	err = u.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Profiles().Upsert(ctx, c.ID, p)
	})
	if err != nil {
		return profile.Profile{}, internal(err)
	}

	u.invalidate(ctx, c.ID)
	u.logger.Debug("profile saved",
		zap.String("member_id", c.ID),
		zap.Int("offered", len(p.OfferedSkills)),
		zap.Int("wanted", len(p.WantedSkills)),
	)
	return p, nil
}

func (u *Profiles) CreateOrUpdateProfile(ctx context.Context, c Caller, in ProfileInput) (profile.Profile, error) {
	return u.SaveCallerProfile(ctx, c, profile.Profile{
		Name:          in.Name,
		Bio:           in.Bio,
		OfferedSkills: in.OfferedSkills,
		WantedSkills:  in.WantedSkills,
	})
}

func (u *Profiles) GetProfile(ctx context.Context, c Caller, memberID string) (*profile.Profile, error) {
	if err := c.Require(role.ReadPublic); err != nil {
		return nil, err
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, invalid("member id is required")
	}
	return u.lookup(ctx, memberID)
}

func (u *Profiles) ListProfiles(ctx context.Context, c Caller) ([]profile.Entry, error) {
	if err := c.Require(role.ReadPublic); err != nil {
		return nil, err
	}
	return u.directory(ctx)
}

func (u *Profiles) SearchSkills(ctx context.Context, c Caller, term string) ([]SkillHit, error) {
	if err := c.Require(role.ReadPublic); err != nil {
		return nil, err
	}
	out := make([]SkillHit, 0)
	if strings.TrimSpace(term) == "" {
		return out, nil
	}

	entries, err := u.directory(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		for _, s := range e.Profile.OfferedSkills {
			if skill.MatchesTerm(s, term) {
				out = append(out, SkillHit{MemberID: e.MemberID, Skill: s})
			}
		}
	}
	return out, nil
}

func (u *Profiles) lookup(ctx context.Context, memberID string) (*profile.Profile, error) {
	var cached profile.Profile
	if hit, err := u.cache.GetJSON(ctx, profileKey(memberID), &cached); err == nil && hit {
		return &cached, nil
	}

	p, err := u.store.Profiles().Get(ctx, memberID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, internal(err)
	}

	if err := u.cache.SetJSON(ctx, profileKey(memberID), p, u.cacheTTL); err != nil {
		u.logger.Debug("profile cache write failed", zap.String("member_id", memberID), zap.Error(err))
	}
	return &p, nil
}

func (u *Profiles) directory(ctx context.Context) ([]profile.Entry, error) {
	var cached []profile.Entry
	if hit, err := u.cache.GetJSON(ctx, keyProfileDirectory, &cached); err == nil && hit {
		return cached, nil
	}

	entries, err := u.store.Profiles().List(ctx)
	if err != nil {
		return nil, internal(err)
	}

	if err := u.cache.SetJSON(ctx, keyProfileDirectory, entries, u.cacheTTL); err != nil {
		u.logger.Debug("directory cache write failed", zap.Error(err))
	}
	return entries, nil
}

func (u *Profiles) invalidate(ctx context.Context, memberID string) {
	if err := u.cache.Delete(ctx, profileKey(memberID), keyProfileDirectory); err != nil {
		u.logger.Warn("profile cache invalidation failed", zap.String("member_id", memberID), zap.Error(err))
	}
}
