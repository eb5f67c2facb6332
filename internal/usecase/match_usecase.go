package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/repository"
)

// Partner is a discovered member with the matches seen from the caller's side.
type Partner struct {
	MemberID string
	Profile  profile.Profile
	Matches  []matching.Match
}

type MatchUsecase interface {
	// FindMatches returns an empty list when either profile is absent.
	FindMatches(ctx context.Context, c Caller, targetID string) ([]matching.Match, error)
	Discover(ctx context.Context, c Caller) ([]Partner, error)
}

type Matches struct {
	store repository.Store
}

func NewMatchUsecase(store repository.Store) *Matches {
	return &Matches{store: store}
}

func (u *Matches) FindMatches(ctx context.Context, c Caller, targetID string) ([]matching.Match, error) {
	if !c.Authenticated() {
		return nil, ErrUnauthorized
	}
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, invalid("target member id is required")
	}

	viewer, err := u.optionalProfile(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	target, err := u.optionalProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return matching.FindMatches(viewer, target), nil
}

func (u *Matches) Discover(ctx context.Context, c Caller) ([]Partner, error) {
	if !c.Authenticated() {
		return nil, ErrUnauthorized
	}

	out := make([]Partner, 0)
	viewer, err := u.optionalProfile(ctx, c.ID)
	if err != nil || viewer == nil {
		return out, err
	}

	entries, err := u.store.Profiles().List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	for i := range entries {
		e := entries[i]
		if e.MemberID == c.ID {
			continue
		}
		ms := matching.FindMatches(viewer, &e.Profile)
		if len(ms) == 0 {
			continue
		}
		out = append(out, Partner{MemberID: e.MemberID, Profile: e.Profile, Matches: ms})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Matches) != len(out[j].Matches) {
			return len(out[i].Matches) > len(out[j].Matches)
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out, nil
}

func (u *Matches) optionalProfile(ctx context.Context, memberID string) (*profile.Profile, error) {
	p, err := u.store.Profiles().Get(ctx, memberID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, internal(err)
	}
	return &p, nil
}
