package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-swap/internal/domain/skill"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrInvalid  = errors.New("invalid profile")
)

const (
	MaxNameLength = 120
	MaxBioLength  = 2000
)

// Profile is owned by exactly one member and only that member writes it.
// Duplicate skill names within a list are kept as separate entries.
type Profile struct {
	Name          string        `json:"name"`
	Bio           string        `json:"bio"`
	OfferedSkills []skill.Skill `json:"offered_skills"`
	WantedSkills  []skill.Skill `json:"wanted_skills"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Entry struct {
	MemberID string  `json:"member_id"`
	Profile  Profile `json:"profile"`
}

func Normalize(p Profile) (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Bio = strings.TrimSpace(p.Bio)
	if p.Name == "" {
		return Profile{}, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len([]rune(p.Name)) > MaxNameLength {
		return Profile{}, fmt.Errorf("%w: name is longer than %d characters", ErrInvalid, MaxNameLength)
	}
	if len([]rune(p.Bio)) > MaxBioLength {
		return Profile{}, fmt.Errorf("%w: bio is longer than %d characters", ErrInvalid, MaxBioLength)
	}

	offered, err := normalizeSkills(p.OfferedSkills, "offered")
	if err != nil {
		return Profile{}, err
	}
	wanted, err := normalizeSkills(p.WantedSkills, "wanted")
	if err != nil {
		return Profile{}, err
	}
	p.OfferedSkills = offered
	p.WantedSkills = wanted
	return p, nil
}

func normalizeSkills(in []skill.Skill, list string) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0, len(in))
	for i, s := range in {
		n, err := skill.Normalize(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s skill #%d: %v", ErrInvalid, list, i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Offers reports whether the profile lists name among its offered skills.
func (p Profile) Offers(name string) bool {
	_, ok := skill.Find(p.OfferedSkills, name)
	return ok
}

// Wants reports whether the profile lists name among its wanted skills.
func (p Profile) Wants(name string) bool {
	_, ok := skill.Find(p.WantedSkills, name)
	return ok
}
