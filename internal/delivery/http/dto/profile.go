package dto

import (
	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/usecase"
)

type ProfileRequest struct {
	Name          string        `json:"name"`
	Bio           string        `json:"bio"`
	OfferedSkills []skill.Skill `json:"offered_skills"`
	WantedSkills  []skill.Skill `json:"wanted_skills"`
}

func (r ProfileRequest) Input() usecase.ProfileInput {
	return usecase.ProfileInput{
		Name:          r.Name,
		Bio:           r.Bio,
		OfferedSkills: r.OfferedSkills,
		WantedSkills:  r.WantedSkills,
	}
}

type SkillHitResponse struct {
	MemberID string      `json:"member_id"`
	Skill    skill.Skill `json:"skill"`
}

func NewSkillHits(hits []usecase.SkillHit) []SkillHitResponse {
	out := make([]SkillHitResponse, 0, len(hits))
	for _, h := range hits {
		out = append(out, SkillHitResponse{MemberID: h.MemberID, Skill: h.Skill})
	}
	return out
}

type PartnerResponse struct {
	MemberID   string           `json:"member_id"`
	Profile    profile.Profile  `json:"profile"`
	MatchCount int              `json:"match_count"`
	Matches    []matching.Match `json:"matches"`
}

func NewPartners(partners []usecase.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, PartnerResponse{
			MemberID:   p.MemberID,
			Profile:    p.Profile,
			MatchCount: len(p.Matches),
			Matches:    p.Matches,
		})
	}
	return out
}
