package matching

import (
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
)

// Match is one complementary skill pair seen from the viewer's side.
type Match struct {
	ViewerOfferedSkill string `json:"viewer_offered_skill"`
	ViewerWantedSkill  string `json:"viewer_wanted_skill"`
	TargetOfferedSkill string `json:"target_offered_skill"`
	TargetWantedSkill  string `json:"target_wanted_skill"`
}

// FindMatches returns every (offered, wanted) pair of the viewer for which the
// target offers the wanted skill and wants the offered skill. Iteration order
// is viewer offered skills outer, wanted skills inner; duplicates in the
// input produce duplicate matches. A nil profile on either side yields no
// matches.
func FindMatches(viewer, target *profile.Profile) []Match {
	out := make([]Match, 0)
	if viewer == nil || target == nil {
		return out
	}
	if len(viewer.OfferedSkills) == 0 || len(viewer.WantedSkills) == 0 {
		return out
	}

	targetOffers := skill.Names(target.OfferedSkills)
	targetWants := skill.Names(target.WantedSkills)

	for _, offered := range viewer.OfferedSkills {
		if _, ok := targetWants[skill.Key(offered.Name)]; !ok {
			continue
		}
		for _, wanted := range viewer.WantedSkills {
			if _, ok := targetOffers[skill.Key(wanted.Name)]; !ok {
				continue
			}
			out = append(out, Match{
				ViewerOfferedSkill: offered.Name,
				ViewerWantedSkill:  wanted.Name,
				TargetOfferedSkill: wanted.Name,
				TargetWantedSkill:  offered.Name,
			})
		}
	}
	return out
}

// Invert swaps the perspective of a match.
func (m Match) Invert() Match {
	return Match{
		ViewerOfferedSkill: m.TargetOfferedSkill,
		ViewerWantedSkill:  m.TargetWantedSkill,
		TargetOfferedSkill: m.ViewerOfferedSkill,
		TargetWantedSkill:  m.ViewerWantedSkill,
	}
}

// Contains reports whether a match exists for the given offered/wanted pair,
// comparing names case-insensitively.
func Contains(matches []Match, offered, wanted string) (Match, bool) {
	for _, m := range matches {
		if skill.SameName(m.ViewerOfferedSkill, offered) && skill.SameName(m.ViewerWantedSkill, wanted) {
			return m, true
		}
	}
	return Match{}, false
}
