package matching

import (
	"testing"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sk(names ...string) []skill.Skill {
	out := make([]skill.Skill, 0, len(names))
	for _, n := range names {
		out = append(out, skill.Skill{Name: n, Category: "Other", Proficiency: 3})
	}
	return out
}

func TestFindMatches_GuitarForSpanish(t *testing.T) {
	viewer := &profile.Profile{Name: "V", OfferedSkills: sk("Guitar"), WantedSkills: sk("Spanish")}
	target := &profile.Profile{Name: "T", OfferedSkills: sk("Spanish"), WantedSkills: sk("Guitar")}

	got := FindMatches(viewer, target)

	require.Len(t, got, 1)
	assert.Equal(t, Match{
		ViewerOfferedSkill: "Guitar",
		ViewerWantedSkill:  "Spanish",
		TargetOfferedSkill: "Spanish",
		TargetWantedSkill:  "Guitar",
	}, got[0])
}

func TestFindMatches_OneDirectionIsNotAMatch(t *testing.T) {
	viewer := &profile.Profile{OfferedSkills: sk("Cooking"), WantedSkills: sk("Guitar")}
	target := &profile.Profile{OfferedSkills: sk("Guitar"), WantedSkills: sk("Chess")}

	assert.Empty(t, FindMatches(viewer, target))
}

func TestFindMatches_CaseInsensitive(t *testing.T) {
	viewer := &profile.Profile{OfferedSkills: sk("python"), WantedSkills: sk("design")}
	target := &profile.Profile{OfferedSkills: sk("Design"), WantedSkills: sk("Python")}

	got := FindMatches(viewer, target)
	require.Len(t, got, 1)
	assert.Equal(t, "python", got[0].ViewerOfferedSkill)
}

func TestFindMatches_SymmetryOfIntent(t *testing.T) {
	a := &profile.Profile{OfferedSkills: sk("Go", "Chess", "Baking"), WantedSkills: sk("Piano", "French")}
	b := &profile.Profile{OfferedSkills: sk("French", "Piano"), WantedSkills: sk("go", "Baking", "Yoga")}

	ab := FindMatches(a, b)
	ba := FindMatches(b, a)
	require.Len(t, ab, 4)
	require.Len(t, ba, 4)

	for _, m := range ab {
		n := 0
		for _, r := range ba {
			if skillsEqual(r, m.Invert()) {
				n++
			}
		}
		assert.Equalf(t, 1, n, "expected exactly one inverse for %+v", m)
	}
}

func TestFindMatches_OrderAndDuplicates(t *testing.T) {
	viewer := &profile.Profile{OfferedSkills: sk("Go", "Go"), WantedSkills: sk("Piano", "French")}
	target := &profile.Profile{OfferedSkills: sk("French", "Piano"), WantedSkills: sk("Go")}

	got := FindMatches(viewer, target)
	require.Len(t, got, 4)
	assert.Equal(t, "Piano", got[0].ViewerWantedSkill)
	assert.Equal(t, "French", got[1].ViewerWantedSkill)
	assert.Equal(t, got[0], got[2])
}

func TestFindMatches_NilProfiles(t *testing.T) {
	p := &profile.Profile{OfferedSkills: sk("Go"), WantedSkills: sk("Piano")}
	assert.NotNil(t, FindMatches(nil, p))
	assert.Empty(t, FindMatches(nil, p))
	assert.Empty(t, FindMatches(p, nil))
}

func TestContains(t *testing.T) {
	ms := []Match{{ViewerOfferedSkill: "Guitar", ViewerWantedSkill: "Spanish"}}
	_, ok := Contains(ms, "guitar", "SPANISH")
	assert.True(t, ok)
	_, ok = Contains(ms, "Spanish", "Guitar")
	assert.False(t, ok)
}

func skillsEqual(a, b Match) bool {
	return skill.SameName(a.ViewerOfferedSkill, b.ViewerOfferedSkill) &&
		skill.SameName(a.ViewerWantedSkill, b.ViewerWantedSkill) &&
		skill.SameName(a.TargetOfferedSkill, b.TargetOfferedSkill) &&
		skill.SameName(a.TargetWantedSkill, b.TargetWantedSkill)
}
