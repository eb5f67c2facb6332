package profile

import (
	"errors"
	"strings"
	"testing"

	"skill-swap/internal/domain/skill"
)

func TestNormalize_RequiresName(t *testing.T) {
	_, err := Normalize(Profile{Name: "   "})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNormalize_RejectsBadSkill(t *testing.T) {
	_, err := Normalize(Profile{
		Name:          "Ana",
		OfferedSkills: []skill.Skill{{Name: "Guitar", Proficiency: 9}},
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "offered skill #1") {
		t.Fatalf("expected error to point at the offending skill, got %v", err)
	}
}

func TestNormalize_KeepsDuplicatesAndOrder(t *testing.T) {
	p, err := Normalize(Profile{
		Name: " Ana ",
		OfferedSkills: []skill.Skill{
			{Name: "Guitar", Category: "Music", Proficiency: 4},
			{Name: "guitar", Category: "Music", Proficiency: 2},
		},
		WantedSkills: []skill.Skill{{Name: "Spanish", Category: "Language", Proficiency: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Name != "Ana" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if len(p.OfferedSkills) != 2 || p.OfferedSkills[0].Proficiency != 4 {
		t.Fatalf("expected duplicates kept in order, got %+v", p.OfferedSkills)
	}
	if !p.Offers("GUITAR") || !p.Wants("spanish") || p.Wants("guitar") {
		t.Fatalf("unexpected Offers/Wants result")
	}
}
