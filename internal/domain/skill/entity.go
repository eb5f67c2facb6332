package skill

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

const (
	MinProficiency = 1
	MaxProficiency = 5
)

var ErrInvalid = errors.New("invalid skill")

// Categories offered by the profile editor. Anything else is rejected.
var Categories = []string{
	"Technology", "Design", "Business", "Language", "Music",
	"Art", "Cooking", "Fitness", "Science", "Writing", "Other",
}

const DefaultCategory = "Other"

type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Proficiency int    `json:"proficiency"`
}

// Key is the case-folded form of a skill name used for every comparison.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func SameName(a, b string) bool {
	return Key(a) == Key(b)
}

func CanonicalCategory(category string) (string, bool) {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory, true
	}
	k := Key(category)
	for _, c := range Categories {
		if Key(c) == k {
			return c, true
		}
	}
	return "", false
}

// Normalize trims the fields, canonicalises the category and checks the
// proficiency scale. The same scale applies to wanted skills.
func Normalize(s Skill) (Skill, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	if s.Name == "" {
		return Skill{}, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	cat, ok := CanonicalCategory(s.Category)
	if !ok {
		return Skill{}, fmt.Errorf("%w: unknown category %q", ErrInvalid, s.Category)
	}
	s.Category = cat

	if s.Proficiency < MinProficiency || s.Proficiency > MaxProficiency {
		return Skill{}, fmt.Errorf("%w: proficiency for %q must be between %d and %d", ErrInvalid, s.Name, MinProficiency, MaxProficiency)
	}
	return s, nil
}

// Names returns the set of folded names in list.
func Names(list []Skill) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, s := range list {
		out[Key(s.Name)] = struct{}{}
	}
	return out
}

// Find returns the first skill in list whose name folds to the same key.
func Find(list []Skill, name string) (Skill, bool) {
	k := Key(name)
	for _, s := range list {
		if Key(s.Name) == k {
			return s, true
		}
	}
	return Skill{}, false
}

// MatchesTerm reports whether term is a case-insensitive substring of the
// skill's name or category.
func MatchesTerm(s Skill, term string) bool {
	t := Key(term)
	if t == "" {
		return false
	}
	return strings.Contains(Key(s.Name), t) || strings.Contains(Key(s.Category), t)
}
