package skill

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      Skill
		want    Skill
		wantErr bool
	}{
		{
			name: "trims and canonicalises category",
			in:   Skill{Name: "  Guitar ", Category: "music", Description: " chords ", Proficiency: 4},
			want: Skill{Name: "Guitar", Category: "Music", Description: "chords", Proficiency: 4},
		},
		{
			name: "empty category defaults to other",
			in:   Skill{Name: "Knots", Proficiency: 1},
			want: Skill{Name: "Knots", Category: DefaultCategory, Proficiency: 1},
		},
		{name: "empty name", in: Skill{Name: "   ", Proficiency: 3}, wantErr: true},
		{name: "proficiency too low", in: Skill{Name: "Go", Proficiency: 0}, wantErr: true},
		{name: "proficiency too high", in: Skill{Name: "Go", Proficiency: 6}, wantErr: true},
		{name: "unknown category", in: Skill{Name: "Go", Category: "Wizardry", Proficiency: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSameNameIsCaseInsensitive(t *testing.T) {
	if !SameName("python", "Python") {
		t.Fatalf("expected python == Python")
	}
	if !SameName(" STRASSE", "strasse") {
		t.Fatalf("expected folded names to match")
	}
	if SameName("Go", "Golang") {
		t.Fatalf("expected different names not to match")
	}
}

func TestMatchesTerm(t *testing.T) {
	s := Skill{Name: "Spanish Conversation", Category: "Language"}
	if !MatchesTerm(s, "spanish") {
		t.Fatalf("expected name substring match")
	}
	if !MatchesTerm(s, "LANG") {
		t.Fatalf("expected category substring match")
	}
	if MatchesTerm(s, "guitar") {
		t.Fatalf("unexpected match")
	}
	if MatchesTerm(s, "  ") {
		t.Fatalf("blank term must not match")
	}
}
