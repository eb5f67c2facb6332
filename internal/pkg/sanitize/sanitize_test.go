package sanitize

import (
	"testing"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "  hello  ", want: "hello"},
		{name: "script removed", input: `<script>alert(1)</script>hi`, want: "hi"},
		{name: "tags stripped", input: `<b>Guitar</b> & <i>bass</i>`, want: "Guitar & bass"},
		{name: "null bytes", input: "a\x00b", want: "ab"},
		{name: "only markup", input: "<p></p>", want: ""},
		{name: "less than kept", input: "if a<b then swap", want: "if a<b then swap"},
		{name: "comparisons kept", input: "use x<y && y>z", want: "use x<y && y>z"},
		{name: "spaced bracket", input: "2 < 3", want: "2 < 3"},
		{name: "tag after stray bracket", input: "a<b <i>c</i>", want: "a<b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	for _, in := range []string{"if a<b then swap", "use x<y && y>z", "<b>bold</b>", "  padded  "} {
		if got := Plain(in); got != in {
			t.Errorf("Plain(%q) = %q, want unchanged", in, got)
		}
	}
	if got := Plain("a\x00b"); got != "ab" {
		t.Errorf("Plain kept a null byte: %q", got)
	}
}

func TestProfile(t *testing.T) {
	p := Profile(profile.Profile{
		Name:          "<em>Ana</em>",
		Bio:           "I <b>love</b> music",
		OfferedSkills: []skill.Skill{{Name: "<u>Guitar</u>", Description: "<a href='x'>chords</a>"}},
	})
	if p.Name != "Ana" || p.Bio != "I love music" {
		t.Fatalf("unexpected profile text: %+v", p)
	}
	if p.OfferedSkills[0].Name != "Guitar" || p.OfferedSkills[0].Description != "chords" {
		t.Fatalf("unexpected skill text: %+v", p.OfferedSkills[0])
	}
}
