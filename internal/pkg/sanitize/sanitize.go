package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
)

var policy = bluemonday.StrictPolicy()

// tagPrefix matches a well-formed start or end tag, or a comment, at the
// start of the input. Any other '<' is literal text.
var tagPrefix = regexp.MustCompile(`^(?:<!--|</?[a-zA-Z][a-zA-Z0-9-]*(?:\s+[a-zA-Z_:][-a-zA-Z0-9_:.]*(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'=<>` + "`" + `]+))?)*\s*/?>)`)

// Text strips markup and null bytes from user supplied text. A '<' that
// does not open a tag is kept, so "a<b" survives. Entities produced by the
// policy are unescaped again since output is JSON, not HTML.
func Text(in string) string {
	in = strings.ReplaceAll(in, "\x00", "")
	out := policy.Sanitize(escapeStrayBrackets(in))
	return strings.TrimSpace(html.UnescapeString(out))
}

// Plain is for free text that is stored and returned exactly as sent, such
// as message content and reviews. Only null bytes are removed.
func Plain(in string) string {
	return strings.ReplaceAll(in, "\x00", "")
}

func escapeStrayBrackets(in string) string {
	if !strings.Contains(in, "<") {
		return in
	}
	var b strings.Builder
	b.Grow(len(in) + 8)
	for i := 0; i < len(in); i++ {
		if in[i] == '<' && !tagPrefix.MatchString(in[i:]) {
			b.WriteString("&lt;")
			continue
		}
		b.WriteByte(in[i])
	}
	return b.String()
}

func Skill(s skill.Skill) skill.Skill {
	s.Name = Text(s.Name)
	s.Category = Text(s.Category)
	s.Description = Text(s.Description)
	return s
}

func Skills(list []skill.Skill) []skill.Skill {
	out := make([]skill.Skill, 0, len(list))
	for _, s := range list {
		out = append(out, Skill(s))
	}
	return out
}

func Profile(p profile.Profile) profile.Profile {
	p.Name = Text(p.Name)
	p.Bio = Text(p.Bio)
	p.OfferedSkills = Skills(p.OfferedSkills)
	p.WantedSkills = Skills(p.WantedSkills)
	return p
}
