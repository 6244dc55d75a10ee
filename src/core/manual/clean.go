package manual

import (
	"regexp"
	"strings"
)

var (
	commandPattern    = regexp.MustCompile(`\\[a-zA-Z]+`)
	mathPattern       = regexp.MustCompile(`\$[^$]*\$`)
	punctPattern      = regexp.MustCompile(`[{}&%_|]`)
	imageEmbedPattern = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	spacePattern      = regexp.MustCompile(`\s+`)
	captionPattern    = regexp.MustCompile(`\\caption\{([^}]*)\}`)
)

// CleanText strips LaTeX commands, inline math, markup punctuation and image
// embeds, then collapses whitespace. It accepts any input.
func CleanText(raw string) string {
	s := commandPattern.ReplaceAllString(raw, " ")
	s = mathPattern.ReplaceAllString(s, " ")
	s = punctPattern.ReplaceAllString(s, " ")
	s = imageEmbedPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ExtractCaption returns the body of the first \caption{...} directive, or ""
// when there is none.
func ExtractCaption(raw string) string {
	m := captionPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}
