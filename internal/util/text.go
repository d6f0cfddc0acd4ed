package util

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// MakeHyperlink wraps display text in an OSC 8 terminal hyperlink, so image
// and event URLs are clickable without printing the raw URL. BEL terminators
// for broad terminal compatibility.
func MakeHyperlink(url, displayText string) string {
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, displayText)
}

// TruncateText truncates s to maxLen runes, appending "…" if truncated.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

var (
	breakRe = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	blankRe = regexp.MustCompile(`\n{3,}`)
	spaceRe = regexp.MustCompile(`[^\S\n]+`)
)

// StripHTML converts organizer-provided HTML descriptions to plain terminal
// text: block breaks become newlines, tags are dropped, entities decoded,
// and whitespace collapsed.
func StripHTML(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = breakRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = spaceRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = blankRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
