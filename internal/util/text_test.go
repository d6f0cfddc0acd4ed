package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "exact", TruncateText("exact", 5))
	assert.Equal(t, "long…", TruncateText("longer text", 5))
	assert.Equal(t, "…", TruncateText("ab", 1))
	// maxLen <= 0 disables truncation
	assert.Equal(t, "anything", TruncateText("anything", 0))
	// rune-aware, not byte-aware
	assert.Equal(t, "šāl…", TruncateText("šālāyoga", 4))
}

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "seven nights in Goa", "seven nights in Goa"},
		{"tags dropped", "<b>Vinyasa</b> retreat", "Vinyasa retreat"},
		{"breaks become newlines", "morning flow<br>evening yin", "morning flow\nevening yin"},
		{"paragraphs separated", "<p>day one</p><p>day two</p>", "day one\nday two"},
		{"entities decoded", "s&uuml;rf &amp; yoga", "sürf & yoga"},
		{"whitespace collapsed", "too   many    spaces", "too many spaces"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTML(tc.in))
		})
	}
}

func TestMakeHyperlink(t *testing.T) {
	link := MakeHyperlink("https://cdn.example.com/a.jpg", "photo 1")
	assert.Contains(t, link, "https://cdn.example.com/a.jpg")
	assert.Contains(t, link, "photo 1")
	assert.Contains(t, link, "\033]8;;")
}
