package wordslide_test

import (
	"testing"

	"github.com/fwojciec/wordslide"
	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text is unchanged", "Abide with me", "Abide with me"},
		{"empty string", "", ""},
		{"removes simple tags", "<b>Abide</b> with me", "Abide with me"},
		{"removes tags with attributes", `<span class="x">fast</span> falls`, "fast falls"},
		{"adjacent tags", "<p><i>eventide</i></p>", "eventide"},
		{"nested opener collapses to last", "a<b<c>d", "a<bd"},
		{"stray closer is kept", "a > b", "a > b"},
		{"closer after removed tag is kept", "a<b<c>d>", "a<bd>"},
		{"unterminated opener is kept", "the darkness <deepens", "the darkness <deepens"},
		{"multibyte text survives", "<em>Herr</em>, bleib bei mir ‘", "Herr, bleib bei mir ‘"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wordslide.StripTags(tt.input))
		})
	}
}

func TestStripTags_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<p>Abide with me;<br> fast falls the eventide</p>",
		"<a href=\"x.html\">The darkness</a> deepens; <i>Lord</i>, with me abide.",
		"no markup at all",
		"<><><>",
		"",
	}

	for _, in := range inputs {
		once := wordslide.StripTags(in)
		assert.Equal(t, once, wordslide.StripTags(once), "input %q", in)
	}
}
