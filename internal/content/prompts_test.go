package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		Topic:    "Remote Work",
		Audience: "managers",
		Tone:     "professional",
		Keywords: []string{"remote work", "productivity"},
	}
}

func TestOutlinePromptContainsAllInputs(t *testing.T) {
	prompt, err := OutlinePrompt(validRequest())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Remote Work")
	assert.Contains(t, prompt, "managers")
	assert.Contains(t, prompt, "professional")
	assert.Contains(t, prompt, "remote work")
	assert.Contains(t, prompt, "productivity")
}

func TestPromptsRequireTopic(t *testing.T) {
	req := Request{Audience: "managers", Tone: "professional"}

	_, err := OutlinePrompt(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPromptsContainTopicAndKeywords(t *testing.T) {
	req := validRequest()
	text := "## Section\n\nSome existing draft text."

	builders := map[Mode]func() (string, error){
		ModeOutline:     func() (string, error) { return OutlinePrompt(req) },
		ModeDraft:       func() (string, error) { return DraftPrompt(req, text) },
		ModeImprove:     func() (string, error) { return ImprovePrompt(req, text) },
		ModeSEOMetadata: func() (string, error) { return SEOMetadataPrompt(req, text) },
		ModeSuggestions: func() (string, error) { return SuggestionsPrompt(req, text) },
	}

	for mode, build := range builders {
		t.Run(string(mode), func(t *testing.T) {
			prompt, err := build()
			require.NoError(t, err)

			assert.Contains(t, prompt, req.Topic)
			for _, kw := range req.Keywords {
				assert.Contains(t, prompt, kw)
			}
		})
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	req := validRequest()

	first, err := OutlinePrompt(req)
	require.NoError(t, err)
	second, err := OutlinePrompt(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDraftPromptRequiresOutline(t *testing.T) {
	_, err := DraftPrompt(validRequest(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDraftPromptIncludesTargetWords(t *testing.T) {
	req := validRequest()
	req.TargetWords = 1200

	prompt, err := DraftPrompt(req, "## Outline")
	require.NoError(t, err)

	assert.Contains(t, prompt, "1200-word")
}

func TestImprovePromptRequiresDraft(t *testing.T) {
	_, err := ImprovePrompt(validRequest(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSuggestionsPromptTruncatesLongDrafts(t *testing.T) {
	longDraft := strings.Repeat("word ", 3000) // ~15000 chars

	prompt, err := SuggestionsPrompt(validRequest(), longDraft)
	require.NoError(t, err)

	assert.Less(t, len(prompt), len(longDraft))
}

func TestBuildPromptRejectsUnknownMode(t *testing.T) {
	_, err := BuildPrompt(Mode("poetry"), validRequest(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateClampsTargetWords(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{name: "zero uses default", in: 0, expected: DefaultTargetWords},
		{name: "below minimum", in: 100, expected: MinTargetWords},
		{name: "above maximum", in: 9000, expected: MaxTargetWords},
		{name: "in range unchanged", in: 750, expected: 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.TargetWords = tt.in
			require.NoError(t, req.Validate())
			assert.Equal(t, tt.expected, req.TargetWords)
		})
	}
}

func TestParseKeywords(t *testing.T) {
	got := ParseKeywords("reading habit, productivity , , routines")
	assert.Equal(t, []string{"reading habit", "productivity", "routines"}, got)
}
