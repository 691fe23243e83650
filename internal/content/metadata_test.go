package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseMetadata(t *testing.T) {
	raw := "Title: Start Reading Daily\nDescription: A practical guide to building a reading habit.\nSlug: Start Reading Daily!\n"

	meta := ParseMetadata(raw)

	assert.Equal(t, "Start Reading Daily", meta.Title)
	assert.Equal(t, "A practical guide to building a reading habit.", meta.Description)
	assert.Equal(t, "start-reading-daily", meta.Slug)
}

func TestParseMetadataClampsLengths(t *testing.T) {
	longTitle := strings.Repeat("t", 100)
	longDesc := strings.Repeat("d", 300)
	raw := "Title: " + longTitle + "\nDescription: " + longDesc + "\nSlug: ok\n"

	meta := ParseMetadata(raw)

	assert.LessOrEqual(t, len(meta.Title), MaxTitleLen)
	assert.LessOrEqual(t, len(meta.Description), MaxDescriptionLen)
}

func TestParseMetadataClampsOnRuneBoundaries(t *testing.T) {
	longTitle := strings.Repeat("é", 100)
	longDesc := strings.Repeat("日", 300)
	raw := "Title: " + longTitle + "\nDescription: " + longDesc + "\nSlug: ok\n"

	meta := ParseMetadata(raw)

	assert.True(t, utf8.ValidString(meta.Title))
	assert.True(t, utf8.ValidString(meta.Description))
	assert.Equal(t, MaxTitleLen, utf8.RuneCountInString(meta.Title))
	assert.Equal(t, MaxDescriptionLen, utf8.RuneCountInString(meta.Description))
}

func TestParseMetadataMissingLines(t *testing.T) {
	meta := ParseMetadata("the model rambled instead of following the format")

	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
	assert.Empty(t, meta.Slug)
}

func TestParseMetadataSlugFallsBackToTitle(t *testing.T) {
	meta := ParseMetadata("Title: Reading Habits\nDescription: desc\n")

	assert.Equal(t, "reading-habits", meta.Slug)
}

func TestExtractTitle(t *testing.T) {
	body := "# The Reading Habit\n\nSome intro.\n\n## Why It Matters\n"
	assert.Equal(t, "The Reading Habit", ExtractTitle(body))

	assert.Empty(t, ExtractTitle("no heading here"))
}
