package content

import (
	"regexp"
	"strings"
)

// slugMaxLen caps slugs at a URL-friendly length.
const slugMaxLen = 70

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify converts a title to a URL-friendly slug.
// Example: "How to Start a Reading Habit" -> "how-to-start-a-reading-habit"
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))

	// Replace whitespace with hyphens
	slug = strings.Join(strings.Fields(slug), "-")

	// Remove special characters (keep alphanumeric and hyphens)
	slug = slugInvalidChars.ReplaceAllString(slug, "")

	// Collapse multiple hyphens to single hyphen
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")

	if len(slug) > slugMaxLen {
		slug = slug[:slugMaxLen]
	}

	// Trim hyphens from start and end
	return strings.Trim(slug, "-")
}
