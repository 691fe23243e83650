package content

import (
	"regexp"
	"strings"
)

// Metadata length limits. Values beyond these are truncated, matching what
// the SEO metadata prompt asks the model for.
const (
	MaxTitleLen       = 60
	MaxDescriptionLen = 155
)

var (
	metaTitleRe = regexp.MustCompile(`(?m)^Title:\s*(.+)$`)
	metaDescRe  = regexp.MustCompile(`(?m)^Description:\s*(.+)$`)
	metaSlugRe  = regexp.MustCompile(`(?m)^Slug:\s*(.+)$`)
	h1Re        = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)

// ExtractTitle returns the first H1 heading of a Markdown document, or the
// empty string if there is none.
func ExtractTitle(markdown string) string {
	return firstMatch(h1Re, markdown)
}

// Metadata is the SEO metadata proposed by the model.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// ParseMetadata extracts Title/Description/Slug labeled lines from a model
// response, clamps them to their limits, and slugifies the slug. Missing
// lines yield empty fields rather than errors; the caller decides whether an
// empty title matters.
func ParseMetadata(raw string) Metadata {
	meta := Metadata{
		Title:       truncate(firstMatch(metaTitleRe, raw), MaxTitleLen),
		Description: truncate(firstMatch(metaDescRe, raw), MaxDescriptionLen),
	}
	meta.Slug = Slugify(firstMatch(metaSlugRe, raw))
	if meta.Slug == "" && meta.Title != "" {
		meta.Slug = Slugify(meta.Title)
	}

	return meta
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// truncate clamps s to limit characters, cutting on a rune boundary.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
