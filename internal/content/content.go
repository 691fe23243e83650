// Package content holds the domain types for content generation: the request
// captured from the user, the draft produced by the completion provider, and
// the prompt builders that turn one into instructions for the other.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/pkg/collections"
)

// Mode selects which instruction the prompt builder produces.
type Mode string

const (
	// ModeOutline asks for an H2/H3 outline with talking points.
	ModeOutline Mode = "outline"
	// ModeDraft asks for a full article written from an outline.
	ModeDraft Mode = "draft"
	// ModeImprove asks for a revision of an existing draft.
	ModeImprove Mode = "improve"
	// ModeSEOMetadata asks for an SEO title, meta description, and slug.
	ModeSEOMetadata Mode = "seo-metadata"
	// ModeSuggestions asks for sentence-level rewrite suggestions.
	ModeSuggestions Mode = "suggestions"
)

// Target word count bounds for drafts.
const (
	MinTargetWords     = 400
	MaxTargetWords     = 2000
	DefaultTargetWords = 900
)

// ErrValidation marks input errors the user can fix and resubmit.
var ErrValidation = errors.New("validation error")

// Request is the user's content brief. Immutable once submitted to a
// generation call.
type Request struct {
	Topic       string   `json:"topic"`
	Audience    string   `json:"audience"`
	Tone        string   `json:"tone"`
	Keywords    []string `json:"keywords"`
	TargetWords int      `json:"target_words"`
}

// Draft is the current generated content plus its SEO metadata. The body is
// always a complete Markdown document: generation replaces it atomically.
type Draft struct {
	Title           string `json:"title"`
	Body            string `json:"body"`
	MetaDescription string `json:"meta_description"`
	Slug            string `json:"slug"`
}

// Validate checks the request for generation. Topic is the only hard
// requirement; target words are clamped into range rather than rejected.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topic is required", ErrValidation)
	}

	if r.TargetWords == 0 {
		r.TargetWords = DefaultTargetWords
	}
	if r.TargetWords < MinTargetWords {
		r.TargetWords = MinTargetWords
	}
	if r.TargetWords > MaxTargetWords {
		r.TargetWords = MaxTargetWords
	}

	r.Keywords = CleanKeywords(r.Keywords)

	return nil
}

// CleanKeywords trims whitespace and drops empty entries, preserving order.
func CleanKeywords(keywords []string) []string {
	trimmed := collections.Apply(keywords, strings.TrimSpace)
	return collections.Filter(trimmed, func(k string) bool { return k != "" })
}

// ParseKeywords splits a comma-separated keyword string from a form field.
func ParseKeywords(s string) []string {
	return CleanKeywords(strings.Split(s, ","))
}
