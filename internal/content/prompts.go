package content

import (
	"fmt"
	"strings"
)

// DefaultStyleNote is the editing focus for improve prompts.
const DefaultStyleNote = "clarity, concision, active voice"

// OutlinePrompt builds the instruction for an H2/H3 blog post outline.
func OutlinePrompt(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Create a detailed H2/H3 outline for a blog post.\n")
	fmt.Fprintf(&sb, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&sb, "Audience: %s\n", req.Audience)
	fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)
	sb.WriteString("Include bullet talking points under each heading.\n")
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&sb, "Integrate keywords naturally: %s.\n", strings.Join(req.Keywords, ", "))
	}

	return sb.String(), nil
}

// DraftPrompt builds the instruction for writing a full article from an
// outline. The outline must be non-empty.
func DraftPrompt(req Request, outline string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(outline) == "" {
		return "", fmt.Errorf("%w: outline is required before drafting", ErrValidation)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a %d-word blog post using this outline:\n", req.TargetWords)
	sb.WriteString("---\n")
	sb.WriteString(outline)
	sb.WriteString("\n---\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("- Use H2/H3 headings, short paragraphs, skimmable lists.\n")
	fmt.Fprintf(&sb, "- Tone: %s for audience: %s.\n", req.Tone, req.Audience)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&sb, "- Include keywords naturally: %s.\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&sb, "- The topic is: %s.\n", req.Topic)
	sb.WriteString("- End with a clear conclusion and optional CTA.\n")
	sb.WriteString("Return valid Markdown only.\n")

	return sb.String(), nil
}

// ImprovePrompt builds the instruction for revising an existing draft.
func ImprovePrompt(req Request, draft string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(draft) == "" {
		return "", fmt.Errorf("%w: draft is required before improving", ErrValidation)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Improve the following draft for %s. Keep structure and facts.\n", DefaultStyleNote)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&sb, "Ensure keywords remain: %s.\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&sb, "The topic is: %s.\n", req.Topic)
	sb.WriteString("Return full revised Markdown only.\n")
	sb.WriteString("---\n")
	sb.WriteString(draft)
	sb.WriteString("\n")

	return sb.String(), nil
}

// SEOMetadataPrompt builds the instruction for proposing an SEO title, meta
// description, and URL slug. The response is expected as labeled lines
// (Title: / Description: / Slug:) parsed by the caller.
func SEOMetadataPrompt(req Request, draft string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(draft) == "" {
		return "", fmt.Errorf("%w: draft is required before proposing SEO metadata", ErrValidation)
	}

	var sb strings.Builder
	sb.WriteString("Propose:\n")
	sb.WriteString("1) SEO title <= 60 chars\n")
	sb.WriteString("2) Meta description <= 155 chars\n")
	sb.WriteString("3) Short URL slug\n")
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&sb, "Consider keywords: %s\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&sb, "The topic is: %s\n", req.Topic)
	sb.WriteString("Format:\n")
	sb.WriteString("Title: ...\n")
	sb.WriteString("Description: ...\n")
	sb.WriteString("Slug: ...\n")
	sb.WriteString("---\n")
	sb.WriteString(draft)
	sb.WriteString("\n")

	return sb.String(), nil
}

// suggestionsDraftLimit caps how much draft text is sent for micro-edits.
const suggestionsDraftLimit = 6000

// SuggestionsPrompt builds the instruction for three sentence-level rewrite
// suggestions. Only the leading portion of a long draft is sent.
func SuggestionsPrompt(req Request, draft string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(draft) == "" {
		return "", fmt.Errorf("%w: draft is required before requesting suggestions", ErrValidation)
	}

	excerpt := draft
	if len(excerpt) > suggestionsDraftLimit {
		excerpt = excerpt[:suggestionsDraftLimit]
	}

	var sb strings.Builder
	sb.WriteString("Suggest 3 specific sentence-level improvements for clarity or punchiness. ")
	sb.WriteString("Quote the original, then provide the improved version. Keep each under 25 words.\n\n")
	fmt.Fprintf(&sb, "The topic is: %s\n", req.Topic)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&sb, "Keywords: %s\n", strings.Join(req.Keywords, ", "))
	}
	sb.WriteString("Draft:\n")
	sb.WriteString(excerpt)
	sb.WriteString("\n")

	return sb.String(), nil
}

// BuildPrompt dispatches to the builder for the given mode. Outline mode
// ignores the text argument; every other mode treats it as the current
// outline or draft.
func BuildPrompt(mode Mode, req Request, text string) (string, error) {
	switch mode {
	case ModeOutline:
		return OutlinePrompt(req)
	case ModeDraft:
		return DraftPrompt(req, text)
	case ModeImprove:
		return ImprovePrompt(req, text)
	case ModeSEOMetadata:
		return SEOMetadataPrompt(req, text)
	case ModeSuggestions:
		return SuggestionsPrompt(req, text)
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrValidation, mode)
	}
}
