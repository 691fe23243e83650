// Package export turns a draft into downloadable artifacts: a Markdown byte
// payload, or a PDF rendered by an external wkhtmltopdf process. Artifacts
// are derived from one draft snapshot and never feed back into the draft.
package export

import (
	"fmt"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
)

// Format identifies an export artifact type.
type Format string

const (
	// FormatMarkdown exports the draft body as-is.
	FormatMarkdown Format = "markdown"
	// FormatPDF exports the rendered document through the external renderer.
	FormatPDF Format = "pdf"
)

// Error is a typed export failure. The draft is never altered by a failed
// export.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Artifact is a finished export payload. Immutable once created.
type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Bytes       []byte
}

// Markdown packages the draft body as a byte payload. Identity transform:
// the bytes equal the body exactly.
func Markdown(draft content.Draft, topic string) Artifact {
	return Artifact{
		Format:      FormatMarkdown,
		Filename:    filename(draft, topic) + ".md",
		ContentType: "text/markdown; charset=utf-8",
		Bytes:       []byte(draft.Body),
	}
}

// Document assembles the full export document: title heading, meta
// description blockquote, slug marker, then the body. The PDF renderer
// consumes this form.
func Document(draft content.Draft, topic string) string {
	title := draft.Title
	if title == "" {
		title = content.ExtractTitle(draft.Body)
	}
	if title == "" {
		title = topic
	}

	return fmt.Sprintf("# %s\n\n> Meta: %s\n\n<!-- slug: %s -->\n\n%s\n",
		title, draft.MetaDescription, draft.Slug, draft.Body)
}

// filename picks the artifact base name: the draft slug when set, otherwise
// a slugified title or topic.
func filename(draft content.Draft, topic string) string {
	if draft.Slug != "" {
		return draft.Slug
	}
	if s := content.Slugify(draft.Title); s != "" {
		return s
	}
	if s := content.Slugify(topic); s != "" {
		return s
	}
	return "draft"
}
