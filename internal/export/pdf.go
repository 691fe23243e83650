package export

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
)

// PDFRenderer converts Markdown to PDF by rendering HTML with goldmark and
// piping it through an external wkhtmltopdf process.
type PDFRenderer struct {
	binPath string
}

// NewPDFRenderer creates a renderer using the given wkhtmltopdf binary path.
// An empty path falls back to "wkhtmltopdf" on PATH.
func NewPDFRenderer(binPath string) *PDFRenderer {
	if binPath == "" {
		binPath = "wkhtmltopdf"
	}
	return &PDFRenderer{binPath: binPath}
}

// PDF renders the assembled export document to a PDF artifact. Renderer
// failure surfaces as *Error and leaves the draft untouched.
func (r *PDFRenderer) PDF(ctx context.Context, draft content.Draft, topic string) (Artifact, error) {
	var html bytes.Buffer
	if err := goldmark.Convert([]byte(Document(draft, topic)), &html); err != nil {
		return Artifact{}, &Error{Format: FormatPDF, Err: fmt.Errorf("render HTML: %w", err)}
	}

	pdf, err := r.run(ctx, html.Bytes())
	if err != nil {
		return Artifact{}, &Error{Format: FormatPDF, Err: err}
	}

	return Artifact{
		Format:      FormatPDF,
		Filename:    filename(draft, topic) + ".pdf",
		ContentType: "application/pdf",
		Bytes:       pdf,
	}, nil
}

// run invokes wkhtmltopdf reading HTML from stdin and writing PDF to stdout.
func (r *PDFRenderer) run(ctx context.Context, html []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binPath, "--quiet", "-", "-")
	cmd.Stdin = bytes.NewReader(html)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("%s failed: %w: %s", r.binPath, err, detail)
		}
		return nil, fmt.Errorf("%s failed: %w", r.binPath, err)
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%s produced no output", r.binPath)
	}

	return stdout.Bytes(), nil
}
