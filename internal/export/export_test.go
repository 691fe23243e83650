package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/export"
)

func sampleDraft() content.Draft {
	return content.Draft{
		Title:           "How to Build a Reading Habit",
		Body:            "# How to Build a Reading Habit\n\nRead every day.\n",
		MetaDescription: "A short guide to daily reading.",
		Slug:            "how-to-build-a-reading-habit",
	}
}

func TestMarkdownIsIdentityTransform(t *testing.T) {
	draft := sampleDraft()

	artifact := export.Markdown(draft, "Reading")

	assert.Equal(t, export.FormatMarkdown, artifact.Format)
	assert.Equal(t, []byte(draft.Body), artifact.Bytes)
	assert.Equal(t, "how-to-build-a-reading-habit.md", artifact.Filename)
	assert.Equal(t, "text/markdown; charset=utf-8", artifact.ContentType)
}

func TestMarkdownFilenameFallsBackToTopic(t *testing.T) {
	draft := content.Draft{Body: "plain body"}

	artifact := export.Markdown(draft, "Remote Work Tips")

	assert.Equal(t, "remote-work-tips.md", artifact.Filename)
}

func TestDocumentAssemblesMetadata(t *testing.T) {
	draft := sampleDraft()

	doc := export.Document(draft, "Reading")

	assert.Contains(t, doc, "# How to Build a Reading Habit")
	assert.Contains(t, doc, "> Meta: A short guide to daily reading.")
	assert.Contains(t, doc, "<!-- slug: how-to-build-a-reading-habit -->")
	assert.Contains(t, doc, draft.Body)
}

func TestDocumentFallsBackToBodyH1ThenTopic(t *testing.T) {
	draft := content.Draft{Body: "# Heading From Body\n\ntext"}
	assert.Contains(t, export.Document(draft, "Topic"), "# Heading From Body")

	draft = content.Draft{Body: "no headings"}
	assert.Contains(t, export.Document(draft, "Topic"), "# Topic")
}

// fakeRenderer writes a script that echoes stdin, standing in for
// wkhtmltopdf reading HTML from stdin and writing PDF to stdout.
func fakeRenderer(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-wkhtmltopdf")
	script := "#!/bin/sh\ncat\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestPDFRendersThroughExternalProcess(t *testing.T) {
	renderer := export.NewPDFRenderer(fakeRenderer(t))

	artifact, err := renderer.PDF(context.Background(), sampleDraft(), "Reading")
	require.NoError(t, err)

	assert.Equal(t, export.FormatPDF, artifact.Format)
	assert.Equal(t, "how-to-build-a-reading-habit.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	// The fake renderer echoes the HTML it was given
	assert.Contains(t, string(artifact.Bytes), "<h1")
}

func TestPDFMissingRendererSurfacesExportError(t *testing.T) {
	renderer := export.NewPDFRenderer("/nonexistent/wkhtmltopdf")

	_, err := renderer.PDF(context.Background(), sampleDraft(), "Reading")
	require.Error(t, err)

	var expErr *export.Error
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, export.FormatPDF, expErr.Format)
}
