package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/export"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/provider"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/seo"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/session"
)

// createSessionRequest is the JSON body for opening a session.
type createSessionRequest struct {
	Topic       string   `json:"topic"`
	Audience    string   `json:"audience"`
	Tone        string   `json:"tone"`
	Keywords    []string `json:"keywords"`
	TargetWords int      `json:"target_words"`
}

// suggestionsResponse carries rewrite suggestions without touching the draft.
type suggestionsResponse struct {
	Suggestions string `json:"suggestions"`
}

// editRequest carries user edits made in the form before a generation call.
// Both fields are optional; empty means "use what the session has".
type editRequest struct {
	Outline string `json:"outline"`
	Body    string `json:"body"`
}

// applyEdits folds form edits into the session before generating from it.
func (s *Server) applyEdits(c *gin.Context, id string) (session.Session, error) {
	var edit editRequest
	// An absent or empty body is fine; malformed JSON is not.
	if err := c.ShouldBindJSON(&edit); err != nil && c.Request.ContentLength > 0 {
		return session.Session{}, fmt.Errorf("%w: %v", content.ErrValidation, err)
	}

	if edit.Outline == "" && edit.Body == "" {
		return s.store.Get(id)
	}

	return s.store.Update(id, func(sess *session.Session) {
		if edit.Outline != "" {
			sess.Outline = edit.Outline
		}
		if edit.Body != "" {
			sess.Draft.Body = edit.Body
		}
	})
}

// handleCreateSession opens a session from a content request.
func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, fmt.Errorf("%w: %v", content.ErrValidation, err))
		return
	}

	contentReq := content.Request{
		Topic:       req.Topic,
		Audience:    req.Audience,
		Tone:        req.Tone,
		Keywords:    req.Keywords,
		TargetWords: req.TargetWords,
	}
	if err := contentReq.Validate(); err != nil {
		s.renderError(c, err)
		return
	}

	sess := s.store.Create(contentReq)
	s.logger.Info("session created", "id", sess.ID, "topic", contentReq.Topic)
	c.JSON(http.StatusCreated, sess)
}

// handleGetSession returns the current session state.
func (s *Server) handleGetSession(c *gin.Context) {
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// handleDeleteSession ends a session, discarding its draft.
func (s *Server) handleDeleteSession(c *gin.Context) {
	s.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// handleOutline generates an outline for the session's request.
func (s *Server) handleOutline(c *gin.Context) {
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	prompt, err := content.OutlinePrompt(sess.Request)
	if err != nil {
		s.renderError(c, err)
		return
	}

	outline, err := s.generate(c.Request.Context(), content.ModeOutline, prompt)
	if err != nil {
		s.renderError(c, err)
		return
	}

	updated, err := s.store.Update(sess.ID, func(sess *session.Session) {
		sess.Outline = outline
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleDraft writes a full draft from the session's outline. The body is
// replaced atomically; a failed call leaves the previous draft intact.
func (s *Server) handleDraft(c *gin.Context) {
	sess, err := s.applyEdits(c, c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	prompt, err := content.DraftPrompt(sess.Request, sess.Outline)
	if err != nil {
		s.renderError(c, err)
		return
	}

	body, err := s.generate(c.Request.Context(), content.ModeDraft, prompt)
	if err != nil {
		s.renderError(c, err)
		return
	}

	updated, err := s.store.Update(sess.ID, func(sess *session.Session) {
		sess.Draft.Body = body
		if sess.Draft.Title == "" {
			sess.Draft.Title = content.ExtractTitle(body)
		}
		sess.Checklist = nil
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleImprove revises the draft body in place.
func (s *Server) handleImprove(c *gin.Context) {
	sess, err := s.applyEdits(c, c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	prompt, err := content.ImprovePrompt(sess.Request, sess.Draft.Body)
	if err != nil {
		s.renderError(c, err)
		return
	}

	body, err := s.generate(c.Request.Context(), content.ModeImprove, prompt)
	if err != nil {
		s.renderError(c, err)
		return
	}

	updated, err := s.store.Update(sess.ID, func(sess *session.Session) {
		sess.Draft.Body = body
		sess.Checklist = nil
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleSuggestions returns sentence-level rewrite suggestions. The draft is
// not modified.
func (s *Server) handleSuggestions(c *gin.Context) {
	sess, err := s.applyEdits(c, c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	prompt, err := content.SuggestionsPrompt(sess.Request, sess.Draft.Body)
	if err != nil {
		s.renderError(c, err)
		return
	}

	suggestions, err := s.generate(c.Request.Context(), content.ModeSuggestions, prompt)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

// handleSEOMetadata asks the model for title/description/slug and applies
// the parsed, clamped result to the draft.
func (s *Server) handleSEOMetadata(c *gin.Context) {
	sess, err := s.applyEdits(c, c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	prompt, err := content.SEOMetadataPrompt(sess.Request, sess.Draft.Body)
	if err != nil {
		s.renderError(c, err)
		return
	}

	raw, err := s.generate(c.Request.Context(), content.ModeSEOMetadata, prompt)
	if err != nil {
		s.renderError(c, err)
		return
	}

	meta := content.ParseMetadata(raw)
	updated, err := s.store.Update(sess.ID, func(sess *session.Session) {
		if meta.Title != "" {
			sess.Draft.Title = meta.Title
		}
		sess.Draft.MetaDescription = meta.Description
		sess.Draft.Slug = meta.Slug
		sess.Checklist = nil
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleSEOCheck evaluates the checklist against the current draft. The
// evaluation runs inside the store update so the attached checklist always
// matches the draft in the same snapshot.
func (s *Server) handleSEOCheck(c *gin.Context) {
	updated, err := s.store.Update(c.Param("id"), func(sess *session.Session) {
		checklist := seo.Evaluate(sess.Draft, sess.Request.Keywords, sess.Request.TargetWords)
		sess.Checklist = &checklist
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleExport downloads the draft as Markdown or PDF.
func (s *Server) handleExport(c *gin.Context) {
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	var artifact export.Artifact
	switch format := c.DefaultQuery("format", string(export.FormatMarkdown)); export.Format(format) {
	case export.FormatMarkdown:
		artifact = export.Markdown(sess.Draft, sess.Request.Topic)
	case export.FormatPDF:
		artifact, err = s.pdf.PDF(c.Request.Context(), sess.Draft, sess.Request.Topic)
		if err != nil {
			s.renderError(c, err)
			return
		}
	default:
		s.renderError(c, fmt.Errorf("%w: unknown export format %q", content.ErrValidation, format))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Bytes)
}

// generate runs one bounded completion call with the mode's temperature.
// No retries: a failure goes straight back to the caller.
func (s *Server) generate(ctx context.Context, mode content.Mode, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.GenerateTimeout)
	defer cancel()

	return s.generator.Generate(ctx, prompt, s.temperatureFor(mode))
}

// temperatureFor picks the sampling temperature per generation mode: drafts
// stay inside a creative-but-bounded band, edits run cool.
func (s *Server) temperatureFor(mode content.Mode) float64 {
	base := s.config.Temperature
	switch mode {
	case content.ModeDraft:
		return clamp(base, 0.2, 0.8)
	case content.ModeImprove:
		return 0.3
	case content.ModeSEOMetadata, content.ModeSuggestions:
		return 0.4
	default:
		return base
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderError maps domain errors onto HTTP statuses. Validation problems are
// the user's to fix; provider and export failures surface as bad gateway
// with the session state untouched.
func (s *Server) renderError(c *gin.Context, err error) {
	var provErr *provider.Error
	var expErr *export.Error

	switch {
	case errors.Is(err, content.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &provErr):
		s.logger.Error("provider call failed", "provider", provErr.Provider, "kind", provErr.Kind, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "kind": string(provErr.Kind)})
	case errors.As(err, &expErr):
		s.logger.Error("export failed", "format", string(expErr.Format), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
