// Package session holds per-browser-session draft state in memory. Sessions
// are never persisted; they die with the process. Each session owns its own
// request and draft, and no mutable state crosses session boundaries.
package session

import (
	"time"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/seo"
)

// Session is the per-session context object: the submitted content request
// plus everything generated from it so far.
type Session struct {
	ID        string          `json:"id"`
	Request   content.Request `json:"request"`
	Outline   string          `json:"outline"`
	Draft     content.Draft   `json:"draft"`
	Checklist *seo.Checklist  `json:"checklist,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
