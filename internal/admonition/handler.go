package admonition

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/gorewood/admonitions/internal/logging"
)

// Handler turns one Match into replacement text using a Renderer.
type Handler struct {
	renderer Renderer
	logger   logging.Logger
}

// NewHandler creates a Handler. A nil logger discards log entries.
func NewHandler(renderer Renderer, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Handler{renderer: renderer, logger: logger}
}

// BlockFromMatch builds the Block for m: the marker is resolved, the type is
// lowered and the content normalised.
func BlockFromMatch(m Match) (Block, error) {
	form, err := ParseForm(m.Marker)
	if err != nil {
		return Block{}, err
	}
	return Block{
		Form:     form,
		Type:     strings.ToLower(m.Type),
		Title:    m.Title,
		HasTitle: m.HasTitle,
		Lines:    Normalize(m.Content),
	}, nil
}

// Handle renders m and returns the replacement text.
// Errors are returned as-is; use Replace for contained handling.
func (h *Handler) Handle(m Match) (string, error) {
	h.logger.Debug("found admonition", "source", m.Source)

	block, err := BlockFromMatch(m)
	if err != nil {
		return "", err
	}
	return h.renderer.Render(block)
}

// Replace is the failure boundary for a single block. Any error or panic
// while handling m is logged together with the matched text, and the
// original text is returned unchanged. ok reports whether m was rendered.
func (h *Handler) Replace(m Match) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err := goerrors.Wrap(fmt.Errorf("%v", r), goerrors.CategoryCommand,
				"admonition handler panicked").WithTextCode(CodePanic)
			h.logFailure(m, err)
			out, ok = m.Source, false
		}
	}()

	rendered, err := h.Handle(m)
	if err != nil {
		wrapped := goerrors.Wrap(err, goerrors.CategoryValidation,
			"failed to process admonition").WithTextCode(CodeRenderFailed)
		h.logFailure(m, wrapped)
		return m.Source, false
	}
	return rendered, true
}

func (h *Handler) logFailure(m Match, err error) {
	h.logger.Error("failed to process admonition, skipping",
		"error", err,
		"source", m.Source,
		"offset", m.Start,
	)
}
