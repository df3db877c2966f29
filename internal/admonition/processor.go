package admonition

import (
	"strings"

	"github.com/gorewood/admonitions/internal/logging"
)

// Result counts what happened to the blocks of one document.
type Result struct {
	Found    int `json:"found"`
	Rendered int `json:"rendered"`
	Failed   int `json:"failed"`
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.Found += other.Found
	r.Rendered += other.Rendered
	r.Failed += other.Failed
}

// Processor rewrites admonitions in documents for one configured backend.
// It holds no mutable state and is safe for concurrent use.
type Processor struct {
	backend string
	handler *Handler
	logger  logging.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for block diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates a Processor for the backend identifier. When backend
// names no supported backend the processor is inactive and Process is the
// identity.
func NewProcessor(backend string, opts ...Option) *Processor {
	p := &Processor{
		backend: backend,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if renderer, ok := RendererFor(backend); ok {
		p.handler = NewHandler(renderer, p.logger)
	} else {
		p.logger.Debug("backend not supported, admonitions left as-is", "backend", backend)
	}
	return p
}

// Backend returns the configured backend identifier.
func (p *Processor) Backend() string {
	return p.backend
}

// Active reports whether the configured backend is supported.
func (p *Processor) Active() bool {
	return p.handler != nil
}

// Process replaces every admonition in text with its rendering.
// Blocks that fail are left byte-for-byte unchanged.
func (p *Processor) Process(text string) (string, Result) {
	var result Result
	if !p.Active() {
		return text, result
	}

	var sb strings.Builder
	last := 0
	for m := range Scan(text) {
		result.Found++
		sb.WriteString(text[last:m.Start])

		out, ok := p.handler.Replace(m)
		if ok {
			result.Rendered++
		} else {
			result.Failed++
		}
		sb.WriteString(out)
		last = m.End
	}

	if result.Found == 0 {
		return text, result
	}
	sb.WriteString(text[last:])
	return sb.String(), result
}
