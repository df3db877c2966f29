package admonition

import "errors"

var (
	// ErrUnknownForm is returned for a marker outside !!!, ??? and ???+.
	ErrUnknownForm = errors.New("admonition: unknown form")
	// ErrRenderFailure is returned when a renderer cannot encode a block.
	ErrRenderFailure = errors.New("admonition: render failure")
)

// Text codes attached to contained failures.
const (
	CodeRenderFailed = "ADMONITION_RENDER_FAILED"
	CodePanic        = "ADMONITION_PANIC"
)
