package admonition

import (
	"fmt"
	"strings"
)

// Backend identifies a target output format.
type Backend string

// Supported backends.
const (
	BackendPandoc Backend = "pandoc"
	BackendSlate  Backend = "slate"
	BackendHugo   Backend = "hugo"
)

// Backends returns the supported backends in a stable order.
func Backends() []Backend {
	return []Backend{BackendPandoc, BackendSlate, BackendHugo}
}

// Renderer encodes a Block for one backend.
// Render is a pure function of the block; output ends with a blank line.
type Renderer interface {
	Backend() Backend
	Render(b Block) (string, error)
}

// RendererFor returns the renderer for a backend identifier.
// The boolean is false when id names no supported backend.
func RendererFor(id string) (Renderer, bool) {
	switch Backend(id) {
	case BackendPandoc:
		return Pandoc{}, true
	case BackendSlate:
		return Aside{}, true
	case BackendHugo:
		return Shortcode{}, true
	default:
		return nil, false
	}
}

// checkBlock rejects blocks no renderer can encode.
func checkBlock(b Block) error {
	if b.Type == "" {
		return fmt.Errorf("%w: block has no type", ErrRenderFailure)
	}
	return nil
}

// Pandoc renders a block as a blockquote with a bold header line.
type Pandoc struct{}

// Backend implements Renderer.
func (Pandoc) Backend() Backend { return BackendPandoc }

// Render implements Renderer.
func (Pandoc) Render(b Block) (string, error) {
	if err := checkBlock(b); err != nil {
		return "", err
	}

	var sb strings.Builder
	if header := b.Header(); header != "" {
		fmt.Fprintf(&sb, "> **%s**\n>\n", header)
	}
	for i, ln := range b.Lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("> ")
		sb.WriteString(ln)
	}
	sb.WriteString("\n\n")
	return sb.String(), nil
}

// asideClasses folds admonition types onto the aside classes Slate styles.
var asideClasses = map[string]string{
	"error":   "warning",
	"danger":  "warning",
	"caution": "warning",
	"info":    "notice",
	"note":    "notice",
	"tip":     "notice",
	"hint":    "notice",
}

// AsideClass returns the aside class for an admonition type.
// Types outside the lookup pass through unchanged.
func AsideClass(typ string) string {
	if class, ok := asideClasses[typ]; ok {
		return class
	}
	return typ
}

// Aside renders a block as an HTML aside element. Titles are not rendered.
type Aside struct{}

// Backend implements Renderer.
func (Aside) Backend() Backend { return BackendSlate }

// Render implements Renderer.
func (Aside) Render(b Block) (string, error) {
	if err := checkBlock(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("<aside class=\"%s\">%s</aside>\n\n",
		AsideClass(b.Type), strings.Join(b.Lines, "\n")), nil
}

// ShortcodeForm returns the shortcode form attribute for f.
func ShortcodeForm(f Form) string {
	switch f {
	case FormCollapsible:
		return "collapse"
	case FormCollapsibleOpen:
		return "collapse_plus"
	default:
		return "standard"
	}
}

// Shortcode renders a block as a paired admonition shortcode.
// A missing title is emitted as an empty attribute.
type Shortcode struct{}

// Backend implements Renderer.
func (Shortcode) Backend() Backend { return BackendHugo }

// Render implements Renderer.
func (Shortcode) Render(b Block) (string, error) {
	if err := checkBlock(b); err != nil {
		return "", err
	}

	title := ""
	if b.HasTitle {
		title = b.Title
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "{{%% admonition form=\"%s\" type=\"%s\" title=\"%s\" %%}}\n",
		ShortcodeForm(b.Form), b.Type, title)
	sb.WriteString(strings.Join(b.Lines, "\n"))
	sb.WriteString("\n\n{{% /admonition %}}\n\n")
	return sb.String(), nil
}
