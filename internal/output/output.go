package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results in human or JSON form.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	styles styles
}

type styles struct {
	err     lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	header  lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	key     lipgloss.Style
	accents map[string]lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			err: plain, ok: plain, warn: plain, header: plain,
			title: plain, muted: plain, key: plain,
		}
	}
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return styles{
		err:    fg("9").Bold(true),
		ok:     fg("10"),
		warn:   fg("11"),
		header: lipgloss.NewStyle().Bold(true),
		title:  fg("12").Bold(true),
		muted:  lipgloss.NewStyle().Faint(true),
		key:    fg("14"),
		// Keyed by the aside class a type maps to, so related types share a color.
		accents: map[string]lipgloss.Style{
			"notice":  fg("12"),
			"success": fg("10"),
			"warning": fg("11"),
			"error":   fg("9"),
		},
	}
}

// NewPrinter returns a Printer writing to w. Colors are used only when
// color is true and jsonMode is false.
func NewPrinter(w io.Writer, jsonMode, color bool) *Printer {
	return &Printer{
		w:      w,
		errW:   w,
		json:   jsonMode,
		styles: newStyles(color && !jsonMode),
	}
}

// WithStderr routes human-mode errors and warnings to w.
// JSON errors always go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the Printer emits JSON.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Success prints a one-line confirmation, or data as JSON.
func (p *Printer) Success(message string, data map[string]any) error {
	if p.json {
		if data == nil {
			data = map[string]any{}
		}
		if _, ok := data["message"]; !ok {
			data["message"] = message
		}
		return p.WriteJSON(data)
	}
	p.Println(p.styles.ok.Render(message))
	return nil
}

// Error prints err. Non-ExitError values are reported as user errors.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		_ = p.WriteJSON(map[string]any{"error": exitErr.Message, "code": exitErr.Code})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.err.Render("Error"), exitErr.Message))
}

// Warn prints a warning.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.warn.Render("Warning"), msg))
}

// Print writes formatted text without a trailing newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes args followed by a newline.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON writes v as indented JSON.
func (p *Printer) WriteJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Section prints a title with an underline, preceded by a blank line.
func (p *Printer) Section(title string) {
	p.Println()
	p.Println(p.styles.title.Render(title))
	p.Println(p.styles.muted.Render(strings.Repeat("─", len(title))))
}

// KeyValue prints "key: value".
func (p *Printer) KeyValue(key, value string) {
	if value == "" {
		value = p.styles.muted.Render("(unset)")
	}
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.key.Render(key+":"), value))
}

// Accent colors s by the aside class group. Unknown groups are left plain.
func (p *Printer) Accent(group, s string) string {
	if style, ok := p.styles.accents[group]; ok {
		return style.Render(s)
	}
	return s
}

// Table prints rows under bold headers with space-padded columns.
// Widths are measured before styling so colored cells stay aligned.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := columnWidths(headers, rows)

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = padRight(p.styles.header.Render(h), widths[i])
	}
	p.Println(strings.TrimRight(strings.Join(cells, "  "), " "))

	for _, row := range rows {
		cells = cells[:0]
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			cells = append(cells, padRight(cell, widths[i]))
		}
		p.Println(strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// mustWrite panics on a failed write to stdout, stderr or a buffer.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
