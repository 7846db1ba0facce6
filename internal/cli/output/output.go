// Package output selects and carries the rendering mode for CLI commands.
//
// Commands render through a Renderer rather than writing to stdout
// directly, so the same command can produce styled text for a
// terminal, markdown for pipes and scripts, or machine-readable
// JSON/CSV.
package output

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode is an output rendering mode.
type Mode string

// Supported output modes.
const (
	// ModeAuto picks ModeText on a terminal and ModeMarkdown otherwise.
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeCSV      Mode = "csv"
)

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeCSV:
		return true
	}
	return false
}

// Renderer carries the writers and resolved mode for one command run.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	styles  *Styles
	noColor bool
}

// NewRenderer creates a renderer for the given writers and mode.
// An empty or invalid mode falls back to ModeAuto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if !mode.Valid() {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// NoColor disables lipgloss styling in text mode.
func (r *Renderer) NoColor(disable bool) *Renderer {
	r.noColor = disable
	r.styles = nil
	return r
}

// Out returns the writer command results go to.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the writer diagnostics go to.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// EffectiveMode resolves ModeAuto against the output destination:
// text when stdout is a terminal, markdown when piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the lipgloss styles for text rendering.
func (r *Renderer) Styles() *Styles {
	if r.styles == nil {
		r.styles = newStyles(r.noColor)
	}
	return r.styles
}

type rendererKey struct{}

// NewContext returns a context carrying the renderer.
func NewContext(ctx context.Context, r *Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// FromContext retrieves the renderer from the context, or a default
// stdout renderer in auto mode if none was stored.
func FromContext(ctx context.Context) *Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*Renderer); ok {
		return r
	}
	return NewRenderer(os.Stdout, os.Stderr, ModeAuto)
}
