// Package display renders the operator view: one status line while
// streaming, the wizard prompt while rebinding.
//
// Rendering is best effort. Write errors are ignored; they only cost the
// operator their view.
package display

import (
	"fmt"
	"io"
	"os"
	"sync"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// Terminal draws onto a terminal or, when the writer is not a TTY, prints
// each distinct line once.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
	hint   string
	last   string
	drawn  bool
}

// NewTerminal renders to f, styling only when f is a terminal.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{w: f, styled: term.IsTerminal(int(f.Fd()))}
}

// NewPlain renders unstyled lines to w.
func NewPlain(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// SetHint sets the dimmed key help shown after the status line.
func (t *Terminal) SetHint(hint string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hint = hint
}

// Status shows the live packet values. Unchanged lines are not redrawn.
func (t *Terminal) Status(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if line == t.last {
		return
	}
	t.last = line
	if !t.styled {
		fmt.Fprintln(t.w, line)
		return
	}
	out := statusStyle.Render(line)
	if t.hint != "" {
		out += "  " + hintStyle.Render(t.hint)
	}
	fmt.Fprint(t.w, "\r\033[2K"+out)
	t.drawn = true
}

// Prompt shows a wizard prompt.
func (t *Terminal) Prompt(msg string) {
	t.line(promptStyle, msg)
}

// Warn shows an operator message that must not be overdrawn by the next
// status update.
func (t *Terminal) Warn(msg string) {
	t.line(warnStyle, msg)
}

func (t *Terminal) line(style lipgloss.Style, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = ""
	if !t.styled {
		fmt.Fprintln(t.w, msg)
		return
	}
	fmt.Fprint(t.w, "\r\033[2K"+style.Render(msg)+"\n")
	t.drawn = false
}

// Close moves the cursor past the status line.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.styled && t.drawn {
		fmt.Fprintln(t.w)
		t.drawn = false
	}
	return nil
}
