package display

import (
	"log/slog"

	"github.com/ncruces/zenity"
)

// Notifier raises messages the operator should see even when the terminal
// is hidden behind the game window.
type Notifier interface {
	Notify(msg string)
}

// Desktop sends desktop notifications. Failures are logged at debug level;
// a missing notification daemon is common and harmless.
type Desktop struct {
	Title  string
	Logger *slog.Logger
}

func (d Desktop) Notify(msg string) {
	title := d.Title
	if title == "" {
		title = "padlink"
	}
	if err := zenity.Notify(msg, zenity.Title(title)); err != nil && d.Logger != nil {
		d.Logger.Debug("Desktop notification failed", "error", err)
	}
}

// Silent drops notifications.
type Silent struct{}

func (Silent) Notify(string) {}
