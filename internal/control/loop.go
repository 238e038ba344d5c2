// Package control runs the real-time loop: poll the keyboard, encode a
// packet, send it, draw the status line, once per tick.
//
// The loop is a three state machine. NORMAL streams packets. CONFIGURING
// runs the binding wizard synchronously and sends nothing. TERMINATED
// releases the transport, the input device and the display. Everything
// happens on the goroutine that called Run; the binding table is owned by
// the loop and replaced only on the CONFIGURING to NORMAL transition.
package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/frame"
	"github.com/Alia5/padlink/input"
	"github.com/Alia5/padlink/internal/clock"
	"github.com/Alia5/padlink/internal/display"
)

type State uint8

const (
	Normal State = iota + 1
	Configuring
	Terminated
)

func (s State) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Configuring:
		return "CONFIGURING"
	case Terminated:
		return "TERMINATED"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Sender transmits one packet. Errors are dropped frames, not failures.
type Sender interface {
	Send(pkt frame.Packet) error
	Close() error
}

// Display is the operator view.
type Display interface {
	Status(line string)
	Prompt(msg string)
	Warn(msg string)
	Close() error
}

// Wizard rebinds a catalog.
type Wizard interface {
	Run(ctx context.Context, catalog binding.Catalog, src input.Source) (binding.Table, error)
}

// Store loads the persisted bindings at startup.
type Store interface {
	Load() (binding.Table, error)
}

type Options struct {
	Profile frame.Profile
	// TickPeriod overrides Profile.TickPeriod when positive.
	TickPeriod     time.Duration
	ReconfigureKey input.Code
	QuitKey        input.Code
}

// Deps are the loop's collaborators. The loop owns and closes Source,
// Sender and Display.
type Deps struct {
	Source   input.Source
	Sender   Sender
	Display  Display
	Store    Store
	Wizard   Wizard
	Notifier display.Notifier
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Stats counts ticks since Run started.
type Stats struct {
	Ticks   uint64
	Sent    uint64
	Dropped uint64
	Rebinds uint64
}

type Loop struct {
	opts Options
	deps Deps

	state   State
	table   binding.Table
	stats   Stats
	sendErr bool
}

func New(opts Options, deps Deps) (*Loop, error) {
	if err := opts.Profile.Validate(); err != nil {
		return nil, err
	}
	if deps.Source == nil || deps.Sender == nil || deps.Display == nil {
		return nil, errors.New("control loop needs an input source, a sender and a display")
	}
	if opts.Profile.Rebindable && deps.Wizard == nil {
		return nil, fmt.Errorf("profile %s is rebindable but no binding wizard was supplied", opts.Profile.Name)
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Notifier == nil {
		deps.Notifier = display.Silent{}
	}
	return &Loop{opts: opts, deps: deps}, nil
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Stats() Stats { return l.stats }

// Table returns the bindings currently used for encoding.
func (l *Loop) Table() binding.Table { return l.table }

func (l *Loop) period() time.Duration {
	if l.opts.TickPeriod > 0 {
		return l.opts.TickPeriod
	}
	return l.opts.Profile.TickPeriod
}

// Run drives the loop until a quit request or ctx cancellation. A quit is a
// normal exit and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	defer l.teardown()

	l.state = l.startState()
	logger := l.deps.Logger
	logger.Info("Control loop started",
		"profile", l.opts.Profile.Name,
		"period", l.period(),
		"state", l.state.String())

	ticker := l.deps.Clock.NewTicker(l.period())
	defer ticker.Stop()

	for {
		switch l.state {
		case Configuring:
			if err := l.configure(ctx); err != nil {
				return err
			}
		case Normal:
			select {
			case <-ctx.Done():
				logger.Info("Control loop cancelled")
				l.state = Terminated
			case <-ticker.C():
				l.tick()
			}
		case Terminated:
			logger.Info("Control loop stopped",
				"ticks", l.stats.Ticks,
				"sent", l.stats.Sent,
				"dropped", l.stats.Dropped)
			return nil
		}
	}
}

// startState picks the initial bindings. A missing, corrupt or incomplete
// binding file sends the loop to CONFIGURING before the first tick.
func (l *Loop) startState() State {
	p := l.opts.Profile
	if !p.Rebindable {
		l.table = p.Defaults
		return Normal
	}
	logger := l.deps.Logger
	if l.deps.Store == nil {
		logger.Info("No binding file configured, running binding wizard")
		return Configuring
	}
	t, err := l.deps.Store.Load()
	switch {
	case errors.Is(err, binding.ErrNotFound):
		logger.Info("No bindings found, running binding wizard")
		return Configuring
	case errors.Is(err, binding.ErrCorrupt):
		logger.Warn("Binding file unreadable, running binding wizard", "error", err)
		return Configuring
	case err != nil:
		logger.Warn("Loading bindings failed, running binding wizard", "error", err)
		return Configuring
	}
	if missing := binding.Missing(t, p.Catalog); len(missing) > 0 {
		logger.Warn("Bindings incomplete, running binding wizard", "missing", fmt.Sprint(missing))
		return Configuring
	}
	l.table = t.Restrict(p.Catalog)
	logger.Info("Loaded bindings", "bindings", l.table.String())
	return Normal
}

// tick runs one NORMAL period.
func (l *Loop) tick() {
	l.stats.Ticks++
	reconfigure, quit := l.scan(l.deps.Source.PollEvents())
	pressed := l.deps.Source.Pressed()

	switch {
	case reconfigure:
		l.deps.Logger.Info("Reconfigure requested")
		l.state = Configuring
		return
	case quit:
		l.deps.Logger.Info("Quit requested")
		l.state = Terminated
		return
	}

	pkt := l.opts.Profile.Encode(pressed, l.table)
	l.send(pkt)

	if st, err := l.opts.Profile.Decode(pkt); err == nil {
		l.deps.Display.Status(st.String())
	}
}

func (l *Loop) scan(events []input.Event) (reconfigure, quit bool) {
	for _, ev := range events {
		switch {
		case ev.Kind == input.Quit:
			quit = true
		case ev.Kind != input.KeyDown || ev.Repeat:
		case l.opts.Profile.Rebindable && l.opts.ReconfigureKey != input.NoCode && ev.Code == l.opts.ReconfigureKey:
			reconfigure = true
		case l.opts.QuitKey != input.NoCode && ev.Code == l.opts.QuitKey:
			quit = true
		}
	}
	return reconfigure, quit
}

func (l *Loop) send(pkt frame.Packet) {
	err := l.deps.Sender.Send(pkt)
	if err == nil {
		l.stats.Sent++
		if l.sendErr {
			l.deps.Logger.Info("Sending recovered")
			l.sendErr = false
		}
		return
	}
	l.stats.Dropped++
	if !l.sendErr {
		// Only the first failure of a run is worth a warning at 100Hz.
		l.deps.Logger.Warn("Dropping frames, send failed", "error", err)
		l.sendErr = true
		return
	}
	l.deps.Logger.Debug("Dropped frame", "error", err)
}

// configure runs the wizard. Nothing is sent until it returns.
func (l *Loop) configure(ctx context.Context) error {
	logger := l.deps.Logger
	t, err := l.deps.Wizard.Run(ctx, l.opts.Profile.Catalog, l.deps.Source)
	switch {
	case errors.Is(err, binding.ErrAborted):
		logger.Info("Quit during binding wizard")
		l.state = Terminated
		return nil
	case errors.Is(err, binding.ErrSave):
		logger.Error("Bindings are active but were not saved", "error", err)
		msg := fmt.Sprintf("bindings not saved: %v", err)
		l.deps.Display.Warn(msg)
		l.deps.Notifier.Notify(msg)
	case err != nil:
		l.state = Terminated
		return fmt.Errorf("binding wizard: %w", err)
	}
	if !binding.IsComplete(t, l.opts.Profile.Catalog) {
		l.state = Terminated
		return errors.New("binding wizard returned an incomplete table")
	}
	l.table = t.Restrict(l.opts.Profile.Catalog)
	l.stats.Rebinds++
	l.state = Normal
	logger.Info("Bindings applied", "bindings", l.table.String())
	return nil
}

func (l *Loop) teardown() {
	l.state = Terminated
	if err := l.deps.Sender.Close(); err != nil {
		l.deps.Logger.Debug("Closing sender failed", "error", err)
	}
	if err := l.deps.Source.Close(); err != nil {
		l.deps.Logger.Debug("Closing input failed", "error", err)
	}
	_ = l.deps.Display.Close()
}
