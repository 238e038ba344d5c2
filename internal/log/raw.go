package log

import (
	"encoding/hex"
	"io"
	"sync"
	"time"
)

// RawLogger records every control packet sent or received, one line per
// datagram.
type RawLogger interface {
	Log(out bool, data []byte)
}

type rawLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewRaw returns a RawLogger writing to w. A nil writer disables raw logging.
func NewRaw(w io.Writer) RawLogger {
	if w == nil {
		return nopRaw{}
	}
	return &rawLogger{w: w, now: time.Now}
}

func (l *rawLogger) Log(out bool, data []byte) {
	dir := "<-"
	if out {
		dir = "->"
	}
	line := l.now().Format("15:04:05.000000") + " " + dir + " " + hex.EncodeToString(data) + "\n"
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

type nopRaw struct{}

func (nopRaw) Log(bool, []byte) {}
