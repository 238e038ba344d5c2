package frame

import (
	"fmt"
	"io"
	"strings"
)

type AxisValue struct {
	Name  string
	Value byte
}

// State is a packet read back through its profile, for the status line and
// the receiver monitor.
type State struct {
	Axes    []AxisValue
	Buttons []byte
	Pressed []string
}

// Decode interprets pkt with profile p. Trailing bytes are ignored.
func (p Profile) Decode(pkt []byte) (State, error) {
	if len(pkt) < p.Size() {
		return State{}, fmt.Errorf("%s packet: %w (got %d bytes, want %d)", p.Name, io.ErrUnexpectedEOF, len(pkt), p.Size())
	}
	st := State{
		Axes:    make([]AxisValue, len(p.Axes)),
		Buttons: append([]byte(nil), pkt[len(p.Axes):p.Size()]...),
	}
	for i, ax := range p.Axes {
		st.Axes[i] = AxisValue{Name: ax.Name, Value: pkt[i]}
	}
	for _, b := range p.Buttons {
		if st.Buttons[b.Index]&b.Mask == b.Mask {
			st.Pressed = append(st.Pressed, b.Name)
		}
	}
	return st, nil
}

func (s State) String() string {
	var b strings.Builder
	for _, ax := range s.Axes {
		fmt.Fprintf(&b, "%s=%-3d ", ax.Name, ax.Value)
	}
	b.WriteString("buttons=")
	for i, v := range s.Buttons {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%08b", v)
	}
	if len(s.Pressed) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(s.Pressed, " "))
		b.WriteString("]")
	}
	return b.String()
}
