package frame

import (
	"encoding/hex"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/input"
)

// Packet is one encoded control frame. It is never modified after Encode
// returns it.
type Packet []byte

func (p Packet) String() string { return hex.EncodeToString(p) }

// Encode builds the packet for one tick. The table must be complete for the
// axes' and buttons' actions.
//
// Each axis emits its negative value if the negative key is held, else its
// positive value if the positive key is held, else neutral. Button bytes
// start at zero and collect the masks of every held button.
func Encode(pressed input.KeySet, t binding.Table, axes []AxisSpec, buttons []ButtonSpec) Packet {
	buttonBytes := 0
	for _, b := range buttons {
		if b.Index+1 > buttonBytes {
			buttonBytes = b.Index + 1
		}
	}
	pkt := make(Packet, len(axes)+buttonBytes)
	for i, ax := range axes {
		switch {
		case pressed.Has(t.Code(ax.Negative)):
			pkt[i] = ax.NegValue
		case pressed.Has(t.Code(ax.Positive)):
			pkt[i] = ax.PosValue
		default:
			pkt[i] = ax.Neutral
		}
	}
	area := pkt[len(axes):]
	for _, b := range buttons {
		if pressed.Has(t.Code(b.Action)) {
			area[b.Index] |= b.Mask
		}
	}
	return pkt
}

// Encode builds the profile's packet for one tick.
func (p Profile) Encode(pressed input.KeySet, t binding.Table) Packet {
	return Encode(pressed, t, p.Axes, p.Buttons)
}
