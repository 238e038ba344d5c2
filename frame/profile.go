// Package frame encodes keyboard state into the fixed-layout control packet
// streamed to the actuator.
//
// Wire format: len(Axes) axis bytes in profile order followed by the button
// area. There is no header, length prefix or checksum; the receiver knows
// the profile out of band.
//
//	full:    [leftX, leftY, rightX, rightY, buttonMask]   5 bytes, 100Hz
//	reduced: [x, y, runFlag]                              3 bytes, ~60Hz
package frame

import (
	"fmt"
	"strings"
	"time"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/input"
)

// Axis byte values.
const (
	AxisMin     byte = 0
	AxisNeutral byte = 128
	AxisMax     byte = 255
)

// AxisSpec turns a pair of opposite direction actions into one axis byte.
// When both are held the negative direction wins.
type AxisSpec struct {
	Name     string
	Negative binding.Action
	Positive binding.Action
	NegValue byte
	PosValue byte
	Neutral  byte
}

// StickAxis is the common 0/128/255 digital stick axis.
func StickAxis(name string, negative, positive binding.Action) AxisSpec {
	return AxisSpec{
		Name:     name,
		Negative: negative,
		Positive: positive,
		NegValue: AxisMin,
		PosValue: AxisMax,
		Neutral:  AxisNeutral,
	}
}

// ButtonSpec ORs Mask into byte Index of the button area while the action's
// key is held.
type ButtonSpec struct {
	Name   string
	Action binding.Action
	Index  int
	Mask   byte
}

// Profile is one deployment's packet layout and timing.
type Profile struct {
	Name       string
	Catalog    binding.Catalog
	Axes       []AxisSpec
	Buttons    []ButtonSpec
	TickPeriod time.Duration

	// Rebindable profiles load their table from the binding file and honour
	// the reconfigure key. Others always use Defaults.
	Rebindable bool
	Defaults   binding.Table
}

// ButtonBytes is the size of the button area.
func (p Profile) ButtonBytes() int {
	n := 0
	for _, b := range p.Buttons {
		if b.Index+1 > n {
			n = b.Index + 1
		}
	}
	return n
}

// Size is the packet length in bytes.
func (p Profile) Size() int { return len(p.Axes) + p.ButtonBytes() }

// Validate checks the layout for mistakes a receiver could not detect.
func (p Profile) Validate() error {
	var errs []string
	for _, ax := range p.Axes {
		if !p.Catalog.Contains(ax.Negative) || !p.Catalog.Contains(ax.Positive) {
			errs = append(errs, fmt.Sprintf("axis %s uses actions outside the catalog", ax.Name))
		}
		if ax.Negative == ax.Positive {
			errs = append(errs, fmt.Sprintf("axis %s uses %s for both directions", ax.Name, ax.Negative))
		}
	}
	used := make(map[int]byte)
	for _, b := range p.Buttons {
		if !p.Catalog.Contains(b.Action) {
			errs = append(errs, fmt.Sprintf("button %s uses %s outside the catalog", b.Name, b.Action))
		}
		if b.Index < 0 {
			errs = append(errs, fmt.Sprintf("button %s has negative byte index", b.Name))
			continue
		}
		if b.Mask == 0 {
			errs = append(errs, fmt.Sprintf("button %s has an empty mask", b.Name))
		}
		if used[b.Index]&b.Mask != 0 {
			errs = append(errs, fmt.Sprintf("button %s overlaps another button in byte %d", b.Name, b.Index))
		}
		used[b.Index] |= b.Mask
	}
	for i := 0; i < p.ButtonBytes(); i++ {
		if used[i] == 0 {
			errs = append(errs, fmt.Sprintf("button byte %d is never set", i))
		}
	}
	if !p.Rebindable {
		for _, a := range binding.Missing(p.Defaults, p.Catalog) {
			errs = append(errs, fmt.Sprintf("fixed profile has no key for %s", a))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("profile %s: %s", p.Name, strings.Join(errs, "; "))
	}
	return nil
}

// Full is the 16 action gamepad profile.
var Full = Profile{
	Name: "full",
	Catalog: binding.Catalog{
		binding.LStickUp, binding.LStickDown, binding.LStickLeft, binding.LStickRight,
		binding.RStickUp, binding.RStickDown, binding.RStickLeft, binding.RStickRight,
		binding.BtnA, binding.BtnB, binding.BtnX, binding.BtnY,
		binding.BtnL, binding.BtnR, binding.BtnZL, binding.BtnZR,
	},
	Axes: []AxisSpec{
		StickAxis("lx", binding.LStickLeft, binding.LStickRight),
		StickAxis("ly", binding.LStickUp, binding.LStickDown),
		StickAxis("rx", binding.RStickLeft, binding.RStickRight),
		StickAxis("ry", binding.RStickUp, binding.RStickDown),
	},
	Buttons: []ButtonSpec{
		{Name: "a", Action: binding.BtnA, Mask: 1 << 0},
		{Name: "b", Action: binding.BtnB, Mask: 1 << 1},
		{Name: "x", Action: binding.BtnX, Mask: 1 << 2},
		{Name: "y", Action: binding.BtnY, Mask: 1 << 3},
		{Name: "l", Action: binding.BtnL, Mask: 1 << 4},
		{Name: "r", Action: binding.BtnR, Mask: 1 << 5},
		{Name: "zl", Action: binding.BtnZL, Mask: 1 << 6},
		{Name: "zr", Action: binding.BtnZR, Mask: 1 << 7},
	},
	TickPeriod: 10 * time.Millisecond,
	Rebindable: true,
}

// Reduced is the fixed-key runner profile: WASD moves, Left Shift runs.
var Reduced = Profile{
	Name: "reduced",
	Catalog: binding.Catalog{
		binding.LStickUp, binding.LStickDown, binding.LStickLeft, binding.LStickRight,
		binding.BtnRun,
	},
	Axes: []AxisSpec{
		StickAxis("x", binding.LStickLeft, binding.LStickRight),
		StickAxis("y", binding.LStickUp, binding.LStickDown),
	},
	Buttons: []ButtonSpec{
		{Name: "run", Action: binding.BtnRun, Mask: 1},
	},
	TickPeriod: 16 * time.Millisecond,
	Defaults: binding.TableOf(map[binding.Action]input.Code{
		binding.LStickUp:    input.KeyW,
		binding.LStickDown:  input.KeyS,
		binding.LStickLeft:  input.KeyA,
		binding.LStickRight: input.KeyD,
		binding.BtnRun:      input.KeyLeftShift,
	}),
}

var profiles = map[string]Profile{
	Full.Name:    Full,
	Reduced.Name: Reduced,
}

// ProfileNames lists the built-in profiles for flag enums.
const ProfileNames = "full,reduced"

func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (want one of %s)", name, ProfileNames)
	}
	return p, nil
}
