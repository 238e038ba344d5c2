// Package binding holds the action to key binding table, its on-disk form
// and the interactive wizard that fills it.
package binding

import (
	"fmt"
	"strings"
)

// Action is a controller input that a key can drive.
type Action uint8

const (
	LStickUp Action = iota
	LStickDown
	LStickLeft
	LStickRight
	RStickUp
	RStickDown
	RStickLeft
	RStickRight
	BtnA
	BtnB
	BtnX
	BtnY
	BtnL
	BtnR
	BtnZL
	BtnZR
	BtnRun

	actionCount
)

var actionNames = [actionCount]string{
	LStickUp:    "L_STICK_UP",
	LStickDown:  "L_STICK_DOWN",
	LStickLeft:  "L_STICK_LEFT",
	LStickRight: "L_STICK_RIGHT",
	RStickUp:    "R_STICK_UP",
	RStickDown:  "R_STICK_DOWN",
	RStickLeft:  "R_STICK_LEFT",
	RStickRight: "R_STICK_RIGHT",
	BtnA:        "BTN_A",
	BtnB:        "BTN_B",
	BtnX:        "BTN_X",
	BtnY:        "BTN_Y",
	BtnL:        "BTN_L",
	BtnR:        "BTN_R",
	BtnZL:       "BTN_ZL",
	BtnZR:       "BTN_ZR",
	BtnRun:      "BTN_RUN",
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool { return a < actionCount }

// String returns the persisted name, e.g. "BTN_A".
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction maps a persisted action name back to its Action.
func ParseAction(name string) (Action, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Catalog is the ordered list of actions a profile needs bound.
type Catalog []Action

func (c Catalog) Contains(a Action) bool {
	for _, x := range c {
		if x == a {
			return true
		}
	}
	return false
}
