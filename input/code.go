// Package input defines the keyboard vocabulary shared by the binding table,
// the frame encoder and the input device backends.
//
// Codes are Linux input event key codes (KEY_* in linux/input-event-codes.h).
// Nothing outside this package interprets them; they are compared, stored and
// printed only.
package input

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code identifies a physical key.
type Code uint16

// NoCode is KEY_RESERVED. It never appears in a pressed set and marks an
// unbound action.
const NoCode Code = 0

// MaxCode is KEY_MAX.
const MaxCode Code = 0x2ff

// Common key codes.
const (
	KeyEsc        Code = 1
	KeyEnter      Code = 28
	KeyLeftCtrl   Code = 29
	KeyLeftShift  Code = 42
	KeyRightShift Code = 54
	KeyLeftAlt    Code = 56
	KeySpace      Code = 57
	KeyF1         Code = 59
	KeyF2         Code = 60
	KeyArrowUp    Code = 103
	KeyArrowLeft  Code = 105
	KeyArrowRight Code = 106
	KeyArrowDown  Code = 108

	KeyW Code = 17
	KeyA Code = 30
	KeyS Code = 31
	KeyD Code = 32
	KeyJ Code = 36
	KeyK Code = 37
	KeyL Code = 38
)

var codeNames = map[Code]string{
	1: "ESC", 2: "1", 3: "2", 4: "3", 5: "4", 6: "5", 7: "6", 8: "7", 9: "8", 10: "9", 11: "0",
	12: "MINUS", 13: "EQUAL", 14: "BACKSPACE", 15: "TAB",
	16: "Q", 17: "W", 18: "E", 19: "R", 20: "T", 21: "Y", 22: "U", 23: "I", 24: "O", 25: "P",
	26: "LEFTBRACE", 27: "RIGHTBRACE", 28: "ENTER", 29: "LEFTCTRL",
	30: "A", 31: "S", 32: "D", 33: "F", 34: "G", 35: "H", 36: "J", 37: "K", 38: "L",
	39: "SEMICOLON", 40: "APOSTROPHE", 41: "GRAVE", 42: "LEFTSHIFT", 43: "BACKSLASH",
	44: "Z", 45: "X", 46: "C", 47: "V", 48: "B", 49: "N", 50: "M",
	51: "COMMA", 52: "DOT", 53: "SLASH", 54: "RIGHTSHIFT", 55: "KPASTERISK",
	56: "LEFTALT", 57: "SPACE", 58: "CAPSLOCK",
	59: "F1", 60: "F2", 61: "F3", 62: "F4", 63: "F5", 64: "F6", 65: "F7", 66: "F8", 67: "F9", 68: "F10",
	69: "NUMLOCK", 70: "SCROLLLOCK",
	71: "KP7", 72: "KP8", 73: "KP9", 74: "KPMINUS", 75: "KP4", 76: "KP5", 77: "KP6", 78: "KPPLUS",
	79: "KP1", 80: "KP2", 81: "KP3", 82: "KP0", 83: "KPDOT",
	87: "F11", 88: "F12", 96: "KPENTER", 97: "RIGHTCTRL", 98: "KPSLASH", 99: "SYSRQ", 100: "RIGHTALT",
	102: "HOME", 103: "UP", 104: "PAGEUP", 105: "LEFT", 106: "RIGHT", 107: "END", 108: "DOWN",
	109: "PAGEDOWN", 110: "INSERT", 111: "DELETE", 119: "PAUSE",
	125: "LEFTMETA", 126: "RIGHTMETA", 127: "COMPOSE",
}

// Names accepted on input only. Output always uses the kernel spelling.
var codeAliases = map[string]Code{
	"ESCAPE":  KeyEsc,
	"RETURN":  KeyEnter,
	"SHIFT":   KeyLeftShift,
	"CTRL":    KeyLeftCtrl,
	"CONTROL": KeyLeftCtrl,
	"ALT":     KeyLeftAlt,
	"META":    125,
	"SUPER":   125,
	"PERIOD":  52,
}

var namedCodes = func() map[string]Code {
	m := make(map[string]Code, len(codeNames)+len(codeAliases))
	for c, n := range codeNames {
		m[n] = c
	}
	for n, c := range codeAliases {
		m[n] = c
	}
	return m
}()

// Name returns the kernel name of the key without the KEY_ prefix and
// reports whether the code is known.
func (c Code) Name() (string, bool) {
	n, ok := codeNames[c]
	return n, ok
}

// String returns "KEY_<NAME>" for known codes and the decimal code otherwise.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return "KEY_" + n
	}
	return strconv.Itoa(int(c))
}

// ParseCode accepts key names with or without the KEY_ prefix in any case
// ("KEY_A", "a", "Esc", "shift") and raw codes. A 0x-prefixed number is
// always a raw code. A bare decimal is a raw code unless it names a digit
// key: "1" is KEY_1 (code 2), "59" is code 59.
func ParseCode(s string) (Code, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return NoCode, fmt.Errorf("empty key name")
	}
	if hex, ok := strings.CutPrefix(name, "0X"); ok {
		n, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return NoCode, fmt.Errorf("bad key code %q", s)
		}
		return ToCode(int64(n))
	}
	name = strings.TrimPrefix(name, "KEY_")
	if c, ok := namedCodes[name]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(name, 10, 16)
	if err != nil {
		return NoCode, fmt.Errorf("unknown key %q", s)
	}
	return ToCode(int64(n))
}

// ToCode validates an integer key code.
func ToCode(n int64) (Code, error) {
	if n <= 0 || n > int64(MaxCode) {
		return NoCode, fmt.Errorf("key code %d out of range 1..%d", n, MaxCode)
	}
	return Code(n), nil
}

// KnownCodes returns every named code in ascending order.
func KnownCodes() []Code {
	out := make([]Code, 0, len(codeNames))
	for c := range codeNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
