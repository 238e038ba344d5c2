package binding

import (
	"strings"

	"github.com/Alia5/padlink/input"
)

// Table maps every Action to at most one key.
//
// Table is a value: Bind returns a modified copy and the receiver is never
// changed, so handing a Table to the encoder or swapping the loop's table is
// a plain assignment.
type Table struct {
	codes [actionCount]input.Code
}

// TableOf builds a table from action/key pairs.
func TableOf(pairs map[Action]input.Code) Table {
	var t Table
	for a, c := range pairs {
		t = t.Bind(a, c)
	}
	return t
}

// Bind returns a copy of t with a bound to c. Invalid actions are ignored.
func (t Table) Bind(a Action, c input.Code) Table {
	if a.Valid() {
		t.codes[a] = c
	}
	return t
}

// Lookup returns the key bound to a.
func (t Table) Lookup(a Action) (input.Code, bool) {
	if !a.Valid() || t.codes[a] == input.NoCode {
		return input.NoCode, false
	}
	return t.codes[a], true
}

// Code returns the key bound to a, or input.NoCode.
func (t Table) Code(a Action) input.Code {
	c, _ := t.Lookup(a)
	return c
}

// Bound lists the bound actions in enumeration order.
func (t Table) Bound() []Action {
	var out []Action
	for a, c := range t.codes {
		if c != input.NoCode {
			out = append(out, Action(a))
		}
	}
	return out
}

// Restrict returns a copy of t holding only the catalog's actions.
func (t Table) Restrict(catalog Catalog) Table {
	var out Table
	for _, a := range catalog {
		out = out.Bind(a, t.Code(a))
	}
	return out
}

func (t Table) String() string {
	var b strings.Builder
	for i, a := range t.Bound() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(a.String())
		b.WriteString("=")
		b.WriteString(t.codes[a].String())
	}
	return b.String()
}

// IsComplete reports whether every catalog action has a key.
func IsComplete(t Table, catalog Catalog) bool {
	for _, a := range catalog {
		if _, ok := t.Lookup(a); !ok {
			return false
		}
	}
	return true
}

// Missing lists the catalog actions without a key.
func Missing(t Table, catalog Catalog) []Action {
	var out []Action
	for _, a := range catalog {
		if _, ok := t.Lookup(a); !ok {
			out = append(out, a)
		}
	}
	return out
}
