package style

// State is the attribute set active on the terminal at one point in the
// output stream. The zero value is not meaningful; use Plain or
// StateFor.
type State struct {
	fg, bg          int // 256-color code, -1 when unset
	bold, underline bool
}

// Plain is the state with no attributes set, equivalent to the terminal
// after a full reset.
func Plain() State {
	return State{fg: -1, bg: -1}
}

// StateFor converts a resolved Spec into a terminal state. Intense maps
// a standard foreground color (0-7) to its bright variant (8-15); it
// has no effect on other color codes.
func StateFor(s Spec) State {
	st := Plain()
	if s.FG != nil {
		st.fg = int(*s.FG)
		if s.Intense && st.fg < 8 {
			st.fg += 8
		}
	}
	if s.BG != nil {
		st.bg = int(*s.BG)
	}
	st.bold = s.Bold
	st.underline = s.Underline
	return st
}

// IsPlain reports whether the state carries no attributes.
func (s State) IsPlain() bool {
	return s == Plain()
}

// DiffKind classifies the escape sequences needed to move between two
// states.
type DiffKind int

const (
	// NoChange means the states are identical; emit nothing.
	NoChange DiffKind = iota
	// AddOnly means the next state only adds or changes attributes;
	// emit just the additions.
	AddOnly
	// MustReset means the next state removes an attribute the current
	// state has. Escape sequences are additive only, so a full reset
	// must precede the new state.
	MustReset
)

// Difference is the three-way result of comparing two states.
type Difference struct {
	Kind DiffKind
	// Add holds the attributes to emit for AddOnly.
	Add State
}

// Between computes the minimal transition from prev to next.
func Between(prev, next State) Difference {
	if prev == next {
		return Difference{Kind: NoChange}
	}
	if (prev.fg >= 0 && next.fg < 0) ||
		(prev.bg >= 0 && next.bg < 0) ||
		(prev.bold && !next.bold) ||
		(prev.underline && !next.underline) {
		return Difference{Kind: MustReset}
	}
	add := Plain()
	if next.fg != prev.fg {
		add.fg = next.fg
	}
	if next.bg != prev.bg {
		add.bg = next.bg
	}
	add.bold = next.bold && !prev.bold
	add.underline = next.underline && !prev.underline
	return Difference{Kind: AddOnly, Add: add}
}
