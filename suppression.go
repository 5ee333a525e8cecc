package suppression

import "strings"

// Suppression is one parsed suppression block. Values are constructed by
// Parse and never modified afterwards; callers may share them freely.
type Suppression struct {
	// Name identifies the suppression in diagnostics. It plays no part in
	// matching.
	Name string

	// Tool is the selector text before the ":", kept verbatim. Valgrind
	// allows a comma-separated list here; see Tools.
	Tool string

	// Kind is the selector text after the ":", e.g. "Leak" or "Cond". It is
	// an opaque string — this package attaches no semantics to it.
	Kind string

	// Params holds tool-specific lines between the selector and the first
	// frame line, in file order. Usually empty.
	Params []string

	// Frames is the calling-context pattern, innermost frame first. Never
	// empty.
	Frames []Frame
}

// Tools splits the Tool field on commas. A selector like
// "Memcheck,Helgrind:Race" applies the suppression to both tools.
func (s *Suppression) Tools() []string {
	return strings.Split(s.Tool, ",")
}

// MinFrames returns the number of anchored (non-ellipsis) frame patterns.
// No trace shorter than this can match.
func (s *Suppression) MinFrames() int {
	n := 0
	for _, f := range s.Frames {
		if f.Kind != FrameEllipsis {
			n++
		}
	}
	return n
}

// String renders the suppression as a file block, indented the way Valgrind
// writes generated suppressions.
func (s *Suppression) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("   " + s.Name + "\n")
	b.WriteString("   " + s.Tool + ":" + s.Kind + "\n")
	for _, p := range s.Params {
		b.WriteString("   " + p + "\n")
	}
	for _, f := range s.Frames {
		b.WriteString("   " + f.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// Suppressions is an ordered collection of suppressions, in file order.
type Suppressions []*Suppression

// FindMatch returns the first suppression in file order whose frame
// patterns cover the trace, or nil if none does. Valgrind scans its
// suppression list in order and applies the first match; callers wanting a
// different policy can iterate and use Matches directly.
func (ss Suppressions) FindMatch(trace []StackFrame) *Suppression {
	for _, s := range ss {
		if s.Matches(trace) {
			return s
		}
	}
	return nil
}

// String renders all suppressions as consecutive file blocks.
func (ss Suppressions) String() string {
	blocks := make([]string, len(ss))
	for i, s := range ss {
		blocks[i] = s.String()
	}
	return strings.Join(blocks, "\n")
}
