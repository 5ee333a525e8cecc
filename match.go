package suppression

// StackFrame is one resolved frame of a captured stack trace, innermost
// first. An empty Func or Object means that field could not be resolved; an
// anchored frame pattern never matches an absent field, not even with "*".
type StackFrame struct {
	Func   string
	Object string
}

// Matches reports whether the suppression's frame patterns cover the trace.
func (s *Suppression) Matches(trace []StackFrame) bool {
	return MatchStack(s.Frames, trace)
}

// MatchStack reports whether the pattern sequence can be aligned against a
// prefix of the trace. Each fun:/obj: pattern consumes exactly one frame
// whose corresponding field satisfies the glob; each "..." consumes zero or
// more frames. Frames beyond the last pattern are irrelevant.
//
// The alignment search is a dynamic program over (pattern, trace) index
// pairs: reach[t] records whether the patterns seen so far can consume
// exactly t frames. One rolling row gives O(len(patterns) * len(trace))
// time regardless of how many wildcards appear.
func MatchStack(patterns []Frame, trace []StackFrame) bool {
	reach := make([]bool, len(trace)+1)
	reach[0] = true

	for _, p := range patterns {
		if p.Kind == FrameEllipsis {
			// Prefix-OR sweep: anything reachable stays reachable after
			// skipping any number of further frames.
			for t := 1; t <= len(trace); t++ {
				reach[t] = reach[t] || reach[t-1]
			}
			continue
		}
		// Anchored pattern: shift reachability by one consumed frame.
		for t := len(trace); t >= 1; t-- {
			reach[t] = reach[t-1] && frameMatches(p, trace[t-1])
		}
		reach[0] = false
	}

	for _, ok := range reach {
		if ok {
			return true
		}
	}
	return false
}

func frameMatches(p Frame, f StackFrame) bool {
	switch p.Kind {
	case FrameFunction:
		return f.Func != "" && MatchGlob(p.Glob, f.Func)
	case FrameObject:
		return f.Object != "" && MatchGlob(p.Glob, f.Object)
	}
	return false
}
