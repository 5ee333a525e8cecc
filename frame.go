package suppression

// FrameKind discriminates the three forms a frame-pattern line can take.
type FrameKind int

const (
	// FrameFunction anchors on a frame's resolved function name (fun:).
	FrameFunction FrameKind = iota

	// FrameObject anchors on a frame's object file path (obj:).
	FrameObject

	// FrameEllipsis is the "..." wildcard matching zero or more frames.
	FrameEllipsis
)

// Frame is one line of a suppression's calling-context section: an anchored
// glob over a function name or object path, or the "..." wildcard. Glob is
// empty for FrameEllipsis.
type Frame struct {
	Kind FrameKind
	Glob string
}

// FunFrame returns a frame pattern anchoring on a function-name glob.
func FunFrame(glob string) Frame {
	return Frame{Kind: FrameFunction, Glob: glob}
}

// ObjFrame returns a frame pattern anchoring on an object-path glob.
func ObjFrame(glob string) Frame {
	return Frame{Kind: FrameObject, Glob: glob}
}

// Ellipsis returns the wildcard frame pattern.
func Ellipsis() Frame {
	return Frame{Kind: FrameEllipsis}
}

// String renders the frame pattern in suppression-file form.
func (f Frame) String() string {
	switch f.Kind {
	case FrameObject:
		return "obj:" + f.Glob
	case FrameEllipsis:
		return "..."
	default:
		return "fun:" + f.Glob
	}
}
