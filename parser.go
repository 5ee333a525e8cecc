package suppression

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel parse errors. They are wrapped in a *ParseError carrying the line
// context; test with errors.Is.
var (
	// ErrMissingOpenBrace: text outside any block that is not "{".
	ErrMissingOpenBrace = errors.New("expected an opening brace")

	// ErrUnexpectedClose: "}" with no open block.
	ErrUnexpectedClose = errors.New("unexpected closing brace")

	// ErrUnterminatedBlock: end of input inside a block. The reported line
	// is the opening brace's.
	ErrUnterminatedBlock = errors.New("unterminated suppression block")

	// ErrMissingSelector: the tool:kind line has no ":" separator.
	ErrMissingSelector = errors.New("missing tool:kind selector")

	// ErrEmptyFrameList: block closed without any frame line.
	ErrEmptyFrameList = errors.New("suppression has no frame patterns")

	// ErrUnrecognizedFrameLine: a frame-section line with an unknown
	// location prefix (not fun:, obj: or "...").
	ErrUnrecognizedFrameLine = errors.New("unrecognized frame line")

	// ErrParameterAfterFrame: a parameter line after the frame section
	// began.
	ErrParameterAfterFrame = errors.New("parameter line after frame patterns")
)

// ParseError describes why a suppression file was rejected. Parsing is
// all-or-nothing, so a ParseError always means zero suppressions were
// returned.
type ParseError struct {
	// Line is the 1-based line number the error refers to.
	Line int

	// Text is the offending line, trimmed, when one exists.
	Text string

	// Err is one of the sentinel errors above, or the underlying read
	// error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("suppression: line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("suppression: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// maxLineSize bounds a single suppression-file line. 16 MiB comfortably
// exceeds any symbol a compiler emits.
const maxLineSize = 16 << 20

// parser states, one per section of a block.
const (
	stateOutside = iota // between blocks
	stateName           // after "{", expecting the name line
	stateSelector       // expecting the tool:kind line
	stateParams         // expecting parameter or frame lines
	stateFrames         // frame section has begun
)

// Parse reads a suppression file and returns its suppressions in file
// order. The first malformed line aborts parsing with a *ParseError and no
// suppressions.
func Parse(r io.Reader) (Suppressions, error) {
	var (
		supps    Suppressions
		state    = stateOutside
		openLine int
		cur      *Suppression
		lineno   int
	)

	fail := func(err error, text string) (Suppressions, error) {
		return nil, &ParseError{Line: lineno, Text: text, Err: err}
	}

	sc := bufio.NewScanner(r)
	// Suppression globs for heavily templated C++ symbols can exceed the
	// scanner's default 64 KiB line cap.
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch state {
		case stateOutside:
			switch line {
			case "{":
				openLine = lineno
				cur = &Suppression{}
				state = stateName
			case "}":
				return fail(ErrUnexpectedClose, line)
			default:
				return fail(ErrMissingOpenBrace, line)
			}

		case stateName:
			if line == "}" {
				return fail(ErrEmptyFrameList, line)
			}
			cur.Name = line
			state = stateSelector

		case stateSelector:
			if line == "}" {
				return fail(ErrEmptyFrameList, line)
			}
			colon := strings.IndexByte(line, ':')
			if colon < 0 {
				return fail(ErrMissingSelector, line)
			}
			cur.Tool = line[:colon]
			cur.Kind = line[colon+1:]
			state = stateParams

		case stateParams:
			if line == "}" {
				return fail(ErrEmptyFrameList, line)
			}
			if f, ok := parseFrameLine(line); ok {
				cur.Frames = append(cur.Frames, f)
				state = stateFrames
				break
			}
			cur.Params = append(cur.Params, line)

		case stateFrames:
			if line == "}" {
				supps = append(supps, cur)
				cur = nil
				state = stateOutside
				break
			}
			f, ok := parseFrameLine(line)
			if !ok {
				// A "loc:" shaped line is a frame line with an unknown
				// location prefix; anything else reads as a misplaced
				// parameter.
				if strings.IndexByte(line, ':') > 0 {
					return fail(ErrUnrecognizedFrameLine, line)
				}
				return fail(ErrParameterAfterFrame, line)
			}
			cur.Frames = append(cur.Frames, f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineno, Err: err}
	}
	if state != stateOutside {
		return nil, &ParseError{Line: openLine, Err: ErrUnterminatedBlock}
	}
	return supps, nil
}

// ParseString parses a suppression file held in memory.
func ParseString(text string) (Suppressions, error) {
	return Parse(strings.NewReader(text))
}

// parseFrameLine decodes one calling-context line. The glob after a fun: or
// obj: prefix is taken verbatim except for leading whitespace.
func parseFrameLine(line string) (Frame, bool) {
	switch {
	case line == "...":
		return Ellipsis(), true
	case strings.HasPrefix(line, "fun:"):
		return FunFrame(strings.TrimLeft(line[len("fun:"):], " \t")), true
	case strings.HasPrefix(line, "obj:"):
		return ObjFrame(strings.TrimLeft(line[len("obj:"):], " \t")), true
	}
	return Frame{}, false
}
