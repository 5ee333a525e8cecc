// Package suppression parses Valgrind suppression files and matches parsed
// suppressions against captured stack traces.
//
// A suppression file is a sequence of brace-delimited blocks, each naming a
// diagnostic to silence together with the calling context it applies to. This
// package turns the file text into immutable Suppression values and answers,
// per suppression, whether a concrete stack trace is covered by its frame
// patterns. Reading files from disk, capturing stack traces, and deciding how
// to report a suppressed finding are all left to the caller.
//
// # Quick Start
//
//	supps, err := suppression.ParseString(text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	trace := []suppression.StackFrame{
//	    {Func: "malloc"},
//	    {Func: "xml_parse_chunk", Object: "/usr/lib/libxml2.so.2"},
//	    {Func: "main"},
//	}
//
//	if s := supps.FindMatch(trace); s != nil {
//	    fmt.Printf("suppressed by %s\n", s.Name)
//	}
//
// # File Syntax
//
// Blocks are line-oriented. Blank lines and lines starting with "#" are
// ignored everywhere:
//
//	{
//	   <suppression name>
//	   <tool>:<kind>
//	   <optional tool-specific parameter lines>
//	   fun:<glob>      matches a frame by function name
//	   obj:<glob>      matches a frame by object (library) path
//	   ...             matches zero or more frames of any content
//	}
//
// Globs support "*" (any run of bytes, including none) and "?" (exactly one
// byte); everything else matches literally and case-sensitively.
// Parameter lines must precede all frame lines, and every block needs at
// least one frame line. Parsing is all-or-nothing: the first malformed line
// aborts with a ParseError and no suppressions are returned.
//
// # Matching
//
// Traces are ordered innermost-first, the way Valgrind reports them. A
// suppression's frame patterns align against a prefix of the trace: each
// fun:/obj: pattern consumes exactly one frame, "..." consumes any number
// (including zero), and frames beyond the last pattern are irrelevant.
//
// # Concurrency
//
// Parsed suppressions are immutable and safe to share. Matching holds no
// state between calls, so any number of goroutines may match against the
// same suppressions concurrently without synchronization.
package suppression
