package suppression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalBlock(t *testing.T) {
	supps, err := ParseString(`{
   zlib-cond
   Memcheck:Cond
   fun:inflateReset2
}`)
	require.NoError(t, err)
	require.Len(t, supps, 1)

	s := supps[0]
	assert.Equal(t, "zlib-cond", s.Name)
	assert.Equal(t, "Memcheck", s.Tool)
	assert.Equal(t, "Cond", s.Kind)
	assert.Empty(t, s.Params)
	require.Len(t, s.Frames, 1)
	assert.Equal(t, FunFrame("inflateReset2"), s.Frames[0])
}

func TestParseFullBlock(t *testing.T) {
	supps, err := ParseString(`
# Suppress a known write() false positive.

{
   write-param
   Memcheck:Param
   write(buf)
   # comments are fine inside blocks too
   obj:/usr/lib/libc.so*
   ...
   fun:flush_*
   fun:main
}
`)
	require.NoError(t, err)
	require.Len(t, supps, 1)

	s := supps[0]
	assert.Equal(t, "write-param", s.Name)
	assert.Equal(t, []string{"write(buf)"}, s.Params)
	assert.Equal(t, []Frame{
		ObjFrame("/usr/lib/libc.so*"),
		Ellipsis(),
		FunFrame("flush_*"),
		FunFrame("main"),
	}, s.Frames)
}

func TestParsePreservesFileOrder(t *testing.T) {
	var b strings.Builder
	names := []string{"first", "second", "third", "fourth"}
	for _, name := range names {
		b.WriteString("{\n " + name + "\n Memcheck:Leak\n fun:malloc\n}\n")
	}

	supps, err := ParseString(b.String())
	require.NoError(t, err)
	require.Len(t, supps, len(names))
	for i, name := range names {
		assert.Equal(t, name, supps[i].Name)
	}
}

func TestParseSelectorVariants(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		tool     string
		kind     string
		tools    []string
	}{
		{"plain", "Memcheck:Leak", "Memcheck", "Leak", []string{"Memcheck"}},
		{"multi tool", "Memcheck,Helgrind:Race", "Memcheck,Helgrind", "Race", []string{"Memcheck", "Helgrind"}},
		{"kind with colon", "Memcheck:Param:odd", "Memcheck", "Param:odd", []string{"Memcheck"}},
		{"unknown tool", "MyTool:Stuff", "MyTool", "Stuff", []string{"MyTool"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			supps, err := ParseString("{\n n\n " + tc.selector + "\n fun:f\n}")
			require.NoError(t, err)
			require.Len(t, supps, 1)
			assert.Equal(t, tc.tool, supps[0].Tool)
			assert.Equal(t, tc.kind, supps[0].Kind)
			assert.Equal(t, tc.tools, supps[0].Tools())
		})
	}
}

func TestParseFrameGlobWhitespace(t *testing.T) {
	supps, err := ParseString("{\n n\n T:K\n fun:  spaced*name\n}")
	require.NoError(t, err)
	assert.Equal(t, FunFrame("spaced*name"), supps[0].Frames[0])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
	}{
		{
			name: "missing selector",
			in:   "{\n name\n no-separator-here\n fun:f\n}",
			err:  ErrMissingSelector,
			line: 3,
		},
		{
			name: "parameter after frame",
			in:   "{\n name\n T:K\n fun:f\n stray-param\n}",
			err:  ErrParameterAfterFrame,
			line: 5,
		},
		{
			name: "unrecognized frame line",
			in:   "{\n name\n T:K\n fun:f\n sig:11\n}",
			err:  ErrUnrecognizedFrameLine,
			line: 5,
		},
		{
			name: "empty frame list",
			in:   "{\n name\n T:K\n param-only\n}",
			err:  ErrEmptyFrameList,
			line: 5,
		},
		{
			name: "empty block",
			in:   "{\n}",
			err:  ErrEmptyFrameList,
			line: 2,
		},
		{
			name: "unterminated block reports opening brace",
			in:   "# leading comment\n{\n name\n T:K\n fun:f\n",
			err:  ErrUnterminatedBlock,
			line: 2,
		},
		{
			name: "unexpected close",
			in:   "}\n",
			err:  ErrUnexpectedClose,
			line: 1,
		},
		{
			name: "text outside block",
			in:   "fun:f\n",
			err:  ErrMissingOpenBrace,
			line: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			supps, err := ParseString(tc.in)
			assert.Nil(t, supps)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseString("{\n name\n bad-selector\n fun:f\n}")
	require.Error(t, err)
	assert.Equal(t, `suppression: line 3: missing tool:kind selector: "bad-selector"`, err.Error())
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "\n\n", "# only comments\n\n# more\n"} {
		supps, err := ParseString(in)
		require.NoError(t, err)
		assert.Empty(t, supps)
	}
}

func TestParseAllOrNothing(t *testing.T) {
	// A good block followed by a bad one yields no suppressions at all.
	supps, err := ParseString(`{
   good
   Memcheck:Leak
   fun:malloc
}
{
   bad
   no-selector
   fun:f
}`)
	assert.ErrorIs(t, err, ErrMissingSelector)
	assert.Nil(t, supps)
}

func TestParseLongFrameLine(t *testing.T) {
	// A mangled-template glob far past bufio's default 64 KiB token limit
	// must still parse.
	glob := "_ZN" + strings.Repeat("5inner", 40_000) + "4leakEv"
	require.Greater(t, len(glob), 128*1024)

	supps, err := ParseString("{\n n\n Memcheck:Leak\n fun:" + glob + "\n}")
	require.NoError(t, err)
	require.Len(t, supps, 1)
	assert.Equal(t, FunFrame(glob), supps[0].Frames[0])
}

func TestParseConsecutiveEllipsis(t *testing.T) {
	supps, err := ParseString("{\n n\n T:K\n fun:a\n ...\n ...\n fun:b\n}")
	require.NoError(t, err)
	require.Len(t, supps, 1)
	assert.Equal(t, []Frame{FunFrame("a"), Ellipsis(), Ellipsis(), FunFrame("b")}, supps[0].Frames)

	trace := []StackFrame{{Func: "a"}, {Func: "x"}, {Func: "b"}}
	assert.True(t, supps[0].Matches(trace))
	assert.True(t, supps[0].Matches([]StackFrame{{Func: "a"}, {Func: "b"}}))
}
