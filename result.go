package md2slides

import "context"

// Result is the outcome of applying a Processor to one line: either a
// single (possibly rewritten) line, or an ordered sequence of alternative
// lines marking an expansion point.
//
// An expansion of length one still counts as an expansion: it sets the
// slide's transition override and takes the split/rejoin path, it just
// produces no additional sub-slides. Detection is by variant, never by
// sequence length.
type Result struct {
	lines    []string
	expanded bool
}

// Single returns a non-expanding Result carrying one line.
func Single(line string) Result {
	return Result{lines: []string{line}}
}

// Expanded returns an expanding Result carrying the alternative lines in
// the order the sub-slides should appear.
func Expanded(lines ...string) Result {
	return Result{lines: lines, expanded: true}
}

// IsExpansion reports whether the result marks an expansion point.
func (r Result) IsExpansion() bool {
	return r.expanded
}

// Line returns the single line of a non-expanding result. For an expanding
// result it returns the first alternative.
func (r Result) Line() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[0]
}

// Lines returns the alternative lines of the result.
func (r Result) Lines() []string {
	return r.lines
}

// Processor rewrites one line of a slide at a time. Implementations must
// be stateless with respect to the slide being processed: Process sees
// lines one by one, in order, and may not assume anything about its
// neighbors.
//
// Kind identifies the processor in diagnostics such as
// MultipleExpansionError.
type Processor interface {
	Kind() string
	Process(line string) (Result, error)
}

// Renderer converts Markdown text to an HTML fragment. It is treated as a
// pure function; failures propagate unchanged to the caller.
type Renderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}
