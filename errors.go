package md2slides

import (
	"errors"
	"fmt"
)

// Sentinel errors for deck construction and rendering.
var (
	ErrEmptyMarkdown       = errors.New("markdown content cannot be empty")
	ErrEmptyDelimiter      = errors.New("slide delimiter cannot be empty")
	ErrNilProcessor        = errors.New("processor cannot be nil")
	ErrSlidesMarkerMissing = errors.New(`template has no element with class="slides"`)
)

// MultipleExpansionError reports that two lines of the same sub-slide both
// expanded during a single processor pass. The run cannot continue: there
// is no defined order in which two independent expansions of one slide
// should multiply.
type MultipleExpansionError struct {
	// Processor is the kind of the processor whose pass failed.
	Processor string
	// Source is the slide's original Markdown, before any processing.
	Source string
}

func (e *MultipleExpansionError) Error() string {
	return fmt.Sprintf(
		"processor %q: a slide cannot contain more than one line that expands into sub-slides\n\noffending slide:\n\n%s",
		e.Processor, e.Source,
	)
}
