package md2slides

import "strings"

// Slide holds one document segment between two delimiter lines. A slide
// starts as a single sub-slide containing its original lines; processors
// may multiply it into several sub-slide variants.
type Slide struct {
	// source keeps the lines as parsed, immutable, for diagnostics and
	// Markdown reconstruction.
	source    []string
	subSlides [][]string

	// overrideTransition is set the first time any processor expands a
	// line of this slide and never cleared, even if a later pass leaves a
	// single sub-slide again.
	overrideTransition bool
}

// newSlide seeds a slide with its raw lines. The lines are copied so later
// mutation of the input cannot leak into the slide.
func newSlide(lines []string) *Slide {
	source := make([]string, len(lines))
	copy(source, lines)

	initial := make([]string, len(lines))
	copy(initial, lines)

	return &Slide{
		source:    source,
		subSlides: [][]string{initial},
	}
}

// Apply runs one processor over every line of every current sub-slide and
// replaces the sub-slide set with the recombined outcome.
//
// Within one sub-slide, at most one line may expand per pass. If a second
// line expands, Apply fails with *MultipleExpansionError and the slide is
// left unchanged. Processor errors propagate unchanged.
func (s *Slide) Apply(p Processor) error {
	expandedSlide := false

	newSubSlides := make([][]string, 0, len(s.subSlides))
	for _, sub := range s.subSlides {
		expandedAt := -1
		var variants []string

		processed := make([]string, len(sub))
		for i, line := range sub {
			res, err := p.Process(line)
			if err != nil {
				return err
			}

			if !res.IsExpansion() {
				processed[i] = res.Line()
				continue
			}

			if expandedAt >= 0 {
				return &MultipleExpansionError{
					Processor: p.Kind(),
					Source:    s.Markdown(),
				}
			}
			expandedAt = i
			variants = res.Lines()
		}

		if expandedAt < 0 {
			newSubSlides = append(newSubSlides, processed)
			continue
		}

		// One new sub-slide per variant: processed lines before the
		// expansion point, the variant, processed lines after. Variant
		// order is preserved as returned by the processor.
		expandedSlide = true
		for _, v := range variants {
			out := make([]string, 0, len(processed))
			out = append(out, processed[:expandedAt]...)
			out = append(out, v)
			out = append(out, processed[expandedAt+1:]...)
			newSubSlides = append(newSubSlides, out)
		}
	}

	s.subSlides = newSubSlides
	if expandedSlide {
		s.overrideTransition = true
	}
	return nil
}

// Markdown reconstructs the slide's original source text.
func (s *Slide) Markdown() string {
	return strings.Join(s.source, "")
}

// SubSlides returns a copy of the current sub-slide variants in order.
func (s *Slide) SubSlides() [][]string {
	out := make([][]string, len(s.subSlides))
	for i, sub := range s.subSlides {
		out[i] = make([]string, len(sub))
		copy(out[i], sub)
	}
	return out
}

// OverridesTransition reports whether the slide ever expanded. Rendered
// sections carry data-transition="none" when true.
func (s *Slide) OverridesTransition() bool {
	return s.overrideTransition
}
