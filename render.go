package md2slides

import (
	"context"
	"strings"
	"unicode"
)

// Section wrappers understood by reveal.js. The override variant disables
// the slide transition so expanded build-ups appear in place.
const (
	sectionOpen         = "<section>\n"
	sectionOpenOverride = "<section data-transition=\"none\">\n"
	sectionClose        = "\n</section>\n\n"
)

// renderSlide converts a slide's sub-slides into wrapped <section> blocks.
// Each sub-slide is rendered through the Renderer, re-indented by two
// spaces, trimmed of trailing whitespace, and wrapped; consecutive blocks
// end up separated by a blank line.
func renderSlide(ctx context.Context, r Renderer, s *Slide) (string, error) {
	open := sectionOpen
	if s.overrideTransition {
		open = sectionOpenOverride
	}

	var out strings.Builder
	for _, sub := range s.subSlides {
		body, err := r.Render(ctx, strings.Join(sub, ""))
		if err != nil {
			return "", err
		}

		out.WriteString(open)
		out.WriteString(indentBlock(body))
		out.WriteString(sectionClose)
	}
	return out.String(), nil
}

// indentBlock prefixes every line of the rendered HTML with two spaces and
// strips trailing whitespace from the whole block.
func indentBlock(body string) string {
	var b strings.Builder
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
