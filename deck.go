package md2slides

import (
	"context"
	"strings"

	"github.com/alnah/go-md2slides/internal/markdown"
)

// Compile-time interface implementation check.
var _ Renderer = (*markdown.GoldmarkRenderer)(nil)

// DefaultDelimiter marks slide boundaries: any line containing it is a
// boundary and is discarded.
const DefaultDelimiter = ">>>"

// deckConfig holds construction-time settings applied via options.
type deckConfig struct {
	delimiter  string
	processors []Processor
	renderer   Renderer
}

// Option customizes deck construction.
type Option func(*deckConfig)

// WithDelimiter replaces the default ">>>" slide delimiter.
func WithDelimiter(delimiter string) Option {
	return func(c *deckConfig) { c.delimiter = delimiter }
}

// WithProcessors sets the processor pipeline. Order is significant: later
// processors observe the sub-slide structure left by earlier ones.
func WithProcessors(processors ...Processor) Option {
	return func(c *deckConfig) { c.processors = processors }
}

// WithRenderer replaces the default Goldmark renderer.
func WithRenderer(r Renderer) Option {
	return func(c *deckConfig) { c.renderer = r }
}

// Deck is an ordered sequence of slides together with the processor
// pipeline that transforms them and the renderer that turns them into
// HTML.
type Deck struct {
	source     string
	slides     []*Slide
	processors []Processor
	renderer   Renderer
}

// NewDeck splits Markdown into slides at every delimiter line and builds
// the deck. Returns an error for empty input, an empty delimiter, or a nil
// processor or renderer.
func NewDeck(source string, opts ...Option) (*Deck, error) {
	cfg := deckConfig{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" {
		return nil, ErrEmptyMarkdown
	}
	if cfg.delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	for _, p := range cfg.processors {
		if p == nil {
			return nil, ErrNilProcessor
		}
	}
	if cfg.renderer == nil {
		cfg.renderer = markdown.NewGoldmarkRenderer()
	}

	return &Deck{
		source:     source,
		slides:     SplitSlides(source, cfg.delimiter),
		processors: cfg.processors,
		renderer:   cfg.renderer,
	}, nil
}

// SplitSlides breaks document text into slides. A line containing the
// delimiter anywhere is a boundary and belongs to neither neighbor; the
// number of slides is always the number of delimiter lines plus one, so
// leading, trailing, or adjacent delimiters yield empty slides. Lines keep
// their trailing newline verbatim.
func SplitSlides(text, delimiter string) []*Slide {
	var slides []*Slide
	var current []string

	for _, line := range splitLines(text) {
		if strings.Contains(line, delimiter) {
			slides = append(slides, newSlide(current))
			current = nil
			continue
		}
		current = append(current, line)
	}
	slides = append(slides, newSlide(current))

	return slides
}

// splitLines splits text into lines, each keeping its "\n" terminator. A
// final line without a newline is preserved as-is.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Run drives every configured processor over every slide. Processors run
// strictly in configured order; slides run in document order. The first
// error aborts the run with no partial output.
func (d *Deck) Run(ctx context.Context) error {
	for _, p := range d.processors {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, s := range d.slides {
			if err := s.Apply(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// HTML renders every slide in document order and concatenates the wrapped
// sections into the final document body.
func (d *Deck) HTML(ctx context.Context) (string, error) {
	var out strings.Builder
	for _, s := range d.slides {
		html, err := renderSlide(ctx, d.renderer, s)
		if err != nil {
			return "", err
		}
		out.WriteString(html)
	}
	return out.String(), nil
}

// Slides returns the deck's slides in document order.
func (d *Deck) Slides() []*Slide {
	return d.slides
}

// Markdown returns the source document as given to NewDeck.
func (d *Deck) Markdown() string {
	return d.source
}
