// Package md2slides converts slide-delimited Markdown into reveal.js
// compatible HTML.
//
// # Quick Start
//
// Create a deck from Markdown, run the processor pipeline, and render:
//
//	deck, err := md2slides.NewDeck(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := deck.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	html, err := deck.HTML(ctx)
//
// The source document is split into slides at every line containing the
// delimiter (default ">>>"). Each slide is rendered as a <section> element
// suitable for pasting into a reveal.js presentation; MergeIntoTemplate
// splices the rendered body into a full reveal.js HTML file.
//
// # Processors
//
// Line processors rewrite individual lines and may expand a single line
// into several alternatives, in which case the slide multiplies into one
// sub-slide per alternative:
//
//	deck, err := md2slides.NewDeck(source,
//	    md2slides.WithProcessors(procs...),
//	)
//
// Expansion is per line: when processor P expands line k of a slide into M
// variants, the slide becomes M sub-slides that are identical except at
// line k. At most one line per sub-slide may expand during a single
// processor pass; a second expansion aborts the run with
// *MultipleExpansionError. Once a slide has expanded, its sections are
// rendered with data-transition="none" so the build-up appears in place.
//
// Concrete processors and the name-based registry used by the CLI live in
// the processors subpackage.
//
// # Rendering
//
// Markdown-to-HTML conversion is delegated to the Renderer capability. The
// default renderer uses Goldmark with GFM extensions and Chroma syntax
// highlighting; supply WithRenderer to replace it.
package md2slides
