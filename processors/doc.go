// Package processors provides the built-in line processors and the
// registry that constructs them from configuration.
//
// A processor rewrites one line at a time; some expand a matching line
// into several alternatives, multiplying the slide into one sub-slide per
// alternative (see the md2slides package).
//
// Built-in kinds:
//
//   - tidy: normalizes line endings and strips trailing whitespace; never
//     expands.
//   - imageseq: expands a "!imgseq[alt](glob)" line into one Markdown
//     image line per matching file, sorted.
//   - svglayers: expands a "!svg[alt](figure.svg)" line into one image
//     line per cumulative layer build-up, rendering each build-up to a PNG
//     in the target directory through headless Chrome.
//
// Each kind is registered with a factory that decodes the processor's
// free-form options map into a typed option struct; unknown options are
// rejected.
package processors
