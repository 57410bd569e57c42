package processors

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	md2slides "github.com/alnah/go-md2slides"
)

// ErrNoImageMatches indicates an image sequence tag matched no files.
var ErrNoImageMatches = errors.New("image sequence matched no files")

// imgseqPattern matches an image-sequence tag line: !imgseq[alt](glob)
// Captures: 1=alt text, 2=glob pattern.
var imgseqPattern = regexp.MustCompile(`^!imgseq\[(.*)\]\((.+)\)\s*$`)

// ImageSeq expands a "!imgseq[alt](glob)" line into one Markdown image
// line per file matching the glob, sorted lexically. Every other line
// passes through unchanged. One expanded image per sub-slide gives a
// stepped build-up when the slide multiplies.
type ImageSeq struct {
	baseDir string
}

// imageSeqOptions are the recognized configuration options.
type imageSeqOptions struct {
	BaseDir string `mapstructure:"baseDir"` // Resolved against relative globs (empty = cwd)
}

// newImageSeq is the registry factory for the "imageseq" kind.
func newImageSeq(options map[string]any) (md2slides.Processor, error) {
	var opts imageSeqOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return &ImageSeq{baseDir: opts.BaseDir}, nil
}

func (p *ImageSeq) Kind() string { return "imageseq" }

func (p *ImageSeq) Process(line string) (md2slides.Result, error) {
	m := imgseqPattern.FindStringSubmatch(line)
	if m == nil {
		return md2slides.Single(line), nil
	}
	alt, glob := m[1], m[2]

	if p.baseDir != "" && !filepath.IsAbs(glob) {
		glob = filepath.Join(p.baseDir, glob)
	}

	matches, err := filepath.Glob(glob)
	if err != nil {
		return md2slides.Result{}, fmt.Errorf("imageseq: bad glob %q: %w", glob, err)
	}
	if len(matches) == 0 {
		return md2slides.Result{}, fmt.Errorf("%w: %q", ErrNoImageMatches, glob)
	}
	sort.Strings(matches)

	lines := make([]string, len(matches))
	for i, path := range matches {
		lines[i] = fmt.Sprintf("![%s](%s)\n", alt, filepath.ToSlash(path))
	}
	return md2slides.Expanded(lines...), nil
}
