package processors

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	md2slides "github.com/alnah/go-md2slides"
)

// Sentinel errors for SVG layer expansion.
var (
	ErrNoLayers   = errors.New("svg has no top-level layer groups")
	ErrSVGParse   = errors.New("failed to parse svg")
	ErrBadTimeout = errors.New("invalid timeout")
)

// svgPattern matches an SVG layer tag line: !svg[alt](figure.svg)
// Captures: 1=alt text, 2=svg path.
var svgPattern = regexp.MustCompile(`^!svg\[(.*)\]\((.+)\)\s*$`)

// defaultTargetDir receives rendered PNGs when no target dir is configured.
const defaultTargetDir = "svglayers"

// SVGLayers expands a "!svg[alt](figure.svg)" line into a layer build-up:
// for an SVG with N top-level layer groups it renders N PNGs, the i-th
// showing layers 0..i, and expands into one Markdown image line per PNG.
// Rendering goes through headless Chrome so the PNGs match what a browser
// would display.
type SVGLayers struct {
	targetDir string
	shooter   layerShooter
}

// svgLayersOptions are the recognized configuration options.
type svgLayersOptions struct {
	TargetDir string `mapstructure:"targetDir"` // Output directory for PNGs (default "svglayers")
	Timeout   string `mapstructure:"timeout"`   // Per-render timeout, Go duration syntax (default "2m")
}

// newSVGLayers is the registry factory for the "svglayers" kind.
func newSVGLayers(options map[string]any) (md2slides.Processor, error) {
	var opts svgLayersOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}

	timeout := defaultShotTimeout
	if opts.Timeout != "" {
		d, err := time.ParseDuration(opts.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadTimeout, opts.Timeout)
		}
		timeout = d
	}

	dir := opts.TargetDir
	if dir == "" {
		dir = defaultTargetDir
	}

	return &SVGLayers{targetDir: dir, shooter: newRodShooter(timeout)}, nil
}

func (p *SVGLayers) Kind() string { return "svglayers" }

// TargetDir returns the directory rendered PNGs are written to.
func (p *SVGLayers) TargetDir() string { return p.targetDir }

// SetTargetDir redirects rendered PNGs to dir.
func (p *SVGLayers) SetTargetDir(dir string) { p.targetDir = dir }

// Close releases the headless browser.
func (p *SVGLayers) Close() error { return p.shooter.Close() }

func (p *SVGLayers) Process(line string) (md2slides.Result, error) {
	m := svgPattern.FindStringSubmatch(line)
	if m == nil {
		return md2slides.Single(line), nil
	}
	alt, src := m[1], m[2]

	layers, err := listLayers(src)
	if err != nil {
		return md2slides.Result{}, err
	}
	if len(layers) == 0 {
		return md2slides.Result{}, fmt.Errorf("%w: %s", ErrNoLayers, src)
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	lines := make([]string, len(layers))
	for i := range layers {
		out := filepath.Join(p.targetDir, fmt.Sprintf("%s_%02d.png", base, i))
		// Build-up i shows layers 0..i; everything after stays hidden.
		if err := p.shooter.Shoot(src, layers[i+1:], out); err != nil {
			return md2slides.Result{}, fmt.Errorf("svglayers: rendering %s: %w", out, err)
		}
		lines[i] = fmt.Sprintf("![%s](%s)\n", alt, filepath.ToSlash(out))
	}
	return md2slides.Expanded(lines...), nil
}

// listLayers returns the ids of the SVG's top-level <g> elements, in
// document order. Inkscape stores layers exactly this way; groups without
// an id cannot be toggled and are skipped.
func listLayers(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the user's own slide source
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSVGParse, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	dec.Strict = false

	var layers []string
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSVGParse, path, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 && t.Name.Local == "g" {
				for _, a := range t.Attr {
					if a.Name.Local == "id" {
						layers = append(layers, a.Value)
						break
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return layers, nil
}
