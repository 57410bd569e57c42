package processors

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/mitchellh/mapstructure"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
)

// Sentinel errors for registry operations.
var (
	ErrUnknownKind = errors.New("unknown processor kind")
	ErrNilFactory  = errors.New("processor factory cannot be nil")
	ErrEmptyKind   = errors.New("processor kind cannot be empty")
	ErrBadOptions  = errors.New("invalid processor options")
)

// Factory constructs a processor from its configuration options.
type Factory func(options map[string]any) (md2slides.Processor, error)

// registry maps processor kinds to factories. Populated at init time for
// the built-in kinds; Register adds more. Resolution happens once at
// startup, so no locking is needed.
var registry = map[string]Factory{}

func init() {
	registry["tidy"] = newTidy
	registry["imageseq"] = newImageSeq
	registry["svglayers"] = newSVGLayers
}

// Register adds a processor factory under the given kind, replacing any
// existing registration.
func Register(kind string, factory Factory) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if factory == nil {
		return ErrNilFactory
	}
	registry[kind] = factory
	return nil
}

// Kinds returns the registered processor kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build constructs the configured processor pipeline, preserving the order
// of the specs exactly.
func Build(specs []config.ProcessorSpec) ([]md2slides.Processor, error) {
	procs := make([]md2slides.Processor, 0, len(specs))
	for _, spec := range specs {
		factory, ok := registry[spec.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known kinds: %v)", ErrUnknownKind, spec.Kind, Kinds())
		}
		p, err := factory(spec.Options)
		if err != nil {
			return nil, fmt.Errorf("building processor %q: %w", spec.Kind, err)
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// decodeOptions maps a processor's free-form options into its typed option
// struct, rejecting unknown keys.
func decodeOptions(options map[string]any, out any) error {
	if options == nil {
		options = map[string]any{}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadOptions, err)
	}
	if err := dec.Decode(options); err != nil {
		return fmt.Errorf("%w: %v", ErrBadOptions, err)
	}
	return nil
}

// AssetWriter is implemented by processors that write generated files into
// a target directory on disk.
type AssetWriter interface {
	TargetDir() string
	SetTargetDir(dir string)
}

// TargetDirs collects the distinct target directories of all asset-writing
// processors, sorted. The caller creates them before the run.
func TargetDirs(procs []md2slides.Processor) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, p := range procs {
		w, ok := p.(AssetWriter)
		if !ok {
			continue
		}
		dir := w.TargetDir()
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// Retarget points every asset-writing processor at the given directory,
// overriding whatever the configuration said.
func Retarget(procs []md2slides.Processor, dir string) {
	if dir == "" {
		return
	}
	for _, p := range procs {
		if w, ok := p.(AssetWriter); ok {
			w.SetTargetDir(dir)
		}
	}
}

// CloseAll releases resources held by processors (e.g. a headless browser)
// and returns the first error encountered.
func CloseAll(procs []md2slides.Processor) error {
	var firstErr error
	for _, p := range procs {
		c, ok := p.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
