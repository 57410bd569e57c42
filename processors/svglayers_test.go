package processors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const layeredSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g id="layer-base">
    <g id="nested-ignored"><rect width="10" height="10"/></g>
  </g>
  <g><circle r="5"/></g>
  <g id="layer-detail"><circle r="2"/></g>
</svg>
`

// fakeShooter records Shoot calls instead of driving a browser.
type fakeShooter struct {
	calls []struct {
		hidden []string
		out    string
	}
	err error
}

func (f *fakeShooter) Shoot(_ string, hidden []string, out string) error {
	f.calls = append(f.calls, struct {
		hidden []string
		out    string
	}{hidden, out})
	return f.err
}

func (f *fakeShooter) Close() error { return nil }

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "figure.svg")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestListLayers(t *testing.T) {
	path := writeSVG(t, layeredSVG)

	layers, err := listLayers(path)
	if err != nil {
		t.Fatalf("listLayers() error = %v", err)
	}

	// Top-level groups with ids only: nested groups and anonymous groups
	// are skipped.
	want := []string{"layer-base", "layer-detail"}
	if len(layers) != len(want) {
		t.Fatalf("layers = %v, want %v", layers, want)
	}
	for i := range want {
		if layers[i] != want[i] {
			t.Errorf("layer %d = %q, want %q", i, layers[i], want[i])
		}
	}
}

func TestListLayers_MissingFile(t *testing.T) {
	_, err := listLayers(filepath.Join(t.TempDir(), "absent.svg"))
	if !errors.Is(err, ErrSVGParse) {
		t.Errorf("error = %v, want ErrSVGParse", err)
	}
}

func TestSVGLayers_Expansion(t *testing.T) {
	path := writeSVG(t, layeredSVG)
	shooter := &fakeShooter{}
	p := &SVGLayers{targetDir: "img", shooter: shooter}

	res, err := p.Process("!svg[diagram](" + path + ")\n")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !res.IsExpansion() {
		t.Fatal("Process() did not expand the svg tag line")
	}

	lines := res.Lines()
	if len(lines) != 2 {
		t.Fatalf("variant count = %d, want one per layer", len(lines))
	}
	want0 := "![diagram](img/figure_00.png)\n"
	want1 := "![diagram](img/figure_01.png)\n"
	if lines[0] != want0 || lines[1] != want1 {
		t.Errorf("variants = %v, want [%q %q]", lines, want0, want1)
	}

	if len(shooter.calls) != 2 {
		t.Fatalf("render calls = %d, want 2", len(shooter.calls))
	}
	// First build-up hides the later layer; the final one hides nothing.
	if len(shooter.calls[0].hidden) != 1 || shooter.calls[0].hidden[0] != "layer-detail" {
		t.Errorf("first render hidden = %v, want [layer-detail]", shooter.calls[0].hidden)
	}
	if len(shooter.calls[1].hidden) != 0 {
		t.Errorf("last render hidden = %v, want none", shooter.calls[1].hidden)
	}
}

func TestSVGLayers_NonTagLinePassesThrough(t *testing.T) {
	p := &SVGLayers{targetDir: "img", shooter: &fakeShooter{}}

	res, err := p.Process("# heading\n")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if res.IsExpansion() || res.Line() != "# heading\n" {
		t.Errorf("result = %+v, want pass-through", res)
	}
}

func TestSVGLayers_NoLayers(t *testing.T) {
	path := writeSVG(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`)
	p := &SVGLayers{targetDir: "img", shooter: &fakeShooter{}}

	_, err := p.Process("!svg[x](" + path + ")\n")
	if !errors.Is(err, ErrNoLayers) {
		t.Errorf("error = %v, want ErrNoLayers", err)
	}
}

func TestSVGLayers_ShooterErrorPropagates(t *testing.T) {
	path := writeSVG(t, layeredSVG)
	sentinel := errors.New("browser gone")
	p := &SVGLayers{targetDir: "img", shooter: &fakeShooter{err: sentinel}}

	_, err := p.Process("!svg[x](" + path + ")\n")
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want shooter error propagated", err)
	}
}

func TestSVGLayersFactory(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := newSVGLayers(nil)
		if err != nil {
			t.Fatalf("newSVGLayers() error = %v", err)
		}
		sl := p.(*SVGLayers)
		if sl.TargetDir() != defaultTargetDir {
			t.Errorf("TargetDir() = %q, want %q", sl.TargetDir(), defaultTargetDir)
		}
	})

	t.Run("options", func(t *testing.T) {
		p, err := newSVGLayers(map[string]any{"targetDir": "renders", "timeout": "30s"})
		if err != nil {
			t.Fatalf("newSVGLayers() error = %v", err)
		}
		if got := p.(*SVGLayers).TargetDir(); got != "renders" {
			t.Errorf("TargetDir() = %q, want %q", got, "renders")
		}
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := newSVGLayers(map[string]any{"timeout": "soon"})
		if !errors.Is(err, ErrBadTimeout) {
			t.Errorf("error = %v, want ErrBadTimeout", err)
		}
	})
}
