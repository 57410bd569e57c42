package processors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-md2slides/internal/fileutil"
)

// Sentinel errors for browser-based rendering.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("screenshot failed")
)

// defaultShotTimeout bounds a single page load + screenshot.
const defaultShotTimeout = 2 * time.Minute

// layerShooter abstracts SVG-to-PNG rendering to enable testing without a
// browser.
type layerShooter interface {
	Shoot(svgPath string, hiddenLayers []string, outPath string) error
	Close() error
}

// Compile-time interface check.
var _ layerShooter = (*rodShooter)(nil)

// hideLayersJS hides the given element ids before the screenshot is taken.
const hideLayersJS = `(ids) => {
	for (const id of ids) {
		const el = document.getElementById(id);
		if (el) {
			el.style.display = "none";
		}
	}
}`

// rodShooter renders SVG files to PNG using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodShooter struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodShooter creates a rodShooter with the given per-render timeout.
func newRodShooter(timeout time.Duration) *rodShooter {
	return &rodShooter{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodShooter) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodShooter) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Shoot opens the SVG in headless Chrome, hides the given layer ids, and
// writes a PNG screenshot of the page to outPath.
func (r *rodShooter) Shoot(svgPath string, hiddenLayers []string, outPath string) error {
	if err := r.ensureBrowser(); err != nil {
		return err
	}

	abs, err := filepath.Abs(svgPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.Timeout(r.timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if len(hiddenLayers) > 0 {
		if _, err := page.Eval(hideLayersJS, hiddenLayers); err != nil {
			return fmt.Errorf("%w: hiding layers: %v", ErrScreenshot, err)
		}
	}

	buf, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	if err := os.WriteFile(outPath, buf, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
