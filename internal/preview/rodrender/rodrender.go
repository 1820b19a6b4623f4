// Package rodrender renders template previews to PNG in a headless Chrome driven by rod.
package rodrender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

const (
	defaultTimeout = 30 * time.Second
	viewportWidth  = 1080
	viewportHeight = 1350
)

// ErrComponentNotReady is returned when the template element never produced its SVG.
var ErrComponentNotReady = errors.New("template component did not render")

// waitForSVG resolves once the component's shadow root holds an <svg>.
const waitForSVG = `(selector) => new Promise((resolve, reject) => {
	const deadline = Date.now() + 20000;
	const tick = () => {
		const el = document.querySelector(selector);
		const svg = el && el.shadowRoot && el.shadowRoot.querySelector('svg');
		if (svg) { resolve(true); return; }
		if (Date.now() > deadline) { reject(new Error('no svg in ' + selector)); return; }
		setTimeout(tick, 100);
	};
	tick();
})`

// Config controls the browser.
type Config struct {
	// Bin is the Chrome binary. Empty lets rod find or download one.
	Bin           string
	Headless      bool
	ComponentsURL string
	Timeout       time.Duration
	Logger        *slog.Logger
}

// Renderer keeps one browser alive across renders. Safe for concurrent use.
type Renderer struct {
	cfg Config

	mu      sync.Mutex
	browser *rod.Browser
}

var _ preview.Renderer = (*Renderer)(nil)

// New constructs a Renderer. The browser starts on first use.
func New(cfg Config) *Renderer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.ComponentsURL == "" {
		cfg.ComponentsURL = preview.DefaultComponentsURL
	}
	return &Renderer{cfg: cfg}
}

// Render loads the template page, waits for the component to draw and screenshots it.
func (r *Renderer) Render(ctx context.Context, req preview.Request) (preview.Artifact, error) {
	html, err := preview.Page(req, r.cfg.ComponentsURL)
	if err != nil {
		return preview.Artifact{}, err
	}
	req = req.Normalize()

	browser, err := r.ensureBrowser(ctx)
	if err != nil {
		return preview.Artifact{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return preview.Artifact{}, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 2,
	}).Call(page); err != nil {
		return preview.Artifact{}, fmt.Errorf("set viewport: %w", err)
	}
	if err := page.SetDocumentContent(string(html)); err != nil {
		return preview.Artifact{}, fmt.Errorf("load template page: %w", err)
	}

	selector := req.Kind.Element()
	if _, err := page.Evaluate(&rod.EvalOptions{
		JS:           waitForSVG,
		JSArgs:       []interface{}{selector},
		AwaitPromise: true,
	}); err != nil {
		return preview.Artifact{}, fmt.Errorf("%w: %v", ErrComponentNotReady, err)
	}

	el, err := page.Element(selector)
	if err != nil {
		return preview.Artifact{}, fmt.Errorf("find %s: %w", selector, err)
	}
	png, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return preview.Artifact{}, fmt.Errorf("screenshot: %w", err)
	}
	return preview.Artifact{ContentType: "image/png", Data: png}, nil
}

// Close shuts the browser down.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	return err
}

func (r *Renderer) ensureBrowser(ctx context.Context) (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(r.cfg.Headless)
	if r.cfg.Bin != "" {
		l = l.Bin(r.cfg.Bin)
	}
	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	logging.Debug(r.cfg.Logger, "preview browser started", slog.String("control_url", controlURL))
	r.browser = browser
	return browser, nil
}
