package fontkit

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// faceKey identifies a cached Handle.
type faceKey struct {
	family string
	size   int
}

// Provider resolves (family, size) pairs to Handles and owns the cache that
// memoizes them.
//
// All state is held by the Provider instance; construct one per process, or
// one per test when isolation matters.
type Provider struct {
	mu      sync.RWMutex
	locator Locator
	logger  *slog.Logger
	fonts   map[string]*sfnt.Font // parsed font data, keyed by family
	handles map[faceKey]*Handle
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLocator sets the font file location strategy.
func WithLocator(l Locator) ProviderOption {
	return func(p *Provider) { p.locator = l }
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) { p.logger = l }
}

// NewProvider creates a Provider with an empty cache.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		locator: &PathLocator{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		fonts:   make(map[string]*sfnt.Font),
		handles: make(map[faceKey]*Handle),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// fallbackFont is the embedded Go Regular font, parsed once per process.
// Parsing embedded, known-good bytes cannot fail at runtime.
var (
	fallbackOnce sync.Once
	fallbackFont *sfnt.Font
)

func fallback() *sfnt.Font {
	fallbackOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("fontkit: embedded fallback font failed to parse: " + err.Error())
		}
		fallbackFont = f
	})
	return fallbackFont
}

// Resolve returns a Handle for the family at the given pixel size.
//
// Resolve never fails. When the family cannot be located or parsed, the
// returned Handle is backed by the embedded fallback font; the caller cannot
// tell the difference. Results are cached per (family, size) for the
// lifetime of the Provider.
func (p *Provider) Resolve(family string, size int) *Handle {
	if size < 1 {
		size = 1
	}
	key := faceKey{family: family, size: size}

	p.mu.RLock()
	if h, ok := p.handles[key]; ok {
		p.mu.RUnlock()
		return h
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.handles[key]; ok {
		return h
	}

	sf := p.fontLocked(family)
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Face construction over a parsed font should not fail; if it
		// does, degrade to the fallback rather than surfacing an error.
		p.logger.Warn("face construction failed, using fallback font",
			"family", family, "size", size, "error", err)
		face, _ = opentype.NewFace(fallback(), &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	h := &Handle{face: face, family: family, size: size}
	p.handles[key] = h
	return h
}

// fontLocked returns parsed font data for a family, falling back to the
// embedded font on any location or parse failure. Caller holds p.mu.
func (p *Provider) fontLocked(family string) *sfnt.Font {
	if sf, ok := p.fonts[family]; ok {
		return sf
	}

	sf := p.loadFont(family)
	p.fonts[family] = sf
	return sf
}

func (p *Provider) loadFont(family string) *sfnt.Font {
	path, err := p.locator.Locate(family)
	if err != nil {
		p.logger.Warn("font not located, using fallback font",
			"family", family, "error", err)
		return fallback()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn("font file unreadable, using fallback font",
			"family", family, "path", path, "error", err)
		return fallback()
	}

	sf, err := opentype.Parse(data)
	if err != nil {
		p.logger.Warn("font file unparseable, using fallback font",
			"family", family, "path", path, "error", err)
		return fallback()
	}

	p.logger.Debug("font resolved", "family", family, "path", path)
	return sf
}

// Clear drops every cached font and handle.
//
// Existing Handles remain valid; Clear only releases the Provider's
// references so long-running processes can bound memory growth.
func (p *Provider) Clear() {
	p.mu.Lock()
	p.fonts = make(map[string]*sfnt.Font)
	p.handles = make(map[faceKey]*Handle)
	p.mu.Unlock()
}

// CachedHandles reports how many handles are currently memoized.
func (p *Provider) CachedHandles() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.handles)
}
