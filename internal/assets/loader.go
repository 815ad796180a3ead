package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/akarpov/topic-arcade/internal/core"
)

// Role colors back the solid fallback shapes and tint loaded sprites.
const (
	actorColor      = core.ColorBrightYellow
	itemColor       = core.ColorGreen
	backgroundColor = core.ColorBlue
)

// maxAssetSize caps a single asset read; themes are small text sprites.
const maxAssetSize = 64 << 10

// Loader fetches the three assets of a topic concurrently. It never fails:
// every error path substitutes a fallback and is only logged.
type Loader struct {
	resolver Resolver
	client   *http.Client
	logger   *log.Logger
}

// NewLoader creates a loader. A nil logger silences load warnings.
func NewLoader(resolver Resolver, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		resolver: resolver,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// LoadTheme resolves and loads all assets for a topic. The three fetches run
// concurrently and all complete before gameplay starts; the first failure
// does not abort the others, each failed load independently substitutes its
// fallback.
func (l *Loader) LoadTheme(ctx context.Context, topic string) *core.Theme {
	src := l.resolver.Resolve(topic)
	fb := l.resolver.ResolveFallback(topic)

	theme := &core.Theme{}
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		theme.Actor = l.loadOne(ctx, "actor", src.Actor, fb.Actor, actorColor)
	}()
	go func() {
		defer wg.Done()
		theme.Item = l.loadOne(ctx, "item", src.Item, fb.Item, itemColor)
	}()
	go func() {
		defer wg.Done()
		theme.Background = l.loadOne(ctx, "background", src.Background, fb.Background, backgroundColor)
	}()

	wg.Wait()
	return theme
}

// loadOne fetches one asset, walking the chain primary -> explicit fallback
// -> placeholder. Failures are logged and recovered locally.
func (l *Loader) loadOne(ctx context.Context, role, source, fallback string, c core.Color) core.Sprite {
	data, err := l.fetch(ctx, source)
	if err == nil {
		return core.ParseSprite(string(data), c)
	}
	l.logger.Warn("asset load failed", "role", role, "source", source, "error", err)

	if fallback != "" {
		data, err = l.fetch(ctx, fallback)
		if err == nil {
			return core.ParseSprite(string(data), c)
		}
		l.logger.Warn("fallback asset load failed", "role", role, "source", fallback, "error", err)
	}

	return core.PlaceholderSprite(c)
}

// fetch reads an asset from its source: embedded theme, http(s) URL, or
// filesystem path.
func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, embeddedScheme):
		return readEmbedded(source)
	case isURL(source):
		return l.fetchHTTP(ctx, source)
	default:
		return os.ReadFile(source)
	}
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: bad request for %s: %w", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetch %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", url, err)
	}
	return data, nil
}
