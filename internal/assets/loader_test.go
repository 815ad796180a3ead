package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolverMapsTopicToThreeSources(t *testing.T) {
	r := Resolver{Base: "https://assets.example.com/themes"}
	src := r.Resolve("space")

	if src.Actor != "https://assets.example.com/themes/space/actor.txt" {
		t.Errorf("actor source = %q", src.Actor)
	}
	if src.Item != "https://assets.example.com/themes/space/item.txt" {
		t.Errorf("item source = %q", src.Item)
	}
	if src.Background != "https://assets.example.com/themes/space/background.txt" {
		t.Errorf("background source = %q", src.Background)
	}
}

func TestResolverEmptyTopicIsDefault(t *testing.T) {
	r := Resolver{}
	src := r.Resolve("")
	if !strings.Contains(src.Actor, "/default/") {
		t.Errorf("empty topic should resolve to the default theme, got %q", src.Actor)
	}
	if !strings.HasPrefix(src.Actor, embeddedScheme) {
		t.Errorf("empty base should resolve to embedded sources, got %q", src.Actor)
	}
}

func TestResolverNoFallbackBase(t *testing.T) {
	r := Resolver{Base: "/tmp/themes"}
	if fb := r.ResolveFallback("space"); fb.Actor != "" || fb.Item != "" || fb.Background != "" {
		t.Errorf("no fallback base should yield an empty source, got %+v", fb)
	}
}

func TestLoadThemeEmbeddedDefault(t *testing.T) {
	l := NewLoader(Resolver{}, nil)
	theme := l.LoadTheme(context.Background(), DefaultTopic)

	if theme.Actor.Fallback || theme.Item.Fallback || theme.Background.Fallback {
		t.Fatal("embedded default theme must load without fallbacks")
	}
	if theme.Actor.Width() == 0 || theme.Background.Width() == 0 {
		t.Error("embedded sprites should not be empty")
	}
}

func TestLoadThemePerAssetFallback(t *testing.T) {
	// Serve item and background; actor is missing. Only the failed asset may
	// be substituted.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/actor.txt"):
			http.NotFound(w, r)
		default:
			w.Write([]byte("##\n##"))
		}
	}))
	defer srv.Close()

	l := NewLoader(Resolver{Base: srv.URL}, nil)
	theme := l.LoadTheme(context.Background(), "space")

	if !theme.Actor.Fallback {
		t.Error("missing actor asset should become the placeholder")
	}
	if theme.Item.Fallback || theme.Background.Fallback {
		t.Error("a single failed load must not affect the other assets")
	}
	if theme.Item.Width() != 2 || theme.Item.Height() != 2 {
		t.Errorf("item sprite = %dx%d, expected 2x2", theme.Item.Width(), theme.Item.Height())
	}
}

func TestLoadThemeAllFailuresStillYieldTheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(Resolver{Base: srv.URL}, nil)
	theme := l.LoadTheme(context.Background(), "space")

	if theme == nil {
		t.Fatal("LoadTheme must never return nil")
	}
	if !theme.Actor.Fallback || !theme.Item.Fallback || !theme.Background.Fallback {
		t.Error("every failed asset should be a placeholder")
	}
}

func TestLoadThemeExplicitFallbackSource(t *testing.T) {
	// Primary base is a dead server; the explicit fallback base is a
	// directory that holds the topic.
	dead := httptest.NewServer(http.NotFoundHandler())
	defer dead.Close()

	dir := t.TempDir()
	topicDir := filepath.Join(dir, "space")
	if err := os.MkdirAll(topicDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"actor.txt", "item.txt", "background.txt"} {
		if err := os.WriteFile(filepath.Join(topicDir, name), []byte("@@"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	l := NewLoader(Resolver{Base: dead.URL, FallbackBase: dir}, nil)
	theme := l.LoadTheme(context.Background(), "space")

	if theme.Actor.Fallback || theme.Item.Fallback || theme.Background.Fallback {
		t.Error("explicit fallback sources should be used before the placeholder")
	}
	if theme.Actor.Width() != 2 {
		t.Errorf("actor width = %d, expected 2", theme.Actor.Width())
	}
}

func TestLoadThemeFallbackChainEndsAtPlaceholder(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	defer dead.Close()

	// Fallback base points at a directory without the topic.
	l := NewLoader(Resolver{Base: dead.URL, FallbackBase: t.TempDir()}, nil)
	theme := l.LoadTheme(context.Background(), "space")

	if !theme.Actor.Fallback {
		t.Error("when both sources fail the placeholder must be substituted")
	}
}
