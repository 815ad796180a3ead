// Package assets maps a topic identifier to the three themed sprites a game
// session needs (actor, item, background) and loads them with per-asset
// fallback. A load failure is never surfaced to the player: each asset
// independently degrades to an explicit fallback source, then to the
// built-in placeholder.
package assets

import (
	"path/filepath"
	"strings"
)

// DefaultTopic is used when no topic is selected.
const DefaultTopic = "default"

// embeddedScheme marks a source that resolves into the binary's embedded
// default themes rather than the filesystem or network.
const embeddedScheme = "embedded:"

// Source names the three asset locations for one topic. Each entry is an
// http(s) URL, a filesystem path, or an embedded reference.
type Source struct {
	Actor      string
	Item       string
	Background string
}

// Resolver derives asset sources from a topic string. Base points at a
// directory or URL prefix holding one subdirectory per topic; an empty Base
// resolves into the embedded themes. FallbackBase, when set, is consulted
// per asset before the placeholder.
type Resolver struct {
	Base         string
	FallbackBase string
}

// Resolve maps a topic to its three asset sources. An empty topic resolves
// as DefaultTopic.
func (r Resolver) Resolve(topic string) Source {
	if topic == "" {
		topic = DefaultTopic
	}
	return Source{
		Actor:      joinSource(r.Base, topic, "actor.txt"),
		Item:       joinSource(r.Base, topic, "item.txt"),
		Background: joinSource(r.Base, topic, "background.txt"),
	}
}

// ResolveFallback maps a topic to the explicit fallback sources, or a zero
// Source when no fallback base is configured.
func (r Resolver) ResolveFallback(topic string) Source {
	if r.FallbackBase == "" {
		return Source{}
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return Source{
		Actor:      joinSource(r.FallbackBase, topic, "actor.txt"),
		Item:       joinSource(r.FallbackBase, topic, "item.txt"),
		Background: joinSource(r.FallbackBase, topic, "background.txt"),
	}
}

func joinSource(base, topic, name string) string {
	if base == "" {
		return embeddedScheme + "themes/" + topic + "/" + name
	}
	if isURL(base) {
		return strings.TrimRight(base, "/") + "/" + topic + "/" + name
	}
	return filepath.Join(base, topic, name)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
