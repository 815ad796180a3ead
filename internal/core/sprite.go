package core

import "strings"

// Sprite is a themed drawable: a small rune grid parsed from a topic asset.
// Fallback sprites stand in for assets that failed to load; the renderer
// draws them as solid blocks of identical bounds instead of texture.
type Sprite struct {
	rows     [][]rune
	width    int
	Color    Color
	Fallback bool
}

// ParseSprite builds a sprite from the text content of an asset. Rows are
// split on newlines; the widest row defines the sprite width and shorter rows
// are padded with spaces. Spaces are transparent when blitted directly.
func ParseSprite(text string, c Color) Sprite {
	text = strings.TrimRight(text, "\n")
	lines := strings.Split(text, "\n")

	width := 0
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		row := []rune(strings.TrimRight(line, "\r"))
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}

	s := Sprite{rows: rows, width: width, Color: c}
	if s.Empty() {
		return PlaceholderSprite(c)
	}
	return s
}

// PlaceholderSprite returns the 1x1 transparent placeholder used when an
// asset cannot be loaded from any source.
func PlaceholderSprite(c Color) Sprite {
	return Sprite{
		rows:     [][]rune{{' '}},
		width:    1,
		Color:    c,
		Fallback: true,
	}
}

// Width returns the sprite width in cells.
func (s Sprite) Width() int { return s.width }

// Height returns the sprite height in cells.
func (s Sprite) Height() int { return len(s.rows) }

// Empty reports whether the sprite has no drawable cells.
func (s Sprite) Empty() bool {
	return s.width == 0 || len(s.rows) == 0
}

// at samples the sprite at (sx, sy) without bounds checking by the caller.
func (s Sprite) at(sx, sy int) rune {
	if sy < 0 || sy >= len(s.rows) || sx < 0 || sx >= s.width {
		return ' '
	}
	return s.rows[sy][sx]
}

// Draw blits the sprite at (x, y). Spaces are skipped so sprites compose over
// the background. Fallback sprites are not drawn here; use DrawStretched so
// the solid substitute keeps the intended bounds.
func (s Sprite) Draw(dst *Screen, x, y int) {
	for sy, row := range s.rows {
		for sx, r := range row {
			if r == ' ' {
				continue
			}
			dst.SetColored(x+sx, y+sy, r, s.Color)
		}
	}
}

// DrawStretched fills the bounds with the sprite using nearest-neighbor
// sampling. A fallback sprite fills the same bounds with a solid block, so a
// missing asset degrades visuals without changing geometry.
func (s Sprite) DrawStretched(dst *Screen, bounds Rect) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	if s.Fallback {
		dst.DrawRect(bounds, '█', s.Color)
		return
	}
	for y := 0; y < bounds.H; y++ {
		sy := y * s.Height() / bounds.H
		for x := 0; x < bounds.W; x++ {
			sx := x * s.width / bounds.W
			dst.SetColored(bounds.X+x, bounds.Y+y, s.at(sx, sy), s.Color)
		}
	}
}

// DrawScrolled fills the bounds with the sprite stretched vertically and
// tiled horizontally, shifted left by offset source columns. The dodge game
// uses it for the looping background scroll.
func (s Sprite) DrawScrolled(dst *Screen, bounds Rect, offset int) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	if s.Fallback {
		dst.DrawRect(bounds, '░', s.Color)
		return
	}
	for y := 0; y < bounds.H; y++ {
		sy := y * s.Height() / bounds.H
		for x := 0; x < bounds.W; x++ {
			sx := (x + offset) % s.width
			if sx < 0 {
				sx += s.width
			}
			dst.SetColored(bounds.X+x, bounds.Y+y, s.at(sx, sy), s.Color)
		}
	}
}

// Theme bundles the three sprites a topic resolves to.
type Theme struct {
	Actor      Sprite
	Item       Sprite
	Background Sprite
}

// DefaultTheme returns an all-fallback theme: solid actor and item blocks
// over a plain background. Used until assets resolve and as the terminal
// degradation when every load fails.
func DefaultTheme() *Theme {
	return &Theme{
		Actor:      PlaceholderSprite(ColorBrightYellow),
		Item:       PlaceholderSprite(ColorGreen),
		Background: PlaceholderSprite(ColorBlue),
	}
}
