package core

import "testing"

func TestParseSprite(t *testing.T) {
	s := ParseSprite("<o>\n***", ColorYellow)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if s.Fallback {
		t.Error("parsed sprite must not be a fallback")
	}
}

func TestParseSpriteRaggedRows(t *testing.T) {
	s := ParseSprite("ab\ncdef\n", ColorDefault)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
}

func TestParseSpriteEmptyBecomesPlaceholder(t *testing.T) {
	s := ParseSprite("", ColorGreen)
	if !s.Fallback {
		t.Error("empty asset should yield the placeholder")
	}
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("placeholder should be 1x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestSpriteDrawSkipsTransparentCells(t *testing.T) {
	dst := NewScreen(5, 3)
	dst.Set(1, 0, '.')

	s := ParseSprite(" x\nxx", ColorRed)
	s.Draw(dst, 0, 0)

	if dst.Get(0, 0) != '.' {
		t.Error("spaces in a sprite must not overwrite the background")
	}
	if dst.Get(1, 0) != 'x' || dst.Get(0, 1) != 'x' {
		t.Error("sprite cells were not drawn")
	}
}

func TestFallbackDrawStretchedFillsBounds(t *testing.T) {
	dst := NewScreen(10, 10)
	fb := PlaceholderSprite(ColorGreen)

	bounds := NewRect(2, 3, 4, 3)
	fb.DrawStretched(dst, bounds)

	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			cell := dst.GetCell(x, y)
			if cell.Rune != '█' || cell.Color != ColorGreen {
				t.Fatalf("cell (%d,%d) = %+v, expected solid green block", x, y, cell)
			}
		}
	}
	if dst.Get(1, 3) == '█' || dst.Get(6, 3) == '█' {
		t.Error("fallback block leaked outside its bounds")
	}
}

func TestSpriteDrawScrolledWraps(t *testing.T) {
	dst := NewScreen(6, 1)
	s := ParseSprite("abc", ColorDefault)

	s.DrawScrolled(dst, NewRect(0, 0, 6, 1), 1)
	if dst.Row(0) != "bcabca" {
		t.Errorf("Row(0) = %q, expected %q", dst.Row(0), "bcabca")
	}

	// Offsets beyond the sprite width wrap around
	s.DrawScrolled(dst, NewRect(0, 0, 6, 1), 4)
	if dst.Row(0) != "bcabca" {
		t.Errorf("offset 4 should equal offset 1, got %q", dst.Row(0))
	}
}
