package layout

import (
	"strings"

	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/media"
)

// Glyph presets per tier. Radius is the circumradius of the hexagon in
// millimeters; compact and verticalNarrow media share the smallest preset.
var glyphPresets = map[media.GlyphTier]struct {
	RadiusMM   float64
	FontSizePt float64
	GapMM      float64
}{
	media.GlyphSmall:  {RadiusMM: 5, FontSizePt: 4, GapMM: 2},
	media.GlyphMedium: {RadiusMM: 8, FontSizePt: 6, GapMM: 3},
	media.GlyphLarge:  {RadiusMM: 13, FontSizePt: 10, GapMM: 5},
}

// newGlyph builds one warning-seal glyph centered at (cx, cy).
func newGlyph(seal label.Seal, cx, cy float64, tier media.GlyphTier) Glyph {
	preset := glyphPresets[tier]
	return Glyph{
		SealCode:   seal.Code,
		CX:         cx,
		CY:         cy,
		RadiusMM:   preset.RadiusMM,
		Lines:      wrapSealName(seal.Name, preset.RadiusMM, preset.FontSizePt),
		FontSizePt: preset.FontSizePt,
	}
}

// wrapSealName splits a seal name into word groups that fit the glyph's
// inner width, one group per line. This is fixed-line-height stacking with
// a greedy fill, not a measuring reflow: words accumulate on a line until
// the next one would overflow, and a single long word is never split.
func wrapSealName(name string, radiusMM, fontPt float64) []string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return nil
	}

	// Usable width inside the hexagon, a bit narrower than the full
	// diameter so lines clear the slanted sides.
	innerMM := radiusMM * 1.6
	charW := fontPt * ptToMM * charWidthFactor
	maxChars := int(innerMM / charW)
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) <= maxChars {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// placeGlyphs lays the seals out in rows inside the given span, wrapping to
// a new row when the next glyph would overflow. Input order is preserved:
// seals render in assignment order, never resorted.
func placeGlyphs(seals []label.Seal, left, top, availW float64, tier media.GlyphTier) (glyphs []Glyph, height float64) {
	preset := glyphPresets[tier]
	d := preset.RadiusMM * 2

	x := left
	y := top
	for _, s := range seals {
		if x > left && x+d > left+availW {
			x = left
			y += d + preset.GapMM
		}
		glyphs = append(glyphs, newGlyph(s, x+preset.RadiusMM, y+preset.RadiusMM, tier))
		x += d + preset.GapMM
	}
	return glyphs, y + d - top
}
