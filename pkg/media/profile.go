// Package media defines the physical label media the back office prints on.
//
// Label printers in the field use fixed-width thermal rolls, so sizes form a
// closed enumeration with a lookup table rather than a parametric scaling
// function: intermediate sizes have no physical meaning. Each profile carries
// the physical page box in millimeters plus the typography and barcode
// geometry tuned for that tier.
package media

import (
	"fmt"
	"sort"

	"github.com/labelpress/labelpress/pkg/errors"
)

// Size identifies one of the four supported label media tiers.
// The string value is the external key used in filenames, flags and URLs.
type Size string

// Supported media sizes.
const (
	// SizeCompact is the 62x29 mm shelf sticker: title and barcode only.
	SizeCompact Size = "compact"

	// SizeVerticalNarrow is the 29x90 mm narrow roll used on bottles.
	SizeVerticalNarrow Size = "verticalNarrow"

	// SizeFullLarge is the 62x100 mm product label with the full layout.
	SizeFullLarge Size = "fullLarge"

	// SizeFullPage is a standard A4 page (210x297 mm) for proofing.
	SizeFullPage Size = "fullPage"
)

// DefaultSize is the tier selected each time a preview opens.
const DefaultSize = SizeFullLarge

// GlyphTier selects one of the three discrete warning-seal glyph presets.
// Compact and verticalNarrow media share the smallest preset.
type GlyphTier int

const (
	GlyphSmall GlyphTier = iota
	GlyphMedium
	GlyphLarge
)

// FontScale is the three-tier type scale of a profile, in points.
type FontScale struct {
	Title   float64
	Body    float64
	Caption float64
}

// BarcodeGeometry describes how EAN-13 bars are sized on a profile.
type BarcodeGeometry struct {
	ModuleWidthMM float64 // width of a single barcode module
	BarHeightMM   float64 // height of the bars, excluding the digit line
}

// Profile is the full configuration of one media tier. Profiles are pure
// configuration: they are never persisted and never mutated.
type Profile struct {
	Size     Size
	WidthMM  float64
	HeightMM float64
	Fonts    FontScale
	Barcode  BarcodeGeometry
	Glyph    GlyphTier
}

// Landscape reports whether the physical page is wider than tall. Both the
// on-screen preview and the PDF page derive their orientation from this.
func (p Profile) Landscape() bool { return p.WidthMM > p.HeightMM }

// profiles is the single lookup table behind [Lookup]. Dimensions match the
// thermal media loaded in the stores; the type scale and barcode geometry
// were tuned against printed output at each tier.
var profiles = map[Size]Profile{
	SizeCompact: {
		Size:     SizeCompact,
		WidthMM:  62,
		HeightMM: 29,
		Fonts:    FontScale{Title: 9, Body: 7, Caption: 6},
		Barcode:  BarcodeGeometry{ModuleWidthMM: 0.25, BarHeightMM: 10},
		Glyph:    GlyphSmall,
	},
	SizeVerticalNarrow: {
		Size:     SizeVerticalNarrow,
		WidthMM:  29,
		HeightMM: 90,
		Fonts:    FontScale{Title: 9, Body: 7, Caption: 6},
		Barcode:  BarcodeGeometry{ModuleWidthMM: 0.25, BarHeightMM: 14},
		Glyph:    GlyphSmall,
	},
	SizeFullLarge: {
		Size:     SizeFullLarge,
		WidthMM:  62,
		HeightMM: 100,
		Fonts:    FontScale{Title: 12, Body: 8, Caption: 7},
		Barcode:  BarcodeGeometry{ModuleWidthMM: 0.33, BarHeightMM: 18},
		Glyph:    GlyphMedium,
	},
	SizeFullPage: {
		Size:     SizeFullPage,
		WidthMM:  210,
		HeightMM: 297,
		Fonts:    FontScale{Title: 24, Body: 12, Caption: 10},
		Barcode:  BarcodeGeometry{ModuleWidthMM: 0.5, BarHeightMM: 25},
		Glyph:    GlyphLarge,
	},
}

// Lookup returns the profile for a size.
func Lookup(s Size) (Profile, error) {
	p, ok := profiles[s]
	if !ok {
		return Profile{}, errors.New(errors.ErrCodeInvalidSize,
			"invalid media size: %q (must be one of: %s)", string(s), keyList())
	}
	return p, nil
}

// MustLookup returns the profile for a size and panics on unknown sizes.
// Only for use with the Size constants above.
func MustLookup(s Size) Profile {
	p, err := Lookup(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse converts an external size key into a Size.
func Parse(key string) (Size, error) {
	if _, ok := profiles[Size(key)]; !ok {
		return "", errors.New(errors.ErrCodeInvalidSize,
			"invalid media size: %q (must be one of: %s)", key, keyList())
	}
	return Size(key), nil
}

// All returns every profile, ordered by physical area (smallest first) so
// listings read naturally.
func All() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WidthMM*out[i].HeightMM < out[j].WidthMM*out[j].HeightMM
	})
	return out
}

func keyList() string {
	all := All()
	s := ""
	for i, p := range all {
		if i > 0 {
			s += ", "
		}
		s += string(p.Size)
	}
	return s
}

// String implements fmt.Stringer for log output, e.g. "fullLarge (62x100 mm)".
func (p Profile) String() string {
	return fmt.Sprintf("%s (%gx%g mm)", p.Size, p.WidthMM, p.HeightMM)
}
