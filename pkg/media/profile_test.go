package media

import (
	"testing"

	"github.com/labelpress/labelpress/pkg/errors"
)

func TestLookupKnownSizes(t *testing.T) {
	tests := []struct {
		size      Size
		width     float64
		height    float64
		landscape bool
	}{
		{SizeCompact, 62, 29, true},
		{SizeVerticalNarrow, 29, 90, false},
		{SizeFullLarge, 62, 100, false},
		{SizeFullPage, 210, 297, false},
	}

	for _, tt := range tests {
		p, err := Lookup(tt.size)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.size, err)
		}
		if p.WidthMM != tt.width || p.HeightMM != tt.height {
			t.Errorf("Lookup(%q) = %gx%g mm, want %gx%g mm", tt.size, p.WidthMM, p.HeightMM, tt.width, tt.height)
		}
		if p.Landscape() != tt.landscape {
			t.Errorf("Lookup(%q).Landscape() = %v, want %v", tt.size, p.Landscape(), tt.landscape)
		}
	}
}

func TestLookupUnknownSize(t *testing.T) {
	_, err := Lookup("a5")
	if err == nil {
		t.Fatal("Lookup of unknown size should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSize)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		key     string
		want    Size
		wantErr bool
	}{
		{"compact", SizeCompact, false},
		{"verticalNarrow", SizeVerticalNarrow, false},
		{"fullLarge", SizeFullLarge, false},
		{"fullPage", SizeFullPage, false},
		{"Compact", "", true}, // case-sensitive
		{"62x100", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestAllOrderedByArea(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("All() returned %d profiles, want 4", len(all))
	}
	for i := 1; i < len(all); i++ {
		prev := all[i-1].WidthMM * all[i-1].HeightMM
		cur := all[i].WidthMM * all[i].HeightMM
		if cur < prev {
			t.Errorf("All() not ordered by area: %s before %s", all[i-1].Size, all[i].Size)
		}
	}
}

func TestDefaultSize(t *testing.T) {
	if DefaultSize != SizeFullLarge {
		t.Errorf("DefaultSize = %q, want %q", DefaultSize, SizeFullLarge)
	}
}

func TestGlyphTiers(t *testing.T) {
	// Compact and verticalNarrow intentionally share the smallest preset.
	if MustLookup(SizeCompact).Glyph != MustLookup(SizeVerticalNarrow).Glyph {
		t.Error("compact and verticalNarrow should share a glyph tier")
	}
	if MustLookup(SizeFullLarge).Glyph != GlyphMedium {
		t.Error("fullLarge should use the medium glyph tier")
	}
	if MustLookup(SizeFullPage).Glyph != GlyphLarge {
		t.Error("fullPage should use the large glyph tier")
	}
}

func TestProfileString(t *testing.T) {
	got := MustLookup(SizeFullLarge).String()
	want := "fullLarge (62x100 mm)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
