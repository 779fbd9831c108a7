package layout

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/media"
)

func f(v float64) *float64 { return &v }

func fullDocument() *label.Document {
	return &label.Document{
		ProductName:  "Galletas de Avena Integral",
		SKU:          "GAL-4012",
		BarcodeValue: "7791234567890",
		Nutrition: &label.NutritionFacts{
			EnergyKcal:    f(450),
			ProteinG:      f(7.5),
			CarbohydrateG: f(62),
			TotalFatG:     f(18),
			SodiumMg:      f(210),
		},
		Seals: []label.Seal{
			{Code: "high-sodium", Name: "ALTO EN SODIO"},
			{Code: "high-sugar", Name: "ALTO EN AZÚCARES"},
		},
	}
}

func TestSelectTemplate(t *testing.T) {
	tests := []struct {
		size media.Size
		want Template
	}{
		{media.SizeCompact, TemplateCompact},
		{media.SizeVerticalNarrow, TemplateVertical},
		{media.SizeFullLarge, TemplateFull},
		{media.SizeFullPage, TemplateFull},
	}

	for _, tt := range tests {
		if got := SelectTemplate(tt.size); got != tt.want {
			t.Errorf("SelectTemplate(%q) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

// The template is a function of the size alone: content never changes it.
func TestTemplateIgnoresContent(t *testing.T) {
	minimal := &label.Document{ProductName: "X", SKU: "S"}
	full := fullDocument()

	for _, size := range []media.Size{media.SizeCompact, media.SizeVerticalNarrow, media.SizeFullLarge, media.SizeFullPage} {
		a, err := Build(minimal, size)
		if err != nil {
			t.Fatalf("Build(minimal, %q) error = %v", size, err)
		}
		b, err := Build(full, size)
		if err != nil {
			t.Fatalf("Build(full, %q) error = %v", size, err)
		}
		if a.Template != b.Template {
			t.Errorf("size %q: template depends on content: %q vs %q", size, a.Template, b.Template)
		}
	}
}

func TestDimensionsMatchProfile(t *testing.T) {
	doc := fullDocument()
	for _, p := range media.All() {
		l, err := Build(doc, p.Size)
		if err != nil {
			t.Fatalf("Build(%q) error = %v", p.Size, err)
		}
		if l.WidthMM != p.WidthMM || l.HeightMM != p.HeightMM {
			t.Errorf("size %q: layout is %gx%g mm, want %gx%g mm", p.Size, l.WidthMM, l.HeightMM, p.WidthMM, p.HeightMM)
		}
		if l.Landscape() != p.Landscape() {
			t.Errorf("size %q: Landscape() = %v, want %v", p.Size, l.Landscape(), p.Landscape())
		}
	}
}

func TestBuildValidatesDocument(t *testing.T) {
	if _, err := Build(nil, media.SizeFullLarge); err == nil {
		t.Error("nil document should fail")
	}
	if _, err := Build(&label.Document{SKU: "S"}, media.SizeFullLarge); err == nil {
		t.Error("document without a name should fail")
	}
	if _, err := Build(fullDocument(), "a5"); err == nil {
		t.Error("unknown size should fail")
	}
}

func TestMissingBarcodeOmittedWithWarning(t *testing.T) {
	doc := fullDocument()
	doc.BarcodeValue = ""

	for _, p := range media.All() {
		l, err := Build(doc, p.Size)
		if err != nil {
			t.Fatalf("Build(%q) error = %v", p.Size, err)
		}
		if l.Barcode != nil {
			t.Errorf("size %q: barcode box present for barcode-less document", p.Size)
		}
		if len(l.Warnings) != 1 || l.Warnings[0] != WarnMissingBarcode {
			t.Errorf("size %q: warnings = %v, want [%q]", p.Size, l.Warnings, WarnMissingBarcode)
		}
	}
}

func TestBarcodePresent(t *testing.T) {
	doc := fullDocument()
	for _, p := range media.All() {
		l, err := Build(doc, p.Size)
		if err != nil {
			t.Fatalf("Build(%q) error = %v", p.Size, err)
		}
		if l.Barcode == nil {
			t.Fatalf("size %q: no barcode box", p.Size)
		}
		if l.Barcode.Value != doc.BarcodeValue {
			t.Errorf("size %q: barcode value = %q, want %q", p.Size, l.Barcode.Value, doc.BarcodeValue)
		}
		if len(l.Warnings) != 0 {
			t.Errorf("size %q: unexpected warnings %v", p.Size, l.Warnings)
		}
		// Symbol plus quiet zones must fit the page.
		if l.Barcode.X < 0 || l.Barcode.X+l.Barcode.Width > p.WidthMM {
			t.Errorf("size %q: barcode overflows the page: x=%g w=%g", p.Size, l.Barcode.X, l.Barcode.Width)
		}
	}
}

func TestCompactOmitsEverythingButTitleAndBarcode(t *testing.T) {
	l, err := Build(fullDocument(), media.SizeCompact)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if len(l.Glyphs) != 0 {
		t.Errorf("compact layout has %d glyphs, want 0", len(l.Glyphs))
	}
	if got := l.TextsByRole(RoleSKU); len(got) != 0 {
		t.Errorf("compact layout has a SKU line")
	}
	if got := l.TextsByRole(RoleNutritionLabel); len(got) != 0 {
		t.Errorf("compact layout has nutrition rows")
	}
	titles := l.TextsByRole(RoleTitle)
	if len(titles) != 1 {
		t.Fatalf("compact layout has %d titles, want 1", len(titles))
	}
	if titles[0].Content != "Galletas de Avena Integral" {
		t.Errorf("compact title = %q, want the untruncated name", titles[0].Content)
	}
}

func TestVerticalTruncatesLongTitle(t *testing.T) {
	doc := fullDocument()
	doc.ProductName = "Galletas Artesanales de Avena Integral con Chips de Chocolate"

	l, err := Build(doc, media.SizeVerticalNarrow)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	titles := l.TextsByRole(RoleTitle)
	if len(titles) != 1 {
		t.Fatalf("vertical layout has %d titles, want 1", len(titles))
	}
	runes := []rune(titles[0].Content)
	if len(runes) != maxVerticalTitleRunes+1 { // 25 content runes plus the ellipsis
		t.Errorf("truncated title has %d runes, want %d", len(runes), maxVerticalTitleRunes+1)
	}
	if !strings.HasSuffix(titles[0].Content, ellipsis) {
		t.Errorf("truncated title %q does not end with ellipsis", titles[0].Content)
	}

	// Only the vertical template truncates; the full template wraps instead.
	lf, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	fullTitle := lf.TextsByRole(RoleTitle)[0]
	if strings.Contains(fullTitle.Content, ellipsis) {
		t.Errorf("full template truncated the title: %q", fullTitle.Content)
	}
	if !fullTitle.Wrap {
		t.Error("full template title should wrap")
	}
}

func TestVerticalShortTitleUntouched(t *testing.T) {
	doc := fullDocument()
	doc.ProductName = "Miel Pura"

	l, err := Build(doc, media.SizeVerticalNarrow)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if got := l.TextsByRole(RoleTitle)[0].Content; got != "Miel Pura" {
		t.Errorf("short title modified: %q", got)
	}
}

func TestSealsPanelOmittedWhenEmpty(t *testing.T) {
	doc := fullDocument()
	doc.Seals = nil

	l, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if len(l.Glyphs) != 0 {
		t.Errorf("layout has %d glyphs for sealless product", len(l.Glyphs))
	}
	for _, tb := range l.TextsByRole(RolePanelHeader) {
		if tb.Content == sealsPanelHeader {
			t.Error("seals panel header present for sealless product")
		}
	}
}

func TestSealsRenderInInputOrder(t *testing.T) {
	doc := fullDocument()
	doc.Seals = []label.Seal{
		{Code: "z-last", Name: "ALTO EN SODIO"},
		{Code: "a-first", Name: "ALTO EN AZÚCARES"},
		{Code: "m-mid", Name: "ALTO EN GRASAS SATURADAS"},
	}

	l, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if len(l.Glyphs) != 3 {
		t.Fatalf("layout has %d glyphs, want 3", len(l.Glyphs))
	}
	for i, want := range []string{"z-last", "a-first", "m-mid"} {
		if l.Glyphs[i].SealCode != want {
			t.Errorf("glyph[%d] = %q, want %q (input order must be preserved)", i, l.Glyphs[i].SealCode, want)
		}
	}
}

func TestNutritionAbsenceRendersDashedNotice(t *testing.T) {
	doc := fullDocument()
	doc.Nutrition = nil

	l, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	notices := l.TextsByRole(RoleNotice)
	if len(notices) != 1 {
		t.Fatalf("layout has %d notices, want 1", len(notices))
	}
	if notices[0].Content != nutritionNotice {
		t.Errorf("notice content = %q", notices[0].Content)
	}
	if len(l.TextsByRole(RoleNutritionValue)) != 0 {
		t.Error("absent nutrition must not produce value rows")
	}

	dashed := false
	for _, r := range l.Rects {
		if r.Dashed {
			dashed = true
		}
	}
	if !dashed {
		t.Error("no dashed rect for the unavailable notice")
	}
}

func TestNutritionDisplaySubset(t *testing.T) {
	doc := fullDocument()
	// Fields outside the display subset must not appear even when present.
	doc.Nutrition.SugarsG = f(22)
	doc.Nutrition.FiberG = f(3.1)

	l, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	labels := l.TextsByRole(RoleNutritionLabel)
	want := []string{"Energía", "Proteínas", "Hidratos de carbono", "Grasas totales", "Sodio"}
	if len(labels) != len(want) {
		t.Fatalf("layout has %d nutrition rows, want %d", len(labels), len(want))
	}
	for i, tb := range labels {
		if tb.Content != want[i] {
			t.Errorf("row[%d] = %q, want %q", i, tb.Content, want[i])
		}
	}
}

func TestNutritionSkipsAbsentFields(t *testing.T) {
	doc := fullDocument()
	doc.Nutrition = &label.NutritionFacts{
		EnergyKcal: f(450),
		SodiumMg:   f(0), // explicit zero still renders
	}

	l, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	labels := l.TextsByRole(RoleNutritionLabel)
	if len(labels) != 2 {
		t.Fatalf("layout has %d nutrition rows, want 2", len(labels))
	}
	values := l.TextsByRole(RoleNutritionValue)
	if values[1].Content != "0 mg" {
		t.Errorf("explicit zero rendered as %q, want %q", values[1].Content, "0 mg")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	doc := fullDocument()
	a, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	b, err := Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	da, _ := json.Marshal(a)
	db, _ := json.Marshal(b)
	if string(da) != string(db) {
		t.Error("two builds of the same document differ")
	}
}

func TestBuildDoesNotMutateDocument(t *testing.T) {
	doc := fullDocument()
	before, _ := json.Marshal(doc)

	if _, err := Build(doc, media.SizeVerticalNarrow); err != nil {
		t.Fatalf("Build error = %v", err)
	}

	after, _ := json.Marshal(doc)
	if string(before) != string(after) {
		t.Error("Build modified the document")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	l, err := Build(fullDocument(), media.SizeFullPage)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	data, err := Marshal(l)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if got.Template != l.Template || got.Size != l.Size || len(got.Texts) != len(l.Texts) {
		t.Error("round-tripped layout differs")
	}
}
