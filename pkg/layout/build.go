package layout

import (
	"math"
	"unicode/utf8"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/media"
)

// Unit conversion and estimation constants. Font sizes travel in points
// (the unit the type scale is tuned in) while all geometry is millimeters,
// so estimation happens at this boundary.
const (
	ptToMM = 0.352777

	// lineHeightFactor is the ratio of line height to font size.
	lineHeightFactor = 1.3

	// charWidthFactor estimates average glyph advance as a fraction of the
	// font size. Estimation, not typesetting: layout reserves space, the
	// renderer does the actual line breaking with real font metrics.
	charWidthFactor = 0.55
)

// EAN-13 geometry in modules.
const (
	barcodeModules = 95 // bar pattern of an EAN-13 symbol
	quietModules   = 9  // light margin required on each side
)

// WarnMissingBarcode is attached to layouts built from documents without a
// barcode value. The preview surface shows it as a banner; it never blocks
// rendering, because the omission itself signals incomplete product setup.
const WarnMissingBarcode = "product has no barcode value; assign one in the product record to print a scannable label"

// SelectTemplate maps a media size to its template strategy. It is a pure
// function of the size tier: document content never changes the template.
func SelectTemplate(size media.Size) Template {
	switch size {
	case media.SizeCompact:
		return TemplateCompact
	case media.SizeVerticalNarrow:
		return TemplateVertical
	default:
		return TemplateFull
	}
}

// Build computes the layout for a document at the given media size.
// It is pure: the same document and size always produce the same layout,
// and the document is never modified.
func Build(doc *label.Document, size media.Size) (*Layout, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "label document is required")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	profile, err := media.Lookup(size)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Template: SelectTemplate(size),
		Size:     size,
		WidthMM:  profile.WidthMM,
		HeightMM: profile.HeightMM,
	}
	if doc.BarcodeValue == "" {
		l.Warnings = append(l.Warnings, WarnMissingBarcode)
	}

	switch l.Template {
	case TemplateCompact:
		buildCompact(l, doc, profile)
	case TemplateVertical:
		buildVertical(l, doc, profile)
	default:
		buildFull(l, doc, profile)
	}
	return l, nil
}

// lineHeightMM returns the stacking height for a font size in points.
func lineHeightMM(fontPt float64) float64 {
	return fontPt * ptToMM * lineHeightFactor
}

// estimateTextHeight estimates the rendered height of content wrapped
// within widthMM at the given font size.
func estimateTextHeight(content string, widthMM, fontPt float64) float64 {
	charW := fontPt * ptToMM * charWidthFactor
	perLine := int(widthMM / charW)
	if perLine < 1 {
		perLine = 1
	}
	runes := utf8.RuneCountInString(content)
	lines := int(math.Ceil(float64(runes) / float64(perLine)))
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * lineHeightMM(fontPt)
}

// barcodeBox builds the barcode region centered horizontally in the
// available span, clamping the module width so the symbol (including quiet
// zones) never overflows the span.
func barcodeBox(value string, left, top, availW float64, geo media.BarcodeGeometry, captionPt float64) *BarcodeBox {
	module := geo.ModuleWidthMM
	totalModules := float64(barcodeModules + 2*quietModules)
	if module*totalModules > availW {
		module = availW / totalModules
	}
	w := module * totalModules
	return &BarcodeBox{
		Value:         value,
		X:             left + (availW-w)/2,
		Y:             top,
		Width:         w,
		Height:        geo.BarHeightMM,
		ModuleWidthMM: module,
		TextSizePt:    captionPt,
	}
}

// barcodeTotalHeight is the vertical space a barcode box consumes,
// including the human-readable digit line under the bars.
func barcodeTotalHeight(b *BarcodeBox) float64 {
	if b == nil {
		return 0
	}
	return b.Height + lineHeightMM(b.TextSizePt)
}
