package layout

import (
	"strings"

	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/media"
)

// Panel copy. The back office operates in Spanish; these strings appear on
// the physical label.
const (
	sealsPanelHeader     = "SELLOS DE ADVERTENCIA"
	nutritionPanelHeader = "INFORMACIÓN NUTRICIONAL"
	portionHeaderPrefix  = "Valores por "
	nutritionNotice      = "Información nutricional no disponible. Complete la ficha nutricional del producto en el módulo de productos."
)

const (
	panelPadMM    = 2
	sectionGapMM  = 3
	borderStroke  = 0.3
	rowRuleStroke = 0.15
)

// fullMargin returns the outer margin for the full template. The A4 proof
// sheet gets a regular document margin; the 62x100 label stays tight.
func fullMargin(p media.Profile) float64 {
	if p.Size == media.SizeFullPage {
		return 15
	}
	return 4
}

// buildFull lays out the two largest tiers: uppercased bottom-bordered
// title, barcode, warning-seals panel (only when at least one seal is
// present), nutrition panel (or a dashed unavailable notice) and SKU
// caption. Sections flow top-down with a cursor.
func buildFull(l *Layout, doc *label.Document, p media.Profile) {
	margin := fullMargin(p)
	left := margin
	innerW := p.WidthMM - 2*margin
	cursor := margin

	// Title: full width, uppercased, with a rule underneath.
	titleText := strings.ToUpper(doc.ProductName)
	titleH := estimateTextHeight(titleText, innerW, p.Fonts.Title)
	l.Texts = append(l.Texts, TextBox{
		Role:         RoleTitle,
		Content:      titleText,
		X:            left,
		Y:            cursor,
		Width:        innerW,
		FontSizePt:   p.Fonts.Title,
		LineHeightMM: lineHeightMM(p.Fonts.Title),
		Align:        AlignLeft,
		Bold:         true,
		Wrap:         true,
	})
	ruleY := cursor + titleH + 1
	l.Lines = append(l.Lines, Line{X1: left, Y1: ruleY, X2: left + innerW, Y2: ruleY, Width: borderStroke})
	cursor = ruleY + sectionGapMM

	// Barcode, centered under the title. Skipped entirely when absent.
	if doc.BarcodeValue != "" {
		b := barcodeBox(doc.BarcodeValue, left, cursor, innerW, p.Barcode, p.Fonts.Caption)
		l.Barcode = b
		cursor += barcodeTotalHeight(b) + sectionGapMM
	}

	// Warning seals panel. When the product has no seals the panel is
	// omitted, not rendered empty: an empty bordered box would read as
	// "no seals confirmed", which is not what absence means.
	if len(doc.Seals) > 0 {
		cursor = buildSealsPanel(l, doc.Seals, left, cursor, innerW, p) + sectionGapMM
	}

	// Nutrition panel, or an explicit unavailable notice. Absence must be
	// visually distinguishable from "all values are zero".
	if doc.Nutrition != nil {
		cursor = buildNutritionPanel(l, doc.Nutrition, left, cursor, innerW, p) + sectionGapMM
	} else {
		cursor = buildNutritionNotice(l, left, cursor, innerW, p) + sectionGapMM
	}

	// SKU caption anchored to the bottom edge.
	skuLH := lineHeightMM(p.Fonts.Caption)
	l.Texts = append(l.Texts, TextBox{
		Role:         RoleSKU,
		Content:      doc.SKU,
		X:            left,
		Y:            p.HeightMM - margin - skuLH,
		Width:        innerW,
		FontSizePt:   p.Fonts.Caption,
		LineHeightMM: skuLH,
		Align:        AlignRight,
	})
}

// buildSealsPanel renders the bordered seals panel and returns the new
// cursor position (the panel's bottom edge).
func buildSealsPanel(l *Layout, seals []label.Seal, left, top, innerW float64, p media.Profile) float64 {
	headerLH := lineHeightMM(p.Fonts.Body)
	contentLeft := left + panelPadMM
	contentW := innerW - 2*panelPadMM

	l.Texts = append(l.Texts, TextBox{
		Role:         RolePanelHeader,
		Content:      sealsPanelHeader,
		X:            contentLeft,
		Y:            top + panelPadMM,
		Width:        contentW,
		FontSizePt:   p.Fonts.Body,
		LineHeightMM: headerLH,
		Align:        AlignLeft,
		Bold:         true,
	})

	glyphTop := top + panelPadMM + headerLH + 1
	glyphs, glyphH := placeGlyphs(seals, contentLeft, glyphTop, contentW, p.Glyph)
	l.Glyphs = append(l.Glyphs, glyphs...)

	bottom := glyphTop + glyphH + panelPadMM
	l.Rects = append(l.Rects, Rect{
		X:           left,
		Y:           top,
		Width:       innerW,
		Height:      bottom - top,
		StrokeWidth: borderStroke,
	})
	return bottom
}

// buildNutritionPanel renders the bordered nutrition-facts panel and
// returns the new cursor position. Only the fixed display subset appears;
// absent fields are skipped as rows, never zero-filled.
func buildNutritionPanel(l *Layout, n *label.NutritionFacts, left, top, innerW float64, p media.Profile) float64 {
	headerLH := lineHeightMM(p.Fonts.Body)
	rowLH := lineHeightMM(p.Fonts.Body)
	contentLeft := left + panelPadMM
	contentW := innerW - 2*panelPadMM

	y := top + panelPadMM
	l.Texts = append(l.Texts, TextBox{
		Role:         RolePanelHeader,
		Content:      nutritionPanelHeader,
		X:            contentLeft,
		Y:            y,
		Width:        contentW,
		FontSizePt:   p.Fonts.Body,
		LineHeightMM: headerLH,
		Align:        AlignLeft,
		Bold:         true,
	})
	y += headerLH

	l.Texts = append(l.Texts, TextBox{
		Role:         RolePortionHeader,
		Content:      portionHeaderPrefix + n.Portion(),
		X:            contentLeft,
		Y:            y,
		Width:        contentW,
		FontSizePt:   p.Fonts.Caption,
		LineHeightMM: lineHeightMM(p.Fonts.Caption),
		Align:        AlignLeft,
	})
	y += lineHeightMM(p.Fonts.Caption) + 1

	for i, row := range displayRows(n) {
		if i > 0 {
			l.Lines = append(l.Lines, Line{X1: contentLeft, Y1: y, X2: contentLeft + contentW, Y2: y, Width: rowRuleStroke})
			y += 0.5
		}
		l.Texts = append(l.Texts, TextBox{
			Role:         RoleNutritionLabel,
			Content:      row.Label,
			X:            contentLeft,
			Y:            y,
			Width:        contentW * 0.6,
			FontSizePt:   p.Fonts.Body,
			LineHeightMM: rowLH,
			Align:        AlignLeft,
		})
		l.Texts = append(l.Texts, TextBox{
			Role:         RoleNutritionValue,
			Content:      row.Value + " " + row.Unit,
			X:            contentLeft + contentW*0.6,
			Y:            y,
			Width:        contentW * 0.4,
			FontSizePt:   p.Fonts.Body,
			LineHeightMM: rowLH,
			Align:        AlignRight,
		})
		y += rowLH
	}

	bottom := y + panelPadMM
	l.Rects = append(l.Rects, Rect{
		X:           left,
		Y:           top,
		Width:       innerW,
		Height:      bottom - top,
		StrokeWidth: borderStroke,
	})
	return bottom
}

// buildNutritionNotice renders the dashed "data unavailable" notice that
// replaces the nutrition panel when the whole record is absent.
func buildNutritionNotice(l *Layout, left, top, innerW float64, p media.Profile) float64 {
	contentLeft := left + panelPadMM
	contentW := innerW - 2*panelPadMM
	noticeH := estimateTextHeight(nutritionNotice, contentW, p.Fonts.Caption)

	l.Texts = append(l.Texts, TextBox{
		Role:         RoleNotice,
		Content:      nutritionNotice,
		X:            contentLeft,
		Y:            top + panelPadMM,
		Width:        contentW,
		FontSizePt:   p.Fonts.Caption,
		LineHeightMM: lineHeightMM(p.Fonts.Caption),
		Align:        AlignCenter,
		Wrap:         true,
	})

	bottom := top + noticeH + 2*panelPadMM
	l.Rects = append(l.Rects, Rect{
		X:           left,
		Y:           top,
		Width:       innerW,
		Height:      bottom - top,
		StrokeWidth: borderStroke,
		Dashed:      true,
	})
	return bottom
}
