package layout

import (
	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/media"
)

const verticalMarginMM = 2.5

// buildVertical lays out the narrow/tall tier: truncated title, barcode and
// SKU caption, anchored top/middle/bottom so the content fills the strip.
func buildVertical(l *Layout, doc *label.Document, p media.Profile) {
	left := verticalMarginMM
	innerW := p.WidthMM - 2*verticalMarginMM

	// Top anchor: title, hard-truncated. On a 29 mm strip wrapping alone
	// cannot save an arbitrarily long name, so this template cuts at a
	// fixed rune count.
	l.Texts = append(l.Texts, TextBox{
		Role:         RoleTitle,
		Content:      truncateRunes(doc.ProductName, maxVerticalTitleRunes),
		X:            left,
		Y:            verticalMarginMM,
		Width:        innerW,
		FontSizePt:   p.Fonts.Title,
		LineHeightMM: lineHeightMM(p.Fonts.Title),
		Align:        AlignCenter,
		Bold:         true,
		Wrap:         true,
	})

	// Middle anchor: barcode, vertically centered.
	if doc.BarcodeValue != "" {
		b := barcodeBox(doc.BarcodeValue, left, 0, innerW, p.Barcode, p.Fonts.Caption)
		b.Y = (p.HeightMM - barcodeTotalHeight(b)) / 2
		l.Barcode = b
	}

	// Bottom anchor: SKU caption.
	skuLH := lineHeightMM(p.Fonts.Caption)
	l.Texts = append(l.Texts, TextBox{
		Role:         RoleSKU,
		Content:      doc.SKU,
		X:            left,
		Y:            p.HeightMM - verticalMarginMM - skuLH,
		Width:        innerW,
		FontSizePt:   p.Fonts.Caption,
		LineHeightMM: skuLH,
		Align:        AlignCenter,
	})
}
