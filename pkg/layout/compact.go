package layout

import (
	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/media"
)

// compactMarginMM is the outer margin of the compact template. Thermal
// printers at this tier cannot hold tighter tolerances.
const compactMarginMM = 2.5

// buildCompact lays out the smallest tier: title and barcode only. No
// nutrition block, no seals, no SKU line. The title is constrained by the
// container (wrapped), never cut off by character count.
func buildCompact(l *Layout, doc *label.Document, p media.Profile) {
	left := compactMarginMM
	top := compactMarginMM
	innerW := p.WidthMM - 2*compactMarginMM
	innerH := p.HeightMM - 2*compactMarginMM

	title := TextBox{
		Role:         RoleTitle,
		Content:      doc.ProductName,
		X:            left,
		Width:        innerW,
		FontSizePt:   p.Fonts.Title,
		LineHeightMM: lineHeightMM(p.Fonts.Title),
		Align:        AlignCenter,
		Bold:         true,
		Wrap:         true,
	}

	if doc.BarcodeValue == "" {
		// Center the title in the whole label when there is nothing else.
		titleH := estimateTextHeight(doc.ProductName, innerW, p.Fonts.Title)
		title.Y = top + (innerH-titleH)/2
		l.Texts = append(l.Texts, title)
		return
	}

	title.Y = top
	l.Texts = append(l.Texts, title)

	b := barcodeBox(doc.BarcodeValue, left, 0, innerW, p.Barcode, p.Fonts.Caption)
	b.Y = p.HeightMM - compactMarginMM - barcodeTotalHeight(b)
	l.Barcode = b
}
