package render

import (
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
	"github.com/tdewolff/canvas"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
)

// barcode draws an EAN-13 symbol as vector bars plus a human readable
// caption under it. Layout already positioned the box so that the symbol
// and its quiet zones fit the media; here each dark module run becomes a
// single filled rectangle.
func (d *drawer) barcode(b layout.BarcodeBox) error {
	sym, err := encodeSymbol(b.Value)
	if err != nil {
		return err
	}

	modules := sym.Bounds().Dx()
	left := b.X + (b.Width-float64(modules)*b.ModuleWidthMM)/2

	d.ctx.SetFillColor(canvas.Black)
	d.ctx.SetStrokeColor(canvas.Transparent)
	for start := 0; start < modules; {
		if !darkModule(sym, start) {
			start++
			continue
		}
		end := start
		for end < modules && darkModule(sym, end) {
			end++
		}
		x := left + float64(start)*b.ModuleWidthMM
		w := float64(end-start) * b.ModuleWidthMM
		d.ctx.DrawPath(x, b.Y, canvas.Rectangle(w, b.Height))
		start = end
	}

	caption := layout.TextBox{
		Content:    b.Value,
		X:          b.X,
		Y:          b.Y + b.Height,
		Width:      b.Width,
		FontSizePt: b.TextSizePt,
		Align:      layout.AlignCenter,
	}
	d.text(caption)
	return nil
}

// encodeSymbol turns a stored barcode value into an EAN-13 symbol. Back
// office records carry the value as an opaque string and a wrong check
// digit is common in older records, so a checksum rejection falls back to
// encoding the first 12 digits and letting the encoder derive the check
// digit. The caption still shows the value exactly as stored.
func encodeSymbol(value string) (barcode.Barcode, error) {
	sym, err := ean.Encode(value)
	if err == nil {
		return sym, nil
	}
	if len(value) == 13 {
		if sym, retryErr := ean.Encode(value[:12]); retryErr == nil {
			return sym, nil
		}
	}
	return nil, errors.Wrap(errors.ErrCodeInvalidBarcode, err, "invalid barcode value %q", value)
}

func darkModule(sym barcode.Barcode, x int) bool {
	r, g, bl, _ := sym.At(x, 0).RGBA()
	return r == 0 && g == 0 && bl == 0
}
