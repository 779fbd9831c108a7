// Package render draws computed label layouts onto a vector canvas.
//
// The drawing step is shared by every sink (PDF, PNG, SVG, print document):
// a layout is drawn exactly once per render and the sinks only differ in how
// the canvas is serialized. This keeps a single source of visual truth and
// avoids the raster round-trip the original screen-capture export had, so
// the exported file cannot drift from the preview.
//
// All layout coordinates are millimeters with a top-left origin; the canvas
// is configured to match, and font sizes cross the boundary in points.
package render

import (
	"math"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
)

const ptToMM = 0.352777

// fontFamily is loaded once per process. Labels use a single sans family
// in regular and bold; the concrete font comes from the host system.
var (
	fontOnce   sync.Once
	fontFam    *canvas.FontFamily
	fontErr    error
	systemSans = []string{"sans-serif", "DejaVu Sans", "Arial", "Helvetica"}
)

func family() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		fam := canvas.NewFontFamily("labelpress")
		var lastErr error
		for _, name := range systemSans {
			if err := fam.LoadSystemFont(name, canvas.FontRegular); err != nil {
				lastErr = err
				continue
			}
			// Bold is optional: canvas synthesizes it when the host has
			// no bold variant installed.
			_ = fam.LoadSystemFont(name, canvas.FontBold)
			fontFam = fam
			return
		}
		fontErr = errors.Wrap(errors.ErrCodeInternal, lastErr, "no usable sans font found on this system")
	})
	return fontFam, fontErr
}

// Draw renders a layout onto a fresh canvas sized exactly to the layout's
// physical dimensions in millimeters.
func Draw(l *layout.Layout) (*canvas.Canvas, error) {
	if l == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout is required")
	}
	fam, err := family()
	if err != nil {
		return nil, err
	}

	c := canvas.New(l.WidthMM, l.HeightMM)
	ctx := canvas.NewContext(c)
	// Match the layout's top-left origin.
	ctx.SetCoordSystem(canvas.CartesianIV)

	// White page background so raster previews are opaque.
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(l.WidthMM, l.HeightMM))

	d := drawer{ctx: ctx, fam: fam}

	for _, r := range l.Rects {
		d.rect(r)
	}
	for _, ln := range l.Lines {
		d.line(ln)
	}
	for _, t := range l.Texts {
		d.text(t)
	}
	if l.Barcode != nil {
		if err := d.barcode(*l.Barcode); err != nil {
			return nil, err
		}
	}
	for _, g := range l.Glyphs {
		d.glyph(g)
	}

	return c, nil
}

type drawer struct {
	ctx *canvas.Context
	fam *canvas.FontFamily
}

func (d *drawer) face(sizePt float64, bold bool, col canvas.Paint) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return d.fam.Face(sizePt, col, style, canvas.FontNormal)
}

func (d *drawer) text(t layout.TextBox) {
	face := d.face(t.FontSizePt, t.Bold, canvas.Paint{Color: canvas.Black})

	var align canvas.TextAlign
	switch t.Align {
	case layout.AlignCenter:
		align = canvas.Center
	case layout.AlignRight:
		align = canvas.Right
	default:
		align = canvas.Left
	}

	if t.Wrap {
		// Height 0 lets the text box grow downward as far as it needs;
		// layout already reserved the space.
		box := canvas.NewTextBox(face, t.Content, t.Width, 0, align, canvas.Top, nil)
		d.ctx.DrawText(t.X, t.Y, box)
		return
	}

	line := canvas.NewTextLine(face, t.Content, align)
	var anchorX float64
	switch t.Align {
	case layout.AlignCenter:
		anchorX = t.X + t.Width/2
	case layout.AlignRight:
		anchorX = t.X + t.Width
	default:
		anchorX = t.X
	}
	baseline := t.Y + face.Metrics().Ascent
	d.ctx.DrawText(anchorX, baseline, line)
}

func (d *drawer) rect(r layout.Rect) {
	d.ctx.SetFillColor(canvas.Transparent)
	d.ctx.SetStrokeColor(canvas.Black)
	d.ctx.SetStrokeWidth(r.StrokeWidth)
	if r.Dashed {
		d.ctx.SetDashes(0, 1.5, 1)
	}
	d.ctx.DrawPath(r.X, r.Y, canvas.Rectangle(r.Width, r.Height))
	if r.Dashed {
		d.ctx.SetDashes(0)
	}
}

func (d *drawer) line(l layout.Line) {
	d.ctx.SetStrokeColor(canvas.Black)
	d.ctx.SetStrokeWidth(l.Width)
	p := &canvas.Path{}
	p.MoveTo(l.X1, l.Y1)
	p.LineTo(l.X2, l.Y2)
	d.ctx.DrawPath(0, 0, p)
}

// glyph draws one hexagonal warning seal: filled hexagon, white wrapped
// name stacked at a fixed line height around the center.
func (d *drawer) glyph(g layout.Glyph) {
	d.ctx.SetFillColor(canvas.Black)
	d.ctx.SetStrokeColor(canvas.Transparent)
	d.ctx.DrawPath(0, 0, hexagonPath(g.CX, g.CY, g.RadiusMM))

	face := d.face(g.FontSizePt, true, canvas.Paint{Color: canvas.White})
	lineH := g.FontSizePt * ptToMM * 1.15
	total := float64(len(g.Lines)) * lineH
	// Fixed baseline offset from the glyph center, then fixed stacking.
	baseline := g.CY - total/2 + face.Metrics().Ascent
	for _, content := range g.Lines {
		line := canvas.NewTextLine(face, content, canvas.Center)
		d.ctx.DrawText(g.CX, baseline, line)
		baseline += lineH
	}
}

// hexagonPath builds a flat-top hexagon centered at (cx, cy) with the
// given circumradius.
func hexagonPath(cx, cy, r float64) *canvas.Path {
	p := &canvas.Path{}
	for i := range 6 {
		angle := math.Pi/6 + float64(i)*math.Pi/3
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}
