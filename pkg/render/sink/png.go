package sink

import (
	"image/png"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/render"
)

// previewDPMM rasters previews at 8 dots per millimeter (roughly 200 dpi),
// enough to judge placement on screen without ballooning response sizes.
const previewDPMM = 8.0

// PNG writes a raster preview of the label. Previews are for on-screen
// inspection only; export paths use the vector sinks.
type PNG struct{}

func (PNG) Format() string      { return "png" }
func (PNG) ContentType() string { return "image/png" }

func (PNG) Write(w io.Writer, l *layout.Layout) error {
	c, err := render.Draw(l)
	if err != nil {
		return err
	}
	img := rasterizer.Draw(c, canvas.DPMM(previewDPMM), canvas.DefaultColorSpace)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "encode png")
	}
	return nil
}
