package sink

import (
	"io"

	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/render"
)

// SVG writes the label as a standalone SVG document sized in millimeters.
type SVG struct{}

func (SVG) Format() string      { return "svg" }
func (SVG) ContentType() string { return "image/svg+xml" }

func (SVG) Write(w io.Writer, l *layout.Layout) error {
	c, err := render.Draw(l)
	if err != nil {
		return err
	}
	writer := svg.New(w, l.WidthMM, l.HeightMM, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write svg")
	}
	return nil
}
