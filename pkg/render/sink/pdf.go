package sink

import (
	"io"

	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/render"
)

// PDF writes a single-page vector PDF whose page equals the physical
// media, landscape exactly when the media is wider than tall. Text and
// bars stay vectors, so the output prints sharp at any driver scaling.
type PDF struct{}

func (PDF) Format() string      { return "pdf" }
func (PDF) ContentType() string { return "application/pdf" }

func (PDF) Write(w io.Writer, l *layout.Layout) error {
	c, err := render.Draw(l)
	if err != nil {
		return err
	}
	writer := pdf.New(w, l.WidthMM, l.HeightMM, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write pdf")
	}
	return nil
}
