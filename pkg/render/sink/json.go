package sink

import (
	"io"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
)

// JSON writes the layout itself as an inspectable artifact. Useful for
// debugging template output and for diffing layouts across versions.
type JSON struct{}

func (JSON) Format() string      { return "json" }
func (JSON) ContentType() string { return "application/json" }

func (JSON) Write(w io.Writer, l *layout.Layout) error {
	data, err := layout.Marshal(l)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "marshal layout")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write layout json")
	}
	return nil
}
