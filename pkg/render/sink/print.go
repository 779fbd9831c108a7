package sink

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
)

// Print writes a minimal HTML document for direct browser printing. The
// page rule pins the sheet to the exact media size with zero margins and
// the label is embedded as inline SVG so nothing reflows or rescales
// between preview and paper.
type Print struct{}

func (Print) Format() string      { return "html" }
func (Print) ContentType() string { return "text/html; charset=utf-8" }

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: {{.Width}}mm {{.Height}}mm; margin: 0; }
html, body { margin: 0; padding: 0; }
.label {
  width: {{.Width}}mm;
  height: {{.Height}}mm;
  break-inside: avoid;
  page-break-inside: avoid;
  overflow: hidden;
}
.label svg { display: block; width: 100%; height: 100%; }
</style>
</head>
<body>
<div class="label">{{.SVG}}</div>
</body>
</html>
`))

func (Print) Write(w io.Writer, l *layout.Layout) error {
	var buf bytes.Buffer
	if err := (SVG{}).Write(&buf, l); err != nil {
		return err
	}
	data := struct {
		Title  string
		Width  string
		Height string
		SVG    template.HTML
	}{
		Title:  fmt.Sprintf("Label %s", l.Size),
		Width:  trimFloat(l.WidthMM),
		Height: trimFloat(l.HeightMM),
		SVG:    template.HTML(buf.String()),
	}
	if err := printTmpl.Execute(w, data); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write print document")
	}
	return nil
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
