// Package sink serializes a drawn label canvas into concrete artifact
// formats. Every sink consumes the same layout, so a PDF, a PNG preview
// and a print document of one label always agree pixel for pixel.
package sink

import (
	"io"

	"github.com/labelpress/labelpress/pkg/layout"
)

// Sink writes one rendition of a layout.
type Sink interface {
	// Write renders the layout and writes the artifact to w.
	Write(w io.Writer, l *layout.Layout) error

	// Format returns the artifact format name, e.g. "pdf".
	Format() string

	// ContentType returns the MIME type of the produced artifact.
	ContentType() string
}

// ForFormat returns the sink for a format name.
func ForFormat(format string) (Sink, bool) {
	switch format {
	case "pdf":
		return PDF{}, true
	case "png":
		return PNG{}, true
	case "svg":
		return SVG{}, true
	case "html":
		return Print{}, true
	case "json":
		return JSON{}, true
	}
	return nil, false
}
