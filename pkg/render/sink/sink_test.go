package sink

import (
	"bytes"
	"testing"

	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/media"
)

func TestForFormat(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
	}{
		{"pdf", "application/pdf"},
		{"png", "image/png"},
		{"svg", "image/svg+xml"},
		{"html", "text/html; charset=utf-8"},
		{"json", "application/json"},
	}

	for _, tt := range tests {
		s, ok := ForFormat(tt.format)
		if !ok {
			t.Errorf("ForFormat(%q) not found", tt.format)
			continue
		}
		if s.Format() != tt.format {
			t.Errorf("Format() = %q, want %q", s.Format(), tt.format)
		}
		if s.ContentType() != tt.contentType {
			t.Errorf("ContentType() = %q, want %q", s.ContentType(), tt.contentType)
		}
	}

	if _, ok := ForFormat("docx"); ok {
		t.Error("unknown format should not resolve")
	}
}

func TestJSONSinkRoundTrip(t *testing.T) {
	doc := &label.Document{
		ProductName:  "Galletas de Avena Integral",
		SKU:          "GAL-4012",
		BarcodeValue: "7791234567890",
	}
	l, err := layout.Build(doc, media.SizeFullLarge)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	var buf bytes.Buffer
	if err := (JSON{}).Write(&buf, l); err != nil {
		t.Fatalf("Write error = %v", err)
	}

	got, err := layout.Unmarshal(buf.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if got.Size != l.Size || got.WidthMM != l.WidthMM || len(got.Texts) != len(l.Texts) {
		t.Errorf("round trip diverged: got %+v", got)
	}
}
