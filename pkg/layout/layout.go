// Package layout computes label layouts as drawing-instruction lists.
//
// Build turns a label document plus a media profile into a flat list of
// positioned primitives (text boxes, rects, lines, one optional barcode
// region, hexagonal seal glyphs), all in millimeters with the origin at the
// top-left corner of the page. The list is the single source of visual
// truth: every render target (PDF, PNG preview, SVG, print document)
// consumes the same instructions, so screen and paper cannot drift apart.
//
// Layout selection is by template strategy, not by continuous scaling: at
// small physical sizes whole sections are dropped rather than shrunk.
package layout

import (
	"encoding/json"

	"github.com/labelpress/labelpress/pkg/media"
)

// Template identifies which layout strategy produced a layout.
type Template string

const (
	// TemplateCompact renders title and barcode only.
	TemplateCompact Template = "compact"

	// TemplateVertical renders title, barcode and SKU stacked vertically.
	TemplateVertical Template = "vertical"

	// TemplateFull renders the complete label: title, barcode, seals panel,
	// nutrition panel and SKU.
	TemplateFull Template = "full"
)

// Role tags a text box with its semantic function so that render targets
// can style consistently and tests can assert on content classes.
type Role string

const (
	RoleTitle          Role = "title"
	RoleSKU            Role = "sku"
	RolePanelHeader    Role = "panel-header"
	RolePortionHeader  Role = "portion-header"
	RoleNutritionLabel Role = "nutrition-label"
	RoleNutritionValue Role = "nutrition-value"
	RoleNotice         Role = "notice"
)

// Align is the horizontal alignment of a text box within its width.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TextBox is a positioned text run. Y is the top edge of the first line;
// the renderer wraps content within Width when Wrap is set and stacks
// lines at LineHeightMM.
type TextBox struct {
	Role         Role    `json:"role"`
	Content      string  `json:"content"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	FontSizePt   float64 `json:"font_size_pt"`
	LineHeightMM float64 `json:"line_height_mm"`
	Align        Align   `json:"align,omitempty"`
	Bold         bool    `json:"bold,omitempty"`
	Wrap         bool    `json:"wrap,omitempty"`
}

// Rect is a stroked rectangle, used for panel borders. Dashed rects mark
// the "data unavailable" notice.
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	StrokeWidth float64 `json:"stroke_width"`
	Dashed      bool    `json:"dashed,omitempty"`
}

// Line is a stroked segment, used for the title underline and row separators.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
}

// BarcodeBox reserves the region where the EAN-13 bars are drawn. The
// renderer encodes Value into modules and fills the region; layout only
// fixes the geometry. A layout has at most one barcode box, and none at
// all when the document has no barcode value.
type BarcodeBox struct {
	Value         string  `json:"value"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	ModuleWidthMM float64 `json:"module_width_mm"`
	TextSizePt    float64 `json:"text_size_pt"`
}

// Glyph is one hexagonal warning-seal glyph. Lines hold the already-wrapped
// name, stacked at a fixed line height from a fixed baseline offset.
type Glyph struct {
	SealCode   string   `json:"seal_code"`
	CX         float64  `json:"cx"`
	CY         float64  `json:"cy"`
	RadiusMM   float64  `json:"radius_mm"`
	Lines      []string `json:"lines"`
	FontSizePt float64  `json:"font_size_pt"`
}

// Layout is the computed drawing-instruction list for one label at one
// media size. All coordinates are millimeters from the top-left corner.
type Layout struct {
	Template Template   `json:"template"`
	Size     media.Size `json:"size"`
	WidthMM  float64    `json:"width_mm"`
	HeightMM float64    `json:"height_mm"`

	Texts   []TextBox   `json:"texts,omitempty"`
	Rects   []Rect      `json:"rects,omitempty"`
	Lines   []Line      `json:"lines,omitempty"`
	Barcode *BarcodeBox `json:"barcode,omitempty"`
	Glyphs  []Glyph     `json:"glyphs,omitempty"`

	// Warnings are non-blocking conditions (e.g. missing barcode) that the
	// outer surface shows as a banner above the preview. They never stop a
	// render.
	Warnings []string `json:"warnings,omitempty"`
}

// Landscape reports the page orientation: landscape iff width > height.
func (l *Layout) Landscape() bool { return l.WidthMM > l.HeightMM }

// TextsByRole returns the text boxes carrying the given role, in layout order.
func (l *Layout) TextsByRole(role Role) []TextBox {
	var out []TextBox
	for _, t := range l.Texts {
		if t.Role == role {
			out = append(out, t)
		}
	}
	return out
}

// Marshal serializes a layout to JSON for caching and the JSON sink.
func Marshal(l *Layout) ([]byte, error) {
	return json.Marshal(l)
}

// Unmarshal deserializes a layout produced by [Marshal].
func Unmarshal(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
