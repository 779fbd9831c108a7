package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/labelpress/labelpress/pkg/cache"
	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/media"
)

// stubSource serves one fixed product so runner tests need no network.
type stubSource struct {
	core    label.ProductCore
	coreErr error
	calls   int
}

func (s *stubSource) Product(ctx context.Context, productID string) (label.ProductCore, error) {
	s.calls++
	return s.core, s.coreErr
}

func (s *stubSource) Nutrition(ctx context.Context, productID string) (*label.NutritionFacts, error) {
	kcal := 450.0
	return &label.NutritionFacts{EnergyKcal: &kcal}, nil
}

func (s *stubSource) Seals(ctx context.Context, productID string) ([]label.Seal, error) {
	return []label.Seal{{Name: "ALTO EN SODIO"}}, nil
}

func newStubSource() *stubSource {
	return &stubSource{
		core: label.ProductCore{
			Name:         "Galletas de Avena Integral",
			SKU:          "GAL-4012",
			BarcodeValue: "7791234567890",
		},
	}
}

// jsonOptions keeps tests on the JSON sink, which does not touch fonts.
func jsonOptions(source label.Source) Options {
	return Options{
		ProductID: "4012",
		Source:    source,
		Formats:   []string{FormatJSON},
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), jsonOptions(newStubSource()))
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	if result.Document == nil || result.Document.SKU != "GAL-4012" {
		t.Errorf("Document = %+v, want SKU GAL-4012", result.Document)
	}
	if result.DocumentHash == "" {
		t.Error("DocumentHash should be set")
	}
	if result.Layout == nil || result.Layout.Size != media.DefaultSize {
		t.Errorf("Layout should use the default size, got %+v", result.Layout)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}

	data, ok := result.Artifacts[FormatJSON]
	if !ok {
		t.Fatalf("Artifacts missing %q, got %v", FormatJSON, result.Artifacts)
	}
	roundTrip, err := layout.Unmarshal(data)
	if err != nil {
		t.Fatalf("JSON artifact does not decode: %v", err)
	}
	if roundTrip.Size != result.Layout.Size {
		t.Errorf("decoded size = %q, want %q", roundTrip.Size, result.Layout.Size)
	}
}

func TestExecutePropagatesWarnings(t *testing.T) {
	source := newStubSource()
	source.core.BarcodeValue = ""

	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), jsonOptions(source))
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	if len(result.Warnings) != 1 || result.Warnings[0] != layout.WarnMissingBarcode {
		t.Errorf("Warnings = %v, want [%q]", result.Warnings, layout.WarnMissingBarcode)
	}
	if result.Layout.Barcode != nil {
		t.Error("layout should omit the barcode entirely")
	}
}

func TestExecuteCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error = %v", err)
	}
	source := newStubSource()
	r := NewRunner(fc, nil, nil)

	first, err := r.Execute(context.Background(), jsonOptions(source))
	if err != nil {
		t.Fatalf("first Execute error = %v", err)
	}
	if first.CacheInfo.AssembleHit || first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss everywhere, got %+v", first.CacheInfo)
	}

	second, err := r.Execute(context.Background(), jsonOptions(source))
	if err != nil {
		t.Fatalf("second Execute error = %v", err)
	}
	if !second.CacheInfo.AssembleHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit everywhere, got %+v", second.CacheInfo)
	}
	if source.calls != 1 {
		t.Errorf("source called %d times, want 1", source.calls)
	}

	// Refresh bypasses the document cache.
	opts := jsonOptions(source)
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute error = %v", err)
	}
	if third.CacheInfo.AssembleHit {
		t.Error("refresh run should bypass the document cache")
	}
	if source.calls != 2 {
		t.Errorf("source called %d times after refresh, want 2", source.calls)
	}
}

func TestExecuteProductFailure(t *testing.T) {
	source := newStubSource()
	source.coreErr = context.DeadlineExceeded

	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), jsonOptions(source)); err == nil {
		t.Error("Execute should fail when the product read fails")
	}
}

func TestRenderHonorsCancellation(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	doc, err := r.Assemble(context.Background(), jsonOptions(newStubSource()))
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	l, err := r.ComputeLayout(context.Background(), doc, jsonOptions(newStubSource()))
	if err != nil {
		t.Fatalf("ComputeLayout error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, l, jsonOptions(newStubSource())); err != context.Canceled {
		t.Errorf("Render error = %v, want context.Canceled", err)
	}
}

func TestLayoutCacheKeyedOnDocument(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error = %v", err)
	}
	r := NewRunner(fc, nil, nil)
	opts := jsonOptions(newStubSource())
	opts.Size = media.SizeCompact

	doc, err := r.Assemble(context.Background(), opts)
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	if _, hit, err := r.ComputeLayoutWithCacheInfo(context.Background(), doc, opts); err != nil || hit {
		t.Fatalf("first layout: hit=%v err=%v, want miss", hit, err)
	}
	if _, hit, err := r.ComputeLayoutWithCacheInfo(context.Background(), doc, opts); err != nil || !hit {
		t.Fatalf("second layout: hit=%v err=%v, want hit", hit, err)
	}

	// A changed document must not reuse the cached layout.
	changed := *doc
	changed.ProductName = "Galletas de Arroz"
	if _, hit, err := r.ComputeLayoutWithCacheInfo(context.Background(), &changed, opts); err != nil || hit {
		t.Fatalf("changed document: hit=%v err=%v, want miss", hit, err)
	}
}

func TestDocumentHashStable(t *testing.T) {
	doc := &label.Document{ProductName: "X", SKU: "Y"}
	a, _ := json.Marshal(doc)
	b, _ := json.Marshal(doc)
	if cache.Hash(a) != cache.Hash(b) {
		t.Error("document hash should be stable across marshals")
	}
}
