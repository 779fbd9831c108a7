package label

import (
	"context"
	"errors"
	"testing"
)

// fakeSource returns canned results per read, standing in for the
// back-office API.
type fakeSource struct {
	product      ProductCore
	productErr   error
	nutrition    *NutritionFacts
	nutritionErr error
	seals        []Seal
	sealsErr     error
}

func (f *fakeSource) Product(ctx context.Context, id string) (ProductCore, error) {
	return f.product, f.productErr
}

func (f *fakeSource) Nutrition(ctx context.Context, id string) (*NutritionFacts, error) {
	return f.nutrition, f.nutritionErr
}

func (f *fakeSource) Seals(ctx context.Context, id string) ([]Seal, error) {
	return f.seals, f.sealsErr
}

func f64(v float64) *float64 { return &v }

func completeSource() *fakeSource {
	return &fakeSource{
		product:   ProductCore{Name: "Miel Pura", SKU: "MIEL-01", BarcodeValue: "7791234567890"},
		nutrition: &NutritionFacts{EnergyKcal: f64(304)},
		seals:     []Seal{{Code: "high-sugar", Name: "ALTO EN AZÚCARES"}},
	}
}

func TestAssembleComplete(t *testing.T) {
	a := NewAssembler(completeSource(), nil)
	doc, err := a.Assemble(context.Background(), "4012")
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	if doc.ProductName != "Miel Pura" || doc.SKU != "MIEL-01" {
		t.Errorf("document core = %q/%q", doc.ProductName, doc.SKU)
	}
	if doc.Nutrition == nil || doc.Nutrition.EnergyKcal == nil || *doc.Nutrition.EnergyKcal != 304 {
		t.Error("nutrition not carried through")
	}
	if len(doc.Seals) != 1 || doc.Seals[0].Code != "high-sugar" {
		t.Errorf("seals = %v", doc.Seals)
	}
}

func TestAssembleProductFailureIsFatal(t *testing.T) {
	src := completeSource()
	src.productErr = errors.New("backend down")

	a := NewAssembler(src, nil)
	if _, err := a.Assemble(context.Background(), "4012"); err == nil {
		t.Fatal("product read failure must fail assembly")
	}
}

func TestAssembleNutritionFailureIsAbsence(t *testing.T) {
	src := completeSource()
	src.nutrition = nil
	src.nutritionErr = errors.New("404")

	a := NewAssembler(src, nil)
	doc, err := a.Assemble(context.Background(), "4012")
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	if doc.Nutrition != nil {
		t.Error("failed nutrition read should yield an absent record")
	}
}

func TestAssembleInvalidNutritionDiscarded(t *testing.T) {
	src := completeSource()
	src.nutrition = &NutritionFacts{EnergyKcal: f64(-10)}

	a := NewAssembler(src, nil)
	doc, err := a.Assemble(context.Background(), "4012")
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	if doc.Nutrition != nil {
		t.Error("invalid nutrition record should be discarded, not fail assembly")
	}
}

func TestAssembleSealsFailureIsEmpty(t *testing.T) {
	src := completeSource()
	src.seals = nil
	src.sealsErr = errors.New("timeout")

	a := NewAssembler(src, nil)
	doc, err := a.Assemble(context.Background(), "4012")
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	if len(doc.Seals) != 0 {
		t.Errorf("seals = %v, want none", doc.Seals)
	}
}

func TestAssembleEmptyProductID(t *testing.T) {
	a := NewAssembler(completeSource(), nil)
	if _, err := a.Assemble(context.Background(), ""); err == nil {
		t.Fatal("empty product id must fail")
	}
}

func TestAssembleIncompleteProduct(t *testing.T) {
	src := completeSource()
	src.product = ProductCore{Name: "", SKU: "X"}

	a := NewAssembler(src, nil)
	if _, err := a.Assemble(context.Background(), "4012"); err == nil {
		t.Fatal("product without a name must fail validation")
	}
}
