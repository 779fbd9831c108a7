// Package label defines the label document model and its assembler.
//
// A Document is the immutable input of one render pass: the product's
// descriptive fields, an optional fixed-shape nutrition-facts record and an
// ordered list of warning seals. Documents are assembled fresh from the back
// office every time a preview opens and discarded when it closes; nothing in
// this package caches across edits.
package label

import (
	"strings"

	"github.com/labelpress/labelpress/pkg/errors"
)

// DefaultReferencePortion is used when the back office does not specify a
// reference portion for the nutrition record.
const DefaultReferencePortion = "100g"

// Document is an assembled label, ready for layout. It is treated as
// read-only for the duration of a render pass.
type Document struct {
	// ProductName is required. Long names are truncated or wrapped by the
	// layout templates, never here.
	ProductName string `json:"product_name"`

	// SKU is required and becomes a filename fragment on export.
	SKU string `json:"sku"`

	// BarcodeValue is optional. When empty, no barcode is rendered anywhere
	// (no blank placeholder) and the document carries a warning instead.
	BarcodeValue string `json:"barcode_value,omitempty"`

	// Nutrition is optional. When nil, the full templates render a
	// "data unavailable" notice in place of the nutrition panel.
	Nutrition *NutritionFacts `json:"nutrition,omitempty"`

	// Seals render in slice order, not alphabetical or severity order.
	Seals []Seal `json:"seals,omitempty"`
}

// Validate checks the document invariants that assembly must guarantee.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.ProductName) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "label document requires a product name")
	}
	if strings.TrimSpace(d.SKU) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "label document requires a SKU")
	}
	if d.Nutrition != nil {
		if err := d.Nutrition.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Seal is one standardized warning seal assigned to a product. The catalog
// of seals lives in the back office; the document carries the resolved,
// ordered assignment for a single product.
type Seal struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// NutritionFacts is a flat record of independently optional numeric values,
// all expressed per ReferencePortion. A nil field means "not declared": the
// layout must keep that visually distinguishable from an explicit zero, so
// no field here is ever defaulted.
type NutritionFacts struct {
	ReferencePortion string `json:"reference_portion,omitempty"`

	EnergyKcal    *float64 `json:"energy_kcal,omitempty"`
	ProteinG      *float64 `json:"protein_g,omitempty"`
	CarbohydrateG *float64 `json:"carbohydrate_g,omitempty"`
	SugarsG       *float64 `json:"sugars_g,omitempty"`
	TotalFatG     *float64 `json:"total_fat_g,omitempty"`
	SaturatedFatG *float64 `json:"saturated_fat_g,omitempty"`
	TransFatG     *float64 `json:"trans_fat_g,omitempty"`
	FiberG        *float64 `json:"fiber_g,omitempty"`
	SodiumMg      *float64 `json:"sodium_mg,omitempty"`
	CholesterolMg *float64 `json:"cholesterol_mg,omitempty"`
	CalciumMg     *float64 `json:"calcium_mg,omitempty"`
	IronMg        *float64 `json:"iron_mg,omitempty"`
	VitaminAMcg   *float64 `json:"vitamin_a_mcg,omitempty"`
	VitaminCMg    *float64 `json:"vitamin_c_mg,omitempty"`
}

// Portion returns the reference portion, falling back to the default.
func (n *NutritionFacts) Portion() string {
	if n == nil || n.ReferencePortion == "" {
		return DefaultReferencePortion
	}
	return n.ReferencePortion
}

// Validate checks that every declared value is non-negative.
func (n *NutritionFacts) Validate() error {
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"energy_kcal", n.EnergyKcal},
		{"protein_g", n.ProteinG},
		{"carbohydrate_g", n.CarbohydrateG},
		{"sugars_g", n.SugarsG},
		{"total_fat_g", n.TotalFatG},
		{"saturated_fat_g", n.SaturatedFatG},
		{"trans_fat_g", n.TransFatG},
		{"fiber_g", n.FiberG},
		{"sodium_mg", n.SodiumMg},
		{"cholesterol_mg", n.CholesterolMg},
		{"calcium_mg", n.CalciumMg},
		{"iron_mg", n.IronMg},
		{"vitamin_a_mcg", n.VitaminAMcg},
		{"vitamin_c_mg", n.VitaminCMg},
	} {
		if f.value != nil && *f.value < 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"nutrition field %s must be non-negative, got %v", f.name, *f.value)
		}
	}
	return nil
}
