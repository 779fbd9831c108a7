package label

import "testing"

func TestDocumentValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{"complete", Document{ProductName: "A", SKU: "S"}, false},
		{"missing name", Document{SKU: "S"}, true},
		{"missing sku", Document{ProductName: "A"}, true},
		{"blank name", Document{ProductName: "  ", SKU: "S"}, true},
		{"negative nutrition", Document{ProductName: "A", SKU: "S",
			Nutrition: &NutritionFacts{SodiumMg: f64(-1)}}, true},
		{"zero nutrition", Document{ProductName: "A", SKU: "S",
			Nutrition: &NutritionFacts{SodiumMg: f64(0)}}, false},
	}

	for _, tt := range tests {
		err := tt.doc.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestPortionDefault(t *testing.T) {
	var n *NutritionFacts
	if got := n.Portion(); got != DefaultReferencePortion {
		t.Errorf("nil Portion() = %q, want %q", got, DefaultReferencePortion)
	}
	if got := (&NutritionFacts{}).Portion(); got != DefaultReferencePortion {
		t.Errorf("empty Portion() = %q, want %q", got, DefaultReferencePortion)
	}
	if got := (&NutritionFacts{ReferencePortion: "30g"}).Portion(); got != "30g" {
		t.Errorf("Portion() = %q, want %q", got, "30g")
	}
}
