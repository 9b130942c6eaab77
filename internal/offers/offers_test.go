package offers

import (
	"testing"

	"github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestQuantityFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"قطعتان", 2},
		{"قطعتين بسعر مميز", 2},
		{"ثلاث قطع", 3},
		{"قطعة واحدة", 1},
		{"عرض 5 قطع", 5},
		{"عرض ٤ قطع", 4},
		{"دزينة كاملة", 12},
		{"عرض خاص", 0},
		{"", 0},
		// Earliest candidate wins: the leading digit, not the trailing "واحد".
		{"3 قطع بسعر واحد", 3},
		// And the leading number word, not the 2-digit price fragment.
		{"قطعتان بـ 15 الف", 2},
	}

	for _, tc := range cases {
		if got := QuantityFromLabel(tc.label); got != tc.want {
			t.Fatalf("QuantityFromLabel(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestQuantityFromLabelIgnoresPriceDigits(t *testing.T) {
	// A 4-digit run is a price leaking into the label, not a quantity.
	if got := QuantityFromLabel("عرض بـ 1500"); got != 0 {
		t.Fatalf("expected price-like digits to be ignored, got %d", got)
	}
}

func TestNormalizeLabelFallback(t *testing.T) {
	p := &store.Product{
		Price: 10000,
		PriceOffers: []store.PriceOffer{
			{Label: "قطعتان", Price: 15000, Quantity: 0},
		},
	}

	offers := Normalize(p)
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}
	if offers[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 from label, got %d", offers[0].Quantity)
	}
}

func TestNormalizeStructuredQuantityWins(t *testing.T) {
	p := &store.Product{
		Price: 10000,
		PriceOffers: []store.PriceOffer{
			{Label: "قطعتان", Price: 25000, Quantity: 3},
		},
	}

	if got := Normalize(p)[0].Quantity; got != 3 {
		t.Fatalf("expected structured quantity 3 to win over label, got %d", got)
	}
}

func TestNormalizeQuantityFloor(t *testing.T) {
	p := &store.Product{
		Price: 10000,
		PriceOffers: []store.PriceOffer{
			{Label: "عرض خاص", Price: 9000, Quantity: 0},
		},
	}

	if got := Normalize(p)[0].Quantity; got != 1 {
		t.Fatalf("expected quantity floor of 1, got %d", got)
	}
}

func TestNormalizeSingleDefault(t *testing.T) {
	p := &store.Product{
		Price: 10000,
		PriceOffers: []store.PriceOffer{
			{ID: "a", Label: "قطعة واحدة", Price: 10000, Quantity: 1},
			{ID: "b", Label: "قطعتان", Price: 18000, Quantity: 2, IsDefault: true},
			{ID: "c", Label: "ثلاث قطع", Price: 25000, Quantity: 3, IsDefault: true},
		},
	}

	offers := Normalize(p)
	defaults := 0
	for _, o := range offers {
		if o.IsDefault {
			defaults++
			if o.ID != "b" {
				t.Fatalf("expected first flagged offer to stay default, got %s", o.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default offer, got %d", defaults)
	}
}

func TestNormalizeFirstDefaultWhenNoneFlagged(t *testing.T) {
	p := &store.Product{
		Price: 10000,
		PriceOffers: []store.PriceOffer{
			{ID: "a", Label: "قطعة واحدة", Price: 10000, Quantity: 1},
			{ID: "b", Label: "قطعتان", Price: 18000, Quantity: 2},
		},
	}

	offers := Normalize(p)
	if !offers[0].IsDefault || offers[1].IsDefault {
		t.Fatalf("expected the first offer to become default")
	}
}

func TestNormalizeLegacyTiers(t *testing.T) {
	p := &store.Product{
		Price:           10000,
		TwoPiecePrice:   floatPtr(18000),
		ThreePiecePrice: floatPtr(25000),
		BulkPrice:       floatPtr(40000),
		BulkMinQuantity: intPtr(5),
	}

	offers := Normalize(p)
	if len(offers) != 4 {
		t.Fatalf("expected 4 legacy offers, got %d", len(offers))
	}

	wantQty := []int{1, 2, 3, 5}
	for i, q := range wantQty {
		if offers[i].Quantity != q {
			t.Fatalf("offer %d: expected quantity %d, got %d", i, q, offers[i].Quantity)
		}
	}

	// Two pieces at 18000 vs 2x10000 saves 2000.
	if offers[1].Savings != 2000 {
		t.Fatalf("expected savings 2000, got %v", offers[1].Savings)
	}
	if !offers[0].IsDefault {
		t.Fatalf("expected the single-piece offer to be default")
	}
}

func TestByID(t *testing.T) {
	p := &store.Product{
		Price: 10000,
		PriceOffers: []store.PriceOffer{
			{ID: "a", Label: "قطعة واحدة", Price: 10000, Quantity: 1},
		},
	}

	offers := Normalize(p)
	if _, ok := ByID(offers, "a"); !ok {
		t.Fatalf("expected to find offer a")
	}
	if _, ok := ByID(offers, "missing"); ok {
		t.Fatalf("did not expect to find a missing offer")
	}
}
