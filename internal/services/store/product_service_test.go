package store

import (
	"errors"
	"testing"

	storeModels "github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

func TestParseOffersLocalizedPrices(t *testing.T) {
	offers, err := parseOffers([]storeModels.PriceOfferInput{
		{Label: "قطعة واحدة", Price: "12,500", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("parseOffers failed: %v", err)
	}

	if offers[0].Price != 12500 {
		t.Fatalf("expected price 12500 with separator stripped, got %v", offers[0].Price)
	}
}

func TestParseOffersSingleDefault(t *testing.T) {
	offers, err := parseOffers([]storeModels.PriceOfferInput{
		{Label: "قطعة واحدة", Price: "10000", Quantity: 1, IsDefault: true},
		{Label: "قطعتان", Price: "18000", Quantity: 2, IsDefault: true},
	})
	if err != nil {
		t.Fatalf("parseOffers failed: %v", err)
	}

	if !offers[0].IsDefault || offers[1].IsDefault {
		t.Fatalf("expected only the first flagged offer to stay default: %+v", offers)
	}
}

func TestParseOffersFirstBecomesDefault(t *testing.T) {
	offers, err := parseOffers([]storeModels.PriceOfferInput{
		{Label: "قطعة واحدة", Price: "10000", Quantity: 1},
		{Label: "قطعتان", Price: "18000", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("parseOffers failed: %v", err)
	}

	if !offers[0].IsDefault {
		t.Fatalf("expected the first offer to become default when none is flagged")
	}
}

func TestParseOffersRejectsBadPrice(t *testing.T) {
	_, err := parseOffers([]storeModels.PriceOfferInput{
		{Label: "عرض", Price: "free", Quantity: 1},
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error for an unparseable price, got %v", err)
	}
}

func TestParseOffersRejectsZeroQuantity(t *testing.T) {
	_, err := parseOffers([]storeModels.PriceOfferInput{
		{Label: "عرض", Price: "10000", Quantity: 0},
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error for quantity 0, got %v", err)
	}
}

func TestParseOffersEmpty(t *testing.T) {
	offers, err := parseOffers(nil)
	if err != nil {
		t.Fatalf("parseOffers(nil) failed: %v", err)
	}
	if offers != nil {
		t.Fatalf("expected nil offers for an empty form, got %+v", offers)
	}
}
