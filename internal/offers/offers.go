// Package offers unifies the two pricing shapes a product can carry, the
// price_offers array and the legacy discrete tier columns, into one
// normalized offer list for landing pages and order validation.
package offers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hanootc/yasir-platform-sub002/internal/models/store"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

// Arabic number words seen in offer labels. Keys are substrings, matched
// longest-first so "قطعتان" wins over "قطعة".
var numberWords = []struct {
	word string
	qty  int
}{
	{"قطعتان", 2},
	{"قطعتين", 2},
	{"اثنان", 2},
	{"اثنين", 2},
	{"ثلاثة", 3},
	{"ثلاث", 3},
	{"أربعة", 4},
	{"اربعة", 4},
	{"أربع", 4},
	{"اربع", 4},
	{"خمسة", 5},
	{"خمس", 5},
	{"ستة", 6},
	{"سبعة", 7},
	{"سبع", 7},
	{"ثمانية", 8},
	{"ثماني", 8},
	{"تسعة", 9},
	{"تسع", 9},
	{"عشرة", 10},
	{"عشر", 10},
	{"دزينة", 12},
	{"واحدة", 1},
	{"واحد", 1},
	{"قطعة", 1},
}

// Only standalone 1-2 digit runs count as quantities; anything longer is a
// price leaking into the label.
var digitRun = regexp.MustCompile(`(?:^|[^0-9])([0-9]{1,2})(?:[^0-9]|$)`)

// QuantityFromLabel extracts a purchase quantity from free-text offer label.
// Whichever candidate appears first in the label wins, so a leading digit in
// "3 قطع بسعر واحد" beats the trailing "واحد". Returns 0 when nothing
// matches; callers decide the fallback. Best-effort legacy compat, kept only
// for rows whose structured quantity was never filled.
func QuantityFromLabel(label string) int {
	folded := utils.FoldArabicDigits(label)

	wordIdx, wordQty := -1, 0
	for _, nw := range numberWords {
		idx := strings.Index(folded, nw.word)
		if idx < 0 {
			continue
		}
		if wordIdx == -1 || idx < wordIdx {
			wordIdx, wordQty = idx, nw.qty
		}
	}

	digitIdx, digitQty := -1, 0
	if loc := digitRun.FindStringSubmatchIndex(folded); loc != nil {
		if n, err := strconv.Atoi(folded[loc[2]:loc[3]]); err == nil && n >= 1 {
			digitIdx, digitQty = loc[2], n
		}
	}

	switch {
	case wordIdx < 0:
		return digitQty
	case digitIdx < 0:
		return wordQty
	case digitIdx < wordIdx:
		return digitQty
	default:
		return wordQty
	}
}

// Normalize resolves a product's offers. Structured quantity wins when set;
// otherwise the label is parsed; otherwise quantity is 1. Exactly one offer
// ends up marked default: the first one flagged, or the first overall.
func Normalize(p *store.Product) []store.Offer {
	var result []store.Offer

	if len(p.PriceOffers) > 0 {
		for i, po := range p.PriceOffers {
			qty := po.Quantity
			if qty < 1 {
				qty = QuantityFromLabel(po.Label)
			}
			if qty < 1 {
				qty = 1
			}

			id := po.ID
			if id == "" {
				id = fmt.Sprintf("offer-%d", i+1)
			}

			result = append(result, store.Offer{
				ID:        id,
				Label:     po.Label,
				Price:     po.Price,
				Quantity:  qty,
				Savings:   savings(p.Price, qty, po.Price),
				IsDefault: po.IsDefault,
			})
		}
	} else {
		result = legacyOffers(p)
	}

	markDefault(result)
	return result
}

// legacyOffers builds the offer list from the discrete tier columns.
func legacyOffers(p *store.Product) []store.Offer {
	result := []store.Offer{{
		ID:       "single",
		Label:    "قطعة واحدة",
		Price:    p.Price,
		Quantity: 1,
	}}

	if p.TwoPiecePrice != nil && *p.TwoPiecePrice > 0 {
		result = append(result, store.Offer{
			ID:       "two",
			Label:    "قطعتان",
			Price:    *p.TwoPiecePrice,
			Quantity: 2,
			Savings:  savings(p.Price, 2, *p.TwoPiecePrice),
		})
	}

	if p.ThreePiecePrice != nil && *p.ThreePiecePrice > 0 {
		result = append(result, store.Offer{
			ID:       "three",
			Label:    "ثلاث قطع",
			Price:    *p.ThreePiecePrice,
			Quantity: 3,
			Savings:  savings(p.Price, 3, *p.ThreePiecePrice),
		})
	}

	if p.BulkPrice != nil && *p.BulkPrice > 0 {
		qty := 4
		if p.BulkMinQuantity != nil && *p.BulkMinQuantity > 0 {
			qty = *p.BulkMinQuantity
		}
		result = append(result, store.Offer{
			ID:       "bulk",
			Label:    fmt.Sprintf("%d قطع", qty),
			Price:    *p.BulkPrice,
			Quantity: qty,
			Savings:  savings(p.Price, qty, *p.BulkPrice),
		})
	}

	return result
}

// Default returns the offer marked default. Normalize guarantees one exists
// for non-empty lists.
func Default(offers []store.Offer) (store.Offer, bool) {
	for _, o := range offers {
		if o.IsDefault {
			return o, true
		}
	}
	if len(offers) > 0 {
		return offers[0], true
	}
	return store.Offer{}, false
}

// ByID looks an offer up by its id.
func ByID(offers []store.Offer, id string) (store.Offer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return store.Offer{}, false
}

func markDefault(offers []store.Offer) {
	defaultIdx := -1
	for i := range offers {
		if offers[i].IsDefault {
			defaultIdx = i
			break
		}
	}
	if defaultIdx == -1 && len(offers) > 0 {
		defaultIdx = 0
	}
	for i := range offers {
		offers[i].IsDefault = i == defaultIdx
	}
}

func savings(unitPrice float64, qty int, offerPrice float64) float64 {
	s := unitPrice*float64(qty) - offerPrice
	if s <= 0 {
		return 0
	}
	return s
}
