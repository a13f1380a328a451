package service

import (
	"strings"

	"barbellfx-relay/internal/model"
)

const (
	// GoldScaleThreshold is the price below which a gold quote is taken to
	// be in the wrong unit.
	GoldScaleThreshold = 100.0
	// GoldScaleMultiplier converts a mis-scaled gold quote back to USD/oz.
	GoldScaleMultiplier = 1000.0
)

var goldTokens = []string{"XAU", "GOLD"}

// IsGoldPair reports whether pair names a gold instrument.
func IsGoldPair(pair string) bool {
	upper := strings.ToUpper(pair)
	for _, token := range goldTokens {
		if strings.Contains(upper, token) {
			return true
		}
	}
	return false
}

// NormalizePrices fixes gold quotes that some producers emit 1000x too
// small. If any strictly positive price of a gold pair is below
// GoldScaleThreshold, every price is multiplied by GoldScaleMultiplier.
// The rule is a heuristic, not a unit conversion: all prices are assumed
// to come from the same mis-scaled source. The returned bool reports
// whether the prices were rescaled.
func NormalizePrices(signal model.Signal) (model.Signal, bool) {
	if !IsGoldPair(signal.Pair) {
		return signal, false
	}

	prices := signal.Prices()
	needsScaling := false
	for _, p := range prices {
		if p > 0 && p < GoldScaleThreshold {
			needsScaling = true
			break
		}
	}
	if !needsScaling {
		return signal, false
	}

	for i := range prices {
		prices[i] *= GoldScaleMultiplier
	}
	return signal.WithPrices(prices), true
}
