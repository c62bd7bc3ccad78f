package geo

import "strings"

// Estimator turns a free-text location into an estimated distance for
// towing quotes. Production swaps in a real geocoder behind this interface.
type Estimator interface {
	DistanceKm(location string) int
}

type zone struct {
	keywords []string
	km       int
}

// KeywordEstimator is a deterministic heuristic over landmark keywords,
// good enough for the demo deployment.
type KeywordEstimator struct {
	zones      []zone
	fallbackKm int
}

// NewKeywordEstimator returns the estimator with the built-in metro zones.
func NewKeywordEstimator() *KeywordEstimator {
	return &KeywordEstimator{
		zones: []zone{
			{keywords: []string{"bridge", "mainland", "lagos"}, km: 4},
			{keywords: []string{"airport", "ikeja"}, km: 6},
		},
		fallbackKm: 12,
	}
}

// DistanceKm matches the location against known zone keywords,
// case-insensitively, and falls back to the out-of-metro distance.
func (e *KeywordEstimator) DistanceKm(location string) int {
	l := strings.ToLower(location)
	for _, z := range e.zones {
		for _, kw := range z.keywords {
			if strings.Contains(l, kw) {
				return z.km
			}
		}
	}
	return e.fallbackKm
}
