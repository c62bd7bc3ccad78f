package geo_test

import (
	"testing"

	"github.com/harmony2k/balancee-ussd/internal/service/geo"
)

func TestDistanceKm(t *testing.T) {
	e := geo.NewKeywordEstimator()

	cases := map[string]int{
		"Third Mainland Bridge": 4,
		"lagos island":          4,
		"Near IKEJA mall":       6,
		"murtala airport rd":    6,
		"epe":                   12,
		"":                      12,
	}
	for location, want := range cases {
		if got := e.DistanceKm(location); got != want {
			t.Fatalf("DistanceKm(%q) = %d, want %d", location, got, want)
		}
	}
}
