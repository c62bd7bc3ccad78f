package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Station is a fuel station offered on the pickup menu.
type Station struct {
	Name     string
	Distance string
}

// FuelType binds a fuel product to its fixed price. PricePerLitre is the
// divisor for litre computation; Label is the exact menu line suffix.
type FuelType struct {
	Name          string
	PricePerLitre decimal.Decimal
	Label         string
}

// Product is an accessory or spare part with a fixed unit price.
type Product struct {
	Name      string
	UnitPrice decimal.Decimal
	Label     string
}

// Stations returns the fixed station list shown on the fuel menu.
func Stations() []Station {
	return []Station{
		{Name: "Mobil", Distance: "1.2km"},
		{Name: "Total", Distance: "2.5km"},
		{Name: "NNPC", Distance: "3km"},
	}
}

// FuelTypes returns the fixed fuel catalog with prices per litre.
func FuelTypes() []FuelType {
	return []FuelType{
		{Name: "Petrol", PricePerLitre: decimal.NewFromInt(250), Label: "Petrol (₦250/L)"},
		{Name: "Diesel", PricePerLitre: decimal.NewFromInt(300), Label: "Diesel (₦300/L)"},
		{Name: "Cooking gas", PricePerLitre: decimal.NewFromInt(1500), Label: "Cooking gas (₦1,500)"},
	}
}

// Accessories returns the fixed accessory/spare-part catalog.
func Accessories() []Product {
	return []Product{
		{Name: "Car mats", UnitPrice: decimal.NewFromInt(7000), Label: "Car mats - ₦7,000"},
		{Name: "Phone holder", UnitPrice: decimal.NewFromInt(3500), Label: "Phone holder - ₦3,500"},
	}
}

// StationAt resolves a 1-based menu token to a station.
func StationAt(token string) (Station, bool) {
	items := Stations()
	i, ok := index(token, len(items))
	if !ok {
		return Station{}, false
	}
	return items[i], true
}

// FuelTypeAt resolves a 1-based menu token to a fuel type.
func FuelTypeAt(token string) (FuelType, bool) {
	items := FuelTypes()
	i, ok := index(token, len(items))
	if !ok {
		return FuelType{}, false
	}
	return items[i], true
}

// AccessoryAt resolves a 1-based menu token to an accessory product.
func AccessoryAt(token string) (Product, bool) {
	items := Accessories()
	i, ok := index(token, len(items))
	if !ok {
		return Product{}, false
	}
	return items[i], true
}

func index(token string, n int) (int, bool) {
	i, err := strconv.Atoi(token)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// Towing tariff: flat base within the metro radius, a per-km surcharge
// beyond it.
const towingFreeKm = 10

var (
	towingBase  = decimal.NewFromInt(5000)
	towingPerKm = decimal.NewFromInt(500)
)

// TowingCost quotes an SOS tow for the estimated distance.
func TowingCost(distanceKm int) decimal.Decimal {
	if distanceKm <= towingFreeKm {
		return towingBase
	}
	extra := decimal.NewFromInt(int64(distanceKm - towingFreeKm)).Mul(towingPerKm)
	return towingBase.Add(extra)
}
