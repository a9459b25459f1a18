// Package agrodata serves the dashboard's agronomic feeds. The current
// implementation synthesizes values pseudo-randomly; the Provider interface
// exists so a real data source can replace it without touching the HTTP
// contract.
package agrodata

// WeatherReport holds aligned per-day forecast series starting today.
type WeatherReport struct {
	Dates        []string  `json:"dates"`
	Temperatures []float64 `json:"temperatures"`
	Rainfall     []float64 `json:"rainfall"`
}

// YieldReport holds a per-day yield projection for one crop.
type YieldReport struct {
	CropType    string    `json:"cropType"`
	Dates       []string  `json:"dates"`
	YieldValues []float64 `json:"yieldValues"`
}

// SoilReport pairs nutrient names with measured levels, index-aligned.
type SoilReport struct {
	Nutrients []string  `json:"nutrients"`
	Levels    []float64 `json:"levels"`
}

// MarketPrice is one commodity quote.
type MarketPrice struct {
	CropName       string  `json:"cropName"`
	PricePerBushel float64 `json:"pricePerBushel"`
}

// MarketReport lists current commodity quotes.
type MarketReport struct {
	Prices []MarketPrice `json:"prices"`
}

// Provider supplies the four dashboard feeds. The crop parameter of
// SoilSample is accepted for future use and currently unused.
type Provider interface {
	WeatherSeries(days int) WeatherReport
	YieldSeries(crop string, days int) YieldReport
	SoilSample(crop string) SoilReport
	MarketPrices() MarketReport
}
