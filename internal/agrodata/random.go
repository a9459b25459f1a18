package agrodata

import (
	"math/rand/v2"
	"time"
)

// Fixed nutrient order expected by the dashboard's soil chart.
var soilNutrients = []string{"Nitrogen", "Phosphorus", "Potassium", "pH", "Organic Matter"}

type commodity struct {
	name string
	min  float64
	max  float64
}

// Price-per-bushel sampling ranges per commodity.
var commodities = []commodity{
	{name: "Wheat", min: 5, max: 15},
	{name: "Corn", min: 3, max: 11},
	{name: "Soybeans", min: 8, max: 23},
}

// RandomProvider generates bounded pseudo-random feed values. nowFunc is
// swappable for tests that pin the calendar.
type RandomProvider struct {
	nowFunc func() time.Time
}

func NewRandomProvider() *RandomProvider {
	return &RandomProvider{nowFunc: time.Now}
}

// dateSeq returns n consecutive calendar days starting today, formatted as
// YYYY-MM-DD in UTC.
func (p *RandomProvider) dateSeq(n int) []string {
	start := p.nowFunc().UTC()
	dates := make([]string, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}

func sampleRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func sampleSeries(n int, min, max float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = sampleRange(min, max)
	}
	return values
}

func (p *RandomProvider) WeatherSeries(days int) WeatherReport {
	return WeatherReport{
		Dates:        p.dateSeq(days),
		Temperatures: sampleSeries(days, 10, 40),
		Rainfall:     sampleSeries(days, 0, 50),
	}
}

func (p *RandomProvider) YieldSeries(crop string, days int) YieldReport {
	return YieldReport{
		CropType:    crop,
		Dates:       p.dateSeq(days),
		YieldValues: sampleSeries(days, 50, 150),
	}
}

// SoilSample ignores crop for now; levels line up with soilNutrients.
// pH is sampled in [0,14), organic matter in [0,10), the rest in [0,100).
func (p *RandomProvider) SoilSample(crop string) SoilReport {
	_ = crop
	return SoilReport{
		Nutrients: append([]string(nil), soilNutrients...),
		Levels: []float64{
			sampleRange(0, 100),
			sampleRange(0, 100),
			sampleRange(0, 100),
			sampleRange(0, 14),
			sampleRange(0, 10),
		},
	}
}

func (p *RandomProvider) MarketPrices() MarketReport {
	prices := make([]MarketPrice, 0, len(commodities))
	for _, c := range commodities {
		prices = append(prices, MarketPrice{
			CropName:       c.name,
			PricePerBushel: sampleRange(c.min, c.max),
		})
	}
	return MarketReport{Prices: prices}
}
