package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agriinsight/internal/agrodata"
)

// Caps the days-ahead window so a single request cannot ask for an
// arbitrarily large series.
const maxForecastDays = 60

// DashboardHandler serves the four protected data feeds. All routes assume
// AuthMiddleware has already admitted the request.
type DashboardHandler struct {
	provider agrodata.Provider
}

func NewDashboardHandler(provider agrodata.Provider) *DashboardHandler {
	return &DashboardHandler{provider: provider}
}

// parseDays validates the days query parameter as a positive integer within
// the forecast window. The second return value is false when the handler has
// already written a 400 response.
func parseDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return 0, false
	}
	if days > maxForecastDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be at most " + strconv.Itoa(maxForecastDays)})
		return 0, false
	}
	return days, true
}

// Weather handles GET /weather?days=N.
func (h *DashboardHandler) Weather(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.provider.WeatherSeries(days))
}

// Yield handles GET /yield?crop=C&days=N.
func (h *DashboardHandler) Yield(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.provider.YieldSeries(c.Query("crop"), days))
}

// Soil handles GET /soil?crop=C. The crop parameter is accepted but does not
// affect the sample yet.
func (h *DashboardHandler) Soil(c *gin.Context) {
	c.JSON(http.StatusOK, h.provider.SoilSample(c.Query("crop")))
}

// MarketPrices handles GET /market-prices.
func (h *DashboardHandler) MarketPrices(c *gin.Context) {
	c.JSON(http.StatusOK, h.provider.MarketPrices())
}
