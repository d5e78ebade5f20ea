package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Raw Source Rows ---
// These mirror the tables populated by the nightly ETL jobs. The analytics
// engine only ever reads them.

// SalesRow is one store/department sales record for a single day.
type SalesRow struct {
	Date            time.Time `json:"date"`
	StoreID         string    `json:"store_id"`
	Department      string    `json:"department"`
	ProductCategory string    `json:"product_category"`
	RevenueExTax    float64   `json:"revenue_ex_tax"`
	Footfall        int       `json:"footfall"`
	Transactions    int       `json:"transactions"`
	Discounts       float64   `json:"discounts"`
	Tax             float64   `json:"tax"`
}

// WeatherRow is the daily weather observation for the store region.
// At most one row exists per date (enforced by the store).
type WeatherRow struct {
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	TempAvg       float64   `json:"temp_avg"`
	TempMax       float64   `json:"temp_max"`
	TempMin       float64   `json:"temp_min"`
	Humidity      float64   `json:"humidity"`
	Precipitation float64   `json:"precipitation"`
	Condition     *string   `json:"condition,omitempty"`
}

// EventRow is a local event that may draw foot traffic near a store.
type EventRow struct {
	Date       time.Time `json:"date"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	DistanceKM float64   `json:"distance_km"`
}
