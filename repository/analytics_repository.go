package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/analytics"
	"app/config"
	"app/models"
	"app/utils"
)

// PostgresAnalytics implements analytics.Repository against the raw sales,
// weather and event tables populated by the ETL jobs.
type PostgresAnalytics struct {
	db *pgxpool.Pool
}

func NewPostgresAnalytics(db *pgxpool.Pool) *PostgresAnalytics {
	return &PostgresAnalytics{db: db}
}

// FetchSales returns the raw sales rows for the date range, with the optional
// equality filters applied server-side.
func (r *PostgresAnalytics) FetchSales(ctx context.Context, start, end time.Time, filters models.AnalysisFilters) ([]models.SalesRow, error) {
	query := `
		SELECT sale_date, store_id, department, product_category,
		       revenue_ex_tax, footfall, transactions, discounts, tax
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}

	if filters.StoreID != "" {
		args = append(args, filters.StoreID)
		query += fmt.Sprintf(" AND store_id = $%d", len(args))
	}
	if filters.Department != "" {
		args = append(args, filters.Department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if filters.Category != "" {
		args = append(args, filters.Category)
		query += fmt.Sprintf(" AND product_category = $%d", len(args))
	}

	query += " ORDER BY sale_date"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &analytics.DataAccessError{Op: "fetchSales", Err: err}
	}
	defer rows.Close()

	sales := make([]models.SalesRow, 0)
	for rows.Next() {
		var row models.SalesRow
		if err := rows.Scan(
			&row.Date, &row.StoreID, &row.Department, &row.ProductCategory,
			&row.RevenueExTax, &row.Footfall, &row.Transactions, &row.Discounts, &row.Tax,
		); err != nil {
			return nil, &analytics.DataAccessError{Op: "fetchSales", Err: err}
		}
		sales = append(sales, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &analytics.DataAccessError{Op: "fetchSales", Err: err}
	}
	return sales, nil
}

// FetchWeather returns the daily weather observations for the date range.
// The store enforces at most one row per date.
func (r *PostgresAnalytics) FetchWeather(ctx context.Context, start, end time.Time) ([]models.WeatherRow, error) {
	query := `
		SELECT weather_date, location, temp_avg, temp_max, temp_min,
		       humidity, precipitation, condition
		FROM weather_daily
		WHERE weather_date BETWEEN $1 AND $2
		ORDER BY weather_date
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, &analytics.DataAccessError{Op: "fetchWeather", Err: err}
	}
	defer rows.Close()

	weather := make([]models.WeatherRow, 0)
	for rows.Next() {
		var row models.WeatherRow
		var condition sql.NullString
		if err := rows.Scan(
			&row.Date, &row.Location, &row.TempAvg, &row.TempMax, &row.TempMin,
			&row.Humidity, &row.Precipitation, &condition,
		); err != nil {
			return nil, &analytics.DataAccessError{Op: "fetchWeather", Err: err}
		}
		row.Condition = utils.NullStringToStringPtr(condition)
		weather = append(weather, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &analytics.DataAccessError{Op: "fetchWeather", Err: err}
	}
	return weather, nil
}

// FetchEvents returns local events within the configured radius for the date
// range. Radius filtering happens here so the aggregator only sees events
// that count as nearby.
func (r *PostgresAnalytics) FetchEvents(ctx context.Context, start, end time.Time) ([]models.EventRow, error) {
	query := `
		SELECT event_date, title, category, location, distance_km
		FROM local_events
		WHERE event_date BETWEEN $1 AND $2 AND distance_km <= $3
		ORDER BY event_date
	`
	rows, err := r.db.Query(ctx, query, start, end, config.AppConfig.EventRadiusKM)
	if err != nil {
		return nil, &analytics.DataAccessError{Op: "fetchEvents", Err: err}
	}
	defer rows.Close()

	events := make([]models.EventRow, 0)
	for rows.Next() {
		var row models.EventRow
		if err := rows.Scan(&row.Date, &row.Title, &row.Category, &row.Location, &row.DistanceKM); err != nil {
			return nil, &analytics.DataAccessError{Op: "fetchEvents", Err: err}
		}
		events = append(events, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &analytics.DataAccessError{Op: "fetchEvents", Err: err}
	}
	return events, nil
}
