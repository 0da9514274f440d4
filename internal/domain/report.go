package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type MovieBookingsReport struct {
	MovieID     int
	MovieTitle  string
	BookedSeats int
}

type MovieRevenueReport struct {
	MovieID    int
	MovieTitle string
	Revenue    decimal.Decimal
}

// ReportRepository aggregates the ledger per movie. Revenue is the sum over
// bookings on the movie's screenings of seat count times the movie's cost.
type ReportRepository interface {
	BookingsByMovie(ctx context.Context) ([]MovieBookingsReport, error)
	RevenueByMovie(ctx context.Context) ([]MovieRevenueReport, decimal.Decimal, error)
}
