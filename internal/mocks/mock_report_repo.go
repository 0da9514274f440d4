package mocks

import (
	"context"

	"github.com/ekinveldet/cinema-booking/internal/domain"
	"github.com/shopspring/decimal"
)

type MockReportRepo struct {
	domain.ReportRepository
	BookingsByMovieFunc func(ctx context.Context) ([]domain.MovieBookingsReport, error)
	RevenueByMovieFunc  func(ctx context.Context) ([]domain.MovieRevenueReport, decimal.Decimal, error)
}

func (m *MockReportRepo) BookingsByMovie(ctx context.Context) ([]domain.MovieBookingsReport, error) {
	return m.BookingsByMovieFunc(ctx)
}

func (m *MockReportRepo) RevenueByMovie(ctx context.Context) ([]domain.MovieRevenueReport, decimal.Decimal, error) {
	return m.RevenueByMovieFunc(ctx)
}
