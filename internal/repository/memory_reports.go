package repository

import (
	"context"

	"github.com/ekinveldet/cinema-booking/internal/domain"
	"github.com/shopspring/decimal"
)

type MemoryReportRepository struct {
	store *Store
}

func NewMemoryReportRepository(store *Store) *MemoryReportRepository {
	return &MemoryReportRepository{store: store}
}

// BookingsByMovie reports the number of booked seats per movie, in catalog
// order. Movies without bookings appear with a zero count.
func (r *MemoryReportRepository) BookingsByMovie(ctx context.Context) ([]domain.MovieBookingsReport, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	seatsByMovie := s.bookedSeatsByMovieLocked()

	reports := make([]domain.MovieBookingsReport, 0, len(s.movieIDs))

	for _, id := range s.movieIDs {
		reports = append(reports, domain.MovieBookingsReport{
			MovieID:     id,
			MovieTitle:  s.movies[id].Title,
			BookedSeats: seatsByMovie[id],
		})
	}

	return reports, nil
}

// RevenueByMovie reports revenue per movie plus the grand total. Revenue is
// booked seats times the movie's per-seat cost.
func (r *MemoryReportRepository) RevenueByMovie(ctx context.Context) ([]domain.MovieRevenueReport, decimal.Decimal, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	seatsByMovie := s.bookedSeatsByMovieLocked()

	reports := make([]domain.MovieRevenueReport, 0, len(s.movieIDs))
	total := decimal.Zero

	for _, id := range s.movieIDs {
		movie := s.movies[id]
		revenue := movie.Cost.Mul(decimal.NewFromInt(int64(seatsByMovie[id])))

		reports = append(reports, domain.MovieRevenueReport{
			MovieID:    id,
			MovieTitle: movie.Title,
			Revenue:    revenue,
		})

		total = total.Add(revenue)
	}

	return reports, total, nil
}

func (s *Store) bookedSeatsByMovieLocked() map[int]int {
	seatsByMovie := make(map[int]int, len(s.movieIDs))

	for _, id := range s.bookingIDs {
		booking := s.bookings[id]

		screening, ok := s.screenings[booking.ScreeningID]
		if !ok {
			continue
		}

		seatsByMovie[screening.MovieID] += len(booking.Seats)
	}

	return seatsByMovie
}
