package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekinveldet/cinema-booking/internal/domain"
)

func TestBookingsByMovieCountsSeatsInCatalogOrder(t *testing.T) {
	catalog, bookings, users, reports := newTestRepos(t, Config{})
	ctx := context.Background()

	first := createMovie(t, catalog, "First", 12.50)
	second := createMovie(t, catalog, "Second", 8)
	third := createMovie(t, catalog, "Third", 15)

	firstScreening := createScreening(t, catalog, first.ID)
	secondScreeningA := createScreening(t, catalog, second.ID)
	secondScreeningB := createScreening(t, catalog, second.ID)

	user := createUser(t, users, "user@example.com")

	require.NoError(t, bookings.Create(ctx, &domain.Booking{UserID: user.ID, ScreeningID: firstScreening.ID, Seats: []int{1, 2, 3}}))
	require.NoError(t, bookings.Create(ctx, &domain.Booking{UserID: user.ID, ScreeningID: secondScreeningA.ID, Seats: []int{1}}))
	require.NoError(t, bookings.Create(ctx, &domain.Booking{UserID: user.ID, ScreeningID: secondScreeningB.ID, Seats: []int{4, 5}}))

	got, err := reports.BookingsByMovie(ctx)
	require.NoError(t, err)

	want := []domain.MovieBookingsReport{
		{MovieID: first.ID, MovieTitle: "First", BookedSeats: 3},
		{MovieID: second.ID, MovieTitle: "Second", BookedSeats: 3},
		{MovieID: third.ID, MovieTitle: "Third", BookedSeats: 0},
	}
	assert.Equal(t, want, got)
}

func TestRevenueByMovieUsesPerSeatCost(t *testing.T) {
	catalog, bookings, users, reports := newTestRepos(t, Config{})
	ctx := context.Background()

	first := createMovie(t, catalog, "First", 12.50)
	second := createMovie(t, catalog, "Second", 8)

	firstScreening := createScreening(t, catalog, first.ID)
	secondScreening := createScreening(t, catalog, second.ID)

	user := createUser(t, users, "user@example.com")

	require.NoError(t, bookings.Create(ctx, &domain.Booking{UserID: user.ID, ScreeningID: firstScreening.ID, Seats: []int{1, 2, 3}}))
	require.NoError(t, bookings.Create(ctx, &domain.Booking{UserID: user.ID, ScreeningID: secondScreening.ID, Seats: []int{1, 2}}))

	got, total, err := reports.RevenueByMovie(ctx)
	require.NoError(t, err)

	require.Len(t, got, 2)

	assert.Equal(t, first.ID, got[0].MovieID)
	assert.True(t, got[0].Revenue.Equal(decimal.RequireFromString("37.50")), "got %s", got[0].Revenue)

	assert.Equal(t, second.ID, got[1].MovieID)
	assert.True(t, got[1].Revenue.Equal(decimal.RequireFromString("16")), "got %s", got[1].Revenue)

	assert.True(t, total.Equal(decimal.RequireFromString("53.50")), "got total %s", total)
}

func TestReportsReflectCancellations(t *testing.T) {
	catalog, bookings, users, reports := newTestRepos(t, Config{})
	ctx := context.Background()

	movie := createMovie(t, catalog, "Movie", 10)
	screening := createScreening(t, catalog, movie.ID)
	user := createUser(t, users, "user@example.com")

	booking := &domain.Booking{UserID: user.ID, ScreeningID: screening.ID, Seats: []int{1, 2}}
	require.NoError(t, bookings.Create(ctx, booking))
	require.NoError(t, bookings.Cancel(ctx, booking.ID, user.ID))

	got, err := reports.BookingsByMovie(ctx)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Zero(t, got[0].BookedSeats)

	_, total, err := reports.RevenueByMovie(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "got total %s", total)
}
