package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ekinveldet/cinema-booking/internal/domain"
	"github.com/google/uuid"
)

type MemoryBookingRepository struct {
	store *Store
}

func NewMemoryBookingRepository(store *Store) *MemoryBookingRepository {
	return &MemoryBookingRepository{store: store}
}

// Create claims the requested seats and only then records the booking. If
// the claim fails nothing is stored, so a partial booking is never visible.
func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bookings) >= s.limits.MaxBookings {
		return domain.ErrCapacityExceeded
	}

	if _, ok := s.users[booking.UserID]; !ok {
		return fmt.Errorf("%w: user %d", domain.ErrRecordNotFound, booking.UserID)
	}

	screening, ok := s.screenings[booking.ScreeningID]
	if !ok {
		return fmt.Errorf("%w: screening %d", domain.ErrRecordNotFound, booking.ScreeningID)
	}

	if len(booking.Seats) == 0 {
		return fmt.Errorf("%w: no seats requested", domain.ErrSeatConflict)
	}

	err := screening.Seats.Claim(booking.Seats)
	if err != nil {
		return err
	}

	s.nextBookingID++
	booking.ID = s.nextBookingID
	booking.Ref = uuid.New().String()
	booking.CreatedAt = time.Now()

	stored := *booking
	stored.Seats = append([]int(nil), booking.Seats...)
	s.bookings[booking.ID] = &stored
	s.bookingIDs = append(s.bookingIDs, booking.ID)

	return nil
}

func (r *MemoryBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return snapshotBooking(booking), nil
}

func (r *MemoryBookingRepository) GetByUserId(ctx context.Context, userID int) ([]*domain.Booking, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*domain.Booking, 0)

	for _, id := range s.bookingIDs {
		if s.bookings[id].UserID == userID {
			bookings = append(bookings, snapshotBooking(s.bookings[id]))
		}
	}

	return bookings, nil
}

func (r *MemoryBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*domain.Booking, 0, len(s.bookingIDs))

	for _, id := range s.bookingIDs {
		bookings = append(bookings, snapshotBooking(s.bookings[id]))
	}

	return bookings, nil
}

// Cancel releases the booking's seats and removes the ledger entry under
// the same lock, so neither half can be observed without the other.
func (r *MemoryBookingRepository) Cancel(ctx context.Context, bookingID, requestingUserID int) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	if booking.UserID != requestingUserID {
		return domain.ErrNotOwner
	}

	if screening, ok := s.screenings[booking.ScreeningID]; ok {
		screening.Seats.Release(booking.Seats)
	}

	delete(s.bookings, bookingID)
	s.bookingIDs = removeID(s.bookingIDs, bookingID)

	return nil
}

// Move re-points a booking at a new screening and seat set. The new seats
// are claimed first; only once that succeeds are the old seats released and
// the booking rewritten. A failed claim therefore leaves the booking, and
// both seat maps, exactly as they were.
func (r *MemoryBookingRepository) Move(ctx context.Context, bookingID, requestingUserID, newScreeningID int, newSeats []int) (*domain.Booking, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	if booking.UserID != requestingUserID {
		return nil, domain.ErrNotOwner
	}

	newScreening, ok := s.screenings[newScreeningID]
	if !ok {
		return nil, fmt.Errorf("%w: screening %d", domain.ErrRecordNotFound, newScreeningID)
	}

	if len(newSeats) == 0 {
		return nil, fmt.Errorf("%w: no seats requested", domain.ErrSeatConflict)
	}

	oldScreening := s.screenings[booking.ScreeningID]

	// Claim-before-release also applies when moving within one screening:
	// seats the booking already holds count as taken for the new claim.
	// Releasing first would open a window where a failed claim has already
	// given the seats away, so callers wanting to keep a seat on the same
	// screening include it only once and accept the conflict otherwise.
	err := newScreening.Seats.Claim(newSeats)
	if err != nil {
		return nil, err
	}

	oldScreening.Seats.Release(booking.Seats)

	booking.ScreeningID = newScreeningID
	booking.Seats = append([]int(nil), newSeats...)

	return snapshotBooking(booking), nil
}

func snapshotBooking(booking *domain.Booking) *domain.Booking {
	copied := *booking
	copied.Seats = append([]int(nil), booking.Seats...)

	return &copied
}
