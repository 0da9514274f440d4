package domain

import (
	"context"
	"time"
)

// Booking records which seats a user holds on a screening. The seat list is
// only ever rewritten through the ledger's create/cancel/move operations, so
// at every observable point it matches exactly what the screening's seat map
// has marked held for it.
type Booking struct {
	ID          int
	Ref         string // opaque reference shown to the user
	UserID      int
	ScreeningID int
	Seats       []int
	CreatedAt   time.Time
}

// BookingRepository is the reservation ledger. Every mutation is atomic:
// a failed call leaves the ledger and all seat maps untouched, and every
// mutation on an existing booking checks ownership first.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByUserId(ctx context.Context, userID int) ([]*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)

	// Cancel releases the booking's seats and removes it from the ledger
	// as one step.
	Cancel(ctx context.Context, bookingID, requestingUserID int) error

	// Move re-points a booking at a new screening and seat set. New seats
	// are claimed before the old ones are released, so a failed move never
	// loses the caller's existing reservation.
	Move(ctx context.Context, bookingID, requestingUserID, newScreeningID int, newSeats []int) (*Booking, error)
}
