package mocks

import (
	"context"

	"github.com/ekinveldet/cinema-booking/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc      func(ctx context.Context, booking *domain.Booking) error
	GetByIdFunc     func(ctx context.Context, id int) (*domain.Booking, error)
	GetByUserIdFunc func(ctx context.Context, userID int) ([]*domain.Booking, error)
	GetAllFunc      func(ctx context.Context) ([]*domain.Booking, error)
	CancelFunc      func(ctx context.Context, bookingID, requestingUserID int) error
	MoveFunc        func(ctx context.Context, bookingID, requestingUserID, newScreeningID int, newSeats []int) (*domain.Booking, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetByUserId(ctx context.Context, userID int) ([]*domain.Booking, error) {
	return m.GetByUserIdFunc(ctx, userID)
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, bookingID, requestingUserID int) error {
	return m.CancelFunc(ctx, bookingID, requestingUserID)
}

func (m *MockBookingRepo) Move(ctx context.Context, bookingID, requestingUserID, newScreeningID int, newSeats []int) (*domain.Booking, error) {
	return m.MoveFunc(ctx, bookingID, requestingUserID, newScreeningID, newSeats)
}
