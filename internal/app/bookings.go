package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ekinveldet/cinema-booking/api"
	"github.com/ekinveldet/cinema-booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.BookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	booking := domain.Booking{
		UserID:      userId,
		ScreeningID: input.ScreeningId,
		Seats:       input.Seats,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatConflict):
			app.metrics.seatConflicts.Add(r.Context(), 1)
			app.logger.Warn("booking rejected on seat conflict", "screening_id", input.ScreeningId, "error", err)
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrCapacityExceeded):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookingsCreated.Add(r.Context(), 1)

	resp := api.BookingResponse{Booking: app.toApiBooking(r, &booking)}

	app.sendBookingConfirmation(r, resp.Booking, userId)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	bookings, err := app.bookingRepo.GetByUserId(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{Bookings: app.toApiBookings(r, bookings)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{Bookings: app.toApiBookings(r, bookings)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateBooking moves a booking to a new screening and seat set. A seat
// conflict on the target leaves the existing booking untouched.
func (app *Application) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.BookingUpdateRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	booking, err := app.bookingRepo.Move(r.Context(), id, userId, input.ScreeningId, input.Seats)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrNotOwner):
			app.forbiddenResponse(w, r)
		case errors.Is(err, domain.ErrSeatConflict):
			app.metrics.seatConflicts.Add(r.Context(), 1)
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookingsMoved.Add(r.Context(), 1)

	resp := api.BookingResponse{Booking: app.toApiBooking(r, booking)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	err = app.bookingRepo.Cancel(r.Context(), id, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrNotOwner):
			app.forbiddenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookingsCancelled.Add(r.Context(), 1)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) sendBookingConfirmation(r *http.Request, booking api.Booking, userId int) {
	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.logger.Error("failed to look up user for booking confirmation", "error", err)
		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic occurred during sending booking confirmation", "panic", err)
			}
		}()

		seats := make([]string, len(booking.Seats))
		for i, seat := range booking.Seats {
			seats[i] = fmt.Sprint(seat)
		}

		data := map[string]any{
			"ref":        booking.Ref,
			"movieTitle": booking.MovieTitle,
			"showtime":   booking.Showtime,
			"hall":       booking.Hall,
			"seats":      strings.Join(seats, ", "),
		}

		err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation", "error", err)
		}
	}()
}

func (app *Application) toApiBooking(r *http.Request, booking *domain.Booking) api.Booking {
	apiBooking := api.Booking{
		Id:          booking.ID,
		Ref:         booking.Ref,
		ScreeningId: booking.ScreeningID,
		Seats:       booking.Seats,
		CreatedAt:   booking.CreatedAt,
	}

	screening, err := app.catalogRepo.GetScreeningById(r.Context(), booking.ScreeningID)
	if err != nil {
		return apiBooking
	}

	apiBooking.Showtime = screening.Showtime
	apiBooking.Hall = screening.Hall

	movie, err := app.catalogRepo.GetMovieById(r.Context(), screening.MovieID)
	if err != nil {
		return apiBooking
	}

	apiBooking.MovieTitle = movie.Title
	apiBooking.TotalPrice = movie.Cost.Mul(decimal.NewFromInt(int64(len(booking.Seats))))

	return apiBooking
}

func (app *Application) toApiBookings(r *http.Request, bookings []*domain.Booking) []api.Booking {
	apiBookings := make([]api.Booking, len(bookings))

	for i, booking := range bookings {
		apiBookings[i] = app.toApiBooking(r, booking)
	}

	return apiBookings
}
