package app

import (
	"errors"
	"net/http"

	"github.com/ekinveldet/cinema-booking/api"
	"github.com/ekinveldet/cinema-booking/internal/domain"
)

func (app *Application) GetScreenings(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIntQuery(r, "movieId", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screenings, err := app.catalogRepo.GetScreenings(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiScreenings := make([]api.Screening, len(screenings))

	for i, screening := range screenings {
		apiScreenings[i] = app.toApiScreening(r, screening)
	}

	resp := api.ScreeningListResponse{Screenings: apiScreenings}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreeningSeatMap(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.catalogRepo.GetScreeningById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats := make([]api.Seat, screening.Seats.Capacity())

	for i := range seats {
		number := i + 1
		seats[i] = api.Seat{
			Number:    number,
			Available: screening.Seats.IsFree(number),
		}
	}

	resp := api.SeatMapResponse{
		ScreeningId: screening.ID,
		Seats:       seats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var input api.ScreeningRequest

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

	screening := domain.Screening{
		MovieID:  input.MovieId,
		Showtime: input.Showtime,
		Hall:     input.Hall,
	}

	err = app.catalogRepo.CreateScreening(r.Context(), &screening)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.logger.Warn("screening creation for unknown movie", "movie_id", input.MovieId)
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrCapacityExceeded):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, app.toApiScreening(r, &screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.ScreeningUpdateRequest

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

	screening := domain.Screening{
		ID:       id,
		Showtime: input.Showtime,
		Hall:     input.Hall,
	}

	err = app.catalogRepo.UpdateScreening(r.Context(), &screening)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	updated, err := app.catalogRepo.GetScreeningById(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, app.toApiScreening(r, updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.catalogRepo.DeleteScreening(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.logger.Info("screening deleted with its bookings", "screening_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) toApiScreening(r *http.Request, screening *domain.Screening) api.Screening {
	apiScreening := api.Screening{
		Id:             screening.ID,
		MovieId:        screening.MovieID,
		Showtime:       screening.Showtime,
		Hall:           screening.Hall,
		SeatCapacity:   screening.Seats.Capacity(),
		AvailableSeats: screening.Seats.Capacity() - screening.Seats.HeldCount(),
	}

	movie, err := app.catalogRepo.GetMovieById(r.Context(), screening.MovieID)
	if err == nil {
		apiScreening.MovieTitle = movie.Title
	}

	return apiScreening
}
