package app

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ekinveldet/cinema-booking/api"
	"github.com/ekinveldet/cinema-booking/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	filters := domain.MovieFilters{Term: r.URL.Query().Get("term")}

	var err error

	filters.Page, err = app.readIntQuery(r, "page", DefaultPage)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters.PageSize, err = app.readIntQuery(r, "pageSize", DefaultPageSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if filters.Page < 1 || filters.PageSize < 1 || filters.PageSize > 100 {
		app.badRequestResponse(w, r, errors.New("page must be positive and pageSize must be between 1 and 100"))
		return
	}

	movies, metadata, err := app.catalogRepo.GetMovies(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toApiMovies(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

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

	movie := domain.Movie{
		Title:    input.Title,
		Genre:    input.Genre,
		Duration: input.Duration,
		Cost:     decimal.NewFromFloat(input.Cost),
	}

	err = app.catalogRepo.CreateMovie(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCapacityExceeded):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.MovieRequest

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

	// Edits replace the display fields; the id never changes.
	movie := domain.Movie{
		ID:       id,
		Title:    input.Title,
		Genre:    input.Genre,
		Duration: input.Duration,
		Cost:     decimal.NewFromFloat(input.Cost),
	}

	err = app.catalogRepo.UpdateMovie(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.catalogRepo.DeleteMovie(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.logger.Info("movie deleted with its screenings and bookings", "movie_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func toApiMovie(movie *domain.Movie) api.Movie {
	return api.Movie{
		Id:       movie.ID,
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
		Cost:     movie.Cost,
	}
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
