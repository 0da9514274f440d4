package app

import (
	"net/http"

	"github.com/ekinveldet/cinema-booking/api"
)

func (app *Application) GetBookingsReport(w http.ResponseWriter, r *http.Request) {
	reports, err := app.reportRepo.BookingsByMovie(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movies := make([]api.MovieBookingsReport, len(reports))

	for i, report := range reports {
		movies[i] = api.MovieBookingsReport{
			MovieId:     report.MovieID,
			MovieTitle:  report.MovieTitle,
			BookedSeats: report.BookedSeats,
		}
	}

	resp := api.BookingsReportResponse{Movies: movies}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	reports, total, err := app.reportRepo.RevenueByMovie(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movies := make([]api.MovieRevenueReport, len(reports))

	for i, report := range reports {
		movies[i] = api.MovieRevenueReport{
			MovieId:    report.MovieID,
			MovieTitle: report.MovieTitle,
			Revenue:    report.Revenue,
		}
	}

	resp := api.RevenueReportResponse{
		Movies:       movies,
		TotalRevenue: total,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
