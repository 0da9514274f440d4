package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ekinveldet/cinema-booking/api"
	"github.com/ekinveldet/cinema-booking/internal/domain"
	"github.com/ekinveldet/cinema-booking/internal/mocks"
	"github.com/ekinveldet/cinema-booking/internal/validator"
)

func TestGetScreeningSeatMap(t *testing.T) {
	tests := []struct {
		name               string
		screeningId        string
		getScreeningFunc   func(ctx context.Context, id int) (*domain.Screening, error)
		wantStatus         int
		wantErrMessage     string
		wantTakenSeats     []int
		wantAvailableSeats int
	}{
		{
			name:        "seat map with reservations",
			screeningId: "1",
			getScreeningFunc: func(ctx context.Context, id int) (*domain.Screening, error) {
				seats := domain.NewSeatMap(5)
				if err := seats.Claim([]int{2, 4}); err != nil {
					return nil, err
				}
				return &domain.Screening{ID: id, MovieID: 1, Seats: seats}, nil
			},
			wantStatus:         http.StatusOK,
			wantTakenSeats:     []int{2, 4},
			wantAvailableSeats: 3,
		},
		{
			name:           "invalid screening id",
			screeningId:    "abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid screeningId parameter",
		},
		{
			name:        "screening not found",
			screeningId: "42",
			getScreeningFunc: func(ctx context.Context, id int) (*domain.Screening, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "The requested resource not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.catalogRepo = &mocks.MockCatalogRepo{GetScreeningByIdFunc: tt.getScreeningFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/screenings/"+tt.screeningId+"/seats", nil)
			r = withUrlParam(r, "screeningId", tt.screeningId)

			app.GetScreeningSeatMap(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetScreeningSeatMap() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response api.SeatMapResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				taken := []int{}
				available := 0
				for _, seat := range response.Seats {
					if seat.Available {
						available++
					} else {
						taken = append(taken, seat.Number)
					}
				}

				if diff := cmp.Diff(tt.wantTakenSeats, taken); diff != "" {
					t.Errorf("taken seats mismatch (-want +got):\n%s", diff)
				}
				if available != tt.wantAvailableSeats {
					t.Errorf("available seats = %v, want %v", available, tt.wantAvailableSeats)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCreateScreening(t *testing.T) {
	tests := []struct {
		name                string
		body                any
		createScreeningFunc func(ctx context.Context, screening *domain.Screening) error
		wantStatus          int
		wantErrMessage      string
	}{
		{
			name: "successful creation",
			body: api.ScreeningRequest{MovieId: 1, Showtime: "2026-09-04 19:30", Hall: "Hall A"},
			createScreeningFunc: func(ctx context.Context, screening *domain.Screening) error {
				screening.ID = 1
				screening.Seats = domain.NewSeatMap(domain.DefaultSeatCapacity)
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "validation error - missing movie id",
			body:           api.ScreeningRequest{Showtime: "2026-09-04 19:30", Hall: "Hall A"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "unknown movie",
			body: api.ScreeningRequest{MovieId: 42, Showtime: "2026-09-04 19:30", Hall: "Hall A"},
			createScreeningFunc: func(ctx context.Context, screening *domain.Screening) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "The requested resource not found",
		},
		{
			name: "schedule full",
			body: api.ScreeningRequest{MovieId: 1, Showtime: "2026-09-04 19:30", Hall: "Hall A"},
			createScreeningFunc: func(ctx context.Context, screening *domain.Screening) error {
				return domain.ErrCapacityExceeded
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrCapacityExceeded.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.catalogRepo = &mocks.MockCatalogRepo{
					CreateScreeningFunc: tt.createScreeningFunc,
					GetMovieByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
						return &domain.Movie{ID: id, Title: "Heat"}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/screenings", tt.body)

			app.CreateScreening(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateScreening() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				var response api.Screening
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if response.Id != 1 {
					t.Errorf("Expected id=1 in response, got %v", response.Id)
				}
				if response.MovieTitle != "Heat" {
					t.Errorf("Expected movieTitle=Heat in response, got %v", response.MovieTitle)
				}
				if response.AvailableSeats != domain.DefaultSeatCapacity {
					t.Errorf("Expected %v available seats, got %v", domain.DefaultSeatCapacity, response.AvailableSeats)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
