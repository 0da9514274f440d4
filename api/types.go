// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type MovieRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=50"`
	Genre    string  `json:"genre" validate:"required,min=1,max=20"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Cost     float64 `json:"cost" validate:"gte=0"`
}

type Movie struct {
	Id       int             `json:"id"`
	Title    string          `json:"title"`
	Genre    string          `json:"genre"`
	Duration int             `json:"duration"`
	Cost     decimal.Decimal `json:"cost"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieListResponse struct {
	Movies   []Movie   `json:"movies"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

type ScreeningRequest struct {
	MovieId  int    `json:"movieId" validate:"required,gt=0"`
	Showtime string `json:"showtime" validate:"required,min=1,max=25"`
	Hall     string `json:"hall" validate:"required,min=1,max=10"`
}

type ScreeningUpdateRequest struct {
	Showtime string `json:"showtime" validate:"required,min=1,max=25"`
	Hall     string `json:"hall" validate:"required,min=1,max=10"`
}

type Screening struct {
	Id             int    `json:"id"`
	MovieId        int    `json:"movieId"`
	MovieTitle     string `json:"movieTitle,omitempty"`
	Showtime       string `json:"showtime"`
	Hall           string `json:"hall"`
	SeatCapacity   int    `json:"seatCapacity"`
	AvailableSeats int    `json:"availableSeats"`
}

type ScreeningListResponse struct {
	Screenings []Screening `json:"screenings"`
}

type Seat struct {
	Number    int  `json:"number"`
	Available bool `json:"available"`
}

type SeatMapResponse struct {
	ScreeningId int    `json:"screeningId"`
	Seats       []Seat `json:"seats"`
}

type BookingRequest struct {
	ScreeningId int   `json:"screeningId" validate:"required,gt=0"`
	Seats       []int `json:"seats" validate:"required,min=1"`
}

type BookingUpdateRequest struct {
	ScreeningId int   `json:"screeningId" validate:"required,gt=0"`
	Seats       []int `json:"seats" validate:"required,min=1"`
}

type Booking struct {
	Id          int             `json:"id"`
	Ref         string          `json:"ref"`
	ScreeningId int             `json:"screeningId"`
	MovieTitle  string          `json:"movieTitle,omitempty"`
	Showtime    string          `json:"showtime,omitempty"`
	Hall        string          `json:"hall,omitempty"`
	Seats       []int           `json:"seats"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

type MovieBookingsReport struct {
	MovieId     int    `json:"movieId"`
	MovieTitle  string `json:"movieTitle"`
	BookedSeats int    `json:"bookedSeats"`
}

type BookingsReportResponse struct {
	Movies []MovieBookingsReport `json:"movies"`
}

type MovieRevenueReport struct {
	MovieId    int             `json:"movieId"`
	MovieTitle string          `json:"movieTitle"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type RevenueReportResponse struct {
	Movies       []MovieRevenueReport `json:"movies"`
	TotalRevenue decimal.Decimal      `json:"totalRevenue"`
}
