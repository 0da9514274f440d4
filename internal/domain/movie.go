package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID       int
	Title    string
	Genre    string
	Duration int // minutes
	Cost     decimal.Decimal
}

type MovieFilters struct {
	Page     int
	PageSize int
	Term     string
}

func (f MovieFilters) Limit() int {
	return f.PageSize
}

func (f MovieFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}

// CatalogRepository owns movies and screenings. Identifiers are assigned
// sequentially and never reused within a run; deleting one entity never
// changes the id of any other. Deletes cascade: removing a movie removes its
// screenings first, and removing a screening cancels its bookings first.
type CatalogRepository interface {
	CreateMovie(ctx context.Context, movie *Movie) error
	GetMovieById(ctx context.Context, id int) (*Movie, error)
	GetMovies(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	UpdateMovie(ctx context.Context, movie *Movie) error
	DeleteMovie(ctx context.Context, id int) error

	CreateScreening(ctx context.Context, screening *Screening) error
	GetScreeningById(ctx context.Context, id int) (*Screening, error)
	GetScreenings(ctx context.Context, movieID int) ([]*Screening, error)
	UpdateScreening(ctx context.Context, screening *Screening) error
	DeleteScreening(ctx context.Context, id int) error
}
