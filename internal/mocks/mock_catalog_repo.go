package mocks

import (
	"context"

	"github.com/ekinveldet/cinema-booking/internal/domain"
)

type MockCatalogRepo struct {
	domain.CatalogRepository
	CreateMovieFunc      func(ctx context.Context, movie *domain.Movie) error
	GetMovieByIdFunc     func(ctx context.Context, id int) (*domain.Movie, error)
	GetMoviesFunc        func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error)
	UpdateMovieFunc      func(ctx context.Context, movie *domain.Movie) error
	DeleteMovieFunc      func(ctx context.Context, id int) error
	CreateScreeningFunc  func(ctx context.Context, screening *domain.Screening) error
	GetScreeningByIdFunc func(ctx context.Context, id int) (*domain.Screening, error)
	GetScreeningsFunc    func(ctx context.Context, movieID int) ([]*domain.Screening, error)
	UpdateScreeningFunc  func(ctx context.Context, screening *domain.Screening) error
	DeleteScreeningFunc  func(ctx context.Context, id int) error
}

func (m *MockCatalogRepo) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	return m.CreateMovieFunc(ctx, movie)
}

func (m *MockCatalogRepo) GetMovieById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetMovieByIdFunc(ctx, id)
}

func (m *MockCatalogRepo) GetMovies(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	return m.GetMoviesFunc(ctx, filters)
}

func (m *MockCatalogRepo) UpdateMovie(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateMovieFunc(ctx, movie)
}

func (m *MockCatalogRepo) DeleteMovie(ctx context.Context, id int) error {
	return m.DeleteMovieFunc(ctx, id)
}

func (m *MockCatalogRepo) CreateScreening(ctx context.Context, screening *domain.Screening) error {
	return m.CreateScreeningFunc(ctx, screening)
}

func (m *MockCatalogRepo) GetScreeningById(ctx context.Context, id int) (*domain.Screening, error) {
	return m.GetScreeningByIdFunc(ctx, id)
}

func (m *MockCatalogRepo) GetScreenings(ctx context.Context, movieID int) ([]*domain.Screening, error) {
	return m.GetScreeningsFunc(ctx, movieID)
}

func (m *MockCatalogRepo) UpdateScreening(ctx context.Context, screening *domain.Screening) error {
	return m.UpdateScreeningFunc(ctx, screening)
}

func (m *MockCatalogRepo) DeleteScreening(ctx context.Context, id int) error {
	return m.DeleteScreeningFunc(ctx, id)
}
