package repository

import (
	"context"
	"strings"

	"github.com/ekinveldet/cinema-booking/internal/domain"
)

type MemoryCatalogRepository struct {
	store *Store
}

func NewMemoryCatalogRepository(store *Store) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{store: store}
}

func (r *MemoryCatalogRepository) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.movies) >= s.limits.MaxMovies {
		return domain.ErrCapacityExceeded
	}

	s.nextMovieID++
	movie.ID = s.nextMovieID

	stored := *movie
	s.movies[movie.ID] = &stored
	s.movieIDs = append(s.movieIDs, movie.ID)

	return nil
}

func (r *MemoryCatalogRepository) GetMovieById(ctx context.Context, id int) (*domain.Movie, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	movie, ok := s.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	copied := *movie

	return &copied, nil
}

func (r *MemoryCatalogRepository) GetMovies(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*domain.Movie, 0, len(s.movieIDs))
	term := strings.ToLower(filters.Term)

	for _, id := range s.movieIDs {
		movie := s.movies[id]
		if term != "" && !strings.Contains(strings.ToLower(movie.Title), term) {
			continue
		}

		copied := *movie
		matched = append(matched, &copied)
	}

	metadata := domain.NewMetadata(len(matched), filters.Page, filters.PageSize)

	offset := filters.Offset()
	if offset >= len(matched) {
		return []*domain.Movie{}, metadata, nil
	}

	end := offset + filters.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], metadata, nil
}

func (r *MemoryCatalogRepository) UpdateMovie(ctx context.Context, movie *domain.Movie) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[movie.ID]; !ok {
		return domain.ErrRecordNotFound
	}

	stored := *movie
	s.movies[movie.ID] = &stored

	return nil
}

// DeleteMovie cascades: every screening of the movie is deleted first, each
// cancelling its own bookings, then the movie record itself is removed. The
// dependent scan restarts after every removal and runs until no screening
// of the movie remains, so no dependent can be skipped.
func (r *MemoryCatalogRepository) DeleteMovie(ctx context.Context, id int) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[id]; !ok {
		return domain.ErrRecordNotFound
	}

	for {
		dependent := 0
		for _, screeningID := range s.screeningIDs {
			if s.screenings[screeningID].MovieID == id {
				dependent = screeningID
				break
			}
		}

		if dependent == 0 {
			break
		}

		s.deleteScreeningLocked(dependent)
	}

	delete(s.movies, id)
	s.movieIDs = removeID(s.movieIDs, id)

	return nil
}

func (r *MemoryCatalogRepository) CreateScreening(ctx context.Context, screening *domain.Screening) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.screenings) >= s.limits.MaxScreenings {
		return domain.ErrCapacityExceeded
	}

	if _, ok := s.movies[screening.MovieID]; !ok {
		return domain.ErrRecordNotFound
	}

	s.nextScreeningID++
	screening.ID = s.nextScreeningID

	stored := *screening
	stored.Seats = domain.NewSeatMap(s.seatCapacity)
	s.screenings[screening.ID] = &stored
	s.screeningIDs = append(s.screeningIDs, screening.ID)

	screening.Seats = stored.Seats.Clone()

	return nil
}

func (r *MemoryCatalogRepository) GetScreeningById(ctx context.Context, id int) (*domain.Screening, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	screening, ok := s.screenings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return snapshotScreening(screening), nil
}

// GetScreenings lists screenings in creation order. A movieID of zero
// matches every screening.
func (r *MemoryCatalogRepository) GetScreenings(ctx context.Context, movieID int) ([]*domain.Screening, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	screenings := make([]*domain.Screening, 0, len(s.screeningIDs))

	for _, id := range s.screeningIDs {
		screening := s.screenings[id]
		if movieID != 0 && screening.MovieID != movieID {
			continue
		}

		screenings = append(screenings, snapshotScreening(screening))
	}

	return screenings, nil
}

// UpdateScreening edits the display fields only. The seat map and movie
// reference of a screening with live holds are not editable here;
// re-homing seats is the ledger's job.
func (r *MemoryCatalogRepository) UpdateScreening(ctx context.Context, screening *domain.Screening) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.screenings[screening.ID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	stored.Showtime = screening.Showtime
	stored.Hall = screening.Hall

	return nil
}

// DeleteScreening cancels every booking on the screening before removing
// it, so no ledger entry is left pointing at a dead screening.
func (r *MemoryCatalogRepository) DeleteScreening(ctx context.Context, id int) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.screenings[id]; !ok {
		return domain.ErrRecordNotFound
	}

	s.deleteScreeningLocked(id)

	return nil
}

func (s *Store) deleteScreeningLocked(id int) {
	screening := s.screenings[id]

	for {
		dependent := 0
		for _, bookingID := range s.bookingIDs {
			if s.bookings[bookingID].ScreeningID == id {
				dependent = bookingID
				break
			}
		}

		if dependent == 0 {
			break
		}

		// The seat map dies with the screening, but releasing keeps the
		// ledger invariant intact up to the final removal.
		screening.Seats.Release(s.bookings[dependent].Seats)
		delete(s.bookings, dependent)
		s.bookingIDs = removeID(s.bookingIDs, dependent)
	}

	delete(s.screenings, id)
	s.screeningIDs = removeID(s.screeningIDs, id)
}

func snapshotScreening(screening *domain.Screening) *domain.Screening {
	copied := *screening
	copied.Seats = screening.Seats.Clone()

	return &copied
}
