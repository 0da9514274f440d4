package repository

import (
	"sync"

	"github.com/ekinveldet/cinema-booking/internal/domain"
)

// Limits bound the catalog and ledger sizes. Zero means the built-in
// default for that collection.
type Limits struct {
	MaxMovies     int
	MaxScreenings int
	MaxBookings   int
	MaxUsers      int
}

type Config struct {
	SeatCapacity int
	Limits       Limits
}

const (
	defaultMaxMovies     = 50
	defaultMaxScreenings = 100
	defaultMaxBookings   = 200
	defaultMaxUsers      = 50
)

// Store holds the entire catalog and ledger in memory behind a single
// mutex. The repositories below all operate on the same Store, the way the
// SQL repositories in a database-backed service share one pool, and every
// operation takes the lock for its full duration. One logical operation
// therefore runs to completion before the next begins, and multi-step
// sequences like claim-then-record or claim-then-release never observe
// each other's intermediate state.
//
// Entities are keyed by id, with a separate insertion-ordered id slice per
// collection for stable listing. Ids come from counters that only ever
// increase, so deleting one entity never perturbs another's id.
type Store struct {
	mu sync.Mutex

	seatCapacity int
	limits       Limits

	movies   map[int]*domain.Movie
	movieIDs []int

	screenings   map[int]*domain.Screening
	screeningIDs []int

	bookings   map[int]*domain.Booking
	bookingIDs []int

	users   map[int]*domain.User
	userIDs []int

	nextMovieID     int
	nextScreeningID int
	nextBookingID   int
	nextUserID      int
}

func NewStore(cfg Config) *Store {
	if cfg.SeatCapacity < 1 {
		cfg.SeatCapacity = domain.DefaultSeatCapacity
	}
	if cfg.Limits.MaxMovies < 1 {
		cfg.Limits.MaxMovies = defaultMaxMovies
	}
	if cfg.Limits.MaxScreenings < 1 {
		cfg.Limits.MaxScreenings = defaultMaxScreenings
	}
	if cfg.Limits.MaxBookings < 1 {
		cfg.Limits.MaxBookings = defaultMaxBookings
	}
	if cfg.Limits.MaxUsers < 1 {
		cfg.Limits.MaxUsers = defaultMaxUsers
	}

	return &Store{
		seatCapacity: cfg.SeatCapacity,
		limits:       cfg.Limits,
		movies:       make(map[int]*domain.Movie),
		screenings:   make(map[int]*domain.Screening),
		bookings:     make(map[int]*domain.Booking),
		users:        make(map[int]*domain.User),
	}
}

func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
