package domain

// Screening is one showing of a movie in a hall. The seat map is fixed at
// creation time and lives and dies with the screening.
type Screening struct {
	ID       int
	MovieID  int
	Showtime string // display label, e.g. "2026-09-04 19:30"
	Hall     string
	Seats    *SeatMap
}
