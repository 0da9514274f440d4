package domain

import "fmt"

// DefaultSeatCapacity is the number of seats in a hall unless the store is
// configured otherwise.
const DefaultSeatCapacity = 30

// SeatMap tracks seat occupancy for a single screening. Seats are numbered
// 1..Capacity. The occupancy bits are unexported on purpose: every seat
// transition has to go through Claim or Release so the validate-then-commit
// path cannot be bypassed.
type SeatMap struct {
	held []bool
}

func NewSeatMap(capacity int) *SeatMap {
	if capacity < 1 {
		capacity = DefaultSeatCapacity
	}

	return &SeatMap{held: make([]bool, capacity)}
}

func (sm *SeatMap) Capacity() int {
	return len(sm.held)
}

// IsFree reports whether the given seat is currently unoccupied. Seats
// outside 1..Capacity are never free.
func (sm *SeatMap) IsFree(seat int) bool {
	if seat < 1 || seat > len(sm.held) {
		return false
	}

	return !sm.held[seat-1]
}

// Claim marks every requested seat as held, or none of them. The whole
// request is validated before the first bit is flipped, so a rejected claim
// leaves the map exactly as it was. Duplicate seat numbers within one
// request are the caller's error and are rejected rather than deduplicated.
func (sm *SeatMap) Claim(seats []int) error {
	seen := make(map[int]bool, len(seats))

	for _, seat := range seats {
		if seat < 1 || seat > len(sm.held) {
			return fmt.Errorf("%w: seat %d is out of range", ErrSeatConflict, seat)
		}
		if seen[seat] {
			return fmt.Errorf("%w: seat %d requested more than once", ErrSeatConflict, seat)
		}
		if sm.held[seat-1] {
			return fmt.Errorf("%w: seat %d is taken", ErrSeatConflict, seat)
		}

		seen[seat] = true
	}

	for _, seat := range seats {
		sm.held[seat-1] = true
	}

	return nil
}

// Release frees the given seats. It is best-effort: seat numbers outside
// 1..Capacity are skipped, because Release runs on cleanup paths that must
// not abort halfway through.
func (sm *SeatMap) Release(seats []int) {
	for _, seat := range seats {
		if seat >= 1 && seat <= len(sm.held) {
			sm.held[seat-1] = false
		}
	}
}

// HeldSeats returns the occupied seat numbers in ascending order.
func (sm *SeatMap) HeldSeats() []int {
	seats := make([]int, 0, len(sm.held))

	for i, taken := range sm.held {
		if taken {
			seats = append(seats, i+1)
		}
	}

	return seats
}

func (sm *SeatMap) HeldCount() int {
	count := 0

	for _, taken := range sm.held {
		if taken {
			count++
		}
	}

	return count
}

// Clone returns an independent copy, used to hand seat state to readers
// without exposing the live map.
func (sm *SeatMap) Clone() *SeatMap {
	held := make([]bool, len(sm.held))
	copy(held, sm.held)

	return &SeatMap{held: held}
}
