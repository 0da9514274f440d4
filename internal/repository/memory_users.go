package repository

import (
	"context"
	"strings"
	"time"

	"github.com/ekinveldet/cinema-booking/internal/domain"
)

type MemoryUserRepository struct {
	store *Store
}

func NewMemoryUserRepository(store *Store) *MemoryUserRepository {
	return &MemoryUserRepository{store: store}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) >= s.limits.MaxUsers {
		return domain.ErrCapacityExceeded
	}

	for _, id := range s.userIDs {
		if strings.EqualFold(s.users[id].Email, user.Email) {
			return domain.ErrUserAlreadyExists
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()

	stored := *user
	s.users[user.ID] = &stored
	s.userIDs = append(s.userIDs, user.ID)

	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userIDs {
		if strings.EqualFold(s.users[id].Email, email) {
			copied := *s.users[id]
			return &copied, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (r *MemoryUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	copied := *user

	return &copied, nil
}
