package file

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/repository"
)

// UserStore is a file-backed repository.UserRepository keeping all users
// in one JSON array file.
type UserStore struct {
	path string
	mu   sync.RWMutex
}

// NewUserStore creates a user store rooted at dataDir.
func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, usersFileName)}
}

// Create appends a new user. The login id must be unused.
func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == user.ID {
			return repository.ErrConflict
		}
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	users = append(users, *user)
	return writeJSONArray(s.path, users)
}

// GetByID retrieves a user by login id.
func (s *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) readUsers() ([]domain.User, error) {
	users := []domain.User{}
	if err := readJSONArray(s.path, &users); err != nil {
		return nil, err
	}
	return users, nil
}
