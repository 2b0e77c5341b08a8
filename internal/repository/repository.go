package repository

import (
	"context"

	"alcyxob/fitstack/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RecordRepository defines the interface for interacting with workout
// records. Records are append-only: there is no update or single delete,
// matching the app's save-once model.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.WorkoutRecord) error
	// GetByUserID returns the user's records ordered by Timestamp ascending.
	GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutRecord, error)
	// CountByUserID reports how many records the user has, without
	// materializing them.
	CountByUserID(ctx context.Context, userID string) (int64, error)
}
