package repositories

import (
	"context"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/store"
)

// UserRepository provides access to the users collection.
type UserRepository struct {
	users *collection[models.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{users: newCollection[models.User](s, KeyUsers)}
}

// GetAll returns all users in storage order.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.users.load(ctx)
}

// GetByEmail returns the first user matching email, or nil when none does.
// Email uniqueness is not enforced on write, so first match wins, the same
// way the login lookup always behaved.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append adds a user to the collection.
func (r *UserRepository) Append(ctx context.Context, user models.User) error {
	return r.users.mutate(ctx, func(users []models.User) ([]models.User, error) {
		return append(users, user), nil
	})
}
