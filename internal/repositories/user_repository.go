package repositories

import "blog/internal/models"

// UserRepository is the credential store boundary. Implementations must
// enforce email uniqueness atomically; the auth service only pre-checks
// for a friendlier error and relies on the store as the final arbiter.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
