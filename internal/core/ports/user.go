package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, name string, profile domain.Profile) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}

// RegisterInput carries the data for creating an account. Admins are
// provisioned out of band, so Role is restricted to client or photographer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Profile  domain.Profile
}

// UserService defines account and profile use cases. Token issuance is out of
// scope; registration only provisions the credential hash.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, name string, profile domain.Profile) (*domain.User, error)
	ListPhotographers(ctx context.Context) ([]*domain.User, error)
}
