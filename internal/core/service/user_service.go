package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// UserService implements account provisioning and profile management. Token
// issuance is out of scope; this service only stores the credential hash.
type UserService struct {
	repo     ports.UserRepository
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activity ActivityRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, activity: activity, log: log}
}

// Register creates a client or photographer account. Admin accounts are
// provisioned out of band and rejected here.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Role != domain.RoleClient && input.Role != domain.RolePhotographer {
		return nil, fmt.Errorf("register: role %q: %w", input.Role, domain.ErrInvalidRole)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Profile:      input.Profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    created.ID,
		ActorRole:  created.Role,
		Action:     "user.registered",
		EntityType: "user",
		EntityID:   created.ID,
	})
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return created, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateProfile replaces the display name and profile. Email and role are
// immutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, id string, name string, profile domain.Profile) (*domain.User, error) {
	u, err := s.repo.UpdateProfile(ctx, id, name, profile)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

// ListPhotographers returns the public photographer directory.
func (s *UserService) ListPhotographers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListByRole(ctx, domain.RolePhotographer)
}
