package service

import (
	"context"
	"errors"
	"strings"

	"toolverse/internal/models"
	"toolverse/internal/observability"
	"toolverse/internal/repository"
	"toolverse/internal/validation"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
	metrics  *observability.StoreMetrics
	hashCost int
}

type CreateUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func NewUserService(userRepo repository.UserRepository, metrics *observability.StoreMetrics) *UserService {
	if metrics == nil {
		metrics = observability.NewStoreMetrics("unknown")
	}
	return &UserService{userRepo: userRepo, metrics: metrics, hashCost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

// Create registers a user. Username and email must be unique.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	span, ctx := observability.StartService(ctx, "UserService", "Create")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.Struct(in).Err("Invalid user"); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}

	defer s.metrics.TrackQuery("create", "users")()
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, models.NewConflictError("Username or email already taken")
		}
		span.SetError(err)
		return nil, storeError(err, "User", "")
	}

	span.AddAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	defer s.metrics.TrackQuery("get", "users")()
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "User", id)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	defer s.metrics.TrackQuery("get", "users")()
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, storeError(err, "User", username)
	}
	return user, nil
}

// CheckPassword reports whether password matches the user's stored hash.
// Locked accounts never match.
func CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
