package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ecilanotrub/users-microservice/internal/core/domain"
	"github.com/ecilanotrub/users-microservice/middleware"
)

// UserService holds the business rules for user management: username
// uniqueness, entity-to-DTO mapping and outcome tagging. Expected business
// failures come back as domain.ServiceResponse variants; the error return is
// reserved for unexpected storage failures, which the web layer turns into
// a generic 500.
type UserService struct {
	repo domain.UserRepository
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser creates a new user with the given username. Returns a Conflict
// outcome when the username is already in use.
func (s *UserService) CreateUser(ctx context.Context, username string) (domain.ServiceResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "user.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.username", username),
	))
	defer span.End()

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		span.RecordError(err)
		return domain.ServiceResponse{}, fmt.Errorf("check username %q: %w", username, err)
	}
	if exists {
		span.SetAttributes(attribute.String("outcome", domain.ResponseConflict.String()))
		return domain.ConflictResponse(fmt.Sprintf("Username %s already exists", username)), nil
	}

	user := &domain.User{Username: username}
	if err := s.repo.Create(ctx, user); err != nil {
		// The existence check and the insert are not atomic; a racing create
		// loses here against the unique constraint instead of duplicating.
		if errors.Is(err, domain.ErrUsernameTaken) {
			span.SetAttributes(attribute.String("outcome", domain.ResponseConflict.String()))
			return domain.ConflictResponse(fmt.Sprintf("Username %s already exists", username)), nil
		}
		span.RecordError(err)
		return domain.ServiceResponse{}, fmt.Errorf("create user %q: %w", username, err)
	}

	span.SetAttributes(
		attribute.Int("user.id", user.ID),
		attribute.String("outcome", domain.ResponseSuccess.String()),
	)
	span.AddEvent("user.created")

	return domain.CreatedResponse(strconv.Itoa(user.ID)), nil
}

// GetAllUsers returns every user as a response DTO, preserving store order.
// The result is never nil; an empty store yields an empty slice.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "user.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	users, err := s.repo.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	responses := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, domain.UserResponse{
			UserID:   u.ID,
			Username: u.Username,
		})
	}

	span.SetAttributes(attribute.Int("user.count", len(responses)))
	return responses, nil
}

// UpdateUser renames the user with the given ID. Returns Conflict when the
// username is already in use and NotFound when the ID does not exist.
//
// The conflict check does not exclude the target user, so renaming a user to
// its own current username also conflicts. Kept for contract compatibility;
// see DESIGN.md.
func (s *UserService) UpdateUser(ctx context.Context, id int, username string) (domain.ServiceResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "user.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("user.id", id),
		attribute.String("user.username", username),
	))
	defer span.End()

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		span.RecordError(err)
		return domain.ServiceResponse{}, fmt.Errorf("check username %q: %w", username, err)
	}
	if exists {
		span.SetAttributes(attribute.String("outcome", domain.ResponseConflict.String()))
		return domain.ConflictResponse(fmt.Sprintf("Username %s already exists", username)), nil
	}

	user, err := s.repo.GetForUpdate(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.ServiceResponse{}, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		span.SetAttributes(attribute.String("outcome", domain.ResponseNotFound.String()))
		return domain.NotFoundResponse(fmt.Sprintf("User not found with given ID %d", id)), nil
	}

	user.Username = username
	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			span.SetAttributes(attribute.String("outcome", domain.ResponseConflict.String()))
			return domain.ConflictResponse(fmt.Sprintf("Username %s already exists", username)), nil
		}
		span.RecordError(err)
		return domain.ServiceResponse{}, fmt.Errorf("save user %d: %w", id, err)
	}

	span.SetAttributes(attribute.String("outcome", domain.ResponseSuccess.String()))
	return domain.SuccessResponse(), nil
}

// DeleteUser removes the user with the given ID. Returns false when the ID
// does not exist; no delete is issued in that case.
func (s *UserService) DeleteUser(ctx context.Context, id int) (bool, error) {
	ctx, span := middleware.StartSpan(ctx, "user.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("user.id", id),
	))
	defer span.End()

	user, err := s.repo.GetForUpdate(ctx, id)
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		span.SetAttributes(attribute.Bool("user.deleted", false))
		return false, nil
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}

	span.SetAttributes(attribute.Bool("user.deleted", true))
	return true, nil
}
