package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakeapi/internal/model"
	"bakeapi/internal/repository"
	"bakeapi/internal/utils"
)

var ErrEmailAlreadyExists = errors.New("user with this email already exists")

// UserService covers registration, admin user management and the
// self-service profile operations.
type UserService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error

	// Profile methods operate on the authenticated caller's id only.
	GetProfile(ctx context.Context, userID int) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error)
	DeleteProfile(ctx context.Context, userID int) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user account. The role is always ROLE_USER;
// administrators are only created by another administrator.
func (s *userService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         model.RoleUser,
		BakeryName:   req.BakeryName,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies an admin-side update. A new password is re-hashed
// before persisting; the plaintext never reaches the repository.
func (s *userService) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error) {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil && *req.Email != existing.Email {
		other, err := s.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if other != nil {
			return nil, ErrEmailAlreadyExists
		}
		existing.Email = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = hashedPassword
	}
	if req.Role != nil {
		existing.Role = *req.Role
	}
	if req.BakeryName != nil {
		existing.BakeryName = *req.BakeryName
	}

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update user in repo: %w", err)
	}

	// Return the stored record rather than echoing the input
	updated, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch user after update: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user in repo: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// --- Profile methods ---

func (s *userService) GetProfile(ctx context.Context, userID int) (*model.User, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile is UpdateUser restricted to the caller's own record,
// with no way to change the role.
func (s *userService) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	return s.UpdateUser(ctx, userID, model.UpdateUserRequest{
		Email:      req.Email,
		Password:   req.Password,
		BakeryName: req.BakeryName,
	})
}

func (s *userService) DeleteProfile(ctx context.Context, userID int) error {
	return s.DeleteUser(ctx, userID)
}
