package users

import (
	"Bulletin/internal/core/images"
	"Bulletin/internal/core/validation"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo   UserRepository
	imageStore images.Store
	logger     *slog.Logger
	bcryptCost int
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, imageStore images.Store, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		userRepo:   userRepo,
		imageStore: imageStore,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Signup validates the request, hashes the password and creates the account.
// Duplicate emails and nicknames surface from the repository's unique constraints.
func (s *userService) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Nickname = strings.TrimSpace(req.Nickname)

	if err := validation.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validation.Password(req.Password); err != nil {
		return nil, err
	}
	if err := validation.Nickname(req.Nickname); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &User{
		Email:        req.Email,
		Nickname:     req.Nickname,
		ProfileImage: DefaultProfileImage,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) Withdraw(ctx context.Context, userID int64) error {
	if err := validation.ID("userId", userID); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.removeImage(ctx, user.ProfileImage)
	s.logger.Info("user withdrew", "user_id", userID)
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toProfile(user), nil
}

func (s *userService) UpdateNickname(ctx context.Context, userID int64, nickname string) (*Profile, error) {
	nickname = strings.TrimSpace(nickname)
	if err := validation.Nickname(nickname); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateNickname(ctx, userID, nickname)
	if err != nil {
		return nil, err
	}
	return s.toProfile(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	if err := validation.Password(req.NewPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePasswordHash(ctx, userID, string(hash))
}

func (s *userService) UpdateProfileImage(ctx context.Context, userID int64, upload *images.Upload) (*Profile, error) {
	if upload == nil || upload.Size() == 0 {
		return nil, validation.New("image", "required")
	}
	if err := validation.Image(upload.ContentType, upload.Size()); err != nil {
		return nil, err
	}

	name, err := s.imageStore.Save(ctx, images.KindProfile, upload)
	if err != nil {
		return nil, err
	}

	previous, err := s.userRepo.UpdateProfileImage(ctx, userID, name)
	if err != nil {
		s.removeImage(ctx, name)
		return nil, err
	}
	s.removeImage(ctx, previous)

	return s.GetProfile(ctx, userID)
}

// removeImage deletes a stored file after the owning row no longer points at it.
// Failures only leave an orphaned file behind, so they are logged and dropped.
func (s *userService) removeImage(ctx context.Context, name string) {
	if name == "" || name == DefaultProfileImage {
		return
	}
	if err := s.imageStore.Delete(ctx, name); err != nil {
		s.logger.Warn("failed to delete profile image", "image", name, "error", err)
	}
}

func (s *userService) toProfile(user *User) *Profile {
	return &Profile{
		ID:              user.ID,
		Email:           user.Email,
		Nickname:        user.Nickname,
		ProfileImage:    user.ProfileImage,
		ProfileImageURL: s.imageStore.URL(user.ProfileImage),
	}
}
