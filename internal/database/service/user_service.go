package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
	"github.com/dimasfirmansyah/product-catalog/internal/mailer"
)

// UserService defines the interface for profile management
type UserService interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID, fullName, email string, picturePath *string) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
}

type userService struct {
	userRepo repository.UserRepository
	mail     mailer.Sender
	cfg      *config.Config
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	mail mailer.Sender,
	cfg *config.Config,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		mail:     mail,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *userService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) UpdateProfile(userID, fullName, email string, picturePath *string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}

	emailChanged := false
	if email != "" {
		email = strings.ToLower(email)
		if email != user.Email {
			existing, err := s.userRepo.FindByEmail(email)
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return nil, err
			}
			if existing != nil {
				return nil, ErrEmailAlreadyExists
			}

			// A changed address must be proven again before the next login
			user.Email = email
			user.EmailConfirmed = false
			user.SecurityStamp = uuid.NewString()
			emailChanged = true
		}
	}

	if picturePath != nil {
		user.ProfilePicture = picturePath
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	if emailChanged {
		subject, body := confirmationEmail(s.cfg, user)
		if err := s.mail.Send(user.Email, subject, body); err != nil {
			s.logger.Warn("⚠️ [UserService] Confirmation email failed", "user_id", userID, "error", err)
		}
	}

	s.logger.Info("✅ [UserService] Profile updated", "user_id", userID, "email_changed", emailChanged)
	return user, nil
}

func (s *userService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		s.logger.Warn("⚠️ [UserService] Wrong current password", "user_id", userID)
		return ErrInvalidCredentials
	}

	if verr := validatePassword(newPassword); verr != nil {
		return verr
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashed)
	user.SecurityStamp = uuid.NewString()

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to change password", "user_id", userID, "error", err)
		return err
	}

	s.logger.Info("✅ [UserService] Password changed", "user_id", userID)
	return nil
}
