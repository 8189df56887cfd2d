package service

import (
	"crypto/hmac"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
	"github.com/dimasfirmansyah/product-catalog/internal/mailer"
)

// AuthService defines the interface for the identity lifecycle: registration,
// email confirmation, login and token validation.
type AuthService interface {
	Register(email, fullName, password, confirmPassword string) (*models.User, error)
	ConfirmEmail(userID, token string) error
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
	SendConfirmationEmail(user *models.User) error
}

// TokenClaims is the resolved identity carried by a validated session token.
type TokenClaims struct {
	UserID   string
	Email    string
	FullName string
	Roles    []string
}

// IsAdmin reports whether the claim set includes the Admin role.
func (c *TokenClaims) IsAdmin() bool {
	for _, role := range c.Roles {
		if role == models.RoleAdmin {
			return true
		}
	}
	return false
}

type authService struct {
	userRepo repository.UserRepository
	mail     mailer.Sender
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	userRepo repository.UserRepository,
	mail mailer.Sender,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		mail:     mail,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *authService) Register(email, fullName, password, confirmPassword string) (*models.User, error) {
	email = strings.ToLower(email)
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email)

	if password != confirmPassword {
		return nil, &ValidationError{Fields: map[string]string{
			"confirm_password": "passwords do not match",
		}}
	}
	if verr := validatePassword(password); verr != nil {
		s.logger.Warn("⚠️ [AuthService] Password policy violation", "email", email)
		return nil, verr
	}

	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}
	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:          email,
		FullName:       fullName,
		PasswordHash:   string(hashedPassword),
		EmailConfirmed: false,
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, err
	}

	if err := s.userRepo.AssignRole(user, models.RoleUser); err != nil {
		s.logger.Error("❌ [AuthService] Failed to assign default role", "error", err)
		return nil, err
	}

	// Mail delivery failures do not roll back the created account; the user
	// can request a fresh confirmation later.
	if err := s.SendConfirmationEmail(user); err != nil {
		s.logger.Warn("⚠️ [AuthService] Confirmation email failed", "user_id", user.ID, "error", err)
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *authService) SendConfirmationEmail(user *models.User) error {
	subject, body := confirmationEmail(s.cfg, user)
	return s.mail.Send(user.Email, subject, body)
}

func (s *authService) ConfirmEmail(userID, token string) error {
	s.logger.Info("✉️ [AuthService] Email confirmation attempt", "user_id", userID)

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidUser
		}
		return err
	}

	raw, err := decodeConfirmationToken(token)
	if err != nil {
		s.logger.Warn("⚠️ [AuthService] Malformed confirmation token", "user_id", userID)
		return ErrInvalidToken
	}

	// Wrong, stale and already-consumed tokens all fail the same way so the
	// response never leaks confirmation state.
	expected := confirmationToken(s.cfg.JWTSecret, user)
	if !hmac.Equal([]byte(raw), []byte(expected)) {
		s.logger.Warn("⚠️ [AuthService] Invalid confirmation token", "user_id", userID)
		return ErrInvalidToken
	}

	user.EmailConfirmed = true
	user.SecurityStamp = uuid.NewString()

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to confirm email", "error", err)
		return err
	}

	s.logger.Info("✅ [AuthService] Email confirmed", "user_id", userID)
	return nil
}

func (s *authService) Login(email, password string) (string, error) {
	email = strings.ToLower(email)
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Indistinguishable from a wrong password
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return "", err
	}

	if !user.EmailConfirmed {
		s.logger.Warn("⚠️ [AuthService] Email not confirmed", "email", email)
		return "", ErrEmailNotConfirmed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate token", "error", err)
		return "", err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.FullName,
		"email": user.Email,
		"jti":   uuid.NewString(),
		"roles": user.RoleNames(),
		"iss":   s.cfg.JWTIssuer,
		"aud":   s.cfg.JWTAudience,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(s.cfg.JWTExpireDays) * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.cfg.JWTIssuer),
		jwt.WithAudience(s.cfg.JWTAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	resolved := &TokenClaims{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		resolved.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		resolved.FullName = name
	}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				resolved.Roles = append(resolved.Roles, role)
			}
		}
	}

	return resolved, nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidUser        = errors.New("unknown user")
)
