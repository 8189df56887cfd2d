package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
)

// ==================== USER SERVICE TESTS ====================

func registerConfirmedUser(t *testing.T, authSvc AuthService, sender *MockSender, email string) string {
	t.Helper()
	user, err := authSvc.Register(email, "Test User", "Abcd1234!", "Abcd1234!")
	require.NoError(t, err)
	require.NoError(t, authSvc.ConfirmEmail(user.ID, confirmationTokenFromMail(t, sender.LastBody)))
	return user.ID
}

func TestUserService_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	userRepo := repository.NewUserRepository(db)
	authSvc := NewAuthService(userRepo, sender, testConfig(), testLogger())
	svc := NewUserService(userRepo, sender, testConfig(), testLogger())

	userID := registerConfirmedUser(t, authSvc, sender, "a@x.com")

	t.Run("name only keeps confirmation", func(t *testing.T) {
		user, err := svc.UpdateProfile(userID, "Alice Renamed", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "Alice Renamed", user.FullName)
		assert.True(t, user.EmailConfirmed)
	})

	t.Run("email change resets confirmation and re-mails", func(t *testing.T) {
		user, err := svc.UpdateProfile(userID, "", "alice-new@x.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "alice-new@x.com", user.Email)
		assert.False(t, user.EmailConfirmed)
		assert.Equal(t, "alice-new@x.com", sender.LastTo)

		// Login now demands a fresh confirmation
		_, err = authSvc.Login("alice-new@x.com", "Abcd1234!")
		assert.ErrorIs(t, err, ErrEmailNotConfirmed)
	})

	t.Run("taken email is rejected", func(t *testing.T) {
		registerConfirmedUser(t, authSvc, sender, "b@x.com")

		_, err := svc.UpdateProfile(userID, "", "b@x.com", nil)
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("picture path is stored", func(t *testing.T) {
		path := "/uploads/profile-pictures/avatar.png"
		user, err := svc.UpdateProfile(userID, "", "", &path)
		require.NoError(t, err)
		require.NotNil(t, user.ProfilePicture)
		assert.Equal(t, path, *user.ProfilePicture)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	userRepo := repository.NewUserRepository(db)
	authSvc := NewAuthService(userRepo, sender, testConfig(), testLogger())
	svc := NewUserService(userRepo, sender, testConfig(), testLogger())

	userID := registerConfirmedUser(t, authSvc, sender, "a@x.com")

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(userID, "Wrong1234!", "Efgh5678!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("weak new password", func(t *testing.T) {
		err := svc.ChangePassword(userID, "Abcd1234!", "weak")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "password")
	})

	t.Run("success rotates the credential", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(userID, "Abcd1234!", "Efgh5678!"))

		_, err := authSvc.Login("a@x.com", "Abcd1234!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		token, err := authSvc.Login("a@x.com", "Efgh5678!")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}
