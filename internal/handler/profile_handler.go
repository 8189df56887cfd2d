package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
	"github.com/dimasfirmansyah/product-catalog/internal/database/service"
	"github.com/dimasfirmansyah/product-catalog/internal/middleware"
	"github.com/dimasfirmansyah/product-catalog/internal/storage"
)

// ProfileHandler handles HTTP requests for the caller's own account
type ProfileHandler struct {
	userService service.UserService
	pictures    *storage.PictureStore
	logger      *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService service.UserService, pictures *storage.PictureStore, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		pictures:    pictures,
		logger:      logger,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	user, err := h.userService.GetProfile(callerID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"email_confirmed": user.EmailConfirmed,
		"profile_picture": user.ProfilePicture,
		"created_at":      user.CreatedAt,
	})
}

// UpdateProfile handles PUT /profile (multipart: full_name, email, profile_picture)
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	fullName := c.PostForm("full_name")
	email := c.PostForm("email")

	var picturePath *string
	if file, err := c.FormFile("profile_picture"); err == nil {
		path, err := h.pictures.Save(file)
		if err != nil {
			h.handleUploadError(c, err)
			return
		}
		picturePath = &path
	}

	user, err := h.userService.UpdateProfile(callerID, fullName, email, picturePath)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile updated successfully",
		"email_confirmed": user.EmailConfirmed,
	})
}

// ChangePassword handles POST /profile/change-password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [ProfileHandler] Invalid change-password request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_password, new_password and matching confirm_password required"})
		return
	}

	if err := h.userService.ChangePassword(callerID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

func (h *ProfileHandler) handleUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidFileType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPG, JPEG, PNG, and GIF are allowed."})
	case errors.Is(err, storage.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size cannot exceed the configured limit"})
	case errors.Is(err, storage.ErrEmptyFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
	default:
		h.logger.Error("❌ [ProfileHandler] Failed to store picture", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while saving the file"})
	}
}

func (h *ProfileHandler) handleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		h.logger.Error("❌ [ProfileHandler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
