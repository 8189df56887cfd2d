package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
)

const confirmEmailPurpose = "email-confirm"

// confirmationToken derives the single-use email confirmation token for the
// user's current state. Rotating the security stamp invalidates every token
// issued before it, which is what makes confirmation exactly-once.
func confirmationToken(secret string, user *models.User) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s|%s", user.ID, user.SecurityStamp, confirmEmailPurpose)
	return hex.EncodeToString(mac.Sum(nil))
}

// encodeConfirmationToken makes the raw token URL-safe for transport.
func encodeConfirmationToken(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeConfirmationToken reverses the transport encoding. Padded input is
// accepted for clients that base64url-encode with padding.
func decodeConfirmationToken(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(encoded)
		if err != nil {
			return "", err
		}
	}
	return string(raw), nil
}

// confirmationEmail builds the subject and HTML body carrying the
// confirmation link for the user's current state.
func confirmationEmail(cfg *config.Config, user *models.User) (subject, body string) {
	token := encodeConfirmationToken(confirmationToken(cfg.JWTSecret, user))
	link := fmt.Sprintf("%s/api/v1/auth/confirm-email?userId=%s&token=%s",
		cfg.PublicBaseURL, user.ID, token)

	subject = "Confirm your email"
	body = fmt.Sprintf(`<p>Hello %s,</p><p>Please confirm your email address by <a href="%s">clicking here</a>.</p>`,
		user.FullName, link)
	return subject, body
}
