package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
)

// MockSender records outbound mail instead of hitting an SMTP relay.
type MockSender struct {
	mock.Mock

	LastTo   string
	LastBody string
}

func (m *MockSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	m.LastTo = to
	m.LastBody = htmlBody
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTIssuer:     "ProductCatalogApp",
		JWTAudience:   "ProductCatalogAppUsers",
		JWTExpireDays: 1,
		PublicBaseURL: "http://localhost:8080",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.ProductCategory{},
		&models.Product{},
	)
	require.NoError(t, err)

	for _, name := range []string{models.RoleAdmin, models.RoleUser} {
		require.NoError(t, db.Create(&models.Role{Name: name}).Error)
	}

	return db
}
