package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/auth"
	"github.com/BruksfildServices01/appointment-system/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-system/internal/db"
	"github.com/BruksfildServices01/appointment-system/internal/routes"
)

// setupAPI wires the full router against an in-memory database, with
// the default admin seeded, the way main does it for postgres.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// in-memory sqlite exists per connection; keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		TokenTTL:        time.Hour,
		BcryptCost:      bcrypt.MinCost,
		LoginRateLimit:  1000,
		LoginRateWindow: time.Minute,
	}

	require.NoError(t, auth.SeedDefaultAdmin(db, cfg.BcryptCost))

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decodeBody(t, w)["access_token"].(string)
	require.True(t, ok)
	return token
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	return login(t, r, auth.DefaultAdminUsername, auth.DefaultAdminPassword)
}

// registerCompany creates a company user through the admin account and
// returns a logged-in token for it.
func registerCompany(t *testing.T, r *gin.Engine, username string, companyID uint) string {
	t.Helper()

	adminToken := loginAdmin(t, r)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, gin.H{
		"username":   username,
		"password":   "password1",
		"email":      username + "@example.com",
		"role":       "company",
		"company_id": companyID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return login(t, r, username, "password1")
}
