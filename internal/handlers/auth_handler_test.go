package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-system/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupAPI(t)
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, gin.H{
		"username":   "co1",
		"password":   "password1",
		"email":      "c@x.com",
		"role":       "company",
		"company_id": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "co1", body["username"])
	assert.Equal(t, "company", body["role"])
	assert.Equal(t, float64(5), body["company_id"])
	assert.NotContains(t, w.Body.String(), "password")

	token := login(t, r, "co1", "password1")
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := setupAPI(t)
	adminToken := loginAdmin(t, r)

	payload := gin.H{
		"username":   "co1",
		"password":   "password1",
		"email":      "c@x.com",
		"role":       "company",
		"company_id": 5,
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	payload["email"] = "other@x.com"
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username_already_exists", decodeBody(t, w)["error_code"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := setupAPI(t)
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, gin.H{
		"username": "alice",
		"password": "password1",
		"email":    "same@x.com",
		"role":     "user",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, gin.H{
		"username": "bob",
		"password": "password1",
		"email":    "same@x.com",
		"role":     "user",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_already_exists", decodeBody(t, w)["error_code"])
}

func TestRegisterCompanyWithoutCompanyID(t *testing.T) {
	r, _ := setupAPI(t)
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, gin.H{
		"username": "co1",
		"password": "password1",
		"email":    "c@x.com",
		"role":     "company",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "company_id_required", decodeBody(t, w)["error_code"])
}

func TestRegisterInvalidRole(t *testing.T) {
	r, _ := setupAPI(t)
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken, gin.H{
		"username": "x",
		"password": "password1",
		"email":    "x@x.com",
		"role":     "superadmin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_role", decodeBody(t, w)["error_code"])
}

func TestRegisterRequiresAdmin(t *testing.T) {
	r, _ := setupAPI(t)
	companyToken := registerCompany(t, r, "co1", 5)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", companyToken, gin.H{
		"username": "sneaky",
		"password": "password1",
		"email":    "s@x.com",
		"role":     "user",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "sneaky",
		"password": "password1",
		"email":    "s@x.com",
		"role":     "user",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	r, _ := setupAPI(t)
	registerCompany(t, r, "co1", 5)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "co1",
		"password": "wrong",
	})
	noSuchUser := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, noSuchUser.Code)

	// identical body: username enumeration must be impossible
	assert.Equal(t, wrongPassword.Body.String(), noSuchUser.Body.String())
}

func TestMe(t *testing.T) {
	r, _ := setupAPI(t)
	token := registerCompany(t, r, "co1", 5)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "co1", body["username"])
	assert.Equal(t, string(models.RoleCompany), body["role"])
	assert.Equal(t, float64(5), body["company_id"])
}
