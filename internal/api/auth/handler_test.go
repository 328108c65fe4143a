package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Librity/gympoint-back-end/config"
	"github.com/Librity/gympoint-back-end/database"
	"github.com/Librity/gympoint-back-end/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&users.User{
		Name:     "GymPoint Admin",
		Email:    "admin@gympoint.com",
		Password: string(hashed),
	}).Error)

	r := gin.New()
	r.POST("/sessions", Login)
	return r
}

func login(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/sessions", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	r := setupTest(t)

	w := login(t, r, gin.H{"email": "admin@gympoint.com", "password": "correct horse"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@gympoint.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTest(t)

	w := login(t, r, gin.H{"email": "admin@gympoint.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginUnknownEmail(t *testing.T) {
	r := setupTest(t)

	w := login(t, r, gin.H{"email": "nobody@gympoint.com", "password": "correct horse"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginValidation(t *testing.T) {
	r := setupTest(t)

	w := login(t, r, gin.H{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
