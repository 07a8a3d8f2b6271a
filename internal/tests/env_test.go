// internal/tests/env_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bicyclezen/bicyclezen-backend/internal/config"
	"github.com/bicyclezen/bicyclezen-backend/internal/database"
	"github.com/bicyclezen/bicyclezen-backend/internal/models"
	"github.com/bicyclezen/bicyclezen-backend/internal/router"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

type testEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 24,
		},
		Payment: config.PaymentConfig{
			Currency: "usd",
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}

	return &testEnv{
		DB:     db,
		Router: router.Initialize(db, cfg),
		Cfg:    cfg,
	}
}

// do runs a request through the full router. A non-empty token is presented
// as a bearer credential.
func (env *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) token(t *testing.T, email string) string {
	t.Helper()

	// router.Initialize installed the test secret already
	token, err := utils.GenerateJWT(email, env.Cfg.JWT.AccessTokenTTL)
	require.NoError(t, err)
	return token
}

func (env *testEnv) createUser(t *testing.T, email string, role models.Role) models.User {
	t.Helper()

	user := models.User{Email: email, Role: role}
	require.NoError(t, env.DB.Create(&user).Error)
	return user
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
