// internal/tests/auth_gate_test.go
package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

func TestAdminRoute_NoToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name": "wheel", "price": 25.0,
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "unauthorized access", resp["message"])
}

func TestAdminRoute_MalformedToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name": "wheel", "price": 25.0,
	}, "garbage")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoute_NonAdminUser(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "bob@x.com", models.RoleUser)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name": "wheel", "price": 25.0,
	}, env.token(t, "bob@x.com"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// A token whose subject has no user record is denied cleanly, the lookup miss
// is not distinguishable from a non-admin role.
func TestAdminRoute_UnknownRequester(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name": "wheel", "price": 25.0,
	}, env.token(t, "ghost@x.com"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoute_AdminAllowed(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root@x.com", models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name": "wheel", "price": 25.0,
	}, env.token(t, "root@x.com"))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthedRoute_NoToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/order", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOpenRoutes_NoToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/product", "/review", "/admin/someone@x.com", "/health", "/"} {
		w := env.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
