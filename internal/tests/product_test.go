// internal/tests/product_test.go
package tests

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.Product{Name: "saddle", Price: 30}).Error)
	require.NoError(t, env.DB.Create(&models.Product{Name: "chain", Price: 12.5}).Error)

	w := env.do(t, http.MethodGet, "/product", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decodeJSON(t, w, &products)
	assert.Len(t, products, 2)
}

func TestGetProduct_Absent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/product/"+uuid.NewString(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestGetProduct_BadID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/product/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root@x.com", models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name":          "carbon fork",
		"description":   "700c",
		"price":         199.99,
		"available_qty": 5,
	}, env.token(t, "root@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	decodeJSON(t, w, &created)
	assert.Equal(t, "carbon fork", created.Name)
	assert.Equal(t, 199.99, created.Price)
	assert.Equal(t, 1, created.MinOrderQty)

	w = env.do(t, http.MethodGet, "/product/"+created.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Product
	decodeJSON(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestCreateProduct_RejectsMissingPrice(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root@x.com", models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/product", map[string]interface{}{
		"name": "mystery part",
	}, env.token(t, "root@x.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root@x.com", models.RoleAdmin)

	product := models.Product{Name: "saddle", Price: 30}
	require.NoError(t, env.DB.Create(&product).Error)

	w := env.do(t, http.MethodDelete, "/product/"+product.ID.String(), nil, env.token(t, "root@x.com"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	assert.EqualValues(t, 1, resp["deletedCount"])
}

// Deleting an id that was never stored is a no-op, not an error.
func TestDeleteProduct_AbsentIsZeroAffected(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root@x.com", models.RoleAdmin)

	w := env.do(t, http.MethodDelete, "/product/"+uuid.NewString(), nil, env.token(t, "root@x.com"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	assert.EqualValues(t, 0, resp["deletedCount"])
}
