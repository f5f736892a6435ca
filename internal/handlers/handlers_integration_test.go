package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopit/internal/handlers"
	"shopit/internal/middleware"
	"shopit/internal/repositories"
	"shopit/internal/services"
)

// setupApp wires a full Fiber app over in-memory storage, the seeded catalog
// and the seeded credential directory, mirroring the wiring in main.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	storage := repositories.NewMemoryStorage()

	catalog := repositories.NewMemoryCatalog()
	repositories.SeedCatalog(catalog)

	directory := repositories.NewMemoryUserDirectory()
	require.NoError(t, repositories.SeedUserDirectory(directory))

	cartService := services.NewCartService(catalog, storage)
	authService := services.NewAuthService(directory, storage, nil, "test_jwt_secret")

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewProductHandler(catalog).RegisterRoutes(apiV1)
	handlers.NewCartHandler(cartService).RegisterRoutes(apiV1)
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewAccountHandler(authService).RegisterRoutes(protectedRoutes)
	handlers.NewOrderHandler(authService).RegisterRoutes(protectedRoutes)
	handlers.NewCheckoutHandler(cartService, authService).RegisterRoutes(protectedRoutes)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

func doRequestList(t *testing.T, app *fiber.App, method, path, token string) (int, []interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload []interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, payload := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    repositories.DemoUserEmail,
		"password": repositories.DemoUserPassword,
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestProducts(t *testing.T) {
	app := setupApp(t)

	status, products := doRequestList(t, app, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, products, 16)

	status, product := doRequest(t, app, http.MethodGet, "/api/v1/products/7", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sony WH-1000XM4 Wireless Headphones", product["name"])

	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	// Wrong password
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    repositories.DemoUserEmail,
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Valid login
	token := login(t, app)

	// Registration with a taken email
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Imposter",
		"email":    repositories.DemoUserEmail,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, status)

	// Fresh registration
	status, payload := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Jane Roe",
		"email":    "jane@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, payload["token"])

	// Old token still validates for protected routes
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/account/profile", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthValidation(t *testing.T) {
	app := setupApp(t)

	status, payload := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "J",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", payload["message"])
}

func TestCartFlow(t *testing.T) {
	app := setupApp(t)

	// The cart works without authentication
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", map[string]interface{}{
		"productId": "1",
		"quantity":  2,
	})
	assert.Equal(t, http.StatusCreated, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", map[string]interface{}{
		"productId": "7",
	})
	assert.Equal(t, http.StatusCreated, status)

	status, cart := doRequest(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, cart["itemCount"])
	assert.EqualValues(t, 2*44990+19990, cart["subtotal"])

	// Quantity overwrite, then removal via zero
	status, _ = doRequest(t, app, http.MethodPut, "/api/v1/cart/items/1", "", map[string]int{"quantity": 1})
	assert.Equal(t, http.StatusOK, status)
	status, _ = doRequest(t, app, http.MethodPut, "/api/v1/cart/items/7", "", map[string]int{"quantity": 0})
	assert.Equal(t, http.StatusOK, status)

	status, cart = doRequest(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, cart["itemCount"])

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusOK, status)
	status, cart = doRequest(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, cart["itemCount"])
}

func TestCheckoutFlow(t *testing.T) {
	app := setupApp(t)

	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", map[string]interface{}{
		"productId": "1",
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, status)

	checkoutBody := map[string]interface{}{
		"paymentMethod": "UPI",
		"shippingAddress": map[string]interface{}{
			"name":       "Home",
			"street":     "123 Main St",
			"city":       "Mumbai",
			"state":      "Maharashtra",
			"postalCode": "400001",
			"country":    "India",
		},
	}

	// Checkout requires authentication
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/checkout", "", checkoutBody)
	assert.Equal(t, http.StatusUnauthorized, status)

	token := login(t, app)

	status, payload := doRequest(t, app, http.MethodPost, "/api/v1/checkout", token, checkoutBody)
	require.Equal(t, http.StatusCreated, status)
	orderID, _ := payload["orderId"].(string)
	require.NotEmpty(t, orderID)

	// The cart is cleared after a successful checkout
	status, cart := doRequest(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, cart["itemCount"])

	// The demo user had two orders; the new one makes three
	status, orders := doRequestList(t, app, http.MethodGet, "/api/v1/orders", token)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, orders, 3)

	status, order := doRequest(t, app, http.MethodGet, "/api/v1/orders/"+orderID, token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pending", order["status"])
	assert.EqualValues(t, 2*44990, order["total"])

	// An empty cart cannot be checked out
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/checkout", token, checkoutBody)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestOrderStatusFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", map[string]interface{}{"productId": "7"})
	require.Equal(t, http.StatusCreated, status)

	status, payload := doRequest(t, app, http.MethodPost, "/api/v1/checkout", token, map[string]interface{}{
		"paymentMethod": "Credit Card",
		"shippingAddress": map[string]interface{}{
			"name": "Home", "street": "123 Main St", "city": "Mumbai",
			"state": "Maharashtra", "postalCode": "400001", "country": "India",
		},
	})
	require.Equal(t, http.StatusCreated, status)
	orderID := payload["orderId"].(string)

	status, _ = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%s/status", orderID), token, map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusOK, status)

	status, tracking := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/%s/tracking", orderID), token, nil)
	assert.Equal(t, http.StatusOK, status)
	events, _ := tracking["trackingEvents"].([]interface{})
	assert.Len(t, events, 2)

	// Shipped orders cannot be cancelled
	status, _ = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%s/status", orderID), token, map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, status)

	// Unknown status and unknown order
	status, _ = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%s/status", orderID), token, map[string]string{"status": "returned"})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = doRequest(t, app, http.MethodPatch, "/api/v1/orders/no-such-order/status", token, map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWishlistFlow(t *testing.T) {
	app := setupApp(t)

	// Wishlist routes require authentication
	status, _ := doRequest(t, app, http.MethodGet, "/api/v1/wishlist", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	token := login(t, app)

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/wishlist", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["wishlist"], 2)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/wishlist/3", token, nil)
	assert.Equal(t, http.StatusCreated, status)
	// Adding again keeps exactly one occurrence
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/wishlist/3", token, nil)
	assert.Equal(t, http.StatusCreated, status)

	status, payload = doRequest(t, app, http.MethodGet, "/api/v1/wishlist", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["wishlist"], 3)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/wishlist/3", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, payload = doRequest(t, app, http.MethodGet, "/api/v1/wishlist", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["wishlist"], 2)
}

func TestAddressFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	status, created := doRequest(t, app, http.MethodPost, "/api/v1/account/addresses", token, map[string]interface{}{
		"name": "Work", "street": "42 Office Rd", "city": "Pune",
		"state": "Maharashtra", "postalCode": "411001", "country": "India",
	})
	require.Equal(t, http.StatusCreated, status)
	addressID := created["id"].(string)

	status, _ = doRequest(t, app, http.MethodPut, "/api/v1/account/addresses/"+addressID+"/default", token, nil)
	assert.Equal(t, http.StatusOK, status)

	// Exactly one default after the switch
	status, addresses := doRequestList(t, app, http.MethodGet, "/api/v1/account/addresses", token)
	assert.Equal(t, http.StatusOK, status)
	defaults := 0
	for _, a := range addresses {
		if a.(map[string]interface{})["isDefault"] == true {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/account/addresses/"+addressID, token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/account/addresses/"+addressID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
