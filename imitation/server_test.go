package imitation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neelammkw/elearning-client/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		RequestTimeout: 5 * time.Second,
	}
}

func setupTestApp() (*fiber.App, *Store) {
	store := NewStore()
	app := NewWithStore(testConfig(), nil, store)
	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
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

	var decoded map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	app, _ := setupTestApp()

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/login", "", fiber.Map{
		"email":    "learner@example.com",
		"password": "learner-password",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["accessToken"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user_learner", user["_id"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _ := setupTestApp()

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/login", "", fiber.Map{
		"email":    "learner@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestGetAllCoursesIsPublic(t *testing.T) {
	app, _ := setupTestApp()

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/get-all-courses", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	courses, ok := body["courses"].([]interface{})
	require.True(t, ok)
	assert.Len(t, courses, 2)
}

func TestCourseContentRequiresAuth(t *testing.T) {
	app, _ := setupTestApp()

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/get-course-content/course_go", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectLearners(t *testing.T) {
	app, _ := setupTestApp()
	token := login(t, app, "learner@example.com", "learner-password")

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/get-orders", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Full purchase round trip: login, open a payment intent, confirm the order,
// then verify enrollment and content access.
func TestPurchaseFlow(t *testing.T) {
	app, store := setupTestApp()
	token := login(t, app, "learner@example.com", "learner-password")

	// Not enrolled before purchase: content is locked.
	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/check-course-enrollment/course_go", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isEnrolled"])

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/get-course-content/course_go", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Open the payment intent.
	resp, body = doRequest(t, app, http.MethodPost, "/api/v1/create-payment-intent", token, fiber.Map{
		"courseId": "course_go",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	clientSecret, _ := body["clientSecret"].(string)
	orderID, _ := body["orderId"].(string)
	require.NotEmpty(t, clientSecret)
	require.NotEmpty(t, orderID)
	assert.Contains(t, clientSecret, "_secret_")

	store.mu.RLock()
	order := store.orders[orderID]
	store.mu.RUnlock()
	require.NotNil(t, order)

	// Confirm the order.
	resp, body = doRequest(t, app, http.MethodPost, "/api/v1/confirm-order", token, fiber.Map{
		"paymentIntentId": order.PaymentInfo.ID,
		"orderId":         orderID,
		"courseId":        "course_go",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	// Enrolled now: content is accessible.
	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/check-course-enrollment/course_go", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["isEnrolled"])

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/get-course-content/course_go", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	content, ok := body["content"].(map[string]interface{})
	require.True(t, ok)
	lectures, ok := content["courseData"].([]interface{})
	require.True(t, ok)
	assert.Len(t, lectures, 2)

	// A completed order and an unread notification exist server-side.
	store.mu.RLock()
	assert.Equal(t, "completed", string(store.orders[orderID].Status))
	notifs := len(store.notifications)
	store.mu.RUnlock()
	assert.Greater(t, notifs, 1)
}

func TestFreeEnrollment(t *testing.T) {
	app, _ := setupTestApp()
	token := login(t, app, "learner@example.com", "learner-password")

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/enroll-course", token, fiber.Map{
		"courseId": "course_intro",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/check-course-enrollment/course_intro", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["isEnrolled"])
}

func TestAdminOrderLifecycle(t *testing.T) {
	app, _ := setupTestApp()
	learner := login(t, app, "learner@example.com", "learner-password")
	admin := login(t, app, "admin@example.com", "admin-password")

	_, body := doRequest(t, app, http.MethodPost, "/api/v1/create-payment-intent", learner, fiber.Map{
		"courseId": "course_go",
	})
	orderID, _ := body["orderId"].(string)
	require.NotEmpty(t, orderID)

	// Invalid status values are rejected.
	resp, body := doRequest(t, app, http.MethodPut, "/api/v1/update-order-status/"+orderID, admin, fiber.Map{
		"status": "shipped",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unknown order status", body["message"])

	resp, body = doRequest(t, app, http.MethodPut, "/api/v1/update-order-status/"+orderID, admin, fiber.Map{
		"status": "refunded",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "refunded", body["status"])

	resp, body = doRequest(t, app, http.MethodDelete, "/api/v1/delete-order/"+orderID, admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/get-order/"+orderID, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// A token stays valid after its user is deleted; every handler resolving the
// caller must answer 401 instead of dereferencing a missing user.
func TestDeletedUserTokenIsRejected(t *testing.T) {
	app, _ := setupTestApp()
	learner := login(t, app, "learner@example.com", "learner-password")
	admin := login(t, app, "admin@example.com", "admin-password")

	resp, body := doRequest(t, app, http.MethodDelete, "/api/v1/delete-user/user_learner", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	resp, body = doRequest(t, app, http.MethodPut, "/api/v1/add-review/course_intro", learner, fiber.Map{
		"rating":  5,
		"comment": "still here?",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])

	resp, body = doRequest(t, app, http.MethodPost, "/api/v1/enroll-course", learner, fiber.Map{
		"courseId": "course_intro",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])

	resp, body = doRequest(t, app, http.MethodPut, "/api/v1/add-question", learner, fiber.Map{
		"courseId":  "course_intro",
		"contentId": "content_intro",
		"question":  "anyone?",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])
}

func TestEngagementEndpoints(t *testing.T) {
	app, _ := setupTestApp()
	token := login(t, app, "learner@example.com", "learner-password")

	// Enroll first so engagement is allowed.
	doRequest(t, app, http.MethodPost, "/api/v1/enroll-course", token, fiber.Map{"courseId": "course_intro"})

	resp, body := doRequest(t, app, http.MethodPut, "/api/v1/add-reaction", token, fiber.Map{
		"courseId":  "course_intro",
		"contentId": "content_intro",
		"reaction":  "like",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	likes, ok := body["likes"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"user_learner"}, likes)

	// Toggling again clears the like.
	resp, body = doRequest(t, app, http.MethodPut, "/api/v1/add-reaction", token, fiber.Map{
		"courseId":  "course_intro",
		"contentId": "content_intro",
		"reaction":  "like",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["likes"])

	resp, body = doRequest(t, app, http.MethodPut, "/api/v1/add-review/course_intro", token, fiber.Map{
		"courseId": "course_intro",
		"rating":   5,
		"comment":  "Great intro",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}
