package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neelammkw/elearning-client/config"
	"github.com/neelammkw/elearning-client/models"
	"github.com/neelammkw/elearning-client/session"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &config.Config{APIBaseURL: baseURL, RequestTimeout: 5 * time.Second}
	return NewClient(cfg, session.Anonymous(), nil)
}

// Read side of the cache: a second identical read is served from the cache
// with no network round trip.
func TestGetCachesUntilInvalidated(t *testing.T) {
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/get-all-courses", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"courses": []models.Course{{ID: "c1", Name: "Go"}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient(t, srv.URL)
	courses := NewCoursesAPI(client)
	ctx := context.Background()

	first, err := courses.GetAllCourses(ctx)
	require.NoError(t, err)
	second, err := courses.GetAllCourses(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "second read must hit the cache")
}

// Write side of the cache: a mutation invalidates its tags, so the next read
// refetches.
func TestMutationInvalidatesTag(t *testing.T) {
	var listHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/get-all-courses", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&listHits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "courses": []models.Course{}})
	})
	mux.HandleFunc("/delete-course/c1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient(t, srv.URL)
	courses := NewCoursesAPI(client)
	ctx := context.Background()

	_, err := courses.GetAllCourses(ctx)
	require.NoError(t, err)
	require.NoError(t, courses.DeleteCourse(ctx, "c1"))

	_, err = courses.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&listHits), "delete must invalidate the courses tag")
}

func TestMutationFailureKeepsCache(t *testing.T) {
	var listHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/get-all-courses", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&listHits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "courses": []models.Course{}})
	})
	mux.HandleFunc("/delete-course/c1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not allowed"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient(t, srv.URL)
	courses := NewCoursesAPI(client)
	ctx := context.Background()

	_, err := courses.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Error(t, courses.DeleteCourse(ctx, "c1"))

	_, err = courses.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&listHits), "failed mutation must not invalidate")
}

func TestGetRetriesServerErrors(t *testing.T) {
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/get-all-courses", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "courses": []models.Course{{ID: "c1"}}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	courses := NewCoursesAPI(testClient(t, srv.URL))
	out, err := courses.GetAllCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.EqualValues(t, 3, atomic.LoadInt32(&hits))
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/get-all-courses", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "No courses"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	courses := NewCoursesAPI(testClient(t, srv.URL))
	_, err := courses.GetAllCourses(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "4xx must not be retried")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "No courses", apiErr.Message)
}

func TestGetAllOrdersToleratesBothShapes(t *testing.T) {
	shapes := map[string]interface{}{
		"bare array": []models.Order{{ID: "o1"}, {ID: "o2"}},
		"wrapped": map[string]interface{}{
			"success": true,
			"orders":  []models.Order{{ID: "o1"}, {ID: "o2"}},
		},
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/get-orders", func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(body)
			})
			srv := httptest.NewServer(mux)
			defer srv.Close()

			orders := NewOrdersAPI(testClient(t, srv.URL))
			out, err := orders.GetAllOrders(context.Background())
			require.NoError(t, err)
			require.Len(t, out, 2)
			assert.Equal(t, "o1", out[0].ID)
		})
	}
}

func TestUpdateOrderStatusOptimisticPatchAndRollback(t *testing.T) {
	order := models.Order{
		ID:          "o1",
		PaymentInfo: models.PaymentInfo{ID: "pi_1", Status: models.OrderPending},
	}
	var rejectUpdate bool

	mux := http.NewServeMux()
	mux.HandleFunc("/get-order/o1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"order": order})
	})
	mux.HandleFunc("/update-order-status/o1", func(w http.ResponseWriter, r *http.Request) {
		if rejectUpdate {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "Order already settled"})
			return
		}
		order.PaymentInfo.Status = models.OrderRefunded
		json.NewEncoder(w).Encode(order)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient(t, srv.URL)
	orders := NewOrdersAPI(client)
	ctx := context.Background()

	// Prime the single-order cache entry.
	got, err := orders.GetOrder(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, models.OrderPending, got.PaymentInfo.Status)

	// Rejected update: the optimistic patch must be rolled back, so a
	// cached read still shows the old status.
	rejectUpdate = true
	_, err = orders.UpdateOrderStatus(ctx, "o1", models.OrderRefunded)
	require.Error(t, err)

	got, err = orders.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.PaymentInfo.Status, "rollback must restore the cached body")

	// Accepted update: the orders tag is invalidated, the next read is a
	// real fetch of the new state.
	rejectUpdate = false
	updated, err := orders.UpdateOrderStatus(ctx, "o1", models.OrderRefunded)
	require.NoError(t, err)
	assert.Equal(t, models.OrderRefunded, updated.PaymentInfo.Status)

	got, err = orders.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderRefunded, got.PaymentInfo.Status)
}

func TestErrorMessagePrefersServerMessage(t *testing.T) {
	err := &APIError{StatusCode: 400, Message: "Course name is required"}
	assert.Equal(t, "Course name is required", ErrorMessage(err, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(assert.AnError, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(&APIError{StatusCode: 500}, "fallback"))
}

func TestServerMessagePrefersMessageOverError(t *testing.T) {
	assert.Equal(t, "a", serverMessage([]byte(`{"message":"a","error":"b"}`)))
	assert.Equal(t, "b", serverMessage([]byte(`{"error":"b"}`)))
	assert.Equal(t, "", serverMessage([]byte(`not json`)))
}
