package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(url, 2*time.Second, time.Millisecond, nil)
}

func TestListProductsDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"_id": "p1", "name": "Ruby Ring", "originalPrice": 100},
			},
		})
	}))
	defer srv.Close()

	products, err := testClient(srv.URL).ListProducts(context.Background(), Session{Token: "tok"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Ruby Ring", products[0].Name)
}

func TestUnauthorizedBecomesSessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "jwt expired"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ListProducts(context.Background(), Session{Token: "stale"})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestReadRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []map[string]interface{}{{"_id": "p1", "name": "Ruby Ring"}},
		})
	}))
	defer srv.Close()

	products, err := testClient(srv.URL).ListProducts(context.Background(), Session{})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "two retries after the initial attempt")
}

func TestReadGivesUpAfterCappedRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ListProducts(context.Background(), Session{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Product not found"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetProduct(context.Background(), Session{}, "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMutationsAreNeverRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := testClient(srv.URL).DeleteProduct(context.Background(), Session{}, "p1")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFalseEnvelopeIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "backend said no"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ListProducts(context.Background(), Session{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "backend said no", apiErr.Message)
}

func TestUnconfiguredClient(t *testing.T) {
	_, err := testClient("").ListProducts(context.Background(), Session{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUpdateOrderStatusSendsBody(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/o1", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	err := testClient(srv.URL).UpdateOrderStatus(context.Background(), Session{Token: "tok"}, "o1", "shipped")
	require.NoError(t, err)
	assert.Equal(t, "shipped", received["status"])
}

func TestListBookingsPassesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/booking-call", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []map[string]interface{}{{"_id": "b1", "name": "Priya", "status": "Pending"}},
			"pagination": map[string]interface{}{
				"currentPage": 2, "totalPages": 4, "totalBookings": 31, "limit": 10,
				"hasNext": true, "hasPrev": true,
			},
		})
	}))
	defer srv.Close()

	bookings, pagination, err := testClient(srv.URL).ListBookings(context.Background(), Session{}, 2, 10)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 31, pagination.TotalBookings)
	assert.True(t, pagination.HasNext)
}
