package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &session.MemStore{}
	return New(srv.URL, tokens), tokens
}

func TestEnvelopeUnwrap(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"farmer-1","name":"สมชาย"}}`))
	})

	farmer, err := Get[models.Farmer](context.Background(), c, "/farmers/farmer-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", farmer.ID)
	assert.Equal(t, "สมชาย", farmer.Name)
}

func TestPaginatedBodyNotUnwrapped(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data":[{"id":"farmer-11","name":"A"},{"id":"farmer-12","name":"B"}],
			"pagination":{"currentPage":2,"totalPages":42,"totalItems":417,"itemsPerPage":10}
		}`))
	})

	page, err := c.ListFarmers(context.Background(), domain.ListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 42, page.Pagination.TotalPages)
	assert.Equal(t, 417, page.Pagination.TotalItems)
}

func TestServerMessagePreferred(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"อีเมลนี้ถูกใช้งานแล้ว","request_id":"req-1"}`))
	})

	_, err := Get[models.Farmer](context.Background(), c, "/farmers/x", nil)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "อีเมลนี้ถูกใช้งานแล้ว", apiErr.Message)
}

func TestNetworkErrorStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := New(srv.URL, &session.MemStore{})
	_, err := Get[models.Farmer](context.Background(), c, "/farmers/x", nil)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, StatusNetwork, apiErr.Status)
	assert.True(t, apiErr.IsNetwork())
}

func TestTimeoutBecomes408(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c.WithTimeout(50 * time.Millisecond)

	_, err := Get[models.Farmer](context.Background(), c, "/farmers/x", nil)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, StatusTimeout, apiErr.Status)
	assert.True(t, apiErr.IsTimeout())
}

func TestNoContentDelete(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.DeleteFarmer(context.Background(), "farmer-1")
	assert.NoError(t, err)
}

func TestBearerHeaderFromTokenStore(t *testing.T) {
	var gotAuth string
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{}}`))
	})
	require.NoError(t, tokens.SetToken("abc"))

	_, err := Get[models.AdminUser](context.Background(), c, "/auth/me", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestLoginSkipsAuthAndStoresToken(t *testing.T) {
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"abc","user":{"userId":"admin-1","name":"Admin","role":"superadmin"}}}`))
	})

	result, err := c.AdminLogin(context.Background(), "admin@dukefarm.io", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "abc", result.Token)
	assert.Equal(t, "admin-1", result.User.UserID)

	require.NoError(t, tokens.SetToken(result.Token))
	assert.Equal(t, "abc", tokens.Token())
}

func TestUnknownStatusForMalformedSuccessBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":`)) // truncated
	})

	_, err := Get[models.Farmer](context.Background(), c, "/farmers/x", nil)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, StatusUnknown, apiErr.Status)
}

func TestTypedUpdatePayloadOnWire(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/farmers/farmer-9", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "สมชาย", body["name"])
		assert.Equal(t, "cage", body["farmType"])
		// The edit snapshot is local form state and must never be sent.
		_, snapshotLeaked := body["Snapshot"]
		assert.False(t, snapshotLeaked)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"farmer-9","name":"สมชาย"}}`))
	})

	farmer, err := c.UpdateFarmer(context.Background(), "farmer-9", forms.UpdateFarmerRequest{
		CreateFarmerRequest: forms.CreateFarmerRequest{
			Name:     "สมชาย",
			Phone:    "0812345678",
			FarmName: "ฟาร์มบ้านนา",
			FarmType: "cage",
		},
		Snapshot: models.Farmer{ID: "farmer-9", Name: "สมชาย เดิม"},
	})
	require.NoError(t, err)
	assert.Equal(t, "farmer-9", farmer.ID)
}
