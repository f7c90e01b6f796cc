package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserStore struct {
	user *domain.User
}

func (s *stubUserStore) Create(_ context.Context, u *domain.User) error {
	return nil
}

func (s *stubUserStore) GetByAPIKeyHash(_ context.Context, apiKeyHash string) (*domain.User, error) {
	if s.user != nil && s.user.APIKeyHash == apiKeyHash {
		return s.user, nil
	}
	return nil, store.ErrNotFound
}

func TestAPIKeyAuth(t *testing.T) {
	apiKey := "ok_test_key"
	user := &domain.User{
		ID:         uuid.New(),
		Name:       "tester",
		APIKeyHash: HashAPIKey(apiKey),
	}
	users := &stubUserStore{user: user}

	var gotUser *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := APIKeyAuth(users)(next)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/garments", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/garments", nil)
		req.Header.Set("Authorization", apiKey)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/garments", nil)
		req.Header.Set("Authorization", "Bearer ok_wrong_key")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid key resolves the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/garments", nil)
		req.Header.Set("Authorization", "Bearer "+apiKey)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotUser)
		assert.Equal(t, user.ID, gotUser.ID)
	})
}

func TestHashAPIKeyStable(t *testing.T) {
	assert.Equal(t, HashAPIKey("abc"), HashAPIKey("abc"))
	assert.NotEqual(t, HashAPIKey("abc"), HashAPIKey("abd"))
	assert.Len(t, HashAPIKey("abc"), 64)
}
