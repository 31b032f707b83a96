package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func protectedStack(svc jwt.Service, adminOnly bool) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var h http.Handler = next
	if adminOnly {
		h = AdminOnly(h)
	}
	h = AuthRequired(svc.JWTAuth())(h)
	return jwtauth.Verifier(svc.JWTAuth())(h)
}

func accessToken(t *testing.T, svc jwt.Service, role string) string {
	employeeID := "e1"
	token, _, err := svc.GenerateAccessToken("u1", "jane@example.com", &employeeID, role)
	require.NoError(t, err)
	return token
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService(testSecret, "1h")
	handler := protectedStack(svc, false)

	t.Run("valid access token passes", func(t *testing.T) {
		rec := doRequest(handler, accessToken(t, svc, jwt.RoleEmployee))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := doRequest(handler, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		rec := doRequest(handler, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-access token type is unauthorized", func(t *testing.T) {
		_, token, err := svc.JWTAuth().Encode(map[string]interface{}{
			"user_id": "u1",
			"role":    jwt.RoleEmployee,
			"type":    "refresh",
		})
		require.NoError(t, err)
		rec := doRequest(handler, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	svc := jwt.NewJWTService(testSecret, "1h")
	handler := protectedStack(svc, true)

	t.Run("admin role passes", func(t *testing.T) {
		rec := doRequest(handler, accessToken(t, svc, jwt.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("employee role is forbidden", func(t *testing.T) {
		rec := doRequest(handler, accessToken(t, svc, jwt.RoleEmployee))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
