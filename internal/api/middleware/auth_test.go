package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"waste_tracker/internal/common/security"
	"waste_tracker/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
)

func setupGate(t *testing.T) http.Handler {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: 24 * time.Hour,
	}
	security.InitJWT()

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Group(func(pr chi.Router) {
		pr.Use(Authenticator)
		pr.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			userID, _ := GetUserIDFromContext(r.Context())
			role, _ := GetUserRoleFromContext(r.Context())
			w.Write([]byte(userID + ":" + role))
		})
		pr.Group(func(ar chi.Router) {
			ar.Use(AdminOnly)
			ar.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("admin ok"))
			})
		})
	})
	return r
}

func request(t *testing.T, handler http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticator_MissingToken(t *testing.T) {
	handler := setupGate(t)

	rec := request(t, handler, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "error")
}

func TestAuthenticator_ValidToken(t *testing.T) {
	handler := setupGate(t)

	token, err := security.GenerateToken("42", "operator")
	require.NoError(t, err)

	rec := request(t, handler, "/protected", token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "42:operator", rec.Body.String())
}

func TestAuthenticator_TamperedToken(t *testing.T) {
	handler := setupGate(t)

	token, err := security.GenerateToken("42", "operator")
	require.NoError(t, err)
	tampered := token[:len(token)-2] + pick(token[len(token)-2]) + pick(token[len(token)-1])

	rec := request(t, handler, "/protected", tampered)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	handler := setupGate(t)

	config.AppConfig.JWTExp = -1 * time.Hour
	token, err := security.GenerateToken("42", "operator")
	require.NoError(t, err)
	config.AppConfig.JWTExp = 24 * time.Hour

	rec := request(t, handler, "/protected", token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "expired")
}

func TestAdminOnly(t *testing.T) {
	handler := setupGate(t)

	operatorToken, err := security.GenerateToken("2", "operator")
	require.NoError(t, err)
	rec := request(t, handler, "/admin", operatorToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := security.GenerateToken("1", "admin")
	require.NoError(t, err)
	rec = request(t, handler, "/admin", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin ok", rec.Body.String())
}

// pick returns a base64url character different from c.
func pick(c byte) string {
	if c == 'C' {
		return "D"
	}
	return "C"
}
