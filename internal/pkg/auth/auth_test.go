package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustakdhaan/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	identity := models.Identity{UserID: uuid.New(), Role: models.RoleCoordinator}

	token, err := GenerateToken(identity)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
}

func TestParseToken_Rejects(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: uuid.New(),
		Role:   models.RoleDonor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString(secretKey)
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: uuid.New(), Role: models.RoleDonor})
	foreignToken, err := foreign.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: models.RoleDonor})
	anonymousToken, err := anonymous.SignedString(secretKey)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":     expiredToken,
		"foreign key": foreignToken,
		"no user id":  anonymousToken,
		"not a token": "abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(token)
			assert.Error(t, err)
		})
	}
}

func TestCheckJWTMiddleware(t *testing.T) {
	identity := models.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	token, err := GenerateToken(identity)
	require.NoError(t, err)

	var seen models.Identity
	handler := CheckJWTMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "No header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "Not a bearer", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer garbage", expectedStatus: http.StatusForbidden},
		{name: "Valid token", header: "Bearer " + token, expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}

	assert.Equal(t, identity, seen)
}
