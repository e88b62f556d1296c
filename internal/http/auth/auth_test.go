package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("s3cret")

	raw, err := tokens.Issue(Actor{EmployeeID: "E-7", Name: "Ana", StoreCode: "MNL-01"}, time.Hour)
	require.NoError(t, err)

	got, err := tokens.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, Actor{EmployeeID: "E-7", Name: "Ana", StoreCode: "MNL-01"}, got)
}

func TestTokens_Validate(t *testing.T) {
	tokens := NewTokens("s3cret")

	expired, err := tokens.Issue(Actor{EmployeeID: "E-7"}, -time.Minute)
	require.NoError(t, err)

	foreign, err := NewTokens("other").Issue(Actor{EmployeeID: "E-7"}, time.Hour)
	require.NoError(t, err)

	noSubject, err := tokens.Issue(Actor{Name: "Ana"}, time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "E-7"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "missing subject", token: noSubject},
		{name: "unsigned", token: none},
		{name: "garbage", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokens("s3cret")

	valid, err := tokens.Issue(Actor{EmployeeID: "E-7", Name: "Ana"}, time.Hour)
	require.NoError(t, err)

	var seen Actor

	h := tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusNoContent},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + valid, wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = Actor{}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "E-7", seen.EmployeeID)
			}
		})
	}
}
