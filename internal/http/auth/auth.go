// Package auth turns bearer tokens into the employee a request acts for.
// There are no permissions: the actor only stamps read and activity logs.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Actor struct {
	EmployeeID string
	Name       string
	StoreCode  string
}

type Claims struct {
	Name  string `json:"name"`
	Store string `json:"store"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

// Tokens issues and validates HS256 actor tokens.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), now: time.Now}
}

func (t *Tokens) Issue(a Actor, ttl time.Duration) (string, error) {
	now := t.now()

	claims := &Claims{
		Name:  a.Name,
		Store: a.StoreCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.EmployeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *Tokens) Validate(raw string) (Actor, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return Actor{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Actor{}, ErrInvalidToken
	}

	return Actor{EmployeeID: claims.Subject, Name: claims.Name, StoreCode: claims.Store}, nil
}

// Middleware rejects requests without a valid "Bearer <token>" header.
func (t *Tokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
			http.Error(w, "authorization header is required", http.StatusUnauthorized)
			return
		}

		actor, err := t.Validate(raw)
		if err != nil {
			http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}
