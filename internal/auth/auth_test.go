// internal/auth/auth_test.go
package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/database"
	"portfolio-api/internal/database/memstore"
)

type jwksServer struct {
	*httptest.Server
	hits   atomic.Int32
	status atomic.Int32

	mu   sync.Mutex
	keys map[string]*rsa.PublicKey
}

func newJWKSServer(t *testing.T, keys map[string]*rsa.PublicKey) *jwksServer {
	t.Helper()
	s := &jwksServer{keys: make(map[string]*rsa.PublicKey)}
	for kid, pub := range keys {
		s.keys[kid] = pub
	}
	s.status.Store(http.StatusOK)
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if code := int(s.status.Load()); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		set := map[string][]map[string]string{"keys": {}}
		s.mu.Lock()
		for kid, pub := range s.keys {
			set["keys"] = append(set["keys"], map[string]string{
				"kty": "RSA",
				"kid": kid,
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			})
		}
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *jwksServer) setKey(kid string, pub *rsa.PublicKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[kid] = pub
}

func newTestCache(t *testing.T, srv *jwksServer, ttl time.Duration) *JWKSCache {
	t.Helper()
	cache, err := NewJWKSCache(srv.URL, srv.Client(), ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return cache
}

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(sub string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"some-other-frontend"},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email:     "grace@example.com",
		FirstName: "Grace",
	}
}

func TestJWKSCache(t *testing.T) {
	ctx := context.Background()
	key := generateKey(t)

	t.Run("fetches once and serves from memory", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		verifier := NewVerifier(newTestCache(t, srv, time.Hour))
		assert.Equal(t, int32(1), srv.hits.Load())

		for i := 0; i < 3; i++ {
			_, err := verifier.Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))
			require.NoError(t, err)
		}

		assert.Equal(t, int32(1), srv.hits.Load())
	})

	t.Run("refetches when the provider rotates keys", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		verifier := NewVerifier(newTestCache(t, srv, time.Hour))

		_, err := verifier.Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))
		require.NoError(t, err)

		rotated := generateKey(t)
		srv.setKey("k2", &rotated.PublicKey)
		claims, err := verifier.Verify(ctx, signToken(t, rotated, "k2", validClaims("user_456")))

		require.NoError(t, err)
		assert.Equal(t, "user_456", claims.Subject)
		assert.Equal(t, int32(2), srv.hits.Load())
	})

	t.Run("unknown kid refetches are rate limited", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		verifier := NewVerifier(newTestCache(t, srv, time.Hour))

		_, err := verifier.Verify(ctx, signToken(t, key, "nope", validClaims("user_123")))
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwkset.ErrKeyNotFound)
		assert.Equal(t, int32(2), srv.hits.Load())

		_, err = verifier.Verify(ctx, signToken(t, key, "still-nope", validClaims("user_123")))
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, int32(2), srv.hits.Load())
	})

	t.Run("refetches after the ttl", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		cache := newTestCache(t, srv, time.Minute)
		verifier := NewVerifier(cache)
		base := cache.loaded
		offset := 30 * time.Second
		cache.now = func() time.Time { return base.Add(offset) }

		_, err := verifier.Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))
		require.NoError(t, err)
		assert.Equal(t, int32(1), srv.hits.Load())

		offset = 2 * time.Minute
		_, err = verifier.Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))
		require.NoError(t, err)
		assert.Equal(t, int32(2), srv.hits.Load())
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		cache := newTestCache(t, srv, time.Hour)

		require.NoError(t, cache.Invalidate(ctx))

		assert.Equal(t, int32(2), srv.hits.Load())
	})

	t.Run("keeps the last key set when a refresh fails", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		cache := newTestCache(t, srv, time.Hour)
		srv.status.Store(http.StatusServiceUnavailable)

		require.NoError(t, cache.Invalidate(ctx))
		_, err := NewVerifier(cache).Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))

		require.NoError(t, err)
		assert.Equal(t, int32(2), srv.hits.Load())
	})

	t.Run("endpoint down at startup", func(t *testing.T) {
		srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
		srv.status.Store(http.StatusInternalServerError)
		cache := newTestCache(t, srv, 0)

		_, err := NewVerifier(cache).Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, defaultJWKSTTL, cache.ttl)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewJWKSCache("not a url", nil, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

		assert.Error(t, err)
	})
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	key := generateKey(t)
	srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
	verifier := NewVerifier(newTestCache(t, srv, time.Hour))

	t.Run("valid token without matching audience", func(t *testing.T) {
		claims, err := verifier.Verify(ctx, signToken(t, key, "k1", validClaims("user_123")))

		require.NoError(t, err)
		assert.Equal(t, "user_123", claims.Subject)
		assert.Equal(t, "grace@example.com", claims.Email)
		assert.Equal(t, "Grace", claims.DisplayName())
	})

	t.Run("expired token", func(t *testing.T) {
		c := validClaims("user_123")
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := verifier.Verify(ctx, signToken(t, key, "k1", c))

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("signed with another key", func(t *testing.T) {
		other := generateKey(t)

		_, err := verifier.Verify(ctx, signToken(t, other, "k1", validClaims("user_123")))

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signToken(t, key, "k1", validClaims("")))

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("hmac token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("user_123"))
		token.Header["kid"] = "k1"
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, signed)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_DisplayName(t *testing.T) {
	assert.Equal(t, "Grace Hopper", (&Claims{Name: "Grace Hopper", FirstName: "Grace"}).DisplayName())
	assert.Equal(t, "Grace", (&Claims{FirstName: "Grace"}).DisplayName())
	assert.Equal(t, "User", (&Claims{}).DisplayName())

	var empty Claims
	require.NoError(t, json.Unmarshal([]byte(`{"sub":"u","name":"","first_name":"Grace"}`), &empty))
	assert.Equal(t, "Grace", empty.DisplayName())
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	key := generateKey(t)
	srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})
	verifier := NewVerifier(newTestCache(t, srv, time.Hour))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no token is anonymous", func(t *testing.T) {
		r := NewResolver(verifier, memstore.New(), logger)

		user, err := r.Resolve(ctx, "")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("invalid token is anonymous", func(t *testing.T) {
		r := NewResolver(verifier, memstore.New(), logger)

		user, err := r.Resolve(ctx, "not.a.token")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("creates the user once", func(t *testing.T) {
		store := memstore.New()
		r := NewResolver(verifier, store, logger)
		token := signToken(t, key, "k1", validClaims("user_abc"))

		first, err := r.Resolve(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, "user_abc", first.ExternalID)
		assert.Equal(t, "Grace", first.Name)
		assert.False(t, first.IsAdmin)

		store.SetAdmin("user_abc")
		second, err := r.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.IsAdmin)
	})

	t.Run("user commits before the request transaction", func(t *testing.T) {
		store := memstore.New()
		r := NewResolver(verifier, store, logger)
		token := signToken(t, key, "k1", validClaims("user_tx"))

		first, err := r.Resolve(ctx, token)
		require.NoError(t, err)
		txErr := store.ExecTx(ctx, func(q database.Querier) error {
			_, err := q.CreateContactMessage(ctx, database.CreateContactMessageParams{SenderName: "Grace"})
			require.NoError(t, err)
			return errors.New("request write failed")
		})
		require.Error(t, txErr)
		assert.Empty(t, store.Messages())

		second, err := r.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		store := memstore.New()
		dbErr := errors.New("connection refused")
		store.FailOn("UpsertUser", dbErr)
		r := NewResolver(verifier, store, logger)

		_, err := r.Resolve(ctx, signToken(t, key, "k1", validClaims("user_abc")))

		assert.ErrorIs(t, err, dbErr)
	})
}
