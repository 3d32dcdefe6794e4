// internal/auth/jwks.go
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

const (
	defaultJWKSTTL        = 15 * time.Minute
	defaultJWKSTimeout    = 10 * time.Second
	defaultUnknownKIDWait = time.Minute
)

// JWKSCache holds the identity provider's signing keys. The set is refetched on
// the first lookup after the TTL, after Invalidate, and when a token names an
// unknown kid (at most once per minute). A failed fetch keeps the last good set.
type JWKSCache struct {
	uri        string
	client     *http.Client
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger
	store      jwkset.Storage
	unknownKID *rate.Limiter

	reload sync.Mutex
	mu     sync.RWMutex
	kf     keyfunc.Keyfunc
	loaded time.Time
}

// NewJWKSCache fetches the key set at uri. A nil client and a zero ttl select
// defaults. An unreachable endpoint is logged, not returned.
func NewJWKSCache(uri string, client *http.Client, ttl time.Duration, logger *slog.Logger) (*JWKSCache, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultJWKSTimeout}
	}
	if ttl <= 0 {
		ttl = defaultJWKSTTL
	}
	c := &JWKSCache{
		uri:        uri,
		client:     client,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger.With("component", "jwks"),
		store:      jwkset.NewMemoryStorage(),
		unknownKID: rate.NewLimiter(rate.Every(defaultUnknownKIDWait), 1),
	}
	if err := c.load(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// Keyfunc returns a jwt.Keyfunc that resolves signing keys by kid.
func (c *JWKSCache) Keyfunc(ctx context.Context) jwt.Keyfunc {
	return c.current(ctx).KeyfuncCtx(ctx)
}

// Invalidate refetches the key set now.
func (c *JWKSCache) Invalidate(ctx context.Context) error {
	c.reload.Lock()
	defer c.reload.Unlock()
	return c.load(ctx)
}

func (c *JWKSCache) current(ctx context.Context) keyfunc.Keyfunc {
	if kf, ok := c.fresh(); ok {
		return kf
	}

	c.reload.Lock()
	defer c.reload.Unlock()
	// Another lookup may have reloaded while we waited.
	if kf, ok := c.fresh(); ok {
		return kf
	}
	if err := c.load(ctx); err != nil {
		c.logger.WarnContext(ctx, "Failed to reload JWKS", "url", c.uri, "error", err)
	}
	kf, _ := c.fresh()
	return kf
}

func (c *JWKSCache) fresh() (keyfunc.Keyfunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kf, c.now().Sub(c.loaded) < c.ttl
}

// load fetches into the shared storage and swaps in a new keyfunc. Must be
// called with reload held, except from the constructor.
func (c *JWKSCache) load(ctx context.Context) error {
	remote, err := jwkset.NewStorageFromHTTP(c.uri, jwkset.HTTPClientStorageOptions{
		Client:                    c.client,
		Ctx:                       ctx,
		HTTPTimeout:               defaultJWKSTimeout,
		NoErrorReturnFirstHTTPReq: true,
		RefreshErrorHandler: func(ctx context.Context, err error) {
			c.logger.WarnContext(ctx, "Failed to fetch JWKS", "url", c.uri, "error", err)
		},
		Storage: c.store,
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS storage: %w", err)
	}

	storage, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{c.uri: remote},
		RateLimitWaitMax:  time.Second,
		RefreshUnknownKID: c.unknownKID,
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS client: %w", err)
	}

	kf, err := keyfunc.New(keyfunc.Options{Storage: storage})
	if err != nil {
		return fmt.Errorf("failed to create keyfunc: %w", err)
	}

	c.mu.Lock()
	c.kf, c.loaded = kf, c.now()
	c.mu.Unlock()
	return nil
}
