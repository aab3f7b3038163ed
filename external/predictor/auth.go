package predictor

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	loginPath       = "/api/auth/login"
	defaultTokenTTL = 25 * time.Minute
	tokenExpirySkew = 30 * time.Second
)

// tokenSource logs in with the configured credentials and caches the bearer token until it
// expires. Without a username requests go out unauthenticated.
type tokenSource struct {
	client   *Client
	username string
	password string
	ttl      time.Duration

	mu        sync.Mutex
	value     string
	expiresAt time.Time
	flight    singleflight.Group
}

func newTokenSource(client *Client, username, password string, ttl time.Duration) *tokenSource {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &tokenSource{
		client:   client,
		username: strings.TrimSpace(username),
		password: password,
		ttl:      ttl,
	}
}

func (s *tokenSource) enabled() bool {
	return s.username != ""
}

func (s *tokenSource) token(ctx context.Context) (string, error) {
	if !s.enabled() {
		return "", nil
	}

	s.mu.Lock()
	if s.value != "" && s.client.now().Before(s.expiresAt) {
		value := s.value
		s.mu.Unlock()
		return value, nil
	}
	s.mu.Unlock()

	out, err, _ := s.flight.Do("login", func() (any, error) {
		return s.login(ctx)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (s *tokenSource) invalidate() {
	s.mu.Lock()
	s.value = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
}

func (s *tokenSource) login(ctx context.Context) (string, error) {
	payload, err := sonic.Marshal(loginRequest{Username: s.username, Password: s.password})
	if err != nil {
		return "", crerr.Wrap(err, "encode login request")
	}

	resp, err := s.client.roundTrip(ctx, request{method: fasthttp.MethodPost, path: loginPath}, payload)
	if err != nil {
		return "", crerr.Wrap(err, "login")
	}

	var decoded loginResponse
	if err := sonic.Unmarshal(resp.body, &decoded); err != nil {
		return "", crerr.Wrap(err, "decode login response")
	}
	token := strings.TrimSpace(decoded.AccessToken)
	if token == "" {
		return "", crerr.New("login response has no access token")
	}

	now := s.client.now()
	expiresAt := now.Add(s.ttl)
	if exp, ok := jwtExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}
	expiresAt = expiresAt.Add(-tokenExpirySkew)

	s.mu.Lock()
	s.value = token
	s.expiresAt = expiresAt
	s.mu.Unlock()

	s.client.logger.DebugContext(ctx, "predictor token refreshed", "expires_at", expiresAt)
	return token, nil
}

// jwtExpiry reads the exp claim without verifying the signature.
func jwtExpiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := sonic.Unmarshal(raw, &claims); err != nil || claims.Exp <= 0 {
		return time.Time{}, false
	}
	return time.Unix(claims.Exp, 0), true
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
