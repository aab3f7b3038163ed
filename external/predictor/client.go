package predictor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/courtside/internal/domain/monitoring"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL        = "http://localhost:8000"
	defaultTimeout        = 20 * time.Second
	defaultRetryBackoff   = time.Second
	defaultModelsCacheTTL = 5 * time.Minute
	maxResponseBodySize   = 6 << 20
	totalCountHeader      = "X-Total-Count"
)

var (
	errPredictorTransient = crerr.New("prediction service transient failure")
	errPredictorAuth      = crerr.New("prediction service rejected credentials")
)

var predictorTracer = otel.Tracer("courtside/external/predictor")

var _ usecase.DataPort = (*Client)(nil)

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Username       string
	Password       string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	TokenTTL       time.Duration
	ModelsCacheTTL time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the prediction and statistics service.
type Client struct {
	http         *fasthttp.Client
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       singleflight.Group
	auth         *tokenSource
	models       *cache.Store[[]monitoring.ModelInfo]
	now          func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("predictor")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "courtside",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	modelsTTL := cfg.ModelsCacheTTL
	if modelsTTL <= 0 {
		modelsTTL = defaultModelsCacheTTL
	}

	c := &Client{
		http:         httpClient,
		baseURL:      baseURL,
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		models:       cache.NewStore[[]monitoring.ModelInfo](modelsTTL),
		now:          time.Now,
	}
	c.auth = newTokenSource(c, cfg.Username, cfg.Password, cfg.TokenTTL)
	return c
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
	accept string
}

type response struct {
	status     int
	body       []byte
	totalCount *int
}

// getJSON deduplicates identical in-flight GETs and decodes the shared body into target.
// The shared call runs on a detached context bounded by sharedCallBudget; each caller
// still returns on its own ctx.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) (response, error) {
	key := path + "?" + query.Encode()
	ch := c.flight.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.sharedCallBudget())
		defer cancel()
		return c.do(callCtx, request{method: fasthttp.MethodGet, path: path, query: query, auth: true})
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return response{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return response{}, res.Err
	}
	resp, ok := res.Val.(response)
	if !ok {
		return response{}, fmt.Errorf("unexpected response payload type %T", res.Val)
	}
	if err := decode(resp.body, target); err != nil {
		return response{}, err
	}
	return resp, nil
}

// sharedCallBudget covers every attempt send may make, including one token refresh.
func (c *Client) sharedCallBudget() time.Duration {
	attempts := time.Duration(c.maxRetries + 2)
	backoff := time.Duration(c.maxRetries*(c.maxRetries+1)/2) * c.retryBackoff
	return attempts*c.timeout + backoff
}

func (c *Client) postJSON(ctx context.Context, path string, body, target any) error {
	resp, err := c.do(ctx, request{method: fasthttp.MethodPost, path: path, body: body, auth: true})
	if err != nil {
		return err
	}
	return decode(resp.body, target)
}

func decode(raw []byte, target any) error {
	if target == nil {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode prediction service payload: %w", err)
	}
	return nil
}

// do runs one logical call through the breaker. Only transient failures count against it.
func (c *Client) do(ctx context.Context, r request) (response, error) {
	ctx, span := predictorTracer.Start(ctx, "predictor "+r.method+" "+r.path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var out response
	err := c.breaker.Do(func() error {
		var sendErr error
		out, sendErr = c.send(ctx, r)
		return sendErr
	}, isCircuitFailure)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "predictor circuit breaker rejected request", "path", r.path, "state", c.breaker.State())
		return response{}, fmt.Errorf("%w: prediction service is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		span.RecordError(err)
		return response{}, err
	}
	span.SetAttributes(attribute.Int("http.status_code", out.status))
	return out, nil
}

// send retries transient failures with linear backoff. A rejected bearer token is refreshed once.
func (c *Client) send(ctx context.Context, r request) (response, error) {
	var payload []byte
	if r.body != nil {
		encoded, err := sonic.Marshal(r.body)
		if err != nil {
			return response{}, fmt.Errorf("encode request body: %w", err)
		}
		payload = encoded
	}

	reauthenticated := false
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.roundTrip(ctx, r, payload)
		if err != nil && r.auth && !reauthenticated && c.auth.enabled() && crerr.Is(err, errPredictorAuth) {
			reauthenticated = true
			c.auth.invalidate()
			resp, err = c.roundTrip(ctx, r, payload)
		}
		if err == nil {
			return resp, nil
		}
		if !isCircuitFailure(err) {
			return response{}, err
		}
		lastErr = err

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return response{}, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "predictor request failed", "method", r.method, "path", r.path, "error", lastErr)
	return response{}, lastErr
}

func (c *Client) roundTrip(ctx context.Context, r request, payload []byte) (response, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.buildURL(r.path, r.query))
	req.Header.SetMethod(r.method)
	accept := r.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set(fasthttp.HeaderAccept, accept)
	if payload != nil {
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}
	if r.auth {
		token, err := c.auth.token(ctx)
		if err != nil {
			return response{}, err
		}
		if token != "" {
			req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
		}
	}

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return response{}, ctxErr
		}
		return response{}, crerr.Mark(crerr.Wrapf(err, "%s %s", r.method, r.path), errPredictorTransient)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < 200 || status >= 300 {
		return response{}, statusError(status, body)
	}

	out := response{status: status, body: body}
	if raw := resp.Header.Peek(totalCountHeader); len(raw) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(string(raw))); err == nil && n >= 0 {
			out.totalCount = &n
		}
	}
	return out, nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := c.now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func (c *Client) buildURL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded := query.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}
