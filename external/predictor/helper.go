package predictor

import (
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
)

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errPredictorTransient)
}

func isRetryableStatus(status int) bool {
	switch status {
	case fasthttp.StatusRequestTimeout,
		fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// statusError carries the service's own detail text so pages can show it verbatim.
func statusError(status int, body []byte) error {
	err := crerr.Newf("%s (status %d)", detailOf(status, body), status)
	switch {
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return crerr.Mark(err, errPredictorAuth)
	case isRetryableStatus(status):
		return crerr.Mark(err, errPredictorTransient)
	default:
		return err
	}
}

func detailOf(status int, body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := sonic.Unmarshal(body, &payload); err == nil {
		if detail, ok := payload.Detail.(string); ok && strings.TrimSpace(detail) != "" {
			return strings.TrimSpace(detail)
		}
	}
	if abbreviated := abbreviateBody(body); abbreviated != "" && !strings.HasPrefix(abbreviated, "{") {
		return abbreviated
	}
	return fasthttp.StatusMessage(status)
}

func abbreviateBody(raw []byte) string {
	const limit = 240
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

// timeLayouts covers RFC 3339 and the naive isoformat the service emits for some fields.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
