package httpapi

import (
	"net"
	"net/http"
	"strings"
)

const (
	deviceIDHeader   = "X-Device-ID"
	maxOwnerKeyBytes = 128
)

// resolveOwner picks the key recent searches are stored under: an explicit owner, the device
// header, then the client address.
func resolveOwner(r *http.Request, explicit string) string {
	candidates := []string{
		explicit,
		r.Header.Get(deviceIDHeader),
	}
	for _, candidate := range candidates {
		if owner := normalizeOwner(candidate); owner != "" {
			return owner
		}
	}
	if ip := resolveClientIP(r); ip != "" {
		return "ip:" + ip
	}
	return ""
}

func resolveClientIP(r *http.Request) string {
	candidates := []string{
		r.Header.Get("Fly-Client-IP"),
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	}

	for _, candidate := range candidates {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}

	return ""
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.Contains(value, ",") {
		value = strings.TrimSpace(strings.Split(value, ",")[0])
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

func normalizeOwner(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > maxOwnerKeyBytes {
		return ""
	}
	for _, r := range value {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return value
}
