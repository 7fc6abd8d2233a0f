package github

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// loggingTransport logs every request going to the API together with the
// remaining rate limit budget. It never delays or retries.
type loggingTransport struct {
	transport http.RoundTripper
}

func (lt *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := lt.transport.RoundTrip(req)
	if err != nil {
		log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).
			Msg("request failed")
		return resp, err
	}

	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Str("ratelimit_remaining", resp.Header.Get("X-RateLimit-Remaining")).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	return resp, nil
}

// newLoggingTransport wraps rt with request logging
func newLoggingTransport(rt http.RoundTripper) *loggingTransport {
	return &loggingTransport{transport: rt}
}
