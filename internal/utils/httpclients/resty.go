// Package httpclients builds the resty clients used for outbound calls.
package httpclients

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// New returns a resty client with a bounded timeout and middleware that logs
// every outbound call under the given client name. Completed calls are
// logged at debug with status and latency; transport-level failures go
// through the error hook instead.
func New(name string, timeout time.Duration, log zerolog.Logger) *resty.Client {
	clientLog := log.With().Str("client", name).Logger()

	client := resty.New().SetTimeout(timeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		clientLog.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("latency", resp.Time()).
			Msg("HTTP client request")
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		clientLog.Debug().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("HTTP client request failed")
	})

	return client
}
