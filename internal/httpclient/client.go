package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// Config holds settings for the HTTP client.
type Config struct {
	// ConnectTimeout bounds dialing; Timeout bounds the whole request.
	ConnectTimeout time.Duration
	Timeout        time.Duration
	UserAgent      string
	Insecure       bool
	// FollowRedirects controls whether the client chases Location headers
	// itself. The resolver traces hops manually and wants each redirect
	// response surfaced instead.
	FollowRedirects bool
}

// uaRoundTripper wraps a base RoundTripper to set a User-Agent on every
// outgoing request without mutating the caller's request.
type uaRoundTripper struct {
	base      http.RoundTripper
	userAgent string
}

func (u *uaRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if u.base == nil {
		u.base = http.DefaultTransport
	}
	if u.userAgent == "" {
		return u.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", u.userAgent)
	return u.base.RoundTrip(r)
}

// New returns a configured HTTP client.
func New(cfg Config) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}

	client := &http.Client{
		Transport: &uaRoundTripper{
			base:      transport,
			userAgent: cfg.UserAgent,
		},
		Timeout: cfg.Timeout,
	}
	if !cfg.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			// prevent automatic redirects
			return http.ErrUseLastResponse
		}
	}
	return client
}
