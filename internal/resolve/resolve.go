package resolve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/canpolat/snipr/internal/model"
)

// Resolver follows redirect chains with HEAD requests to find the
// destination behind a shortened URL.
type Resolver struct {
	client   *http.Client
	maxChain int
}

// New creates a Resolver. maxChain bounds the number of hops followed.
func New(client *http.Client, maxChain int) *Resolver {
	return &Resolver{client: client, maxChain: maxChain}
}

// Resolve traces redirects starting from target. The result is valid when
// the chain ends on a status in [200,400) with a non-empty final URL;
// anything else sets Error instead of Output.
func (r *Resolver) Resolve(ctx context.Context, target string) model.Result {
	res := model.Result{Op: "unshorten", Input: target, StartedAt: time.Now()}
	defer func() {
		res.DurationMs = time.Since(res.StartedAt).Milliseconds()
	}()

	current := target
	seen := make(map[string]struct{})

	for i := 0; i < r.maxChain; i++ {
		if _, ok := seen[current]; ok {
			res.Error = fmt.Sprintf("redirect loop detected at %s", current)
			return res
		}
		seen[current] = struct{}{}

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, current, nil)
		if err != nil {
			res.Error = fmt.Sprintf("invalid URL %q: %v", current, err)
			return res
		}
		start := time.Now()
		resp, err := r.client.Do(req)
		if err != nil {
			res.Error = fmt.Sprintf("could not unshorten URL (network issue): %v", err)
			return res
		}
		hop := model.Hop{Index: i, URL: current, Status: resp.StatusCode, TimeMs: time.Since(start).Milliseconds()}
		u := resp.Request.URL

		if resp.StatusCode >= 300 && resp.StatusCode < 400 {
			loc := resp.Header.Get("Location")
			_ = resp.Body.Close()
			if loc == "" {
				hop.Final = true
				res.Chain = append(res.Chain, hop)
				res.Status = resp.StatusCode
				res.Error = fmt.Sprintf("redirect without Location header (status %d)", resp.StatusCode)
				return res
			}
			next, err := url.Parse(loc)
			if err != nil {
				hop.Final = true
				res.Chain = append(res.Chain, hop)
				res.Status = resp.StatusCode
				res.Error = fmt.Sprintf("invalid Location header %q: %v", loc, err)
				return res
			}
			res.Chain = append(res.Chain, hop)
			current = u.ResolveReference(next).String()
			continue
		}

		_ = resp.Body.Close()
		hop.Final = true
		res.Chain = append(res.Chain, hop)
		res.Status = resp.StatusCode

		final := u.String()
		if resp.StatusCode < 200 || resp.StatusCode >= 400 || final == "" {
			res.Error = fmt.Sprintf("invalid or failed redirect response (status %d)", resp.StatusCode)
			return res
		}
		res.Output = final
		return res
	}

	res.Error = fmt.Sprintf("redirect chain exceeded %d hops", r.maxChain)
	return res
}
