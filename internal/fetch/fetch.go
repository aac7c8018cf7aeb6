// Package fetch retrieves resources that may not be directly reachable by
// trying a prioritized list of access routes until one succeeds.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// Doer is the subset of *http.Client the fetcher needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultClient is shared by all loaders.
var DefaultClient Doer = &http.Client{}

const maxBodyBytes = 4 << 20

// RouteError records why one route attempt failed.
type RouteError struct {
	Route string
	Err   error
}

func (e *RouteError) Error() string { return fmt.Sprintf("route %s: %v", e.Route, e.Err) }

func (e *RouteError) Unwrap() error { return e.Err }

// WithFallback tries each route in priority order with a bounded-time
// request, returning the first successfully unwrapped payload. A route that
// answers with HTTP success but an empty or malformed envelope counts as a
// route failure. When every route is exhausted the joined causes are
// returned in attempt order. There are no per-route retries; retrying is
// the polling layer's job.
func WithFallback(ctx context.Context, client Doer, target string, routes []Route, timeout time.Duration) ([]byte, error) {
	if len(routes) == 0 {
		return nil, errors.New("fetch: no routes")
	}
	var causes []error
	for _, route := range routes {
		payload, err := tryRoute(ctx, client, target, route, timeout)
		if err == nil {
			return payload, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		util.Debugf("fetch: route %s failed for %s: %v", route.Name(), target, err)
		causes = append(causes, &RouteError{Route: route.Name(), Err: err})
	}
	return nil, errors.Join(causes...)
}

func tryRoute(ctx context.Context, client Doer, target string, route Route, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := route.Request(target)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return route.Unwrap(body)
}

// Get is the single-route convenience for same-origin-style public APIs.
func Get(ctx context.Context, client Doer, target string, timeout time.Duration) ([]byte, error) {
	return WithFallback(ctx, client, target, []Route{Direct{}}, timeout)
}
