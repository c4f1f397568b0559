package middleware

import (
	pkgLog "content-copilot/pkg/log"
)

// Middleware bundles the gin middlewares used by the HTTP server.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds how many requests a
// single client may issue per minute.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
