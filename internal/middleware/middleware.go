// Package middleware holds the global and route-level Echo middleware:
// anonymous sessions, request ids, request logging, CORS, rate limiting,
// New Relic tracing, panic recovery and the global error handler.
package middleware
