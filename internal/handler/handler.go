// Package handler is the HTTP layer that sits right after the router.
//
// Handlers bind and validate requests through the validation package, pick
// up the visitor's session from the middleware and call the service layer.
package handler
