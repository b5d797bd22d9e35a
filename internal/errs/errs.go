// Package errs defines the error shapes the API returns.
//
// Every failure that reaches a client is an *HTTPError: a stable machine
// code, a message, the status, optional field errors for forms and an
// optional action hint for the frontend.
package errs
