// Package http implements the HTTP transport layer of the ride-hail API.
//
// Requests pass through an explicit ordered pipeline of stages (bearer
// authentication, role authorization, payload validation) driven by
// [Handler.gate]. A stage either enriches the request or returns an error;
// every error ends at the single error responder, which writes the uniform
// failure envelope. Cross-cutting concerns such as trace ids, access
// logging, metrics, tracing and panic recovery are plain middleware.
package http
