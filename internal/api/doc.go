// Package api adapts HTTP to the application services: routing-facing
// handlers, request decoding and validation, and the mapping from
// internal errors to sanitized HTTP responses.
package api
