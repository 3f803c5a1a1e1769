// Package http implements the inbound HTTP surface of the qrlogix server:
// a single dispatch route keyed on an `endpoint` query parameter, the
// per-endpoint handlers (signup, login, create-qr, check-qr, test), and the
// middleware chain (trace id, request logging, panic recovery, CORS).
//
// Every response is a JSON envelope carrying at least a `success` flag; the
// HTTP status code is the primary failure signal and the `message` field the
// human-readable one.
package http
