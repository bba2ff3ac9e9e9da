// Package client is the authctl side of the gRPC API: it dials the server,
// attaches bearer tokens to protected calls and maps status codes back to
// sentinel errors.
package client
