// Package api defines the wire contract of the authentication service:
// request and response messages, the gRPC service descriptor and a typed
// client. Messages travel as JSON through a registered gRPC codec, so no
// generated code is involved.
package api
