// Package auth implements the credential and token core of the server:
// bcrypt password hashing (Hasher), HS256 access tokens (Codec) and the
// resolution of a bearer token to a stored user (Resolver).
//
// Every failure on the resolution path is reported as an *UnauthorizedError,
// which matches common.ErrorUnauthorized and keeps the precise cause for
// server-side logs only.
package auth
