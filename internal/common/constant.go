package common

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer token.
const AuthorizationHeaderName = "authorization"

// BearerScheme prefixes the token inside the authorization header.
const BearerScheme = "Bearer"

// TokenType is reported to clients next to an issued access token.
const TokenType = "bearer"
