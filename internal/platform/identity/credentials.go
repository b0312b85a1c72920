package identity

import (
	"context"
	"strings"
)

// MetadataKey is the gRPC metadata key that carries bearer tokens.
const MetadataKey = "authorization"

const bearerPrefix = "Bearer "

// TokenCredentials attaches a bearer token to every outgoing RPC.
// It implements credentials.PerRPCCredentials.
type TokenCredentials struct {
	Token string
}

// GetRequestMetadata returns the authorization header for one call.
func (c TokenCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	token := strings.TrimSpace(c.Token)
	if token == "" {
		return nil, nil
	}
	return map[string]string{MetadataKey: bearerPrefix + token}, nil
}

// RequireTransportSecurity reports false; services run on plaintext inside
// the deployment network.
func (TokenCredentials) RequireTransportSecurity() bool {
	return false
}

// BearerToken extracts the token from an authorization header value.
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// IssuerCredentials mints a fresh token for every outgoing RPC, so
// long-running clients never present an expired one.
type IssuerCredentials struct {
	Issuer  Issuer
	Subject string
	Role    Role
}

// GetRequestMetadata returns the authorization header for one call.
func (c IssuerCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	token, err := c.Issuer.Issue(c.Subject, c.Role)
	if err != nil {
		return nil, err
	}
	return map[string]string{MetadataKey: bearerPrefix + token}, nil
}

// RequireTransportSecurity reports false, like TokenCredentials.
func (IssuerCredentials) RequireTransportSecurity() bool {
	return false
}
