package identity

import (
	"context"
	"crypto/ed25519"
	"testing"
)

func TestTokenCredentialsMetadata(t *testing.T) {
	md, err := TokenCredentials{Token: "abc"}.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if md[MetadataKey] != "Bearer abc" {
		t.Fatalf("authorization = %q", md[MetadataKey])
	}

	md, err = TokenCredentials{}.GetRequestMetadata(context.Background())
	if err != nil || md != nil {
		t.Fatalf("expected no metadata for empty token, got %v, %v", md, err)
	}
	if (TokenCredentials{}).RequireTransportSecurity() {
		t.Fatal("expected plaintext transport to be allowed")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer  abc ", token: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}
	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		if token != tt.token || ok != tt.ok {
			t.Fatalf("BearerToken(%q) = %q, %v, want %q, %v", tt.header, token, ok, tt.token, tt.ok)
		}
	}
}

func TestIssuerCredentialsMintsVerifiableTokens(t *testing.T) {
	public, private, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	creds := IssuerCredentials{
		Issuer:  Issuer{Name: "pooled-die", Key: private},
		Subject: "vrf-network",
		Role:    RoleOracle,
	}
	md, err := creds.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	token, ok := BearerToken(md[MetadataKey])
	if !ok {
		t.Fatalf("authorization = %q", md[MetadataKey])
	}
	claims, err := Verifier{Issuer: "pooled-die", Key: public}.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "vrf-network" || claims.Role != RoleOracle {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := (IssuerCredentials{Subject: "x", Role: RoleOracle}).GetRequestMetadata(context.Background()); err == nil {
		t.Fatal("expected error for unconfigured issuer")
	}
}
