package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
)

func newTestKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return pub, priv
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func TestIssueAndVerify(t *testing.T) {
	pub, priv := newTestKeys(t)
	issuer := Issuer{Name: "pooled-die", Key: priv, TTL: time.Hour, Now: fixedNow}
	token, err := issuer.Issue("alice", RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := Verifier{Issuer: "pooled-die", Key: pub, Now: func() time.Time { return fixedNow().Add(time.Minute) }}
	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject = %q, want alice", claims.Subject)
	}
	if claims.Role != RolePlayer {
		t.Fatalf("role = %q, want player", claims.Role)
	}
	if claims.JWTID == "" {
		t.Fatal("expected jti")
	}
	if !claims.ExpiresAt.Equal(fixedNow().Add(time.Hour)) {
		t.Fatalf("exp = %v", claims.ExpiresAt)
	}
}

func TestIssueValidation(t *testing.T) {
	_, priv := newTestKeys(t)
	issuer := Issuer{Name: "pooled-die", Key: priv}
	if _, err := issuer.Issue(" ", RolePlayer); err == nil {
		t.Fatal("expected error for blank subject")
	}
	if _, err := issuer.Issue("alice", Role("admin")); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if _, err := (Issuer{Name: "pooled-die"}).Issue("alice", RolePlayer); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestVerifyRejections(t *testing.T) {
	pub, priv := newTestKeys(t)
	_, otherPriv := newTestKeys(t)
	now := fixedNow()

	valid, err := Issuer{Name: "pooled-die", Key: priv, TTL: time.Hour, Now: func() time.Time { return now }}.Issue("alice", RoleOracle)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	wrongKey, err := Issuer{Name: "pooled-die", Key: otherPriv, Now: func() time.Time { return now }}.Issue("alice", RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	wrongIssuer, err := Issuer{Name: "elsewhere", Key: priv, Now: func() time.Time { return now }}.Issue("alice", RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	badRole, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pooled-die",
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: "root",
	}).SignedString(priv)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "pooled-die",
		Subject: "alice",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign hmac: %v", err)
	}

	tests := []struct {
		name  string
		token string
		now   time.Time
	}{
		{name: "empty", token: "", now: now},
		{name: "garbage", token: "not-a-token", now: now},
		{name: "wrong key", token: wrongKey, now: now},
		{name: "wrong issuer", token: wrongIssuer, now: now},
		{name: "bad role", token: badRole, now: now},
		{name: "hmac alg", token: hmacToken, now: now},
		{name: "expired", token: valid, now: now.Add(2 * time.Hour)},
		{name: "not yet active", token: valid, now: now.Add(-time.Minute)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verifier := Verifier{Issuer: "pooled-die", Key: pub, Now: func() time.Time { return tc.now }}
			_, err := verifier.Verify(tc.token)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.CodeOf(err); got != apperrors.CodeUnauthenticated {
				t.Fatalf("code = %s, want %s", got, apperrors.CodeUnauthenticated)
			}
		})
	}
}

func TestVerifyRequiresConfiguration(t *testing.T) {
	if _, err := (Verifier{}).Verify("token"); err == nil {
		t.Fatal("expected error for unconfigured verifier")
	}
}

func TestLoadVerifierFromEnv(t *testing.T) {
	pub, _ := newTestKeys(t)
	t.Setenv("POOLED_DIE_IDENTITY_PUBLIC_KEY", base64.RawStdEncoding.EncodeToString(pub))
	t.Setenv("POOLED_DIE_IDENTITY_ISSUER", "table-7")

	verifier, err := LoadVerifierFromEnv(nil)
	if err != nil {
		t.Fatalf("load verifier: %v", err)
	}
	if verifier.Issuer != "table-7" {
		t.Fatalf("issuer = %q, want table-7", verifier.Issuer)
	}
	if !verifier.Key.Equal(pub) {
		t.Fatal("public key mismatch")
	}
}

func TestLoadVerifierFromEnvRequiresKey(t *testing.T) {
	t.Setenv("POOLED_DIE_IDENTITY_PUBLIC_KEY", "")
	_, err := LoadVerifierFromEnv(nil)
	if err == nil || !strings.Contains(err.Error(), "IDENTITY_PUBLIC_KEY") {
		t.Fatalf("err = %v, want missing key error", err)
	}
}

func TestParseKeys(t *testing.T) {
	pub, priv := newTestKeys(t)
	gotPub, err := ParsePublicKey(base64.StdEncoding.EncodeToString(pub))
	if err != nil {
		t.Fatalf("parse public: %v", err)
	}
	if !gotPub.Equal(pub) {
		t.Fatal("public key mismatch")
	}
	gotPriv, err := ParsePrivateKey(base64.RawStdEncoding.EncodeToString(priv))
	if err != nil {
		t.Fatalf("parse private: %v", err)
	}
	if !gotPriv.Equal(priv) {
		t.Fatal("private key mismatch")
	}
	if _, err := ParsePublicKey(base64.RawStdEncoding.EncodeToString(priv)); err == nil {
		t.Fatal("expected size error for public key")
	}
	if _, err := ParsePrivateKey("%%%"); err == nil {
		t.Fatal("expected decode error")
	}
}
