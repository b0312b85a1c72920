package identitykey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/louisbranch/pooleddie/internal/platform/identity"
)

func TestRunRequiresOutput(t *testing.T) {
	if err := Run(nil, bytes.NewReader([]byte{1})); err == nil {
		t.Fatal("expected error when output is nil")
	}
}

func TestRunWritesUsableKeys(t *testing.T) {
	buf := &bytes.Buffer{}
	reader := bytes.NewReader(bytes.Repeat([]byte{1}, 64))
	if err := Run(buf, reader); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	private := strings.TrimPrefix(lines[0], "export POOLED_DIE_IDENTITY_PRIVATE_KEY=")
	public := strings.TrimPrefix(lines[1], "export POOLED_DIE_IDENTITY_PUBLIC_KEY=")
	if private == lines[0] || public == lines[1] {
		t.Fatalf("unexpected output format: %q", buf.String())
	}

	privateKey, err := identity.ParsePrivateKey(private)
	if err != nil {
		t.Fatalf("parse private key: %v", err)
	}
	publicKey, err := identity.ParsePublicKey(public)
	if err != nil {
		t.Fatalf("parse public key: %v", err)
	}

	token, err := identity.Issuer{Name: "pooled-die", Key: privateKey}.Issue("alice", identity.RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := identity.Verifier{Issuer: "pooled-die", Key: publicKey}.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject = %q", claims.Subject)
	}
}
