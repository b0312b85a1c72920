// Package identity issues and verifies the Ed25519-signed bearer tokens that
// authenticate players, administrators, and oracle callbacks.
package identity

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/louisbranch/pooleddie/internal/platform/config"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
)

// Role distinguishes what a token holder may do.
type Role string

const (
	// RolePlayer is held by players and the pool administrator.
	RolePlayer Role = "player"
	// RoleOracle is held by oracle networks delivering settlement callbacks.
	RoleOracle Role = "oracle"
)

// DefaultTTL is the token lifetime used when an Issuer has none configured.
const DefaultTTL = 24 * time.Hour

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleOracle
}

// Claims captures validated identity claims.
type Claims struct {
	Subject   string
	Role      Role
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	JWTID     string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Issuer mints identity tokens.
type Issuer struct {
	Name string
	Key  ed25519.PrivateKey
	TTL  time.Duration
	Now  func() time.Time
}

// Issue returns a signed token for subject acting with role.
func (i Issuer) Issue(subject string, role Role) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", errors.New("subject is required")
	}
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}
	if strings.TrimSpace(i.Name) == "" || len(i.Key) != ed25519.PrivateKeySize {
		return "", errors.New("identity issuer is not configured")
	}
	now := time.Now
	if i.Now != nil {
		now = i.Now
	}
	ttl := i.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	issuedAt := now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.Name,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Role: string(role),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(i.Key)
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return signed, nil
}

// verifierEnv holds raw env values before post-parse validation.
type verifierEnv struct {
	Issuer    string `env:"IDENTITY_ISSUER" envDefault:"pooled-die"`
	PublicKey string `env:"IDENTITY_PUBLIC_KEY"`
}

// Verifier validates identity tokens.
type Verifier struct {
	Issuer string
	Key    ed25519.PublicKey
	Now    func() time.Time
}

// LoadVerifierFromEnv reads token verification configuration.
func LoadVerifierFromEnv(now func() time.Time) (Verifier, error) {
	var raw verifierEnv
	if err := config.ParseEnv(&raw); err != nil {
		return Verifier{}, fmt.Errorf("parse identity env: %w", err)
	}
	if strings.TrimSpace(raw.PublicKey) == "" {
		return Verifier{}, fmt.Errorf("%sIDENTITY_PUBLIC_KEY is required", config.EnvPrefix)
	}
	key, err := ParsePublicKey(raw.PublicKey)
	if err != nil {
		return Verifier{}, err
	}
	if now == nil {
		now = time.Now
	}
	return Verifier{Issuer: strings.TrimSpace(raw.Issuer), Key: key, Now: now}, nil
}

// Verify checks the token signature, issuer, validity window, and role.
func (v Verifier) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "identity token is required")
	}
	if v.Issuer == "" || len(v.Key) != ed25519.PublicKeySize {
		return Claims{}, errors.New("identity verifier is not configured")
	}
	if v.Now == nil {
		v.Now = time.Now
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != v.Issuer {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeUnauthenticated,
			"identity token issuer mismatch",
			map[string]string{"Field": "issuer"},
		)
	}
	if strings.TrimSpace(parsed.Subject) == "" {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "identity token sub is required")
	}
	role := Role(parsed.Role)
	if !role.Valid() {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "identity token role is invalid")
	}
	if parsed.ExpiresAt == nil {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "identity token exp is required")
	}

	now := v.Now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "identity token is expired")
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time.UTC()) {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "identity token not active yet")
	}

	claims := Claims{
		Subject:   parsed.Subject,
		Role:      role,
		Issuer:    parsed.Issuer,
		ExpiresAt: exp,
		JWTID:     parsed.ID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return apperrors.New(apperrors.CodeUnauthenticated, "identity token signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.New(apperrors.CodeUnauthenticated, "identity token alg is invalid")
	}
	return apperrors.New(apperrors.CodeUnauthenticated, "identity token is invalid")
}

// ParsePublicKey decodes a base64 Ed25519 public key.
func ParsePublicKey(value string) (ed25519.PublicKey, error) {
	raw, err := decodeBase64(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("decode identity public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("identity public key must be %d bytes", ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(raw), nil
}

// ParsePrivateKey decodes a base64 Ed25519 private key.
func ParsePrivateKey(value string) (ed25519.PrivateKey, error) {
	raw, err := decodeBase64(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("decode identity private key: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("identity private key must be %d bytes", ed25519.PrivateKeySize)
	}
	return ed25519.PrivateKey(raw), nil
}

func decodeBase64(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
