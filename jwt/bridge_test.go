package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	goToken "github.com/mereles-dev/goToken"
)

var bridgeSecret = []byte("bridge-secret")

func decodedToken(t *testing.T, life goToken.Life, id string, payload ...string) goToken.Token {
	t.Helper()
	wire, err := goToken.Generate(bridgeSecret, life, id, payload...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	tk := goToken.Parse(bridgeSecret, wire)
	if tk.Empty() {
		t.Fatal("fixture token parsed empty")
	}
	return tk
}

func TestBridgeSignParseRoundTrip(t *testing.T) {
	b := Bridge{Secret: bridgeSecret, Issuer: "gotoken-test"}
	tk := decodedToken(t, goToken.Short, "user-1", "nonce", "action")

	signed, err := b.Sign(tk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := b.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims.ID != "user-1" {
		t.Fatalf("expected id user-1, got %q", claims.ID)
	}
	if len(claims.Payload) != 2 || claims.Payload[0] != "nonce" || claims.Payload[1] != "action" {
		t.Fatalf("unexpected payload %v", claims.Payload)
	}
	// JWT exp has second precision; the due instant survives to the second.
	if diff := claims.Due - tk.Due(); diff < -1000 || diff > 1000 {
		t.Fatalf("due drifted across the bridge: token %d, claims %d", tk.Due(), claims.Due)
	}
}

func TestBridgeForeverTokenHasNoExp(t *testing.T) {
	b := Bridge{Secret: bridgeSecret}
	tk := decodedToken(t, goToken.Forever, "user-1")

	signed, err := b.Sign(tk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := b.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Due != -1 {
		t.Fatalf("forever token should map to due -1, got %d", claims.Due)
	}
}

func TestBridgeWrongSecretRejected(t *testing.T) {
	signer := Bridge{Secret: bridgeSecret}
	verifier := Bridge{Secret: []byte("other-secret")}

	signed, err := signer.Sign(decodedToken(t, goToken.Short, "user-1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := verifier.Parse(signed); !errors.Is(err, ErrInvalidBridgeToken) {
		t.Fatalf("wrong-secret parse should fail with ErrInvalidBridgeToken, got %v", err)
	}
}

func TestBridgeIssuerMismatchRejected(t *testing.T) {
	signer := Bridge{Secret: bridgeSecret, Issuer: "service-a"}
	verifier := Bridge{Secret: bridgeSecret, Issuer: "service-b"}

	signed, err := signer.Sign(decodedToken(t, goToken.Short, "user-1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := verifier.Parse(signed); !errors.Is(err, ErrInvalidBridgeToken) {
		t.Fatalf("issuer mismatch should fail, got %v", err)
	}
}

func TestBridgeGarbageRejected(t *testing.T) {
	b := Bridge{Secret: bridgeSecret}

	for _, wire := range []string{"", "garbage", "a.b.c"} {
		if _, err := b.Parse(wire); !errors.Is(err, ErrInvalidBridgeToken) {
			t.Fatalf("garbage %q should fail, got %v", wire, err)
		}
	}
}

func TestBridgeExpiredRejected(t *testing.T) {
	b := Bridge{Secret: bridgeSecret}

	// Craft a JWT whose exp is already in the past.
	expired := bridgeClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, expired).SignedString(bridgeSecret)
	if err != nil {
		t.Fatalf("sign expired fixture: %v", err)
	}

	if _, err := b.Parse(signed); !errors.Is(err, ErrInvalidBridgeToken) {
		t.Fatalf("expired token should be rejected, got %v", err)
	}
}
