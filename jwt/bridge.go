package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	goToken "github.com/mereles-dev/goToken"
)

// ErrInvalidBridgeToken is returned when a JWT fails signature or claim
// validation on the parse side of the bridge.
var ErrInvalidBridgeToken = errors.New("invalid bridge token")

// Claims is the JWT-side projection of a token: identity, due instant in
// epoch milliseconds (non-positive for never-expiring), and ordered payload.
type Claims struct {
	ID      string
	Due     int64
	Payload []string
}

type bridgeClaims struct {
	Payload []string `json:"pl,omitempty"`
	jwt.RegisteredClaims
}

// Bridge signs and parses JWT projections of tokens under a shared HMAC
// secret. Configure once and treat as immutable.
type Bridge struct {
	Secret []byte
	Issuer string
}

// Sign converts a decoded token into an HS256-signed JWT. The token id maps
// to sub, the due instant to exp (omitted for never-expiring tokens), and the
// payload to the private "pl" claim.
func (b Bridge) Sign(tk goToken.Token) (string, error) {
	claims := bridgeClaims{
		Payload: tk.Payload(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  tk.ID(),
			Issuer:   b.Issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if due := tk.Due(); due > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.UnixMilli(due))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.Secret)
	if err != nil {
		return "", fmt.Errorf("sign bridge token: %w", err)
	}
	return signed, nil
}

// Parse verifies an HS256 JWT produced by [Bridge.Sign] and maps it back to
// claims. Signature failures, wrong algorithms, expired tokens, and issuer
// mismatches all return [ErrInvalidBridgeToken].
func (b Bridge) Parse(wire string) (Claims, error) {
	var claims bridgeClaims

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if b.Issuer != "" {
		options = append(options, jwt.WithIssuer(b.Issuer))
	}

	_, err := jwt.ParseWithClaims(wire, &claims, func(*jwt.Token) (any, error) {
		return b.Secret, nil
	}, options...)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidBridgeToken, err)
	}

	out := Claims{
		ID:      claims.Subject,
		Due:     -1,
		Payload: claims.Payload,
	}
	if claims.ExpiresAt != nil {
		out.Due = claims.ExpiresAt.UnixMilli()
	}
	return out, nil
}
