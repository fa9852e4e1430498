package middleware

import (
	"context"
	"errors"
	"net/http"

	goToken "github.com/mereles-dev/goToken"
)

const defaultTokenParam = "token"

type tokenContextKey struct{}

// TokenFromContext returns the decoded token injected by [Require], if any.
func TokenFromContext(ctx context.Context) (goToken.Token, bool) {
	tk, ok := ctx.Value(tokenContextKey{}).(goToken.Token)
	return tk, ok
}

// Options controls how [Require] locates and checks the wire token.
type Options struct {
	// ResolveID maps a request to the identity the token must carry.
	// Required.
	ResolveID func(*http.Request) string

	// Param is the query parameter holding the wire token. Defaults to
	// "token".
	Param string

	// Header, when set, is checked before the query parameter.
	Header string

	// OneTime redeems the token instead of verifying it, so a second
	// request with the same link is rejected.
	OneTime bool
}

// Require wraps a handler with token enforcement. Requests without a token,
// or with one the issuer rejects, get 401; a consumption-cache outage gets
// 503. On success the decoded token is available via [TokenFromContext].
func Require(issuer *goToken.Issuer, opts Options) func(http.Handler) http.Handler {
	param := opts.Param
	if param == "" {
		param = defaultTokenParam
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if issuer == nil || opts.ResolveID == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			wire := wireToken(r, opts.Header, param)
			if wire == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			id := opts.ResolveID(r)

			var (
				tk  goToken.Token
				err error
			)
			if opts.OneTime {
				tk, err = issuer.Redeem(r.Context(), id, wire)
			} else {
				tk, err = issuer.Verify(r.Context(), id, wire)
			}
			if err != nil {
				if errors.Is(err, goToken.ErrRedisUnavailable) {
					http.Error(w, "service unavailable", http.StatusServiceUnavailable)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey{}, tk)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func wireToken(r *http.Request, header, param string) string {
	if header != "" {
		if v := r.Header.Get(header); v != "" {
			return v
		}
	}
	return r.URL.Query().Get(param)
}
