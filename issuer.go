package goToken

import (
	"context"

	"github.com/google/uuid"
)

// Issuer is the composition root tying the codec to a consumption tracker
// under a single secret. Build one through [Builder] and share it; all
// methods are safe for concurrent use.
//
// Verification is uniform: every invalid token shape (wrong id, expired,
// consumed, malformed, tampered) comes back as [ErrTokenInvalid].
// Only cache failures surface differently, wrapped in [ErrRedisUnavailable],
// so callers can map them to a 5xx-class response instead of a rejection.
type Issuer struct {
	config  Config
	tracker *Tracker
	metrics *metricsRecorder
}

// Issue generates a wire token for id with the configured default lifetime.
func (i *Issuer) Issue(id string, payload ...string) (string, error) {
	return i.IssueFor(i.config.DefaultLife, id, payload...)
}

// IssueFor generates a wire token for id with an explicit lifetime.
//
// When nonce mode is enabled, a random trailing payload field is appended so
// two tokens issued for the same id and instant remain distinct instances
// with independent consumption marks.
func (i *Issuer) IssueFor(life Life, id string, payload ...string) (string, error) {
	if i.config.Nonce {
		payload = append(append([]string(nil), payload...), uuid.NewString())
	}

	wire, err := Generate(i.config.Secret, life, id, payload...)
	if err != nil {
		return "", err
	}

	i.metrics.inc(MetricIssued)
	return wire, nil
}

// Verify parses wire and checks it end to end: structural soundness, id
// match, expiry, and the consumption mark. On success the decoded Token is
// returned; on rejection the zero Token and [ErrTokenInvalid].
func (i *Issuer) Verify(ctx context.Context, id, wire string) (Token, error) {
	tk := Parse(i.config.Secret, wire)

	switch {
	case tk.Empty(), tk.ID() != id:
		i.metrics.inc(MetricVerifyRejected)
		return Token{}, ErrTokenInvalid
	case tk.Expired():
		i.metrics.inc(MetricVerifyExpired)
		return Token{}, ErrTokenInvalid
	}

	consumed, err := i.tracker.IsConsumed(ctx, tk)
	if err != nil {
		return Token{}, err
	}
	if consumed {
		i.metrics.inc(MetricVerifyConsumed)
		return Token{}, ErrTokenInvalid
	}

	i.metrics.inc(MetricVerifySuccess)
	return tk, nil
}

// Redeem is Verify followed by a consumption mark: the one-shot path for
// single-use links. A second Redeem of the same wire token is rejected with
// [ErrTokenInvalid].
func (i *Issuer) Redeem(ctx context.Context, id, wire string) (Token, error) {
	tk, err := i.Verify(ctx, id, wire)
	if err != nil {
		return Token{}, err
	}

	if err := i.tracker.Consume(ctx, tk); err != nil {
		return Token{}, err
	}

	i.metrics.inc(MetricRedeemed)
	return tk, nil
}

// Tracker exposes the consumption tracker for callers that mark or query
// tokens outside the Verify/Redeem flow.
func (i *Issuer) Tracker() *Tracker {
	return i.tracker
}

// Metrics returns a point-in-time snapshot of the issuer counters.
func (i *Issuer) Metrics() MetricsSnapshot {
	return i.metrics.snapshot()
}
