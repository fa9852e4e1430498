package goToken

import "time"

// Life is a named token lifetime. Each value maps to a fixed duration in
// seconds; [Forever] maps to a non-positive sentinel meaning the token never
// expires.
type Life int64

const (
	// OneMin is a very short lifetime for challenge-style tokens.
	OneMin Life = 60
	// Short is the default lifetime for links embedded in emails (1 hour).
	Short Life = 60 * 60
	// OneHour is an alias of Short.
	OneHour Life = 60 * 60
	// Normal is a one-day lifetime.
	Normal Life = 60 * 60 * 24
	// OneDay is an alias of Normal.
	OneDay Life = 60 * 60 * 24
	// OneWeek is a seven-day lifetime.
	OneWeek Life = 60 * 60 * 24 * 7
	// ThirtyDays is a thirty-day lifetime.
	ThirtyDays Life = 60 * 60 * 24 * 30
	// Long is a ninety-day lifetime.
	Long Life = 60 * 60 * 24 * 90
	// NinetyDays is an alias of Long.
	NinetyDays Life = 60 * 60 * 24 * 90
	// Forever marks a token that never expires.
	Forever Life = -1
)

// Seconds returns the lifetime in seconds. Non-positive means never expires.
func (l Life) Seconds() int64 {
	return int64(l)
}

// Due returns the absolute expiry instant, in epoch milliseconds, for a token
// issued now with this lifetime. Returns -1 for [Forever].
func (l Life) Due() int64 {
	return DueIn(int64(l))
}

// DueIn converts a lifetime in seconds into an absolute due instant in epoch
// milliseconds. seconds <= 0 yields the never-due sentinel -1.
func DueIn(seconds int64) int64 {
	if seconds <= 0 {
		return -1
	}
	return nowMillis() + seconds*1000
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
