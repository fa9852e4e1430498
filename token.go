package goToken

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Token is the decoded, in-memory form of a wire token: an identity, an
// absolute due instant, and an ordered payload.
//
// Token values are immutable after construction. They are only ever built by
// [Parse] (or internally by the generate path); a zero Token is the canonical
// "absent token" sentinel with Empty() == true.
type Token struct {
	id      string
	due     int64
	payload []string
}

// ID returns the identity encoded in the token. Empty string means the token
// is the absent/parse-failure sentinel.
func (t Token) ID() string {
	return t.id
}

// Due returns the absolute expiry instant in epoch milliseconds. Non-positive
// means the token never expires.
func (t Token) Due() int64 {
	return t.due
}

// Payload returns a copy of the token payload in order.
func (t Token) Payload() []string {
	if len(t.payload) == 0 {
		return nil
	}
	out := make([]string, len(t.payload))
	copy(out, t.payload)
	return out
}

// FirstPayload returns the first payload field, or "" if there is none.
func (t Token) FirstPayload() string {
	return t.PayloadAt(0)
}

// PayloadAt returns the payload field at index, or "" if out of range.
func (t Token) PayloadAt(index int) string {
	if index < 0 || index >= len(t.payload) {
		return ""
	}
	return t.payload[index]
}

// Empty reports whether the token carries no identity. Blank-only ids count
// as empty. An empty token is never valid.
func (t Token) Empty() bool {
	return strings.TrimSpace(t.id) == ""
}

// Expired reports whether the token's due instant has passed. Tokens with a
// non-positive due never expire.
func (t Token) Expired() bool {
	return t.due > 0 && t.due <= nowMillis()
}

// Equal reports whether two tokens carry the same identity, due instant, and
// payload.
func (t Token) Equal(other Token) bool {
	if t.id != other.id || t.due != other.due || len(t.payload) != len(other.payload) {
		return false
	}
	for i := range t.payload {
		if t.payload[i] != other.payload[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash over the token's identity, due instant, and payload,
// consistent with Equal.
func (t Token) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.id))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(t.due, 10)))
	for _, p := range t.payload {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return h.Sum64()
}

func (t Token) String() string {
	return fmt.Sprintf("{id: %s, expired: %t, due: %d, payload: %v}", t.id, t.Expired(), t.due, t.payload)
}

// cacheSuffix is the id+due pair that uniquely identifies a token instance in
// the consumption cache.
func (t Token) cacheSuffix() string {
	return t.id + strconv.FormatInt(t.due, 10)
}
