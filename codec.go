package goToken

import (
	"strconv"
	"strings"

	"github.com/mereles-dev/goToken/crypto"
)

// fieldDelimiter separates the id, due, and payload fields in the plaintext
// wire layout. No escaping is performed: an id or payload field containing the
// delimiter will silently misparse on decode. This is a wire-compatibility
// constraint; changing it is a format break.
const fieldDelimiter = "|"

// forcedExpiryBackdate is how far into the past Parse backdates the due
// instant when the due field is present but not numeric (one day, in millis).
const forcedExpiryBackdate = 1000 * 60 * 60 * 24

// Generate builds an encrypted wire token for id with the given lifetime and
// optional payload fields.
//
// The plaintext layout is id|due|payload... with due in epoch milliseconds
// (-1 for [Forever]). Errors only surface for unusable key material; the
// encode path never fails on token content.
func Generate(secret []byte, life Life, id string, payload ...string) (string, error) {
	return GenerateFor(secret, life.Seconds(), id, payload...)
}

// GenerateFor is [Generate] with an explicit lifetime in seconds; seconds <= 0
// produces a never-expiring token.
func GenerateFor(secret []byte, seconds int64, id string, payload ...string) (string, error) {
	due := DueIn(seconds)

	fields := make([]string, 0, 2+len(payload))
	fields = append(fields, id, strconv.FormatInt(due, 10))
	fields = append(fields, payload...)

	return crypto.EncryptAES(strings.Join(fields, fieldDelimiter), secret)
}

// Parse decodes a wire token. It never fails: every input maps to a Token
// value, and callers branch on the Empty/Expired predicates instead of
// handling errors.
//
// Three invalid shapes are distinguishable:
//   - blank wire, undecryptable wire, or fewer than two fields yield the
//     empty sentinel (Empty() == true);
//   - a non-numeric due field yields a token with its id set but its due
//     forced a day into the past (Empty() false, Expired() true, no payload);
//   - a numeric due already in the past is returned as far as parsing got,
//     id and due set but payload not populated.
func Parse(secret []byte, wire string) Token {
	if strings.TrimSpace(wire) == "" {
		return Token{}
	}

	plaintext, err := crypto.DecryptAES(wire, secret)
	if err != nil {
		return Token{}
	}

	fields := strings.Split(plaintext, fieldDelimiter)
	if len(fields) < 2 {
		return Token{}
	}

	tk := Token{id: fields[0]}

	due, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		tk.due = nowMillis() - forcedExpiryBackdate
		return tk
	}
	tk.due = due
	if tk.Expired() {
		return tk
	}

	if len(fields) > 2 {
		tk.payload = append(tk.payload, fields[2:]...)
	}
	return tk
}

// IsTokenValid reports whether wire decrypts under secret to a structurally
// sound token that carries exactly id and has not passed its due instant.
//
// This is a standalone check: it does not consult the consumption tracker and
// does not allocate a Token. Any decrypt or parse failure yields false. It
// must agree with [Parse] on every input; the test suite holds both paths to
// that.
func IsTokenValid(secret []byte, id, wire string) bool {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(wire) == "" {
		return false
	}

	plaintext, err := crypto.DecryptAES(wire, secret)
	if err != nil {
		return false
	}

	fields := strings.Split(plaintext, fieldDelimiter)
	if len(fields) < 2 {
		return false
	}
	if fields[0] != id {
		return false
	}

	due, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return false
	}
	return due < 1 || due > nowMillis()
}

// GenerateString is [Generate] for callers holding a string secret.
func GenerateString(secret string, life Life, id string, payload ...string) (string, error) {
	return Generate([]byte(secret), life, id, payload...)
}

// ParseString is [Parse] for callers holding a string secret.
func ParseString(secret, wire string) Token {
	return Parse([]byte(secret), wire)
}

// IsTokenValidString is [IsTokenValid] for callers holding a string secret.
func IsTokenValidString(secret, id, wire string) bool {
	return IsTokenValid([]byte(secret), id, wire)
}
