package goToken

import (
	"fmt"
	"testing"
	"time"
)

// TestIsTokenValidAgreesWithParse holds the standalone validity check and the
// full parse path to the same verdict across the representative input matrix:
// blank, tampered, wrong-id, malformed-due, expired, forever, and valid.
func TestIsTokenValidAgreesWithParse(t *testing.T) {
	now := time.Now().UnixMilli()

	valid, err := Generate(testSecret, Short, "user-1", "payload")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name string
		wire string
	}{
		{"blank", ""},
		{"whitespace", "   "},
		{"garbage", "not-a-token"},
		{"tampered", "A" + valid[1:]},
		{"wrong-secret", mustGenerate(t, []byte("other-secret"), Short, "user-1")},
		{"wrong-id", mustGenerate(t, testSecret, Short, "user-2")},
		{"single-field", sealFields(t, testSecret, "user-1")},
		{"bad-due", sealFields(t, testSecret, "user-1", "NaN")},
		{"expired", sealFields(t, testSecret, "user-1", fmt.Sprintf("%d", now-5000))},
		{"forever", mustGenerate(t, testSecret, Forever, "user-1")},
		{"valid", valid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsTokenValid(testSecret, "user-1", tc.wire)

			tk := Parse(testSecret, tc.wire)
			want := tk.ID() == "user-1" && !tk.Expired()

			if got != want {
				t.Fatalf("IsTokenValid=%t disagrees with Parse-derived verdict %t (token %s)", got, want, tk)
			}
		})
	}
}

func TestIsTokenValidBlankArguments(t *testing.T) {
	wire := mustGenerate(t, testSecret, Short, "user-1")

	if IsTokenValid(testSecret, "", wire) {
		t.Fatal("blank expected id should be rejected")
	}
	if IsTokenValid(testSecret, "user-1", "") {
		t.Fatal("blank wire should be rejected")
	}
}

func TestIsTokenValidExactIDMatch(t *testing.T) {
	wire := mustGenerate(t, testSecret, Short, "User-1")

	if IsTokenValid(testSecret, "user-1", wire) {
		t.Fatal("id comparison must be case-sensitive")
	}
	if !IsTokenValid(testSecret, "User-1", wire) {
		t.Fatal("exact id should be accepted")
	}
}

func mustGenerate(t *testing.T, secret []byte, life Life, id string, payload ...string) string {
	t.Helper()
	wire, err := Generate(secret, life, id, payload...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return wire
}
