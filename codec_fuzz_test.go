package goToken

import (
	"testing"
	"time"
)

// FuzzParse exercises the decode path with arbitrary wire strings.
// Goal: no panics; every input maps to a Token, and empty-sentinel tokens
// carry no residual state.
func FuzzParse(f *testing.F) {
	secret := []byte("fuzz-secret")

	if wire, err := Generate(secret, Short, "user-1", "payload"); err == nil {
		f.Add(wire)
	}
	if wire, err := Generate(secret, Forever, "user-1"); err == nil {
		f.Add(wire)
	}
	f.Add("")
	f.Add("|")
	f.Add("a|b|c")
	f.Add("AAAAAAAAAAAAAAAAAAAAAAAA")
	f.Add("not base64 at all !!!")

	f.Fuzz(func(t *testing.T, wire string) {
		tk := Parse(secret, wire)

		if tk.Empty() {
			if tk.Due() != 0 || tk.Payload() != nil {
				t.Fatalf("empty sentinel carries state: %s", tk)
			}
			return
		}

		// Skip dues within a few seconds of now: the two checks below run
		// at different instants, and a due falling between them would make
		// the comparison flake rather than reveal a real disagreement.
		if due := tk.Due(); due > 0 {
			if delta := due - time.Now().UnixMilli(); delta > -5000 && delta < 5000 {
				return
			}
		}

		// Non-empty tokens must agree with the standalone check: valid
		// exactly when not expired.
		if IsTokenValid(secret, tk.ID(), wire) == tk.Expired() {
			t.Fatalf("validity disagreement for %s", tk)
		}
	})
}
