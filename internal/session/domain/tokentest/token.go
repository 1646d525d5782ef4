// Package tokentest issues credentials for tests.
package tokentest

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/simctl/internal/session/domain"
)

var signingKey = []byte("tokentest-signing-key")

func Issue(t testing.TB, expiresAt time.Time, role domain.Role) domain.Credential {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "123412341234",
		"role": string(role),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign test credential: %v", err)
	}

	return domain.Credential(signed)
}

func IssueWithoutExpiry(t testing.TB) domain.Credential {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "123412341234"})
	signed, err := token.SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign test credential: %v", err)
	}

	return domain.Credential(signed)
}

// Assemble builds an unsigned credential from raw header and payload claims.
func Assemble(t testing.TB, header, payload map[string]any) domain.Credential {
	t.Helper()

	segments := make([]string, 0, 3)
	for _, part := range []map[string]any{header, payload} {
		raw, err := json.Marshal(part)
		if err != nil {
			t.Fatalf("encode test credential: %v", err)
		}
		segments = append(segments, base64.RawURLEncoding.EncodeToString(raw))
	}
	segments = append(segments, "signature")

	return domain.Credential(strings.Join(segments, "."))
}
