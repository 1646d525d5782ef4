package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/session/domain/tokentest"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestIsExpired_PastAndFutureExpiry(t *testing.T) {
	for _, offset := range []time.Duration{-10 * time.Minute, -time.Second, 0} {
		credential := tokentest.Issue(t, now.Add(offset), domain.RoleUser)
		assert.True(t, domain.IsExpired(credential, now), "offset %s", offset)
	}

	for _, offset := range []time.Duration{time.Second, time.Hour, 30 * 24 * time.Hour} {
		credential := tokentest.Issue(t, now.Add(offset), domain.RoleUser)
		assert.False(t, domain.IsExpired(credential, now), "offset %s", offset)
	}
}

func TestIsExpired_MalformedCredentialFailsClosed(t *testing.T) {
	malformed := []domain.Credential{
		"",
		"   ",
		"not-a-token",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9.!!!.sig",
		"eyJhbGciOiJIUzI1NiJ9.eyJleHAiOiJzb29uIn0.sig",
		tokentest.IssueWithoutExpiry(t),
	}

	for _, credential := range malformed {
		assert.True(t, domain.IsExpired(credential, now), "credential %q", credential)
	}
}

func TestDecodeCredential_ReturnsClaims(t *testing.T) {
	expiresAt := now.Add(time.Hour)
	credential := tokentest.Issue(t, expiresAt, domain.RoleAdmin)

	result := domain.DecodeCredential(credential)

	decoded, ok := result.(domain.Decoded)
	require.True(t, ok, "got %#v", result)
	assert.True(t, expiresAt.Equal(decoded.ExpiresAt))
	assert.Equal(t, domain.RoleAdmin, decoded.Role)
}

func TestDecodeCredential_IgnoresHeader(t *testing.T) {
	expiresAt := now.Add(time.Hour)
	payload := map[string]any{"exp": expiresAt.Unix(), "role": "USER"}

	tests := []struct {
		name   string
		header map[string]any
	}{
		{name: "registered alg", header: map[string]any{"alg": "HS256", "typ": "JWT"}},
		{name: "no alg", header: map[string]any{"typ": "JWT"}},
		{name: "unknown alg", header: map[string]any{"alg": "ES256K"}},
		{name: "empty header", header: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credential := tokentest.Assemble(t, tt.header, payload)

			decoded, ok := domain.DecodeCredential(credential).(domain.Decoded)
			require.True(t, ok)
			assert.True(t, expiresAt.Equal(decoded.ExpiresAt))
			assert.Equal(t, domain.RoleUser, decoded.Role)
			assert.False(t, domain.IsExpired(credential, now))
		})
	}
}

func TestDecodeCredential_RequiresThreeSegments(t *testing.T) {
	for _, credential := range []domain.Credential{"onlyone", "two.parts", "a.b.c.d"} {
		failure, ok := domain.DecodeCredential(credential).(domain.DecodeFailure)
		require.True(t, ok, "credential %q", credential)
		assert.ErrorIs(t, failure.Err, domain.ErrMalformedCredential)
	}
}

func TestDecodeCredential_FailureCarriesReason(t *testing.T) {
	result := domain.DecodeCredential(tokentest.IssueWithoutExpiry(t))

	failure, ok := result.(domain.DecodeFailure)
	require.True(t, ok)
	assert.ErrorIs(t, failure.Err, domain.ErrMissingExpiry)
}

func TestRemainingSeconds_Floors(t *testing.T) {
	assert.EqualValues(t, 2, domain.RemainingSeconds(now.Add(2999*time.Millisecond), now))
	assert.EqualValues(t, 0, domain.RemainingSeconds(now.Add(999*time.Millisecond), now))
	assert.EqualValues(t, 0, domain.RemainingSeconds(now.Add(-time.Minute), now))
	assert.EqualValues(t, 600, domain.RemainingSeconds(now.Add(10*time.Minute), now))
}
