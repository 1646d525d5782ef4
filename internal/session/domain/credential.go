package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedCredential = errors.New("credential is not header.payload.signature")
	ErrMissingExpiry       = errors.New("credential has no exp claim")
)

type (
	// Credential is an opaque JWT-shaped bearer token, the empty value means absent.
	Credential string

	// DecodeResult is either Decoded or DecodeFailure.
	DecodeResult interface {
		decodeResult()
	}

	Decoded struct {
		ExpiresAt time.Time
		Role      Role
	}

	DecodeFailure struct {
		Err error
	}

	claims struct {
		jwt.RegisteredClaims
		Role string `json:"role,omitempty"`
	}
)

func (Decoded) decodeResult()       {}
func (DecodeFailure) decodeResult() {}

func (c Credential) IsAbsent() bool {
	return strings.TrimSpace(string(c)) == ""
}

// DecodeCredential reads the payload segment only. The header and the
// signature are left to the backend.
func DecodeCredential(credential Credential) DecodeResult {
	if credential.IsAbsent() {
		return DecodeFailure{Err: errors.New("credential is absent")}
	}

	parts := strings.Split(string(credential), ".")
	if len(parts) != 3 {
		return DecodeFailure{Err: ErrMalformedCredential}
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return DecodeFailure{Err: fmt.Errorf("decode payload: %w", err)}
	}

	var c claims
	if err = json.Unmarshal(payload, &c); err != nil {
		return DecodeFailure{Err: fmt.Errorf("parse payload: %w", err)}
	}
	if c.ExpiresAt == nil {
		return DecodeFailure{Err: ErrMissingExpiry}
	}

	return Decoded{
		ExpiresAt: c.ExpiresAt.Time,
		Role:      Role(c.Role),
	}
}

// IsExpired fails closed: an undecodable credential counts as expired.
func IsExpired(credential Credential, now time.Time) bool {
	decoded, ok := DecodeCredential(credential).(Decoded)
	if !ok {
		return true
	}

	return !now.Before(decoded.ExpiresAt)
}

// RemainingSeconds is floor((expiresAt - now) / 1s), never negative.
func RemainingSeconds(expiresAt, now time.Time) int64 {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int64(remaining / time.Second)
}
