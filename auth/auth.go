// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidModeratorKey = errors.New("invalid moderator key")

// moderatorKeyInput is the fixed HMAC input for the moderator key. There is a
// single game per deployment, so the key is derived from the salt alone.
const moderatorKeyInput = "quiz-night-moderator"

// GenerateModeratorKey derives the moderator key from the server salt.
// This is deterministic and verifiable; the host receives it out of band
// (it is logged once at startup).
func GenerateModeratorKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(moderatorKeyInput))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateModeratorKey checks the provided key in constant time.
func ValidateModeratorKey(key, salt string) error {
	expected := GenerateModeratorKey(salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidModeratorKey
	}
	return nil
}
