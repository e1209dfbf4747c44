// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides moderator key derivation and validation.

# Moderator Keys

The moderator key uses HMAC-SHA256 to create a deterministic, verifiable key
from the server salt:

	key := auth.GenerateModeratorKey(salt)
	err := auth.ValidateModeratorKey(key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same salt always produces the same key, so nothing needs to be stored in
the database. The server logs the key once at startup; the host passes it in
the X-Moderator-Key header for question management operations.

Validation compares in constant time via hmac.Equal.
*/
package auth
