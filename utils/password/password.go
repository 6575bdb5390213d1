// Package password implements the credential policy for stored user
// passwords: bcrypt hashes for anything written by this service, plus
// verification of legacy records that still hold the plaintext password.
// Legacy values stay accepted until every stored credential has been
// migrated to the hashed format.
package password

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt hashes are self-describing: $2a$/$2b$/$2y$ marker, cost, then the
// 22-char salt and digest. The original service wrote $2b$ hashes; Go's
// bcrypt writes $2a$. All version markers verify the same way.
var bcryptMarkers = []string{"$2a$", "$2b$", "$2y$"}

// Hash produces a salted bcrypt hash of the plaintext. Each call draws a
// fresh salt, so hashing the same password twice yields different values.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored credential. Stored values
// carrying a bcrypt marker are verified as hashes; anything else is treated
// as a legacy plaintext credential and compared in constant time. Malformed
// values therefore fall back to the legacy comparison rather than erroring.
func Verify(plain, stored string) bool {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1
}

// IsHashed reports whether stored is in the bcrypt hashed-credential format.
func IsHashed(stored string) bool {
	for _, marker := range bcryptMarkers {
		if strings.HasPrefix(stored, marker) {
			return true
		}
	}
	return false
}
