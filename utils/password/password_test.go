package password_test

import (
	"testing"

	"github.com/petlove/backend/utils/password"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		plain string
	}{
		{name: "simple password", plain: "password123"},
		{name: "empty password", plain: ""},
		{name: "unicode password", plain: "pässwörd-ñ"},
		{name: "long password", plain: "correct horse battery staple 42!"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stored, err := password.Hash(tt.plain)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if !password.IsHashed(stored) {
				t.Fatalf("Hash() = %q, want bcrypt format", stored)
			}
			if !password.Verify(tt.plain, stored) {
				t.Fatalf("Verify(%q, Hash(%q)) = false, want true", tt.plain, tt.plain)
			}
		})
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	stored, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name  string
		plain string
	}{
		{name: "different password", plain: "password456"},
		{name: "case differs", plain: "Password123"},
		{name: "empty password", plain: ""},
		{name: "prefix of the real password", plain: "password12"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if password.Verify(tt.plain, stored) {
				t.Fatalf("Verify(%q, hash of other) = true, want false", tt.plain)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password are identical: %q", first)
	}
	if !password.Verify("password123", first) || !password.Verify("password123", second) {
		t.Fatal("both salted hashes should verify against the original password")
	}
}

func TestVerifyLegacyPlaintext(t *testing.T) {
	tests := []struct {
		name   string
		plain  string
		stored string
		want   bool
	}{
		{name: "legacy match", plain: "abc", stored: "abc", want: true},
		{name: "legacy mismatch", plain: "abc", stored: "xyz", want: false},
		{name: "legacy empty match", plain: "", stored: "", want: true},
		{name: "legacy length mismatch", plain: "abc", stored: "abcd", want: false},
		// Not a valid bcrypt value, but the marker routes it to the hashed
		// path where it can only fail.
		{name: "malformed with bcrypt marker", plain: "abc", stored: "$2b$zz$garbage", want: false},
		// No marker at all: treated as legacy plaintext, exact match wins.
		{name: "dollar sign but no marker", plain: "$2$abc", stored: "$2$abc", want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := password.Verify(tt.plain, tt.stored); got != tt.want {
				t.Fatalf("Verify(%q, %q) = %v, want %v", tt.plain, tt.stored, got, tt.want)
			}
		})
	}
}

func TestIsHashed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   bool
	}{
		{name: "go bcrypt marker", stored: "$2a$10$abcdefghijklmnopqrstuv", want: true},
		{name: "python bcrypt marker", stored: "$2b$12$abcdefghijklmnopqrstuv", want: true},
		{name: "php bcrypt marker", stored: "$2y$10$abcdefghijklmnopqrstuv", want: true},
		{name: "plaintext", stored: "password123", want: false},
		{name: "unknown scheme", stored: "$argon2id$v=19$m=65536", want: false},
		{name: "empty", stored: "", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := password.IsHashed(tt.stored); got != tt.want {
				t.Fatalf("IsHashed(%q) = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}
