package auth

import (
	"testing"
)

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	second, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// Salt is random per call
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}

	if err := VerifyPassword(first, "correct horse battery"); err != nil {
		t.Errorf("first digest did not verify: %v", err)
	}
	if err := VerifyPassword(second, "correct horse battery"); err != nil {
		t.Errorf("second digest did not verify: %v", err)
	}
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if err := VerifyPassword(hash, "incorrect horse battery"); err != ErrPasswordMismatch {
		t.Errorf("VerifyPassword error = %v, want ErrPasswordMismatch", err)
	}
}

func TestVerifyPasswordRejectsMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "plaintext", "$2a$garbage"} {
		if err := VerifyPassword(digest, "anything"); err != ErrPasswordMismatch {
			t.Errorf("VerifyPassword(%q) error = %v, want ErrPasswordMismatch", digest, err)
		}
	}
}

func TestHashPasswordRejectsShortPassword(t *testing.T) {
	if _, err := HashPassword("short"); err != ErrPasswordTooShort {
		t.Errorf("HashPassword error = %v, want ErrPasswordTooShort", err)
	}
}
