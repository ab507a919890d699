package auth

import (
	"testing"
	"time"

	"github.com/medportal/authsvc/internal/common"
	"github.com/medportal/authsvc/internal/server/models"
)

func TestMintAndVerify_Success(t *testing.T) {
	t.Parallel()

	key := []byte("super-secret")

	tok, err := Mint("user-123", "a@b.com", models.RolePatient, key, time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	claims, err := Verify(tok, key)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("Email mismatch: got %q want %q", claims.Email, "a@b.com")
	}
	if claims.Role != models.RolePatient {
		t.Fatalf("Role mismatch: got %q want %q", claims.Role, models.RolePatient)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	key := []byte("secret")

	tok, err := Mint("u1", "u1@example.com", models.RoleDoctor, key, -1*time.Second)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = Verify(tok, key)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := Mint("u2", "u2@example.com", models.RoleAdmin, []byte("right-key"), time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = Verify(tok, []byte("wrong-key"))
	if err != common.ErrTokenInvalid {
		t.Fatalf("expected common.ErrTokenInvalid for forged signature, got %v", err)
	}
}

// An access-signing key must not validate a token minted with the refresh
// key, and vice versa.
func TestVerify_CrossKeyRejected(t *testing.T) {
	t.Parallel()

	accessKey := []byte("access-key")
	refreshKey := []byte("refresh-key")

	refreshTok, err := Mint("u3", "u3@example.com", models.RolePatient, refreshKey, time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	if _, err := Verify(refreshTok, accessKey); err != common.ErrTokenInvalid {
		t.Fatalf("expected common.ErrTokenInvalid for cross-key verify, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := Verify("not.a.jwt", []byte("k"))
	if err != common.ErrTokenInvalid {
		t.Fatalf("expected common.ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestDecode_NoSignatureCheck(t *testing.T) {
	t.Parallel()

	tok, err := Mint("u4", "u4@example.com", models.RoleDoctor, []byte("some-key"), time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	// Decode does not need the key and must still return the claims.
	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if claims.UserID != "u4" || claims.Role != models.RoleDoctor {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := Decode("garbage"); err != common.ErrTokenInvalid {
		t.Fatalf("expected common.ErrTokenInvalid for garbage input, got %v", err)
	}
}

func TestMint_DistinctTokensSameClaims(t *testing.T) {
	t.Parallel()

	key := []byte("k")

	a, err := Mint("u5", "u5@example.com", models.RolePatient, key, time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}
	// minted back-to-back within the same second; the jti keeps them apart
	b, err := Mint("u5", "u5@example.com", models.RolePatient, key, time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}
	if a == b {
		t.Fatalf("two mints must never produce the same token")
	}

	ca, err := Verify(a, key)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	cb, err := Verify(b, key)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ca.UserID != cb.UserID || ca.Email != cb.Email || ca.Role != cb.Role {
		t.Fatalf("identity claims must match: %+v vs %+v", ca, cb)
	}
}
